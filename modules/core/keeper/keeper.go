package keeper

import (
	"cosmossdk.io/log"

	"github.com/Salpiglossis/cosmos-ibc-rs/host"
	clientkeeper "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/02-client/keeper"
	connectionkeeper "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/03-connection/keeper"
	channelkeeper "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/04-channel/keeper"
	portkeeper "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/05-port/keeper"
	porttypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/05-port/types"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/codec"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/exported"
)

// Keeper defines each ICS keeper for IBC
type Keeper struct {
	cdc *codec.Codec

	ClientKeeper     clientkeeper.Keeper
	ConnectionKeeper connectionkeeper.Keeper
	ChannelKeeper    channelkeeper.Keeper
	PortKeeper       *portkeeper.Keeper
}

// NewKeeper creates a new ibc Keeper
func NewKeeper(cdc *codec.Codec) *Keeper {
	clientKeeper := clientkeeper.NewKeeper(cdc)
	connectionKeeper := connectionkeeper.NewKeeper(cdc, clientKeeper)
	portKeeper := portkeeper.NewKeeper()
	channelKeeper := channelkeeper.NewKeeper(cdc, clientKeeper, connectionKeeper, portKeeper)

	return &Keeper{
		cdc:              cdc,
		ClientKeeper:     clientKeeper,
		ConnectionKeeper: connectionKeeper,
		ChannelKeeper:    channelKeeper,
		PortKeeper:       &portKeeper,
	}
}

// Codec returns the IBC module codec.
func (k *Keeper) Codec() *codec.Codec {
	return k.cdc
}

// SetRouter sets the Router in IBC Keeper and seals it. The method panics if
// there is an existing router that's already sealed.
func (k *Keeper) SetRouter(rtr *porttypes.Router) {
	k.PortKeeper.SetRouter(rtr)
}

// Logger returns a module-specific logger.
func (*Keeper) Logger(ctx host.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+exported.ModuleName)
}
