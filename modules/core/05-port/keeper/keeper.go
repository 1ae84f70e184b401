package keeper

import (
	"fmt"

	"cosmossdk.io/log"

	"github.com/Salpiglossis/cosmos-ibc-rs/host"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/05-port/types"
	ibchost "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/24-host"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/exported"
)

// Keeper defines the IBC port keeper. Port bindings map a port identifier to
// the name of the module that owns it.
type Keeper struct {
	Router *types.Router
}

// NewKeeper creates a new IBC port Keeper instance
func NewKeeper() Keeper {
	return Keeper{}
}

// Logger returns a module-specific logger.
func (Keeper) Logger(ctx host.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+exported.ModuleName+"/"+types.SubModuleName)
}

// SetRouter sets the Router in the port keeper and seals it. The method panics
// if there is an existing router that's already sealed.
func (k *Keeper) SetRouter(rtr *types.Router) {
	if k.Router != nil && k.Router.Sealed() {
		panic("cannot reset a sealed router")
	}

	k.Router = rtr
	k.Router.Seal()
}

// IsBound checks a given port ID is already bound.
func (k Keeper) IsBound(ctx host.Context, portID string) bool {
	if err := ibchost.PortIdentifierValidator(portID); err != nil {
		return false
	}
	has, err := ctx.KVStore().Has(ibchost.PortKey(portID))
	if err != nil {
		panic(err)
	}
	return has
}

// BindPort binds to a port and claims it for the given module. Ports
// must be bound statically when the app starts. It will panic if the
// port ID is invalid or already bound.
func (k Keeper) BindPort(ctx host.Context, portID, moduleName string) {
	if err := ibchost.PortIdentifierValidator(portID); err != nil {
		panic(err.Error())
	}

	if k.IsBound(ctx, portID) {
		panic(fmt.Errorf("port %s is already bound", portID))
	}

	if err := ctx.KVStore().Set(ibchost.PortKey(portID), []byte(moduleName)); err != nil {
		panic(err)
	}

	k.Logger(ctx).Info("port binded", "port", portID, "module", moduleName)
}

// Authenticate authenticates a module against a port ID
// by checking that the module owns the port binding.
func (k Keeper) Authenticate(ctx host.Context, portID, moduleName string) bool {
	if err := ibchost.PortIdentifierValidator(portID); err != nil {
		panic(err.Error())
	}

	owner, found := k.LookupModuleByPort(ctx, portID)
	return found && owner == moduleName
}

// LookupModuleByPort will return the name of the module that owns the port binding.
// If no module owns the port then an empty string is returned with found set to false.
func (Keeper) LookupModuleByPort(ctx host.Context, portID string) (string, bool) {
	bz, err := ctx.KVStore().Get(ibchost.PortKey(portID))
	if err != nil {
		panic(err)
	}
	if len(bz) == 0 {
		return "", false
	}

	return string(bz), true
}
