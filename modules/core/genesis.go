package ibc

import (
	"github.com/Salpiglossis/cosmos-ibc-rs/host"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/keeper"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/types"
)

// InitGenesis initializes the ibc state from a provided genesis state.
func InitGenesis(ctx host.Context, k *keeper.Keeper, gs *types.GenesisState) {
	k.ClientKeeper.InitGenesis(ctx, gs.ClientGenesis)
	k.ConnectionKeeper.InitGenesis(ctx, gs.ConnectionGenesis)
	k.ChannelKeeper.InitGenesis(ctx, gs.ChannelGenesis)
}

// ExportGenesis returns the ibc exported genesis.
func ExportGenesis(ctx host.Context, k *keeper.Keeper) *types.GenesisState {
	return &types.GenesisState{
		ClientGenesis:     k.ClientKeeper.ExportGenesis(ctx),
		ConnectionGenesis: k.ConnectionKeeper.ExportGenesis(ctx),
		ChannelGenesis:    k.ChannelKeeper.ExportGenesis(ctx),
	}
}
