package keeper

import (
	"fmt"

	"github.com/Salpiglossis/cosmos-ibc-rs/host"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/03-connection/types"
)

// InitGenesis initializes the ibc connection submodule's state from a
// provided genesis state.
func (k Keeper) InitGenesis(ctx host.Context, gs types.GenesisState) {
	if err := gs.Validate(); err != nil {
		panic(fmt.Errorf("invalid ibc connection genesis state: %w", err))
	}

	for _, connection := range gs.Connections {
		conn := types.NewConnectionEnd(connection.State, connection.ClientId, connection.Counterparty, connection.Versions, connection.DelayPeriod)
		k.SetConnection(ctx, connection.Id, conn)
	}
	for _, connPaths := range gs.ClientConnectionPaths {
		k.SetClientConnectionPaths(ctx, connPaths.ClientId, connPaths.Paths)
	}
	k.SetNextConnectionSequence(ctx, gs.NextConnectionSequence)
	k.SetParams(ctx, gs.Params)
}

// ExportGenesis returns the ibc connection submodule's exported genesis.
func (k Keeper) ExportGenesis(ctx host.Context) types.GenesisState {
	return types.GenesisState{
		Connections:            k.GetAllConnections(ctx),
		ClientConnectionPaths:  k.GetAllClientConnectionPaths(ctx),
		NextConnectionSequence: k.GetNextConnectionSequence(ctx),
		Params:                 k.GetParams(ctx),
	}
}
