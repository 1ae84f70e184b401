package types

import (
	clienttypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/02-client/types"
	connectiontypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/03-connection/types"
	channeltypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/04-channel/types"
)

// GenesisState bundles the exported state of each core ibc submodule.
type GenesisState struct {
	ClientGenesis     clienttypes.GenesisState
	ConnectionGenesis connectiontypes.GenesisState
	ChannelGenesis    channeltypes.GenesisState
}

// DefaultGenesisState returns the ibc module's default genesis state.
func DefaultGenesisState() *GenesisState {
	return &GenesisState{
		ClientGenesis:     clienttypes.DefaultGenesisState(),
		ConnectionGenesis: connectiontypes.DefaultGenesisState(),
		ChannelGenesis:    channeltypes.DefaultGenesisState(),
	}
}

// NewGenesisState creates a new ibc GenesisState instance.
func NewGenesisState(
	clientGenesis clienttypes.GenesisState,
	connectionGenesis connectiontypes.GenesisState,
	channelGenesis channeltypes.GenesisState,
) *GenesisState {
	return &GenesisState{
		ClientGenesis:     clientGenesis,
		ConnectionGenesis: connectionGenesis,
		ChannelGenesis:    channelGenesis,
	}
}

// Validate performs basic genesis state validation returning an error upon
// any failure.
func (gs *GenesisState) Validate() error {
	if err := gs.ClientGenesis.Validate(); err != nil {
		return err
	}

	if err := gs.ConnectionGenesis.Validate(); err != nil {
		return err
	}

	return gs.ChannelGenesis.Validate()
}
