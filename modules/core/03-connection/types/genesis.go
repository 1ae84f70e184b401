package types

import (
	"fmt"

	host "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/24-host"
)

// GenesisState defines the ibc connection submodule's genesis state.
type GenesisState struct {
	Connections            []IdentifiedConnection
	ClientConnectionPaths  []ConnectionPaths
	NextConnectionSequence uint64
	Params                 Params
}

// NewGenesisState creates a GenesisState instance.
func NewGenesisState(
	connections []IdentifiedConnection, connPaths []ConnectionPaths,
	nextConnectionSequence uint64, params Params,
) GenesisState {
	return GenesisState{
		Connections:            connections,
		ClientConnectionPaths:  connPaths,
		NextConnectionSequence: nextConnectionSequence,
		Params:                 params,
	}
}

// DefaultGenesisState returns the ibc connection submodule's default genesis state.
func DefaultGenesisState() GenesisState {
	return GenesisState{
		Connections:            []IdentifiedConnection{},
		ClientConnectionPaths:  []ConnectionPaths{},
		NextConnectionSequence: 0,
		Params:                 DefaultParams(),
	}
}

// Validate performs basic genesis state validation returning an error upon
// any failure.
func (gs GenesisState) Validate() error {
	for i, conn := range gs.Connections {
		sequence, err := host.ParseIdentifier(conn.Id, ConnectionPrefix)
		if err != nil {
			return err
		}

		if sequence >= gs.NextConnectionSequence {
			return fmt.Errorf("connection identifier %s has a sequence greater than or equal to the next connection sequence %d", conn.Id, gs.NextConnectionSequence)
		}

		if err := conn.ValidateBasic(); err != nil {
			return fmt.Errorf("invalid connection %v index %d: %w", conn, i, err)
		}
	}

	for i, conPaths := range gs.ClientConnectionPaths {
		if err := host.ClientIdentifierValidator(conPaths.ClientId); err != nil {
			return fmt.Errorf("invalid client connection path %d: %w", i, err)
		}
		for _, connectionID := range conPaths.Paths {
			if err := host.ConnectionIdentifierValidator(connectionID); err != nil {
				return fmt.Errorf("invalid client connection ID (%s) in connection paths %d: %w", connectionID, i, err)
			}
		}
	}

	return gs.Params.Validate()
}
