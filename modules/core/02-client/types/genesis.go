package types

import (
	"errors"
	"fmt"
	"sort"

	host "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/24-host"
)

// GenesisMetadata is a key/value pair of raw client store metadata exported
// alongside a client, such as its processed times and heights.
type GenesisMetadata struct {
	Key   []byte `cbor:"1,keyasint"`
	Value []byte `cbor:"2,keyasint"`
}

// NewGenesisMetadata creates a new GenesisMetadata instance.
func NewGenesisMetadata(key, val []byte) GenesisMetadata {
	return GenesisMetadata{
		Key:   key,
		Value: val,
	}
}

// IdentifiedGenesisMetadata pairs exported client store metadata with the
// client identifier it belongs to.
type IdentifiedGenesisMetadata struct {
	ClientId string            `cbor:"1,keyasint"`
	Metadata []GenesisMetadata `cbor:"2,keyasint"`
}

// NewIdentifiedGenesisMetadata creates a new IdentifiedGenesisMetadata instance.
func NewIdentifiedGenesisMetadata(clientID string, metadata []GenesisMetadata) IdentifiedGenesisMetadata {
	return IdentifiedGenesisMetadata{
		ClientId: clientID,
		Metadata: metadata,
	}
}

// ClientConsensusStates defines all the stored consensus states for a client.
type ClientConsensusStates struct {
	ClientId        string
	ConsensusStates []ConsensusStateWithHeight
}

// NewClientConsensusStates creates a new ClientConsensusStates instance.
func NewClientConsensusStates(clientID string, consensusStates []ConsensusStateWithHeight) ClientConsensusStates {
	return ClientConsensusStates{
		ClientId:        clientID,
		ConsensusStates: consensusStates,
	}
}

// GenesisState defines the ibc client submodule's genesis state.
type GenesisState struct {
	Clients            []IdentifiedClientState
	ClientsConsensus   []ClientConsensusStates
	ClientsMetadata    []IdentifiedGenesisMetadata
	Params             Params
	NextClientSequence uint64
}

// NewGenesisState creates a GenesisState instance.
func NewGenesisState(
	clients []IdentifiedClientState, clientsConsensus []ClientConsensusStates,
	clientsMetadata []IdentifiedGenesisMetadata, params Params, nextClientSequence uint64,
) GenesisState {
	return GenesisState{
		Clients:            clients,
		ClientsConsensus:   clientsConsensus,
		ClientsMetadata:    clientsMetadata,
		Params:             params,
		NextClientSequence: nextClientSequence,
	}
}

// DefaultGenesisState returns the ibc client submodule's default genesis state.
func DefaultGenesisState() GenesisState {
	return GenesisState{
		Params:             DefaultParams(),
		NextClientSequence: 0,
	}
}

// Validate performs basic genesis state validation returning an error upon
// any failure.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	validClients := make(map[string]string, len(gs.Clients))

	for i, client := range gs.Clients {
		if err := host.ClientIdentifierValidator(client.ClientId); err != nil {
			return fmt.Errorf("invalid client identifier %s at index %d: %w", client.ClientId, i, err)
		}

		if client.ClientState == nil {
			return fmt.Errorf("invalid client state at index %d, client ID %s", i, client.ClientId)
		}

		if err := client.ClientState.Validate(); err != nil {
			return fmt.Errorf("invalid client %v at index %d: %w", client, i, err)
		}

		clientType, sequence, err := ParseClientIdentifier(client.ClientId)
		if err != nil {
			return err
		}

		if clientType != client.ClientState.ClientType() {
			return fmt.Errorf("client state type %s does not equal client type in client identifier %s", client.ClientState.ClientType(), clientType)
		}

		if sequence >= gs.NextClientSequence {
			return fmt.Errorf("client identifier %s has a sequence greater than or equal to the next client sequence %d", client.ClientId, gs.NextClientSequence)
		}

		// record the client type under the client id so consensus states
		// can be checked against a stored client
		validClients[client.ClientId] = client.ClientState.ClientType()
	}

	for _, cc := range gs.ClientsConsensus {
		if _, ok := validClients[cc.ClientId]; !ok {
			return fmt.Errorf("consensus state in genesis has a client id %s that does not map to a genesis client", cc.ClientId)
		}

		for i, consState := range cc.ConsensusStates {
			if consState.Height.IsZero() {
				return fmt.Errorf("consensus state height cannot be zero")
			}

			if consState.ConsensusState == nil {
				return fmt.Errorf("invalid consensus state at index %d, client ID %s", i, cc.ClientId)
			}

			if err := consState.ConsensusState.ValidateBasic(); err != nil {
				return fmt.Errorf("invalid client consensus state %v at index %d: %w", consState, i, err)
			}
		}
	}

	for _, clientMetadata := range gs.ClientsMetadata {
		if _, ok := validClients[clientMetadata.ClientId]; !ok {
			return fmt.Errorf("metadata in genesis has a client id %s that does not map to a genesis client", clientMetadata.ClientId)
		}

		for i, gm := range clientMetadata.Metadata {
			if len(gm.Key) == 0 {
				return fmt.Errorf("invalid metadata at index %d, client ID %s: key cannot be empty", i, clientMetadata.ClientId)
			}
			if len(gm.Value) == 0 {
				return fmt.Errorf("invalid metadata at index %d, client ID %s: value cannot be empty", i, clientMetadata.ClientId)
			}
		}
	}

	if !sort.SliceIsSorted(gs.Clients, func(i, j int) bool {
		return gs.Clients[i].ClientId < gs.Clients[j].ClientId
	}) {
		return errors.New("clients are not sorted by client id")
	}

	return nil
}
