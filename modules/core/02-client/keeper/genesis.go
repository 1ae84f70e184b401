package keeper

import (
	"fmt"
	"sort"

	"github.com/Salpiglossis/cosmos-ibc-rs/host"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/02-client/types"
	ibchost "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/24-host"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/exported"
)

// InitGenesis initializes the ibc client submodule's state from a provided
// genesis state.
func (k Keeper) InitGenesis(ctx host.Context, gs types.GenesisState) {
	if err := gs.Validate(); err != nil {
		panic(fmt.Errorf("invalid ibc client genesis state: %w", err))
	}

	k.SetParams(ctx, gs.Params)

	for _, client := range gs.Clients {
		k.SetClientState(ctx, client.ClientId, client.ClientState)
	}

	for _, cs := range gs.ClientsConsensus {
		for _, consState := range cs.ConsensusStates {
			k.SetClientConsensusState(ctx, cs.ClientId, consState.Height, consState.ConsensusState)
		}
	}

	k.SetAllClientMetadata(ctx, gs.ClientsMetadata)

	k.SetNextClientSequence(ctx, gs.NextClientSequence)
}

// ExportGenesis returns the ibc client submodule's exported genesis.
func (k Keeper) ExportGenesis(ctx host.Context) types.GenesisState {
	genClients := k.GetAllGenesisClients(ctx)
	clientsMetadata, err := k.GetAllClientMetadata(ctx, genClients)
	if err != nil {
		panic(err)
	}
	return types.GenesisState{
		Clients:            genClients,
		ClientsConsensus:   k.GetAllConsensusStates(ctx),
		ClientsMetadata:    clientsMetadata,
		Params:             k.GetParams(ctx),
		NextClientSequence: k.GetNextClientSequence(ctx),
	}
}

// GetAllGenesisClients returns all the clients in state with their client ids
// returned as IdentifiedClientState, sorted by client id.
func (k Keeper) GetAllGenesisClients(ctx host.Context) []types.IdentifiedClientState {
	var genClients []types.IdentifiedClientState
	k.IterateClientStates(ctx, nil, func(clientID string, cs exported.ClientState) bool {
		genClients = append(genClients, types.NewIdentifiedClientState(clientID, cs))
		return false
	})

	sort.Slice(genClients, func(i, j int) bool {
		return genClients[i].ClientId < genClients[j].ClientId
	})
	return genClients
}

// GetAllConsensusStates returns all stored client consensus states grouped by
// client id, sorted by client id.
func (k Keeper) GetAllConsensusStates(ctx host.Context) []types.ClientConsensusStates {
	consStates := make(map[string][]types.ConsensusStateWithHeight)

	k.IterateConsensusStates(ctx, func(clientID string, cs types.ConsensusStateWithHeight) bool {
		consStates[clientID] = append(consStates[clientID], cs)
		return false
	})

	clientIDs := make([]string, 0, len(consStates))
	for clientID := range consStates {
		clientIDs = append(clientIDs, clientID)
	}
	sort.Strings(clientIDs)

	clientConsStates := make([]types.ClientConsensusStates, 0, len(clientIDs))
	for _, clientID := range clientIDs {
		clientConsStates = append(clientConsStates, types.NewClientConsensusStates(clientID, consStates[clientID]))
	}
	return clientConsStates
}

// GetAllClientMetadata returns all stored client metadata for the provided
// genesis clients. Metadata is every key in a client's isolated store that
// is neither the client state nor a consensus state, such as the processed
// times and heights light clients maintain for connection delay periods.
func (k Keeper) GetAllClientMetadata(ctx host.Context, genClients []types.IdentifiedClientState) ([]types.IdentifiedGenesisMetadata, error) {
	genMetadata := make([]types.IdentifiedGenesisMetadata, 0)
	for _, ic := range genClients {
		clientStore := k.ClientStore(ctx, ic.ClientId)

		iterator, err := clientStore.Iterator(nil, nil)
		if err != nil {
			return nil, err
		}

		var clientMetadata []types.GenesisMetadata
		for ; iterator.Valid(); iterator.Next() {
			if isClientOrConsensusStateKey(iterator.Key()) {
				continue
			}
			clientMetadata = append(clientMetadata, types.NewGenesisMetadata(iterator.Key(), iterator.Value()))
		}
		iterator.Close()

		if len(clientMetadata) != 0 {
			genMetadata = append(genMetadata, types.NewIdentifiedGenesisMetadata(ic.ClientId, clientMetadata))
		}
	}

	return genMetadata, nil
}

// SetAllClientMetadata writes the provided metadata into each client's
// isolated store.
func (k Keeper) SetAllClientMetadata(ctx host.Context, genMetadata []types.IdentifiedGenesisMetadata) {
	for _, igm := range genMetadata {
		clientStore := k.ClientStore(ctx, igm.ClientId)
		for _, md := range igm.Metadata {
			if err := clientStore.Set(md.Key, md.Value); err != nil {
				panic(err)
			}
		}
	}
}

// isClientOrConsensusStateKey reports whether a client store key holds the
// client state or a consensus state rather than metadata. The client state
// is stored under "clientState" and consensus states are stored under
// "consensusStates/<height>".
func isClientOrConsensusStateKey(key []byte) bool {
	if string(key) == string(ibchost.ClientStateKey()) {
		return true
	}

	keySplit := splitKey(key)
	if len(keySplit) != 2 || keySplit[0] != ibchost.KeyConsensusStatePrefix {
		return false
	}

	_, err := types.ParseHeight(keySplit[1])
	return err == nil
}
