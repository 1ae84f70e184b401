package types

import (
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/exported"
)

// IdentifiedClientState pairs a client state with its identifier, used
// by iteration and query results.
type IdentifiedClientState struct {
	ClientId    string
	ClientState exported.ClientState
}

// NewIdentifiedClientState creates a new IdentifiedClientState instance
func NewIdentifiedClientState(clientID string, clientState exported.ClientState) IdentifiedClientState {
	return IdentifiedClientState{
		ClientId:    clientID,
		ClientState: clientState,
	}
}

// ConsensusStateWithHeight pairs a consensus state with the height at
// which it was recorded.
type ConsensusStateWithHeight struct {
	Height         Height
	ConsensusState exported.ConsensusState
}

// NewConsensusStateWithHeight creates a new ConsensusStateWithHeight instance
func NewConsensusStateWithHeight(height Height, consensusState exported.ConsensusState) ConsensusStateWithHeight {
	return ConsensusStateWithHeight{
		Height:         height,
		ConsensusState: consensusState,
	}
}
