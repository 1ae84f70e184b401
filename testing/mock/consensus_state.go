package mock

import (
	errorsmod "cosmossdk.io/errors"

	clienttypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/02-client/types"
	commitmenttypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/23-commitment/types"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/exported"
)

var _ exported.ConsensusState = (*ConsensusState)(nil)

// ConsensusState carries only a timestamp. The mock client verifies
// commitments by path hash, so no commitment root is tracked; GetRoot
// returns a sentinel that can never pass Merkle verification.
type ConsensusState struct {
	Timestamp uint64 `cbor:"1,keyasint"`
}

// NewConsensusState creates a new mock ConsensusState with the given
// timestamp in nanoseconds.
func NewConsensusState(timestamp uint64) *ConsensusState {
	return &ConsensusState{Timestamp: timestamp}
}

// ClientType returns the mock client type.
func (ConsensusState) ClientType() string {
	return exported.Mock
}

// GetRoot returns a sentinel commitment root.
func (ConsensusState) GetRoot() exported.Root {
	return commitmenttypes.NewMerkleRoot([]byte(ModuleName))
}

// GetTimestamp returns the timestamp (in nanoseconds) of the consensus state.
func (cs ConsensusState) GetTimestamp() uint64 {
	return cs.Timestamp
}

// ValidateBasic checks the timestamp is set.
func (cs ConsensusState) ValidateBasic() error {
	if cs.Timestamp == 0 {
		return errorsmod.Wrap(clienttypes.ErrInvalidConsensus, "timestamp cannot be zero")
	}
	return nil
}
