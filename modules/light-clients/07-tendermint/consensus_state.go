package tendermint

import (
	"time"

	errorsmod "cosmossdk.io/errors"

	clienttypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/02-client/types"
	commitmenttypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/23-commitment/types"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/exported"
)

var _ exported.ConsensusState = (*ConsensusState)(nil)

// ConsensusState is the per-height snapshot of the counterparty recorded
// at client update time.
type ConsensusState struct {
	// timestamp that corresponds to the counterparty block height in which
	// the ConsensusState was generated
	Timestamp time.Time `cbor:"1,keyasint"`
	// commitment root (i.e app hash)
	Root commitmenttypes.MerkleRoot `cbor:"2,keyasint"`
	// hash of the next validator set, carried so the consensus layer can
	// check validator set transitions on the following update
	NextValidatorsHash []byte `cbor:"3,keyasint,omitempty"`
}

// NewConsensusState creates a new ConsensusState instance.
func NewConsensusState(
	timestamp time.Time, root commitmenttypes.MerkleRoot, nextValsHash []byte,
) *ConsensusState {
	return &ConsensusState{
		Timestamp:          timestamp,
		Root:               root,
		NextValidatorsHash: nextValsHash,
	}
}

// ClientType returns Tendermint
func (ConsensusState) ClientType() string {
	return exported.Tendermint
}

// GetRoot returns the commitment Root for the specific
func (cs ConsensusState) GetRoot() exported.Root {
	return cs.Root
}

// GetTimestamp returns block time in nanoseconds of the header that created consensus state
func (cs ConsensusState) GetTimestamp() uint64 {
	return uint64(cs.Timestamp.UnixNano())
}

// ValidateBasic defines a basic validation for the tendermint consensus state.
// NOTE: ProcessedTimestamp may be zero if this is an initial consensus state passed in by relayer
// as opposed to a consensus state constructed by the chain.
func (cs ConsensusState) ValidateBasic() error {
	if cs.Root.Empty() {
		return errorsmod.Wrap(clienttypes.ErrInvalidConsensus, "root cannot be empty")
	}
	if cs.Timestamp.Unix() <= 0 {
		return errorsmod.Wrap(clienttypes.ErrInvalidConsensus, "timestamp must be a positive Unix time")
	}
	return nil
}
