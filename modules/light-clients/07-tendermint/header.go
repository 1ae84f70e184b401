package tendermint

import (
	"bytes"
	"time"

	errorsmod "cosmossdk.io/errors"

	clienttypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/02-client/types"
	commitmenttypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/23-commitment/types"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/exported"
)

var _ exported.ClientMessage = (*Header)(nil)

// Header carries the counterparty block commitment that updates the
// client, along with the trusted height the consensus layer verified the
// header against. Signature verification over the validator set happens
// before the header is submitted; the client performs the structural,
// monotonicity and expiry checks.
type Header struct {
	// height of the new counterparty block
	Height clienttypes.Height `cbor:"1,keyasint"`
	// block time of the new counterparty block
	Time time.Time `cbor:"2,keyasint"`
	// app hash committed by the new block
	AppHash []byte `cbor:"3,keyasint"`
	// hash of the validator set that signed the block
	ValidatorsHash []byte `cbor:"4,keyasint,omitempty"`
	// hash of the validator set for the following block
	NextValidatorsHash []byte `cbor:"5,keyasint,omitempty"`
	// height of the stored consensus state the header was verified against
	TrustedHeight clienttypes.Height `cbor:"6,keyasint"`
	// validator set hash of the trusted consensus state
	TrustedValidatorsHash []byte `cbor:"7,keyasint,omitempty"`
}

// ConsensusState returns the updated consensus state associated with the header
func (h Header) ConsensusState() *ConsensusState {
	return &ConsensusState{
		Timestamp:          h.Time,
		Root:               commitmenttypes.NewMerkleRoot(h.AppHash),
		NextValidatorsHash: h.NextValidatorsHash,
	}
}

// ClientType defines that the Header is a Tendermint consensus algorithm
func (Header) ClientType() string {
	return exported.Tendermint
}

// GetHeight returns the current height. It returns 0 if the tendermint
// header is nil.
func (h Header) GetHeight() exported.Height {
	return h.Height
}

// GetTime returns the current block timestamp. It returns a zero time if
// the tendermint header is nil.
func (h Header) GetTime() time.Time {
	return h.Time
}

// ValidateBasic calls the header ValidateBasic function and checks
// that validatorsets are not nil.
func (h Header) ValidateBasic() error {
	if h.Height.IsZero() {
		return errorsmod.Wrap(ErrInvalidHeaderHeight, "header height cannot be zero")
	}
	if h.Time.Unix() <= 0 {
		return errorsmod.Wrap(ErrInvalidHeader, "header time must be a positive Unix time")
	}
	if len(h.AppHash) == 0 {
		return errorsmod.Wrap(ErrInvalidHeader, "header app hash cannot be empty")
	}
	if h.TrustedHeight.GTE(h.Height) {
		return errorsmod.Wrapf(ErrInvalidHeaderHeight, "trusted height (%s) must be less than header height (%s)", h.TrustedHeight, h.Height)
	}
	return nil
}

// hasEqualCommitment reports whether two headers commit to the same
// consensus state.
func (h Header) hasEqualCommitment(other Header) bool {
	return h.Time.Equal(other.Time) &&
		bytes.Equal(h.AppHash, other.AppHash) &&
		bytes.Equal(h.NextValidatorsHash, other.NextValidatorsHash)
}
