package mock

import (
	errorsmod "cosmossdk.io/errors"

	clienttypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/02-client/types"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/exported"
)

var _ exported.ClientMessage = (*Header)(nil)

// Header is the mock client update message: a height and a timestamp,
// trusted without any verification against a consensus algorithm.
type Header struct {
	Height    clienttypes.Height `cbor:"1,keyasint"`
	Timestamp uint64             `cbor:"2,keyasint"`
}

// NewHeader creates a new mock Header instance.
func NewHeader(height clienttypes.Height, timestamp uint64) *Header {
	return &Header{
		Height:    height,
		Timestamp: timestamp,
	}
}

// ClientType returns the mock client type.
func (Header) ClientType() string {
	return exported.Mock
}

// ConsensusState returns the consensus state committed by the header.
func (h Header) ConsensusState() *ConsensusState {
	return NewConsensusState(h.Timestamp)
}

// ValidateBasic checks the header fields are set.
func (h Header) ValidateBasic() error {
	if h.Height.IsZero() {
		return errorsmod.Wrap(clienttypes.ErrInvalidHeader, "height cannot be zero")
	}
	if h.Timestamp == 0 {
		return errorsmod.Wrap(clienttypes.ErrInvalidHeader, "timestamp cannot be zero")
	}
	return nil
}
