package mock

import (
	errorsmod "cosmossdk.io/errors"

	clienttypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/02-client/types"
	ibchost "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/24-host"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/exported"
)

var _ exported.ClientMessage = (*Misbehaviour)(nil)

// Misbehaviour is two conflicting mock headers.
type Misbehaviour struct {
	ClientId string  `cbor:"1,keyasint"`
	Header1  *Header `cbor:"2,keyasint"`
	Header2  *Header `cbor:"3,keyasint"`
}

// NewMisbehaviour creates a new Misbehaviour instance.
func NewMisbehaviour(clientID string, header1, header2 *Header) *Misbehaviour {
	return &Misbehaviour{
		ClientId: clientID,
		Header1:  header1,
		Header2:  header2,
	}
}

// ClientType returns the mock client type.
func (Misbehaviour) ClientType() string {
	return exported.Mock
}

// ValidateBasic implements the ClientMessage interface.
func (misbehaviour Misbehaviour) ValidateBasic() error {
	if misbehaviour.Header1 == nil {
		return errorsmod.Wrap(clienttypes.ErrInvalidHeader, "misbehaviour Header1 cannot be nil")
	}
	if misbehaviour.Header2 == nil {
		return errorsmod.Wrap(clienttypes.ErrInvalidHeader, "misbehaviour Header2 cannot be nil")
	}
	if err := ibchost.ClientIdentifierValidator(misbehaviour.ClientId); err != nil {
		return errorsmod.Wrap(err, "misbehaviour client ID is invalid")
	}

	if err := misbehaviour.Header1.ValidateBasic(); err != nil {
		return errorsmod.Wrap(err, "header 1 failed validation")
	}
	if err := misbehaviour.Header2.ValidateBasic(); err != nil {
		return errorsmod.Wrap(err, "header 2 failed validation")
	}

	if misbehaviour.Header1.Height.LT(misbehaviour.Header2.Height) {
		return errorsmod.Wrapf(clienttypes.ErrInvalidMisbehaviour, "Header1 height is less than Header2 height (%s < %s)", misbehaviour.Header1.Height, misbehaviour.Header2.Height)
	}

	return nil
}
