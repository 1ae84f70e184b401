package types

import (
	"encoding/json"
	"fmt"
	"strings"

	errorsmod "cosmossdk.io/errors"
)

// Acknowledgement is the recommended acknowledgement format to be used by
// app-specific protocols. The acknowledgement either contains a result
// (success case) or an error string (failure case), never both.
type Acknowledgement struct {
	Result []byte `json:"result,omitempty" cbor:"1,keyasint,omitempty"`
	Error  string `json:"error,omitempty" cbor:"2,keyasint,omitempty"`
}

// NewResultAcknowledgement returns a new instance of Acknowledgement using an
// Acknowledgement_Result type in the Response field.
func NewResultAcknowledgement(result []byte) Acknowledgement {
	return Acknowledgement{
		Result: result,
	}
}

// NewErrorAcknowledgement returns a new instance of Acknowledgement using an
// Acknowledgement_Error type in the Response field.
// NOTE: The error string placed in the acknowledgement must be consistent
// across all machines executing the message; raw error strings may carry
// machine-specific detail, so only the outermost wrap message is used.
func NewErrorAcknowledgement(err error) Acknowledgement {
	msg := strings.SplitN(err.Error(), ":", 2)[0]

	return Acknowledgement{
		Error: fmt.Sprintf("packet processing failed: %s", msg),
	}
}

// Success implements the Acknowledgement interface. The acknowledgement is
// considered successful if it is a ResultAcknowledgement. Otherwise it is
// considered a failed acknowledgement.
func (ack Acknowledgement) Success() bool {
	return ack.Error == ""
}

// Acknowledgement returns the acknowledgement bytes stored on chain. JSON
// marshalling of Go structs is deterministic (fields render in declaration
// order), which the acknowledgement commitment relies on.
func (ack Acknowledgement) Acknowledgement() []byte {
	bz, err := json.Marshal(ack)
	if err != nil {
		panic(err)
	}
	return bz
}

// ValidateBasic performs a basic validation of the acknowledgement
func (ack Acknowledgement) ValidateBasic() error {
	if len(ack.Result) != 0 && ack.Error != "" {
		return errorsmod.Wrap(ErrInvalidAcknowledgement, "acknowledgement cannot contain both a result and an error")
	}
	if len(ack.Result) == 0 && ack.Error == "" {
		return errorsmod.Wrap(ErrInvalidAcknowledgement, "acknowledgement result cannot be empty")
	}
	if ack.Error != "" && strings.TrimSpace(ack.Error) == "" {
		return errorsmod.Wrap(ErrInvalidAcknowledgement, "acknowledgement error cannot be blank")
	}
	return nil
}
