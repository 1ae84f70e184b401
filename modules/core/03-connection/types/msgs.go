package types

import (
	"strings"

	errorsmod "cosmossdk.io/errors"

	clienttypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/02-client/types"
	commitmenttypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/23-commitment/types"
	host "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/24-host"
	ibcerrors "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/errors"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/exported"
)

// MsgConnectionOpenInit defines the message used to initialize a connection
// on the executing (source) chain.
type MsgConnectionOpenInit struct {
	ClientId     string
	Counterparty Counterparty
	Version      *Version
	DelayPeriod  uint64
	Signer       string
}

// NewMsgConnectionOpenInit creates a new MsgConnectionOpenInit instance. It
// sets the counterparty connection identifier to be empty.
func NewMsgConnectionOpenInit(
	clientID, counterpartyClientID string,
	counterpartyPrefix commitmenttypes.MerklePrefix,
	version *Version, delayPeriod uint64, signer string,
) *MsgConnectionOpenInit {
	// counterparty must have the same delay period
	counterparty := NewCounterparty(counterpartyClientID, "", counterpartyPrefix)
	return &MsgConnectionOpenInit{
		ClientId:     clientID,
		Counterparty: counterparty,
		Version:      version,
		DelayPeriod:  delayPeriod,
		Signer:       signer,
	}
}

// ValidateBasic performs basic, stateless validation of the message.
func (msg MsgConnectionOpenInit) ValidateBasic() error {
	if err := validateSigner(msg.Signer); err != nil {
		return err
	}
	if err := host.ClientIdentifierValidator(msg.ClientId); err != nil {
		return errorsmod.Wrap(err, "invalid client ID")
	}
	if msg.Counterparty.ConnectionId != "" {
		return errorsmod.Wrap(ErrInvalidCounterparty, "counterparty connection identifier must be empty")
	}
	if msg.Version != nil {
		if err := ValidateVersion(msg.Version); err != nil {
			return errorsmod.Wrap(err, "basic validation of the provided version failed")
		}
	}
	return msg.Counterparty.ValidateBasic()
}

// MsgConnectionOpenTry defines the message used to relay the INIT state of a
// connection from the initiating chain to the executing chain.
type MsgConnectionOpenTry struct {
	ClientId             string
	ClientState          exported.ClientState
	Counterparty         Counterparty
	DelayPeriod          uint64
	CounterpartyVersions []*Version
	// proof of the initialization of the connection on the counterparty
	ProofInit []byte
	// proof of the client state the counterparty stores for the executing chain
	ProofClient []byte
	ProofHeight clienttypes.Height
	Signer      string
}

// NewMsgConnectionOpenTry creates a new MsgConnectionOpenTry instance
func NewMsgConnectionOpenTry(
	clientID, counterpartyConnectionID, counterpartyClientID string,
	counterpartyClient exported.ClientState,
	counterpartyPrefix commitmenttypes.MerklePrefix,
	counterpartyVersions []*Version, delayPeriod uint64,
	initProof, clientProof []byte,
	proofHeight clienttypes.Height, signer string,
) *MsgConnectionOpenTry {
	counterparty := NewCounterparty(counterpartyClientID, counterpartyConnectionID, counterpartyPrefix)
	return &MsgConnectionOpenTry{
		ClientId:             clientID,
		ClientState:          counterpartyClient,
		Counterparty:         counterparty,
		DelayPeriod:          delayPeriod,
		CounterpartyVersions: counterpartyVersions,
		ProofInit:            initProof,
		ProofClient:          clientProof,
		ProofHeight:          proofHeight,
		Signer:               signer,
	}
}

// ValidateBasic performs basic, stateless validation of the message.
func (msg MsgConnectionOpenTry) ValidateBasic() error {
	if err := validateSigner(msg.Signer); err != nil {
		return err
	}
	if err := host.ClientIdentifierValidator(msg.ClientId); err != nil {
		return errorsmod.Wrap(err, "invalid client ID")
	}
	if msg.ClientState == nil {
		return errorsmod.Wrap(clienttypes.ErrInvalidClient, "counterparty client is nil")
	}
	if err := msg.ClientState.Validate(); err != nil {
		return errorsmod.Wrap(err, "counterparty client is invalid")
	}
	if len(msg.CounterpartyVersions) == 0 {
		return errorsmod.Wrap(ibcerrors.ErrInvalidVersion, "empty counterparty versions")
	}
	for i, version := range msg.CounterpartyVersions {
		if err := ValidateVersion(version); err != nil {
			return errorsmod.Wrapf(err, "basic validation failed on version with index %d", i)
		}
	}
	if len(msg.ProofInit) == 0 {
		return errorsmod.Wrap(ibcerrors.ErrInvalidRequest, "cannot submit an empty proof init")
	}
	if len(msg.ProofClient) == 0 {
		return errorsmod.Wrap(ibcerrors.ErrInvalidRequest, "cannot submit an empty proof client")
	}
	return msg.Counterparty.ValidateBasic()
}

// MsgConnectionOpenAck defines the message used to relay acceptance of a
// connection open attempt from the counterparty back to the initiating chain.
type MsgConnectionOpenAck struct {
	ConnectionId             string
	CounterpartyConnectionId string
	ClientState              exported.ClientState
	Version                  *Version
	// proof of the counterparty connection in TRYOPEN state
	ProofTry []byte
	// proof of the client state the counterparty stores for the executing chain
	ProofClient []byte
	ProofHeight clienttypes.Height
	Signer      string
}

// NewMsgConnectionOpenAck creates a new MsgConnectionOpenAck instance
func NewMsgConnectionOpenAck(
	connectionID, counterpartyConnectionID string, counterpartyClient exported.ClientState,
	tryProof, clientProof []byte,
	proofHeight clienttypes.Height,
	version *Version,
	signer string,
) *MsgConnectionOpenAck {
	return &MsgConnectionOpenAck{
		ConnectionId:             connectionID,
		CounterpartyConnectionId: counterpartyConnectionID,
		ClientState:              counterpartyClient,
		Version:                  version,
		ProofTry:                 tryProof,
		ProofClient:              clientProof,
		ProofHeight:              proofHeight,
		Signer:                   signer,
	}
}

// ValidateBasic performs basic, stateless validation of the message.
func (msg MsgConnectionOpenAck) ValidateBasic() error {
	if err := validateSigner(msg.Signer); err != nil {
		return err
	}
	if !IsValidConnectionID(msg.ConnectionId) {
		return ErrInvalidConnectionIdentifier
	}
	if err := host.ConnectionIdentifierValidator(msg.CounterpartyConnectionId); err != nil {
		return errorsmod.Wrap(err, "invalid counterparty connection ID")
	}
	if err := ValidateVersion(msg.Version); err != nil {
		return err
	}
	if msg.ClientState == nil {
		return errorsmod.Wrap(clienttypes.ErrInvalidClient, "counterparty client is nil")
	}
	if err := msg.ClientState.Validate(); err != nil {
		return errorsmod.Wrap(err, "counterparty client is invalid")
	}
	if len(msg.ProofTry) == 0 {
		return errorsmod.Wrap(ibcerrors.ErrInvalidRequest, "cannot submit an empty proof try")
	}
	if len(msg.ProofClient) == 0 {
		return errorsmod.Wrap(ibcerrors.ErrInvalidRequest, "cannot submit an empty proof client")
	}
	return nil
}

// MsgConnectionOpenConfirm defines the message used to relay acknowledgement
// of a connection back to the accepting chain, completing the handshake.
type MsgConnectionOpenConfirm struct {
	ConnectionId string
	// proof of the counterparty connection in OPEN state
	ProofAck    []byte
	ProofHeight clienttypes.Height
	Signer      string
}

// NewMsgConnectionOpenConfirm creates a new MsgConnectionOpenConfirm instance
func NewMsgConnectionOpenConfirm(
	connectionID string, ackProof []byte,
	proofHeight clienttypes.Height, signer string,
) *MsgConnectionOpenConfirm {
	return &MsgConnectionOpenConfirm{
		ConnectionId: connectionID,
		ProofAck:     ackProof,
		ProofHeight:  proofHeight,
		Signer:       signer,
	}
}

// ValidateBasic performs basic, stateless validation of the message.
func (msg MsgConnectionOpenConfirm) ValidateBasic() error {
	if err := validateSigner(msg.Signer); err != nil {
		return err
	}
	if !IsValidConnectionID(msg.ConnectionId) {
		return ErrInvalidConnectionIdentifier
	}
	if len(msg.ProofAck) == 0 {
		return errorsmod.Wrap(ibcerrors.ErrInvalidRequest, "cannot submit an empty proof ack")
	}
	return nil
}

func validateSigner(signer string) error {
	if strings.TrimSpace(signer) == "" {
		return errorsmod.Wrap(ibcerrors.ErrInvalidAddress, "signer address cannot be blank")
	}
	return nil
}

// MsgConnectionOpenInitResponse defines the MsgConnectionOpenInit response
// type.
type MsgConnectionOpenInitResponse struct {
	ConnectionId string
}

// MsgConnectionOpenTryResponse defines the MsgConnectionOpenTry response
// type.
type MsgConnectionOpenTryResponse struct {
	ConnectionId string
}

// MsgConnectionOpenAckResponse defines the MsgConnectionOpenAck response
// type.
type MsgConnectionOpenAckResponse struct{}

// MsgConnectionOpenConfirmResponse defines the MsgConnectionOpenConfirm
// response type.
type MsgConnectionOpenConfirmResponse struct{}
