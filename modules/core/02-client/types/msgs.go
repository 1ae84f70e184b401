package types

import (
	"strings"

	errorsmod "cosmossdk.io/errors"

	host "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/24-host"
	ibcerrors "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/errors"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/exported"
)

// MsgCreateClient defines a message to create an IBC client
type MsgCreateClient struct {
	// light client state
	ClientState exported.ClientState
	// consensus state associated with the client that corresponds to a given
	// height
	ConsensusState exported.ConsensusState
	// signer address
	Signer string
}

// NewMsgCreateClient creates a new MsgCreateClient instance
func NewMsgCreateClient(
	clientState exported.ClientState, consensusState exported.ConsensusState, signer string,
) *MsgCreateClient {
	return &MsgCreateClient{
		ClientState:    clientState,
		ConsensusState: consensusState,
		Signer:         signer,
	}
}

// ValidateBasic performs basic, stateless validation of the message.
func (msg MsgCreateClient) ValidateBasic() error {
	if err := validateSigner(msg.Signer); err != nil {
		return err
	}
	if msg.ClientState == nil {
		return errorsmod.Wrap(ErrInvalidClient, "client state cannot be nil")
	}
	if err := msg.ClientState.Validate(); err != nil {
		return err
	}
	if msg.ConsensusState == nil {
		return errorsmod.Wrap(ErrInvalidConsensus, "consensus state cannot be nil")
	}
	if msg.ClientState.ClientType() != msg.ConsensusState.ClientType() {
		return errorsmod.Wrap(ErrInvalidClientType, "client type for client state and consensus state do not match")
	}
	return msg.ConsensusState.ValidateBasic()
}

// MsgUpdateClient defines a message to update an IBC client with a header or
// with misbehaviour evidence.
type MsgUpdateClient struct {
	// client unique identifier
	ClientId string
	// client message to update the light client
	ClientMessage exported.ClientMessage
	// signer address
	Signer string
}

// NewMsgUpdateClient creates a new MsgUpdateClient instance
func NewMsgUpdateClient(id string, clientMsg exported.ClientMessage, signer string) *MsgUpdateClient {
	return &MsgUpdateClient{
		ClientId:      id,
		ClientMessage: clientMsg,
		Signer:        signer,
	}
}

// ValidateBasic performs basic, stateless validation of the message.
func (msg MsgUpdateClient) ValidateBasic() error {
	if err := validateSigner(msg.Signer); err != nil {
		return err
	}
	if msg.ClientMessage == nil {
		return errorsmod.Wrap(ErrInvalidClient, "client message cannot be nil")
	}
	if err := msg.ClientMessage.ValidateBasic(); err != nil {
		return err
	}
	return host.ClientIdentifierValidator(msg.ClientId)
}

// MsgUpgradeClient defines a message to upgrade an IBC client to a new client
// state committed by the counterparty at its upgrade plan height.
type MsgUpgradeClient struct {
	// client unique identifier
	ClientId string
	// upgraded client state
	ClientState exported.ClientState
	// upgraded consensus state, only contains enough information to serve as a
	// basis of trust in update logic
	ConsensusState exported.ConsensusState
	// proof that old chain committed to new client
	ProofUpgradeClient []byte
	// proof that old chain committed to new consensus state
	ProofUpgradeConsensusState []byte
	// signer address
	Signer string
}

// NewMsgUpgradeClient creates a new MsgUpgradeClient instance
func NewMsgUpgradeClient(clientID string, clientState exported.ClientState, consensusState exported.ConsensusState,
	upgradeClientProof, upgradeConsensusStateProof []byte, signer string,
) *MsgUpgradeClient {
	return &MsgUpgradeClient{
		ClientId:                   clientID,
		ClientState:                clientState,
		ConsensusState:             consensusState,
		ProofUpgradeClient:         upgradeClientProof,
		ProofUpgradeConsensusState: upgradeConsensusStateProof,
		Signer:                     signer,
	}
}

// ValidateBasic performs basic, stateless validation of the message.
func (msg MsgUpgradeClient) ValidateBasic() error {
	if err := validateSigner(msg.Signer); err != nil {
		return err
	}
	if msg.ClientState == nil {
		return errorsmod.Wrap(ErrInvalidClient, "client state cannot be nil")
	}
	if err := msg.ClientState.Validate(); err != nil {
		return err
	}
	if msg.ConsensusState == nil {
		return errorsmod.Wrap(ErrInvalidConsensus, "consensus state cannot be nil")
	}
	if msg.ClientState.ClientType() != msg.ConsensusState.ClientType() {
		return errorsmod.Wrapf(ErrInvalidUpgradeClient, "consensus state's client-type does not match client. expected: %s, got: %s",
			msg.ClientState.ClientType(), msg.ConsensusState.ClientType())
	}
	if len(msg.ProofUpgradeClient) == 0 {
		return errorsmod.Wrap(ErrInvalidUpgradeClient, "proof of upgrade client cannot be empty")
	}
	if len(msg.ProofUpgradeConsensusState) == 0 {
		return errorsmod.Wrap(ErrInvalidUpgradeClient, "proof of upgrade consensus state cannot be empty")
	}
	return host.ClientIdentifierValidator(msg.ClientId)
}

// MsgSubmitMisbehaviour defines a message to submit misbehaviour evidence
// against an IBC client.
type MsgSubmitMisbehaviour struct {
	// client unique identifier
	ClientId string
	// misbehaviour used for freezing the light client
	Misbehaviour exported.ClientMessage
	// signer address
	Signer string
}

// NewMsgSubmitMisbehaviour creates a new MsgSubmitMisbehaviour instance
func NewMsgSubmitMisbehaviour(clientID string, misbehaviour exported.ClientMessage, signer string) *MsgSubmitMisbehaviour {
	return &MsgSubmitMisbehaviour{
		ClientId:     clientID,
		Misbehaviour: misbehaviour,
		Signer:       signer,
	}
}

// ValidateBasic performs basic, stateless validation of the message.
func (msg MsgSubmitMisbehaviour) ValidateBasic() error {
	if err := validateSigner(msg.Signer); err != nil {
		return err
	}
	if msg.Misbehaviour == nil {
		return errorsmod.Wrap(ErrInvalidMisbehaviour, "misbehaviour cannot be nil")
	}
	if err := msg.Misbehaviour.ValidateBasic(); err != nil {
		return err
	}
	return host.ClientIdentifierValidator(msg.ClientId)
}

func validateSigner(signer string) error {
	if strings.TrimSpace(signer) == "" {
		return errorsmod.Wrap(ibcerrors.ErrInvalidAddress, "signer address cannot be blank")
	}
	return nil
}

// MsgCreateClientResponse defines the MsgCreateClient response type.
type MsgCreateClientResponse struct {
	ClientId string
}

// MsgUpdateClientResponse defines the MsgUpdateClient response type.
type MsgUpdateClientResponse struct{}

// MsgUpgradeClientResponse defines the MsgUpgradeClient response type.
type MsgUpgradeClientResponse struct{}

// MsgSubmitMisbehaviourResponse defines the MsgSubmitMisbehaviour response
// type.
type MsgSubmitMisbehaviourResponse struct{}
