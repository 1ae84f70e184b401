package types

import (
	"strings"

	errorsmod "cosmossdk.io/errors"

	clienttypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/02-client/types"
	host "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/24-host"
	ibcerrors "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/errors"
)

// ResponseResultType defines the possible outcomes of the execution of a message
type ResponseResultType int32

const (
	// Default zero value enumeration
	UNSPECIFIED ResponseResultType = iota
	// The message did not call the IBC application callbacks (because, for
	// example, the packet had already been relayed)
	NOOP
	// The message was executed successfully
	SUCCESS
	// The message was executed unsuccessfully
	FAILURE
)

// String returns the name of the result type.
func (r ResponseResultType) String() string {
	switch r {
	case NOOP:
		return "NOOP"
	case SUCCESS:
		return "SUCCESS"
	case FAILURE:
		return "FAILURE"
	default:
		return "UNSPECIFIED"
	}
}

// MsgChannelOpenInit defines the message used to initialize a channel on
// the executing chain.
type MsgChannelOpenInit struct {
	PortId  string
	Channel Channel
	Signer  string
}

// NewMsgChannelOpenInit creates a new MsgChannelOpenInit. It sets the
// counterparty channel identifier to be empty.
func NewMsgChannelOpenInit(
	portID, version string, channelOrder Order, connectionHops []string,
	counterpartyPortID string, signer string,
) *MsgChannelOpenInit {
	counterparty := NewCounterparty(counterpartyPortID, "")
	channel := NewChannel(INIT, channelOrder, counterparty, connectionHops, version)
	return &MsgChannelOpenInit{
		PortId:  portID,
		Channel: channel,
		Signer:  signer,
	}
}

// ValidateBasic performs basic, stateless validation of the message.
func (msg MsgChannelOpenInit) ValidateBasic() error {
	if err := validateSigner(msg.Signer); err != nil {
		return err
	}
	if err := host.PortIdentifierValidator(msg.PortId); err != nil {
		return errorsmod.Wrap(err, "invalid port ID")
	}
	if msg.Channel.State != INIT {
		return errorsmod.Wrapf(ErrInvalidChannelState, "channel state must be INIT in MsgChannelOpenInit. expected: %s, got: %s", INIT, msg.Channel.State)
	}
	if msg.Channel.Counterparty.ChannelId != "" {
		return errorsmod.Wrap(ErrInvalidCounterparty, "counterparty channel identifier must be empty")
	}
	return msg.Channel.ValidateBasic()
}

// MsgChannelOpenTry defines the message used to relay a channel in INIT
// state on the counterparty to the executing chain.
type MsgChannelOpenTry struct {
	PortId              string
	Channel             Channel
	CounterpartyVersion string
	ProofInit           []byte
	ProofHeight         clienttypes.Height
	Signer              string
}

// NewMsgChannelOpenTry creates a new MsgChannelOpenTry instance. The version
// string is deprecated in favor of the counterparty version, and is left
// empty.
func NewMsgChannelOpenTry(
	portID, version string, channelOrder Order, connectionHops []string,
	counterpartyPortID, counterpartyChannelID, counterpartyVersion string,
	initProof []byte, proofHeight clienttypes.Height, signer string,
) *MsgChannelOpenTry {
	counterparty := NewCounterparty(counterpartyPortID, counterpartyChannelID)
	channel := NewChannel(TRYOPEN, channelOrder, counterparty, connectionHops, version)
	return &MsgChannelOpenTry{
		PortId:              portID,
		Channel:             channel,
		CounterpartyVersion: counterpartyVersion,
		ProofInit:           initProof,
		ProofHeight:         proofHeight,
		Signer:              signer,
	}
}

// ValidateBasic performs basic, stateless validation of the message.
func (msg MsgChannelOpenTry) ValidateBasic() error {
	if err := validateSigner(msg.Signer); err != nil {
		return err
	}
	if err := host.PortIdentifierValidator(msg.PortId); err != nil {
		return errorsmod.Wrap(err, "invalid port ID")
	}
	if len(msg.ProofInit) == 0 {
		return errorsmod.Wrap(ibcerrors.ErrInvalidRequest, "cannot submit an empty proof init")
	}
	if msg.Channel.State != TRYOPEN {
		return errorsmod.Wrapf(ErrInvalidChannelState, "channel state must be TRYOPEN in MsgChannelOpenTry. expected: %s, got: %s", TRYOPEN, msg.Channel.State)
	}
	if msg.Channel.Counterparty.ChannelId == "" {
		return errorsmod.Wrap(ErrInvalidCounterparty, "counterparty channel identifier cannot be empty")
	}
	return msg.Channel.ValidateBasic()
}

// MsgChannelOpenAck defines the message used to relay acceptance of a
// channel open attempt back to the initiating chain.
type MsgChannelOpenAck struct {
	PortId                string
	ChannelId             string
	CounterpartyChannelId string
	CounterpartyVersion   string
	ProofTry              []byte
	ProofHeight           clienttypes.Height
	Signer                string
}

// NewMsgChannelOpenAck creates a new MsgChannelOpenAck instance
func NewMsgChannelOpenAck(
	portID, channelID, counterpartyChannelID string, counterpartyVersion string,
	tryProof []byte, proofHeight clienttypes.Height, signer string,
) *MsgChannelOpenAck {
	return &MsgChannelOpenAck{
		PortId:                portID,
		ChannelId:             channelID,
		CounterpartyChannelId: counterpartyChannelID,
		CounterpartyVersion:   counterpartyVersion,
		ProofTry:              tryProof,
		ProofHeight:           proofHeight,
		Signer:                signer,
	}
}

// ValidateBasic performs basic, stateless validation of the message.
func (msg MsgChannelOpenAck) ValidateBasic() error {
	if err := validateSigner(msg.Signer); err != nil {
		return err
	}
	if err := host.PortIdentifierValidator(msg.PortId); err != nil {
		return errorsmod.Wrap(err, "invalid port ID")
	}
	if !IsValidChannelID(msg.ChannelId) {
		return ErrInvalidChannelIdentifier
	}
	if err := host.ChannelIdentifierValidator(msg.CounterpartyChannelId); err != nil {
		return errorsmod.Wrap(err, "invalid counterparty channel ID")
	}
	if len(msg.ProofTry) == 0 {
		return errorsmod.Wrap(ibcerrors.ErrInvalidRequest, "cannot submit an empty proof try")
	}
	return nil
}

// MsgChannelOpenConfirm defines the message used to relay acknowledgement
// of a channel back to the accepting chain, completing the handshake.
type MsgChannelOpenConfirm struct {
	PortId      string
	ChannelId   string
	ProofAck    []byte
	ProofHeight clienttypes.Height
	Signer      string
}

// NewMsgChannelOpenConfirm creates a new MsgChannelOpenConfirm instance
func NewMsgChannelOpenConfirm(
	portID, channelID string, ackProof []byte,
	proofHeight clienttypes.Height, signer string,
) *MsgChannelOpenConfirm {
	return &MsgChannelOpenConfirm{
		PortId:      portID,
		ChannelId:   channelID,
		ProofAck:    ackProof,
		ProofHeight: proofHeight,
		Signer:      signer,
	}
}

// ValidateBasic performs basic, stateless validation of the message.
func (msg MsgChannelOpenConfirm) ValidateBasic() error {
	if err := validateSigner(msg.Signer); err != nil {
		return err
	}
	if err := host.PortIdentifierValidator(msg.PortId); err != nil {
		return errorsmod.Wrap(err, "invalid port ID")
	}
	if !IsValidChannelID(msg.ChannelId) {
		return ErrInvalidChannelIdentifier
	}
	if len(msg.ProofAck) == 0 {
		return errorsmod.Wrap(ibcerrors.ErrInvalidRequest, "cannot submit an empty proof ack")
	}
	return nil
}

// MsgChannelCloseInit defines the message used to close a channel from the
// executing chain's end.
type MsgChannelCloseInit struct {
	PortId    string
	ChannelId string
	Signer    string
}

// NewMsgChannelCloseInit creates a new MsgChannelCloseInit instance
func NewMsgChannelCloseInit(
	portID string, channelID string, signer string,
) *MsgChannelCloseInit {
	return &MsgChannelCloseInit{
		PortId:    portID,
		ChannelId: channelID,
		Signer:    signer,
	}
}

// ValidateBasic performs basic, stateless validation of the message.
func (msg MsgChannelCloseInit) ValidateBasic() error {
	if err := validateSigner(msg.Signer); err != nil {
		return err
	}
	if err := host.PortIdentifierValidator(msg.PortId); err != nil {
		return errorsmod.Wrap(err, "invalid port ID")
	}
	if !IsValidChannelID(msg.ChannelId) {
		return ErrInvalidChannelIdentifier
	}
	return nil
}

// MsgChannelCloseConfirm defines the message used to relay the closure of a
// channel end to the counterparty chain, closing the other end.
type MsgChannelCloseConfirm struct {
	PortId      string
	ChannelId   string
	ProofInit   []byte
	ProofHeight clienttypes.Height
	Signer      string
}

// NewMsgChannelCloseConfirm creates a new MsgChannelCloseConfirm instance
func NewMsgChannelCloseConfirm(
	portID, channelID string, initProof []byte,
	proofHeight clienttypes.Height, signer string,
) *MsgChannelCloseConfirm {
	return &MsgChannelCloseConfirm{
		PortId:      portID,
		ChannelId:   channelID,
		ProofInit:   initProof,
		ProofHeight: proofHeight,
		Signer:      signer,
	}
}

// ValidateBasic performs basic, stateless validation of the message.
func (msg MsgChannelCloseConfirm) ValidateBasic() error {
	if err := validateSigner(msg.Signer); err != nil {
		return err
	}
	if err := host.PortIdentifierValidator(msg.PortId); err != nil {
		return errorsmod.Wrap(err, "invalid port ID")
	}
	if !IsValidChannelID(msg.ChannelId) {
		return ErrInvalidChannelIdentifier
	}
	if len(msg.ProofInit) == 0 {
		return errorsmod.Wrap(ibcerrors.ErrInvalidRequest, "cannot submit an empty proof init")
	}
	return nil
}

// MsgRecvPacket defines the message used to receive an incoming packet on
// the destination chain.
type MsgRecvPacket struct {
	Packet          Packet
	ProofCommitment []byte
	ProofHeight     clienttypes.Height
	Signer          string
}

// NewMsgRecvPacket constructs new MsgRecvPacket
func NewMsgRecvPacket(
	packet Packet, commitmentProof []byte,
	proofHeight clienttypes.Height, signer string,
) *MsgRecvPacket {
	return &MsgRecvPacket{
		Packet:          packet,
		ProofCommitment: commitmentProof,
		ProofHeight:     proofHeight,
		Signer:          signer,
	}
}

// ValidateBasic performs basic, stateless validation of the message.
func (msg MsgRecvPacket) ValidateBasic() error {
	if err := validateSigner(msg.Signer); err != nil {
		return err
	}
	if len(msg.ProofCommitment) == 0 {
		return errorsmod.Wrap(ibcerrors.ErrInvalidRequest, "cannot submit an empty proof")
	}
	return msg.Packet.ValidateBasic()
}

// MsgAcknowledgement defines the message used to process the acknowledgement
// of a packet previously sent by the executing chain.
type MsgAcknowledgement struct {
	Packet          Packet
	Acknowledgement []byte
	ProofAcked      []byte
	ProofHeight     clienttypes.Height
	Signer          string
}

// NewMsgAcknowledgement constructs a new MsgAcknowledgement
func NewMsgAcknowledgement(
	packet Packet,
	ack, ackedProof []byte,
	proofHeight clienttypes.Height,
	signer string,
) *MsgAcknowledgement {
	return &MsgAcknowledgement{
		Packet:          packet,
		Acknowledgement: ack,
		ProofAcked:      ackedProof,
		ProofHeight:     proofHeight,
		Signer:          signer,
	}
}

// ValidateBasic performs basic, stateless validation of the message.
func (msg MsgAcknowledgement) ValidateBasic() error {
	if err := validateSigner(msg.Signer); err != nil {
		return err
	}
	if len(msg.ProofAcked) == 0 {
		return errorsmod.Wrap(ibcerrors.ErrInvalidRequest, "cannot submit an empty acknowledgement proof")
	}
	if len(msg.Acknowledgement) == 0 {
		return errorsmod.Wrap(ErrInvalidAcknowledgement, "ack bytes cannot be empty")
	}
	return msg.Packet.ValidateBasic()
}

// MsgTimeout defines the message used to prove to the sending chain that the
// packet timed out without being received on the destination chain.
type MsgTimeout struct {
	Packet           Packet
	ProofUnreceived  []byte
	ProofHeight      clienttypes.Height
	NextSequenceRecv uint64
	Signer           string
}

// NewMsgTimeout constructs new MsgTimeout
func NewMsgTimeout(
	packet Packet, nextSequenceRecv uint64, unreceivedProof []byte,
	proofHeight clienttypes.Height, signer string,
) *MsgTimeout {
	return &MsgTimeout{
		Packet:           packet,
		ProofUnreceived:  unreceivedProof,
		ProofHeight:      proofHeight,
		NextSequenceRecv: nextSequenceRecv,
		Signer:           signer,
	}
}

// ValidateBasic performs basic, stateless validation of the message.
func (msg MsgTimeout) ValidateBasic() error {
	if err := validateSigner(msg.Signer); err != nil {
		return err
	}
	if len(msg.ProofUnreceived) == 0 {
		return errorsmod.Wrap(ibcerrors.ErrInvalidRequest, "cannot submit an empty unreceived proof")
	}
	return msg.Packet.ValidateBasic()
}

// MsgTimeoutOnClose defines the message used to prove to the sending chain
// that an unreceived packet will never be received because the counterparty
// channel end closed.
type MsgTimeoutOnClose struct {
	Packet           Packet
	ProofUnreceived  []byte
	ProofClose       []byte
	ProofHeight      clienttypes.Height
	NextSequenceRecv uint64
	Signer           string
}

// NewMsgTimeoutOnClose constructs new MsgTimeoutOnClose
func NewMsgTimeoutOnClose(
	packet Packet, nextSequenceRecv uint64,
	unreceivedProof, closeProof []byte,
	proofHeight clienttypes.Height, signer string,
) *MsgTimeoutOnClose {
	return &MsgTimeoutOnClose{
		Packet:           packet,
		ProofUnreceived:  unreceivedProof,
		ProofClose:       closeProof,
		ProofHeight:      proofHeight,
		NextSequenceRecv: nextSequenceRecv,
		Signer:           signer,
	}
}

// ValidateBasic performs basic, stateless validation of the message.
func (msg MsgTimeoutOnClose) ValidateBasic() error {
	if err := validateSigner(msg.Signer); err != nil {
		return err
	}
	if len(msg.ProofUnreceived) == 0 {
		return errorsmod.Wrap(ibcerrors.ErrInvalidRequest, "cannot submit an empty unreceived proof")
	}
	if len(msg.ProofClose) == 0 {
		return errorsmod.Wrap(ibcerrors.ErrInvalidRequest, "cannot submit an empty proof of closed counterparty channel end")
	}
	return msg.Packet.ValidateBasic()
}

func validateSigner(signer string) error {
	if strings.TrimSpace(signer) == "" {
		return errorsmod.Wrap(ibcerrors.ErrInvalidAddress, "signer address cannot be blank")
	}
	return nil
}

// MsgChannelOpenInitResponse defines the MsgChannelOpenInit response type.
type MsgChannelOpenInitResponse struct {
	ChannelId string
	Version   string
}

// MsgChannelOpenTryResponse defines the MsgChannelOpenTry response type.
type MsgChannelOpenTryResponse struct {
	ChannelId string
	Version   string
}

// MsgChannelOpenAckResponse defines the MsgChannelOpenAck response type.
type MsgChannelOpenAckResponse struct{}

// MsgChannelOpenConfirmResponse defines the MsgChannelOpenConfirm response
// type.
type MsgChannelOpenConfirmResponse struct{}

// MsgChannelCloseInitResponse defines the MsgChannelCloseInit response type.
type MsgChannelCloseInitResponse struct{}

// MsgChannelCloseConfirmResponse defines the MsgChannelCloseConfirm response
// type.
type MsgChannelCloseConfirmResponse struct{}

// MsgRecvPacketResponse defines the MsgRecvPacket response type.
type MsgRecvPacketResponse struct {
	Result ResponseResultType
}

// MsgAcknowledgementResponse defines the MsgAcknowledgement response type.
type MsgAcknowledgementResponse struct {
	Result ResponseResultType
}

// MsgTimeoutResponse defines the MsgTimeout response type.
type MsgTimeoutResponse struct {
	Result ResponseResultType
}

// MsgTimeoutOnCloseResponse defines the MsgTimeoutOnClose response type.
type MsgTimeoutOnCloseResponse struct {
	Result ResponseResultType
}
