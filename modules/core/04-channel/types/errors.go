package types

import (
	errorsmod "cosmossdk.io/errors"
)

// SubModuleName defines the channel submodule name. It doubles as the
// error codespace for the submodule's sentinel errors.
const SubModuleName = "channel"

// IBC channel sentinel errors
var (
	ErrChannelExists            = errorsmod.Register(SubModuleName, 2, "channel already exists")
	ErrChannelNotFound          = errorsmod.Register(SubModuleName, 3, "channel not found")
	ErrInvalidChannel           = errorsmod.Register(SubModuleName, 4, "invalid channel")
	ErrInvalidChannelState      = errorsmod.Register(SubModuleName, 5, "invalid channel state")
	ErrInvalidChannelOrdering   = errorsmod.Register(SubModuleName, 6, "invalid channel ordering")
	ErrInvalidCounterparty      = errorsmod.Register(SubModuleName, 7, "invalid counterparty channel")
	ErrSequenceSendNotFound     = errorsmod.Register(SubModuleName, 8, "sequence send not found")
	ErrSequenceReceiveNotFound  = errorsmod.Register(SubModuleName, 9, "sequence receive not found")
	ErrSequenceAckNotFound      = errorsmod.Register(SubModuleName, 10, "sequence acknowledgement not found")
	ErrInvalidPacket            = errorsmod.Register(SubModuleName, 11, "invalid packet")
	ErrPacketTimeout            = errorsmod.Register(SubModuleName, 12, "packet timeout")
	ErrTooManyConnectionHops    = errorsmod.Register(SubModuleName, 13, "too many connection hops")
	ErrInvalidAcknowledgement   = errorsmod.Register(SubModuleName, 14, "invalid acknowledgement")
	ErrAcknowledgementExists    = errorsmod.Register(SubModuleName, 15, "acknowledgement for packet already exists")
	ErrInvalidChannelIdentifier = errorsmod.Register(SubModuleName, 16, "invalid channel identifier")

	// packets already relayed are no-ops
	ErrNoOpMsg = errorsmod.Register(SubModuleName, 17, "message is redundant, no-op will be performed")

	ErrInvalidChannelVersion    = errorsmod.Register(SubModuleName, 18, "invalid channel version")
	ErrPacketNotSent            = errorsmod.Register(SubModuleName, 19, "packet has not been sent")
	ErrInvalidTimeout           = errorsmod.Register(SubModuleName, 20, "invalid packet timeout")
	ErrPacketCommitmentNotFound = errorsmod.Register(SubModuleName, 21, "packet commitment not found")
	ErrPacketReceived           = errorsmod.Register(SubModuleName, 22, "packet already received")
	ErrTimeoutNotReached        = errorsmod.Register(SubModuleName, 23, "timeout not reached")
	ErrTimeoutElapsed           = errorsmod.Register(SubModuleName, 24, "timeout elapsed")
	ErrPacketSequenceOutOfOrder = errorsmod.Register(SubModuleName, 25, "packet sequence is out of order")
	ErrRedundantTx              = errorsmod.Register(SubModuleName, 26, "packet messages are redundant")
)
