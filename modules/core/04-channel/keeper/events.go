package keeper

import (
	"encoding/hex"
	"fmt"

	"github.com/Salpiglossis/cosmos-ibc-rs/host"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/04-channel/types"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/exported"
)

// emitChannelOpenInitEvent emits a channel open init event
func emitChannelOpenInitEvent(ctx host.Context, portID string, channelID string, channel types.Channel) {
	ctx.EventManager().EmitEvent(
		host.NewEvent(
			types.EventTypeChannelOpenInit,
			host.NewAttribute(types.AttributeKeyPortID, portID),
			host.NewAttribute(types.AttributeKeyChannelID, channelID),
			host.NewAttribute(types.AttributeKeyCounterpartyPortID, channel.Counterparty.PortId),
			host.NewAttribute(types.AttributeCounterpartyChannelID, channel.Counterparty.ChannelId),
			host.NewAttribute(types.AttributeKeyConnectionID, channel.ConnectionHops[0]),
			host.NewAttribute(types.AttributeVersion, channel.Version),
		),
	)
}

// emitChannelOpenTryEvent emits a channel open try event
func emitChannelOpenTryEvent(ctx host.Context, portID string, channelID string, channel types.Channel) {
	ctx.EventManager().EmitEvent(
		host.NewEvent(
			types.EventTypeChannelOpenTry,
			host.NewAttribute(types.AttributeKeyPortID, portID),
			host.NewAttribute(types.AttributeKeyChannelID, channelID),
			host.NewAttribute(types.AttributeKeyCounterpartyPortID, channel.Counterparty.PortId),
			host.NewAttribute(types.AttributeCounterpartyChannelID, channel.Counterparty.ChannelId),
			host.NewAttribute(types.AttributeKeyConnectionID, channel.ConnectionHops[0]),
			host.NewAttribute(types.AttributeVersion, channel.Version),
		),
	)
}

// emitChannelOpenAckEvent emits a channel open acknowledge event
func emitChannelOpenAckEvent(ctx host.Context, portID string, channelID string, channel types.Channel) {
	ctx.EventManager().EmitEvent(
		host.NewEvent(
			types.EventTypeChannelOpenAck,
			host.NewAttribute(types.AttributeKeyPortID, portID),
			host.NewAttribute(types.AttributeKeyChannelID, channelID),
			host.NewAttribute(types.AttributeKeyCounterpartyPortID, channel.Counterparty.PortId),
			host.NewAttribute(types.AttributeCounterpartyChannelID, channel.Counterparty.ChannelId),
			host.NewAttribute(types.AttributeKeyConnectionID, channel.ConnectionHops[0]),
		),
	)
}

// emitChannelOpenConfirmEvent emits a channel open confirm event
func emitChannelOpenConfirmEvent(ctx host.Context, portID string, channelID string, channel types.Channel) {
	ctx.EventManager().EmitEvent(
		host.NewEvent(
			types.EventTypeChannelOpenConfirm,
			host.NewAttribute(types.AttributeKeyPortID, portID),
			host.NewAttribute(types.AttributeKeyChannelID, channelID),
			host.NewAttribute(types.AttributeKeyCounterpartyPortID, channel.Counterparty.PortId),
			host.NewAttribute(types.AttributeCounterpartyChannelID, channel.Counterparty.ChannelId),
			host.NewAttribute(types.AttributeKeyConnectionID, channel.ConnectionHops[0]),
		),
	)
}

// emitChannelCloseInitEvent emits a channel close init event
func emitChannelCloseInitEvent(ctx host.Context, portID string, channelID string, channel types.Channel) {
	ctx.EventManager().EmitEvent(
		host.NewEvent(
			types.EventTypeChannelCloseInit,
			host.NewAttribute(types.AttributeKeyPortID, portID),
			host.NewAttribute(types.AttributeKeyChannelID, channelID),
			host.NewAttribute(types.AttributeKeyCounterpartyPortID, channel.Counterparty.PortId),
			host.NewAttribute(types.AttributeCounterpartyChannelID, channel.Counterparty.ChannelId),
			host.NewAttribute(types.AttributeKeyConnectionID, channel.ConnectionHops[0]),
		),
	)
}

// emitChannelCloseConfirmEvent emits a channel close confirm event
func emitChannelCloseConfirmEvent(ctx host.Context, portID string, channelID string, channel types.Channel) {
	ctx.EventManager().EmitEvent(
		host.NewEvent(
			types.EventTypeChannelCloseConfirm,
			host.NewAttribute(types.AttributeKeyPortID, portID),
			host.NewAttribute(types.AttributeKeyChannelID, channelID),
			host.NewAttribute(types.AttributeKeyCounterpartyPortID, channel.Counterparty.PortId),
			host.NewAttribute(types.AttributeCounterpartyChannelID, channel.Counterparty.ChannelId),
			host.NewAttribute(types.AttributeKeyConnectionID, channel.ConnectionHops[0]),
		),
	)
}

// emitSendPacketEvent emits an event with packet data along with other packet information for relayer
// to pick up and relay to other chain
func emitSendPacketEvent(ctx host.Context, packet exported.PacketI, channel types.Channel, timeoutHeight exported.Height) {
	ctx.EventManager().EmitEvent(
		host.NewEvent(
			types.EventTypeSendPacket,
			host.NewAttribute(types.AttributeKeyDataHex, hex.EncodeToString(packet.GetData())),
			host.NewAttribute(types.AttributeKeyTimeoutHeight, timeoutHeight.String()),
			host.NewAttribute(types.AttributeKeyTimeoutTimestamp, fmt.Sprintf("%d", packet.GetTimeoutTimestamp())),
			host.NewAttribute(types.AttributeKeySequence, fmt.Sprintf("%d", packet.GetSequence())),
			host.NewAttribute(types.AttributeKeySrcPort, packet.GetSourcePort()),
			host.NewAttribute(types.AttributeKeySrcChannel, packet.GetSourceChannel()),
			host.NewAttribute(types.AttributeKeyDstPort, packet.GetDestPort()),
			host.NewAttribute(types.AttributeKeyDstChannel, packet.GetDestChannel()),
			host.NewAttribute(types.AttributeKeyChannelOrdering, channel.Ordering.String()),
			host.NewAttribute(types.AttributeKeyConnection, channel.ConnectionHops[0]),
		),
	)
}

// emitRecvPacketEvent emits a receive packet event. It will be emitted both the first time a packet
// is received for a certain sequence and for all duplicate receives.
func emitRecvPacketEvent(ctx host.Context, packet exported.PacketI, channel types.Channel) {
	ctx.EventManager().EmitEvent(
		host.NewEvent(
			types.EventTypeRecvPacket,
			host.NewAttribute(types.AttributeKeyDataHex, hex.EncodeToString(packet.GetData())),
			host.NewAttribute(types.AttributeKeyTimeoutHeight, packet.GetTimeoutHeight().String()),
			host.NewAttribute(types.AttributeKeyTimeoutTimestamp, fmt.Sprintf("%d", packet.GetTimeoutTimestamp())),
			host.NewAttribute(types.AttributeKeySequence, fmt.Sprintf("%d", packet.GetSequence())),
			host.NewAttribute(types.AttributeKeySrcPort, packet.GetSourcePort()),
			host.NewAttribute(types.AttributeKeySrcChannel, packet.GetSourceChannel()),
			host.NewAttribute(types.AttributeKeyDstPort, packet.GetDestPort()),
			host.NewAttribute(types.AttributeKeyDstChannel, packet.GetDestChannel()),
			host.NewAttribute(types.AttributeKeyChannelOrdering, channel.Ordering.String()),
			host.NewAttribute(types.AttributeKeyConnection, channel.ConnectionHops[0]),
		),
	)
}

// emitWriteAcknowledgementEvent emits an event that the relayer can query for
func emitWriteAcknowledgementEvent(ctx host.Context, packet exported.PacketI, channel types.Channel, acknowledgement []byte) {
	ctx.EventManager().EmitEvent(
		host.NewEvent(
			types.EventTypeWriteAck,
			host.NewAttribute(types.AttributeKeyDataHex, hex.EncodeToString(packet.GetData())),
			host.NewAttribute(types.AttributeKeyTimeoutHeight, packet.GetTimeoutHeight().String()),
			host.NewAttribute(types.AttributeKeyTimeoutTimestamp, fmt.Sprintf("%d", packet.GetTimeoutTimestamp())),
			host.NewAttribute(types.AttributeKeySequence, fmt.Sprintf("%d", packet.GetSequence())),
			host.NewAttribute(types.AttributeKeySrcPort, packet.GetSourcePort()),
			host.NewAttribute(types.AttributeKeySrcChannel, packet.GetSourceChannel()),
			host.NewAttribute(types.AttributeKeyDstPort, packet.GetDestPort()),
			host.NewAttribute(types.AttributeKeyDstChannel, packet.GetDestChannel()),
			host.NewAttribute(types.AttributeKeyAckHex, hex.EncodeToString(acknowledgement)),
			host.NewAttribute(types.AttributeKeyConnection, channel.ConnectionHops[0]),
		),
	)
}

// emitAcknowledgePacketEvent emits an acknowledge packet event. It will be emitted both the first time
// a packet is acknowledged for a certain sequence and for all duplicate acknowledgements.
func emitAcknowledgePacketEvent(ctx host.Context, packet exported.PacketI, channel types.Channel) {
	ctx.EventManager().EmitEvent(
		host.NewEvent(
			types.EventTypeAcknowledgePacket,
			host.NewAttribute(types.AttributeKeyTimeoutHeight, packet.GetTimeoutHeight().String()),
			host.NewAttribute(types.AttributeKeyTimeoutTimestamp, fmt.Sprintf("%d", packet.GetTimeoutTimestamp())),
			host.NewAttribute(types.AttributeKeySequence, fmt.Sprintf("%d", packet.GetSequence())),
			host.NewAttribute(types.AttributeKeySrcPort, packet.GetSourcePort()),
			host.NewAttribute(types.AttributeKeySrcChannel, packet.GetSourceChannel()),
			host.NewAttribute(types.AttributeKeyDstPort, packet.GetDestPort()),
			host.NewAttribute(types.AttributeKeyDstChannel, packet.GetDestChannel()),
			host.NewAttribute(types.AttributeKeyChannelOrdering, channel.Ordering.String()),
			host.NewAttribute(types.AttributeKeyConnection, channel.ConnectionHops[0]),
		),
	)
}

// emitTimeoutPacketEvent emits a timeout packet event. It will be emitted both the first time a packet
// is timed out for a certain sequence and for all duplicate timeouts.
func emitTimeoutPacketEvent(ctx host.Context, packet exported.PacketI, channel types.Channel) {
	ctx.EventManager().EmitEvent(
		host.NewEvent(
			types.EventTypeTimeoutPacket,
			host.NewAttribute(types.AttributeKeyTimeoutHeight, packet.GetTimeoutHeight().String()),
			host.NewAttribute(types.AttributeKeyTimeoutTimestamp, fmt.Sprintf("%d", packet.GetTimeoutTimestamp())),
			host.NewAttribute(types.AttributeKeySequence, fmt.Sprintf("%d", packet.GetSequence())),
			host.NewAttribute(types.AttributeKeySrcPort, packet.GetSourcePort()),
			host.NewAttribute(types.AttributeKeySrcChannel, packet.GetSourceChannel()),
			host.NewAttribute(types.AttributeKeyDstPort, packet.GetDestPort()),
			host.NewAttribute(types.AttributeKeyDstChannel, packet.GetDestChannel()),
			host.NewAttribute(types.AttributeKeyChannelOrdering, channel.Ordering.String()),
		),
	)
}

// emitChannelClosedEvent emits a channel closed event.
func emitChannelClosedEvent(ctx host.Context, packet exported.PacketI, channel types.Channel) {
	ctx.EventManager().EmitEvent(
		host.NewEvent(
			types.EventTypeChannelClosed,
			host.NewAttribute(types.AttributeKeyPortID, packet.GetSourcePort()),
			host.NewAttribute(types.AttributeKeyChannelID, packet.GetSourceChannel()),
			host.NewAttribute(types.AttributeKeyCounterpartyPortID, channel.Counterparty.PortId),
			host.NewAttribute(types.AttributeCounterpartyChannelID, channel.Counterparty.ChannelId),
			host.NewAttribute(types.AttributeKeyConnectionID, channel.ConnectionHops[0]),
			host.NewAttribute(types.AttributeKeyChannelOrdering, channel.Ordering.String()),
		),
	)
}
