package types

// channel and packet event attribute keys
const (
	AttributeKeyPortID             = "port_id"
	AttributeKeyChannelID          = "channel_id"
	AttributeKeyCounterpartyPortID = "counterparty_port_id"
	AttributeCounterpartyChannelID = "counterparty_channel_id"
	AttributeKeyConnectionID       = "connection_id"
	AttributeVersion               = "version"

	// AttributeKeyDataHex renders the raw packet data as lowercase hex with
	// no prefix; consumers must treat it as an opaque blob.
	AttributeKeyDataHex = "packet_data_hex"
	// AttributeKeyAckHex renders the raw acknowledgement as lowercase hex
	// with no prefix.
	AttributeKeyAckHex = "packet_ack_hex"

	AttributeKeyTimeoutHeight    = "packet_timeout_height"
	AttributeKeyTimeoutTimestamp = "packet_timeout_timestamp"
	AttributeKeySequence         = "packet_sequence"
	AttributeKeySrcPort          = "packet_src_port"
	AttributeKeySrcChannel       = "packet_src_channel"
	AttributeKeyDstPort          = "packet_dst_port"
	AttributeKeyDstChannel       = "packet_dst_channel"
	AttributeKeyChannelOrdering  = "packet_channel_ordering"
	AttributeKeyConnection       = "packet_connection"
)

// channel event kinds
const (
	EventTypeChannelOpenInit     = "channel_open_init"
	EventTypeChannelOpenTry      = "channel_open_try"
	EventTypeChannelOpenAck      = "channel_open_ack"
	EventTypeChannelOpenConfirm  = "channel_open_confirm"
	EventTypeChannelCloseInit    = "channel_close_init"
	EventTypeChannelCloseConfirm = "channel_close_confirm"
	EventTypeChannelClosed       = "channel_close"
)

// packet event kinds
const (
	EventTypeSendPacket           = "send_packet"
	EventTypeRecvPacket           = "recv_packet"
	EventTypeWriteAck             = "write_acknowledgement"
	EventTypeAcknowledgePacket    = "acknowledge_packet"
	EventTypeTimeoutPacket        = "timeout_packet"
	EventTypeTimeoutPacketOnClose = "timeout_on_close_packet"
)
