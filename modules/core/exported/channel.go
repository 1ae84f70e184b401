package exported

// ChannelI defines the standard interface for a channel end.
type ChannelI interface {
	GetState() int32
	GetOrdering() int32
	GetCounterparty() CounterpartyChannelI
	GetConnectionHops() []string
	GetVersion() string
	ValidateBasic() error
}

// CounterpartyChannelI defines the standard interface for a channel
// end's counterparty.
type CounterpartyChannelI interface {
	GetPortID() string
	GetChannelID() string
	ValidateBasic() error
}

// Acknowledgement defines the interface used to return acknowledgements
// in the OnRecvPacket callback. The Acknowledgement interface is used by
// the core to write the acknowledgement to state; only its committed bytes
// and success flag are interpreted.
type Acknowledgement interface {
	Success() bool
	Acknowledgement() []byte
}

// PacketI defines the standard interface for a packet.
type PacketI interface {
	GetSequence() uint64
	GetTimeoutHeight() Height
	GetTimeoutTimestamp() uint64
	GetSourcePort() string
	GetSourceChannel() string
	GetDestPort() string
	GetDestChannel() string
	GetData() []byte
	ValidateBasic() error
}
