package types

import (
	errorsmod "cosmossdk.io/errors"

	host "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/24-host"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/exported"
)

// State defines if a channel is in one of the following states:
// CLOSED, INIT, TRYOPEN, OPEN or UNINITIALIZED.
type State int32

const (
	// Default State
	UNINITIALIZED State = iota
	// A channel has just started the opening handshake.
	INIT
	// A channel has acknowledged the handshake step on the counterparty chain.
	TRYOPEN
	// A channel has completed the handshake. Open channels are
	// ready to send and receive packets.
	OPEN
	// A channel has been closed and can no longer be used to send or receive
	// packets.
	CLOSED
)

// String implements the Stringer interface
func (s State) String() string {
	switch s {
	case INIT:
		return "INIT"
	case TRYOPEN:
		return "TRYOPEN"
	case OPEN:
		return "OPEN"
	case CLOSED:
		return "CLOSED"
	default:
		return "UNINITIALIZED"
	}
}

// Order defines if a channel is ORDERED or UNORDERED
type Order int32

const (
	// zero-value for channel ordering
	NONE Order = iota
	// packets can be delivered in any order, which may differ from the order in which they were sent.
	UNORDERED
	// packets are delivered exactly in the order which they were sent
	ORDERED
)

// String implements the Stringer interface
func (o Order) String() string {
	switch o {
	case UNORDERED:
		return "ORDER_UNORDERED"
	case ORDERED:
		return "ORDER_ORDERED"
	default:
		return "ORDER_NONE_UNSPECIFIED"
	}
}

var _ exported.ChannelI = (*Channel)(nil)

// Channel defines pipeline for exactly-once packet delivery between specific
// modules on separate blockchains, which has at least one end capable of
// sending packets and one end capable of receiving packets.
type Channel struct {
	// current state of the channel end
	State State `cbor:"1,keyasint"`
	// whether the channel is ordered or unordered
	Ordering Order `cbor:"2,keyasint"`
	// counterparty channel end
	Counterparty Counterparty `cbor:"3,keyasint"`
	// list of connection identifiers, in order, along which packets sent on
	// this channel will travel
	ConnectionHops []string `cbor:"4,keyasint"`
	// opaque channel version, which is agreed upon during the handshake
	Version string `cbor:"5,keyasint"`
}

// NewChannel creates a new Channel instance
func NewChannel(
	state State, ordering Order, counterparty Counterparty,
	hops []string, version string,
) Channel {
	return Channel{
		State:          state,
		Ordering:       ordering,
		Counterparty:   counterparty,
		ConnectionHops: hops,
		Version:        version,
	}
}

// GetState implements Channel interface.
func (ch Channel) GetState() int32 {
	return int32(ch.State)
}

// GetOrdering implements Channel interface.
func (ch Channel) GetOrdering() int32 {
	return int32(ch.Ordering)
}

// GetCounterparty implements Channel interface.
func (ch Channel) GetCounterparty() exported.CounterpartyChannelI {
	return ch.Counterparty
}

// GetConnectionHops implements Channel interface.
func (ch Channel) GetConnectionHops() []string {
	return ch.ConnectionHops
}

// GetVersion implements Channel interface.
func (ch Channel) GetVersion() string {
	return ch.Version
}

// ValidateBasic performs a basic validation of the channel fields
func (ch Channel) ValidateBasic() error {
	if ch.State == UNINITIALIZED {
		return ErrInvalidChannelState
	}
	if !(ch.Ordering == ORDERED || ch.Ordering == UNORDERED) {
		return errorsmod.Wrap(ErrInvalidChannelOrdering, ch.Ordering.String())
	}
	if len(ch.ConnectionHops) != 1 {
		return errorsmod.Wrap(
			ErrTooManyConnectionHops,
			"current IBC version only supports one connection hop",
		)
	}
	if err := host.ConnectionIdentifierValidator(ch.ConnectionHops[0]); err != nil {
		return errorsmod.Wrap(err, "invalid connection hop ID")
	}
	return ch.Counterparty.ValidateBasic()
}

var _ exported.CounterpartyChannelI = (*Counterparty)(nil)

// Counterparty defines a channel end counterparty
type Counterparty struct {
	// port on the counterparty chain which owns the other end of the channel.
	PortId string `cbor:"1,keyasint"`
	// channel end on the counterparty chain
	ChannelId string `cbor:"2,keyasint"`
}

// NewCounterparty returns a new Counterparty instance
func NewCounterparty(portID, channelID string) Counterparty {
	return Counterparty{
		PortId:    portID,
		ChannelId: channelID,
	}
}

// GetPortID implements CounterpartyChannelI interface
func (c Counterparty) GetPortID() string {
	return c.PortId
}

// GetChannelID implements CounterpartyChannelI interface
func (c Counterparty) GetChannelID() string {
	return c.ChannelId
}

// ValidateBasic performs a basic validation check of the identifiers
func (c Counterparty) ValidateBasic() error {
	if err := host.PortIdentifierValidator(c.PortId); err != nil {
		return errorsmod.Wrap(err, "invalid counterparty port ID")
	}
	if c.ChannelId != "" {
		if err := host.ChannelIdentifierValidator(c.ChannelId); err != nil {
			return errorsmod.Wrap(err, "invalid counterparty channel ID")
		}
	}
	return nil
}

// IdentifiedChannel pairs a channel end with the port and channel
// identifiers it is stored under, used in iteration and query results.
type IdentifiedChannel struct {
	State          State        `cbor:"1,keyasint"`
	Ordering       Order        `cbor:"2,keyasint"`
	Counterparty   Counterparty `cbor:"3,keyasint"`
	ConnectionHops []string     `cbor:"4,keyasint"`
	Version        string       `cbor:"5,keyasint"`
	PortId         string       `cbor:"6,keyasint"`
	ChannelId      string       `cbor:"7,keyasint"`
}

// NewIdentifiedChannel creates a new IdentifiedChannel instance
func NewIdentifiedChannel(portID, channelID string, ch Channel) IdentifiedChannel {
	return IdentifiedChannel{
		State:          ch.State,
		Ordering:       ch.Ordering,
		Counterparty:   ch.Counterparty,
		ConnectionHops: ch.ConnectionHops,
		Version:        ch.Version,
		PortId:         portID,
		ChannelId:      channelID,
	}
}

// ValidateBasic performs a basic validation of the identifiers and channel fields.
func (ic IdentifiedChannel) ValidateBasic() error {
	if err := host.ChannelIdentifierValidator(ic.ChannelId); err != nil {
		return errorsmod.Wrap(err, "invalid channel ID")
	}
	if err := host.PortIdentifierValidator(ic.PortId); err != nil {
		return errorsmod.Wrap(err, "invalid port ID")
	}
	channel := NewChannel(ic.State, ic.Ordering, ic.Counterparty, ic.ConnectionHops, ic.Version)
	return channel.ValidateBasic()
}

// PacketState pairs a commitment, acknowledgement or receipt with the
// port, channel and sequence it is stored under.
type PacketState struct {
	// channel port identifier.
	PortId string `cbor:"1,keyasint"`
	// channel unique identifier.
	ChannelId string `cbor:"2,keyasint"`
	// packet sequence.
	Sequence uint64 `cbor:"3,keyasint"`
	// embedded data that represents packet state.
	Data []byte `cbor:"4,keyasint"`
}

// NewPacketState creates a new PacketState instance.
func NewPacketState(portID, channelID string, seq uint64, data []byte) PacketState {
	return PacketState{
		PortId:    portID,
		ChannelId: channelID,
		Sequence:  seq,
		Data:      data,
	}
}

// Validate performs basic validation of fields returning an error upon any failure.
func (ps PacketState) Validate() error {
	if ps.Data == nil {
		return errorsmod.Wrap(ErrInvalidPacket, "data bytes cannot be nil")
	}
	return validateGenFields(ps.PortId, ps.ChannelId, ps.Sequence)
}

// PacketId is an identifier for a unique Packet. Source chains refer to
// packets by source port/channel/sequence.
type PacketId struct {
	// channel port identifier
	PortId string `cbor:"1,keyasint"`
	// channel unique identifier
	ChannelId string `cbor:"2,keyasint"`
	// packet sequence
	Sequence uint64 `cbor:"3,keyasint"`
}

// NewPacketID returns a new instance of PacketId
func NewPacketID(portID, channelID string, sequence uint64) PacketId {
	return PacketId{PortId: portID, ChannelId: channelID, Sequence: sequence}
}

// Validate validates the PacketId.
func (p PacketId) Validate() error {
	return validateGenFields(p.PortId, p.ChannelId, p.Sequence)
}

func validateGenFields(portID, channelID string, sequence uint64) error {
	if err := host.PortIdentifierValidator(portID); err != nil {
		return errorsmod.Wrap(err, "invalid port ID")
	}
	if err := host.ChannelIdentifierValidator(channelID); err != nil {
		return errorsmod.Wrap(err, "invalid channel ID")
	}
	if sequence == 0 {
		return errorsmod.Wrap(ErrInvalidPacket, "sequence cannot be 0")
	}
	return nil
}
