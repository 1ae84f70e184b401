package types

import (
	"errors"
	"fmt"

	host "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/24-host"
)

// PacketSequence pairs the next sequence of a channel end with the port and
// channel identifiers it is stored under.
type PacketSequence struct {
	PortId    string `cbor:"1,keyasint"`
	ChannelId string `cbor:"2,keyasint"`
	Sequence  uint64 `cbor:"3,keyasint"`
}

// NewPacketSequence creates a new PacketSequence instance.
func NewPacketSequence(portID, channelID string, seq uint64) PacketSequence {
	return PacketSequence{
		PortId:    portID,
		ChannelId: channelID,
		Sequence:  seq,
	}
}

// Validate performs basic validation of fields returning an error upon any failure.
func (ps PacketSequence) Validate() error {
	return validateGenFields(ps.PortId, ps.ChannelId, ps.Sequence)
}

// GenesisState defines the ibc channel submodule's genesis state.
type GenesisState struct {
	Channels            []IdentifiedChannel
	Acknowledgements    []PacketState
	Commitments         []PacketState
	Receipts            []PacketState
	SendSequences       []PacketSequence
	RecvSequences       []PacketSequence
	AckSequences        []PacketSequence
	NextChannelSequence uint64
}

// NewGenesisState creates a GenesisState instance.
func NewGenesisState(
	channels []IdentifiedChannel, acks, commitments, receipts []PacketState,
	sendSeqs, recvSeqs, ackSeqs []PacketSequence, nextChannelSequence uint64,
) GenesisState {
	return GenesisState{
		Channels:            channels,
		Acknowledgements:    acks,
		Commitments:         commitments,
		Receipts:            receipts,
		SendSequences:       sendSeqs,
		RecvSequences:       recvSeqs,
		AckSequences:        ackSeqs,
		NextChannelSequence: nextChannelSequence,
	}
}

// DefaultGenesisState returns the ibc channel submodule's default genesis state.
func DefaultGenesisState() GenesisState {
	return GenesisState{
		Channels:            []IdentifiedChannel{},
		Acknowledgements:    []PacketState{},
		Commitments:         []PacketState{},
		Receipts:            []PacketState{},
		SendSequences:       []PacketSequence{},
		RecvSequences:       []PacketSequence{},
		AckSequences:        []PacketSequence{},
		NextChannelSequence: 0,
	}
}

// Validate performs basic genesis state validation returning an error upon
// any failure.
func (gs GenesisState) Validate() error {
	for i, channel := range gs.Channels {
		sequence, err := host.ParseIdentifier(channel.ChannelId, ChannelPrefix)
		if err != nil {
			return err
		}

		if sequence >= gs.NextChannelSequence {
			return fmt.Errorf("channel identifier %s has a sequence greater than or equal to the next channel sequence %d", channel.ChannelId, gs.NextChannelSequence)
		}

		if err := channel.ValidateBasic(); err != nil {
			return fmt.Errorf("invalid channel %v index %d: %w", channel, i, err)
		}
	}

	for i, ack := range gs.Acknowledgements {
		if err := ack.Validate(); err != nil {
			return fmt.Errorf("invalid acknowledgement %v ack index %d: %w", ack, i, err)
		}
		if len(ack.Data) == 0 {
			return errors.New("invalid acknowledgement state, ack data bytes cannot be empty")
		}
	}

	for i, receipt := range gs.Receipts {
		if err := receipt.Validate(); err != nil {
			return fmt.Errorf("invalid receipt %v receipt index %d: %w", receipt, i, err)
		}
	}

	for i, commitment := range gs.Commitments {
		if err := commitment.Validate(); err != nil {
			return fmt.Errorf("invalid commitment %v index %d: %w", commitment, i, err)
		}
		if len(commitment.Data) == 0 {
			return errors.New("invalid commitment state, commitment data bytes cannot be empty")
		}
	}

	for i, ss := range gs.SendSequences {
		if err := ss.Validate(); err != nil {
			return fmt.Errorf("invalid send sequence %v index %d: %w", ss, i, err)
		}
	}

	for i, rs := range gs.RecvSequences {
		if err := rs.Validate(); err != nil {
			return fmt.Errorf("invalid receive sequence %v index %d: %w", rs, i, err)
		}
	}

	for i, as := range gs.AckSequences {
		if err := as.Validate(); err != nil {
			return fmt.Errorf("invalid acknowledgement sequence %v index %d: %w", as, i, err)
		}
	}

	return nil
}
