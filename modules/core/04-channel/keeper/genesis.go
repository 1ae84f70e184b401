package keeper

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Salpiglossis/cosmos-ibc-rs/host"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/04-channel/types"
	ibchost "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/24-host"
)

// InitGenesis initializes the ibc channel submodule's state from a provided
// genesis state.
func (k Keeper) InitGenesis(ctx host.Context, gs types.GenesisState) {
	if err := gs.Validate(); err != nil {
		panic(fmt.Errorf("invalid ibc channel genesis state: %w", err))
	}

	for _, channel := range gs.Channels {
		ch := types.NewChannel(channel.State, channel.Ordering, channel.Counterparty, channel.ConnectionHops, channel.Version)
		k.SetChannel(ctx, channel.PortId, channel.ChannelId, ch)
	}
	for _, ack := range gs.Acknowledgements {
		k.SetPacketAcknowledgement(ctx, ack.PortId, ack.ChannelId, ack.Sequence, ack.Data)
	}
	for _, commitment := range gs.Commitments {
		k.SetPacketCommitment(ctx, commitment.PortId, commitment.ChannelId, commitment.Sequence, commitment.Data)
	}
	for _, receipt := range gs.Receipts {
		k.SetPacketReceipt(ctx, receipt.PortId, receipt.ChannelId, receipt.Sequence)
	}
	for _, ss := range gs.SendSequences {
		k.SetNextSequenceSend(ctx, ss.PortId, ss.ChannelId, ss.Sequence)
	}
	for _, rs := range gs.RecvSequences {
		k.SetNextSequenceRecv(ctx, rs.PortId, rs.ChannelId, rs.Sequence)
	}
	for _, as := range gs.AckSequences {
		k.SetNextSequenceAck(ctx, as.PortId, as.ChannelId, as.Sequence)
	}
	k.SetNextChannelSequence(ctx, gs.NextChannelSequence)
}

// ExportGenesis returns the ibc channel submodule's exported genesis.
func (k Keeper) ExportGenesis(ctx host.Context) types.GenesisState {
	return types.GenesisState{
		Channels:            k.GetAllChannels(ctx),
		Acknowledgements:    k.GetAllPacketAcks(ctx),
		Commitments:         k.GetAllPacketCommitments(ctx),
		Receipts:            k.GetAllPacketReceipts(ctx),
		SendSequences:       k.GetAllPacketSendSeqs(ctx),
		RecvSequences:       k.GetAllPacketRecvSeqs(ctx),
		AckSequences:        k.GetAllPacketAckSeqs(ctx),
		NextChannelSequence: k.GetNextChannelSequence(ctx),
	}
}

// IteratePacketSequence provides an iterator over the send, receive or ack
// sequences stored under keyPrefix. For each sequence, cb will be called. If
// the cb returns true, the iterator will close and stop.
func (k Keeper) IteratePacketSequence(ctx host.Context, keyPrefix string, cb func(portID, channelID string, sequence uint64) bool) {
	iterator, err := ctx.KVStore().Iterator([]byte(keyPrefix), nil)
	if err != nil {
		panic(err)
	}
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		// sequence key is in the format "<prefix>/ports/<portID>/channels/<channelID>"
		keySplit := strings.Split(string(iterator.Key()), "/")
		if len(keySplit) != 5 || keySplit[0] != keyPrefix {
			continue
		}
		portID := keySplit[2]
		channelID := keySplit[4]

		sequence := host.BigEndianToUint64(iterator.Value())

		if cb(portID, channelID, sequence) {
			break
		}
	}
}

// GetAllPacketSendSeqs returns all stored next send sequences.
func (k Keeper) GetAllPacketSendSeqs(ctx host.Context) (seqs []types.PacketSequence) {
	k.IteratePacketSequence(ctx, ibchost.KeyNextSeqSendPrefix, func(portID, channelID string, nextSendSeq uint64) bool {
		seqs = append(seqs, types.NewPacketSequence(portID, channelID, nextSendSeq))
		return false
	})
	return seqs
}

// GetAllPacketRecvSeqs returns all stored next recv sequences.
func (k Keeper) GetAllPacketRecvSeqs(ctx host.Context) (seqs []types.PacketSequence) {
	k.IteratePacketSequence(ctx, ibchost.KeyNextSeqRecvPrefix, func(portID, channelID string, nextRecvSeq uint64) bool {
		seqs = append(seqs, types.NewPacketSequence(portID, channelID, nextRecvSeq))
		return false
	})
	return seqs
}

// GetAllPacketAckSeqs returns all stored next acknowledgements sequences.
func (k Keeper) GetAllPacketAckSeqs(ctx host.Context) (seqs []types.PacketSequence) {
	k.IteratePacketSequence(ctx, ibchost.KeyNextSeqAckPrefix, func(portID, channelID string, nextAckSeq uint64) bool {
		seqs = append(seqs, types.NewPacketSequence(portID, channelID, nextAckSeq))
		return false
	})
	return seqs
}

// IteratePacketCommitment provides an iterator over all PacketCommitment
// objects. For each packet commitment, cb will be called. If the cb returns
// true, the iterator will close and stop.
func (k Keeper) IteratePacketCommitment(ctx host.Context, cb func(portID, channelID string, sequence uint64, hash []byte) bool) {
	k.iteratePacketState(ctx, ibchost.KeyPacketCommitmentPrefix, cb)
}

// GetAllPacketCommitments returns all stored PacketCommitments objects.
func (k Keeper) GetAllPacketCommitments(ctx host.Context) (commitments []types.PacketState) {
	k.IteratePacketCommitment(ctx, func(portID, channelID string, sequence uint64, hash []byte) bool {
		commitments = append(commitments, types.NewPacketState(portID, channelID, sequence, hash))
		return false
	})
	return commitments
}

// IteratePacketReceipt provides an iterator over all PacketReceipt objects.
// For each receipt, cb will be called. If the cb returns true, the iterator
// will close and stop.
func (k Keeper) IteratePacketReceipt(ctx host.Context, cb func(portID, channelID string, sequence uint64, receipt []byte) bool) {
	k.iteratePacketState(ctx, ibchost.KeyPacketReceiptPrefix, cb)
}

// GetAllPacketReceipts returns all stored PacketReceipt objects.
func (k Keeper) GetAllPacketReceipts(ctx host.Context) (receipts []types.PacketState) {
	k.IteratePacketReceipt(ctx, func(portID, channelID string, sequence uint64, receipt []byte) bool {
		receipts = append(receipts, types.NewPacketState(portID, channelID, sequence, receipt))
		return false
	})
	return receipts
}

// IteratePacketAcknowledgement provides an iterator over all
// PacketAcknowledgement objects. For each acknowledgement, cb will be called.
// If the cb returns true, the iterator will close and stop.
func (k Keeper) IteratePacketAcknowledgement(ctx host.Context, cb func(portID, channelID string, sequence uint64, hash []byte) bool) {
	k.iteratePacketState(ctx, ibchost.KeyPacketAckPrefix, cb)
}

// GetAllPacketAcks returns all stored PacketAcknowledgements objects.
func (k Keeper) GetAllPacketAcks(ctx host.Context) (acks []types.PacketState) {
	k.IteratePacketAcknowledgement(ctx, func(portID, channelID string, sequence uint64, ack []byte) bool {
		acks = append(acks, types.NewPacketState(portID, channelID, sequence, ack))
		return false
	})
	return acks
}

// iteratePacketState iterates the commitment, receipt or acknowledgement
// space under keyPrefix, invoking cb with each stored value.
func (k Keeper) iteratePacketState(ctx host.Context, keyPrefix string, cb func(portID, channelID string, sequence uint64, value []byte) bool) {
	iterator, err := ctx.KVStore().Iterator([]byte(keyPrefix), nil)
	if err != nil {
		panic(err)
	}
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		// packet state key is in the format
		// "<prefix>/ports/<portID>/channels/<channelID>/sequences/<sequence>"
		keySplit := strings.Split(string(iterator.Key()), "/")
		if len(keySplit) != 7 || keySplit[0] != keyPrefix || keySplit[5] != ibchost.KeySequencePrefix {
			continue
		}
		portID := keySplit[2]
		channelID := keySplit[4]

		sequence, err := strconv.ParseUint(keySplit[6], 10, 64)
		if err != nil {
			panic(err)
		}

		if cb(portID, channelID, sequence, iterator.Value()) {
			break
		}
	}
}
