package keeper

import (
	"strings"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"

	"github.com/Salpiglossis/cosmos-ibc-rs/host"
	clienttypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/02-client/types"
	connectiontypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/03-connection/types"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/04-channel/types"
	ibchost "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/24-host"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/codec"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/exported"
)

// Keeper defines the IBC channel keeper
type Keeper struct {
	cdc              *codec.Codec
	clientKeeper     types.ClientKeeper
	connectionKeeper types.ConnectionKeeper
	portKeeper       types.PortKeeper
}

// NewKeeper creates a new IBC channel Keeper instance
func NewKeeper(
	cdc *codec.Codec,
	clientKeeper types.ClientKeeper,
	connectionKeeper types.ConnectionKeeper,
	portKeeper types.PortKeeper,
) Keeper {
	return Keeper{
		cdc:              cdc,
		clientKeeper:     clientKeeper,
		connectionKeeper: connectionKeeper,
		portKeeper:       portKeeper,
	}
}

// Logger returns a module-specific logger.
func (Keeper) Logger(ctx host.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+exported.ModuleName+"/"+types.SubModuleName)
}

// GenerateChannelIdentifier returns the next channel identifier.
func (k Keeper) GenerateChannelIdentifier(ctx host.Context) string {
	nextChannelSeq := k.GetNextChannelSequence(ctx)
	channelID := types.FormatChannelIdentifier(nextChannelSeq)

	nextChannelSeq++
	k.SetNextChannelSequence(ctx, nextChannelSeq)
	return channelID
}

// GetChannel returns a channel with a particular identifier binded to a specific port
func (k Keeper) GetChannel(ctx host.Context, portID, channelID string) (types.Channel, bool) {
	bz, err := ctx.KVStore().Get(ibchost.ChannelKey(portID, channelID))
	if err != nil {
		panic(err)
	}
	if len(bz) == 0 {
		return types.Channel{}, false
	}

	var channel types.Channel
	k.cdc.MustUnmarshal(bz, &channel)
	return channel, true
}

// HasChannel true if the channel with the given identifiers exists in the store.
func (k Keeper) HasChannel(ctx host.Context, portID, channelID string) bool {
	has, err := ctx.KVStore().Has(ibchost.ChannelKey(portID, channelID))
	if err != nil {
		panic(err)
	}
	return has
}

// SetChannel sets a channel to the store
func (k Keeper) SetChannel(ctx host.Context, portID, channelID string, channel types.Channel) {
	bz := k.cdc.MustMarshal(&channel)
	if err := ctx.KVStore().Set(ibchost.ChannelKey(portID, channelID), bz); err != nil {
		panic(err)
	}
}

// GetNextChannelSequence gets the next channel sequence from the store.
func (k Keeper) GetNextChannelSequence(ctx host.Context) uint64 {
	bz, err := ctx.KVStore().Get([]byte(types.KeyNextChannelSequence))
	if err != nil {
		panic(err)
	}
	if len(bz) == 0 {
		return 0
	}

	return host.BigEndianToUint64(bz)
}

// SetNextChannelSequence sets the next channel sequence to the store.
func (k Keeper) SetNextChannelSequence(ctx host.Context, sequence uint64) {
	bz := host.Uint64ToBigEndian(sequence)
	if err := ctx.KVStore().Set([]byte(types.KeyNextChannelSequence), bz); err != nil {
		panic(err)
	}
}

// GetNextSequenceSend gets a channel's next send sequence from the store
func (k Keeper) GetNextSequenceSend(ctx host.Context, portID, channelID string) (uint64, bool) {
	bz, err := ctx.KVStore().Get(ibchost.NextSequenceSendKey(portID, channelID))
	if err != nil {
		panic(err)
	}
	if len(bz) == 0 {
		return 0, false
	}

	return host.BigEndianToUint64(bz), true
}

// SetNextSequenceSend sets a channel's next send sequence to the store
func (k Keeper) SetNextSequenceSend(ctx host.Context, portID, channelID string, sequence uint64) {
	bz := host.Uint64ToBigEndian(sequence)
	if err := ctx.KVStore().Set(ibchost.NextSequenceSendKey(portID, channelID), bz); err != nil {
		panic(err)
	}
}

// GetNextSequenceRecv gets a channel's next receive sequence from the store
func (k Keeper) GetNextSequenceRecv(ctx host.Context, portID, channelID string) (uint64, bool) {
	bz, err := ctx.KVStore().Get(ibchost.NextSequenceRecvKey(portID, channelID))
	if err != nil {
		panic(err)
	}
	if len(bz) == 0 {
		return 0, false
	}

	return host.BigEndianToUint64(bz), true
}

// SetNextSequenceRecv sets a channel's next receive sequence to the store
func (k Keeper) SetNextSequenceRecv(ctx host.Context, portID, channelID string, sequence uint64) {
	bz := host.Uint64ToBigEndian(sequence)
	if err := ctx.KVStore().Set(ibchost.NextSequenceRecvKey(portID, channelID), bz); err != nil {
		panic(err)
	}
}

// GetNextSequenceAck gets a channel's next ack sequence from the store
func (k Keeper) GetNextSequenceAck(ctx host.Context, portID, channelID string) (uint64, bool) {
	bz, err := ctx.KVStore().Get(ibchost.NextSequenceAckKey(portID, channelID))
	if err != nil {
		panic(err)
	}
	if len(bz) == 0 {
		return 0, false
	}

	return host.BigEndianToUint64(bz), true
}

// SetNextSequenceAck sets a channel's next ack sequence to the store
func (k Keeper) SetNextSequenceAck(ctx host.Context, portID, channelID string, sequence uint64) {
	bz := host.Uint64ToBigEndian(sequence)
	if err := ctx.KVStore().Set(ibchost.NextSequenceAckKey(portID, channelID), bz); err != nil {
		panic(err)
	}
}

// GetPacketReceipt gets a packet receipt from the store
func (k Keeper) GetPacketReceipt(ctx host.Context, portID, channelID string, sequence uint64) (string, bool) {
	bz, err := ctx.KVStore().Get(ibchost.PacketReceiptKey(portID, channelID, sequence))
	if err != nil {
		panic(err)
	}
	if len(bz) == 0 {
		return "", false
	}

	return string(bz), true
}

// SetPacketReceipt sets an empty packet receipt to the store
func (k Keeper) SetPacketReceipt(ctx host.Context, portID, channelID string, sequence uint64) {
	if err := ctx.KVStore().Set(ibchost.PacketReceiptKey(portID, channelID, sequence), []byte{byte(1)}); err != nil {
		panic(err)
	}
}

// GetPacketCommitment gets the packet commitment hash from the store
func (k Keeper) GetPacketCommitment(ctx host.Context, portID, channelID string, sequence uint64) []byte {
	bz, err := ctx.KVStore().Get(ibchost.PacketCommitmentKey(portID, channelID, sequence))
	if err != nil {
		panic(err)
	}
	return bz
}

// HasPacketCommitment returns true if the packet commitment exists
func (k Keeper) HasPacketCommitment(ctx host.Context, portID, channelID string, sequence uint64) bool {
	has, err := ctx.KVStore().Has(ibchost.PacketCommitmentKey(portID, channelID, sequence))
	if err != nil {
		panic(err)
	}
	return has
}

// SetPacketCommitment sets the packet commitment hash to the store
func (k Keeper) SetPacketCommitment(ctx host.Context, portID, channelID string, sequence uint64, commitmentHash []byte) {
	if err := ctx.KVStore().Set(ibchost.PacketCommitmentKey(portID, channelID, sequence), commitmentHash); err != nil {
		panic(err)
	}
}

func (k Keeper) deletePacketCommitment(ctx host.Context, portID, channelID string, sequence uint64) {
	if err := ctx.KVStore().Delete(ibchost.PacketCommitmentKey(portID, channelID, sequence)); err != nil {
		panic(err)
	}
}

// SetPacketAcknowledgement sets the packet ack hash to the store
func (k Keeper) SetPacketAcknowledgement(ctx host.Context, portID, channelID string, sequence uint64, ackHash []byte) {
	if err := ctx.KVStore().Set(ibchost.PacketAcknowledgementKey(portID, channelID, sequence), ackHash); err != nil {
		panic(err)
	}
}

// GetPacketAcknowledgement gets the packet ack hash from the store
func (k Keeper) GetPacketAcknowledgement(ctx host.Context, portID, channelID string, sequence uint64) ([]byte, bool) {
	bz, err := ctx.KVStore().Get(ibchost.PacketAcknowledgementKey(portID, channelID, sequence))
	if err != nil {
		panic(err)
	}
	if len(bz) == 0 {
		return nil, false
	}
	return bz, true
}

// HasPacketAcknowledgement check if the packet ack hash is already on the store
func (k Keeper) HasPacketAcknowledgement(ctx host.Context, portID, channelID string, sequence uint64) bool {
	has, err := ctx.KVStore().Has(ibchost.PacketAcknowledgementKey(portID, channelID, sequence))
	if err != nil {
		panic(err)
	}
	return has
}

// IterateChannels provides an iterator over all Channel objects. For each
// Channel, cb will be called. If the cb returns true, the iterator will close
// and stop.
func (k Keeper) IterateChannels(ctx host.Context, cb func(types.IdentifiedChannel) bool) {
	iterator, err := ctx.KVStore().Iterator([]byte(ibchost.KeyChannelEndPrefix), nil)
	if err != nil {
		panic(err)
	}
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		keySplit := strings.Split(string(iterator.Key()), "/")
		// channel key is in the format "channelEnds/ports/<portID>/channels/<channelID>"
		if len(keySplit) != 5 || keySplit[0] != ibchost.KeyChannelEndPrefix {
			continue
		}

		var channel types.Channel
		k.cdc.MustUnmarshal(iterator.Value(), &channel)

		portID := keySplit[2]
		channelID := keySplit[4]

		identifiedChannel := types.NewIdentifiedChannel(portID, channelID, channel)
		if cb(identifiedChannel) {
			break
		}
	}
}

// GetAllChannels returns all stored Channel objects.
func (k Keeper) GetAllChannels(ctx host.Context) (channels []types.IdentifiedChannel) {
	k.IterateChannels(ctx, func(channel types.IdentifiedChannel) bool {
		channels = append(channels, channel)
		return false
	})
	return channels
}

// GetChannelConnection returns the connection ID and connection end associated
// with the given port and channel identifier.
func (k Keeper) GetChannelConnection(ctx host.Context, portID, channelID string) (string, connectiontypes.ConnectionEnd, error) {
	channel, found := k.GetChannel(ctx, portID, channelID)
	if !found {
		return "", connectiontypes.ConnectionEnd{}, errorsmod.Wrapf(types.ErrChannelNotFound, "port-id: %s, channel-id: %s", portID, channelID)
	}

	connectionID := channel.ConnectionHops[0]

	connection, found := k.connectionKeeper.GetConnection(ctx, connectionID)
	if !found {
		return "", connectiontypes.ConnectionEnd{}, errorsmod.Wrapf(connectiontypes.ErrConnectionNotFound, "connection-id: %s", connectionID)
	}

	return connectionID, connection, nil
}

// GetChannelClientState returns the associated client state with its ID for
// the provided port and channel identifiers.
func (k Keeper) GetChannelClientState(ctx host.Context, portID, channelID string) (string, exported.ClientState, error) {
	channel, found := k.GetChannel(ctx, portID, channelID)
	if !found {
		return "", nil, errorsmod.Wrapf(types.ErrChannelNotFound, "port-id: %s, channel-id: %s", portID, channelID)
	}

	connection, found := k.connectionKeeper.GetConnection(ctx, channel.ConnectionHops[0])
	if !found {
		return "", nil, errorsmod.Wrapf(connectiontypes.ErrConnectionNotFound, "connection-id: %s", channel.ConnectionHops[0])
	}

	clientState, found := k.clientKeeper.GetClientState(ctx, connection.ClientId)
	if !found {
		return "", nil, errorsmod.Wrapf(clienttypes.ErrClientNotFound, "client-id: %s", connection.ClientId)
	}

	return connection.ClientId, clientState, nil
}
