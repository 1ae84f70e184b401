package types

import (
	"github.com/Salpiglossis/cosmos-ibc-rs/host"
	clienttypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/02-client/types"
	connectiontypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/03-connection/types"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/exported"
)

// ClientKeeper expected account IBC client keeper
type ClientKeeper interface {
	GetClientStatus(ctx host.Context, clientID string) exported.Status
	GetClientState(ctx host.Context, clientID string) (exported.ClientState, bool)
	GetClientConsensusState(ctx host.Context, clientID string, height exported.Height) (exported.ConsensusState, bool)
	GetClientLatestHeight(ctx host.Context, clientID string) clienttypes.Height
	GetClientTimestampAtHeight(ctx host.Context, clientID string, height exported.Height) (uint64, error)
	GetSelfHeight(ctx host.Context) clienttypes.Height
	ClientStore(ctx host.Context, clientID string) host.KVStore
}

// ConnectionKeeper expected account IBC connection keeper
type ConnectionKeeper interface {
	GetConnection(ctx host.Context, connectionID string) (connectiontypes.ConnectionEnd, bool)
	GetTimestampAtHeight(ctx host.Context, connection connectiontypes.ConnectionEnd, height exported.Height) (uint64, error)
	VerifyChannelState(
		ctx host.Context,
		connection connectiontypes.ConnectionEnd,
		height exported.Height,
		proof []byte,
		portID,
		channelID string,
		channel Channel,
	) error
	VerifyPacketCommitment(
		ctx host.Context,
		connection connectiontypes.ConnectionEnd,
		height exported.Height,
		proof []byte,
		portID,
		channelID string,
		sequence uint64,
		commitmentBytes []byte,
	) error
	VerifyPacketAcknowledgement(
		ctx host.Context,
		connection connectiontypes.ConnectionEnd,
		height exported.Height,
		proof []byte,
		portID,
		channelID string,
		sequence uint64,
		acknowledgement []byte,
	) error
	VerifyPacketReceiptAbsence(
		ctx host.Context,
		connection connectiontypes.ConnectionEnd,
		height exported.Height,
		proof []byte,
		portID,
		channelID string,
		sequence uint64,
	) error
	VerifyNextSequenceRecv(
		ctx host.Context,
		connection connectiontypes.ConnectionEnd,
		height exported.Height,
		proof []byte,
		portID,
		channelID string,
		nextSequenceRecv uint64,
	) error
}

// PortKeeper expected account IBC port keeper
type PortKeeper interface {
	IsBound(ctx host.Context, portID string) bool
	Authenticate(ctx host.Context, portID, owner string) bool
}
