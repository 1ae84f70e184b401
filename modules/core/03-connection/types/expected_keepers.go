package types

import (
	"github.com/Salpiglossis/cosmos-ibc-rs/host"
	clienttypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/02-client/types"
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
	VerifyMembership(ctx host.Context, clientID string, height exported.Height, delayTimePeriod, delayBlockPeriod uint64, proof []byte, path exported.Path, value []byte) error
	VerifyNonMembership(ctx host.Context, clientID string, height exported.Height, delayTimePeriod, delayBlockPeriod uint64, proof []byte, path exported.Path) error
	IterateClientStates(ctx host.Context, prefix []byte, cb func(string, exported.ClientState) bool)
	ClientStore(ctx host.Context, clientID string) host.KVStore
}
