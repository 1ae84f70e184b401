package keeper

import (
	"errors"
	"strings"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"

	"github.com/Salpiglossis/cosmos-ibc-rs/host"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/02-client/types"
	ibchost "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/24-host"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/codec"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/exported"
)

// Keeper represents a type that grants read and write permissions to any client
// state information
type Keeper struct {
	cdc *codec.Codec
}

// NewKeeper creates a new NewKeeper instance
func NewKeeper(cdc *codec.Codec) Keeper {
	return Keeper{cdc: cdc}
}

// Logger returns a module-specific logger.
func (Keeper) Logger(ctx host.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+exported.ModuleName+"/"+types.SubModuleName)
}

// Codec returns the codec used to encode client and consensus states.
func (k Keeper) Codec() *codec.Codec {
	return k.cdc
}

// GenerateClientIdentifier returns the next client identifier.
func (k Keeper) GenerateClientIdentifier(ctx host.Context, clientType string) string {
	nextClientSeq := k.GetNextClientSequence(ctx)
	clientID := types.FormatClientIdentifier(clientType, nextClientSeq)

	nextClientSeq++
	k.SetNextClientSequence(ctx, nextClientSeq)
	return clientID
}

// GetClientState gets a particular client from the store
func (k Keeper) GetClientState(ctx host.Context, clientID string) (exported.ClientState, bool) {
	store := k.ClientStore(ctx, clientID)
	bz, err := store.Get(ibchost.ClientStateKey())
	if err != nil {
		panic(err)
	}
	if len(bz) == 0 {
		return nil, false
	}

	return types.MustUnmarshalClientState(k.cdc, bz), true
}

// SetClientState sets a particular Client to the store
func (k Keeper) SetClientState(ctx host.Context, clientID string, clientState exported.ClientState) {
	store := k.ClientStore(ctx, clientID)
	if err := store.Set(ibchost.ClientStateKey(), types.MustMarshalClientState(k.cdc, clientState)); err != nil {
		panic(err)
	}
}

// GetClientConsensusState gets the stored consensus state from a client at a given height.
func (k Keeper) GetClientConsensusState(ctx host.Context, clientID string, height exported.Height) (exported.ConsensusState, bool) {
	store := k.ClientStore(ctx, clientID)
	bz, err := store.Get(ibchost.ConsensusStateKey(height))
	if err != nil {
		panic(err)
	}
	if len(bz) == 0 {
		return nil, false
	}

	return types.MustUnmarshalConsensusState(k.cdc, bz), true
}

// SetClientConsensusState sets a ConsensusState to a particular client at the given
// height
func (k Keeper) SetClientConsensusState(ctx host.Context, clientID string, height exported.Height, consensusState exported.ConsensusState) {
	store := k.ClientStore(ctx, clientID)
	if err := store.Set(ibchost.ConsensusStateKey(height), types.MustMarshalConsensusState(k.cdc, consensusState)); err != nil {
		panic(err)
	}
}

// GetNextClientSequence gets the next client sequence from the store.
func (k Keeper) GetNextClientSequence(ctx host.Context) uint64 {
	bz, err := ctx.KVStore().Get([]byte(types.KeyNextClientSequence))
	if err != nil {
		panic(err)
	}
	if len(bz) == 0 {
		return 0
	}

	return host.BigEndianToUint64(bz)
}

// SetNextClientSequence sets the next client sequence to the store.
func (k Keeper) SetNextClientSequence(ctx host.Context, sequence uint64) {
	bz := host.Uint64ToBigEndian(sequence)
	if err := ctx.KVStore().Set([]byte(types.KeyNextClientSequence), bz); err != nil {
		panic(err)
	}
}

// IterateConsensusStates provides an iterator over all stored consensus states.
// objects. For each State object, cb will be called. If the cb returns true,
// the iterator will close and stop.
func (k Keeper) IterateConsensusStates(ctx host.Context, cb func(clientID string, cvs types.ConsensusStateWithHeight) bool) {
	iterator, err := ctx.KVStore().Iterator(ibchost.KeyClientStorePrefix, nil)
	if err != nil {
		panic(err)
	}
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		keySplit := splitKey(iterator.Key())
		// consensus key is in the format "clients/<clientID>/consensusStates/<height>"
		if len(keySplit) != 4 || keySplit[2] != ibchost.KeyConsensusStatePrefix {
			continue
		}
		clientID := keySplit[1]
		height := types.MustParseHeight(keySplit[3])
		consensusState := types.MustUnmarshalConsensusState(k.cdc, iterator.Value())

		if cb(clientID, types.NewConsensusStateWithHeight(height, consensusState)) {
			break
		}
	}
}

// IterateClientStates provides an iterator over all stored light client State
// objects. For each State object, cb will be called. If the cb returns true,
// the iterator will close and stop.
func (k Keeper) IterateClientStates(ctx host.Context, storeprefix []byte, cb func(clientID string, cs exported.ClientState) bool) {
	start := append(append([]byte{}, ibchost.KeyClientStorePrefix...), append([]byte("/"), storeprefix...)...)
	iterator, err := ctx.KVStore().Iterator(start, nil)
	if err != nil {
		panic(err)
	}
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		keySplit := splitKey(iterator.Key())
		if len(keySplit) != 3 || keySplit[2] != ibchost.KeyClientState {
			continue
		}
		clientID := keySplit[1]
		clientState := types.MustUnmarshalClientState(k.cdc, iterator.Value())

		if cb(clientID, clientState) {
			break
		}
	}
}

// ClientStore returns isolated prefix store for each client so they can read/write in separate
// namespace without being able to read/write other client's data
func (k Keeper) ClientStore(ctx host.Context, clientID string) host.KVStore {
	clientPrefix := []byte(ibchost.PrefixedClientStorePath(clientID) + "/")
	return host.NewPrefixStore(ctx.KVStore(), clientPrefix)
}

// GetClientStatus returns the status for a client state given a client identifier. If the client type is not in the allowed
// clients param field, Unauthorized is returned, otherwise the client state status is returned.
func (k Keeper) GetClientStatus(ctx host.Context, clientID string) exported.Status {
	clientState, found := k.GetClientState(ctx, clientID)
	if !found {
		return exported.Unknown
	}

	if !k.GetParams(ctx).IsAllowedClient(clientState.ClientType()) {
		return exported.Unknown
	}

	return clientState.Status(ctx, k.ClientStore(ctx, clientID), k.cdc)
}

// GetClientLatestHeight returns the latest height of a client state for a given client identifier. If the client
// is not found, a zero value height is returned.
func (k Keeper) GetClientLatestHeight(ctx host.Context, clientID string) types.Height {
	clientState, found := k.GetClientState(ctx, clientID)
	if !found {
		return types.ZeroHeight()
	}

	latest, ok := clientState.GetLatestHeight().(types.Height)
	if !ok {
		return types.ZeroHeight()
	}
	return latest
}

// GetClientTimestampAtHeight returns the timestamp in nanoseconds of the consensus state at the given height.
func (k Keeper) GetClientTimestampAtHeight(ctx host.Context, clientID string, height exported.Height) (uint64, error) {
	clientState, found := k.GetClientState(ctx, clientID)
	if !found {
		return 0, errorsmod.Wrapf(types.ErrClientNotFound, "clientID (%s)", clientID)
	}

	return clientState.GetTimestampAtHeight(k.ClientStore(ctx, clientID), k.cdc, height)
}

// GetSelfHeight returns the host's current height, with the revision
// number parsed from the host chain id.
func (Keeper) GetSelfHeight(ctx host.Context) types.Height {
	return types.GetSelfHeight(ctx.ChainID(), ctx.BlockHeight())
}

// VerifyMembership retrieves the light client for the given client
// identifier and verifies a membership proof against its consensus
// state at the proof height. It fails closed on frozen or unknown clients.
func (k Keeper) VerifyMembership(ctx host.Context, clientID string, height exported.Height, delayTimePeriod, delayBlockPeriod uint64, proof []byte, path exported.Path, value []byte) error {
	clientState, found := k.GetClientState(ctx, clientID)
	if !found {
		return errorsmod.Wrap(types.ErrClientNotFound, clientID)
	}

	if status := k.GetClientStatus(ctx, clientID); status != exported.Active {
		return errorsmod.Wrapf(types.ErrClientNotActive, "client (%s) status is %s", clientID, status)
	}

	return clientState.VerifyMembership(ctx, k.ClientStore(ctx, clientID), k.cdc, height, delayTimePeriod, delayBlockPeriod, proof, path, value)
}

// VerifyNonMembership retrieves the light client for the given client
// identifier and verifies a non-membership proof against its consensus
// state at the proof height. It fails closed on frozen or unknown clients.
func (k Keeper) VerifyNonMembership(ctx host.Context, clientID string, height exported.Height, delayTimePeriod, delayBlockPeriod uint64, proof []byte, path exported.Path) error {
	clientState, found := k.GetClientState(ctx, clientID)
	if !found {
		return errorsmod.Wrap(types.ErrClientNotFound, clientID)
	}

	if status := k.GetClientStatus(ctx, clientID); status != exported.Active {
		return errorsmod.Wrapf(types.ErrClientNotActive, "client (%s) status is %s", clientID, status)
	}

	return clientState.VerifyNonMembership(ctx, k.ClientStore(ctx, clientID), k.cdc, height, delayTimePeriod, delayBlockPeriod, proof, path)
}

// GetParams returns the total set of ibc-client parameters.
func (k Keeper) GetParams(ctx host.Context) types.Params {
	bz, err := ctx.KVStore().Get([]byte(types.ParamsKey))
	if err != nil {
		panic(err)
	}
	if len(bz) == 0 {
		return types.DefaultParams()
	}

	var params types.Params
	k.cdc.MustUnmarshal(bz, &params)
	return params
}

// SetParams sets the total set of ibc-client parameters.
func (k Keeper) SetParams(ctx host.Context, params types.Params) {
	if err := params.Validate(); err != nil {
		panic(errors.New("cannot set invalid client params: " + err.Error()))
	}
	bz := k.cdc.MustMarshal(&params)
	if err := ctx.KVStore().Set([]byte(types.ParamsKey), bz); err != nil {
		panic(err)
	}
}

func splitKey(key []byte) []string {
	return strings.Split(string(key), "/")
}
