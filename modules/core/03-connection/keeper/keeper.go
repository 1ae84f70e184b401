package keeper

import (
	"errors"
	"strings"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"

	"github.com/Salpiglossis/cosmos-ibc-rs/host"
	clienttypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/02-client/types"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/03-connection/types"
	commitmenttypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/23-commitment/types"
	ibchost "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/24-host"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/codec"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/exported"
)

// Keeper defines the IBC connection keeper
type Keeper struct {
	cdc          *codec.Codec
	clientKeeper types.ClientKeeper
}

// NewKeeper creates a new IBC connection Keeper instance
func NewKeeper(cdc *codec.Codec, ck types.ClientKeeper) Keeper {
	return Keeper{
		cdc:          cdc,
		clientKeeper: ck,
	}
}

// Logger returns a module-specific logger.
func (Keeper) Logger(ctx host.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+exported.ModuleName+"/"+types.SubModuleName)
}

// GetCommitmentPrefix returns the IBC connection store prefix as a commitment
// Prefix
func (Keeper) GetCommitmentPrefix() exported.Prefix {
	prefix := commitmenttypes.NewMerklePrefix([]byte(exported.StoreKey))
	return &prefix
}

// GenerateConnectionIdentifier returns the next connection identifier.
func (k Keeper) GenerateConnectionIdentifier(ctx host.Context) string {
	nextConnSeq := k.GetNextConnectionSequence(ctx)
	connectionID := types.FormatConnectionIdentifier(nextConnSeq)

	nextConnSeq++
	k.SetNextConnectionSequence(ctx, nextConnSeq)
	return connectionID
}

// GetConnection returns a connection with a particular identifier
func (k Keeper) GetConnection(ctx host.Context, connectionID string) (types.ConnectionEnd, bool) {
	bz, err := ctx.KVStore().Get(ibchost.ConnectionKey(connectionID))
	if err != nil {
		panic(err)
	}
	if len(bz) == 0 {
		return types.ConnectionEnd{}, false
	}

	var connection types.ConnectionEnd
	k.cdc.MustUnmarshal(bz, &connection)

	return connection, true
}

// HasConnection returns a true if the connection with the given identifier
// exists in the store.
func (k Keeper) HasConnection(ctx host.Context, connectionID string) bool {
	has, err := ctx.KVStore().Has(ibchost.ConnectionKey(connectionID))
	if err != nil {
		panic(err)
	}
	return has
}

// SetConnection sets a connection to the store
func (k Keeper) SetConnection(ctx host.Context, connectionID string, connection types.ConnectionEnd) {
	bz := k.cdc.MustMarshal(&connection)
	if err := ctx.KVStore().Set(ibchost.ConnectionKey(connectionID), bz); err != nil {
		panic(err)
	}
}

// GetTimestampAtHeight returns the timestamp in nanoseconds of the consensus state at the
// given height.
func (k Keeper) GetTimestampAtHeight(ctx host.Context, connection types.ConnectionEnd, height exported.Height) (uint64, error) {
	return k.clientKeeper.GetClientTimestampAtHeight(ctx, connection.ClientId, height)
}

// GetClientConnectionPaths returns all the connection paths stored under a
// particular client
func (k Keeper) GetClientConnectionPaths(ctx host.Context, clientID string) ([]string, bool) {
	bz, err := ctx.KVStore().Get(ibchost.ClientConnectionsKey(clientID))
	if err != nil {
		panic(err)
	}
	if len(bz) == 0 {
		return nil, false
	}

	var clientPaths types.ClientPaths
	k.cdc.MustUnmarshal(bz, &clientPaths)
	return clientPaths.Paths, true
}

// SetClientConnectionPaths sets the connections paths for client
func (k Keeper) SetClientConnectionPaths(ctx host.Context, clientID string, paths []string) {
	clientPaths := types.ClientPaths{Paths: paths}
	bz := k.cdc.MustMarshal(&clientPaths)
	if err := ctx.KVStore().Set(ibchost.ClientConnectionsKey(clientID), bz); err != nil {
		panic(err)
	}
}

// GetNextConnectionSequence gets the next connection sequence from the store.
func (k Keeper) GetNextConnectionSequence(ctx host.Context) uint64 {
	bz, err := ctx.KVStore().Get([]byte(types.KeyNextConnectionSequence))
	if err != nil {
		panic(err)
	}
	if len(bz) == 0 {
		return 0
	}

	return host.BigEndianToUint64(bz)
}

// SetNextConnectionSequence sets the next connection sequence to the store.
func (k Keeper) SetNextConnectionSequence(ctx host.Context, sequence uint64) {
	bz := host.Uint64ToBigEndian(sequence)
	if err := ctx.KVStore().Set([]byte(types.KeyNextConnectionSequence), bz); err != nil {
		panic(err)
	}
}

// GetAllClientConnectionPaths returns all stored clients connection paths.
func (k Keeper) GetAllClientConnectionPaths(ctx host.Context) []types.ConnectionPaths {
	var allConnectionPaths []types.ConnectionPaths
	k.clientKeeper.IterateClientStates(ctx, nil, func(clientID string, cs exported.ClientState) bool {
		paths, found := k.GetClientConnectionPaths(ctx, clientID)
		if !found {
			// continue when connection handshake is not initialized
			return false
		}
		connPaths := types.NewConnectionPaths(clientID, paths)
		allConnectionPaths = append(allConnectionPaths, connPaths)
		return false
	})

	return allConnectionPaths
}

// IterateConnections provides an iterator over all ConnectionEnd objects.
// For each ConnectionEnd, cb will be called. If the cb returns true, the
// iterator will close and stop.
func (k Keeper) IterateConnections(ctx host.Context, cb func(types.IdentifiedConnection) bool) {
	iterator, err := ctx.KVStore().Iterator([]byte(ibchost.KeyConnectionPrefix), nil)
	if err != nil {
		panic(err)
	}
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		keySplit := splitKey(iterator.Key())
		if len(keySplit) != 2 || keySplit[0] != ibchost.KeyConnectionPrefix {
			continue
		}

		var connection types.ConnectionEnd
		k.cdc.MustUnmarshal(iterator.Value(), &connection)

		identifiedConnection := types.NewIdentifiedConnection(keySplit[1], connection)
		if cb(identifiedConnection) {
			break
		}
	}
}

// GetAllConnections returns all stored ConnectionEnd objects.
func (k Keeper) GetAllConnections(ctx host.Context) (connections []types.IdentifiedConnection) {
	k.IterateConnections(ctx, func(connection types.IdentifiedConnection) bool {
		connections = append(connections, connection)
		return false
	})
	return connections
}

// addConnectionToClient is used to add a connection identifier to the set of
// connections associated with a client.
func (k Keeper) addConnectionToClient(ctx host.Context, clientID, connectionID string) error {
	_, found := k.clientKeeper.GetClientState(ctx, clientID)
	if !found {
		return errorsmod.Wrap(clienttypes.ErrClientNotFound, clientID)
	}

	conns, found := k.GetClientConnectionPaths(ctx, clientID)
	if !found {
		conns = []string{}
	}

	conns = append(conns, connectionID)
	k.SetClientConnectionPaths(ctx, clientID, conns)
	return nil
}

// ValidateSelfClient validates a client state the counterparty holds for the
// host chain. The client is self-consistent when it passes its own basic
// validation, is of an allowed type, and does not claim a latest height at or
// beyond the host's current height.
func (k Keeper) ValidateSelfClient(ctx host.Context, clientState exported.ClientState) error {
	if clientState == nil {
		return errorsmod.Wrap(clienttypes.ErrInvalidClient, "client state cannot be nil")
	}

	if err := clientState.Validate(); err != nil {
		return errorsmod.Wrap(err, "invalid client for host chain")
	}

	selfHeight := k.clientKeeper.GetSelfHeight(ctx)
	latestHeight, ok := clientState.GetLatestHeight().(clienttypes.Height)
	if !ok {
		return errorsmod.Wrapf(clienttypes.ErrInvalidHeight, "invalid height type. expected %T, got %T", clienttypes.Height{}, clientState.GetLatestHeight())
	}
	if latestHeight.GTE(selfHeight) {
		return errorsmod.Wrapf(clienttypes.ErrInvalidHeight,
			"client has latest height %s greater than or equal to chain height %s", latestHeight, selfHeight,
		)
	}

	return nil
}

// GetParams returns the total set of the host chain's ibc-connection parameters.
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

// SetParams sets the total set of the host chain's ibc-connection parameters.
func (k Keeper) SetParams(ctx host.Context, params types.Params) {
	if err := params.Validate(); err != nil {
		panic(errors.New("cannot set invalid connection params: " + err.Error()))
	}
	bz := k.cdc.MustMarshal(&params)
	if err := ctx.KVStore().Set([]byte(types.ParamsKey), bz); err != nil {
		panic(err)
	}
}

func splitKey(key []byte) []string {
	return strings.Split(string(key), "/")
}
