package mock_test

import (
	"testing"
	"time"

	"cosmossdk.io/log"
	"github.com/stretchr/testify/require"
	dbm "github.com/tendermint/tm-db"

	"github.com/Salpiglossis/cosmos-ibc-rs/host"
	clienttypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/02-client/types"
	commitmenttypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/23-commitment/types"
	ibchost "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/24-host"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/codec"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/exported"
	"github.com/Salpiglossis/cosmos-ibc-rs/testing/mock"
)

var clientHeight = clienttypes.NewHeight(1, 5)

func setupClient(t *testing.T) (host.Context, host.KVStore, *codec.Codec, *mock.ClientState) {
	t.Helper()

	cdc := codec.NewCodec()
	mock.RegisterInterfaces(cdc)

	now := time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)
	ctx := host.NewContext(host.NewStore(dbm.NewMemDB()), "testhost-1", 1, now, log.NewNopLogger())

	clientStore := host.NewStore(dbm.NewMemDB())
	clientState := mock.NewClientState(clientHeight)
	err := clientState.Initialize(ctx, cdc, clientStore, mock.NewConsensusState(uint64(now.UnixNano())))
	require.NoError(t, err)

	return ctx, clientStore, cdc, clientState
}

func TestProofProviderRoundTrip(t *testing.T) {
	ctx, clientStore, cdc, clientState := setupClient(t)

	store := host.NewStore(dbm.NewMemDB())
	prefix := commitmenttypes.NewMerklePrefix([]byte("ibc"))
	provider := mock.NewProofProvider(store, prefix)

	require.NoError(t, store.Set([]byte("key/path"), []byte("value")))

	proof, err := provider.GetProof(1, "key/path")
	require.NoError(t, err)

	merklePath, err := commitmenttypes.ApplyPrefix(prefix, commitmenttypes.NewMerklePath("key/path"))
	require.NoError(t, err)

	err = clientState.VerifyMembership(ctx, clientStore, cdc, clientHeight, 0, 0, proof, merklePath, []byte("value"))
	require.NoError(t, err)

	// a proof for one value does not verify another
	err = clientState.VerifyMembership(ctx, clientStore, cdc, clientHeight, 0, 0, proof, merklePath, []byte("other value"))
	require.ErrorIs(t, err, commitmenttypes.ErrInvalidProof)

	// absence proof for a key the store does not hold
	absenceProof, err := provider.GetProof(1, "missing/path")
	require.NoError(t, err)

	absencePath, err := commitmenttypes.ApplyPrefix(prefix, commitmenttypes.NewMerklePath("missing/path"))
	require.NoError(t, err)

	err = clientState.VerifyNonMembership(ctx, clientStore, cdc, clientHeight, 0, 0, absenceProof, absencePath)
	require.NoError(t, err)

	// a membership proof is not an absence proof
	err = clientState.VerifyNonMembership(ctx, clientStore, cdc, clientHeight, 0, 0, proof, merklePath)
	require.ErrorIs(t, err, commitmenttypes.ErrInvalidProof)
}

func TestVerifyMembershipHeightChecks(t *testing.T) {
	ctx, clientStore, cdc, clientState := setupClient(t)

	path, err := commitmenttypes.ApplyPrefix(
		commitmenttypes.NewMerklePrefix([]byte("ibc")), commitmenttypes.NewMerklePath("key/path"),
	)
	require.NoError(t, err)

	proof := mock.MembershipProof(path.String(), []byte("value"))

	// proof height above the client's latest height
	err = clientState.VerifyMembership(ctx, clientStore, cdc, clientHeight.Increment(), 0, 0, proof, path, []byte("value"))
	require.Error(t, err)

	// no consensus state tracked at the proof height
	err = clientState.VerifyMembership(ctx, clientStore, cdc, clienttypes.NewHeight(1, 1), 0, 0, proof, path, []byte("value"))
	require.ErrorIs(t, err, clienttypes.ErrConsensusStateNotFound)
}

func TestClientStateStatus(t *testing.T) {
	ctx, clientStore, cdc, clientState := setupClient(t)

	require.Equal(t, exported.Active, clientState.Status(ctx, clientStore, cdc))

	clientState.UpdateStateOnMisbehaviour(ctx, cdc, clientStore, nil)

	bz, err := clientStore.Get(ibchost.ClientStateKey())
	require.NoError(t, err)
	frozen, ok := clienttypes.MustUnmarshalClientState(cdc, bz).(*mock.ClientState)
	require.True(t, ok)
	require.Equal(t, exported.Frozen, frozen.Status(ctx, clientStore, cdc))
}

func TestUpdateState(t *testing.T) {
	ctx, clientStore, cdc, clientState := setupClient(t)

	header := mock.NewHeader(clientHeight.Increment().(clienttypes.Height), uint64(time.Date(2020, 1, 2, 0, 1, 0, 0, time.UTC).UnixNano()))

	heights := clientState.UpdateState(ctx, cdc, clientStore, header)
	require.Equal(t, []exported.Height{header.Height}, heights)

	timestamp, err := clientState.GetTimestampAtHeight(clientStore, cdc, header.Height)
	require.NoError(t, err)
	require.Equal(t, header.Timestamp, timestamp)
}

func TestCheckForMisbehaviourHeader(t *testing.T) {
	ctx, clientStore, cdc, clientState := setupClient(t)

	now := time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)

	// matching timestamp at a tracked height: not misbehaviour
	duplicate := mock.NewHeader(clientHeight, uint64(now.UnixNano()))
	require.False(t, clientState.CheckForMisbehaviour(ctx, cdc, clientStore, duplicate))

	// conflicting timestamp at a tracked height: misbehaviour
	conflicting := mock.NewHeader(clientHeight, uint64(now.Add(time.Hour).UnixNano()))
	require.True(t, clientState.CheckForMisbehaviour(ctx, cdc, clientStore, conflicting))

	// untracked height: nothing to conflict with
	unseen := mock.NewHeader(clienttypes.NewHeight(1, 99), uint64(now.UnixNano()))
	require.False(t, clientState.CheckForMisbehaviour(ctx, cdc, clientStore, unseen))
}
