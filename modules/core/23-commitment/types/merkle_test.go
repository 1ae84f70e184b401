package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/23-commitment/types"
)

func TestApplyPrefix(t *testing.T) {
	prefix := types.NewMerklePrefix([]byte("storePrefixKey"))
	path := types.NewMerklePath("clients/07-tendermint-0/clientState")

	prefixedPath, err := types.ApplyPrefix(prefix, path)
	require.NoError(t, err)
	require.Equal(t, 2, len(prefixedPath.KeyPath))
	require.Equal(t, "storePrefixKey", prefixedPath.KeyPath[0])
	require.Equal(t, "clients/07-tendermint-0/clientState", prefixedPath.KeyPath[1])

	// the prefix must be the first, outermost key element
	require.Equal(t, "/storePrefixKey/clients%2F07-tendermint-0%2FclientState", prefixedPath.String())

	_, err = types.ApplyPrefix(types.NewMerklePrefix(nil), path)
	require.ErrorIs(t, err, types.ErrInvalidPrefix)
}

func TestMerklePathKeys(t *testing.T) {
	path := types.NewMerklePath("ibc", "commitments/ports/transfer/channels/channel-0/sequences/1")

	require.False(t, path.Empty())
	require.Equal(t, "/ibc/commitments%2Fports%2Ftransfer%2Fchannels%2Fchannel-0%2Fsequences%2F1", path.String())
	require.Equal(t, "/ibc/commitments/ports/transfer/channels/channel-0/sequences/1", path.Pretty())

	key, err := path.GetKey(1)
	require.NoError(t, err)
	require.Equal(t, []byte("commitments/ports/transfer/channels/channel-0/sequences/1"), key)

	_, err = path.GetKey(2)
	require.ErrorIs(t, err, types.ErrInvalidProof)
}

func TestMerkleProofValidateBasic(t *testing.T) {
	var proof types.MerkleProof
	require.True(t, proof.Empty())
	require.ErrorIs(t, proof.ValidateBasic(), types.ErrInvalidProof)
}

func TestMerkleRootEmpty(t *testing.T) {
	require.True(t, types.NewMerkleRoot(nil).Empty())
	require.False(t, types.NewMerkleRoot([]byte{0x01}).Empty())
}
