package mock

import (
	"crypto/sha256"

	"github.com/Salpiglossis/cosmos-ibc-rs/host"
	commitmenttypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/23-commitment/types"
)

// MembershipProof returns the proof the mock client accepts for the
// presence of value at path: sha256(path || value).
func MembershipProof(path string, value []byte) []byte {
	h := sha256.New()
	h.Write([]byte(path))
	h.Write(value)
	return h.Sum(nil)
}

// NonMembershipProof returns the proof the mock client accepts for the
// absence of path: sha256(path).
func NonMembershipProof(path string) []byte {
	sum := sha256.Sum256([]byte(path))
	return sum[:]
}

var _ host.ProofProvider = (*ProofProvider)(nil)

// ProofProvider produces mock proofs over a host store. The proof for a
// path is the hash of the store-prefixed path and the stored value, or
// of the path alone when no value is stored, matching what the mock
// client on the counterparty recomputes.
type ProofProvider struct {
	store  host.KVStore
	prefix commitmenttypes.MerklePrefix
}

// NewProofProvider returns a ProofProvider over the given store. The
// prefix must be the commitment prefix the counterparty connection end
// was registered with.
func NewProofProvider(store host.KVStore, prefix commitmenttypes.MerklePrefix) *ProofProvider {
	return &ProofProvider{store: store, prefix: prefix}
}

// GetProof implements host.ProofProvider. The height is ignored: the
// proof is computed over the store's current contents.
func (pp *ProofProvider) GetProof(height uint64, path string) ([]byte, error) {
	merklePath, err := commitmenttypes.ApplyPrefix(pp.prefix, commitmenttypes.NewMerklePath(path))
	if err != nil {
		return nil, err
	}

	value, err := pp.store.Get([]byte(path))
	if err != nil {
		return nil, err
	}

	if len(value) == 0 {
		return NonMembershipProof(merklePath.String()), nil
	}
	return MembershipProof(merklePath.String(), value), nil
}
