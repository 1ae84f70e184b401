package types

import (
	errorsmod "cosmossdk.io/errors"
	ics23 "github.com/cosmos/ics23/go"
	"github.com/gogo/protobuf/proto"
)

// MerkleProof is a wrapper type over a chain of ics23 CommitmentProofs.
// It demonstrates membership or non-membership for an element or set
// of elements, verifiable in conjunction with a known commitment root.
// Proofs should be succinct.
type MerkleProof struct {
	Proofs []*ics23.CommitmentProof
}

// Marshal encodes the proof chain as length-prefixed proto-encoded
// ics23 commitment proofs. The ics23 types are proto messages, so the
// envelope stays verifiable by any ics23 implementation.
func (proof MerkleProof) Marshal() ([]byte, error) {
	env := merkleProofEnvelope{Proofs: make([][]byte, len(proof.Proofs))}
	for i, p := range proof.Proofs {
		bz, err := proto.Marshal(p)
		if err != nil {
			return nil, errorsmod.Wrapf(ErrInvalidMerkleProof, "failed to marshal proof at index %d: %v", i, err)
		}
		env.Proofs[i] = bz
	}
	return proto.Marshal(&env)
}

// Unmarshal decodes a proof chain produced by Marshal.
func (proof *MerkleProof) Unmarshal(bz []byte) error {
	var env merkleProofEnvelope
	if err := proto.Unmarshal(bz, &env); err != nil {
		return errorsmod.Wrap(ErrInvalidMerkleProof, err.Error())
	}
	proofs := make([]*ics23.CommitmentProof, len(env.Proofs))
	for i, pbz := range env.Proofs {
		var p ics23.CommitmentProof
		if err := proto.Unmarshal(pbz, &p); err != nil {
			return errorsmod.Wrapf(ErrInvalidMerkleProof, "failed to unmarshal proof at index %d: %v", i, err)
		}
		proofs[i] = &p
	}
	proof.Proofs = proofs
	return nil
}

// merkleProofEnvelope is the proto envelope carrying the encoded proof
// chain. It implements proto.Message by hand since this repository
// does not generate code from .proto definitions.
type merkleProofEnvelope struct {
	Proofs [][]byte `protobuf:"bytes,1,rep,name=proofs,proto3"`
}

func (m *merkleProofEnvelope) Reset()         { *m = merkleProofEnvelope{} }
func (m *merkleProofEnvelope) String() string { return proto.CompactTextString(m) }
func (*merkleProofEnvelope) ProtoMessage()    {}
