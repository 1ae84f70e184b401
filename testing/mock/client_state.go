package mock

import (
	"bytes"
	"fmt"

	errorsmod "cosmossdk.io/errors"

	"github.com/Salpiglossis/cosmos-ibc-rs/host"
	clienttypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/02-client/types"
	commitmenttypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/23-commitment/types"
	ibchost "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/24-host"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/codec"
	ibcerrors "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/errors"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/exported"
)

// FrozenHeight is the sentinel frozen height set on misbehaviour.
var FrozenHeight = clienttypes.NewHeight(0, 1)

var _ exported.ClientState = (*ClientState)(nil)

// ClientState is the test-double light client. It trusts any header
// submitted to it and verifies commitments by recomputing the path
// hash, so handshakes and packet flows can be exercised without a
// Merkle tree behind the counterparty.
type ClientState struct {
	LatestHeight clienttypes.Height `cbor:"1,keyasint"`
	FrozenHeight clienttypes.Height `cbor:"2,keyasint"`
}

// NewClientState creates a new mock ClientState at the given height.
func NewClientState(latestHeight clienttypes.Height) *ClientState {
	return &ClientState{
		LatestHeight: latestHeight,
		FrozenHeight: clienttypes.ZeroHeight(),
	}
}

// ClientType returns the mock client type.
func (ClientState) ClientType() string {
	return exported.Mock
}

// GetLatestHeight returns the latest trusted height.
func (cs ClientState) GetLatestHeight() exported.Height {
	return cs.LatestHeight
}

// Validate performs a basic validation of the client state fields.
func (cs ClientState) Validate() error {
	if cs.LatestHeight.RevisionHeight == 0 {
		return errorsmod.Wrap(clienttypes.ErrInvalidClient, "latest height revision height cannot be zero")
	}
	return nil
}

// Status returns Frozen if the client was frozen for misbehaviour and
// Active otherwise. The mock client does not expire.
func (cs ClientState) Status(ctx host.Context, clientStore host.KVStore, cdc *codec.Codec) exported.Status {
	if !cs.FrozenHeight.IsZero() {
		return exported.Frozen
	}
	return exported.Active
}

// GetTimestampAtHeight returns the timestamp of the consensus state at the given height.
func (ClientState) GetTimestampAtHeight(
	clientStore host.KVStore,
	cdc *codec.Codec,
	height exported.Height,
) (uint64, error) {
	consState, found := getConsensusState(clientStore, cdc, height)
	if !found {
		return 0, errorsmod.Wrapf(clienttypes.ErrConsensusStateNotFound, "height (%s)", height)
	}
	return consState.GetTimestamp(), nil
}

// Initialize sets the initial client and consensus states in the client store.
func (cs ClientState) Initialize(ctx host.Context, cdc *codec.Codec, clientStore host.KVStore, consState exported.ConsensusState) error {
	consensusState, ok := consState.(*ConsensusState)
	if !ok {
		return errorsmod.Wrapf(clienttypes.ErrInvalidConsensus, "invalid initial consensus state. expected type: %T, got: %T",
			&ConsensusState{}, consState)
	}

	setClientState(clientStore, cdc, &cs)
	setConsensusState(clientStore, cdc, consensusState, cs.LatestHeight)

	return nil
}

// VerifyMembership checks that the proof is the path hash of the claimed
// value: sha256(path || value).
func (cs ClientState) VerifyMembership(
	ctx host.Context,
	clientStore host.KVStore,
	cdc *codec.Codec,
	height exported.Height,
	delayTimePeriod uint64,
	delayBlockPeriod uint64,
	proof []byte,
	path exported.Path,
	value []byte,
) error {
	if cs.LatestHeight.LT(height) {
		return errorsmod.Wrapf(
			ibcerrors.ErrInvalidHeight,
			"client state height < proof height (%d < %d), please ensure the client has been updated", cs.LatestHeight, height,
		)
	}

	if _, found := getConsensusState(clientStore, cdc, height); !found {
		return errorsmod.Wrap(clienttypes.ErrConsensusStateNotFound, "please ensure the proof was constructed against a height that exists on the client")
	}

	if !bytes.Equal(proof, MembershipProof(path.String(), value)) {
		return errorsmod.Wrapf(commitmenttypes.ErrInvalidProof, "proof does not match path hash for path %s", path.String())
	}

	return nil
}

// VerifyNonMembership checks that the proof is the bare path hash:
// sha256(path).
func (cs ClientState) VerifyNonMembership(
	ctx host.Context,
	clientStore host.KVStore,
	cdc *codec.Codec,
	height exported.Height,
	delayTimePeriod uint64,
	delayBlockPeriod uint64,
	proof []byte,
	path exported.Path,
) error {
	if cs.LatestHeight.LT(height) {
		return errorsmod.Wrapf(
			ibcerrors.ErrInvalidHeight,
			"client state height < proof height (%d < %d), please ensure the client has been updated", cs.LatestHeight, height,
		)
	}

	if _, found := getConsensusState(clientStore, cdc, height); !found {
		return errorsmod.Wrap(clienttypes.ErrConsensusStateNotFound, "please ensure the proof was constructed against a height that exists on the client")
	}

	if !bytes.Equal(proof, NonMembershipProof(path.String())) {
		return errorsmod.Wrapf(commitmenttypes.ErrInvalidProof, "proof does not match absence hash for path %s", path.String())
	}

	return nil
}

// VerifyClientMessage performs basic validation only; the mock client
// trusts any well-formed header.
func (cs *ClientState) VerifyClientMessage(ctx host.Context, cdc *codec.Codec, clientStore host.KVStore, clientMsg exported.ClientMessage) error {
	switch msg := clientMsg.(type) {
	case *Header, *Misbehaviour:
		return msg.ValidateBasic()
	default:
		return clienttypes.ErrInvalidClientType
	}
}

// CheckForMisbehaviour reports a header conflicting with a stored
// consensus state at the same height, or a Misbehaviour submission
// carrying two conflicting headers.
func (cs ClientState) CheckForMisbehaviour(ctx host.Context, cdc *codec.Codec, clientStore host.KVStore, clientMsg exported.ClientMessage) bool {
	switch msg := clientMsg.(type) {
	case *Header:
		existing, found := getConsensusState(clientStore, cdc, msg.Height)
		if !found {
			return false
		}
		return existing.Timestamp != msg.Timestamp

	case *Misbehaviour:
		if msg.Header1.Height.EQ(msg.Header2.Height) {
			return msg.Header1.Timestamp != msg.Header2.Timestamp
		}
		return msg.Header1.Timestamp <= msg.Header2.Timestamp
	}

	return false
}

// UpdateStateOnMisbehaviour freezes the client.
func (cs ClientState) UpdateStateOnMisbehaviour(ctx host.Context, cdc *codec.Codec, clientStore host.KVStore, _ exported.ClientMessage) {
	cs.FrozenHeight = FrozenHeight

	setClientState(clientStore, cdc, &cs)
}

// UpdateState stores the header's consensus state and advances the
// latest height watermark if the header is newer.
func (cs ClientState) UpdateState(ctx host.Context, cdc *codec.Codec, clientStore host.KVStore, clientMsg exported.ClientMessage) []exported.Height {
	header, ok := clientMsg.(*Header)
	if !ok {
		panic(fmt.Errorf("expected type %T, got %T", &Header{}, clientMsg))
	}

	if _, found := getConsensusState(clientStore, cdc, header.Height); found {
		return []exported.Height{header.Height}
	}

	if header.Height.GT(cs.LatestHeight) {
		cs.LatestHeight = header.Height
	}

	setClientState(clientStore, cdc, &cs)
	setConsensusState(clientStore, cdc, header.ConsensusState(), header.Height)

	return []exported.Height{header.Height}
}

// VerifyUpgradeAndUpdateState is unsupported; the mock client tracks a
// counterparty that never upgrades.
func (cs ClientState) VerifyUpgradeAndUpdateState(
	ctx host.Context, cdc *codec.Codec, clientStore host.KVStore,
	upgradedClient exported.ClientState, upgradedConsState exported.ConsensusState,
	upgradeClientProof, upgradeConsStateProof []byte,
) error {
	return errorsmod.Wrap(clienttypes.ErrInvalidUpgradeClient, "cannot upgrade mock client")
}

func setClientState(clientStore host.KVStore, cdc *codec.Codec, clientState *ClientState) {
	bz := clienttypes.MustMarshalClientState(cdc, clientState)
	if err := clientStore.Set(ibchost.ClientStateKey(), bz); err != nil {
		panic(err)
	}
}

func setConsensusState(clientStore host.KVStore, cdc *codec.Codec, consensusState *ConsensusState, height exported.Height) {
	bz := clienttypes.MustMarshalConsensusState(cdc, consensusState)
	if err := clientStore.Set(ibchost.ConsensusStateKey(height), bz); err != nil {
		panic(err)
	}
}

func getConsensusState(clientStore host.KVStore, cdc *codec.Codec, height exported.Height) (*ConsensusState, bool) {
	bz, err := clientStore.Get(ibchost.ConsensusStateKey(height))
	if err != nil {
		panic(err)
	}
	if len(bz) == 0 {
		return nil, false
	}

	consensusState := clienttypes.MustUnmarshalConsensusState(cdc, bz)
	mockConsState, ok := consensusState.(*ConsensusState)
	if !ok {
		return nil, false
	}
	return mockConsState, true
}
