package tendermint

import (
	"bytes"
	"fmt"

	errorsmod "cosmossdk.io/errors"

	"github.com/Salpiglossis/cosmos-ibc-rs/host"
	clienttypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/02-client/types"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/codec"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/exported"
)

// VerifyClientMessage checks if the clientMessage is of type Header or Misbehaviour and verifies the message
func (cs *ClientState) VerifyClientMessage(
	ctx host.Context, cdc *codec.Codec, clientStore host.KVStore,
	clientMsg exported.ClientMessage,
) error {
	switch msg := clientMsg.(type) {
	case *Header:
		return cs.verifyHeader(ctx, cdc, clientStore, msg)
	case *Misbehaviour:
		return cs.verifyMisbehaviour(ctx, cdc, clientStore, msg)
	default:
		return clienttypes.ErrInvalidClientType
	}
}

// verifyHeader performs the structural and temporal checks on the provided
// header against the trusted consensus state:
//   - the trusted consensus state referenced by the header exists and is
//     still within the trusting period
//   - the trusted validator hash carried by the header matches what the
//     trusted consensus state committed to
//   - the header height belongs to the client's revision and advances past
//     the trusted height
//   - the header time is monotonic over the trusted state and within the
//     configured clock drift of the host clock
//
// Signature verification over the validator set is performed by the
// consensus layer before the header reaches the client.
func (cs *ClientState) verifyHeader(
	ctx host.Context, cdc *codec.Codec, clientStore host.KVStore,
	header *Header,
) error {
	if err := header.ValidateBasic(); err != nil {
		return err
	}

	// Retrieve trusted consensus states for each Header in misbehaviour
	consState, found := GetConsensusState(clientStore, cdc, header.TrustedHeight)
	if !found {
		return errorsmod.Wrapf(clienttypes.ErrConsensusStateNotFound, "could not get trusted consensus state from clientStore for Header at TrustedHeight: %s", header.TrustedHeight)
	}

	if cs.IsExpired(consState.Timestamp, ctx.BlockTime()) {
		return errorsmod.Wrap(ErrTrustingPeriodExpired, "trusted consensus state is outside of trusting period")
	}

	// the trusted validator hash must be the one the trusted consensus state
	// committed to for the following block
	if len(header.TrustedValidatorsHash) != 0 && len(consState.NextValidatorsHash) != 0 &&
		!bytes.Equal(header.TrustedValidatorsHash, consState.NextValidatorsHash) {
		return errorsmod.Wrap(ErrInvalidHeader, "trusted validators hash does not hash match the next validators hash of the trusted consensus state")
	}

	// the revision of the header height must match the client's chain id
	if header.Height.RevisionNumber != clienttypes.ParseChainID(cs.ChainId) {
		return errorsmod.Wrapf(ErrInvalidHeaderHeight, "header height revision %d does not match the chain id revision %d",
			header.Height.RevisionNumber, clienttypes.ParseChainID(cs.ChainId))
	}

	// the new block must be after the trusted one
	if !header.Time.After(consState.Timestamp) {
		return errorsmod.Wrapf(ErrInvalidHeader, "header time (%s) is not after trusted consensus state time (%s)",
			header.Time, consState.Timestamp)
	}

	// the header cannot be from the future, modulo the allowed clock drift
	maxTime := ctx.BlockTime().Add(cs.MaxClockDrift)
	if !header.Time.Before(maxTime) {
		return errorsmod.Wrapf(ErrInvalidHeader, "header time (%s) exceeds the host time with max clock drift added (%s)",
			header.Time, maxTime)
	}

	return nil
}

// UpdateState may be used to either create a consensus state for:
// - a future height greater than the latest client state height
// - a past height that was skipped during bisection
// If we are updating to a past height, a consensus state is created for that height to be persisted in client store
// If we are updating to a future height, the consensus state is created and the client state is updated to reflect
// the new latest height
// A list containing the updated consensus height is returned.
// UpdateState must only be used to update within a single revision, thus header revision number and trusted height's revision
// number must be the same. To update to a new revision, use a separate upgrade path
func (cs ClientState) UpdateState(ctx host.Context, cdc *codec.Codec, clientStore host.KVStore, clientMsg exported.ClientMessage) []exported.Height {
	header, ok := clientMsg.(*Header)
	if !ok {
		panic(fmt.Errorf("expected type %T, got %T", &Header{}, clientMsg))
	}

	// check for duplicate update
	// if consensus state exists, the update is a no-op
	if _, found := GetConsensusState(clientStore, cdc, header.Height); found {
		return []exported.Height{header.Height}
	}

	// update the latest-height watermark only if the header advances it
	if header.Height.GT(cs.LatestHeight) {
		cs.LatestHeight = header.Height
	}

	consensusState := header.ConsensusState()

	setClientState(clientStore, cdc, &cs)
	setConsensusState(clientStore, cdc, consensusState, header.Height)
	setConsensusMetadata(ctx, clientStore, header.Height)

	return []exported.Height{header.Height}
}

// UpdateStateOnMisbehaviour updates state upon misbehaviour, freezing the ClientState.
// This method should only be called when misbehaviour is detected as it does not perform
// any misbehaviour checks.
func (cs ClientState) UpdateStateOnMisbehaviour(ctx host.Context, cdc *codec.Codec, clientStore host.KVStore, _ exported.ClientMessage) {
	cs.FrozenHeight = FrozenHeight

	setClientState(clientStore, cdc, &cs)
}
