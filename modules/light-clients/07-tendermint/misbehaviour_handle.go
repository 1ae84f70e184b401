package tendermint

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/Salpiglossis/cosmos-ibc-rs/host"
	clienttypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/02-client/types"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/codec"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/exported"
)

// CheckForMisbehaviour detects duplicate height misbehaviour and BFT time violation misbehaviour
// in a submitted Header message and verifies the correctness of a submitted Misbehaviour ClientMessage
func (cs ClientState) CheckForMisbehaviour(ctx host.Context, cdc *codec.Codec, clientStore host.KVStore, msg exported.ClientMessage) bool {
	switch msg := msg.(type) {
	case *Header:
		// Check if the Client store already has a consensus state for the header's height
		// If the consensus state exists, and it matches the header then we return early
		// since header misbehaviour is not possible
		existingConsState, found := GetConsensusState(clientStore, cdc, msg.Height)
		if !found {
			return false
		}

		// The consensus state matching the header means no misbehaviour, the
		// update is a no-op.
		// A consensus state conflicting with the header at the same height is
		// evidence of misbehaviour.
		headerConsState := msg.ConsensusState()
		return !consensusStatesEqual(existingConsState, headerConsState)

	case *Misbehaviour:
		// if heights are equal check that this is valid misbehaviour of a fork
		if msg.Header1.Height.EQ(msg.Header2.Height) {
			// the headers are forks of each other if they commit different
			// consensus states at the same height
			return !msg.Header1.hasEqualCommitment(*msg.Header2)
		}

		// Header1 is at a greater height than Header2 (checked in ValidateBasic).
		// Time monotonicity is violated when the later block does not have a
		// later timestamp.
		return !msg.Header1.Time.After(msg.Header2.Time)
	}

	return false
}

// verifyMisbehaviour determines whether or not two conflicting
// headers at the same height would have convinced the light client.
func (cs *ClientState) verifyMisbehaviour(ctx host.Context, cdc *codec.Codec, clientStore host.KVStore, misbehaviour *Misbehaviour) error {
	if err := misbehaviour.ValidateBasic(); err != nil {
		return err
	}

	// Regardless of the type of misbehaviour, both headers must have been
	// individually verifiable against their trusted consensus states.
	if err := checkTrustedHeader(ctx, cdc, clientStore, cs, misbehaviour.Header1); err != nil {
		return errorsmod.Wrap(err, "verifying Header1 in Misbehaviour failed")
	}
	if err := checkTrustedHeader(ctx, cdc, clientStore, cs, misbehaviour.Header2); err != nil {
		return errorsmod.Wrap(err, "verifying Header2 in Misbehaviour failed")
	}

	return nil
}

// checkTrustedHeader checks that the header's trusted consensus state exists
// and is still within the trusting period. Trust in the conflicting headers
// is rooted in these snapshots.
func checkTrustedHeader(ctx host.Context, cdc *codec.Codec, clientStore host.KVStore, cs *ClientState, header *Header) error {
	consState, found := GetConsensusState(clientStore, cdc, header.TrustedHeight)
	if !found {
		return errorsmod.Wrapf(clienttypes.ErrConsensusStateNotFound, "could not get trusted consensus state from clientStore at TrustedHeight: %s", header.TrustedHeight)
	}

	if cs.IsExpired(consState.Timestamp, ctx.BlockTime()) {
		return errorsmod.Wrap(ErrTrustingPeriodExpired, "trusted consensus state is outside of trusting period")
	}

	return nil
}

// consensusStatesEqual reports whether two consensus states commit to the
// same counterparty state.
func consensusStatesEqual(a, b *ConsensusState) bool {
	return a.Timestamp.Equal(b.Timestamp) &&
		a.Root.Empty() == b.Root.Empty() &&
		string(a.Root.GetHash()) == string(b.Root.GetHash()) &&
		string(a.NextValidatorsHash) == string(b.NextValidatorsHash)
}
