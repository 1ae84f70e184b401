package tendermint

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"

	"github.com/Salpiglossis/cosmos-ibc-rs/host"
	clienttypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/02-client/types"
	commitmenttypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/23-commitment/types"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/codec"
	ibcerrors "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/errors"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/exported"
)

const (
	// KeyUpgradedClient is the sub-key the counterparty commits the upgraded
	// client state under at the upgrade plan height.
	KeyUpgradedClient = "upgradedClient"
	// KeyUpgradedConsState is the sub-key the counterparty commits the
	// upgraded consensus state under at the upgrade plan height.
	KeyUpgradedConsState = "upgradedConsState"
)

// VerifyUpgradeAndUpdateState checks if the upgraded client has been committed by the current client
// It will zero out all client-specific fields (e.g. TrustingPeriod) and verify all data
// in client state that must be the same across all valid Tendermint clients for the new chain.
// VerifyUpgrade will return an error if:
// - the upgradedClient is not a Tendermint ClientState
// - the latest height of the client state does not have the same revision number or has a greater
// height than the committed client.
// - the proof of the upgraded client/consensus state fails against the last height of the current revision
func (cs ClientState) VerifyUpgradeAndUpdateState(
	ctx host.Context, cdc *codec.Codec, clientStore host.KVStore,
	upgradedClient exported.ClientState, upgradedConsState exported.ConsensusState,
	upgradeClientProof, upgradeConsStateProof []byte,
) error {
	if len(cs.UpgradePath) == 0 {
		return errorsmod.Wrap(clienttypes.ErrInvalidUpgradeClient, "cannot upgrade client, no upgrade path set")
	}

	// upgraded client state must be Tendermint client state
	tmUpgradeClient, ok := upgradedClient.(*ClientState)
	if !ok {
		return errorsmod.Wrapf(clienttypes.ErrInvalidClientType, "upgraded client must be Tendermint client. expected: %T got: %T",
			&ClientState{}, upgradedClient)
	}

	// upgraded consensus state must be Tendermint consensus state
	tmUpgradeConsState, ok := upgradedConsState.(*ConsensusState)
	if !ok {
		return errorsmod.Wrapf(clienttypes.ErrInvalidConsensus, "upgraded consensus state must be Tendermint consensus state. expected %T, got %T",
			&ConsensusState{}, upgradedConsState)
	}

	// last height of current counterparty chain must be client's latest height
	lastHeight := cs.LatestHeight
	if !tmUpgradeClient.LatestHeight.GT(lastHeight) {
		return errorsmod.Wrapf(ibcerrors.ErrInvalidHeight, "upgraded client height %s must be at greater than current client height %s",
			tmUpgradeClient.LatestHeight, lastHeight)
	}

	// counterparty chain must commit the upgraded client and upgraded
	// consensus state at the last height of the current revision
	consState, found := GetConsensusState(clientStore, cdc, lastHeight)
	if !found {
		return errorsmod.Wrapf(clienttypes.ErrConsensusStateNotFound, "consensus state not found for last height of current revision (%s)", lastHeight)
	}

	// the committed client must equal the upgraded client with all
	// client-customizable fields zeroed out
	committedClient := tmUpgradeClient.ZeroCustomFields()
	bz := clienttypes.MustMarshalClientState(cdc, committedClient)

	var clientProof commitmenttypes.MerkleProof
	if err := clientProof.Unmarshal(upgradeClientProof); err != nil {
		return errorsmod.Wrap(commitmenttypes.ErrInvalidProof, "could not unmarshal client merkle proof")
	}

	clientPath := constructUpgradeMerklePath(cs.UpgradePath, KeyUpgradedClient, lastHeight)
	if err := clientProof.VerifyMembership(cs.ProofSpecs, consState.GetRoot(), clientPath, bz); err != nil {
		return errorsmod.Wrap(err, "client state proof failed")
	}

	bz = clienttypes.MustMarshalConsensusState(cdc, tmUpgradeConsState)

	var consProof commitmenttypes.MerkleProof
	if err := consProof.Unmarshal(upgradeConsStateProof); err != nil {
		return errorsmod.Wrap(commitmenttypes.ErrInvalidProof, "could not unmarshal consensus state merkle proof")
	}

	consStatePath := constructUpgradeMerklePath(cs.UpgradePath, KeyUpgradedConsState, lastHeight)
	if err := consProof.VerifyMembership(cs.ProofSpecs, consState.GetRoot(), consStatePath, bz); err != nil {
		return errorsmod.Wrap(err, "consensus state proof failed")
	}

	// Construct new client state and consensus state
	// Relayer chosen client parameters are ignored.
	// All chain-chosen parameters come from committed client, all
	// client-chosen parameters come from current client.
	newClientState := NewClientState(
		tmUpgradeClient.ChainId, cs.TrustLevel, cs.TrustingPeriod, cs.MaxClockDrift,
		tmUpgradeClient.LatestHeight, tmUpgradeClient.ProofSpecs, tmUpgradeClient.UpgradePath,
	)

	if err := newClientState.Validate(); err != nil {
		return errorsmod.Wrap(err, "updated client state failed basic validation")
	}

	// The new consensus state is merely used as a trusted kernel against
	// which headers on the new chain can be verified. The root is just a
	// stand-in sentinel value as it cannot be known in advance, thus no
	// proof verification will pass.
	newConsState := NewConsensusState(
		tmUpgradeConsState.Timestamp,
		commitmenttypes.NewMerkleRoot([]byte(SentinelRoot)),
		tmUpgradeConsState.NextValidatorsHash,
	)

	setClientState(clientStore, cdc, newClientState)
	setConsensusState(clientStore, cdc, newConsState, newClientState.LatestHeight)
	setConsensusMetadata(ctx, clientStore, newClientState.LatestHeight)

	return nil
}

// SentinelRoot is the root set on the upgraded consensus state; it can never
// pass proof verification.
const SentinelRoot = "sentinel_root"

// constructUpgradeMerklePath returns the merkle path at which the
// counterparty commits the upgraded state: the client-configured upgrade
// path followed by the plan height and the upgrade sub-key.
func constructUpgradeMerklePath(upgradePath []string, key string, lastHeight exported.Height) commitmenttypes.MerklePath {
	// copy all elements from upgradePath except final element
	clientPath := make([]string, len(upgradePath))
	copy(clientPath, upgradePath)

	// append the requested height and upgrade key to the last element
	appendedKey := fmt.Sprintf("%d/%s", lastHeight.GetRevisionHeight(), key)
	clientPath[len(clientPath)-1] = fmt.Sprintf("%s/%s", clientPath[len(clientPath)-1], appendedKey)

	return commitmenttypes.NewMerklePath(clientPath...)
}
