package keeper

import (
	errorsmod "cosmossdk.io/errors"
	metrics "github.com/hashicorp/go-metrics"

	"github.com/Salpiglossis/cosmos-ibc-rs/host"
	"github.com/Salpiglossis/cosmos-ibc-rs/internal/telemetry"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/02-client/types"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/exported"
)

// CreateClient generates a new client identifier and isolated prefix store for the
// provided client state. The client state is responsible for setting any client-specific
// data in the store via the Initialize method. This includes the client state,
// initial consensus state and any associated metadata.
func (k Keeper) CreateClient(ctx host.Context, clientState exported.ClientState, consensusState exported.ConsensusState) (string, error) {
	if err := clientState.Validate(); err != nil {
		return "", err
	}

	clientType := clientState.ClientType()
	params := k.GetParams(ctx)
	if !params.IsAllowedClient(clientType) {
		return "", errorsmod.Wrapf(
			types.ErrInvalidClientType,
			"client state type %s is not registered in the allowlist", clientType,
		)
	}

	clientID := k.GenerateClientIdentifier(ctx, clientType)

	clientStore := k.ClientStore(ctx, clientID)
	if err := clientState.Initialize(ctx, k.cdc, clientStore, consensusState); err != nil {
		return "", err
	}

	if status := k.GetClientStatus(ctx, clientID); status != exported.Active {
		return "", errorsmod.Wrapf(types.ErrClientNotActive, "cannot create client (%s) with status %s", clientID, status)
	}

	initialHeight := clientState.GetLatestHeight()
	k.Logger(ctx).Info("client created at height", "client-id", clientID, "height", initialHeight.String())

	defer telemetry.IncrCounterWithLabels(
		[]string{"ibc", "client", "create"},
		1,
		[]metrics.Label{telemetry.NewLabel(types.LabelClientType, clientType)},
	)

	emitCreateClientEvent(ctx, clientID, clientType, initialHeight)

	return clientID, nil
}

// UpdateClient updates the consensus state and the state root from a provided header.
// If the provided client message carries valid misbehaviour evidence the client is
// frozen instead and every subsequent update fails.
func (k Keeper) UpdateClient(ctx host.Context, clientID string, clientMsg exported.ClientMessage) error {
	clientState, found := k.GetClientState(ctx, clientID)
	if !found {
		return errorsmod.Wrapf(types.ErrClientNotFound, "cannot update client with ID %s", clientID)
	}

	clientStore := k.ClientStore(ctx, clientID)

	if status := k.GetClientStatus(ctx, clientID); status != exported.Active {
		return errorsmod.Wrapf(types.ErrClientNotActive, "cannot update client (%s) with status %s", clientID, status)
	}

	if err := clientState.VerifyClientMessage(ctx, k.cdc, clientStore, clientMsg); err != nil {
		return err
	}

	clientType := clientState.ClientType()

	foundMisbehaviour := clientState.CheckForMisbehaviour(ctx, k.cdc, clientStore, clientMsg)
	if foundMisbehaviour {
		clientState.UpdateStateOnMisbehaviour(ctx, k.cdc, clientStore, clientMsg)

		k.Logger(ctx).Info("client frozen due to misbehaviour", "client-id", clientID)

		defer telemetry.IncrCounterWithLabels(
			[]string{"ibc", "client", "misbehaviour"},
			1,
			[]metrics.Label{
				telemetry.NewLabel(types.LabelClientType, clientType),
				telemetry.NewLabel(types.LabelClientID, clientID),
				telemetry.NewLabel(types.LabelMsgType, "update"),
			},
		)

		emitSubmitMisbehaviourEvent(ctx, clientID, clientType)

		return nil
	}

	consensusHeights := clientState.UpdateState(ctx, k.cdc, clientStore, clientMsg)

	k.Logger(ctx).Info("client state updated", "client-id", clientID, "heights", consensusHeights)

	defer telemetry.IncrCounterWithLabels(
		[]string{"ibc", "client", "update"},
		1,
		[]metrics.Label{
			telemetry.NewLabel(types.LabelClientType, clientType),
			telemetry.NewLabel(types.LabelClientID, clientID),
			telemetry.NewLabel(types.LabelUpdateType, "msg"),
		},
	)

	emitUpdateClientEvent(ctx, clientID, clientType, consensusHeights, k.cdc, clientMsg)

	return nil
}

// UpgradeClient upgrades the client to a new client state if this new client was committed to
// by the old client at the specified upgrade height
func (k Keeper) UpgradeClient(
	ctx host.Context, clientID string,
	upgradedClient exported.ClientState, upgradedConsState exported.ConsensusState,
	upgradeClientProof, upgradeConsStateProof []byte,
) error {
	clientState, found := k.GetClientState(ctx, clientID)
	if !found {
		return errorsmod.Wrapf(types.ErrClientNotFound, "cannot upgrade client with ID %s", clientID)
	}

	clientStore := k.ClientStore(ctx, clientID)

	if status := k.GetClientStatus(ctx, clientID); status != exported.Active {
		return errorsmod.Wrapf(types.ErrClientNotActive, "cannot upgrade client (%s) with status %s", clientID, status)
	}

	// upgrades must advance the latest-height watermark. A plan height at
	// or below the current one would permit a replayed upgrade.
	if !upgradedClient.GetLatestHeight().GT(clientState.GetLatestHeight()) {
		return errorsmod.Wrapf(types.ErrInvalidHeight, "upgraded client height %s must be greater than current client height %s",
			upgradedClient.GetLatestHeight(), clientState.GetLatestHeight())
	}

	if err := clientState.VerifyUpgradeAndUpdateState(ctx, k.cdc, clientStore,
		upgradedClient, upgradedConsState, upgradeClientProof, upgradeConsStateProof,
	); err != nil {
		return errorsmod.Wrapf(err, "cannot upgrade client with ID %s", clientID)
	}

	k.Logger(ctx).Info("client state upgraded", "client-id", clientID, "height", upgradedClient.GetLatestHeight().String())

	defer telemetry.IncrCounterWithLabels(
		[]string{"ibc", "client", "upgrade"},
		1,
		[]metrics.Label{
			telemetry.NewLabel(types.LabelClientType, upgradedClient.ClientType()),
			telemetry.NewLabel(types.LabelClientID, clientID),
		},
	)

	emitUpgradeClientEvent(ctx, clientID, upgradedClient)

	return nil
}

// SubmitMisbehaviour freezes a client if the provided evidence passes the
// light client's misbehaviour checks. A frozen client rejects every
// subsequent update and is excluded from proof verification.
func (k Keeper) SubmitMisbehaviour(ctx host.Context, clientID string, misbehaviour exported.ClientMessage) error {
	clientState, found := k.GetClientState(ctx, clientID)
	if !found {
		return errorsmod.Wrapf(types.ErrClientNotFound, "cannot check misbehaviour for client with ID %s", clientID)
	}

	clientStore := k.ClientStore(ctx, clientID)

	if status := k.GetClientStatus(ctx, clientID); status != exported.Active {
		return errorsmod.Wrapf(types.ErrClientNotActive, "cannot process misbehaviour for client (%s) with status %s", clientID, status)
	}

	if err := clientState.VerifyClientMessage(ctx, k.cdc, clientStore, misbehaviour); err != nil {
		return err
	}

	if !clientState.CheckForMisbehaviour(ctx, k.cdc, clientStore, misbehaviour) {
		return errorsmod.Wrapf(types.ErrInvalidMisbehaviour, "failed to verify misbehaviour for client (%s)", clientID)
	}

	clientState.UpdateStateOnMisbehaviour(ctx, k.cdc, clientStore, misbehaviour)

	clientType := clientState.ClientType()
	k.Logger(ctx).Info("client frozen due to misbehaviour", "client-id", clientID)

	defer telemetry.IncrCounterWithLabels(
		[]string{"ibc", "client", "misbehaviour"},
		1,
		[]metrics.Label{
			telemetry.NewLabel(types.LabelClientType, clientType),
			telemetry.NewLabel(types.LabelClientID, clientID),
			telemetry.NewLabel(types.LabelMsgType, "misbehaviour"),
		},
	)

	emitSubmitMisbehaviourEvent(ctx, clientID, clientType)

	return nil
}
