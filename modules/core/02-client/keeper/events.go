package keeper

import (
	"encoding/hex"

	"github.com/Salpiglossis/cosmos-ibc-rs/host"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/02-client/types"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/codec"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/exported"
)

// emitCreateClientEvent emits a create client event
func emitCreateClientEvent(ctx host.Context, clientID, clientType string, initialHeight exported.Height) {
	ctx.EventManager().EmitEvent(
		host.NewEvent(
			types.EventTypeCreateClient,
			host.NewAttribute(types.AttributeKeyClientID, clientID),
			host.NewAttribute(types.AttributeKeyClientType, clientType),
			host.NewAttribute(types.AttributeKeyConsensusHeight, initialHeight.String()),
		),
	)
}

// emitUpdateClientEvent emits an update client event. The header is
// rendered as the lowercase hex encoding of its type-agnostic envelope;
// consumers must treat it as an opaque blob.
func emitUpdateClientEvent(ctx host.Context, clientID, clientType string, consensusHeights []exported.Height, cdc *codec.Codec, clientMsg exported.ClientMessage) {
	headerBz := types.MustMarshalClientMessage(cdc, clientMsg)

	var consensusHeightAttr string
	if len(consensusHeights) != 0 {
		consensusHeightAttr = consensusHeights[0].String()
	}

	ctx.EventManager().EmitEvent(
		host.NewEvent(
			types.EventTypeUpdateClient,
			host.NewAttribute(types.AttributeKeyClientID, clientID),
			host.NewAttribute(types.AttributeKeyClientType, clientType),
			// Deprecated: AttributeKeyConsensusHeight is kept for
			// consumers which do not yet read consensus_heights.
			host.NewAttribute(types.AttributeKeyConsensusHeight, consensusHeightAttr),
			host.NewAttribute(types.AttributeKeyConsensusHeights, types.FormatHeightList(consensusHeights)),
			host.NewAttribute(types.AttributeKeyHeader, hex.EncodeToString(headerBz)),
		),
	)
}

// emitSubmitMisbehaviourEvent emits a client misbehaviour event
func emitSubmitMisbehaviourEvent(ctx host.Context, clientID, clientType string) {
	ctx.EventManager().EmitEvent(
		host.NewEvent(
			types.EventTypeSubmitMisbehaviour,
			host.NewAttribute(types.AttributeKeyClientID, clientID),
			host.NewAttribute(types.AttributeKeyClientType, clientType),
		),
	)
}

// emitUpgradeClientEvent emits an upgrade client event
func emitUpgradeClientEvent(ctx host.Context, clientID string, clientState exported.ClientState) {
	ctx.EventManager().EmitEvent(
		host.NewEvent(
			types.EventTypeUpgradeClient,
			host.NewAttribute(types.AttributeKeyClientID, clientID),
			host.NewAttribute(types.AttributeKeyClientType, clientState.ClientType()),
			host.NewAttribute(types.AttributeKeyConsensusHeight, clientState.GetLatestHeight().String()),
		),
	)
}
