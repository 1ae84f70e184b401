package keeper

import (
	"github.com/Salpiglossis/cosmos-ibc-rs/host"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/03-connection/types"
)

// emitConnectionOpenInitEvent emits a connection open init event
func emitConnectionOpenInitEvent(ctx host.Context, connectionID string, clientID string, counterparty types.Counterparty) {
	ctx.EventManager().EmitEvent(
		host.NewEvent(
			types.EventTypeConnectionOpenInit,
			host.NewAttribute(types.AttributeKeyConnectionID, connectionID),
			host.NewAttribute(types.AttributeKeyClientID, clientID),
			host.NewAttribute(types.AttributeKeyCounterpartyClientID, counterparty.ClientId),
			host.NewAttribute(types.AttributeKeyCounterpartyConnectionID, counterparty.ConnectionId),
		),
	)
}

// emitConnectionOpenTryEvent emits a connection open try event
func emitConnectionOpenTryEvent(ctx host.Context, connectionID string, clientID string, counterparty types.Counterparty) {
	ctx.EventManager().EmitEvent(
		host.NewEvent(
			types.EventTypeConnectionOpenTry,
			host.NewAttribute(types.AttributeKeyConnectionID, connectionID),
			host.NewAttribute(types.AttributeKeyClientID, clientID),
			host.NewAttribute(types.AttributeKeyCounterpartyClientID, counterparty.ClientId),
			host.NewAttribute(types.AttributeKeyCounterpartyConnectionID, counterparty.ConnectionId),
		),
	)
}

// emitConnectionOpenAckEvent emits a connection open acknowledge event
func emitConnectionOpenAckEvent(ctx host.Context, connectionID string, connectionEnd types.ConnectionEnd) {
	ctx.EventManager().EmitEvent(
		host.NewEvent(
			types.EventTypeConnectionOpenAck,
			host.NewAttribute(types.AttributeKeyConnectionID, connectionID),
			host.NewAttribute(types.AttributeKeyClientID, connectionEnd.ClientId),
			host.NewAttribute(types.AttributeKeyCounterpartyClientID, connectionEnd.Counterparty.ClientId),
			host.NewAttribute(types.AttributeKeyCounterpartyConnectionID, connectionEnd.Counterparty.ConnectionId),
		),
	)
}

// emitConnectionOpenConfirmEvent emits a connection open confirm event
func emitConnectionOpenConfirmEvent(ctx host.Context, connectionID string, connectionEnd types.ConnectionEnd) {
	ctx.EventManager().EmitEvent(
		host.NewEvent(
			types.EventTypeConnectionOpenConfirm,
			host.NewAttribute(types.AttributeKeyConnectionID, connectionID),
			host.NewAttribute(types.AttributeKeyClientID, connectionEnd.ClientId),
			host.NewAttribute(types.AttributeKeyCounterpartyClientID, connectionEnd.Counterparty.ClientId),
			host.NewAttribute(types.AttributeKeyCounterpartyConnectionID, connectionEnd.Counterparty.ConnectionId),
		),
	)
}
