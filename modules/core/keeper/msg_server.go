package keeper

import (
	"errors"

	errorsmod "cosmossdk.io/errors"
	metrics "github.com/hashicorp/go-metrics"

	"github.com/Salpiglossis/cosmos-ibc-rs/host"
	"github.com/Salpiglossis/cosmos-ibc-rs/internal/telemetry"
	clienttypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/02-client/types"
	connectiontypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/03-connection/types"
	channeltypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/04-channel/types"
	porttypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/05-port/types"
	coremetrics "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/metrics"
)

// CreateClient defines a rpc handler method for MsgCreateClient.
func (k *Keeper) CreateClient(ctx host.Context, msg *clienttypes.MsgCreateClient) (*clienttypes.MsgCreateClientResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	cacheCtx, writeFn := ctx.CacheContext()
	clientID, err := k.ClientKeeper.CreateClient(cacheCtx, msg.ClientState, msg.ConsensusState)
	if err != nil {
		return nil, err
	}

	if err := writeFn(); err != nil {
		return nil, err
	}

	return &clienttypes.MsgCreateClientResponse{ClientId: clientID}, nil
}

// UpdateClient defines a rpc handler method for MsgUpdateClient.
func (k *Keeper) UpdateClient(ctx host.Context, msg *clienttypes.MsgUpdateClient) (*clienttypes.MsgUpdateClientResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	cacheCtx, writeFn := ctx.CacheContext()
	if err := k.ClientKeeper.UpdateClient(cacheCtx, msg.ClientId, msg.ClientMessage); err != nil {
		return nil, err
	}

	if err := writeFn(); err != nil {
		return nil, err
	}

	return &clienttypes.MsgUpdateClientResponse{}, nil
}

// UpgradeClient defines a rpc handler method for MsgUpgradeClient.
func (k *Keeper) UpgradeClient(ctx host.Context, msg *clienttypes.MsgUpgradeClient) (*clienttypes.MsgUpgradeClientResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	cacheCtx, writeFn := ctx.CacheContext()
	if err := k.ClientKeeper.UpgradeClient(
		cacheCtx, msg.ClientId, msg.ClientState, msg.ConsensusState,
		msg.ProofUpgradeClient, msg.ProofUpgradeConsensusState,
	); err != nil {
		return nil, err
	}

	if err := writeFn(); err != nil {
		return nil, err
	}

	return &clienttypes.MsgUpgradeClientResponse{}, nil
}

// SubmitMisbehaviour defines a rpc handler method for MsgSubmitMisbehaviour.
func (k *Keeper) SubmitMisbehaviour(ctx host.Context, msg *clienttypes.MsgSubmitMisbehaviour) (*clienttypes.MsgSubmitMisbehaviourResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	cacheCtx, writeFn := ctx.CacheContext()
	if err := k.ClientKeeper.SubmitMisbehaviour(cacheCtx, msg.ClientId, msg.Misbehaviour); err != nil {
		return nil, err
	}

	if err := writeFn(); err != nil {
		return nil, err
	}

	return &clienttypes.MsgSubmitMisbehaviourResponse{}, nil
}

// ConnectionOpenInit defines a rpc handler method for MsgConnectionOpenInit.
func (k *Keeper) ConnectionOpenInit(ctx host.Context, msg *connectiontypes.MsgConnectionOpenInit) (*connectiontypes.MsgConnectionOpenInitResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	cacheCtx, writeFn := ctx.CacheContext()
	connectionID, err := k.ConnectionKeeper.ConnOpenInit(cacheCtx, msg.ClientId, msg.Counterparty, msg.Version, msg.DelayPeriod)
	if err != nil {
		return nil, errorsmod.Wrap(err, "connection handshake open init failed")
	}

	if err := writeFn(); err != nil {
		return nil, err
	}

	return &connectiontypes.MsgConnectionOpenInitResponse{ConnectionId: connectionID}, nil
}

// ConnectionOpenTry defines a rpc handler method for MsgConnectionOpenTry.
func (k *Keeper) ConnectionOpenTry(ctx host.Context, msg *connectiontypes.MsgConnectionOpenTry) (*connectiontypes.MsgConnectionOpenTryResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	cacheCtx, writeFn := ctx.CacheContext()
	connectionID, err := k.ConnectionKeeper.ConnOpenTry(
		cacheCtx, msg.Counterparty, msg.DelayPeriod, msg.ClientId, msg.ClientState,
		msg.CounterpartyVersions, msg.ProofInit, msg.ProofClient, msg.ProofHeight,
	)
	if err != nil {
		return nil, errorsmod.Wrap(err, "connection handshake open try failed")
	}

	if err := writeFn(); err != nil {
		return nil, err
	}

	return &connectiontypes.MsgConnectionOpenTryResponse{ConnectionId: connectionID}, nil
}

// ConnectionOpenAck defines a rpc handler method for MsgConnectionOpenAck.
func (k *Keeper) ConnectionOpenAck(ctx host.Context, msg *connectiontypes.MsgConnectionOpenAck) (*connectiontypes.MsgConnectionOpenAckResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	cacheCtx, writeFn := ctx.CacheContext()
	if err := k.ConnectionKeeper.ConnOpenAck(
		cacheCtx, msg.ConnectionId, msg.ClientState, msg.Version, msg.CounterpartyConnectionId,
		msg.ProofTry, msg.ProofClient, msg.ProofHeight,
	); err != nil {
		return nil, errorsmod.Wrap(err, "connection handshake open ack failed")
	}

	if err := writeFn(); err != nil {
		return nil, err
	}

	return &connectiontypes.MsgConnectionOpenAckResponse{}, nil
}

// ConnectionOpenConfirm defines a rpc handler method for MsgConnectionOpenConfirm.
func (k *Keeper) ConnectionOpenConfirm(ctx host.Context, msg *connectiontypes.MsgConnectionOpenConfirm) (*connectiontypes.MsgConnectionOpenConfirmResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	cacheCtx, writeFn := ctx.CacheContext()
	if err := k.ConnectionKeeper.ConnOpenConfirm(cacheCtx, msg.ConnectionId, msg.ProofAck, msg.ProofHeight); err != nil {
		return nil, errorsmod.Wrap(err, "connection handshake open confirm failed")
	}

	if err := writeFn(); err != nil {
		return nil, err
	}

	return &connectiontypes.MsgConnectionOpenConfirmResponse{}, nil
}

// ChannelOpenInit defines a rpc handler method for MsgChannelOpenInit.
func (k *Keeper) ChannelOpenInit(ctx host.Context, msg *channeltypes.MsgChannelOpenInit) (*channeltypes.MsgChannelOpenInitResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	cbs, err := k.routeToModule(ctx, msg.PortId)
	if err != nil {
		return nil, err
	}

	cacheCtx, writeFn := ctx.CacheContext()
	channelID, err := k.ChannelKeeper.ChanOpenInit(
		cacheCtx, msg.Channel.Ordering, msg.Channel.ConnectionHops, msg.PortId,
		msg.Channel.Counterparty, msg.Channel.Version,
	)
	if err != nil {
		return nil, errorsmod.Wrap(err, "channel handshake open init failed")
	}

	version, err := cbs.OnChanOpenInit(cacheCtx, msg.Channel.Ordering, msg.Channel.ConnectionHops, msg.PortId, channelID, msg.Channel.Counterparty, msg.Channel.Version)
	if err != nil {
		return nil, errorsmod.Wrapf(err, "channel open init callback failed for port ID: %s, channel ID: %s", msg.PortId, channelID)
	}

	// the application owns the channel version; adopt its choice before
	// the branch commits
	if version != msg.Channel.Version {
		channel, found := k.ChannelKeeper.GetChannel(cacheCtx, msg.PortId, channelID)
		if !found {
			return nil, errorsmod.Wrapf(channeltypes.ErrChannelNotFound, "port ID (%s) channel ID (%s)", msg.PortId, channelID)
		}
		channel.Version = version
		k.ChannelKeeper.SetChannel(cacheCtx, msg.PortId, channelID, channel)
	}

	if err := writeFn(); err != nil {
		return nil, err
	}

	k.Logger(ctx).Info("channel open init succeeded", "channel-id", channelID, "version", version)

	return &channeltypes.MsgChannelOpenInitResponse{
		ChannelId: channelID,
		Version:   version,
	}, nil
}

// ChannelOpenTry defines a rpc handler method for MsgChannelOpenTry.
func (k *Keeper) ChannelOpenTry(ctx host.Context, msg *channeltypes.MsgChannelOpenTry) (*channeltypes.MsgChannelOpenTryResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	cbs, err := k.routeToModule(ctx, msg.PortId)
	if err != nil {
		return nil, err
	}

	cacheCtx, writeFn := ctx.CacheContext()
	channelID, err := k.ChannelKeeper.ChanOpenTry(
		cacheCtx, msg.Channel.Ordering, msg.Channel.ConnectionHops, msg.PortId,
		msg.Channel.Counterparty, msg.Channel.Version, msg.CounterpartyVersion,
		msg.ProofInit, msg.ProofHeight,
	)
	if err != nil {
		return nil, errorsmod.Wrap(err, "channel handshake open try failed")
	}

	version, err := cbs.OnChanOpenTry(cacheCtx, msg.Channel.Ordering, msg.Channel.ConnectionHops, msg.PortId, channelID, msg.Channel.Counterparty, msg.CounterpartyVersion)
	if err != nil {
		return nil, errorsmod.Wrapf(err, "channel open try callback failed for port ID: %s, channel ID: %s", msg.PortId, channelID)
	}

	if version != msg.Channel.Version {
		channel, found := k.ChannelKeeper.GetChannel(cacheCtx, msg.PortId, channelID)
		if !found {
			return nil, errorsmod.Wrapf(channeltypes.ErrChannelNotFound, "port ID (%s) channel ID (%s)", msg.PortId, channelID)
		}
		channel.Version = version
		k.ChannelKeeper.SetChannel(cacheCtx, msg.PortId, channelID, channel)
	}

	if err := writeFn(); err != nil {
		return nil, err
	}

	k.Logger(ctx).Info("channel open try succeeded", "channel-id", channelID, "port-id", msg.PortId, "version", version)

	return &channeltypes.MsgChannelOpenTryResponse{
		ChannelId: channelID,
		Version:   version,
	}, nil
}

// ChannelOpenAck defines a rpc handler method for MsgChannelOpenAck.
func (k *Keeper) ChannelOpenAck(ctx host.Context, msg *channeltypes.MsgChannelOpenAck) (*channeltypes.MsgChannelOpenAckResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	cbs, err := k.routeToModule(ctx, msg.PortId)
	if err != nil {
		return nil, err
	}

	cacheCtx, writeFn := ctx.CacheContext()
	if err := k.ChannelKeeper.ChanOpenAck(
		cacheCtx, msg.PortId, msg.ChannelId, msg.CounterpartyVersion, msg.CounterpartyChannelId,
		msg.ProofTry, msg.ProofHeight,
	); err != nil {
		return nil, errorsmod.Wrap(err, "channel handshake open ack failed")
	}

	if err := cbs.OnChanOpenAck(cacheCtx, msg.PortId, msg.ChannelId, msg.CounterpartyChannelId, msg.CounterpartyVersion); err != nil {
		return nil, errorsmod.Wrapf(err, "channel open ack callback failed for port ID: %s, channel ID: %s", msg.PortId, msg.ChannelId)
	}

	if err := writeFn(); err != nil {
		return nil, err
	}

	k.Logger(ctx).Info("channel open ack succeeded", "channel-id", msg.ChannelId, "port-id", msg.PortId)

	return &channeltypes.MsgChannelOpenAckResponse{}, nil
}

// ChannelOpenConfirm defines a rpc handler method for MsgChannelOpenConfirm.
func (k *Keeper) ChannelOpenConfirm(ctx host.Context, msg *channeltypes.MsgChannelOpenConfirm) (*channeltypes.MsgChannelOpenConfirmResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	cbs, err := k.routeToModule(ctx, msg.PortId)
	if err != nil {
		return nil, err
	}

	cacheCtx, writeFn := ctx.CacheContext()
	if err := k.ChannelKeeper.ChanOpenConfirm(cacheCtx, msg.PortId, msg.ChannelId, msg.ProofAck, msg.ProofHeight); err != nil {
		return nil, errorsmod.Wrap(err, "channel handshake open confirm failed")
	}

	if err := cbs.OnChanOpenConfirm(cacheCtx, msg.PortId, msg.ChannelId); err != nil {
		return nil, errorsmod.Wrapf(err, "channel open confirm callback failed for port ID: %s, channel ID: %s", msg.PortId, msg.ChannelId)
	}

	if err := writeFn(); err != nil {
		return nil, err
	}

	k.Logger(ctx).Info("channel open confirm succeeded", "channel-id", msg.ChannelId, "port-id", msg.PortId)

	return &channeltypes.MsgChannelOpenConfirmResponse{}, nil
}

// ChannelCloseInit defines a rpc handler method for MsgChannelCloseInit.
func (k *Keeper) ChannelCloseInit(ctx host.Context, msg *channeltypes.MsgChannelCloseInit) (*channeltypes.MsgChannelCloseInitResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	cbs, err := k.routeToModule(ctx, msg.PortId)
	if err != nil {
		return nil, err
	}

	cacheCtx, writeFn := ctx.CacheContext()
	if err := cbs.OnChanCloseInit(cacheCtx, msg.PortId, msg.ChannelId); err != nil {
		return nil, errorsmod.Wrapf(err, "channel close init callback failed for port ID: %s, channel ID: %s", msg.PortId, msg.ChannelId)
	}

	if err := k.ChannelKeeper.ChanCloseInit(cacheCtx, msg.PortId, msg.ChannelId); err != nil {
		return nil, errorsmod.Wrap(err, "channel handshake close init failed")
	}

	if err := writeFn(); err != nil {
		return nil, err
	}

	k.Logger(ctx).Info("channel close init succeeded", "channel-id", msg.ChannelId, "port-id", msg.PortId)

	return &channeltypes.MsgChannelCloseInitResponse{}, nil
}

// ChannelCloseConfirm defines a rpc handler method for MsgChannelCloseConfirm.
func (k *Keeper) ChannelCloseConfirm(ctx host.Context, msg *channeltypes.MsgChannelCloseConfirm) (*channeltypes.MsgChannelCloseConfirmResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	cbs, err := k.routeToModule(ctx, msg.PortId)
	if err != nil {
		return nil, err
	}

	cacheCtx, writeFn := ctx.CacheContext()
	if err := cbs.OnChanCloseConfirm(cacheCtx, msg.PortId, msg.ChannelId); err != nil {
		return nil, errorsmod.Wrapf(err, "channel close confirm callback failed for port ID: %s, channel ID: %s", msg.PortId, msg.ChannelId)
	}

	if err := k.ChannelKeeper.ChanCloseConfirm(cacheCtx, msg.PortId, msg.ChannelId, msg.ProofInit, msg.ProofHeight); err != nil {
		return nil, errorsmod.Wrap(err, "channel handshake close confirm failed")
	}

	if err := writeFn(); err != nil {
		return nil, err
	}

	k.Logger(ctx).Info("channel close confirm succeeded", "channel-id", msg.ChannelId, "port-id", msg.PortId)

	return &channeltypes.MsgChannelCloseConfirmResponse{}, nil
}

// RecvPacket defines a rpc handler method for MsgRecvPacket.
func (k *Keeper) RecvPacket(ctx host.Context, msg *channeltypes.MsgRecvPacket) (*channeltypes.MsgRecvPacketResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	cbs, err := k.routeToModule(ctx, msg.Packet.DestinationPort)
	if err != nil {
		return nil, err
	}

	// Perform TAO verification
	//
	// If the packet was already received, perform a no-op
	// Use a cached context to prevent accidental state changes
	cacheCtx, writeFn := ctx.CacheContext()
	err = k.ChannelKeeper.RecvPacket(cacheCtx, msg.Packet, msg.ProofCommitment, msg.ProofHeight)

	switch {
	case err == nil:
		if err := writeFn(); err != nil {
			return nil, err
		}
	case errors.Is(err, channeltypes.ErrNoOpMsg):
		// no-ops do not need event emission as they will be ignored
		return &channeltypes.MsgRecvPacketResponse{Result: channeltypes.NOOP}, nil
	default:
		return nil, errorsmod.Wrap(err, "receive packet verification failed")
	}

	// Perform application logic callback
	//
	// Cache context so that we may discard state changes from callback if the
	// acknowledgement is unsuccessful.
	cacheCtx, writeFn = ctx.CacheContext()
	ack := cbs.OnRecvPacket(cacheCtx, msg.Packet, msg.Signer)
	if ack == nil || ack.Success() {
		// write application state changes for asynchronous and successful acknowledgements
		if err := writeFn(); err != nil {
			return nil, err
		}
	}

	// Set packet acknowledgement only if the acknowledgement is not nil.
	// NOTE: IBC applications modules may call the WriteAcknowledgement
	// asynchronously if the acknowledgement is nil.
	if ack != nil {
		if err := k.ChannelKeeper.WriteAcknowledgement(ctx, msg.Packet, ack); err != nil {
			return nil, err
		}
	}

	defer telemetry.IncrCounterWithLabels(
		[]string{"tx", "msg", "ibc", channeltypes.EventTypeRecvPacket},
		1,
		[]metrics.Label{
			telemetry.NewLabel(coremetrics.LabelSourcePort, msg.Packet.SourcePort),
			telemetry.NewLabel(coremetrics.LabelSourceChannel, msg.Packet.SourceChannel),
			telemetry.NewLabel(coremetrics.LabelDestinationPort, msg.Packet.DestinationPort),
			telemetry.NewLabel(coremetrics.LabelDestinationChannel, msg.Packet.DestinationChannel),
		},
	)

	k.Logger(ctx).Info("receive packet callback succeeded", "port-id", msg.Packet.SourcePort, "channel-id", msg.Packet.SourceChannel, "result", channeltypes.SUCCESS.String())

	return &channeltypes.MsgRecvPacketResponse{Result: channeltypes.SUCCESS}, nil
}

// Acknowledgement defines a rpc handler method for MsgAcknowledgement.
func (k *Keeper) Acknowledgement(ctx host.Context, msg *channeltypes.MsgAcknowledgement) (*channeltypes.MsgAcknowledgementResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	cbs, err := k.routeToModule(ctx, msg.Packet.SourcePort)
	if err != nil {
		return nil, err
	}

	// Perform TAO verification
	//
	// If the acknowledgement was already received, perform a no-op
	// Use a cached context to prevent accidental state changes
	cacheCtx, writeFn := ctx.CacheContext()
	err = k.ChannelKeeper.AcknowledgePacket(cacheCtx, msg.Packet, msg.Acknowledgement, msg.ProofAcked, msg.ProofHeight)

	switch {
	case err == nil:
		if err := writeFn(); err != nil {
			return nil, err
		}
	case errors.Is(err, channeltypes.ErrNoOpMsg):
		// no-ops do not need event emission as they will be ignored
		return &channeltypes.MsgAcknowledgementResponse{Result: channeltypes.NOOP}, nil
	default:
		return nil, errorsmod.Wrap(err, "acknowledge packet verification failed")
	}

	// Perform application logic callback
	if err := cbs.OnAcknowledgementPacket(ctx, msg.Packet, msg.Acknowledgement, msg.Signer); err != nil {
		return nil, errorsmod.Wrap(err, "acknowledge packet callback failed")
	}

	defer telemetry.IncrCounterWithLabels(
		[]string{"tx", "msg", "ibc", channeltypes.EventTypeAcknowledgePacket},
		1,
		[]metrics.Label{
			telemetry.NewLabel(coremetrics.LabelSourcePort, msg.Packet.SourcePort),
			telemetry.NewLabel(coremetrics.LabelSourceChannel, msg.Packet.SourceChannel),
			telemetry.NewLabel(coremetrics.LabelDestinationPort, msg.Packet.DestinationPort),
			telemetry.NewLabel(coremetrics.LabelDestinationChannel, msg.Packet.DestinationChannel),
		},
	)

	k.Logger(ctx).Info("acknowledgement succeeded", "port-id", msg.Packet.SourcePort, "channel-id", msg.Packet.SourceChannel, "result", channeltypes.SUCCESS.String())

	return &channeltypes.MsgAcknowledgementResponse{Result: channeltypes.SUCCESS}, nil
}

// Timeout defines a rpc handler method for MsgTimeout.
func (k *Keeper) Timeout(ctx host.Context, msg *channeltypes.MsgTimeout) (*channeltypes.MsgTimeoutResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	cbs, err := k.routeToModule(ctx, msg.Packet.SourcePort)
	if err != nil {
		return nil, err
	}

	// Perform TAO verification
	//
	// If the timeout was already received, perform a no-op
	// Use a cached context to prevent accidental state changes
	cacheCtx, writeFn := ctx.CacheContext()
	err = k.ChannelKeeper.TimeoutPacket(cacheCtx, msg.Packet, msg.ProofUnreceived, msg.ProofHeight, msg.NextSequenceRecv)

	switch {
	case err == nil:
		if err := writeFn(); err != nil {
			return nil, err
		}
	case errors.Is(err, channeltypes.ErrNoOpMsg):
		// no-ops do not need event emission as they will be ignored
		return &channeltypes.MsgTimeoutResponse{Result: channeltypes.NOOP}, nil
	default:
		return nil, errorsmod.Wrap(err, "timeout packet verification failed")
	}

	// Perform application logic callback
	if err := cbs.OnTimeoutPacket(ctx, msg.Packet, msg.Signer); err != nil {
		return nil, errorsmod.Wrap(err, "timeout packet callback failed")
	}

	// Delete packet commitment
	if err = k.ChannelKeeper.TimeoutExecuted(ctx, msg.Packet); err != nil {
		return nil, err
	}

	defer telemetry.IncrCounterWithLabels(
		[]string{"ibc", "timeout", "packet"},
		1,
		[]metrics.Label{
			telemetry.NewLabel(coremetrics.LabelSourcePort, msg.Packet.SourcePort),
			telemetry.NewLabel(coremetrics.LabelSourceChannel, msg.Packet.SourceChannel),
			telemetry.NewLabel(coremetrics.LabelDestinationPort, msg.Packet.DestinationPort),
			telemetry.NewLabel(coremetrics.LabelDestinationChannel, msg.Packet.DestinationChannel),
			telemetry.NewLabel(coremetrics.LabelTimeoutType, "height"),
		},
	)

	k.Logger(ctx).Info("timeout packet succeeded", "port-id", msg.Packet.SourcePort, "channel-id", msg.Packet.SourceChannel, "result", channeltypes.SUCCESS.String())

	return &channeltypes.MsgTimeoutResponse{Result: channeltypes.SUCCESS}, nil
}

// TimeoutOnClose defines a rpc handler method for MsgTimeoutOnClose.
func (k *Keeper) TimeoutOnClose(ctx host.Context, msg *channeltypes.MsgTimeoutOnClose) (*channeltypes.MsgTimeoutOnCloseResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	cbs, err := k.routeToModule(ctx, msg.Packet.SourcePort)
	if err != nil {
		return nil, err
	}

	// Perform TAO verification
	//
	// If the timeout was already received, perform a no-op
	// Use a cached context to prevent accidental state changes
	cacheCtx, writeFn := ctx.CacheContext()
	err = k.ChannelKeeper.TimeoutOnClose(cacheCtx, msg.Packet, msg.ProofUnreceived, msg.ProofClose, msg.ProofHeight, msg.NextSequenceRecv)

	switch {
	case err == nil:
		if err := writeFn(); err != nil {
			return nil, err
		}
	case errors.Is(err, channeltypes.ErrNoOpMsg):
		// no-ops do not need event emission as they will be ignored
		return &channeltypes.MsgTimeoutOnCloseResponse{Result: channeltypes.NOOP}, nil
	default:
		return nil, errorsmod.Wrap(err, "timeout on close packet verification failed")
	}

	// Perform application logic callback
	//
	// NOTE: MsgTimeout and MsgTimeoutOnClose use the same "OnTimeoutPacket"
	// application callback.
	if err := cbs.OnTimeoutPacket(ctx, msg.Packet, msg.Signer); err != nil {
		return nil, errorsmod.Wrap(err, "timeout packet callback failed")
	}

	// Delete packet commitment
	if err = k.ChannelKeeper.TimeoutExecuted(ctx, msg.Packet); err != nil {
		return nil, err
	}

	defer telemetry.IncrCounterWithLabels(
		[]string{"ibc", "timeout", "packet"},
		1,
		[]metrics.Label{
			telemetry.NewLabel(coremetrics.LabelSourcePort, msg.Packet.SourcePort),
			telemetry.NewLabel(coremetrics.LabelSourceChannel, msg.Packet.SourceChannel),
			telemetry.NewLabel(coremetrics.LabelDestinationPort, msg.Packet.DestinationPort),
			telemetry.NewLabel(coremetrics.LabelDestinationChannel, msg.Packet.DestinationChannel),
			telemetry.NewLabel(coremetrics.LabelTimeoutType, "channel-closed"),
		},
	)

	k.Logger(ctx).Info("timeout on close packet succeeded", "port-id", msg.Packet.SourcePort, "channel-id", msg.Packet.SourceChannel, "result", channeltypes.SUCCESS.String())

	return &channeltypes.MsgTimeoutOnCloseResponse{Result: channeltypes.SUCCESS}, nil
}

// routeToModule resolves the IBC application bound to the port and returns
// its registered callbacks.
func (k *Keeper) routeToModule(ctx host.Context, portID string) (porttypes.IBCModule, error) {
	moduleName, found := k.PortKeeper.LookupModuleByPort(ctx, portID)
	if !found {
		return nil, errorsmod.Wrapf(porttypes.ErrPortNotFound, "port ID (%s) is not bound", portID)
	}

	cbs, found := k.PortKeeper.Router.GetRoute(moduleName)
	if !found {
		return nil, errorsmod.Wrapf(porttypes.ErrInvalidRoute, "route not found to module: %s", moduleName)
	}

	return cbs, nil
}
