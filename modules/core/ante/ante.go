package ante

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/Salpiglossis/cosmos-ibc-rs/host"
	clienttypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/02-client/types"
	channeltypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/04-channel/types"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/exported"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/keeper"
)

// RedundantRelayDecorator rejects relay batches in which every packet
// message is a no-op, so relayers do not waste fees resubmitting work
// another relayer already performed.
type RedundantRelayDecorator struct {
	k *keeper.Keeper
}

// NewRedundantRelayDecorator constructs a RedundantRelayDecorator backed by
// the core keeper.
func NewRedundantRelayDecorator(k *keeper.Keeper) RedundantRelayDecorator {
	return RedundantRelayDecorator{k: k}
}

// CheckMessages dry-runs a relay batch against a throwaway branch of state
// and returns ErrRedundantTx when the batch contains at least one packet
// message (Recv, Ack, Timeout) and all of them are no-ops. Client updates
// are executed on the branch so that proofs in subsequent messages verify
// against the updated client. A batch containing any other message type is
// accepted without further inspection so non-relay messages are never
// rejected for being batched with redundant ones.
func (rrd RedundantRelayDecorator) CheckMessages(ctx host.Context, msgs []interface{}) error {
	// the branch is never written back; the check must not mutate state
	cacheCtx, _ := ctx.CacheContext()

	redundancies := 0
	packetMsgs := 0
	for _, m := range msgs {
		switch msg := m.(type) {
		case *channeltypes.MsgRecvPacket:
			response, err := rrd.k.RecvPacket(cacheCtx, msg)
			if err != nil {
				return err
			}
			if response.Result == channeltypes.NOOP {
				redundancies++
			}
			packetMsgs++

		case *channeltypes.MsgAcknowledgement:
			response, err := rrd.k.Acknowledgement(cacheCtx, msg)
			if err != nil {
				return err
			}
			if response.Result == channeltypes.NOOP {
				redundancies++
			}
			packetMsgs++

		case *channeltypes.MsgTimeout:
			response, err := rrd.k.Timeout(cacheCtx, msg)
			if err != nil {
				return err
			}
			if response.Result == channeltypes.NOOP {
				redundancies++
			}
			packetMsgs++

		case *channeltypes.MsgTimeoutOnClose:
			response, err := rrd.k.TimeoutOnClose(cacheCtx, msg)
			if err != nil {
				return err
			}
			if response.Result == channeltypes.NOOP {
				redundancies++
			}
			packetMsgs++

		case *clienttypes.MsgUpdateClient:
			if err := rrd.updateClient(cacheCtx, msg); err != nil {
				return err
			}

		default:
			return nil
		}
	}

	if redundancies == packetMsgs && packetMsgs > 0 {
		return channeltypes.ErrRedundantTx
	}
	return nil
}

// updateClient runs the client update on the branch so packet proofs at
// heights the update introduces verify during the redundancy check.
func (rrd RedundantRelayDecorator) updateClient(ctx host.Context, msg *clienttypes.MsgUpdateClient) error {
	if status := rrd.k.ClientKeeper.GetClientStatus(ctx, msg.ClientId); status != exported.Active {
		return errorsmod.Wrapf(clienttypes.ErrClientNotActive, "cannot update client (%s) with status %s", msg.ClientId, status)
	}

	if _, err := rrd.k.UpdateClient(ctx, msg); err != nil {
		return err
	}

	return nil
}
