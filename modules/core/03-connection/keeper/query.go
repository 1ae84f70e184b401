package keeper

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/Salpiglossis/cosmos-ibc-rs/host"
	clienttypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/02-client/types"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/03-connection/types"
	ibchost "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/24-host"
	ibcerrors "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/errors"
)

// Connection implements the Query/Connection endpoint
func (k Keeper) Connection(ctx host.Context, req *types.QueryConnectionRequest) (*types.QueryConnectionResponse, error) {
	if req == nil {
		return nil, errorsmod.Wrap(ibcerrors.ErrInvalidRequest, "empty request")
	}

	if err := ibchost.ConnectionIdentifierValidator(req.ConnectionId); err != nil {
		return nil, err
	}

	connection, found := k.GetConnection(ctx, req.ConnectionId)
	if !found {
		return nil, errorsmod.Wrap(types.ErrConnectionNotFound, req.ConnectionId)
	}

	proof, proofHeight := k.queryProof(ctx, ibchost.ConnectionPath(req.ConnectionId))

	return &types.QueryConnectionResponse{
		Connection:  &connection,
		Proof:       proof,
		ProofHeight: proofHeight,
	}, nil
}

// Connections implements the Query/Connections endpoint
func (k Keeper) Connections(ctx host.Context, req *types.QueryConnectionsRequest) (*types.QueryConnectionsResponse, error) {
	if req == nil {
		return nil, errorsmod.Wrap(ibcerrors.ErrInvalidRequest, "empty request")
	}

	return &types.QueryConnectionsResponse{
		Connections: k.GetAllConnections(ctx),
		Height:      k.clientKeeper.GetSelfHeight(ctx),
	}, nil
}

// ClientConnections implements the Query/ClientConnections endpoint
func (k Keeper) ClientConnections(ctx host.Context, req *types.QueryClientConnectionsRequest) (*types.QueryClientConnectionsResponse, error) {
	if req == nil {
		return nil, errorsmod.Wrap(ibcerrors.ErrInvalidRequest, "empty request")
	}

	if err := ibchost.ClientIdentifierValidator(req.ClientId); err != nil {
		return nil, err
	}

	clientConnectionPaths, found := k.GetClientConnectionPaths(ctx, req.ClientId)
	if !found {
		return nil, errorsmod.Wrap(types.ErrClientConnectionPathsNotFound, req.ClientId)
	}

	proof, proofHeight := k.queryProof(ctx, ibchost.ClientConnectionsPath(req.ClientId))

	return &types.QueryClientConnectionsResponse{
		ConnectionPaths: clientConnectionPaths,
		Proof:           proof,
		ProofHeight:     proofHeight,
	}, nil
}

// ConnectionClientState implements the Query/ConnectionClientState endpoint
func (k Keeper) ConnectionClientState(ctx host.Context, req *types.QueryConnectionClientStateRequest) (*types.QueryConnectionClientStateResponse, error) {
	if req == nil {
		return nil, errorsmod.Wrap(ibcerrors.ErrInvalidRequest, "empty request")
	}

	if err := ibchost.ConnectionIdentifierValidator(req.ConnectionId); err != nil {
		return nil, err
	}

	connection, found := k.GetConnection(ctx, req.ConnectionId)
	if !found {
		return nil, errorsmod.Wrapf(types.ErrConnectionNotFound, "connection-id: %s", req.ConnectionId)
	}

	clientState, found := k.clientKeeper.GetClientState(ctx, connection.ClientId)
	if !found {
		return nil, errorsmod.Wrapf(clienttypes.ErrClientNotFound, "client-id: %s", connection.ClientId)
	}

	identifiedClientState := clienttypes.NewIdentifiedClientState(connection.ClientId, clientState)

	proof, proofHeight := k.queryProof(ctx, ibchost.FullClientStatePath(connection.ClientId))

	return &types.QueryConnectionClientStateResponse{
		IdentifiedClientState: &identifiedClientState,
		Proof:                 proof,
		ProofHeight:           proofHeight,
	}, nil
}

// ConnectionConsensusState implements the Query/ConnectionConsensusState endpoint
func (k Keeper) ConnectionConsensusState(ctx host.Context, req *types.QueryConnectionConsensusStateRequest) (*types.QueryConnectionConsensusStateResponse, error) {
	if req == nil {
		return nil, errorsmod.Wrap(ibcerrors.ErrInvalidRequest, "empty request")
	}

	if err := ibchost.ConnectionIdentifierValidator(req.ConnectionId); err != nil {
		return nil, err
	}

	connection, found := k.GetConnection(ctx, req.ConnectionId)
	if !found {
		return nil, errorsmod.Wrapf(types.ErrConnectionNotFound, "connection-id: %s", req.ConnectionId)
	}

	height := clienttypes.NewHeight(req.RevisionNumber, req.RevisionHeight)
	consensusState, found := k.clientKeeper.GetClientConsensusState(ctx, connection.ClientId, height)
	if !found {
		return nil, errorsmod.Wrapf(clienttypes.ErrConsensusStateNotFound, "client-id: %s", connection.ClientId)
	}

	proof, proofHeight := k.queryProof(ctx, ibchost.FullConsensusStatePath(connection.ClientId, height))

	return &types.QueryConnectionConsensusStateResponse{
		ConsensusState: consensusState,
		ClientId:       connection.ClientId,
		Proof:          proof,
		ProofHeight:    proofHeight,
	}, nil
}

// ConnectionParams implements the Query/ConnectionParams endpoint.
func (k Keeper) ConnectionParams(ctx host.Context, req *types.QueryConnectionParamsRequest) (*types.QueryConnectionParamsResponse, error) {
	if req == nil {
		return nil, errorsmod.Wrap(ibcerrors.ErrInvalidRequest, "empty request")
	}
	params := k.GetParams(ctx)

	return &types.QueryConnectionParamsResponse{
		Params: &params,
	}, nil
}

// queryProof retrieves a membership proof for the given store path at the
// host's current height. Hosts without a proof provider yield no proof; the
// record itself is still returned.
func (k Keeper) queryProof(ctx host.Context, path string) ([]byte, clienttypes.Height) {
	pp := ctx.ProofProvider()
	if pp == nil {
		return nil, k.clientKeeper.GetSelfHeight(ctx)
	}

	proof, err := pp.GetProof(ctx.BlockHeight(), path)
	if err != nil {
		return nil, k.clientKeeper.GetSelfHeight(ctx)
	}

	return proof, k.clientKeeper.GetSelfHeight(ctx)
}
