package types

import (
	clienttypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/02-client/types"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/exported"
)

// QueryConnectionRequest is the request type for the Query/Connection
// endpoint. Marshalling and transport of query messages is left to the host.
type QueryConnectionRequest struct {
	// connection unique identifier
	ConnectionId string
}

// QueryConnectionResponse is the response type for the Query/Connection
// endpoint. Besides the connection end, it includes a proof and the height
// from which the proof was retrieved.
type QueryConnectionResponse struct {
	Connection  *ConnectionEnd
	Proof       []byte
	ProofHeight clienttypes.Height
}

// QueryConnectionsRequest is the request type for the Query/Connections
// endpoint.
type QueryConnectionsRequest struct{}

// QueryConnectionsResponse is the response type for the Query/Connections
// endpoint.
type QueryConnectionsResponse struct {
	Connections []IdentifiedConnection
	// query block height
	Height clienttypes.Height
}

// QueryClientConnectionsRequest is the request type for the
// Query/ClientConnections endpoint.
type QueryClientConnectionsRequest struct {
	// client identifier associated with a connection
	ClientId string
}

// QueryClientConnectionsResponse is the response type for the
// Query/ClientConnections endpoint.
type QueryClientConnectionsResponse struct {
	// slice of all the connection paths associated with a client
	ConnectionPaths []string
	Proof           []byte
	ProofHeight     clienttypes.Height
}

// QueryConnectionClientStateRequest is the request type for the
// Query/ConnectionClientState endpoint.
type QueryConnectionClientStateRequest struct {
	ConnectionId string
}

// QueryConnectionClientStateResponse is the response type for the
// Query/ConnectionClientState endpoint.
type QueryConnectionClientStateResponse struct {
	IdentifiedClientState *clienttypes.IdentifiedClientState
	Proof                 []byte
	ProofHeight           clienttypes.Height
}

// QueryConnectionConsensusStateRequest is the request type for the
// Query/ConnectionConsensusState endpoint.
type QueryConnectionConsensusStateRequest struct {
	ConnectionId   string
	RevisionNumber uint64
	RevisionHeight uint64
}

// QueryConnectionConsensusStateResponse is the response type for the
// Query/ConnectionConsensusState endpoint.
type QueryConnectionConsensusStateResponse struct {
	ConsensusState exported.ConsensusState
	ClientId       string
	Proof          []byte
	ProofHeight    clienttypes.Height
}

// QueryConnectionParamsRequest is the request type for the
// Query/ConnectionParams endpoint.
type QueryConnectionParamsRequest struct{}

// QueryConnectionParamsResponse is the response type for the
// Query/ConnectionParams endpoint.
type QueryConnectionParamsResponse struct {
	Params *Params
}
