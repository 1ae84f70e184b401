package ibctesting

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Coordinator creates and keeps track of the test chains of a single test.
type Coordinator struct {
	t *testing.T

	Chains map[string]*TestChain
}

// NewCoordinator initializes a Coordinator with n test chains.
func NewCoordinator(t *testing.T, n int) *Coordinator {
	t.Helper()

	chains := make(map[string]*TestChain, n)
	coord := &Coordinator{
		t:      t,
		Chains: chains,
	}

	for i := 1; i <= n; i++ {
		chainID := GetChainID(i)
		chains[chainID] = NewTestChain(t, coord, chainID)
	}

	return coord
}

// GetChain returns the chain with the given chain ID, failing the test if
// it does not exist.
func (coord *Coordinator) GetChain(chainID string) *TestChain {
	chain, found := coord.Chains[chainID]
	require.True(coord.t, found, "%s chain does not exist", chainID)
	return chain
}

// CommitBlock commits an empty block on every provided chain.
func (*Coordinator) CommitBlock(chains ...*TestChain) {
	for _, chain := range chains {
		chain.NextBlock()
	}
}

// CommitNBlocks commits n empty blocks on the provided chain.
func (*Coordinator) CommitNBlocks(chain *TestChain, n uint64) {
	for i := uint64(0); i < n; i++ {
		chain.NextBlock()
	}
}

// SetupClients creates a mock client on each endpoint of the path.
func (coord *Coordinator) SetupClients(path *Path) {
	err := path.EndpointA.CreateClient()
	require.NoError(coord.t, err)

	err = path.EndpointB.CreateClient()
	require.NoError(coord.t, err)
}

// SetupConnections creates the clients and an open connection between the
// two endpoints of the path.
func (coord *Coordinator) SetupConnections(path *Path) {
	coord.SetupClients(path)
	coord.CreateConnections(path)
}

// CreateConnections runs the connection handshake to completion. The
// clients must already exist.
func (coord *Coordinator) CreateConnections(path *Path) {
	err := path.EndpointA.ConnOpenInit()
	require.NoError(coord.t, err)

	err = path.EndpointB.ConnOpenTry()
	require.NoError(coord.t, err)

	err = path.EndpointA.ConnOpenAck()
	require.NoError(coord.t, err)

	err = path.EndpointB.ConnOpenConfirm()
	require.NoError(coord.t, err)

	// ensure the client on A is up to date with the confirmed state of B
	err = path.EndpointA.UpdateClient()
	require.NoError(coord.t, err)
}

// CreateChannels runs the channel handshake to completion. The connection
// must already be open.
func (coord *Coordinator) CreateChannels(path *Path) {
	err := path.EndpointA.ChanOpenInit()
	require.NoError(coord.t, err)

	err = path.EndpointB.ChanOpenTry()
	require.NoError(coord.t, err)

	err = path.EndpointA.ChanOpenAck()
	require.NoError(coord.t, err)

	err = path.EndpointB.ChanOpenConfirm()
	require.NoError(coord.t, err)

	err = path.EndpointA.UpdateClient()
	require.NoError(coord.t, err)
}

// Setup creates the clients, an open connection and an OPEN channel on the
// provided path.
func (coord *Coordinator) Setup(path *Path) {
	coord.SetupConnections(path)
	coord.CreateChannels(path)
}
