package ibc_test

import (
	"testing"

	"cosmossdk.io/log"
	"github.com/stretchr/testify/suite"
	dbm "github.com/tendermint/tm-db"

	"github.com/Salpiglossis/cosmos-ibc-rs/host"
	ibc "github.com/Salpiglossis/cosmos-ibc-rs/modules/core"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/codec"
	ibckeeper "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/keeper"
	tendermint "github.com/Salpiglossis/cosmos-ibc-rs/modules/light-clients/07-tendermint"
	ibctesting "github.com/Salpiglossis/cosmos-ibc-rs/testing"
	"github.com/Salpiglossis/cosmos-ibc-rs/testing/mock"
)

type GenesisTestSuite struct {
	suite.Suite

	coordinator *ibctesting.Coordinator

	chainA *ibctesting.TestChain
	chainB *ibctesting.TestChain
}

func (suite *GenesisTestSuite) SetupTest() {
	suite.coordinator = ibctesting.NewCoordinator(suite.T(), 2)
	suite.chainA = suite.coordinator.GetChain(ibctesting.GetChainID(1))
	suite.chainB = suite.coordinator.GetChain(ibctesting.GetChainID(2))
}

func TestGenesisTestSuite(t *testing.T) {
	suite.Run(t, new(GenesisTestSuite))
}

// populateState opens a connection and channel and leaves a packet
// commitment, a receipt and an acknowledgement in chainA's store.
func (suite *GenesisTestSuite) populateState() *ibctesting.Path {
	path := ibctesting.NewPath(suite.chainA, suite.chainB)
	suite.coordinator.Setup(path)

	// an unrelayed packet leaves a commitment on chainA
	_, err := path.EndpointA.SendPacket(ibctesting.DefaultTimeoutHeight, 0, mock.MockPacketData)
	suite.Require().NoError(err)

	// receiving a packet from chainB leaves a receipt and an acknowledgement
	packet, err := path.EndpointB.SendPacket(ibctesting.DefaultTimeoutHeight, 0, mock.MockPacketData)
	suite.Require().NoError(err)
	suite.Require().NoError(path.EndpointA.RecvPacket(packet))

	return path
}

func (suite *GenesisTestSuite) TestExportGenesis() {
	path := suite.populateState()

	gs := ibc.ExportGenesis(suite.chainA.GetContext(), suite.chainA.App)
	suite.Require().NoError(gs.Validate())

	suite.Require().Len(gs.ClientGenesis.Clients, 1)
	suite.Require().Equal(path.EndpointA.ClientID, gs.ClientGenesis.Clients[0].ClientId)
	suite.Require().NotEmpty(gs.ClientGenesis.ClientsConsensus)

	suite.Require().Len(gs.ConnectionGenesis.Connections, 1)
	suite.Require().Equal(path.EndpointA.ConnectionID, gs.ConnectionGenesis.Connections[0].Id)

	suite.Require().Len(gs.ChannelGenesis.Channels, 1)
	suite.Require().Len(gs.ChannelGenesis.Commitments, 1)
	suite.Require().Len(gs.ChannelGenesis.Receipts, 1)
	suite.Require().Len(gs.ChannelGenesis.Acknowledgements, 1)
	suite.Require().Len(gs.ChannelGenesis.SendSequences, 1)
	suite.Require().Len(gs.ChannelGenesis.RecvSequences, 1)
	suite.Require().Len(gs.ChannelGenesis.AckSequences, 1)
}

func (suite *GenesisTestSuite) TestInitGenesisRoundTrip() {
	path := suite.populateState()

	gs := ibc.ExportGenesis(suite.chainA.GetContext(), suite.chainA.App)
	suite.Require().NoError(gs.Validate())

	// import the exported state into a fresh store
	cdc := codec.NewCodec()
	tendermint.RegisterInterfaces(cdc)
	mock.RegisterInterfaces(cdc)

	k := ibckeeper.NewKeeper(cdc)
	ctx := host.NewContext(
		host.NewStore(dbm.NewMemDB()), suite.chainA.ChainID,
		suite.chainA.CurrentHeight, suite.chainA.CurrentTime, log.NewNopLogger(),
	)

	ibc.InitGenesis(ctx, k, gs)

	// the imported chain resumes with the same identifiers and state
	_, found := k.ClientKeeper.GetClientState(ctx, path.EndpointA.ClientID)
	suite.Require().True(found)

	connection, found := k.ConnectionKeeper.GetConnection(ctx, path.EndpointA.ConnectionID)
	suite.Require().True(found)
	suite.Require().Equal(path.EndpointA.ClientID, connection.ClientId)

	channel, found := k.ChannelKeeper.GetChannel(ctx, path.EndpointA.PortID, path.EndpointA.ChannelID)
	suite.Require().True(found)
	suite.Require().Equal(path.EndpointB.ChannelID, channel.Counterparty.ChannelId)

	suite.Require().NotNil(k.ChannelKeeper.GetPacketCommitment(ctx, path.EndpointA.PortID, path.EndpointA.ChannelID, 1))

	// exporting the imported state reproduces the original genesis
	suite.Require().Equal(gs, ibc.ExportGenesis(ctx, k))
}
