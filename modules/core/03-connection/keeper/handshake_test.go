package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/03-connection/types"
	commitmenttypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/23-commitment/types"
	ibctesting "github.com/Salpiglossis/cosmos-ibc-rs/testing"
)

type KeeperTestSuite struct {
	suite.Suite

	coordinator *ibctesting.Coordinator

	chainA *ibctesting.TestChain
	chainB *ibctesting.TestChain
}

func (suite *KeeperTestSuite) SetupTest() {
	suite.coordinator = ibctesting.NewCoordinator(suite.T(), 2)
	suite.chainA = suite.coordinator.GetChain(ibctesting.GetChainID(1))
	suite.chainB = suite.coordinator.GetChain(ibctesting.GetChainID(2))
}

func TestKeeperTestSuite(t *testing.T) {
	suite.Run(t, new(KeeperTestSuite))
}

func (suite *KeeperTestSuite) TestConnOpenInit() {
	path := ibctesting.NewPath(suite.chainA, suite.chainB)
	suite.coordinator.SetupClients(path)

	err := path.EndpointA.ConnOpenInit()
	suite.Require().NoError(err)
	suite.Require().Equal(ibctesting.FirstConnectionID, path.EndpointA.ConnectionID)

	connection := path.EndpointA.GetConnection()
	suite.Require().Equal(types.INIT, connection.State)
	suite.Require().Equal(path.EndpointA.ClientID, connection.ClientId)
	suite.Require().Equal(path.EndpointB.ClientID, connection.Counterparty.ClientId)
	suite.Require().Equal("", connection.Counterparty.ConnectionId)
	suite.Require().Equal(ibctesting.DefaultDelayPeriod, connection.DelayPeriod)
}

func (suite *KeeperTestSuite) TestHandshake() {
	path := ibctesting.NewPath(suite.chainA, suite.chainB)
	suite.coordinator.SetupClients(path)
	suite.coordinator.CreateConnections(path)

	connectionA := path.EndpointA.GetConnection()
	connectionB := path.EndpointB.GetConnection()

	suite.Require().Equal(types.OPEN, connectionA.State)
	suite.Require().Equal(types.OPEN, connectionB.State)

	suite.Require().Equal(path.EndpointB.ConnectionID, connectionA.Counterparty.ConnectionId)
	suite.Require().Equal(path.EndpointA.ConnectionID, connectionB.Counterparty.ConnectionId)
	suite.Require().Equal(path.EndpointB.ClientID, connectionA.Counterparty.ClientId)
	suite.Require().Equal(path.EndpointA.ClientID, connectionB.Counterparty.ClientId)

	// exactly the negotiated version remains after the handshake
	suite.Require().Equal([]*types.Version{ibctesting.ConnectionVersion}, connectionA.Versions)
	suite.Require().Equal([]*types.Version{ibctesting.ConnectionVersion}, connectionB.Versions)
}

func (suite *KeeperTestSuite) TestConnOpenTryInvalidProof() {
	path := ibctesting.NewPath(suite.chainA, suite.chainB)
	suite.coordinator.SetupClients(path)

	err := path.EndpointA.ConnOpenInit()
	suite.Require().NoError(err)

	err = path.EndpointB.UpdateClient()
	suite.Require().NoError(err)

	counterpartyClient := path.EndpointA.GetClientState()

	msg := types.NewMsgConnectionOpenTry(
		path.EndpointB.ClientID, path.EndpointA.ConnectionID, path.EndpointA.ClientID,
		counterpartyClient, ibctesting.DefaultPrefix,
		[]*types.Version{ibctesting.ConnectionVersion}, ibctesting.DefaultDelayPeriod,
		[]byte("invalid proof"), []byte("invalid proof"), suite.chainA.LatestHeight(),
		suite.chainB.SenderAccount,
	)

	_, err = suite.chainB.App.ConnectionOpenTry(suite.chainB.GetContext(), msg)
	suite.Require().ErrorIs(err, commitmenttypes.ErrInvalidProof)
}

func (suite *KeeperTestSuite) TestConnOpenAckBeforeTry() {
	path := ibctesting.NewPath(suite.chainA, suite.chainB)
	suite.coordinator.SetupClients(path)

	err := path.EndpointA.ConnOpenInit()
	suite.Require().NoError(err)

	// the counterparty never ran TRY, so its connection end cannot be proven
	err = path.EndpointA.ConnOpenAck()
	suite.Require().Error(err)

	suite.Require().Equal(types.INIT, path.EndpointA.GetConnection().State)
}

func (suite *KeeperTestSuite) TestConnOpenConfirmBeforeAck() {
	path := ibctesting.NewPath(suite.chainA, suite.chainB)
	suite.coordinator.SetupClients(path)

	err := path.EndpointA.ConnOpenInit()
	suite.Require().NoError(err)

	err = path.EndpointB.ConnOpenTry()
	suite.Require().NoError(err)

	// the initiating end is still INIT, not OPEN
	err = path.EndpointB.ConnOpenConfirm()
	suite.Require().Error(err)

	suite.Require().Equal(types.TRYOPEN, path.EndpointB.GetConnection().State)
}

func (suite *KeeperTestSuite) TestConnOpenInitEvents() {
	path := ibctesting.NewPath(suite.chainA, suite.chainB)
	suite.coordinator.SetupClients(path)

	err := path.EndpointA.ConnOpenInit()
	suite.Require().NoError(err)

	connectionID, err := ibctesting.ParseConnectionIDFromEvents(suite.chainA.LastEvents)
	suite.Require().NoError(err)
	suite.Require().Equal(path.EndpointA.ConnectionID, connectionID)
}
