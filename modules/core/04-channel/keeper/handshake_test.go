package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/04-channel/types"
	commitmenttypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/23-commitment/types"
	ibctesting "github.com/Salpiglossis/cosmos-ibc-rs/testing"
	"github.com/Salpiglossis/cosmos-ibc-rs/testing/mock"
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

func (suite *KeeperTestSuite) TestChanOpenInit() {
	path := ibctesting.NewPath(suite.chainA, suite.chainB)
	suite.coordinator.SetupConnections(path)

	err := path.EndpointA.ChanOpenInit()
	suite.Require().NoError(err)
	suite.Require().Equal(ibctesting.FirstChannelID, path.EndpointA.ChannelID)

	channel := path.EndpointA.GetChannel()
	suite.Require().Equal(types.INIT, channel.State)
	suite.Require().Equal(types.UNORDERED, channel.Ordering)
	suite.Require().Equal(mock.Version, channel.Version)
	suite.Require().Equal([]string{path.EndpointA.ConnectionID}, channel.ConnectionHops)
	suite.Require().Equal(path.EndpointB.PortID, channel.Counterparty.PortId)
	suite.Require().Equal("", channel.Counterparty.ChannelId)

	ctx := suite.chainA.GetContext()
	seqSend, found := suite.chainA.App.ChannelKeeper.GetNextSequenceSend(ctx, path.EndpointA.PortID, path.EndpointA.ChannelID)
	suite.Require().True(found)
	suite.Require().Equal(uint64(1), seqSend)

	seqRecv, found := suite.chainA.App.ChannelKeeper.GetNextSequenceRecv(ctx, path.EndpointA.PortID, path.EndpointA.ChannelID)
	suite.Require().True(found)
	suite.Require().Equal(uint64(1), seqRecv)

	seqAck, found := suite.chainA.App.ChannelKeeper.GetNextSequenceAck(ctx, path.EndpointA.PortID, path.EndpointA.ChannelID)
	suite.Require().True(found)
	suite.Require().Equal(uint64(1), seqAck)
}

func (suite *KeeperTestSuite) TestChanOpenInitWithoutConnection() {
	path := ibctesting.NewPath(suite.chainA, suite.chainB)
	suite.coordinator.SetupClients(path)

	err := path.EndpointA.ChanOpenInit()
	suite.Require().Error(err)
}

func (suite *KeeperTestSuite) TestHandshake() {
	path := ibctesting.NewPath(suite.chainA, suite.chainB)
	suite.coordinator.Setup(path)

	channelA := path.EndpointA.GetChannel()
	channelB := path.EndpointB.GetChannel()

	suite.Require().Equal(types.OPEN, channelA.State)
	suite.Require().Equal(types.OPEN, channelB.State)

	suite.Require().Equal(path.EndpointB.ChannelID, channelA.Counterparty.ChannelId)
	suite.Require().Equal(path.EndpointA.ChannelID, channelB.Counterparty.ChannelId)
	suite.Require().Equal(mock.Version, channelA.Version)
	suite.Require().Equal(mock.Version, channelB.Version)
}

func (suite *KeeperTestSuite) TestHandshakeOrdered() {
	path := ibctesting.NewPath(suite.chainA, suite.chainB)
	path.SetChannelOrdered()
	suite.coordinator.Setup(path)

	suite.Require().Equal(types.ORDERED, path.EndpointA.GetChannel().Ordering)
	suite.Require().Equal(types.ORDERED, path.EndpointB.GetChannel().Ordering)
}

func (suite *KeeperTestSuite) TestChanOpenTryInvalidProof() {
	path := ibctesting.NewPath(suite.chainA, suite.chainB)
	suite.coordinator.SetupConnections(path)

	err := path.EndpointA.ChanOpenInit()
	suite.Require().NoError(err)

	err = path.EndpointB.UpdateClient()
	suite.Require().NoError(err)

	msg := types.NewMsgChannelOpenTry(
		path.EndpointB.PortID, "", path.EndpointB.Order, []string{path.EndpointB.ConnectionID},
		path.EndpointA.PortID, path.EndpointA.ChannelID, path.EndpointA.Version,
		[]byte("invalid proof"), suite.chainA.LatestHeight(),
		suite.chainB.SenderAccount,
	)

	_, err = suite.chainB.App.ChannelOpenTry(suite.chainB.GetContext(), msg)
	suite.Require().ErrorIs(err, commitmenttypes.ErrInvalidProof)
}

func (suite *KeeperTestSuite) TestChanOpenAckBeforeTry() {
	path := ibctesting.NewPath(suite.chainA, suite.chainB)
	suite.coordinator.SetupConnections(path)

	err := path.EndpointA.ChanOpenInit()
	suite.Require().NoError(err)

	err = path.EndpointA.ChanOpenAck()
	suite.Require().Error(err)

	suite.Require().Equal(types.INIT, path.EndpointA.GetChannel().State)
}

func (suite *KeeperTestSuite) TestChanClose() {
	path := ibctesting.NewPath(suite.chainA, suite.chainB)
	suite.coordinator.Setup(path)

	err := path.EndpointA.ChanCloseInit()
	suite.Require().NoError(err)
	suite.Require().Equal(types.CLOSED, path.EndpointA.GetChannel().State)

	err = path.EndpointB.ChanCloseConfirm()
	suite.Require().NoError(err)
	suite.Require().Equal(types.CLOSED, path.EndpointB.GetChannel().State)

	// closed is terminal
	err = path.EndpointA.ChanCloseInit()
	suite.Require().Error(err)
}

func (suite *KeeperTestSuite) TestChanCloseConfirmCounterpartyOpen() {
	path := ibctesting.NewPath(suite.chainA, suite.chainB)
	suite.coordinator.Setup(path)

	// the counterparty end is still OPEN, its CLOSED state cannot be proven
	err := path.EndpointB.ChanCloseConfirm()
	suite.Require().Error(err)

	suite.Require().Equal(types.OPEN, path.EndpointB.GetChannel().State)
}
