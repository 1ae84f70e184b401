package ante_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	clienttypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/02-client/types"
	channeltypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/04-channel/types"
	ibchost "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/24-host"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/ante"
	ibctesting "github.com/Salpiglossis/cosmos-ibc-rs/testing"
	"github.com/Salpiglossis/cosmos-ibc-rs/testing/mock"
)

type AnteTestSuite struct {
	suite.Suite

	coordinator *ibctesting.Coordinator

	chainA *ibctesting.TestChain
	chainB *ibctesting.TestChain

	path *ibctesting.Path
}

func (suite *AnteTestSuite) SetupTest() {
	suite.coordinator = ibctesting.NewCoordinator(suite.T(), 2)
	suite.chainA = suite.coordinator.GetChain(ibctesting.GetChainID(1))
	suite.chainB = suite.coordinator.GetChain(ibctesting.GetChainID(2))

	suite.path = ibctesting.NewPath(suite.chainA, suite.chainB)
	suite.coordinator.Setup(suite.path)
}

func TestAnteTestSuite(t *testing.T) {
	suite.Run(t, new(AnteTestSuite))
}

// newUpdateClientMessage builds a client update for chainB's view of chainA.
func (suite *AnteTestSuite) newUpdateClientMessage() *clienttypes.MsgUpdateClient {
	header := mock.NewHeader(suite.chainA.LatestHeight(), uint64(suite.chainA.CurrentTime.UnixNano()))
	return clienttypes.NewMsgUpdateClient(suite.path.EndpointB.ClientID, header, suite.chainB.SenderAccount)
}

// newRecvMessage builds a receive message for chainB with a fresh commitment
// proof queried from chainA.
func (suite *AnteTestSuite) newRecvMessage(packet channeltypes.Packet) *channeltypes.MsgRecvPacket {
	proof, proofHeight := suite.chainA.QueryProof(
		ibchost.PacketCommitmentPath(packet.SourcePort, packet.SourceChannel, packet.Sequence),
	)
	return channeltypes.NewMsgRecvPacket(packet, proof, proofHeight, suite.chainB.SenderAccount)
}

func (suite *AnteTestSuite) TestRedundantRecvBatchRejected() {
	packet, err := suite.path.EndpointA.SendPacket(ibctesting.DefaultTimeoutHeight, 0, mock.MockPacketData)
	suite.Require().NoError(err)

	// another relayer already delivered the packet
	suite.Require().NoError(suite.path.EndpointB.RecvPacket(packet))

	decorator := ante.NewRedundantRelayDecorator(suite.chainB.App)
	err = decorator.CheckMessages(suite.chainB.GetContext(), []interface{}{
		suite.newUpdateClientMessage(),
		suite.newRecvMessage(packet),
	})
	suite.Require().ErrorIs(err, channeltypes.ErrRedundantTx)
}

func (suite *AnteTestSuite) TestUnrelayedRecvBatchAccepted() {
	packet, err := suite.path.EndpointA.SendPacket(ibctesting.DefaultTimeoutHeight, 0, mock.MockPacketData)
	suite.Require().NoError(err)

	decorator := ante.NewRedundantRelayDecorator(suite.chainB.App)
	err = decorator.CheckMessages(suite.chainB.GetContext(), []interface{}{
		suite.newUpdateClientMessage(),
		suite.newRecvMessage(packet),
	})
	suite.Require().NoError(err)

	// the dry run must not leave a receipt behind
	_, found := suite.chainB.App.ChannelKeeper.GetPacketReceipt(
		suite.chainB.GetContext(), packet.DestinationPort, packet.DestinationChannel, packet.Sequence,
	)
	suite.Require().False(found)
}

func (suite *AnteTestSuite) TestMixedBatchAccepted() {
	relayed, err := suite.path.EndpointA.SendPacket(ibctesting.DefaultTimeoutHeight, 0, mock.MockPacketData)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.path.EndpointB.RecvPacket(relayed))

	unrelayed, err := suite.path.EndpointA.SendPacket(ibctesting.DefaultTimeoutHeight, 0, mock.MockPacketData)
	suite.Require().NoError(err)

	// one live packet message keeps the whole batch relevant
	decorator := ante.NewRedundantRelayDecorator(suite.chainB.App)
	err = decorator.CheckMessages(suite.chainB.GetContext(), []interface{}{
		suite.newUpdateClientMessage(),
		suite.newRecvMessage(relayed),
		suite.newRecvMessage(unrelayed),
	})
	suite.Require().NoError(err)
}

func (suite *AnteTestSuite) TestUpdateClientOnlyBatchAccepted() {
	decorator := ante.NewRedundantRelayDecorator(suite.chainB.App)
	err := decorator.CheckMessages(suite.chainB.GetContext(), []interface{}{
		suite.newUpdateClientMessage(),
	})
	suite.Require().NoError(err)
}

func (suite *AnteTestSuite) TestNonRelayMessageShortCircuits() {
	packet, err := suite.path.EndpointA.SendPacket(ibctesting.DefaultTimeoutHeight, 0, mock.MockPacketData)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.path.EndpointB.RecvPacket(packet))

	// a redundant packet message batched with a non-relay message is accepted
	decorator := ante.NewRedundantRelayDecorator(suite.chainB.App)
	err = decorator.CheckMessages(suite.chainB.GetContext(), []interface{}{
		suite.newUpdateClientMessage(),
		suite.newRecvMessage(packet),
		channeltypes.NewMsgChannelCloseInit(suite.path.EndpointB.PortID, suite.path.EndpointB.ChannelID, suite.chainB.SenderAccount),
	})
	suite.Require().NoError(err)
}

func (suite *AnteTestSuite) TestRedundantAckBatchRejected() {
	packet, err := suite.path.EndpointA.SendPacket(ibctesting.DefaultTimeoutHeight, 0, mock.MockPacketData)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.path.EndpointB.RecvPacket(packet))

	ack := mock.MockAcknowledgement.Acknowledgement()
	suite.Require().NoError(suite.path.EndpointA.AcknowledgePacket(packet, ack))

	// resubmitting the acknowledgement is a no-op on chainA
	header := mock.NewHeader(suite.chainB.LatestHeight(), uint64(suite.chainB.CurrentTime.UnixNano()))
	updateMsg := clienttypes.NewMsgUpdateClient(suite.path.EndpointA.ClientID, header, suite.chainA.SenderAccount)

	proof, proofHeight := suite.chainB.QueryProof(
		ibchost.PacketAcknowledgementPath(packet.DestinationPort, packet.DestinationChannel, packet.Sequence),
	)
	ackMsg := channeltypes.NewMsgAcknowledgement(packet, ack, proof, proofHeight, suite.chainA.SenderAccount)

	decorator := ante.NewRedundantRelayDecorator(suite.chainA.App)
	err = decorator.CheckMessages(suite.chainA.GetContext(), []interface{}{updateMsg, ackMsg})
	suite.Require().ErrorIs(err, channeltypes.ErrRedundantTx)
}
