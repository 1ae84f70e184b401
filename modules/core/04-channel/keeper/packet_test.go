package keeper_test

import (
	clienttypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/02-client/types"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/04-channel/types"
	ibchost "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/24-host"
	ibctesting "github.com/Salpiglossis/cosmos-ibc-rs/testing"
	"github.com/Salpiglossis/cosmos-ibc-rs/testing/mock"
)

func (suite *KeeperTestSuite) TestSendPacket() {
	path := ibctesting.NewPath(suite.chainA, suite.chainB)
	suite.coordinator.Setup(path)

	packet, err := path.EndpointA.SendPacket(ibctesting.DefaultTimeoutHeight, ibctesting.DisabledTimeoutTimestamp, mock.MockPacketData)
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(1), packet.Sequence)

	ctx := suite.chainA.GetContext()
	commitment := suite.chainA.App.ChannelKeeper.GetPacketCommitment(ctx, path.EndpointA.PortID, path.EndpointA.ChannelID, packet.Sequence)
	suite.Require().Equal(types.CommitPacket(packet), commitment)

	seqSend, found := suite.chainA.App.ChannelKeeper.GetNextSequenceSend(ctx, path.EndpointA.PortID, path.EndpointA.ChannelID)
	suite.Require().True(found)
	suite.Require().Equal(uint64(2), seqSend)
}

func (suite *KeeperTestSuite) TestSendPacketTimeoutElapsed() {
	path := ibctesting.NewPath(suite.chainA, suite.chainB)
	suite.coordinator.Setup(path)

	// the client already tracks the counterparty past this height
	timeoutHeight := clienttypes.NewHeight(1, 1)

	_, err := path.EndpointA.SendPacket(timeoutHeight, ibctesting.DisabledTimeoutTimestamp, mock.MockPacketData)
	suite.Require().ErrorIs(err, types.ErrTimeoutElapsed)
}

func (suite *KeeperTestSuite) TestSendPacketChannelClosed() {
	path := ibctesting.NewPath(suite.chainA, suite.chainB)
	suite.coordinator.Setup(path)

	path.EndpointA.SetChannelState(types.CLOSED)

	_, err := path.EndpointA.SendPacket(ibctesting.DefaultTimeoutHeight, ibctesting.DisabledTimeoutTimestamp, mock.MockPacketData)
	suite.Require().ErrorIs(err, types.ErrInvalidChannelState)
}

func (suite *KeeperTestSuite) TestRelayPacket() {
	path := ibctesting.NewPath(suite.chainA, suite.chainB)
	suite.coordinator.Setup(path)

	packet, err := path.EndpointA.SendPacket(ibctesting.DefaultTimeoutHeight, ibctesting.DisabledTimeoutTimestamp, mock.MockPacketData)
	suite.Require().NoError(err)

	err = path.RelayPacket(packet)
	suite.Require().NoError(err)

	// the receipt and acknowledgement exist on the receiving chain
	ctxB := suite.chainB.GetContext()
	_, found := suite.chainB.App.ChannelKeeper.GetPacketReceipt(ctxB, packet.DestinationPort, packet.DestinationChannel, packet.Sequence)
	suite.Require().True(found)

	ackCommitment, found := suite.chainB.App.ChannelKeeper.GetPacketAcknowledgement(ctxB, packet.DestinationPort, packet.DestinationChannel, packet.Sequence)
	suite.Require().True(found)
	suite.Require().Equal(types.CommitAcknowledgement(mock.MockAcknowledgement.Acknowledgement()), ackCommitment)

	// the commitment is deleted on the sending chain once acknowledged
	commitment := suite.chainA.App.ChannelKeeper.GetPacketCommitment(suite.chainA.GetContext(), packet.SourcePort, packet.SourceChannel, packet.Sequence)
	suite.Require().Nil(commitment)
}

func (suite *KeeperTestSuite) TestRecvPacketReplay() {
	path := ibctesting.NewPath(suite.chainA, suite.chainB)
	suite.coordinator.Setup(path)

	packet, err := path.EndpointA.SendPacket(ibctesting.DefaultTimeoutHeight, ibctesting.DisabledTimeoutTimestamp, mock.MockPacketData)
	suite.Require().NoError(err)

	res, err := path.EndpointB.RecvPacketWithResult(packet)
	suite.Require().NoError(err)
	suite.Require().Equal(types.SUCCESS, res.Result)

	// a replayed receive succeeds without calling the application again
	res, err = path.EndpointB.RecvPacketWithResult(packet)
	suite.Require().NoError(err)
	suite.Require().Equal(types.NOOP, res.Result)
}

func (suite *KeeperTestSuite) TestRecvPacketOrderedOutOfOrder() {
	path := ibctesting.NewPath(suite.chainA, suite.chainB)
	path.SetChannelOrdered()
	suite.coordinator.Setup(path)

	_, err := path.EndpointA.SendPacket(ibctesting.DefaultTimeoutHeight, ibctesting.DisabledTimeoutTimestamp, mock.MockPacketData)
	suite.Require().NoError(err)

	packet2, err := path.EndpointA.SendPacket(ibctesting.DefaultTimeoutHeight, ibctesting.DisabledTimeoutTimestamp, mock.MockPacketData)
	suite.Require().NoError(err)

	// an ordered channel rejects sequence 2 while sequence 1 is undelivered
	err = path.EndpointB.RecvPacket(packet2)
	suite.Require().ErrorIs(err, types.ErrPacketSequenceOutOfOrder)

	ctxB := suite.chainB.GetContext()
	seqRecv, found := suite.chainB.App.ChannelKeeper.GetNextSequenceRecv(ctxB, packet2.DestinationPort, packet2.DestinationChannel)
	suite.Require().True(found)
	suite.Require().Equal(uint64(1), seqRecv)

	_, found = suite.chainB.App.ChannelKeeper.GetPacketAcknowledgement(ctxB, packet2.DestinationPort, packet2.DestinationChannel, packet2.Sequence)
	suite.Require().False(found)

	_, found = suite.chainB.App.ChannelKeeper.GetPacketReceipt(ctxB, packet2.DestinationPort, packet2.DestinationChannel, packet2.Sequence)
	suite.Require().False(found)
}

func (suite *KeeperTestSuite) TestRecvPacketWriteAckEvent() {
	path := ibctesting.NewPath(suite.chainA, suite.chainB)
	suite.coordinator.Setup(path)

	packet, err := path.EndpointA.SendPacket(ibctesting.DefaultTimeoutHeight, ibctesting.DisabledTimeoutTimestamp, mock.MockFailPacketData)
	suite.Require().NoError(err)

	err = path.EndpointB.RecvPacket(packet)
	suite.Require().NoError(err)

	ack, err := ibctesting.ParseAckFromEvents(suite.chainB.LastEvents)
	suite.Require().NoError(err)
	suite.Require().Equal(mock.MockFailAcknowledgement.Acknowledgement(), ack)
}

func (suite *KeeperTestSuite) TestRecvPacketAsyncNoAck() {
	path := ibctesting.NewPath(suite.chainA, suite.chainB)
	suite.coordinator.Setup(path)

	packet, err := path.EndpointA.SendPacket(ibctesting.DefaultTimeoutHeight, ibctesting.DisabledTimeoutTimestamp, mock.MockAsyncPacketData)
	suite.Require().NoError(err)

	err = path.EndpointB.RecvPacket(packet)
	suite.Require().NoError(err)

	// the application returned a nil acknowledgement, none is written yet
	_, found := suite.chainB.App.ChannelKeeper.GetPacketAcknowledgement(
		suite.chainB.GetContext(), packet.DestinationPort, packet.DestinationChannel, packet.Sequence,
	)
	suite.Require().False(found)

	_, err = ibctesting.ParseAckFromEvents(suite.chainB.LastEvents)
	suite.Require().Error(err)
}

func (suite *KeeperTestSuite) TestAcknowledgePacketReplay() {
	path := ibctesting.NewPath(suite.chainA, suite.chainB)
	suite.coordinator.Setup(path)

	packet, err := path.EndpointA.SendPacket(ibctesting.DefaultTimeoutHeight, ibctesting.DisabledTimeoutTimestamp, mock.MockPacketData)
	suite.Require().NoError(err)

	err = path.RelayPacket(packet)
	suite.Require().NoError(err)

	// the commitment was already deleted, a second acknowledgement is a no-op
	proof, proofHeight := suite.chainB.QueryProof(
		ibchost.PacketAcknowledgementPath(packet.DestinationPort, packet.DestinationChannel, packet.Sequence),
	)
	msg := types.NewMsgAcknowledgement(packet, mock.MockAcknowledgement.Acknowledgement(), proof, proofHeight, suite.chainA.SenderAccount)

	res, err := suite.chainA.App.Acknowledgement(suite.chainA.GetContext(), msg)
	suite.Require().NoError(err)
	suite.Require().Equal(types.NOOP, res.Result)
}

func (suite *KeeperTestSuite) TestTimeoutPacketUnordered() {
	path := ibctesting.NewPath(suite.chainA, suite.chainB)
	suite.coordinator.Setup(path)

	timeoutHeight := clienttypes.NewHeight(1, suite.chainB.CurrentHeight+2)

	packet, err := path.EndpointA.SendPacket(timeoutHeight, ibctesting.DisabledTimeoutTimestamp, mock.MockPacketData)
	suite.Require().NoError(err)

	suite.coordinator.CommitNBlocks(suite.chainB, 3)

	err = path.EndpointA.TimeoutPacket(packet)
	suite.Require().NoError(err)

	commitment := suite.chainA.App.ChannelKeeper.GetPacketCommitment(suite.chainA.GetContext(), packet.SourcePort, packet.SourceChannel, packet.Sequence)
	suite.Require().Nil(commitment)

	// unordered channels survive a timeout
	suite.Require().Equal(types.OPEN, path.EndpointA.GetChannel().State)
}

func (suite *KeeperTestSuite) TestTimeoutPacketOrdered() {
	path := ibctesting.NewPath(suite.chainA, suite.chainB)
	path.SetChannelOrdered()
	suite.coordinator.Setup(path)

	timeoutHeight := clienttypes.NewHeight(1, suite.chainB.CurrentHeight+2)

	packet, err := path.EndpointA.SendPacket(timeoutHeight, ibctesting.DisabledTimeoutTimestamp, mock.MockPacketData)
	suite.Require().NoError(err)

	suite.coordinator.CommitNBlocks(suite.chainB, 3)

	err = path.EndpointA.TimeoutPacket(packet)
	suite.Require().NoError(err)

	commitment := suite.chainA.App.ChannelKeeper.GetPacketCommitment(suite.chainA.GetContext(), packet.SourcePort, packet.SourceChannel, packet.Sequence)
	suite.Require().Nil(commitment)

	// an ordered channel closes when a packet times out
	suite.Require().Equal(types.CLOSED, path.EndpointA.GetChannel().State)
}

func (suite *KeeperTestSuite) TestTimeoutPacketNotReached() {
	path := ibctesting.NewPath(suite.chainA, suite.chainB)
	suite.coordinator.Setup(path)

	packet, err := path.EndpointA.SendPacket(ibctesting.DefaultTimeoutHeight, ibctesting.DisabledTimeoutTimestamp, mock.MockPacketData)
	suite.Require().NoError(err)

	err = path.EndpointA.TimeoutPacket(packet)
	suite.Require().ErrorIs(err, types.ErrTimeoutNotReached)
}

func (suite *KeeperTestSuite) TestTimeoutOnClose() {
	path := ibctesting.NewPath(suite.chainA, suite.chainB)
	suite.coordinator.Setup(path)

	packet, err := path.EndpointA.SendPacket(ibctesting.DefaultTimeoutHeight, ibctesting.DisabledTimeoutTimestamp, mock.MockPacketData)
	suite.Require().NoError(err)

	err = path.EndpointB.ChanCloseInit()
	suite.Require().NoError(err)

	err = path.EndpointA.TimeoutOnClose(packet)
	suite.Require().NoError(err)

	commitment := suite.chainA.App.ChannelKeeper.GetPacketCommitment(suite.chainA.GetContext(), packet.SourcePort, packet.SourceChannel, packet.Sequence)
	suite.Require().Nil(commitment)
}
