package keeper_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/Salpiglossis/cosmos-ibc-rs/host"
	clienttypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/02-client/types"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/exported"
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

// eventAttribute returns the value of the given attribute on the first
// event of the given type, failing the test when it is absent.
func (suite *KeeperTestSuite) eventAttribute(events []host.Event, eventType, key string) string {
	for _, ev := range events {
		if ev.Type != eventType {
			continue
		}
		for _, attr := range ev.Attributes {
			if attr.Key == key {
				return attr.Value
			}
		}
	}
	suite.FailNowf("event attribute not found", "event %s attribute %s", eventType, key)
	return ""
}

func (suite *KeeperTestSuite) TestCreateClient() {
	path := ibctesting.NewPath(suite.chainA, suite.chainB)
	trustedHeight := suite.chainB.LatestHeight()

	err := path.EndpointA.CreateClient()
	suite.Require().NoError(err)
	suite.Require().Equal(ibctesting.FirstClientID, path.EndpointA.ClientID)

	clientState := path.EndpointA.GetClientState()
	suite.Require().Equal(trustedHeight, clientState.GetLatestHeight())

	status := suite.chainA.App.ClientKeeper.GetClientStatus(suite.chainA.GetContext(), path.EndpointA.ClientID)
	suite.Require().Equal(exported.Active, status)

	_, found := suite.chainA.App.ClientKeeper.GetClientConsensusState(suite.chainA.GetContext(), path.EndpointA.ClientID, trustedHeight)
	suite.Require().True(found)

	suite.Require().Equal(path.EndpointA.ClientID, suite.eventAttribute(suite.chainA.LastEvents, clienttypes.EventTypeCreateClient, clienttypes.AttributeKeyClientID))
	suite.Require().Equal(exported.Mock, suite.eventAttribute(suite.chainA.LastEvents, clienttypes.EventTypeCreateClient, clienttypes.AttributeKeyClientType))
	suite.Require().Equal(trustedHeight.String(), suite.eventAttribute(suite.chainA.LastEvents, clienttypes.EventTypeCreateClient, clienttypes.AttributeKeyConsensusHeight))
}

func (suite *KeeperTestSuite) TestCreateClientSequentialIdentifiers() {
	path := ibctesting.NewPath(suite.chainA, suite.chainB)

	err := path.EndpointA.CreateClient()
	suite.Require().NoError(err)
	suite.Require().Equal("00-mock-0", path.EndpointA.ClientID)

	path2 := ibctesting.NewPath(suite.chainA, suite.chainB)
	err = path2.EndpointA.CreateClient()
	suite.Require().NoError(err)
	suite.Require().Equal("00-mock-1", path2.EndpointA.ClientID)

	suite.Require().Equal(uint64(2), suite.chainA.App.ClientKeeper.GetNextClientSequence(suite.chainA.GetContext()))
}

func (suite *KeeperTestSuite) TestCreateClientTypeNotAllowed() {
	path := ibctesting.NewPath(suite.chainA, suite.chainB)

	suite.chainA.App.ClientKeeper.SetParams(suite.chainA.GetContext(), clienttypes.NewParams(exported.Tendermint))

	err := path.EndpointA.CreateClient()
	suite.Require().ErrorIs(err, clienttypes.ErrInvalidClientType)
}

func (suite *KeeperTestSuite) TestUpdateClient() {
	path := ibctesting.NewPath(suite.chainA, suite.chainB)
	suite.coordinator.SetupClients(path)

	suite.coordinator.CommitBlock(suite.chainB)
	expectedHeight := suite.chainB.LatestHeight()
	expectedTime := uint64(suite.chainB.CurrentTime.UnixNano())

	err := path.EndpointA.UpdateClient()
	suite.Require().NoError(err)

	ctx := suite.chainA.GetContext()
	suite.Require().Equal(expectedHeight, suite.chainA.App.ClientKeeper.GetClientLatestHeight(ctx, path.EndpointA.ClientID))

	timestamp, err := suite.chainA.App.ClientKeeper.GetClientTimestampAtHeight(ctx, path.EndpointA.ClientID, expectedHeight)
	suite.Require().NoError(err)
	suite.Require().Equal(expectedTime, timestamp)

	suite.Require().Equal(
		expectedHeight.String(),
		suite.eventAttribute(suite.chainA.LastEvents, clienttypes.EventTypeUpdateClient, clienttypes.AttributeKeyConsensusHeights),
	)
}

func (suite *KeeperTestSuite) TestUpdateClientDuplicateHeader() {
	path := ibctesting.NewPath(suite.chainA, suite.chainB)
	suite.coordinator.SetupClients(path)

	suite.coordinator.CommitBlock(suite.chainB)

	err := path.EndpointA.UpdateClient()
	suite.Require().NoError(err)

	latestHeight := suite.chainA.App.ClientKeeper.GetClientLatestHeight(suite.chainA.GetContext(), path.EndpointA.ClientID)

	// resubmitting the same header is a no-op, not misbehaviour
	err = path.EndpointA.UpdateClient()
	suite.Require().NoError(err)

	suite.Require().Equal(latestHeight, suite.chainA.App.ClientKeeper.GetClientLatestHeight(suite.chainA.GetContext(), path.EndpointA.ClientID))
	suite.Require().Equal(exported.Active, suite.chainA.App.ClientKeeper.GetClientStatus(suite.chainA.GetContext(), path.EndpointA.ClientID))
}

func (suite *KeeperTestSuite) TestUpdateClientConflictingHeaderFreezesClient() {
	path := ibctesting.NewPath(suite.chainA, suite.chainB)
	trustedHeight := suite.chainB.LatestHeight()
	suite.coordinator.SetupClients(path)

	// a header for an already-tracked height with a different timestamp
	conflicting := mock.NewHeader(trustedHeight, uint64(suite.chainB.CurrentTime.Add(time.Hour).UnixNano()))
	msg := clienttypes.NewMsgUpdateClient(path.EndpointA.ClientID, conflicting, suite.chainA.SenderAccount)

	_, err := suite.chainA.App.UpdateClient(suite.chainA.GetContext(), msg)
	suite.Require().NoError(err)

	suite.Require().Equal(exported.Frozen, suite.chainA.App.ClientKeeper.GetClientStatus(suite.chainA.GetContext(), path.EndpointA.ClientID))

	// frozen is terminal: subsequent updates are rejected
	err = path.EndpointA.UpdateClient()
	suite.Require().ErrorIs(err, clienttypes.ErrClientNotActive)
}

func (suite *KeeperTestSuite) TestSubmitMisbehaviour() {
	path := ibctesting.NewPath(suite.chainA, suite.chainB)
	suite.coordinator.SetupClients(path)

	height := suite.chainB.LatestHeight()
	timestamp := uint64(suite.chainB.CurrentTime.UnixNano())

	testCases := []struct {
		name         string
		misbehaviour *mock.Misbehaviour
		expErr       error
	}{
		{
			"conflicting headers at the same height",
			mock.NewMisbehaviour(
				ibctesting.FirstClientID,
				mock.NewHeader(height, timestamp),
				mock.NewHeader(height, timestamp+1),
			),
			nil,
		},
		{
			"non-monotonic timestamps",
			mock.NewMisbehaviour(
				ibctesting.FirstClientID,
				mock.NewHeader(height.Increment().(clienttypes.Height), timestamp),
				mock.NewHeader(height, timestamp+1),
			),
			nil,
		},
		{
			"identical headers are not misbehaviour",
			mock.NewMisbehaviour(
				ibctesting.FirstClientID,
				mock.NewHeader(height, timestamp),
				mock.NewHeader(height, timestamp),
			),
			clienttypes.ErrInvalidMisbehaviour,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest()
			path := ibctesting.NewPath(suite.chainA, suite.chainB)
			suite.coordinator.SetupClients(path)

			msg := clienttypes.NewMsgSubmitMisbehaviour(path.EndpointA.ClientID, tc.misbehaviour, suite.chainA.SenderAccount)
			_, err := suite.chainA.App.SubmitMisbehaviour(suite.chainA.GetContext(), msg)

			if tc.expErr == nil {
				suite.Require().NoError(err)
				suite.Require().Equal(exported.Frozen, suite.chainA.App.ClientKeeper.GetClientStatus(suite.chainA.GetContext(), path.EndpointA.ClientID))
			} else {
				suite.Require().ErrorIs(err, tc.expErr)
				suite.Require().Equal(exported.Active, suite.chainA.App.ClientKeeper.GetClientStatus(suite.chainA.GetContext(), path.EndpointA.ClientID))
			}
		})
	}
}

func (suite *KeeperTestSuite) TestUpdateClientNotFound() {
	header := mock.NewHeader(clienttypes.NewHeight(1, 10), uint64(suite.chainB.CurrentTime.UnixNano()))
	msg := clienttypes.NewMsgUpdateClient("00-mock-42", header, suite.chainA.SenderAccount)

	_, err := suite.chainA.App.UpdateClient(suite.chainA.GetContext(), msg)
	suite.Require().ErrorIs(err, clienttypes.ErrClientNotFound)
}
