package tendermint_test

import (
	"time"

	clienttypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/02-client/types"
	tendermint "github.com/Salpiglossis/cosmos-ibc-rs/modules/light-clients/07-tendermint"
)

func (suite *TendermintTestSuite) TestCheckForMisbehaviourHeader() {
	clientState := suite.initializeClient()

	header := suite.newHeader(clienttypes.NewHeight(1, 11), suite.now.Add(time.Minute), trustedHeight)
	clientState.UpdateState(suite.ctx, suite.cdc, suite.clientStore, header)

	// resubmitting the stored header is not misbehaviour
	suite.Require().False(clientState.CheckForMisbehaviour(suite.ctx, suite.cdc, suite.clientStore, header))

	// a header for an untracked height cannot conflict
	unseen := suite.newHeader(clienttypes.NewHeight(1, 20), suite.now.Add(time.Minute), trustedHeight)
	suite.Require().False(clientState.CheckForMisbehaviour(suite.ctx, suite.cdc, suite.clientStore, unseen))

	// a conflicting commitment at a tracked height is misbehaviour
	conflicting := suite.newHeader(header.Height, header.Time, trustedHeight)
	conflicting.AppHash = forkedAppHash
	suite.Require().True(clientState.CheckForMisbehaviour(suite.ctx, suite.cdc, suite.clientStore, conflicting))
}

func (suite *TendermintTestSuite) TestCheckForMisbehaviourMisbehaviour() {
	height := clienttypes.NewHeight(1, 11)
	laterHeight := clienttypes.NewHeight(1, 12)

	testCases := []struct {
		name            string
		misbehaviour    func() *tendermint.Misbehaviour
		expMisbehaviour bool
	}{
		{
			"conflicting commitments at the same height",
			func() *tendermint.Misbehaviour {
				header1 := suite.newHeader(height, suite.now.Add(time.Minute), trustedHeight)
				header1.AppHash = forkedAppHash
				header2 := suite.newHeader(height, suite.now.Add(time.Minute), trustedHeight)
				return tendermint.NewMisbehaviour("07-tendermint-0", header1, header2)
			},
			true,
		},
		{
			"identical headers at the same height",
			func() *tendermint.Misbehaviour {
				header1 := suite.newHeader(height, suite.now.Add(time.Minute), trustedHeight)
				header2 := suite.newHeader(height, suite.now.Add(time.Minute), trustedHeight)
				return tendermint.NewMisbehaviour("07-tendermint-0", header1, header2)
			},
			false,
		},
		{
			"non-monotonic block times",
			func() *tendermint.Misbehaviour {
				header1 := suite.newHeader(laterHeight, suite.now.Add(time.Minute), trustedHeight)
				header2 := suite.newHeader(height, suite.now.Add(2*time.Minute), trustedHeight)
				return tendermint.NewMisbehaviour("07-tendermint-0", header1, header2)
			},
			true,
		},
		{
			"monotonic block times",
			func() *tendermint.Misbehaviour {
				header1 := suite.newHeader(laterHeight, suite.now.Add(2*time.Minute), trustedHeight)
				header2 := suite.newHeader(height, suite.now.Add(time.Minute), trustedHeight)
				return tendermint.NewMisbehaviour("07-tendermint-0", header1, header2)
			},
			false,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest()
			clientState := suite.initializeClient()

			suite.Require().Equal(
				tc.expMisbehaviour,
				clientState.CheckForMisbehaviour(suite.ctx, suite.cdc, suite.clientStore, tc.misbehaviour()),
			)
		})
	}
}

func (suite *TendermintTestSuite) TestVerifyMisbehaviour() {
	testCases := []struct {
		name         string
		misbehaviour func() *tendermint.Misbehaviour
		hostTime     time.Time
		expPass      bool
	}{
		{
			"valid misbehaviour",
			func() *tendermint.Misbehaviour {
				header1 := suite.newHeader(clienttypes.NewHeight(1, 11), suite.now.Add(time.Minute), trustedHeight)
				header1.AppHash = forkedAppHash
				header2 := suite.newHeader(clienttypes.NewHeight(1, 11), suite.now.Add(time.Minute), trustedHeight)
				return tendermint.NewMisbehaviour("07-tendermint-0", header1, header2)
			},
			suite.now.Add(time.Minute),
			true,
		},
		{
			"trusted consensus state not found for header",
			func() *tendermint.Misbehaviour {
				header1 := suite.newHeader(clienttypes.NewHeight(1, 100), suite.now.Add(time.Minute), clienttypes.NewHeight(1, 99))
				header2 := suite.newHeader(clienttypes.NewHeight(1, 100), suite.now.Add(time.Minute), trustedHeight)
				return tendermint.NewMisbehaviour("07-tendermint-0", header1, header2)
			},
			suite.now.Add(time.Minute),
			false,
		},
		{
			"trusted consensus state outside trusting period",
			func() *tendermint.Misbehaviour {
				header1 := suite.newHeader(clienttypes.NewHeight(1, 11), suite.now.Add(time.Minute), trustedHeight)
				header1.AppHash = forkedAppHash
				header2 := suite.newHeader(clienttypes.NewHeight(1, 11), suite.now.Add(time.Minute), trustedHeight)
				return tendermint.NewMisbehaviour("07-tendermint-0", header1, header2)
			},
			suite.now.Add(trustingPeriod + time.Minute),
			false,
		},
		{
			"header heights out of order",
			func() *tendermint.Misbehaviour {
				header1 := suite.newHeader(clienttypes.NewHeight(1, 11), suite.now.Add(time.Minute), trustedHeight)
				header2 := suite.newHeader(clienttypes.NewHeight(1, 12), suite.now.Add(time.Minute), trustedHeight)
				return tendermint.NewMisbehaviour("07-tendermint-0", header1, header2)
			},
			suite.now.Add(time.Minute),
			false,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest()
			clientState := suite.initializeClient()

			ctx := suite.ctx.WithBlockTime(tc.hostTime)
			err := clientState.VerifyClientMessage(ctx, suite.cdc, suite.clientStore, tc.misbehaviour())

			if tc.expPass {
				suite.Require().NoError(err)
			} else {
				suite.Require().Error(err)
			}
		})
	}
}
