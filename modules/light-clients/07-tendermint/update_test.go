package tendermint_test

import (
	"time"

	clienttypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/02-client/types"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/exported"
	tendermint "github.com/Salpiglossis/cosmos-ibc-rs/modules/light-clients/07-tendermint"
)

func (suite *TendermintTestSuite) TestVerifyClientMessageHeader() {
	testCases := []struct {
		name     string
		header   func() *tendermint.Header
		hostTime time.Time
		expPass  bool
	}{
		{
			"valid header",
			func() *tendermint.Header {
				return suite.newHeader(clienttypes.NewHeight(1, 11), suite.now.Add(time.Minute), trustedHeight)
			},
			suite.now.Add(time.Minute),
			true,
		},
		{
			"trusted consensus state not found",
			func() *tendermint.Header {
				return suite.newHeader(clienttypes.NewHeight(1, 100), suite.now.Add(time.Minute), clienttypes.NewHeight(1, 99))
			},
			suite.now.Add(time.Minute),
			false,
		},
		{
			"trusted consensus state outside trusting period",
			func() *tendermint.Header {
				return suite.newHeader(clienttypes.NewHeight(1, 11), suite.now.Add(trustingPeriod+time.Minute), trustedHeight)
			},
			suite.now.Add(trustingPeriod + time.Minute),
			false,
		},
		{
			"trusted validators hash mismatch",
			func() *tendermint.Header {
				header := suite.newHeader(clienttypes.NewHeight(1, 11), suite.now.Add(time.Minute), trustedHeight)
				header.TrustedValidatorsHash = []byte("other_vals_hash")
				return header
			},
			suite.now.Add(time.Minute),
			false,
		},
		{
			"header revision does not match chain id",
			func() *tendermint.Header {
				return suite.newHeader(clienttypes.NewHeight(2, 11), suite.now.Add(time.Minute), trustedHeight)
			},
			suite.now.Add(time.Minute),
			false,
		},
		{
			"header time not after trusted consensus state",
			func() *tendermint.Header {
				return suite.newHeader(clienttypes.NewHeight(1, 11), suite.now, trustedHeight)
			},
			suite.now.Add(time.Minute),
			false,
		},
		{
			"header time beyond max clock drift",
			func() *tendermint.Header {
				return suite.newHeader(clienttypes.NewHeight(1, 11), suite.now.Add(maxClockDrift+time.Minute), trustedHeight)
			},
			suite.now,
			false,
		},
		{
			"trusted height not less than header height",
			func() *tendermint.Header {
				return suite.newHeader(trustedHeight, suite.now.Add(time.Minute), trustedHeight)
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
			err := clientState.VerifyClientMessage(ctx, suite.cdc, suite.clientStore, tc.header())

			if tc.expPass {
				suite.Require().NoError(err)
			} else {
				suite.Require().Error(err)
			}
		})
	}
}

func (suite *TendermintTestSuite) TestVerifyClientMessageInvalidType() {
	clientState := suite.initializeClient()

	err := clientState.VerifyClientMessage(suite.ctx, suite.cdc, suite.clientStore, nil)
	suite.Require().ErrorIs(err, clienttypes.ErrInvalidClientType)
}

func (suite *TendermintTestSuite) TestUpdateState() {
	clientState := suite.initializeClient()

	updateTime := suite.now.Add(time.Minute)
	header := suite.newHeader(clienttypes.NewHeight(1, 11), updateTime, trustedHeight)

	ctx := suite.ctx.WithBlockTime(updateTime)
	heights := clientState.UpdateState(ctx, suite.cdc, suite.clientStore, header)
	suite.Require().Equal([]exported.Height{header.Height}, heights)

	stored := suite.storedClientState()
	suite.Require().Equal(header.Height, stored.LatestHeight)

	consState, found := tendermint.GetConsensusState(suite.clientStore, suite.cdc, header.Height)
	suite.Require().True(found)
	suite.Require().Equal(header.ConsensusState(), consState)

	processedTime, found := tendermint.GetProcessedTime(suite.clientStore, header.Height)
	suite.Require().True(found)
	suite.Require().Equal(uint64(updateTime.UnixNano()), processedTime)
}

func (suite *TendermintTestSuite) TestUpdateStatePastHeight() {
	clientState := suite.initializeClient()

	// advance the client first
	header := suite.newHeader(clienttypes.NewHeight(1, 15), suite.now.Add(5*time.Minute), trustedHeight)
	clientState.UpdateState(suite.ctx, suite.cdc, suite.clientStore, header)

	// backfill a skipped height: the consensus state is stored but the
	// latest-height watermark does not regress
	latest := suite.storedClientState()
	pastHeader := suite.newHeader(clienttypes.NewHeight(1, 12), suite.now.Add(2*time.Minute), trustedHeight)
	latest.UpdateState(suite.ctx, suite.cdc, suite.clientStore, pastHeader)

	stored := suite.storedClientState()
	suite.Require().Equal(clienttypes.NewHeight(1, 15), stored.LatestHeight)

	_, found := tendermint.GetConsensusState(suite.clientStore, suite.cdc, pastHeader.Height)
	suite.Require().True(found)
}

func (suite *TendermintTestSuite) TestUpdateStateDuplicateHeader() {
	clientState := suite.initializeClient()

	header := suite.newHeader(clienttypes.NewHeight(1, 11), suite.now.Add(time.Minute), trustedHeight)

	heights := clientState.UpdateState(suite.ctx, suite.cdc, suite.clientStore, header)
	suite.Require().Equal([]exported.Height{header.Height}, heights)

	// a second update with the same header is a no-op
	laterCtx := suite.ctx.WithBlockTime(suite.now.Add(time.Hour))
	heights = clientState.UpdateState(laterCtx, suite.cdc, suite.clientStore, header)
	suite.Require().Equal([]exported.Height{header.Height}, heights)

	// the processed time still reflects the first update
	processedTime, found := tendermint.GetProcessedTime(suite.clientStore, header.Height)
	suite.Require().True(found)
	suite.Require().Equal(uint64(suite.now.UnixNano()), processedTime)
}

func (suite *TendermintTestSuite) TestUpdateStateInvalidTypePanics() {
	clientState := suite.initializeClient()

	suite.Require().Panics(func() {
		clientState.UpdateState(suite.ctx, suite.cdc, suite.clientStore, &tendermint.Misbehaviour{})
	})
}

func (suite *TendermintTestSuite) TestUpdateStateOnMisbehaviour() {
	clientState := suite.initializeClient()

	clientState.UpdateStateOnMisbehaviour(suite.ctx, suite.cdc, suite.clientStore, nil)

	stored := suite.storedClientState()
	suite.Require().True(stored.IsFrozen())
	suite.Require().Equal(exported.Frozen, stored.Status(suite.ctx, suite.clientStore, suite.cdc))
}
