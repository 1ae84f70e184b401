package tendermint_test

import (
	"time"

	clienttypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/02-client/types"
	commitmenttypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/23-commitment/types"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/exported"
	tendermint "github.com/Salpiglossis/cosmos-ibc-rs/modules/light-clients/07-tendermint"
)

func (suite *TendermintTestSuite) TestValidate() {
	testCases := []struct {
		name        string
		clientState *tendermint.ClientState
		expPass     bool
	}{
		{
			"valid client",
			tendermint.NewClientState(chainID, tendermint.DefaultTrustLevel, trustingPeriod, maxClockDrift, trustedHeight, commitmenttypes.GetSDKSpecs(), upgradePath),
			true,
		},
		{
			"empty chain id",
			tendermint.NewClientState("  ", tendermint.DefaultTrustLevel, trustingPeriod, maxClockDrift, trustedHeight, commitmenttypes.GetSDKSpecs(), upgradePath),
			false,
		},
		{
			"chain id longer than consensus allows",
			tendermint.NewClientState("this-chain-identifier-is-definitely-longer-than-fifty-characters", tendermint.DefaultTrustLevel, trustingPeriod, maxClockDrift, clienttypes.NewHeight(0, 10), commitmenttypes.GetSDKSpecs(), upgradePath),
			false,
		},
		{
			"invalid trust level",
			tendermint.NewClientState(chainID, tendermint.NewFraction(0, 1), trustingPeriod, maxClockDrift, trustedHeight, commitmenttypes.GetSDKSpecs(), upgradePath),
			false,
		},
		{
			"zero trusting period",
			tendermint.NewClientState(chainID, tendermint.DefaultTrustLevel, 0, maxClockDrift, trustedHeight, commitmenttypes.GetSDKSpecs(), upgradePath),
			false,
		},
		{
			"zero max clock drift",
			tendermint.NewClientState(chainID, tendermint.DefaultTrustLevel, trustingPeriod, 0, trustedHeight, commitmenttypes.GetSDKSpecs(), upgradePath),
			false,
		},
		{
			"revision number mismatches chain id",
			tendermint.NewClientState(chainID, tendermint.DefaultTrustLevel, trustingPeriod, maxClockDrift, clienttypes.NewHeight(2, 10), commitmenttypes.GetSDKSpecs(), upgradePath),
			false,
		},
		{
			"zero revision height",
			tendermint.NewClientState(chainID, tendermint.DefaultTrustLevel, trustingPeriod, maxClockDrift, clienttypes.NewHeight(1, 0), commitmenttypes.GetSDKSpecs(), upgradePath),
			false,
		},
		{
			"nil proof specs",
			tendermint.NewClientState(chainID, tendermint.DefaultTrustLevel, trustingPeriod, maxClockDrift, trustedHeight, nil, upgradePath),
			false,
		},
		{
			"empty key in upgrade path",
			tendermint.NewClientState(chainID, tendermint.DefaultTrustLevel, trustingPeriod, maxClockDrift, trustedHeight, commitmenttypes.GetSDKSpecs(), []string{"upgrade", ""}),
			false,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			err := tc.clientState.Validate()
			if tc.expPass {
				suite.Require().NoError(err)
			} else {
				suite.Require().Error(err)
			}
		})
	}
}

func (suite *TendermintTestSuite) TestStatus() {
	clientState := suite.initializeClient()
	suite.Require().Equal(exported.Active, clientState.Status(suite.ctx, suite.clientStore, suite.cdc))

	// frozen takes precedence over expiry
	frozen := suite.newClientState()
	frozen.FrozenHeight = tendermint.FrozenHeight
	suite.Require().Equal(exported.Frozen, frozen.Status(suite.ctx, suite.clientStore, suite.cdc))

	// trusting period elapsed since the latest consensus state
	expiredCtx := suite.ctx.WithBlockTime(suite.now.Add(trustingPeriod))
	suite.Require().Equal(exported.Expired, clientState.Status(expiredCtx, suite.clientStore, suite.cdc))

	// a client state without a consensus state at its latest height is expired
	orphaned := suite.newClientState()
	orphaned.LatestHeight = clienttypes.NewHeight(1, 99)
	suite.Require().Equal(exported.Expired, orphaned.Status(suite.ctx, suite.clientStore, suite.cdc))
}

func (suite *TendermintTestSuite) TestIsExpired() {
	clientState := suite.newClientState()

	testCases := []struct {
		name       string
		now        time.Time
		expExpired bool
	}{
		{"within trusting period", suite.now.Add(trustingPeriod / 2), false},
		{"exactly at expiration", suite.now.Add(trustingPeriod), true},
		{"past trusting period", suite.now.Add(trustingPeriod + time.Minute), true},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.Require().Equal(tc.expExpired, clientState.IsExpired(suite.now, tc.now))
		})
	}
}

func (suite *TendermintTestSuite) TestInitialize() {
	clientState := suite.newClientState()

	// only a tendermint consensus state is accepted
	err := clientState.Initialize(suite.ctx, suite.cdc, suite.clientStore, nil)
	suite.Require().Error(err)

	err = clientState.Initialize(suite.ctx, suite.cdc, suite.clientStore, suite.newConsensusState(suite.now))
	suite.Require().NoError(err)

	consState, found := tendermint.GetConsensusState(suite.clientStore, suite.cdc, trustedHeight)
	suite.Require().True(found)
	suite.Require().Equal(suite.newConsensusState(suite.now), consState)

	// processed metadata is recorded for the initial height
	processedTime, found := tendermint.GetProcessedTime(suite.clientStore, trustedHeight)
	suite.Require().True(found)
	suite.Require().Equal(uint64(suite.now.UnixNano()), processedTime)

	processedHeight, found := tendermint.GetProcessedHeight(suite.clientStore, trustedHeight)
	suite.Require().True(found)
	suite.Require().Equal(clienttypes.GetSelfHeight(suite.ctx.ChainID(), suite.ctx.BlockHeight()), processedHeight)
}

func (suite *TendermintTestSuite) TestZeroCustomFields() {
	clientState := suite.newClientState()
	zeroed := clientState.ZeroCustomFields()

	suite.Require().Equal(chainID, zeroed.ChainId)
	suite.Require().Equal(trustedHeight, zeroed.LatestHeight)
	suite.Require().Equal(upgradePath, zeroed.UpgradePath)

	suite.Require().Zero(zeroed.TrustLevel)
	suite.Require().Zero(zeroed.TrustingPeriod)
	suite.Require().Zero(zeroed.MaxClockDrift)
	suite.Require().True(zeroed.FrozenHeight.IsZero())
}
