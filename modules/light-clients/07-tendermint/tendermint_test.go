package tendermint_test

import (
	"testing"
	"time"

	"cosmossdk.io/log"
	"github.com/stretchr/testify/suite"
	dbm "github.com/tendermint/tm-db"

	"github.com/Salpiglossis/cosmos-ibc-rs/host"
	clienttypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/02-client/types"
	commitmenttypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/23-commitment/types"
	ibchost "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/24-host"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/codec"
	tendermint "github.com/Salpiglossis/cosmos-ibc-rs/modules/light-clients/07-tendermint"
)

const chainID = "testchain-1"

var (
	trustedHeight = clienttypes.NewHeight(1, 10)

	trustingPeriod = 2 * time.Hour
	maxClockDrift  = 10 * time.Minute

	upgradePath = []string{"upgrade", "upgradedIBCState"}

	appHash       = []byte("app_hash")
	valsHash      = []byte("vals_hash")
	nextValsHash  = []byte("next_vals_hash")
	forkedAppHash = []byte("forked_app_hash")
)

type TendermintTestSuite struct {
	suite.Suite

	cdc *codec.Codec
	ctx host.Context

	// clientStore is the isolated prefix store of the client under test.
	clientStore host.KVStore

	now time.Time
}

func (suite *TendermintTestSuite) SetupTest() {
	suite.cdc = codec.NewCodec()
	tendermint.RegisterInterfaces(suite.cdc)

	suite.now = time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)
	suite.clientStore = host.NewStore(dbm.NewMemDB())
	suite.ctx = host.NewContext(host.NewStore(dbm.NewMemDB()), "testhost-1", 5, suite.now, log.NewNopLogger())
}

func TestTendermintTestSuite(t *testing.T) {
	suite.Run(t, new(TendermintTestSuite))
}

func (suite *TendermintTestSuite) newClientState() *tendermint.ClientState {
	return tendermint.NewClientState(
		chainID, tendermint.DefaultTrustLevel, trustingPeriod, maxClockDrift,
		trustedHeight, commitmenttypes.GetSDKSpecs(), upgradePath,
	)
}

func (suite *TendermintTestSuite) newConsensusState(timestamp time.Time) *tendermint.ConsensusState {
	return tendermint.NewConsensusState(timestamp, commitmenttypes.NewMerkleRoot(appHash), nextValsHash)
}

func (suite *TendermintTestSuite) newHeader(height clienttypes.Height, timestamp time.Time, trusted clienttypes.Height) *tendermint.Header {
	return &tendermint.Header{
		Height:                height,
		Time:                  timestamp,
		AppHash:               appHash,
		ValidatorsHash:        valsHash,
		NextValidatorsHash:    nextValsHash,
		TrustedHeight:         trusted,
		TrustedValidatorsHash: nextValsHash,
	}
}

// initializeClient stores a fresh client state with its initial consensus
// state at the trusted height, timestamped at the suite's current time.
func (suite *TendermintTestSuite) initializeClient() *tendermint.ClientState {
	clientState := suite.newClientState()
	err := clientState.Initialize(suite.ctx, suite.cdc, suite.clientStore, suite.newConsensusState(suite.now))
	suite.Require().NoError(err)
	return clientState
}

// storedClientState reads the client state back out of the client store.
func (suite *TendermintTestSuite) storedClientState() *tendermint.ClientState {
	bz, err := suite.clientStore.Get(ibchost.ClientStateKey())
	suite.Require().NoError(err)
	suite.Require().NotEmpty(bz)

	clientState, ok := clienttypes.MustUnmarshalClientState(suite.cdc, bz).(*tendermint.ClientState)
	suite.Require().True(ok)
	return clientState
}
