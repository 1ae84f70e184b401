package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/log"
	"github.com/stretchr/testify/suite"
	dbm "github.com/tendermint/tm-db"

	"github.com/Salpiglossis/cosmos-ibc-rs/host"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/05-port/keeper"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/05-port/types"
	"github.com/Salpiglossis/cosmos-ibc-rs/testing/mock"
)

var (
	validPort   = "validportid"
	invalidPort = "(invalidPortID)"
)

type KeeperTestSuite struct {
	suite.Suite

	ctx    host.Context
	keeper keeper.Keeper
}

func (suite *KeeperTestSuite) SetupTest() {
	store := host.NewStore(dbm.NewMemDB())
	suite.ctx = host.NewContext(store, "testchain-1", 1, time.Now().UTC(), log.NewNopLogger())
	suite.keeper = keeper.NewKeeper()
}

func TestKeeperTestSuite(t *testing.T) {
	suite.Run(t, new(KeeperTestSuite))
}

func (suite *KeeperTestSuite) TestBindPort() {
	suite.keeper.BindPort(suite.ctx, validPort, mock.ModuleName)
	suite.Require().True(suite.keeper.IsBound(suite.ctx, validPort))

	owner, found := suite.keeper.LookupModuleByPort(suite.ctx, validPort)
	suite.Require().True(found)
	suite.Require().Equal(mock.ModuleName, owner)

	suite.Require().Panics(func() {
		suite.keeper.BindPort(suite.ctx, invalidPort, mock.ModuleName)
	})

	// rebinding a bound port panics regardless of the claiming module
	suite.Require().Panics(func() {
		suite.keeper.BindPort(suite.ctx, validPort, "othermodule")
	})
}

func (suite *KeeperTestSuite) TestAuthenticate() {
	suite.keeper.BindPort(suite.ctx, validPort, mock.ModuleName)

	suite.Require().True(suite.keeper.Authenticate(suite.ctx, validPort, mock.ModuleName))
	suite.Require().False(suite.keeper.Authenticate(suite.ctx, validPort, "othermodule"))
	suite.Require().False(suite.keeper.Authenticate(suite.ctx, "unboundport", mock.ModuleName))

	suite.Require().Panics(func() {
		suite.keeper.Authenticate(suite.ctx, invalidPort, mock.ModuleName)
	})
}

func (suite *KeeperTestSuite) TestSetRouter() {
	router := types.NewRouter()
	router.AddRoute(mock.ModuleName, mock.NewIBCModule(mock.NewIBCApp(mock.PortID)))

	suite.keeper.SetRouter(router)
	suite.Require().True(suite.keeper.Router.Sealed())

	// a sealed router cannot be replaced
	suite.Require().Panics(func() {
		suite.keeper.SetRouter(types.NewRouter())
	})
}
