package ibctesting

import (
	"testing"
	"time"

	"cosmossdk.io/log"
	dbm "github.com/tendermint/tm-db"

	"github.com/Salpiglossis/cosmos-ibc-rs/host"
	clienttypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/02-client/types"
	porttypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/05-port/types"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/codec"
	ibckeeper "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/keeper"
	tendermint "github.com/Salpiglossis/cosmos-ibc-rs/modules/light-clients/07-tendermint"
	"github.com/Salpiglossis/cosmos-ibc-rs/testing/mock"
)

// TestChain is a single in-memory host: a MemDB-backed store, the core
// keeper wired with a router carrying the mock application, and a block
// clock the coordinator advances.
type TestChain struct {
	t *testing.T

	Coordinator *Coordinator
	ChainID     string
	App         *ibckeeper.Keeper
	Codec       *codec.Codec

	DB    dbm.DB
	Store host.KVStore

	CurrentHeight uint64
	CurrentTime   time.Time

	// SenderAccount signs every message relayed to this chain.
	SenderAccount string

	// LastEvents holds the events emitted by the most recently executed
	// message on this chain.
	LastEvents []host.Event

	logger log.Logger
}

// NewTestChain initializes a new test chain with a fresh store, a sealed
// router carrying the mock application and the mock port bound.
func NewTestChain(t *testing.T, coord *Coordinator, chainID string) *TestChain {
	t.Helper()

	db := dbm.NewMemDB()
	store := host.NewStore(db)

	cdc := codec.NewCodec()
	tendermint.RegisterInterfaces(cdc)
	mock.RegisterInterfaces(cdc)

	app := ibckeeper.NewKeeper(cdc)

	chain := &TestChain{
		t:             t,
		Coordinator:   coord,
		ChainID:       chainID,
		App:           app,
		Codec:         cdc,
		DB:            db,
		Store:         store,
		CurrentHeight: 1,
		CurrentTime:   DefaultTime,
		SenderAccount: TestAccAddress,
		logger:        log.NewNopLogger(),
	}

	router := porttypes.NewRouter()
	router.AddRoute(mock.ModuleName, mock.NewIBCModule(mock.NewIBCApp(mock.PortID)))
	app.SetRouter(router)

	app.PortKeeper.BindPort(chain.GetContext(), mock.PortID, mock.ModuleName)

	return chain
}

// GetContext returns a context over the chain's store at its current
// height and time, carrying a mock proof provider over the same store.
func (chain *TestChain) GetContext() host.Context {
	ctx := host.NewContext(chain.Store, chain.ChainID, chain.CurrentHeight, chain.CurrentTime, chain.logger)
	return ctx.WithProofProvider(mock.NewProofProvider(chain.Store, DefaultPrefix))
}

// NextBlock advances the chain by one block.
func (chain *TestChain) NextBlock() {
	chain.CurrentHeight++
	chain.CurrentTime = chain.CurrentTime.Add(TimeIncrement)
}

// LatestHeight returns the chain's current self height.
func (chain *TestChain) LatestHeight() clienttypes.Height {
	return clienttypes.GetSelfHeight(chain.ChainID, chain.CurrentHeight)
}

// QueryProof returns a mock proof for the given store path together with
// the height it was queried at.
func (chain *TestChain) QueryProof(path string) ([]byte, clienttypes.Height) {
	proof, err := mock.NewProofProvider(chain.Store, DefaultPrefix).GetProof(chain.CurrentHeight, path)
	if err != nil {
		chain.t.Fatalf("failed to query proof for path %s: %v", path, err)
	}
	return proof, chain.LatestHeight()
}

// commitMsgResult records the events of an executed message and commits
// a block.
func (chain *TestChain) commitMsgResult(ctx host.Context) {
	chain.LastEvents = ctx.EventManager().Events()
	chain.NextBlock()
}
