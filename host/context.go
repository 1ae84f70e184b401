package host

import (
	"time"

	"cosmossdk.io/log"
)

// ProofProvider supplies membership proofs for the host's own store,
// consumed by the query interface. Hosts without proof support may
// leave it nil.
type ProofProvider interface {
	GetProof(height uint64, path string) ([]byte, error)
}

// Context carries the host-provided execution environment for one
// message: the backing store, the host's current chain id, block
// height and time, a logger and an event manager.
//
// The validation phase of a message must only read through the
// context; the execution phase mutates a branched context obtained
// from CacheContext whose writes are applied only on success.
type Context struct {
	store       KVStore
	chainID     string
	blockHeight uint64
	blockTime   time.Time
	logger      log.Logger
	eventMgr    *EventManager
	proofs      ProofProvider
}

// NewContext returns a context over the provided store with the given
// host height and timestamp.
func NewContext(store KVStore, chainID string, blockHeight uint64, blockTime time.Time, logger log.Logger) Context {
	return Context{
		store:       store,
		chainID:     chainID,
		blockHeight: blockHeight,
		blockTime:   blockTime,
		logger:      logger,
		eventMgr:    NewEventManager(),
	}
}

// KVStore returns the context's backing store.
func (c Context) KVStore() KVStore { return c.store }

// ChainID returns the host chain identifier.
func (c Context) ChainID() string { return c.chainID }

// BlockHeight returns the host's current block height.
func (c Context) BlockHeight() uint64 { return c.blockHeight }

// BlockTime returns the host's current block timestamp.
func (c Context) BlockTime() time.Time { return c.blockTime }

// Logger returns the context logger.
func (c Context) Logger() log.Logger { return c.logger }

// EventManager returns the context's event manager.
func (c Context) EventManager() *EventManager { return c.eventMgr }

// ProofProvider returns the host proof provider, or nil.
func (c Context) ProofProvider() ProofProvider { return c.proofs }

// WithProofProvider returns a copy of the context carrying the given
// proof provider.
func (c Context) WithProofProvider(pp ProofProvider) Context {
	c.proofs = pp
	return c
}

// WithBlockHeight returns a copy of the context at the given height.
func (c Context) WithBlockHeight(height uint64) Context {
	c.blockHeight = height
	return c
}

// WithBlockTime returns a copy of the context at the given timestamp.
func (c Context) WithBlockTime(t time.Time) Context {
	c.blockTime = t
	return c
}

// CacheContext branches the context's store and event manager. The
// returned write function applies the branch's store writes and emitted
// events to the parent; if it is never called the branch is discarded,
// leaving the parent untouched.
func (c Context) CacheContext() (Context, func() error) {
	cache := NewCacheStore(c.store)
	branched := c
	branched.store = cache
	branched.eventMgr = NewEventManager()

	write := func() error {
		if err := cache.Write(); err != nil {
			return err
		}
		c.eventMgr.EmitEvents(branched.eventMgr.Events())
		return nil
	}
	return branched, write
}
