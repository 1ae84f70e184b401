package host

import (
	"bytes"
	"sort"

	dbm "github.com/tendermint/tm-db"
)

// KVStore is the key-addressed store capability the core requires from
// its host. Persistence mechanics behind it are the host's concern.
type KVStore interface {
	Get(key []byte) ([]byte, error)
	Has(key []byte) (bool, error)
	Set(key, value []byte) error
	Delete(key []byte) error

	// Iterator returns an iterator over the [start, end) domain in
	// ascending key order. A nil end iterates to the end of the store.
	Iterator(start, end []byte) (dbm.Iterator, error)
}

// dbStore adapts a tm-db database to the KVStore interface.
type dbStore struct {
	db dbm.DB
}

// NewStore returns a KVStore backed by the provided tm-db database.
func NewStore(db dbm.DB) KVStore {
	return dbStore{db: db}
}

func (s dbStore) Get(key []byte) ([]byte, error)  { return s.db.Get(key) }
func (s dbStore) Has(key []byte) (bool, error)    { return s.db.Has(key) }
func (s dbStore) Set(key, value []byte) error     { return s.db.Set(key, value) }
func (s dbStore) Delete(key []byte) error         { return s.db.Delete(key) }
func (s dbStore) Iterator(start, end []byte) (dbm.Iterator, error) {
	return s.db.Iterator(start, end)
}

// prefixStore exposes the subset of a parent store under a fixed key
// prefix. Used to isolate per-client verification stores.
type prefixStore struct {
	parent KVStore
	prefix []byte
}

// NewPrefixStore returns a KVStore which prepends the given prefix to
// every key before delegating to parent.
func NewPrefixStore(parent KVStore, prefix []byte) KVStore {
	return prefixStore{parent: parent, prefix: prefix}
}

func (s prefixStore) key(key []byte) []byte {
	return append(append([]byte{}, s.prefix...), key...)
}

func (s prefixStore) Get(key []byte) ([]byte, error) { return s.parent.Get(s.key(key)) }
func (s prefixStore) Has(key []byte) (bool, error)   { return s.parent.Has(s.key(key)) }
func (s prefixStore) Set(key, value []byte) error    { return s.parent.Set(s.key(key), value) }
func (s prefixStore) Delete(key []byte) error        { return s.parent.Delete(s.key(key)) }

func (s prefixStore) Iterator(start, end []byte) (dbm.Iterator, error) {
	if end == nil {
		end = prefixEnd(s.prefix)
	} else {
		end = s.key(end)
	}
	it, err := s.parent.Iterator(s.key(start), end)
	if err != nil {
		return nil, err
	}
	return prefixIterator{Iterator: it, prefix: s.prefix}, nil
}

// prefixEnd returns the smallest key strictly greater than every key
// carrying the prefix, or nil if no such key exists.
func prefixEnd(prefix []byte) []byte {
	end := append([]byte{}, prefix...)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] != 0xFF {
			end[i]++
			return end[:i+1]
		}
	}
	return nil
}

type prefixIterator struct {
	dbm.Iterator
	prefix []byte
}

func (it prefixIterator) Key() []byte {
	return bytes.TrimPrefix(it.Iterator.Key(), it.prefix)
}

// cacheStore buffers writes over a parent store. Reads fall through to
// the parent for keys not written. Write applies the buffered
// mutations to the parent; dropping the store discards them.
type cacheStore struct {
	parent  KVStore
	writes  map[string][]byte
	deletes map[string]struct{}
}

// NewCacheStore returns a branched store over parent. Mutations are
// invisible to the parent until Write is called on the returned store.
func NewCacheStore(parent KVStore) *CacheStore {
	return &CacheStore{cacheStore{
		parent:  parent,
		writes:  make(map[string][]byte),
		deletes: make(map[string]struct{}),
	}}
}

// CacheStore is the concrete branched store handed out by NewCacheStore.
type CacheStore struct {
	cacheStore
}

func (s *cacheStore) Get(key []byte) ([]byte, error) {
	if v, ok := s.writes[string(key)]; ok {
		return append([]byte{}, v...), nil
	}
	if _, ok := s.deletes[string(key)]; ok {
		return nil, nil
	}
	return s.parent.Get(key)
}

func (s *cacheStore) Has(key []byte) (bool, error) {
	if _, ok := s.writes[string(key)]; ok {
		return true, nil
	}
	if _, ok := s.deletes[string(key)]; ok {
		return false, nil
	}
	return s.parent.Has(key)
}

func (s *cacheStore) Set(key, value []byte) error {
	delete(s.deletes, string(key))
	s.writes[string(key)] = append([]byte{}, value...)
	return nil
}

func (s *cacheStore) Delete(key []byte) error {
	delete(s.writes, string(key))
	s.deletes[string(key)] = struct{}{}
	return nil
}

// Iterator materializes a merged view of the parent and the buffered
// mutations. The stores iterated here are small protocol records, not
// bulk data, so a snapshot is acceptable.
func (s *cacheStore) Iterator(start, end []byte) (dbm.Iterator, error) {
	merged := make(map[string][]byte)

	it, err := s.parent.Iterator(start, end)
	if err != nil {
		return nil, err
	}
	for ; it.Valid(); it.Next() {
		merged[string(it.Key())] = append([]byte{}, it.Value()...)
	}
	if err := it.Error(); err != nil {
		it.Close()
		return nil, err
	}
	it.Close()

	for k, v := range s.writes {
		if inDomain([]byte(k), start, end) {
			merged[k] = v
		}
	}
	for k := range s.deletes {
		delete(merged, k)
	}

	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return &memIterator{items: merged, keys: keys, start: start, end: end}, nil
}

// Write flushes the buffered mutations to the parent store.
func (s *CacheStore) Write() error {
	keys := make([]string, 0, len(s.writes))
	for k := range s.writes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := s.parent.Set([]byte(k), s.writes[k]); err != nil {
			return err
		}
	}

	dels := make([]string, 0, len(s.deletes))
	for k := range s.deletes {
		dels = append(dels, k)
	}
	sort.Strings(dels)
	for _, k := range dels {
		if err := s.parent.Delete([]byte(k)); err != nil {
			return err
		}
	}

	s.writes = make(map[string][]byte)
	s.deletes = make(map[string]struct{})
	return nil
}

func inDomain(key, start, end []byte) bool {
	if start != nil && bytes.Compare(key, start) < 0 {
		return false
	}
	if end != nil && bytes.Compare(key, end) >= 0 {
		return false
	}
	return true
}

// memIterator iterates a sorted snapshot. Implements dbm.Iterator.
type memIterator struct {
	items map[string][]byte
	keys  []string
	pos   int
	start []byte
	end   []byte
}

func (it *memIterator) Domain() ([]byte, []byte) { return it.start, it.end }
func (it *memIterator) Valid() bool              { return it.pos < len(it.keys) }
func (it *memIterator) Next()                    { it.pos++ }
func (it *memIterator) Key() []byte              { return []byte(it.keys[it.pos]) }
func (it *memIterator) Value() []byte            { return it.items[it.keys[it.pos]] }
func (it *memIterator) Error() error             { return nil }
func (it *memIterator) Close() error             { return nil }
