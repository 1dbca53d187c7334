package store

import (
	"os"

	"github.com/dgraph-io/badger"
)

// badgerStore wraps a Badger directory. Like LevelDB directories it
// accepts writes in any key order.
type badgerStore struct {
	db *badger.DB
}

func openBadger(path string, readOnly bool) (*badgerStore, error) {
	opts := badger.DefaultOptions
	opts.Dir = path
	opts.ValueDir = path
	opts.ReadOnly = readOnly

	db, err := badger.Open(opts)
	if err != nil {
		return nil, &UnavailableError{Path: path, Err: err}
	}
	return &badgerStore{db: db}, nil
}

func createBadger(path string) (*badgerStore, error) {
	if err := os.MkdirAll(path, 0777); err != nil {
		return nil, &UnavailableError{Path: path, Err: err}
	}
	return openBadger(path, false)
}

func (s *badgerStore) Scan() (Cursor, error) {
	txn := s.db.NewTransaction(false)
	return &badgerCursor{txn: txn, iter: txn.NewIterator(badger.DefaultIteratorOptions)}, nil
}

func (s *badgerStore) Set(key, value []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
}

func (s *badgerStore) Close() error { return s.db.Close() }

type badgerCursor struct {
	txn  *badger.Txn
	iter *badger.Iterator

	started bool
	val     []byte
	err     error
}

func (c *badgerCursor) Next() bool {
	if c.err != nil {
		return false
	}

	if !c.started {
		c.iter.Rewind()
		c.started = true
	} else {
		c.iter.Next()
	}
	if !c.iter.Valid() {
		return false
	}

	val, err := c.iter.Item().Value()
	if err != nil {
		c.err = err
		return false
	}
	c.val = val
	return true
}

func (c *badgerCursor) Key() []byte   { return c.iter.Item().Key() }
func (c *badgerCursor) Value() []byte { return c.val }
func (c *badgerCursor) Err() error    { return c.err }

func (c *badgerCursor) Release() {
	c.iter.Close()
	c.txn.Discard()
}
