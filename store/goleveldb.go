package store

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	"github.com/syndtr/goleveldb/leveldb/opt"
)

// levelStore wraps a LevelDB directory. Unlike the table-file backends
// it accepts writes in any key order.
type levelStore struct {
	db *leveldb.DB
}

func openGoLevelDB(path string, readOnly bool) (*levelStore, error) {
	var o *opt.Options
	if readOnly {
		o = &opt.Options{ReadOnly: true, ErrorIfMissing: true}
	}

	db, err := leveldb.OpenFile(path, o)
	if err != nil {
		return nil, &UnavailableError{Path: path, Err: err}
	}
	return &levelStore{db: db}, nil
}

func (s *levelStore) Scan() (Cursor, error) {
	return &levelCursor{iter: s.db.NewIterator(nil, nil)}, nil
}

func (s *levelStore) Set(key, value []byte) error { return s.db.Put(key, value, nil) }
func (s *levelStore) Close() error                { return s.db.Close() }

type levelCursor struct {
	iter iterator.Iterator
}

func (c *levelCursor) Next() bool    { return c.iter.Next() }
func (c *levelCursor) Key() []byte   { return c.iter.Key() }
func (c *levelCursor) Value() []byte { return c.iter.Value() }
func (c *levelCursor) Err() error    { return c.iter.Error() }
func (c *levelCursor) Release()      { c.iter.Release() }
