package store

import (
	"os"

	"github.com/golang/leveldb/db"
	leveldb "github.com/golang/leveldb/table"
)

// ldbTableStore reads a single LevelDB table (.ldb / .sst) file.
type ldbTableStore struct {
	r *leveldb.Reader
}

func openLDBTable(path string) (*ldbTableStore, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &UnavailableError{Path: path, Err: err}
	}
	return &ldbTableStore{r: leveldb.NewReader(f, nil)}, nil
}

func (s *ldbTableStore) Scan() (Cursor, error) {
	return &ldbTableCursor{iter: s.r.Find(nil, nil)}, nil
}

func (s *ldbTableStore) Close() error {
	// the reader owns and closes the underlying file
	return s.r.Close()
}

type ldbTableCursor struct {
	iter db.Iterator
	err  error
}

func (c *ldbTableCursor) Next() bool {
	if c.err != nil {
		return false
	}
	return c.iter.Next()
}

func (c *ldbTableCursor) Key() []byte   { return c.iter.Key() }
func (c *ldbTableCursor) Value() []byte { return c.iter.Value() }
func (c *ldbTableCursor) Err() error    { return c.err }

func (c *ldbTableCursor) Release() {
	if err := c.iter.Close(); err != nil && c.err == nil {
		c.err = err
	}
}

// ldbTableWriter writes a single LevelDB table file. Keys must be
// appended in strictly increasing order.
type ldbTableWriter struct {
	w *leveldb.Writer
}

func createLDBTable(path string) (*ldbTableWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, &UnavailableError{Path: path, Err: err}
	}
	return &ldbTableWriter{w: leveldb.NewWriter(f, nil)}, nil
}

func (s *ldbTableWriter) Scan() (Cursor, error)       { return nil, errScanWhileWriting }
func (s *ldbTableWriter) Set(key, value []byte) error { return s.w.Set(key, value, nil) }

func (s *ldbTableWriter) Close() error {
	// the writer owns and closes the underlying file
	return s.w.Close()
}
