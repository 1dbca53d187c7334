package store

import (
	"os"

	wcdb "github.com/alldroll/cdb"
	rcdb "github.com/colinmarc/cdb"
)

// cdbStore reads a constant database (.cdb) file. The cursor yields
// records in file order rather than key order; profiling is
// order-independent, but copying into an ordered table backend will be
// rejected by the target.
type cdbStore struct {
	db *rcdb.CDB
}

func openCDB(path string) (*cdbStore, error) {
	db, err := rcdb.Open(path)
	if err != nil {
		return nil, &UnavailableError{Path: path, Err: err}
	}
	return &cdbStore{db: db}, nil
}

func (s *cdbStore) Scan() (Cursor, error) {
	return &cdbCursor{iter: s.db.Iter()}, nil
}

func (s *cdbStore) Close() error { return s.db.Close() }

type cdbCursor struct {
	iter *rcdb.Iterator
}

func (c *cdbCursor) Next() bool    { return c.iter.Next() }
func (c *cdbCursor) Key() []byte   { return c.iter.Key() }
func (c *cdbCursor) Value() []byte { return c.iter.Value() }
func (c *cdbCursor) Err() error    { return c.iter.Err() }
func (c *cdbCursor) Release()      {}

// cdbWriter streams records into a constant database file. Any key
// order is accepted.
type cdbWriter struct {
	f *os.File
	w wcdb.Writer
}

func createCDB(path string) (*cdbWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, &UnavailableError{Path: path, Err: err}
	}

	w, err := wcdb.New().GetWriter(f)
	if err != nil {
		_ = f.Close()
		return nil, &UnavailableError{Path: path, Err: err}
	}
	return &cdbWriter{f: f, w: w}, nil
}

func (s *cdbWriter) Scan() (Cursor, error)       { return nil, errScanWhileWriting }
func (s *cdbWriter) Set(key, value []byte) error { return s.w.Put(key, value) }

func (s *cdbWriter) Close() error {
	if err := s.w.Close(); err != nil {
		_ = s.f.Close()
		return err
	}
	return s.f.Close()
}
