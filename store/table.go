package store

import (
	"os"

	"github.com/bsm/packstat/table"
)

// tableStore reads a native single-file table.
type tableStore struct {
	f *os.File
	r *table.Reader
}

func openTable(path string) (*tableStore, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &UnavailableError{Path: path, Err: err}
	}

	fi, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, &UnavailableError{Path: path, Err: err}
	}

	r, err := table.NewReader(f, fi.Size())
	if err != nil {
		_ = f.Close()
		return nil, &UnavailableError{Path: path, Err: err}
	}

	return &tableStore{f: f, r: r}, nil
}

func (s *tableStore) Scan() (Cursor, error) {
	iter, err := s.r.Seek(nil)
	if err != nil {
		return nil, err
	}
	return &tableCursor{iter: iter}, nil
}

func (s *tableStore) Close() error { return s.f.Close() }

type tableCursor struct {
	iter *table.Iterator
}

func (c *tableCursor) Next() bool    { return c.iter.Next() }
func (c *tableCursor) Key() []byte   { return c.iter.Key() }
func (c *tableCursor) Value() []byte { return c.iter.Value() }
func (c *tableCursor) Err() error    { return c.iter.Err() }
func (c *tableCursor) Release()      { c.iter.Release() }

// tableWriter writes a native single-file table. Keys must be appended
// in strictly increasing order.
type tableWriter struct {
	f *os.File
	w *table.Writer
}

func createTable(path string) (*tableWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, &UnavailableError{Path: path, Err: err}
	}
	return &tableWriter{f: f, w: table.NewWriter(f, nil)}, nil
}

func (s *tableWriter) Scan() (Cursor, error)       { return nil, errScanWhileWriting }
func (s *tableWriter) Set(key, value []byte) error { return s.w.Append(key, value) }

func (s *tableWriter) Close() error {
	if err := s.w.Close(); err != nil {
		_ = s.f.Close()
		return err
	}
	return s.f.Close()
}
