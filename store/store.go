// Package store provides a uniform, read-mostly interface over the
// concrete key-value store formats a node store may live in. Reads are
// full ordered scans; the writable extension exists for the copy and
// generator tools.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var errScanWhileWriting = errors.New("store: cannot scan a store opened for writing")

// UnavailableError is returned when a store cannot be opened.
type UnavailableError struct {
	Path string
	Err  error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("store: %s is unavailable: %v", e.Path, e.Err)
}

// Store is a handle to an opened store.
type Store interface {
	// Scan returns a cursor over all records of the store. The cursor
	// is forward-only and visits every record exactly once; stores with
	// sorted backends yield records in key order.
	Scan() (Cursor, error)
	// Close closes the store.
	Close() error
}

// Writable is a store that accepts new records. Backends built on
// sorted table files require keys to arrive in strictly increasing
// order; directory backends accept any order.
type Writable interface {
	Store

	// Set stores a single record.
	Set(key, value []byte) error
}

// Cursor iterates over the records of a store. Key and Value return
// temporary buffers which must be copied if used beyond the next
// cursor move.
type Cursor interface {
	Next() bool
	Key() []byte
	Value() []byte
	Err() error
	Release()
}

// Open opens the store at path read-only. The backend is derived from
// the path shape: directories are treated as LevelDB stores, or as
// Badger stores when named *.badger; files are dispatched on their
// extension (.snt native tables, .ldb leveldb table files, .cdb
// constant databases).
func Open(path string) (Store, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, &UnavailableError{Path: path, Err: err}
	}

	if fi.IsDir() {
		if strings.HasSuffix(filepath.Base(path), ".badger") {
			return openBadger(path, true)
		}
		return openGoLevelDB(path, true)
	}

	switch filepath.Ext(path) {
	case ".snt":
		return openTable(path)
	case ".ldb", ".sst":
		return openLDBTable(path)
	case ".cdb":
		return openCDB(path)
	}
	return nil, &UnavailableError{Path: path, Err: errors.New("unknown store format")}
}

// Create creates (or opens for writing) the store at path, dispatching
// on the path shape like Open. Paths without a known file extension
// become LevelDB directories.
func Create(path string) (Writable, error) {
	switch filepath.Ext(path) {
	case ".snt":
		return createTable(path)
	case ".ldb", ".sst":
		return createLDBTable(path)
	case ".cdb":
		return createCDB(path)
	case ".badger":
		return createBadger(path)
	}
	w, err := openGoLevelDB(path, false)
	if err != nil {
		return nil, err
	}
	return w, nil
}
