package table

import "errors"

var magic = []byte{87, 12, 201, 166, 58, 143, 77, 240}

const (
	blockNoCompression     = 0
	blockSnappyCompression = 1
)

// ErrNotFound is returned by the reader when a key cannot be found.
var ErrNotFound = errors.New("table: not found")

var (
	errClosed         = errors.New("table: is closed")
	errBadMagic       = errors.New("table: bad magic byte sequence")
	errBadCompression = errors.New("table: bad compression codec")
	errCorrupted      = errors.New("table: corrupted block index")
	errReleased       = errors.New("table: iterator was released")
)

type blockInfo struct {
	MaxKey []byte // maximum key in the block
	Offset int64  // block offset position
}

// --------------------------------------------------------------------

// Compression is the compression codec
type Compression byte

func (c Compression) isValid() bool {
	return c >= SnappyCompression && c <= unknownCompression
}

// Supported compression codecs
const (
	SnappyCompression Compression = iota
	NoCompression
	unknownCompression
)

// The length of the longest common prefix of a and b.
func sharedPrefixLen(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}
