package table

import (
	"bytes"
	"encoding/binary"
	"io"
	"sort"
	"sync"

	"github.com/golang/snappy"
)

// Reader instances can seek and iterate across data in tables.
type Reader struct {
	r io.ReaderAt

	index     []blockInfo
	maxOffset int64
}

// NewReader opens a reader.
func NewReader(r io.ReaderAt, size int64) (*Reader, error) {
	footerOffset := size - 16
	if footerOffset < 0 {
		return nil, errBadMagic
	}

	// read and parse footer
	tmp := make([]byte, 16)
	if _, err := r.ReadAt(tmp, footerOffset); err != nil {
		return nil, err
	}
	if !bytes.Equal(tmp[8:16], magic) {
		return nil, errBadMagic
	}
	indexOffset := int64(binary.LittleEndian.Uint64(tmp[:8]))
	if indexOffset > footerOffset {
		return nil, errCorrupted
	}

	// read the block index
	raw := make([]byte, footerOffset-indexOffset)
	if _, err := r.ReadAt(raw, indexOffset); err != nil {
		return nil, err
	}

	// parse index entries
	var index []blockInfo
	var offset int64

	for pos := 0; pos < len(raw); {
		klen, n := binary.Uvarint(raw[pos:])
		if n <= 0 || pos+n+int(klen) > len(raw) {
			return nil, errCorrupted
		}
		pos += n

		key := raw[pos : pos+int(klen) : pos+int(klen)]
		pos += int(klen)

		delta, n := binary.Uvarint(raw[pos:])
		if n <= 0 {
			return nil, errCorrupted
		}
		pos += n

		offset += int64(delta)
		index = append(index, blockInfo{MaxKey: key, Offset: offset})
	}

	return &Reader{
		r: r,

		index:     index, // block offsets
		maxOffset: indexOffset,
	}, nil
}

// NumBlocks returns the number of stored blocks.
func (r *Reader) NumBlocks() int {
	return len(r.index)
}

// Append retrieves a single value for a key. Unlike Get it doesn't
// allocate a new byte slice but appends to dst instead.
// It may return an ErrNotFound error.
func (r *Reader) Append(dst []byte, key []byte) ([]byte, error) {
	iter, err := r.Seek(key)
	if err != nil {
		return dst, err
	}
	defer iter.Release()

	if !iter.Next() || !bytes.Equal(iter.Key(), key) {
		return dst, ErrNotFound
	}
	return append(dst, iter.Value()...), nil
}

// Get is a shortcut for Append(nil, key).
// It may return an ErrNotFound error.
func (r *Reader) Get(key []byte) ([]byte, error) {
	return r.Append(nil, key)
}

// Seek returns an iterator starting at the position >= key. A nil key
// starts at the first entry of the table.
func (r *Reader) Seek(key []byte) (*Iterator, error) {
	b, err := r.SeekBlock(key)
	if err != nil {
		return nil, err
	}

	s := b.SeekSection(key)
	s.Seek(key)
	return &Iterator{r: r, b: b, s: s}, nil
}

// GetBlock returns a reader for the n-th block.
func (r *Reader) GetBlock(bpos int) (*BlockReader, error) {
	if len(r.index) == 0 {
		return &BlockReader{}, nil
	}
	if bpos < 0 {
		bpos = 0
	}
	if bpos >= len(r.index) {
		return &BlockReader{
			bpos: len(r.index),
		}, nil
	}
	return r.readBlock(bpos)
}

// SeekBlock seeks the block containing the key.
func (r *Reader) SeekBlock(key []byte) (*BlockReader, error) {
	bpos := sort.Search(len(r.index), func(i int) bool {
		return bytes.Compare(r.index[i].MaxKey, key) >= 0
	})
	return r.GetBlock(bpos)
}

func (r *Reader) readBlock(bpos int) (*BlockReader, error) {
	min := r.index[bpos].Offset
	max := r.maxOffset
	if next := bpos + 1; next < len(r.index) {
		max = r.index[next].Offset
	}

	raw := fetchBuffer(int(max - min))
	if _, err := r.r.ReadAt(raw, min); err != nil {
		releaseBuffer(raw)
		return nil, err
	}

	var block []byte
	switch cBitPos := len(raw) - 1; raw[cBitPos] {
	case blockNoCompression:
		block = raw[:cBitPos]
	case blockSnappyCompression:
		defer releaseBuffer(raw)

		sz, err := snappy.DecodedLen(raw[:cBitPos])
		if err != nil {
			return nil, err
		}

		plain := fetchBuffer(sz)
		if block, err = snappy.Decode(plain, raw[:cBitPos]); err != nil {
			releaseBuffer(plain)
			return nil, err
		}
	default:
		releaseBuffer(raw)
		return nil, errBadCompression
	}

	return &BlockReader{
		block:  block,
		bpos:   bpos,
		scnt:   int(binary.LittleEndian.Uint32(block[len(block)-4:])),
		maxKey: r.index[bpos].MaxKey,
	}, nil
}

// --------------------------------------------------------------------

// BlockReader reads a single block.
type BlockReader struct {
	block  []byte
	bpos   int // the current block position
	scnt   int // the section count
	maxKey []byte
}

// NumSections returns the number of sections in this block.
func (r *BlockReader) NumSections() int { return r.scnt }

// Pos returns the index position the current block within the table.
func (r *BlockReader) Pos() int { return r.bpos }

// GetSection gets a single section.
func (r *BlockReader) GetSection(spos int) *SectionReader {
	if spos < 0 {
		spos = 0
	}
	if spos >= r.scnt {
		return &SectionReader{spos: r.scnt}
	}

	min := r.sectionOffset(spos)
	max := r.sectionOffset(spos + 1)
	return &SectionReader{section: r.block[min:max], spos: spos}
}

// SeekSection seeks the section for a key.
func (r *BlockReader) SeekSection(key []byte) *SectionReader {
	if bytes.Compare(key, r.maxKey) > 0 {
		return r.GetSection(r.scnt)
	}

	spos := sort.Search(r.scnt, func(i int) bool {
		return bytes.Compare(r.sectionFirstKey(i), key) > 0
	}) - 1
	return r.GetSection(spos)
}

// Release releases the block reader and frees up resources. The reader must not be used
// after this method is called.
func (r *BlockReader) Release() { releaseBuffer(r.block) }

// The first key of the section, always stored in full.
func (r *BlockReader) sectionFirstKey(spos int) []byte {
	pos := r.sectionOffset(spos)

	_, n := binary.Uvarint(r.block[pos:]) // shared, always 0
	pos += n
	unshared, n := binary.Uvarint(r.block[pos:])
	pos += n
	_, n = binary.Uvarint(r.block[pos:]) // value length
	pos += n

	return r.block[pos : pos+int(unshared)]
}

// The starting offset of the section within the block.
func (r *BlockReader) sectionOffset(spos int) int {
	if spos < 1 {
		return 0
	} else if spos >= r.scnt {
		return len(r.block) - r.scnt*4
	} else {
		nn := len(r.block) - r.scnt*4 + (spos-1)*4
		return int(binary.LittleEndian.Uint32(r.block[nn:]))
	}
}

// SectionReader reads an individual section within a block.
type SectionReader struct {
	section []byte

	spos int // the section
	read int // bytes read

	key     []byte // current key
	val     []byte // current value
	pending bool   // current entry was decoded by Seek but not consumed
}

// Seek positions the cursor before the first key >= key.
func (r *SectionReader) Seek(key []byte) bool {
	for r.Next() {
		if bytes.Compare(r.key, key) >= 0 {
			r.pending = true
			return true
		}
	}
	return false
}

// Pos returns the index position the current section within the block.
func (r *SectionReader) Pos() int { return r.spos }

// Key returns the key of the current entry. Please note that keys
// are temporary buffers and must be copied if used beyond the next cursor move.
func (r *SectionReader) Key() []byte { return r.key }

// Value returns the value of the current entry. Please note that values
// are temporary buffers and must be copied if used beyond the next cursor move.
func (r *SectionReader) Value() []byte { return r.val }

// More returns true if more data can be read in the section.
func (r *SectionReader) More() bool { return r.pending || r.read < len(r.section) }

// Next advances the cursor to the next entry within the section and
// returns true if successful.
func (r *SectionReader) Next() bool {
	if r.pending {
		r.pending = false
		return true
	}
	if r.read >= len(r.section) {
		return false
	}

	shared, n := binary.Uvarint(r.section[r.read:])
	r.read += n
	unshared, n := binary.Uvarint(r.section[r.read:])
	r.read += n
	vlen, n := binary.Uvarint(r.section[r.read:])
	r.read += n

	r.key = append(r.key[:shared], r.section[r.read:r.read+int(unshared)]...)
	r.read += int(unshared)
	r.val = r.section[r.read : r.read+int(vlen)]
	r.read += int(vlen)

	return true
}

// --------------------------------------------------------------------

// Iterator is a convenience wrapper around BlockReader and SectionReader
// which can (forward-) iterate over keys across block and section boundaries.
type Iterator struct {
	r *Reader
	b *BlockReader
	s *SectionReader

	err error
}

// Key returns the key of the current entry. Please note that keys
// are temporary buffers and must be copied if used beyond the next cursor move.
func (i *Iterator) Key() []byte { return i.s.Key() }

// Value returns the value of the current entry. Please note that values
// are temporary buffers and must be copied if used beyond the next cursor move.
func (i *Iterator) Value() []byte { return i.s.Value() }

// More returns true if more data can be read.
func (i *Iterator) More() bool {
	if i.err != nil {
		return false
	}

	return i.s.More() || i.s.Pos()+1 < i.b.NumSections() || i.b.Pos()+1 < i.r.NumBlocks()
}

// Next advances the cursor to the next entry and returns true if successful.
func (i *Iterator) Next() bool {
	if i.err != nil {
		return false
	}

	// more entries in the section
	if i.s.More() {
		return i.s.Next()
	}

	// more sections in the block
	if n := i.s.Pos() + 1; n < i.b.NumSections() {
		i.s = i.b.GetSection(n)
		return i.s.Next()
	}

	// more blocks
	if n := i.b.Pos() + 1; n < i.r.NumBlocks() {
		b, err := i.r.GetBlock(n)
		if err != nil {
			i.err = err
			return false
		}
		i.b.Release()
		i.b = b
		i.s = b.GetSection(0)
		return i.s.Next()
	}

	return false
}

// Err exposes iterator errors, if any.
func (i *Iterator) Err() error {
	if i.err == errReleased {
		return nil
	}
	return i.err
}

// Release releases the iterator and frees up resources. The iterator must not be used
// after this method is called.
func (i *Iterator) Release() {
	i.b.Release()
	i.err = errReleased
}

// --------------------------------------------------------------------

var bufPool sync.Pool

func fetchBuffer(sz int) []byte {
	if v := bufPool.Get(); v != nil {
		if p := v.([]byte); sz <= cap(p) {
			return p[:sz]
		}
	}
	return make([]byte, sz)
}

func releaseBuffer(p []byte) {
	if cap(p) != 0 {
		bufPool.Put(p)
	}
}
