package packstat

import (
	"errors"
	"fmt"
)

// NumTags is the number of known pack formats.
const NumTags = 7

// NumSchemeTags is the number of pack formats covered by the candidate
// encoding schemes. The remaining tag (6) is tallied and reported but
// carries no scheme cost model.
const NumSchemeTags = 6

var (
	errEmptyValue = errors.New("packstat: empty value")
)

// Tag identifies the pack format of a stored node value.
type Tag uint8

func (t Tag) isValid() bool { return t < NumTags }

// Known pack formats. TagDirect marks a direct-pointer node whose value
// is exactly eight bytes and carries no branch metadata; the others are
// branch-capable layouts identified by their leading marker byte.
const (
	TagDirect Tag = iota
	TagBranch0
	TagBranch1
	TagBranch2
	TagBranch4
	TagBranch6
	TagWide
)

// UnknownFormatError is returned when a value cannot be attributed to
// any known pack format.
type UnknownFormatError byte

func (e UnknownFormatError) Error() string {
	return fmt.Sprintf("packstat: unknown pack format %d", byte(e))
}

// Classify determines the pack format of a raw node value.
//
// Values of exactly eight bytes are direct pointers (TagDirect),
// independent of their content. For any other length the first byte is
// the format marker and must be in [0, 6]; other bytes are payload and
// are not inspected.
func Classify(value []byte) (Tag, error) {
	if len(value) == 8 {
		return TagDirect, nil
	}
	if len(value) == 0 {
		return 0, errEmptyValue
	}

	tag := Tag(value[0])
	if !tag.isValid() {
		return 0, UnknownFormatError(value[0])
	}
	return tag, nil
}
