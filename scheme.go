package packstat

// Per-format layout constants. Every node carries a 4-byte record-count
// header; branch-capable formats add a single marker byte. Each record
// occupies a fixed number of pointer slots, and formats 2-5 append a
// branch-descriptor table of branchUnits[tag] units.
const (
	countHeaderSize = 4
	markerSize      = 1
	pointerSlots    = 5
)

// branchUnits is the number of branch-descriptor units each format
// appends per record. TagDirect and TagBranch0 carry none.
var branchUnits = [NumSchemeTags]int64{0, 0, 1, 2, 4, 6}

// Scheme is a candidate physical node encoding. The two fields are
// fixed properties of the layout, not derived from observed data:
// PointerWidth is the width of a single pointer slot and BranchUnit
// the byte cost of one branch-descriptor unit.
type Scheme struct {
	Name         string
	PointerWidth int64
	BranchUnit   int64
}

// The two candidate encodings. Scheme A stores 8-byte pointers and flat
// branch descriptors of three 11-byte slots per unit; scheme B widens
// pointers to 9 bytes but packs each branch unit as a 4x2x3 grid of
// 8-byte fields.
var (
	SchemeA = Scheme{Name: "A", PointerWidth: 8, BranchUnit: 3 * 11}
	SchemeB = Scheme{Name: "B", PointerWidth: 9, BranchUnit: 4 * 2 * 3 * 8}
)

// Estimate projects the total on-disk size of the tallied node
// population under the scheme. Only formats 0-5 are modelled; TagWide
// counts do not contribute (see WriteReport).
func (s Scheme) Estimate(t Tally) int64 {
	var size int64
	for tag := Tag(0); tag < NumSchemeTags; tag++ {
		size += countHeaderSize
		if tag != TagDirect {
			size += markerSize
		}

		n := t.Count(tag)
		size += n * s.PointerWidth * pointerSlots
		size += n * branchUnits[tag] * s.BranchUnit
	}
	return size
}

// Ratio returns the size of the tallied population under scheme B
// relative to scheme A.
func Ratio(t Tally) float64 {
	return float64(SchemeB.Estimate(t)) / float64(SchemeA.Estimate(t))
}
