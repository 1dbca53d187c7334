package packstat

// Tally holds the number of observed nodes per pack format.
//
// Accumulation is associative and commutative: the same multiset of
// values produces the same tally in any order, and partial tallies can
// be combined with Merge.
type Tally [NumTags]int64

// Add records a single occurrence of a tag.
func (t *Tally) Add(tag Tag) { t[tag]++ }

// Count returns the number of occurrences recorded for a tag.
func (t Tally) Count(tag Tag) int64 { return t[tag] }

// Total returns the number of occurrences across all tags.
func (t Tally) Total() int64 {
	var n int64
	for _, c := range t {
		n += c
	}
	return n
}

// Merge combines two tallies.
func (t Tally) Merge(other Tally) Tally {
	for i, c := range other {
		t[i] += c
	}
	return t
}
