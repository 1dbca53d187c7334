package packstat

import (
	"fmt"
	"io"
)

// Cursor is the minimal scan surface the profiler consumes. It is
// satisfied by store.Cursor; releasing the cursor remains the caller's
// responsibility.
type Cursor interface {
	// Next advances to the next record and reports whether one is available.
	Next() bool
	// Value returns the value of the current record. The returned slice
	// is only valid until the next call to Next.
	Value() []byte
	// Err returns the error that terminated the scan, if any.
	Err() error
}

// ProfileOptions configure a profiling run.
type ProfileOptions struct {
	// ProgressEvery is the number of records between OnProgress calls.
	// Default: 50000.
	ProgressEvery int64

	// OnProgress, if set, is invoked with the number of records scanned
	// so far, every ProgressEvery records. It must not affect results.
	OnProgress func(scanned int64)
}

func (o *ProfileOptions) norm() *ProfileOptions {
	var oo ProfileOptions
	if o != nil {
		oo = *o
	}

	if oo.ProgressEvery < 1 {
		oo.ProgressEvery = 50000
	}

	return &oo
}

// Profile folds a full scan into a tally. It consumes the cursor to
// completion and fails on the first unclassifiable value or cursor
// error; no partial tally is returned.
func Profile(cur Cursor, o *ProfileOptions) (Tally, error) {
	oo := o.norm()

	var tally Tally
	var scanned int64

	for cur.Next() {
		tag, err := Classify(cur.Value())
		if err != nil {
			return Tally{}, err
		}
		tally.Add(tag)

		if scanned++; scanned%oo.ProgressEvery == 0 && oo.OnProgress != nil {
			oo.OnProgress(scanned)
		}
	}
	if err := cur.Err(); err != nil {
		return Tally{}, err
	}

	return tally, nil
}

// WriteReport renders the human-readable profile report: per-format
// node counts, the total number of unique positions, the projected
// sizes under both candidate schemes and their ratio. A non-zero
// TagWide count is called out explicitly since neither scheme models
// that layout.
func WriteReport(w io.Writer, t Tally) error {
	for tag := Tag(0); tag < NumTags; tag++ {
		if _, err := fmt.Fprintf(w, "Pack format %d: %d nodes\n", tag, t.Count(tag)); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "Unique positions: %d\n", t.Total()); err != nil {
		return err
	}

	estA := SchemeA.Estimate(t)
	estB := SchemeB.Estimate(t)
	if _, err := fmt.Fprintf(w, "Scheme A: %d bytes\n", estA); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Scheme B: %d bytes\n", estB); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "B/A ratio: %.4f\n", float64(estB)/float64(estA)); err != nil {
		return err
	}

	if n := t.Count(TagWide); n != 0 {
		if _, err := fmt.Fprintf(w, "Warning: %d nodes of pack format %d are excluded from both projections\n", n, TagWide); err != nil {
			return err
		}
	}
	return nil
}
