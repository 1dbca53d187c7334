package store

// CopyOptions configure a bulk copy.
type CopyOptions struct {
	// ProgressEvery is the number of records between OnProgress calls.
	// Default: 100000.
	ProgressEvery int64

	// OnProgress, if set, is invoked with the number of records copied
	// so far, every ProgressEvery records.
	OnProgress func(copied int64)
}

func (o *CopyOptions) norm() *CopyOptions {
	var oo CopyOptions
	if o != nil {
		oo = *o
	}

	if oo.ProgressEvery < 1 {
		oo.ProgressEvery = 100000
	}

	return &oo
}

// Copy duplicates every record of src into dst and returns the number
// of records copied. The destination is owned by the caller and must
// be closed separately to flush it.
func Copy(dst Writable, src Store, o *CopyOptions) (int64, error) {
	oo := o.norm()

	cur, err := src.Scan()
	if err != nil {
		return 0, err
	}
	defer cur.Release()

	var copied int64
	for cur.Next() {
		if err := dst.Set(cur.Key(), cur.Value()); err != nil {
			return copied, err
		}

		if copied++; copied%oo.ProgressEvery == 0 && oo.OnProgress != nil {
			oo.OnProgress(copied)
		}
	}
	if err := cur.Err(); err != nil {
		return copied, err
	}
	return copied, nil
}
