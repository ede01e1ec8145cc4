package postgres

// Folder folds a flat join result into one output record per group of
// contiguous rows sharing a key. It is the aggregation step behind queries of
// the form "parent LEFT JOIN children ORDER BY parent id": each scanned row
// is pushed, and when the key changes the finished accumulator is flushed to
// the output slice.
//
// Rows must arrive grouped by key (the query's ORDER BY provides this); the
// fold is a single linear pass with O(1) look-back and does not re-sort.
// Non-contiguous rows for the same key produce split records.
type Folder[K comparable, R, O any] struct {
	// Key extracts the grouping key from a row.
	Key func(R) K
	// Begin starts a new accumulator from the first row of a group.
	Begin func(R) O
	// Add folds a row into the current accumulator. It is called for every
	// row, including the one passed to Begin.
	Add func(*O, R)

	active  bool
	current K
	acc     O
	out     []O
}

// Push folds one row.
func (f *Folder[K, R, O]) Push(r R) {
	k := f.Key(r)
	if !f.active || k != f.current {
		f.flush()
		f.active = true
		f.current = k
		f.acc = f.Begin(r)
	}
	f.Add(&f.acc, r)
}

// Finish flushes the in-progress group and returns all folded records in
// input order. The result is never nil.
func (f *Folder[K, R, O]) Finish() []O {
	f.flush()
	f.active = false
	if f.out == nil {
		f.out = make([]O, 0)
	}
	return f.out
}

func (f *Folder[K, R, O]) flush() {
	if f.active {
		f.out = append(f.out, f.acc)
	}
}
