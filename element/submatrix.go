package element

import (
	"errors"
	"sort"
)

// ErrNoSuchRow is returned by Zoom when an inner row index is not listed
// in the reference selector.
var ErrNoSuchRow = errors.New("element: no such row in reference selector")

// ErrNoSuchColumn is returned by Zoom when an inner column index is not
// listed in the reference selector.
var ErrNoSuchColumn = errors.New("element: no such column in reference selector")

// Submatrix selects a set of rows and a set of columns (0-based indices)
// into some reference matrix. The two index sequences are kept strictly
// increasing once Sort has been called, but callers may build one entry
// at a time in arbitrary order first.
type Submatrix struct {
	Rows    []int
	Columns []int
}

// NewSubmatrix builds a Submatrix from copies of rows and columns.
func NewSubmatrix(rows, columns []int) *Submatrix {
	s := &Submatrix{
		Rows:    append([]int(nil), rows...),
		Columns: append([]int(nil), columns...),
	}
	return s
}

// Transpose returns a new Submatrix with rows and columns swapped — the
// selector you would use against the reference matrix's transpose.
func (s *Submatrix) Transpose() *Submatrix {
	return &Submatrix{
		Rows:    append([]int(nil), s.Columns...),
		Columns: append([]int(nil), s.Rows...),
	}
}

// Sort canonicalises both index sequences in place (ascending, no
// duplicates assumed already enforced by the caller).
func (s *Submatrix) Sort() {
	sort.Ints(s.Rows)
	sort.Ints(s.Columns)
}

// IsSorted reports whether both sequences are already strictly increasing.
func (s *Submatrix) IsSorted() bool {
	return isStrictlyIncreasing(s.Rows) && isStrictlyIncreasing(s.Columns)
}

func isStrictlyIncreasing(xs []int) bool {
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return false
		}
	}
	return true
}

// Zoom maps an inner submatrix (expressed in this Submatrix's own index
// space) through this Submatrix as a reference, producing the equivalent
// selector into the grandparent matrix. It fails with ErrNoSuchRow /
// ErrNoSuchColumn if an inner index falls outside [0, len(ref)).
func (s *Submatrix) Zoom(inner *Submatrix) (*Submatrix, error) {
	rows := make([]int, len(inner.Rows))
	for i, r := range inner.Rows {
		if r < 0 || r >= len(s.Rows) {
			return nil, ErrNoSuchRow
		}
		rows[i] = s.Rows[r]
	}
	cols := make([]int, len(inner.Columns))
	for i, c := range inner.Columns {
		if c < 0 || c >= len(s.Columns) {
			return nil, ErrNoSuchColumn
		}
		cols[i] = s.Columns[c]
	}
	return &Submatrix{Rows: rows, Columns: cols}, nil
}

// MinorTag classifies the certifying submatrix attached to a minor record.
type MinorTag int

const (
	// TagDeterminant marks a 2x2 (or larger, pivoted-down) submatrix whose
	// determinant outside {-1,0,+1} certifies irregularity directly.
	TagDeterminant MinorTag = iota
	// TagF7 marks the Fano matroid representation matrix.
	TagF7
	// TagF7Star marks the dual Fano matroid representation matrix.
	TagF7Star
	// TagK5 marks a K5 incidence-type minor (non-cographic certificate).
	TagK5
	// TagK5Star marks the dual of TagK5 (non-graphic certificate).
	TagK5Star
	// TagK33 marks a K3,3 incidence-type minor (non-cographic certificate).
	TagK33
	// TagK33Star marks the dual of TagK33 (non-graphic certificate).
	TagK33Star
)

// String names the tag for diagnostics.
func (t MinorTag) String() string {
	switch t {
	case TagDeterminant:
		return "determinant"
	case TagF7:
		return "F7"
	case TagF7Star:
		return "F7*"
	case TagK5:
		return "K5"
	case TagK5Star:
		return "K5*"
	case TagK33:
		return "K3,3"
	case TagK33Star:
		return "K3,3*"
	default:
		return "unknown"
	}
}

// Pivot is a single (row, column) pivot coordinate, expressed in the index
// space of the matrix at the time the pivot was taken.
type Pivot struct {
	Row    int
	Column int
}

// Minor is a sequence of pivots plus a remaining-submatrix selector (in the
// post-pivot matrix's index space) and a certifying tag.
type Minor struct {
	Pivots    []Pivot
	Remaining *Submatrix
	Tag       MinorTag
}

// NewMinor builds a Minor, copying the pivot sequence.
func NewMinor(tag MinorTag, pivots []Pivot, remaining *Submatrix) *Minor {
	return &Minor{
		Pivots:    append([]Pivot(nil), pivots...),
		Remaining: remaining,
		Tag:       tag,
	}
}
