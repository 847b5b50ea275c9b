// Package listmatrix implements the doubly-linked sparse matrix used for
// pivoting and rank-revealing transformations (spec §4.2, component C2).
//
// Unlike the teacher's pointer-based slices, nonzeros are linked by arena
// index into a single []nonzero slice (the "index-linked list inside a
// Vec<Entry> arena" alternative spec.md's own design notes recommend for a
// systems-language rewrits of the original pointer-linked C structure).
// Growth is geometric; because entries only ever reference each other by
// index, growing the arena never invalidates a live index, so the
// "memory-shift delta" the original C implementation must thread back to
// in-flight iterators collapses to zero in Go: listeners registered with
// RegisterRebaseListener are always called with a delta of 0.
package listmatrix

import (
	"errors"
	"math/big"

	"github.com/discopt/seymour-go/spmatrix"
)

// Sentinel errors for listmatrix operations.
var (
	// ErrZeroPivot is returned when a pivot is attempted on a zero cell.
	ErrZeroPivot = errors.New("listmatrix: pivot value is zero")
	ErrIndexOutOfBounds = errors.New("listmatrix: index out of bounds")
)

// Characteristic selects the arithmetic a ListMatrix's Pivot operates
// under: GF(2), GF(3), or "regular" (abort on non-{-1,0,+1} results).
type Characteristic int

const (
	// GF2 reduces all arithmetic modulo 2.
	GF2 Characteristic = iota
	// GF3 reduces all arithmetic modulo 3.
	GF3
	// Regular performs integer pivoting and aborts (returning a
	// determinant certificate) the moment an intermediate value leaves
	// {-1, 0, +1}.
	Regular
)

const freeSlot = -1

// nonzero is one stored cell, linked into both its row's and its column's
// doubly-linked list via arena indices (-1 meaning "no link").
type nonzero struct {
	row, col           int
	value              int64
	rowPrev, rowNext   int
	colPrev, colNext   int
}

// header is a sentinel for one row or column: degree plus the indices of
// the first/last live nonzero in that row/column.
type header struct {
	degree     int
	head, tail int // arena indices, -1 if empty
}

// ListMatrix is the doubly-linked sparse matrix of spec §3/§4.2.
type ListMatrix struct {
	numRows, numCols int
	rowHeaders       []header
	colHeaders       []header

	entries []nonzero
	free    []int // recycled arena slots

	rebaseListeners []func(delta int)
}

// NewListMatrix builds an empty numRows x numCols list matrix with room
// for capacityHint nonzeros (0 is fine; it grows on demand).
func NewListMatrix(numRows, numCols, capacityHint int) *ListMatrix {
	lm := &ListMatrix{
		numRows:    numRows,
		numCols:    numCols,
		rowHeaders: make([]header, numRows),
		colHeaders: make([]header, numCols),
	}
	for i := range lm.rowHeaders {
		lm.rowHeaders[i] = header{head: -1, tail: -1}
	}
	for j := range lm.colHeaders {
		lm.colHeaders[j] = header{head: -1, tail: -1}
	}
	if capacityHint > 0 {
		lm.entries = make([]nonzero, 0, capacityHint)
	}
	return lm
}

// FromMatrix builds a ListMatrix holding the same entries as m.
func FromMatrix(m *spmatrix.Matrix) (*ListMatrix, error) {
	lm := NewListMatrix(m.Rows(), m.Cols(), m.NNZ())
	for i := 0; i < m.Rows(); i++ {
		rs, err := m.RowSlice(i)
		if err != nil {
			return nil, err
		}
		for _, e := range rs {
			if err := lm.Insert(i, int(e.Index), e.Value); err != nil {
				return nil, err
			}
		}
	}
	return lm, nil
}

// NumRows returns the row count.
func (lm *ListMatrix) NumRows() int { return lm.numRows }

// NumCols returns the column count.
func (lm *ListMatrix) NumCols() int { return lm.numCols }

// RowDegree returns the number of nonzeros in row i.
func (lm *ListMatrix) RowDegree(i int) int { return lm.rowHeaders[i].degree }

// ColDegree returns the number of nonzeros in column j.
func (lm *ListMatrix) ColDegree(j int) int { return lm.colHeaders[j].degree }

// RegisterRebaseListener records fn to be invoked whenever the arena grows
// with the shift delta applied to arena indices (always 0 in this
// implementation, since growth is append-only and never relocates
// existing slots — see the package doc).
func (lm *ListMatrix) RegisterRebaseListener(fn func(delta int)) {
	lm.rebaseListeners = append(lm.rebaseListeners, fn)
}

// grow doubles entries' capacity when the free list is empty.
func (lm *ListMatrix) grow() {
	cur := cap(lm.entries)
	next := cur * 2
	if next < 4 {
		next = 4
	}
	grown := make([]nonzero, len(lm.entries), next)
	copy(grown, lm.entries)
	lm.entries = grown
	for _, fn := range lm.rebaseListeners {
		fn(0)
	}
}

func (lm *ListMatrix) allocSlot() int {
	if n := len(lm.free); n > 0 {
		idx := lm.free[n-1]
		lm.free = lm.free[:n-1]
		return idx
	}
	if len(lm.entries) == cap(lm.entries) {
		lm.grow()
	}
	lm.entries = append(lm.entries, nonzero{})
	return len(lm.entries) - 1
}

// Insert adds a nonzero at (row, col) with the given value in O(1)
// amortised time, appending to the tail of both the row's and the
// column's linked list.
func (lm *ListMatrix) Insert(row, col int, value int64) error {
	if row < 0 || row >= lm.numRows || col < 0 || col >= lm.numCols {
		return ErrIndexOutOfBounds
	}
	idx := lm.allocSlot()
	lm.entries[idx] = nonzero{row: row, col: col, value: value, rowPrev: -1, rowNext: -1, colPrev: -1, colNext: -1}

	rh := &lm.rowHeaders[row]
	if rh.tail == -1 {
		rh.head, rh.tail = idx, idx
	} else {
		lm.entries[rh.tail].rowNext = idx
		lm.entries[idx].rowPrev = rh.tail
		rh.tail = idx
	}
	rh.degree++

	ch := &lm.colHeaders[col]
	if ch.tail == -1 {
		ch.head, ch.tail = idx, idx
	} else {
		lm.entries[ch.tail].colNext = idx
		lm.entries[idx].colPrev = ch.tail
		ch.tail = idx
	}
	ch.degree++

	return nil
}

// Unlink removes entry idx from both its row's and column's linked list
// and returns its arena slot to the free list, in O(1).
func (lm *ListMatrix) Unlink(idx int) {
	e := lm.entries[idx]

	rh := &lm.rowHeaders[e.row]
	if e.rowPrev == -1 {
		rh.head = e.rowNext
	} else {
		lm.entries[e.rowPrev].rowNext = e.rowNext
	}
	if e.rowNext == -1 {
		rh.tail = e.rowPrev
	} else {
		lm.entries[e.rowNext].rowPrev = e.rowPrev
	}
	rh.degree--

	ch := &lm.colHeaders[e.col]
	if e.colPrev == -1 {
		ch.head = e.colNext
	} else {
		lm.entries[e.colPrev].colNext = e.colNext
	}
	if e.colNext == -1 {
		ch.tail = e.colPrev
	} else {
		lm.entries[e.colNext].colPrev = e.colPrev
	}
	ch.degree--

	lm.entries[idx] = nonzero{rowPrev: freeSlot}
	lm.free = append(lm.free, idx)
}

// At returns the value stored at (row, col), or (0, false) if empty.
func (lm *ListMatrix) At(row, col int) (int64, bool) {
	idx := lm.Find(row, col)
	if idx == -1 {
		return 0, false
	}
	return lm.entries[idx].value, true
}

// Find returns the arena index of the nonzero at (row, col), or -1.
func (lm *ListMatrix) Find(row, col int) int {
	for idx := lm.rowHeaders[row].head; idx != -1; idx = lm.entries[idx].rowNext {
		if lm.entries[idx].col == col {
			return idx
		}
	}
	return -1
}

// Set writes value at (row, col): inserting if absent, updating if
// present, or unlinking if value becomes 0.
func (lm *ListMatrix) Set(row, col int, value int64) error {
	idx := lm.Find(row, col)
	if value == 0 {
		if idx != -1 {
			lm.Unlink(idx)
		}
		return nil
	}
	if idx != -1 {
		lm.entries[idx].value = value
		return nil
	}
	return lm.Insert(row, col, value)
}

// WalkRow calls fn(col, value) for every nonzero in row i, in column order
// as maintained by the linked list (insertion order, not necessarily
// column-sorted — callers that need sorted output should sort separately).
func (lm *ListMatrix) WalkRow(i int, fn func(col int, value int64)) {
	for idx := lm.rowHeaders[i].head; idx != -1; idx = lm.entries[idx].rowNext {
		fn(lm.entries[idx].col, lm.entries[idx].value)
	}
}

// WalkCol calls fn(row, value) for every nonzero in column j.
func (lm *ListMatrix) WalkCol(j int, fn func(row int, value int64)) {
	for idx := lm.colHeaders[j].head; idx != -1; idx = lm.entries[idx].colNext {
		fn(lm.entries[idx].row, lm.entries[idx].value)
	}
}

// ToMatrix exports the current contents back to a row-sliced spmatrix
// Matrix, sorting each row by column. domain is the declared value domain
// of the result (callers know whether they are in GF(2)/ternary/integer
// mode; ToMatrix does not infer it from the stored values).
func (lm *ListMatrix) ToMatrix(domain spmatrix.Domain) (*spmatrix.Matrix, error) {
	b := spmatrix.NewBuilder(lm.numRows, lm.numCols, domain)
	for i := 0; i < lm.numRows; i++ {
		var err error
		lm.WalkRow(i, func(col int, value int64) {
			if err == nil {
				err = b.Add(i, col, value)
			}
		})
		if err != nil {
			return nil, err
		}
	}
	return b.Build()
}

// bigFromInt64 converts v to a *big.Int. Pivot has no arbitrary-precision
// path, and nothing in this package currently calls this helper.
func bigFromInt64(v int64) *big.Int { return big.NewInt(v) }
