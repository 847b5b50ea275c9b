package spmatrix

import "sort"

// Builder accumulates (row, col, value) triples in any order and produces
// a canonicalised Matrix. Used by ioformat's sparse-text-format reader,
// where entries arrive in file order rather than row-sorted order.
type Builder struct {
	rows, cols int
	domain     Domain
	perRow     [][]Entry
	seen       map[[2]int]bool
}

// NewBuilder starts a Builder for an rows x cols matrix over domain.
func NewBuilder(rows, cols int, domain Domain) *Builder {
	return &Builder{
		rows:   rows,
		cols:   cols,
		domain: domain,
		perRow: make([][]Entry, rows),
		seen:   make(map[[2]int]bool),
	}
}

// Add records one nonzero at (row, col) with the given value. Returns
// ErrDuplicateEntry if (row, col) was already added, ErrIndexOutOfBounds
// if out of range, or ErrBadValue if value is outside the domain.
func (b *Builder) Add(row, col int, value int64) error {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		return ErrIndexOutOfBounds
	}
	key := [2]int{row, col}
	if b.seen[key] {
		return ErrDuplicateEntry
	}
	if err := validateValue(b.domain, value); err != nil {
		return err
	}
	b.seen[key] = true
	b.perRow[row] = append(b.perRow[row], Entry{Index: int64(col), Value: value})
	return nil
}

// Build sorts each row by column and returns the finished Matrix.
func (b *Builder) Build() (*Matrix, error) {
	for _, row := range b.perRow {
		sort.Slice(row, func(a, c int) bool { return row[a].Index < row[c].Index })
	}
	return BuildFromRows(b.rows, b.cols, b.domain, b.perRow)
}
