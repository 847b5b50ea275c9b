// Package separation implements the two-part row/column partition model
// of spec §3/§4.3 (component C3): per-row/column membership and rank-class
// flags, and the derived size counts used to validate a candidate 2- or
// 3-separation.
package separation

import "errors"

// ErrBadRank is returned by InitializeMatrix when rank is not 1 or 2.
var ErrBadRank = errors.New("separation: rank must be 1 or 2")

// Part identifies which side of a separation an element belongs to.
type Part int

const (
	// PartFirst is the first part of the partition (index 0).
	PartFirst Part = 0
	// PartSecond is the second part of the partition (index 1).
	PartSecond Part = 1
)

// RankClass tags why an element contributes to the off-diagonal rank.
type RankClass int

const (
	// Base means the element is trivially in both submatrices' own block
	// (it does not straddle the off-diagonal split).
	Base RankClass = iota
	// Rank1Witness means the element is one of the distinguished
	// rows/columns certifying a unit of off-diagonal rank.
	Rank1Witness
)

// flag pairs a Part and a RankClass for one row/column.
type flag struct {
	part Part
	rank RankClass
}

// Sepa is a two-part partition of an r x c matrix's rows and columns.
type Sepa struct {
	rowFlags []flag
	colFlags []flag
}

// NewSepa allocates a Sepa for an r x c matrix with every element
// defaulted to (PartFirst, Base).
func NewSepa(numRows, numCols int) *Sepa {
	return &Sepa{
		rowFlags: make([]flag, numRows),
		colFlags: make([]flag, numCols),
	}
}

// SetRow assigns row i's part and rank class.
func (s *Sepa) SetRow(i int, part Part, rank RankClass) { s.rowFlags[i] = flag{part, rank} }

// SetColumn assigns column j's part and rank class.
func (s *Sepa) SetColumn(j int, part Part, rank RankClass) { s.colFlags[j] = flag{part, rank} }

// RowPart returns row i's assigned part.
func (s *Sepa) RowPart(i int) Part { return s.rowFlags[i].part }

// ColumnPart returns column j's assigned part.
func (s *Sepa) ColumnPart(j int) Part { return s.colFlags[j].part }

// RowRank returns row i's rank class.
func (s *Sepa) RowRank(i int) RankClass { return s.rowFlags[i].rank }

// ColumnRank returns column j's rank class.
func (s *Sepa) ColumnRank(j int) RankClass { return s.colFlags[j].rank }

// NumRows returns the number of rows this Sepa was built for.
func (s *Sepa) NumRows() int { return len(s.rowFlags) }

// NumColumns returns the number of columns this Sepa was built for.
func (s *Sepa) NumColumns() int { return len(s.colFlags) }

// Sizes holds the four derived counts ComputeSizes produces.
type Sizes struct {
	NumBase    [2]int
	NumRank1   [2]int
}

// ComputeSizes scans the flag arrays and tallies, per part, how many
// elements are Base and how many are Rank1Witness.
func (s *Sepa) ComputeSizes() Sizes {
	var sz Sizes
	for _, f := range s.rowFlags {
		tally(&sz, f)
	}
	for _, f := range s.colFlags {
		tally(&sz, f)
	}
	return sz
}

func tally(sz *Sizes, f flag) {
	switch f.rank {
	case Base:
		sz.NumBase[f.part]++
	case Rank1Witness:
		sz.NumRank1[f.part]++
	}
}

// PartSize returns the total element count (rows + columns) assigned to part.
func (sz Sizes) PartSize(part Part) int {
	return sz.NumBase[part] + sz.NumRank1[part]
}

// RankSum returns the total number of Rank1Witness elements across both
// parts.
func (sz Sizes) RankSum() int { return sz.NumRank1[0] + sz.NumRank1[1] }

// IsValidTwoSeparation reports whether sz satisfies spec §3's 2-separation
// validity rule: each part has >= 2 elements, off-diagonal rank sums to 1.
func (sz Sizes) IsValidTwoSeparation() bool {
	return sz.PartSize(PartFirst) >= 2 && sz.PartSize(PartSecond) >= 2 && sz.RankSum() == 1
}

// IsValidThreeSeparation reports whether sz satisfies spec §3's
// 3-separation validity rule: each part has >= 4 elements, off-diagonal
// rank sums to 2 (distributed 1+1 or concentrated 2+0).
func (sz Sizes) IsValidThreeSeparation() bool {
	return sz.PartSize(PartFirst) >= 4 && sz.PartSize(PartSecond) >= 4 && sz.RankSum() == 2
}

// IsDistributed reports whether the rank-2 sum is split 1+1 across parts.
func (sz Sizes) IsDistributed() bool { return sz.NumRank1[0] == 1 && sz.NumRank1[1] == 1 }

// IsConcentrated reports whether the rank-2 sum is entirely on one part.
func (sz Sizes) IsConcentrated() bool {
	return (sz.NumRank1[0] == 2 && sz.NumRank1[1] == 0) || (sz.NumRank1[0] == 0 && sz.NumRank1[1] == 2)
}

// NonzeroLookup is the minimal view over a matrix InitializeMatrix needs:
// the value at (row, col), or 0 if absent.
type NonzeroLookup interface {
	At(row, col int) (int64, error)
}

// InitializeMatrix reads the claimed off-diagonal rank (1 or 2) and sets
// per-row/column RANK1 flags by scanning both off-diagonal blocks
// (rows of PartFirst against columns of PartSecond, and vice versa) for
// nonzeros, marking exactly one row and one column per rank unit of each
// block as Rank1Witness and leaving the rest Base, per spec §4.3.
func (s *Sepa) InitializeMatrix(m NonzeroLookup, rank int) error {
	if rank != 1 && rank != 2 {
		return ErrBadRank
	}
	unitsPerBlock := rank
	if rank == 2 {
		unitsPerBlock = 1 // distributed: 1 unit witnessed per off-diagonal block
	}
	if err := s.witnessBlock(m, PartFirst, PartSecond, unitsPerBlock); err != nil {
		return err
	}
	if err := s.witnessBlock(m, PartSecond, PartFirst, unitsPerBlock); err != nil {
		return err
	}
	return nil
}

// witnessBlock scans rows in rowPart against columns in colPart for up to
// units nonzero witnesses, tagging the first row and first column found
// per witness as Rank1Witness.
func (s *Sepa) witnessBlock(m NonzeroLookup, rowPart, colPart Part, units int) error {
	found := 0
	for i, rf := range s.rowFlags {
		if rf.part != rowPart || found >= units {
			continue
		}
		for j, cf := range s.colFlags {
			if cf.part != colPart {
				continue
			}
			v, err := m.At(i, j)
			if err != nil {
				return err
			}
			if v != 0 {
				s.rowFlags[i].rank = Rank1Witness
				s.colFlags[j].rank = Rank1Witness
				found++
				break
			}
		}
	}
	return nil
}
