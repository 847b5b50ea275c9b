package stage

import (
	"github.com/discopt/seymour-go/listmatrix"
	"github.com/discopt/seymour-go/separation"
	"github.com/discopt/seymour-go/spmatrix"
)

// bipartiteComponentsExcluding walks the bipartite row/column incidence
// graph of m (row i -- column j iff m[i][j] != 0), never crossing into a
// row/column named in excludeRows/excludeCols, and returns each row's and
// column's component id (-1 for an excluded one) plus the total
// component count.
//
// Shared by the 2-separation witness search (connectivity.go, twosum.go)
// and the 3-separation witness search (threesum.go): both propose a
// candidate partition this way, then verify it by computing the actual
// off-diagonal rank rather than trusting the combinatorial split.
func bipartiteComponentsExcluding(m *spmatrix.Matrix, excludeRows, excludeCols map[int]bool) ([]int, []int, int) {
	rows, cols := m.Rows(), m.Cols()
	rowComp := fillInt(rows, -1)
	colComp := fillInt(cols, -1)
	numComponents := 0

	type item struct {
		row   bool
		index int
	}
	for start := 0; start < rows; start++ {
		if excludeRows[start] || rowComp[start] != -1 {
			continue
		}
		comp := numComponents
		numComponents++
		queue := []item{{true, start}}
		rowComp[start] = comp
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			if cur.row {
				rs, _ := m.RowSlice(cur.index)
				for _, e := range rs {
					c := int(e.Index)
					if excludeCols[c] || colComp[c] != -1 {
						continue
					}
					colComp[c] = comp
					queue = append(queue, item{false, c})
				}
			} else {
				cs, _ := m.ColSlice(cur.index)
				for _, e := range cs {
					r := int(e.Index)
					if excludeRows[r] || rowComp[r] != -1 {
						continue
					}
					rowComp[r] = comp
					queue = append(queue, item{true, r})
				}
			}
		}
	}
	return rowComp, colComp, numComponents
}

// blockRank computes the exact rank of the submatrix of m restricted to
// rows x cols, via listmatrix's integer Hermite-like reduction. Used to
// verify a candidate 2-/3-separation's off-diagonal rank directly instead
// of inferring it from bipartite connectivity.
func blockRank(m *spmatrix.Matrix, rows, cols []int) (int, error) {
	if len(rows) == 0 || len(cols) == 0 {
		return 0, nil
	}
	sub, err := m.Submatrix(rows, cols)
	if err != nil {
		return 0, err
	}
	lm, err := listmatrix.FromMatrix(sub)
	if err != nil {
		return 0, err
	}
	res, err := lm.UpperDiagonalize()
	if err != nil {
		return 0, err
	}
	return res.Rank, nil
}

// tryThreeSeparationWitnessPair proposes a distributed (1+1) 3-separation
// witnessed by row r0 and column c0: it seeds a candidate two-part
// partition from the bipartite components of everything else (excluding
// r0/c0), tags r0 and c0 on opposite parts (the single-pair-witness
// convention decomp.Node.UpdateThreeSum expects), and accepts the
// candidate only once both off-diagonal blocks are confirmed rank 1 by
// exact computation — not merely disconnected in the bipartite graph.
func tryThreeSeparationWitnessPair(m *spmatrix.Matrix, r0, c0 int) (*separation.Sepa, bool) {
	rows, cols := m.Rows(), m.Cols()
	rowComp, colComp, numComponents := bipartiteComponentsExcluding(m, map[int]bool{r0: true}, map[int]bool{c0: true})
	if numComponents < 2 {
		return nil, false
	}

	sideOf := func(comp int) separation.Part {
		if comp == 0 {
			return separation.PartFirst
		}
		return separation.PartSecond
	}

	for _, swap := range []bool{false, true} {
		var rowsFirst, rowsSecond, colsFirst, colsSecond []int
		for r := 0; r < rows; r++ {
			if r == r0 {
				continue
			}
			if sideOf(rowComp[r]) == separation.PartFirst {
				rowsFirst = append(rowsFirst, r)
			} else {
				rowsSecond = append(rowsSecond, r)
			}
		}
		for c := 0; c < cols; c++ {
			if c == c0 {
				continue
			}
			if sideOf(colComp[c]) == separation.PartFirst {
				colsFirst = append(colsFirst, c)
			} else {
				colsSecond = append(colsSecond, c)
			}
		}
		r0Part, c0Part := separation.PartFirst, separation.PartSecond
		if swap {
			r0Part, c0Part = separation.PartSecond, separation.PartFirst
		}
		if r0Part == separation.PartFirst {
			rowsFirst = append(rowsFirst, r0)
		} else {
			rowsSecond = append(rowsSecond, r0)
		}
		if c0Part == separation.PartFirst {
			colsFirst = append(colsFirst, c0)
		} else {
			colsSecond = append(colsSecond, c0)
		}

		if len(rowsFirst)+len(colsFirst) < 4 || len(rowsSecond)+len(colsSecond) < 4 {
			continue
		}

		rank1, err1 := blockRank(m, rowsFirst, colsSecond)
		rank2, err2 := blockRank(m, rowsSecond, colsFirst)
		if err1 != nil || err2 != nil || rank1 != 1 || rank2 != 1 {
			continue
		}

		sepa := separation.NewSepa(m.Rows(), m.Cols())
		for _, r := range rowsFirst {
			sepa.SetRow(r, separation.PartFirst, separation.Base)
		}
		for _, r := range rowsSecond {
			sepa.SetRow(r, separation.PartSecond, separation.Base)
		}
		for _, c := range colsFirst {
			sepa.SetColumn(c, separation.PartFirst, separation.Base)
		}
		for _, c := range colsSecond {
			sepa.SetColumn(c, separation.PartSecond, separation.Base)
		}
		sepa.SetRow(r0, r0Part, separation.Rank1Witness)
		sepa.SetColumn(c0, c0Part, separation.Rank1Witness)

		sz := sepa.ComputeSizes()
		if sz.IsValidThreeSeparation() && sz.IsDistributed() {
			return sepa, true
		}
	}
	return nil, false
}

// tryTwoSeparationWitnessColumn proposes a 2-separation glued by a single
// column c0: excluding c0, the bipartite components of the remainder
// should split into at least two groups; c0 itself is assigned to
// whichever side (tried both ways) yields an off-diagonal rank of
// exactly 1 on verification, then tagged Rank1Witness on that side per
// the single-witness convention decomp.Node.UpdateTwoSum expects (the
// witness column is added to the *other* side's child matrix).
func tryTwoSeparationWitnessColumn(m *spmatrix.Matrix, c0 int) (*separation.Sepa, bool) {
	rows, cols := m.Rows(), m.Cols()
	rowComp, colComp, numComponents := bipartiteComponentsExcluding(m, nil, map[int]bool{c0: true})
	if numComponents < 2 {
		return nil, false
	}
	sideOf := func(comp int) separation.Part {
		if comp == 0 {
			return separation.PartFirst
		}
		return separation.PartSecond
	}

	var rowsFirst, rowsSecond, colsFirst, colsSecond []int
	for r := 0; r < rows; r++ {
		if sideOf(rowComp[r]) == separation.PartFirst {
			rowsFirst = append(rowsFirst, r)
		} else {
			rowsSecond = append(rowsSecond, r)
		}
	}
	for c := 0; c < cols; c++ {
		if c == c0 {
			continue
		}
		if sideOf(colComp[c]) == separation.PartFirst {
			colsFirst = append(colsFirst, c)
		} else {
			colsSecond = append(colsSecond, c)
		}
	}
	if len(rowsFirst)+len(colsFirst) < 2 || len(rowsSecond)+len(colsSecond) < 2 {
		return nil, false
	}

	for _, c0First := range []bool{true, false} {
		colsFirstTry, colsSecondTry := append([]int(nil), colsFirst...), append([]int(nil), colsSecond...)
		c0Part := separation.PartSecond
		if c0First {
			colsFirstTry = append(colsFirstTry, c0)
			c0Part = separation.PartFirst
		} else {
			colsSecondTry = append(colsSecondTry, c0)
		}

		rank1, err1 := blockRank(m, rowsFirst, colsSecondTry)
		rank2, err2 := blockRank(m, rowsSecond, colsFirstTry)
		if err1 != nil || err2 != nil || rank1+rank2 != 1 {
			continue
		}

		sepa := separation.NewSepa(m.Rows(), m.Cols())
		for _, r := range rowsFirst {
			sepa.SetRow(r, separation.PartFirst, separation.Base)
		}
		for _, r := range rowsSecond {
			sepa.SetRow(r, separation.PartSecond, separation.Base)
		}
		for _, c := range colsFirst {
			sepa.SetColumn(c, separation.PartFirst, separation.Base)
		}
		for _, c := range colsSecond {
			sepa.SetColumn(c, separation.PartSecond, separation.Base)
		}
		sepa.SetColumn(c0, c0Part, separation.Rank1Witness)

		sz := sepa.ComputeSizes()
		if sz.IsValidTwoSeparation() {
			return sepa, true
		}
	}
	return nil, false
}

// tryTwoSeparationWitnessRow is tryTwoSeparationWitnessColumn's row dual,
// used by is3Connected and FindTwoSeparation to also search for a
// row-glued 2-separation.
func tryTwoSeparationWitnessRow(m *spmatrix.Matrix, r0 int) (*separation.Sepa, bool) {
	rows, cols := m.Rows(), m.Cols()
	rowComp, colComp, numComponents := bipartiteComponentsExcluding(m, map[int]bool{r0: true}, nil)
	if numComponents < 2 {
		return nil, false
	}
	sideOf := func(comp int) separation.Part {
		if comp == 0 {
			return separation.PartFirst
		}
		return separation.PartSecond
	}

	var rowsFirst, rowsSecond, colsFirst, colsSecond []int
	for r := 0; r < rows; r++ {
		if r == r0 {
			continue
		}
		if sideOf(rowComp[r]) == separation.PartFirst {
			rowsFirst = append(rowsFirst, r)
		} else {
			rowsSecond = append(rowsSecond, r)
		}
	}
	for c := 0; c < cols; c++ {
		if sideOf(colComp[c]) == separation.PartFirst {
			colsFirst = append(colsFirst, c)
		} else {
			colsSecond = append(colsSecond, c)
		}
	}
	if len(rowsFirst)+len(colsFirst) < 2 || len(rowsSecond)+len(colsSecond) < 2 {
		return nil, false
	}

	for _, r0First := range []bool{true, false} {
		rowsFirstTry, rowsSecondTry := append([]int(nil), rowsFirst...), append([]int(nil), rowsSecond...)
		r0Part := separation.PartSecond
		if r0First {
			rowsFirstTry = append(rowsFirstTry, r0)
			r0Part = separation.PartFirst
		} else {
			rowsSecondTry = append(rowsSecondTry, r0)
		}

		rank1, err1 := blockRank(m, rowsFirstTry, colsSecond)
		rank2, err2 := blockRank(m, rowsSecondTry, colsFirst)
		if err1 != nil || err2 != nil || rank1+rank2 != 1 {
			continue
		}

		sepa := separation.NewSepa(m.Rows(), m.Cols())
		for _, r := range rowsFirst {
			sepa.SetRow(r, separation.PartFirst, separation.Base)
		}
		for _, r := range rowsSecond {
			sepa.SetRow(r, separation.PartSecond, separation.Base)
		}
		for _, c := range colsFirst {
			sepa.SetColumn(c, separation.PartFirst, separation.Base)
		}
		for _, c := range colsSecond {
			sepa.SetColumn(c, separation.PartSecond, separation.Base)
		}
		sepa.SetRow(r0, r0Part, separation.Rank1Witness)

		sz := sepa.ComputeSizes()
		if sz.IsValidTwoSeparation() {
			return sepa, true
		}
	}
	return nil, false
}

// hasTwoSeparationWitness searches m for any row- or column-glued
// 2-separation, returning the witness element as (isRow, index) for the
// first one found.
func hasTwoSeparationWitness(m *spmatrix.Matrix) (bool, bool, int) {
	for r := 0; r < m.Rows(); r++ {
		if _, ok := tryTwoSeparationWitnessRow(m, r); ok {
			return true, true, r
		}
	}
	for c := 0; c < m.Cols(); c++ {
		if _, ok := tryTwoSeparationWitnessColumn(m, c); ok {
			return true, false, c
		}
	}
	return false, false, -1
}
