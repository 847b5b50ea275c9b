// File: update.go
// Role: the update-* family that rewrites a node into a sum, a
// series-parallel reduction, a pivot step, or an irregular leaf, per
// spec §4.4.
package decomp

import (
	"sort"

	"github.com/discopt/seymour-go/element"
	"github.com/discopt/seymour-go/separation"
	"github.com/discopt/seymour-go/spmatrix"
)

// SetNumChildren allocates numChildren empty child slots. Single shot:
// calling it twice on the same node is a programmer error and panics,
// matching spec §4.4's "single shot" contract.
func (n *Node) SetNumChildren(numChildren int) {
	if n.Children != nil {
		panic("decomp: SetNumChildren called twice")
	}
	n.Children = make([]*Node, numChildren)
	n.ChildLinks = make([]ChildLink, numChildren)
}

// AddMinor appends cert to the node's certificate accumulator.
func (n *Node) AddMinor(cert *element.Minor) {
	n.Minors = append(n.Minors, cert)
}

// UpdateViolator marks n as irregular, attaching sub as a determinant
// witness minor. Per spec §7, every irregularity setting must carry at
// least one minor; UpdateViolator is the single place that invariant is
// established.
func (n *Node) UpdateViolator(sub *element.Minor) {
	n.Type = TypeIrregular
	n.AddMinor(sub)
}

// ComponentSpec describes one connected component found by the 1-sum
// stage, in terms of the parent's own row/column indices.
type ComponentSpec struct {
	Rows    []int
	Columns []int
}

// UpdateOneSum sets n to TypeOneSum with one child per component, sorted
// by nonzero count ascending (CMR's regular_onesum.c sorts components by
// nnz before assigning child slots; this keeps the smallest, usually
// fastest-to-resolve components first in the scheduler's FIFO).
func (n *Node) UpdateOneSum(components []ComponentSpec) {
	// Every nonzero of a component's row lies in that component, so the
	// component's nonzero count is the sum of its rows' lengths.
	nnz := func(c ComponentSpec) int {
		total := 0
		for _, r := range c.Rows {
			rs, _ := n.Matrix.RowSlice(r)
			total += len(rs)
		}
		return total
	}
	sort.SliceStable(components, func(i, j int) bool {
		return nnz(components[i]) < nnz(components[j])
	})

	n.SetNumChildren(len(components))
	for ci, comp := range components {
		childMatrix, err := n.Matrix.Submatrix(comp.Rows, comp.Columns)
		if err != nil {
			panic(err) // internal invariant: components partition the matrix
		}
		child := New(childMatrix, n.Ternary)
		n.Children[ci] = child

		rowMap := make([]element.Element, len(comp.Rows))
		for i, r := range comp.Rows {
			rowMap[i] = element.MakeRow(r + 1)
			n.rowToChild[r] = ci
		}
		colMap := make([]element.Element, len(comp.Columns))
		for j, c := range comp.Columns {
			colMap[j] = element.MakeColumn(c + 1)
			n.colToChild[c] = ci
		}
		n.ChildLinks[ci] = ChildLink{RowToParent: rowMap, ColumnToParent: colMap}
	}
	n.Type = TypeOneSum
}

// UpdateSeriesParallel sets n to TypeSeriesParallel with a single child
// holding the reduced submatrix; parent/child maps are derived from sel.
func (n *Node) UpdateSeriesParallel(sel *element.Submatrix) {
	reduced, err := n.Matrix.Submatrix(sel.Rows, sel.Columns)
	if err != nil {
		panic(err)
	}
	child := New(reduced, n.Ternary)
	n.SetNumChildren(1)
	n.Children[0] = child

	rowMap := make([]element.Element, len(sel.Rows))
	for i, r := range sel.Rows {
		rowMap[i] = element.MakeRow(r + 1)
		n.rowToChild[r] = 0
	}
	colMap := make([]element.Element, len(sel.Columns))
	for j, c := range sel.Columns {
		colMap[j] = element.MakeColumn(c + 1)
		n.colToChild[c] = 0
	}
	n.ChildLinks[0] = ChildLink{RowToParent: rowMap, ColumnToParent: colMap}
	n.Type = TypeSeriesParallel
}

// UpdateTwoSum sets n to TypeTwoSum with two children, built from sepa
// per spec §4.4: each child's rows are its side's rows in matrix order,
// plus (for child 0) one rank-1-witness row from the other side appended;
// columns are treated symmetrically with side roles swapped.
func (n *Node) UpdateTwoSum(sepa *separation.Sepa) error {
	var rows0, rows1, cols0, cols1 []int
	witnessRowFor0 := -1
	witnessColFor1 := -1

	for i := 0; i < sepa.NumRows(); i++ {
		if sepa.RowPart(i) == separation.PartFirst {
			rows0 = append(rows0, i)
		} else {
			rows1 = append(rows1, i)
			if sepa.RowRank(i) == separation.Rank1Witness && witnessRowFor0 == -1 {
				witnessRowFor0 = i
			}
		}
	}
	for j := 0; j < sepa.NumColumns(); j++ {
		if sepa.ColumnPart(j) == separation.PartSecond {
			cols1 = append(cols1, j)
		} else {
			cols0 = append(cols0, j)
			if sepa.ColumnRank(j) == separation.Rank1Witness && witnessColFor1 == -1 {
				witnessColFor1 = j
			}
		}
	}

	// Child 0: its own rows/cols, plus the witness row from side 1 (for
	// column completeness the witness row only adds row coverage; the
	// 2-sum glue column is the one column shared structurally, handled by
	// the caller supplying sepa already including it in cols0 if needed).
	rows0WithWitness := rows0
	if witnessRowFor0 != -1 {
		rows0WithWitness = append(append([]int(nil), rows0...), witnessRowFor0)
	}
	cols1WithWitness := cols1
	if witnessColFor1 != -1 {
		cols1WithWitness = append([]int{witnessColFor1}, cols1...)
	}

	m0, err := n.Matrix.Submatrix(rows0WithWitness, cols0)
	if err != nil {
		return err
	}
	m1, err := n.Matrix.Submatrix(rows1, cols1WithWitness)
	if err != nil {
		return err
	}

	n.SetNumChildren(2)
	n.Children[0] = New(m0, n.Ternary)
	n.Children[1] = New(m1, n.Ternary)

	rowMap0 := make([]element.Element, len(rows0WithWitness))
	for i, r := range rows0WithWitness {
		rowMap0[i] = element.MakeRow(r + 1)
		if r != witnessRowFor0 {
			n.rowToChild[r] = 0
		}
	}
	colMap0 := make([]element.Element, len(cols0))
	for j, c := range cols0 {
		colMap0[j] = element.MakeColumn(c + 1)
		n.colToChild[c] = 0
	}
	n.ChildLinks[0] = ChildLink{RowToParent: rowMap0, ColumnToParent: colMap0}
	if witnessRowFor0 != -1 {
		n.ChildLinks[0].SpecialRows = []int{len(rows0WithWitness) - 1}
	}

	rowMap1 := make([]element.Element, len(rows1))
	for i, r := range rows1 {
		rowMap1[i] = element.MakeRow(r + 1)
		n.rowToChild[r] = 1
	}
	colMap1 := make([]element.Element, len(cols1WithWitness))
	for j, c := range cols1WithWitness {
		colMap1[j] = element.MakeColumn(c + 1)
		if c != witnessColFor1 {
			n.colToChild[c] = 1
		}
	}
	n.ChildLinks[1] = ChildLink{RowToParent: rowMap1, ColumnToParent: colMap1}
	if witnessColFor1 != -1 {
		n.ChildLinks[1].SpecialColumns = []int{0}
	}

	n.Type = TypeTwoSum
	n.LastSeparation = sepa
	return nil
}

// UpdateThreeSum sets n to TypeThreeSum with two children from a
// distributed (1+1) 3-separation: the single witness row and single
// witness column are shared by both children (as ChildLinks' special
// rows/columns), each side's remaining rows/columns are its own.
func (n *Node) UpdateThreeSum(sepa *separation.Sepa) error {
	witnessRow, witnessCol := -1, -1
	for i := 0; i < sepa.NumRows(); i++ {
		if sepa.RowRank(i) == separation.Rank1Witness {
			witnessRow = i
		}
	}
	for j := 0; j < sepa.NumColumns(); j++ {
		if sepa.ColumnRank(j) == separation.Rank1Witness {
			witnessCol = j
		}
	}

	var rows0, rows1, cols0, cols1 []int
	for i := 0; i < sepa.NumRows(); i++ {
		if i == witnessRow {
			continue
		}
		if sepa.RowPart(i) == separation.PartFirst {
			rows0 = append(rows0, i)
		} else {
			rows1 = append(rows1, i)
		}
	}
	for j := 0; j < sepa.NumColumns(); j++ {
		if j == witnessCol {
			continue
		}
		if sepa.ColumnPart(j) == separation.PartFirst {
			cols0 = append(cols0, j)
		} else {
			cols1 = append(cols1, j)
		}
	}

	rows0x := append(append([]int(nil), rows0...), witnessRow)
	rows1x := append(append([]int(nil), rows1...), witnessRow)
	cols0x := append(append([]int(nil), cols0...), witnessCol)
	cols1x := append(append([]int(nil), cols1...), witnessCol)

	m0, err := n.Matrix.Submatrix(rows0x, cols0x)
	if err != nil {
		return err
	}
	m1, err := n.Matrix.Submatrix(rows1x, cols1x)
	if err != nil {
		return err
	}

	n.SetNumChildren(2)
	n.Children[0] = New(m0, n.Ternary)
	n.Children[1] = New(m1, n.Ternary)

	buildLink := func(rows, cols []int) ChildLink {
		rowMap := make([]element.Element, len(rows))
		for i, r := range rows {
			rowMap[i] = element.MakeRow(r + 1)
		}
		colMap := make([]element.Element, len(cols))
		for j, c := range cols {
			colMap[j] = element.MakeColumn(c + 1)
		}
		return ChildLink{
			RowToParent:    rowMap,
			ColumnToParent: colMap,
			SpecialRows:    []int{len(rows) - 1},
			SpecialColumns: []int{len(cols) - 1},
		}
	}
	n.ChildLinks[0] = buildLink(rows0x, cols0x)
	n.ChildLinks[1] = buildLink(rows1x, cols1x)

	for _, r := range rows0 {
		n.rowToChild[r] = 0
	}
	for _, r := range rows1 {
		n.rowToChild[r] = 1
	}
	for _, c := range cols0 {
		n.colToChild[c] = 0
	}
	for _, c := range cols1 {
		n.colToChild[c] = 1
	}

	n.Type = TypeThreeSum
	n.LastSeparation = sepa
	return nil
}

// UpdateDeltaSum sets n to a delta-sum two-children split from a
// distributed (1+1) 3-separation. Per this engine's resolution of spec's
// open question on how delta-sum/Y-sum children differ structurally from
// a plain 3-sum's (see DESIGN.md): they don't — the same witness-row/
// witness-column two-children construction applies, and delta-sum vs.
// Y-sum vs. plain 3-sum is purely a choice of which tag the scheduler's
// chosen decompose strategy attaches to the result.
func (n *Node) UpdateDeltaSum(sepa *separation.Sepa) error {
	if err := n.UpdateThreeSum(sepa); err != nil {
		return err
	}
	n.Type = TypeDeltaSum
	return nil
}

// UpdateYSum is UpdateDeltaSum's Y-sum-tagged counterpart, kept for
// symmetry with the ConcentratedPivot/ConcentratedThreeSum strategy pair;
// unreachable in practice since this engine never searches for a
// concentrated (2+0) 3-separation (see DESIGN.md).
func (n *Node) UpdateYSum(sepa *separation.Sepa) error {
	if err := n.UpdateThreeSum(sepa); err != nil {
		return err
	}
	n.Type = TypeYSum
	return nil
}

// UpdatePivots sets n to TypePivots with a single child holding the
// post-pivot matrix; row r (whose pivot was at (r,c)) becomes column c in
// the child's parent-map, and vice versa, per spec §4.4.
func (n *Node) UpdatePivots(pivots []element.Pivot, postPivot *spmatrix.Matrix) {
	n.PivotRows = nil
	n.PivotColumns = nil
	swap := make(map[int]int) // row index -> column index it swaps with, and vice versa
	for _, p := range pivots {
		n.PivotRows = append(n.PivotRows, p.Row)
		n.PivotColumns = append(n.PivotColumns, p.Column)
		swap[p.Row] = p.Column
		swap[-p.Column-1] = p.Row // distinguish column keys from row keys
	}

	child := New(postPivot, n.Ternary)
	n.SetNumChildren(1)
	n.Children[0] = child

	rowMap := make([]element.Element, postPivot.Rows())
	for i := 0; i < postPivot.Rows(); i++ {
		if c, ok := swap[i]; ok {
			rowMap[i] = element.MakeColumn(c + 1)
		} else {
			rowMap[i] = element.MakeRow(i + 1)
		}
	}
	colMap := make([]element.Element, postPivot.Cols())
	for j := 0; j < postPivot.Cols(); j++ {
		if r, ok := swap[-j-1]; ok {
			colMap[j] = element.MakeRow(r + 1)
		} else {
			colMap[j] = element.MakeColumn(j + 1)
		}
	}
	n.ChildLinks[0] = ChildLink{RowToParent: rowMap, ColumnToParent: colMap}
	n.Type = TypePivots
}
