package stage

import (
	"github.com/discopt/seymour-go/decomp"
	"github.com/discopt/seymour-go/element"
	"github.com/discopt/seymour-go/listmatrix"
	"github.com/discopt/seymour-go/spmatrix"
)

// ReduceSeriesParallel repeatedly removes coloops/loops and collapses
// series (two nonzeros sharing a row) and parallel (two nonzeros sharing
// a column) element pairs from m, per spec C9. It returns the surviving
// rows/columns as a selector into m and the sequence of reduction steps
// taken, each expressed in m's own row/column index space, in the order
// applied.
//
// Grounded on CMR's regular_series_parallel.c: a worklist ("hash" set, in
// spec terms — here a plain dirty-queue since Go's map iteration order
// would make the reduction nondeterministic) of rows/columns to
// recheck, drained until no degree-<=2 row or column remains.
//
// A series or parallel fold whose elimination would push an entry outside
// {-1, 0, +1} is itself a certificate of irregularity — the folded 2x2
// submatrix has determinant ±2, spec §4.8's minimal non-TU obstruction.
// When this happens, the offending row/column is left unreduced (as
// before) but the 2x2 submatrix is captured and returned as the third
// result, so the caller gets a real minor instead of having to rediscover
// one later.
func ReduceSeriesParallel(m *spmatrix.Matrix) (*element.Submatrix, []decomp.SPReductionStep, *element.Minor) {
	lm, err := listmatrix.FromMatrix(m)
	if err != nil {
		return element.NewSubmatrix(allIndices(m.Rows()), allIndices(m.Cols())), nil, nil
	}

	rowAlive := fillBool(m.Rows(), true)
	colAlive := fillBool(m.Cols(), true)
	var steps []decomp.SPReductionStep
	var witness *element.Minor

	dirtyRows := allIndices(m.Rows())
	dirtyCols := allIndices(m.Cols())

	for len(dirtyRows) > 0 || len(dirtyCols) > 0 {
		for len(dirtyRows) > 0 {
			i := dirtyRows[0]
			dirtyRows = dirtyRows[1:]
			if !rowAlive[i] {
				continue
			}
			switch lm.RowDegree(i) {
			case 0:
				rowAlive[i] = false
				steps = append(steps, decomp.SPReductionStep{Removed: element.MakeRow(i + 1)})
			case 1:
				var onlyCol int
				lm.WalkRow(i, func(col int, value int64) { onlyCol = col })
				rowAlive[i] = false
				steps = append(steps, decomp.SPReductionStep{Removed: element.MakeRow(i + 1)})
				dirtyCols = append(dirtyCols, onlyCol)
			case 2:
				step, ok, w := collapseSeries(lm, i, colAlive)
				if w != nil && witness == nil {
					witness = w
				}
				if ok {
					rowAlive[i] = false
					steps = append(steps, step, decomp.SPReductionStep{Removed: element.MakeRow(i + 1)})
					dirtyCols = append(dirtyCols, step.Survivor.Index())
				}
			}
		}
		for len(dirtyCols) > 0 {
			j := dirtyCols[0]
			dirtyCols = dirtyCols[1:]
			if !colAlive[j] {
				continue
			}
			switch lm.ColDegree(j) {
			case 0:
				colAlive[j] = false
				steps = append(steps, decomp.SPReductionStep{Removed: element.MakeColumn(j + 1)})
			case 1:
				var onlyRow int
				lm.WalkCol(j, func(row int, value int64) { onlyRow = row })
				colAlive[j] = false
				steps = append(steps, decomp.SPReductionStep{Removed: element.MakeColumn(j + 1)})
				dirtyRows = append(dirtyRows, onlyRow)
			case 2:
				step, ok, w := collapseParallel(lm, j, rowAlive)
				if w != nil && witness == nil {
					witness = w
				}
				if ok {
					colAlive[j] = false
					steps = append(steps, step, decomp.SPReductionStep{Removed: element.MakeColumn(j + 1)})
					dirtyRows = append(dirtyRows, step.Survivor.Index())
				}
			}
		}
	}

	var rows, cols []int
	for i, alive := range rowAlive {
		if alive {
			rows = append(rows, i)
		}
	}
	for j, alive := range colAlive {
		if alive {
			cols = append(cols, j)
		}
	}
	return element.NewSubmatrix(rows, cols), steps, witness
}

// collapseSeries identifies the two columns a degree-2 row i touches,
// folding the "removed" one's other rows into the "survivor" column via
// the elementary relation the row's two entries imply. Returns false if
// the fold would produce a value outside the matrix's ±1 domain, deferring
// the row to a later stage instead; entries foldColumnInto already wrote
// before reaching that value stay written.
func collapseSeries(lm *listmatrix.ListMatrix, row int, colAlive []bool) (decomp.SPReductionStep, bool, *element.Minor) {
	var cols [2]int
	var vals [2]int64
	k := 0
	lm.WalkRow(row, func(col int, value int64) {
		if k < 2 {
			cols[k], vals[k] = col, value
			k++
		}
	})
	if k != 2 || !colAlive[cols[0]] || !colAlive[cols[1]] {
		return decomp.SPReductionStep{}, false, nil
	}
	survivor, removed := cols[0], cols[1]
	factor := -(vals[0] * vals[1])

	w := foldColumnInto(lm, removed, survivor, factor, row)
	if w != nil {
		return decomp.SPReductionStep{}, false, w
	}
	return decomp.SPReductionStep{
		Removed:  element.MakeColumn(removed + 1),
		Survivor: element.MakeColumn(survivor + 1),
		Negated:  factor < 0,
	}, true, nil
}

// collapseParallel is collapseSeries's column-degree dual: folds the
// "removed" row's other columns into the "survivor" row.
func collapseParallel(lm *listmatrix.ListMatrix, col int, rowAlive []bool) (decomp.SPReductionStep, bool, *element.Minor) {
	var rows [2]int
	var vals [2]int64
	k := 0
	lm.WalkCol(col, func(row int, value int64) {
		if k < 2 {
			rows[k], vals[k] = row, value
			k++
		}
	})
	if k != 2 || !rowAlive[rows[0]] || !rowAlive[rows[1]] {
		return decomp.SPReductionStep{}, false, nil
	}
	survivor, removed := rows[0], rows[1]
	factor := -(vals[0] * vals[1])

	w := foldRowInto(lm, removed, survivor, factor, col)
	if w != nil {
		return decomp.SPReductionStep{}, false, w
	}
	return decomp.SPReductionStep{
		Removed:  element.MakeRow(removed + 1),
		Survivor: element.MakeRow(survivor + 1),
		Negated:  factor < 0,
	}, true, nil
}

// foldColumnInto adds factor*removed[row'] onto survivor[row'] for every
// row' != skipRow with a nonzero in column removed, then clears column
// removed. The moment a resulting value would leave {-1, 0, 1}, it stops
// mutating and returns the 2x2 submatrix {skipRow, row'} x {survivor,
// removed} as a determinant-±2 witness, leaving lm untouched from that
// point on (the fold as a whole is abandoned by the caller).
func foldColumnInto(lm *listmatrix.ListMatrix, removed, survivor int, factor int64, skipRow int) *element.Minor {
	type touch struct {
		row   int
		value int64
	}
	var touches []touch
	lm.WalkCol(removed, func(row int, value int64) {
		if row != skipRow {
			touches = append(touches, touch{row, value})
		}
	})
	for _, t := range touches {
		cur, _ := lm.At(t.row, survivor)
		next := cur + factor*t.value
		if next < -1 || next > 1 {
			return element.NewMinor(element.TagDeterminant, nil,
				element.NewSubmatrix([]int{skipRow, t.row}, []int{survivor, removed}))
		}
		if err := lm.Set(t.row, survivor, next); err != nil {
			return element.NewMinor(element.TagDeterminant, nil,
				element.NewSubmatrix([]int{skipRow, t.row}, []int{survivor, removed}))
		}
	}
	for _, t := range touches {
		_ = lm.Set(t.row, removed, 0)
	}
	return nil
}

// foldRowInto is foldColumnInto's transpose.
func foldRowInto(lm *listmatrix.ListMatrix, removed, survivor int, factor int64, skipCol int) *element.Minor {
	type touch struct {
		col   int
		value int64
	}
	var touches []touch
	lm.WalkRow(removed, func(col int, value int64) {
		if col != skipCol {
			touches = append(touches, touch{col, value})
		}
	})
	for _, t := range touches {
		cur, _ := lm.At(survivor, t.col)
		next := cur + factor*t.value
		if next < -1 || next > 1 {
			return element.NewMinor(element.TagDeterminant, nil,
				element.NewSubmatrix([]int{survivor, removed}, []int{skipCol, t.col}))
		}
		if err := lm.Set(survivor, t.col, next); err != nil {
			return element.NewMinor(element.TagDeterminant, nil,
				element.NewSubmatrix([]int{survivor, removed}, []int{skipCol, t.col}))
		}
	}
	for _, t := range touches {
		_ = lm.Set(removed, t.col, 0)
	}
	return nil
}

func allIndices(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func fillBool(n int, v bool) []bool {
	out := make([]bool, n)
	for i := range out {
		out[i] = v
	}
	return out
}
