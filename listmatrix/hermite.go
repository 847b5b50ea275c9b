package listmatrix

import "math/big"

// overflowBound mirrors spec §4.2's "||U||_1 check bounded by 2^31-1":
// once any accumulated row 1-norm would exceed this, the fixed-width pass
// aborts and the caller retries with arbitrary precision.
const overflowBound = int64(1<<31 - 1)

// HermiteResult is the outcome of an integer upper-diagonalisation: the
// achieved rank, plus the row and column permutations applied (as 0-based
// index sequences; permutation[i] is the position the i'th reduction step
// selected).
type HermiteResult struct {
	Rank        int
	RowOrder    []int
	ColumnOrder []int
	UsedBigInt  bool
}

// ExtendedGCD returns (g, x, y) with a*x + b*y = g = gcd(a, b), used to
// build the 2x2 unimodular transform that clears one of two rows during
// the Hermite-like reduction.
func ExtendedGCD(a, b int64) (g, x, y int64) {
	if b == 0 {
		if a < 0 {
			return -a, -1, 0
		}
		return a, 1, 0
	}
	g, x1, y1 := ExtendedGCD(b, a%b)
	return g, y1, x1 - (a/b)*y1
}

// UpperDiagonalize runs the greedy Hermite-like reduction of spec §4.2:
// repeatedly pick the pivot of smallest |value| and smallest outer-product
// fill among remaining rows/columns, clear one of two rows with it via a
// 2x2 unimodular transform built from ExtendedGCD, and record the
// permutation. On fixed-width overflow it retries transparently with
// math/big (no arbitrary-precision library exists anywhere in the
// examined ecosystem pack for this narrow need, so the spec's own
// "Arbitrary precision" design note is satisfied with the standard
// library — see DESIGN.md).
func (lm *ListMatrix) UpperDiagonalize() (*HermiteResult, error) {
	res, overflowed := lm.upperDiagonalizeFixedWidth()
	if !overflowed {
		return res, nil
	}
	return lm.upperDiagonalizeBigInt(), nil
}

func (lm *ListMatrix) upperDiagonalizeFixedWidth() (*HermiteResult, bool) {
	n := lm.numRows
	m := lm.numCols
	rowsLeft := make([]bool, n)
	colsLeft := make([]bool, m)
	for i := range rowsLeft {
		rowsLeft[i] = true
	}
	for j := range colsLeft {
		colsLeft[j] = true
	}

	var rowOrder, colOrder []int
	rank := 0

	for {
		pr, pc, found := lm.pickPivotFixedWidth(rowsLeft, colsLeft)
		if !found {
			break
		}
		norm := lm.rowNorm1(pr)
		if norm > overflowBound {
			return nil, true
		}
		lm.clearColumnBelowFixedWidth(pr, pc, rowsLeft)
		rowsLeft[pr] = false
		colsLeft[pc] = false
		rowOrder = append(rowOrder, pr)
		colOrder = append(colOrder, pc)
		rank++
	}

	return &HermiteResult{Rank: rank, RowOrder: rowOrder, ColumnOrder: colOrder}, false
}

// pickPivotFixedWidth selects the remaining cell with smallest |value|,
// breaking ties by smallest outer-product fill-in (degree(row)-1)*(degree(col)-1).
func (lm *ListMatrix) pickPivotFixedWidth(rowsLeft, colsLeft []bool) (int, int, bool) {
	bestRow, bestCol := -1, -1
	var bestAbs int64 = -1
	var bestFill int64 = -1
	for i, ok := range rowsLeft {
		if !ok {
			continue
		}
		lm.WalkRow(i, func(col int, value int64) {
			if !colsLeft[col] {
				return
			}
			av := value
			if av < 0 {
				av = -av
			}
			fill := int64(lm.rowHeaders[i].degree-1) * int64(lm.colHeaders[col].degree-1)
			if bestRow == -1 || av < bestAbs || (av == bestAbs && fill < bestFill) {
				bestRow, bestCol, bestAbs, bestFill = i, col, av, fill
			}
		})
	}
	return bestRow, bestCol, bestRow != -1
}

func (lm *ListMatrix) rowNorm1(row int) int64 {
	var sum int64
	lm.WalkRow(row, func(_ int, value int64) {
		if value < 0 {
			value = -value
		}
		sum += value
	})
	return sum
}

// clearColumnBelowFixedWidth applies, for every other row with a nonzero
// in pivot column pc, a 2x2 unimodular transform (built from ExtendedGCD
// of the pivot value and that row's entry) eliminating the entry.
func (lm *ListMatrix) clearColumnBelowFixedWidth(pr, pc int, rowsLeft []bool) {
	pivotVal, _ := lm.At(pr, pc)
	var others []int
	lm.WalkCol(pc, func(row int, _ int64) {
		if row != pr && rowsLeft[row] {
			others = append(others, row)
		}
	})
	for _, row := range others {
		other, _ := lm.At(row, pc)
		g, x, y := ExtendedGCD(pivotVal, other)
		if g == 0 {
			continue
		}
		a, b := pivotVal/g, other/g
		lm.combineRows(pr, row, x, y, -b, a)
	}
}

// combineRows replaces (row pr, row other) with the linear combination
// defined by a 2x2 unimodular matrix [[c00,c01],[c10,c11]]:
//
//	newPr    = c00*pr + c01*other
//	newOther = c10*pr + c11*other
func (lm *ListMatrix) combineRows(pr, other int, c00, c01, c10, c11 int64) {
	vals := map[int][2]int64{}
	lm.WalkRow(pr, func(col int, v int64) {
		e := vals[col]
		e[0] = v
		vals[col] = e
	})
	lm.WalkRow(other, func(col int, v int64) {
		e := vals[col]
		e[1] = v
		vals[col] = e
	})
	for col, pair := range vals {
		newPr := c00*pair[0] + c01*pair[1]
		newOther := c10*pair[0] + c11*pair[1]
		_ = lm.Set(pr, col, newPr)
		_ = lm.Set(other, col, newOther)
	}
}

// upperDiagonalizeBigInt re-runs the same greedy scheme over arbitrary
// precision values, never overflowing.
func (lm *ListMatrix) upperDiagonalizeBigInt() *HermiteResult {
	n, m := lm.numRows, lm.numCols
	vals := make(map[[2]int]*big.Int)
	for i := 0; i < n; i++ {
		lm.WalkRow(i, func(col int, v int64) {
			vals[[2]int{i, col}] = big.NewInt(v)
		})
	}
	rowsLeft := make([]bool, n)
	colsLeft := make([]bool, m)
	for i := range rowsLeft {
		rowsLeft[i] = true
	}
	for j := range colsLeft {
		colsLeft[j] = true
	}
	rowDeg := make([]int, n)
	colDeg := make([]int, m)
	for k := range vals {
		rowDeg[k[0]]++
		colDeg[k[1]]++
	}

	var rowOrder, colOrder []int
	rank := 0
	abs := new(big.Int)
	for {
		bestRow, bestCol := -1, -1
		var bestAbs *big.Int
		var bestFill int64 = -1
		for k, v := range vals {
			i, j := k[0], k[1]
			if !rowsLeft[i] || !colsLeft[j] {
				continue
			}
			abs.Abs(v)
			fill := int64(rowDeg[i]-1) * int64(colDeg[j]-1)
			if bestRow == -1 || abs.Cmp(bestAbs) < 0 || (abs.Cmp(bestAbs) == 0 && fill < bestFill) {
				bestRow, bestCol, bestFill = i, j, fill
				bestAbs = new(big.Int).Set(abs)
			}
		}
		if bestRow == -1 {
			break
		}
		pivotVal := vals[[2]int{bestRow, bestCol}]
		for i := 0; i < n; i++ {
			if i == bestRow || !rowsLeft[i] {
				continue
			}
			other, ok := vals[[2]int{i, bestCol}]
			if !ok || other.Sign() == 0 {
				continue
			}
			g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(pivotVal), new(big.Int).Abs(other))
			if g.Sign() == 0 {
				continue
			}
			a := new(big.Int).Div(pivotVal, g)
			b := new(big.Int).Div(other, g)
			bigCombineRows(vals, bestRow, i, big.NewInt(0), big.NewInt(1), new(big.Int).Neg(b), a, rowDeg, colDeg)
		}
		rowsLeft[bestRow] = false
		colsLeft[bestCol] = false
		rowOrder = append(rowOrder, bestRow)
		colOrder = append(colOrder, bestCol)
		rank++
	}

	return &HermiteResult{Rank: rank, RowOrder: rowOrder, ColumnOrder: colOrder, UsedBigInt: true}
}

func bigCombineRows(vals map[[2]int]*big.Int, pr, other int, c00, c01, c10, c11 *big.Int, rowDeg, colDeg []int) {
	cols := map[int]bool{}
	for k := range vals {
		if k[0] == pr || k[0] == other {
			cols[k[1]] = true
		}
	}
	for col := range cols {
		a := vals[[2]int{pr, col}]
		if a == nil {
			a = big.NewInt(0)
		}
		b := vals[[2]int{other, col}]
		if b == nil {
			b = big.NewInt(0)
		}
		newPr := new(big.Int).Add(new(big.Int).Mul(c00, a), new(big.Int).Mul(c01, b))
		newOther := new(big.Int).Add(new(big.Int).Mul(c10, a), new(big.Int).Mul(c11, b))
		setOrClear(vals, pr, col, newPr, rowDeg, colDeg)
		setOrClear(vals, other, col, newOther, rowDeg, colDeg)
	}
}

func setOrClear(vals map[[2]int]*big.Int, row, col int, v *big.Int, rowDeg, colDeg []int) {
	key := [2]int{row, col}
	_, existed := vals[key]
	if v.Sign() == 0 {
		if existed {
			delete(vals, key)
			rowDeg[row]--
			colDeg[col]--
		}
		return
	}
	if !existed {
		rowDeg[row]++
		colDeg[col]++
	}
	vals[key] = v
}
