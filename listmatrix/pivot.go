package listmatrix

import (
	"github.com/discopt/seymour-go/element"
)

// DeterminantCertificate is returned by Pivot when, in Regular mode, an
// intermediate entry would fall outside {-1, 0, +1}: the pivot chain up
// to that point plus the offending cell, exactly as spec §4.2 step 3
// requires.
type DeterminantCertificate struct {
	Pivots  []element.Pivot
	BadRow  int
	BadCol  int
	BadValu int64
}

// reduceMod reduces v into the characteristic's canonical representative:
// {0,1} for GF2, {-1,0,1} for GF3 (balanced residues), v unchanged for
// Regular (where going outside {-1,0,1} is instead caught as an error).
func reduceMod(ch Characteristic, v int64) int64 {
	switch ch {
	case GF2:
		m := ((v % 2) + 2) % 2
		return m
	case GF3:
		m := ((v % 3) + 3) % 3
		if m == 2 {
			m = -1
		}
		return m
	default:
		return v
	}
}

// modInverse returns the multiplicative inverse of v under the given
// characteristic. Regular mode only ever calls this with v == ±1, whose
// inverse is itself.
func modInverse(ch Characteristic, v int64) int64 {
	switch ch {
	case GF2:
		return 1
	case GF3:
		switch reduceMod(GF3, v) {
		case 1:
			return 1
		case -1:
			return -1
		default:
			return 0
		}
	default:
		return v // only ±1 ever reaches here in Regular mode
	}
}

// Pivot performs a single pivot at (r, c) under characteristic ch,
// following spec §4.2:
//  1. dense copies of the pivot row/column,
//  2. for every other nonzero row/column pair, subtract the rank-1 outer
//     product contribution,
//  3. in Regular mode, abort with a DeterminantCertificate the moment an
//     intermediate value leaves {-1, 0, +1},
//  4. normalise: pivot cell becomes +1, pivot column's other entries are
//     negated.
//
// priorPivots is included verbatim in any returned DeterminantCertificate
// so callers building a pivot chain don't have to reconstruct it.
//
// When Pivot returns a non-nil certificate in Regular mode, the receiver
// is left partially updated and must not be reused; the caller is about
// to tag the owning node irregular and discard it.
func (lm *ListMatrix) Pivot(r, c int, ch Characteristic, priorPivots []element.Pivot) (*DeterminantCertificate, error) {
	idx := lm.Find(r, c)
	if idx == -1 {
		return nil, ErrZeroPivot
	}
	p := lm.entries[idx].value
	if p == 0 {
		return nil, ErrZeroPivot
	}

	// Step 1: dense copies of pivot row and column (excluding the pivot
	// cell itself, which needs no update).
	type cell struct {
		idx   int
		value int64
	}
	var denseRow, denseCol []cell
	lm.WalkRow(r, func(col int, value int64) {
		if col != c {
			denseRow = append(denseRow, cell{col, value})
		}
	})
	lm.WalkCol(c, func(row int, value int64) {
		if row != r {
			denseCol = append(denseCol, cell{row, value})
		}
	})

	pInv := modInverse(ch, p)

	// Step 2: rank-1 update of every other row against every other column.
	for _, rc := range denseCol {
		rPrime := rc.idx
		a := rc.value
		for _, cc := range denseRow {
			cPrime := cc.idx
			b := cc.value
			cur, _ := lm.At(rPrime, cPrime)
			delta := a * pInv * b
			next := cur - delta
			if ch != Regular {
				next = reduceMod(ch, next)
			} else if next < -1 || next > 1 {
				cert := &DeterminantCertificate{
					Pivots:  append(append([]element.Pivot(nil), priorPivots...), element.Pivot{Row: r, Column: c}),
					BadRow:  rPrime,
					BadCol:  cPrime,
					BadValu: next,
				}
				return cert, nil
			}
			if err := lm.Set(rPrime, cPrime, next); err != nil {
				return nil, err
			}
		}
	}

	// Step 3 (continued): update the pivot row and column themselves —
	// entries not touched by the rank-1 loop above because step 2 only
	// ranges over *other* rows/columns. The pivot row, scaled by p^-1,
	// becomes the new pivot row; the pivot column becomes -column * p^-1
	// except the pivot cell, handled in normalisation below.
	for _, rc := range denseRow {
		v := reduceIfNeeded(ch, rc.value*pInv)
		if err := lm.Set(r, rc.idx, v); err != nil {
			return nil, err
		}
	}
	for _, cc := range denseCol {
		v := reduceIfNeeded(ch, -cc.value*pInv)
		if err := lm.Set(cc.idx, c, v); err != nil {
			return nil, err
		}
	}

	// Step 4: normalise the pivot cell to +1.
	if err := lm.Set(r, c, 1); err != nil {
		return nil, err
	}

	return nil, nil
}

func reduceIfNeeded(ch Characteristic, v int64) int64 {
	if ch == Regular {
		return v
	}
	return reduceMod(ch, v)
}

// MultiPivot applies pivots in order, stopping (and returning the
// certificate) at the first one that fails in Regular mode.
func (lm *ListMatrix) MultiPivot(pivots []element.Pivot, ch Characteristic) (*DeterminantCertificate, error) {
	var applied []element.Pivot
	for _, p := range pivots {
		cert, err := lm.Pivot(p.Row, p.Column, ch, applied)
		if err != nil {
			return nil, err
		}
		if cert != nil {
			return cert, nil
		}
		applied = append(applied, p)
	}
	return nil, nil
}
