package stage

import (
	"github.com/discopt/seymour-go/decomp"
	"github.com/discopt/seymour-go/spmatrix"
)

// TestR10 applies spec C8's 5x5 degree-signature test, grounded on CMR's
// regular_r10.c: a 3-connected 5x5 matrix represents R10 iff its
// row/column degrees match one of two signatures — (a) four rows
// (resp. columns) with exactly three nonzeros and one row (resp. column)
// with five, or (b) every row and every column with exactly three
// nonzeros and no two rows with the same support. Both are checked
// directly rather than via pivoting; 3-connectivity is not checked here.
func TestR10(m *spmatrix.Matrix) bool {
	if m.Rows() != 5 || m.Cols() != 5 {
		return false
	}
	return testR10CaseA(m) || testR10CaseB(m)
}

// testR10CaseA checks spec C8 case (a): four rows of degree 3 and one of
// degree 5, and the same pattern on columns.
func testR10CaseA(m *spmatrix.Matrix) bool {
	if !isFourThreesOneFive(m, true) {
		return false
	}
	return isFourThreesOneFive(m, false)
}

// isFourThreesOneFive reports whether m's rows (byRow true) or columns
// (byRow false) split into exactly four of degree 3 and one of degree 5.
func isFourThreesOneFive(m *spmatrix.Matrix, byRow bool) bool {
	degree := func(i int) (int, error) {
		if byRow {
			s, err := m.RowSlice(i)
			return len(s), err
		}
		s, err := m.ColSlice(i)
		return len(s), err
	}
	threes, fives := 0, 0
	for i := 0; i < 5; i++ {
		d, err := degree(i)
		if err != nil {
			return false
		}
		switch d {
		case 3:
			threes++
		case 5:
			fives++
		default:
			return false
		}
	}
	return threes == 4 && fives == 1
}

// testR10CaseB checks spec C8 case (b): every row and every column has
// exactly three nonzeros and no two rows share all three columns. The
// zero pattern of such a matrix is then a single 10-cycle rather than a
// 4-cycle plus a 6-cycle (which would force two equal rows).
func testR10CaseB(m *spmatrix.Matrix) bool {
	rowSupport := make([]map[int]bool, 5)
	for i := 0; i < 5; i++ {
		rs, err := m.RowSlice(i)
		if err != nil || len(rs) != 3 {
			return false
		}
		rowSupport[i] = make(map[int]bool, 3)
		for _, e := range rs {
			rowSupport[i][int(e.Index)] = true
		}
	}
	for j := 0; j < 5; j++ {
		cs, err := m.ColSlice(j)
		if err != nil || len(cs) != 3 {
			return false
		}
	}

	for i := 0; i < 5; i++ {
		for k := i + 1; k < 5; k++ {
			shared := 0
			for col := range rowSupport[i] {
				if rowSupport[k][col] {
					shared++
				}
			}
			if shared == 3 {
				return false
			}
		}
	}
	return true
}

// ApplyR10 marks n as the R10 leaf: regular, neither graphic nor
// cographic (spec §7's fixed attribute triple for TypeR10).
func ApplyR10(n *decomp.Node) {
	n.Type = decomp.TypeR10
	n.Regularity = decomp.True
	n.Graphicness = decomp.False
	n.Cographicness = decomp.False
	n.TestedR10 = true
}
