package stage

import (
	"github.com/discopt/seymour-go/decomp"
	"github.com/discopt/seymour-go/spmatrix"
)

// FindOneSum looks for a 1-sum split: connected components of the
// bipartite row/column incidence graph induced by m's nonzeros. It
// returns nil if the whole matrix is one component (no split available).
//
// Grounded on the teacher's bfs package: a plain FIFO-queue breadth-first
// walk, here over the implicit bipartite graph (row i -- column j iff
// m[i][j] != 0) rather than an explicit core.Graph, since the graph is
// never otherwise needed once components are known.
func FindOneSum(m *spmatrix.Matrix) []decomp.ComponentSpec {
	rows, cols := m.Rows(), m.Cols()
	rowComp := fillInt(rows, -1)
	colComp := fillInt(cols, -1)
	numComponents := 0

	for start := 0; start < rows; start++ {
		if rowComp[start] != -1 {
			continue
		}
		comp := numComponents
		numComponents++

		type item struct {
			row   bool
			index int
		}
		queue := []item{{true, start}}
		rowComp[start] = comp
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			if cur.row {
				rs, _ := m.RowSlice(cur.index)
				for _, e := range rs {
					c := int(e.Index)
					if colComp[c] == -1 {
						colComp[c] = comp
						queue = append(queue, item{false, c})
					}
				}
			} else {
				cs, _ := m.ColSlice(cur.index)
				for _, e := range cs {
					r := int(e.Index)
					if rowComp[r] == -1 {
						rowComp[r] = comp
						queue = append(queue, item{true, r})
					}
				}
			}
		}
	}

	// Columns with no nonzeros at all never get visited from a row; give
	// each its own singleton component.
	for c := 0; c < cols; c++ {
		if colComp[c] == -1 {
			colComp[c] = numComponents
			numComponents++
		}
	}
	// Likewise empty rows.
	for r := 0; r < rows; r++ {
		if rowComp[r] == -1 {
			rowComp[r] = numComponents
			numComponents++
		}
	}

	if numComponents <= 1 {
		return nil
	}

	components := make([]decomp.ComponentSpec, numComponents)
	for r, c := range rowComp {
		components[c].Rows = append(components[c].Rows, r)
	}
	for c, comp := range colComp {
		components[comp].Columns = append(components[comp].Columns, c)
	}
	// Drop any component that ended up with no rows and no columns (can't
	// happen given the loops above, but keep the invariant explicit).
	out := components[:0]
	for _, c := range components {
		if len(c.Rows) > 0 || len(c.Columns) > 0 {
			out = append(out, c)
		}
	}
	return out
}

func fillInt(n, v int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = v
	}
	return out
}
