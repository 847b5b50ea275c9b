package graphoracle

import (
	"github.com/discopt/seymour-go/element"
	"github.com/discopt/seymour-go/spmatrix"
)

// TestGraphic attempts to realize m as a network matrix: every column
// becomes a tree edge in column order, then every row is matched against
// the growing tree as a path between two nodes (an empty row becomes a
// loop at the root). It returns the builder, whose G holds the resulting
// graph, and true on full success, or nil and false at the first row that
// cannot be placed.
//
// This realizes spec C7's direct shortcut for small matrices and also
// backs C11's one-element extension test: calling TestGraphic again on a
// one-larger prefix after a successful prior call does the same work the
// incremental path would, just restarted from scratch, which is
// acceptable at the small sizes C7 is reserved for.
func TestGraphic(m *spmatrix.Matrix) (*NetworkBuilder, bool) {
	b := NewNetworkBuilder()
	for c := 0; c < m.Cols(); c++ {
		b.BindColumn(c, element.MakeColumn(c+1))
	}
	for r := 0; r < m.Rows(); r++ {
		entries, err := m.RowSlice(r)
		if err != nil {
			return nil, false
		}
		if len(entries) == 0 {
			// An empty row is a loop: its fundamental cycle uses no tree edge.
			b.G.AddEdge(b.root, b.root, element.MakeRow(r+1), +1, false)
			continue
		}
		support := Support{}
		for _, e := range entries {
			support[int(e.Index)] = int8(e.Value)
		}
		if _, _, ok := b.ExtendByRow(element.MakeRow(r+1), support); !ok {
			return nil, false
		}
	}
	return b, true
}

// TestCographic runs TestGraphic on m's transpose, per spec §4.13's
// "symmetric procedure on the transpose" rule for cographicness.
func TestCographic(m *spmatrix.Matrix) (*NetworkBuilder, bool) {
	return TestGraphic(m.Transpose())
}

// ExtendGraphic checks whether appending newRow (expressed over already
// bound columns only; the sequence walk stops at the first row that
// references a column not yet bound, before calling this) to a prefix
// already proven graphic as prior keeps it graphic, without rebuilding
// the whole prefix from scratch. Used by stage C11 once a sequence is a
// few elements deep, where TestGraphic's restart-from-scratch cost starts
// to matter.
func ExtendGraphic(prior *NetworkBuilder, newRowElt element.Element, newRow spmatrix.Entry, rest []spmatrix.Entry) (*NetworkBuilder, bool) {
	support := Support{int(newRow.Index): int8(newRow.Value)}
	for _, e := range rest {
		support[int(e.Index)] = int8(e.Value)
	}
	if _, _, ok := prior.ExtendByRow(newRowElt, support); !ok {
		return prior, false
	}
	return prior, true
}

// ExtendGraphicByColumn binds a newly arrived column as a fresh tree
// edge, per spec C10/C11's rule that a sequence extension by column
// always introduces one new leaf node.
func ExtendGraphicByColumn(prior *NetworkBuilder, col int, elt element.Element) *NetworkBuilder {
	prior.BindColumn(col, elt)
	return prior
}
