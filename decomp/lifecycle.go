// File: lifecycle.go
// Role: reference counting, cloning, and release for decomposition nodes.
package decomp

import "github.com/discopt/seymour-go/element"

// Capture increments n's reference count for deliberate sharing across a
// separate subtree (spec §9 "Cyclic references").
func (n *Node) Capture() { n.refCount++ }

// Release decrements n's reference count, recursively releasing children
// once it hits zero. Safe to call on a node with refCount 1 (the common
// single-owner case).
func (n *Node) Release() {
	n.refCount--
	if n.refCount > 0 {
		return
	}
	for _, c := range n.Children {
		c.Release()
	}
	n.Children = nil
	n.ChildLinks = nil
}

// CloneUnknown returns a fresh node with a copy of n's matrix, type reset
// to TypeUnknown, and no children — used when a stage needs to retry
// analysis on an unmodified copy of the input.
func CloneUnknown(n *Node) *Node {
	return New(n.Matrix, n.Ternary)
}

// CloneSubtree performs a DAG-aware deep copy of n: nodes already cloned
// (tracked in seen, keyed by the original node's identity) are reused so
// that shared descendants remain shared in the clone, matching spec §4.4's
// "clone-subtree" contract.
func CloneSubtree(n *Node, seen map[*Node]*Node) *Node {
	if n == nil {
		return nil
	}
	if existing, ok := seen[n]; ok {
		existing.Capture()
		return existing
	}

	clone := &Node{
		id:            n.id,
		Ternary:       n.Ternary,
		Matrix:        n.Matrix,
		transpose:     n.transpose,
		Type:          n.Type,
		Regularity:    n.Regularity,
		Graphicness:   n.Graphicness,
		Cographicness: n.Cographicness,
		refCount:      1,

		Graph:                n.Graph,
		Cograph:              n.Cograph,
		SPReduction:          append([]SPReductionStep(nil), n.SPReduction...),
		PivotRows:            append([]int(nil), n.PivotRows...),
		PivotColumns:         append([]int(nil), n.PivotColumns...),
		Sequence:             n.Sequence,
		LastSeparation:       n.LastSeparation,
		TestedTwoConnected:   n.TestedTwoConnected,
		TestedR10:            n.TestedR10,
		TestedSeriesParallel: n.TestedSeriesParallel,

		rowToChild: append([]int(nil), n.rowToChild...),
		colToChild: append([]int(nil), n.colToChild...),
	}
	clone.Minors = append([]*element.Minor(nil), n.Minors...)
	seen[n] = clone

	clone.Children = make([]*Node, len(n.Children))
	clone.ChildLinks = make([]ChildLink, len(n.ChildLinks))
	for i, c := range n.Children {
		clone.Children[i] = CloneSubtree(c, seen)
		clone.ChildLinks[i] = ChildLink{
			RowToParent:    append([]element.Element(nil), n.ChildLinks[i].RowToParent...),
			ColumnToParent: append([]element.Element(nil), n.ChildLinks[i].ColumnToParent...),
			SpecialRows:    append([]int(nil), n.ChildLinks[i].SpecialRows...),
			SpecialColumns: append([]int(nil), n.ChildLinks[i].SpecialColumns...),
		}
	}

	return clone
}
