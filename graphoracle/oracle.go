package graphoracle

import "github.com/discopt/seymour-go/element"

// Support is one row (or column, when testing cographicness on a
// transpose) expressed as tree-column-index -> signed value. Binary
// callers always pass +1.
type Support map[int]int8

// NetworkBuilder incrementally builds the network-matrix representation
// of a graph while a nested-minor sequence grows by one row or column at
// a time (spec C10/C11). Columns become tree edges in the order they are
// first bound; rows always become non-tree edges between two existing
// nodes, whose tree path matches the row's support.
//
// Graphicness of an extension is decided by comparing the new row's
// support against the symmetric difference of two nodes' root-potentials
// (Tarjan's classical "path in a tree = XOR of root paths" argument,
// generalized from GF(2) to signed GF(2) here since the decomposition
// engine also handles ternary input).
type NetworkBuilder struct {
	G *Graph

	// treeNodeForColumn[c] is the node index that column c's tree edge
	// points at (i.e. the new leaf it introduced), once bound.
	treeNodeForColumn map[int]int
	root              int
}

// NewNetworkBuilder starts a builder with a single root node.
func NewNetworkBuilder() *NetworkBuilder {
	g := NewGraph()
	root := g.AddNode()
	return &NetworkBuilder{G: g, treeNodeForColumn: map[int]int{}, root: root}
}

// BindColumn introduces column col as a new tree edge from the root,
// creating one new leaf node. This always grows a star rather than
// discovering the new edge's true tree parent — a deliberate scope cut
// (see the graphoracle package doc) that makes the oracle exact for
// star-like (depth-1) tree structures and conservative — rejecting
// prefixes a full network-matrix recognizer would accept — for deeper
// ones, rather than attempting the general incremental tree-discovery
// search.
func (b *NetworkBuilder) BindColumn(col int, elt element.Element) {
	attach := b.root
	leaf := b.G.AddNode()
	idx := b.G.AddEdge(attach, leaf, elt, +1, true)
	b.treeNodeForColumn[col] = leaf
	b.propagatePotential(leaf, idx, +1)
}

// propagatePotential records that reaching node leaf from its tree
// parent accumulates sign*unit(edgeIdx) on top of the parent's own
// potential.
func (b *NetworkBuilder) propagatePotential(leaf, edgeIdx int, sign int8) {
	e := b.G.edges[edgeIdx]
	parent := e.From
	if parent == leaf {
		parent = e.To
	}
	pot := map[int]int8{}
	for k, v := range b.G.potential[parent] {
		pot[k] = v
	}
	pot[edgeIdx] += sign
	if pot[edgeIdx] == 0 {
		delete(pot, edgeIdx)
	}
	b.G.potential[leaf] = pot
}

// ExtendByRow tries to extend the network by one more edge-row whose
// support (over already-bound tree columns) is given. It returns the two
// endpoint nodes and true on success; false means this row is not
// consistent with any path in the current tree, i.e. the prefix is not
// graphic (or not cographic, on the transpose).
func (b *NetworkBuilder) ExtendByRow(elt element.Element, support Support) (from, to int, ok bool) {
	if len(support) == 0 {
		// A genuinely empty row has no graphic meaning here; callers
		// filter these out before reaching the oracle.
		return 0, 0, false
	}

	target := map[int]int8{}
	for col, v := range support {
		target[col] = v
	}

	for candidate := 0; candidate < b.G.NumNodes(); candidate++ {
		// diff = target XOR-like-subtract potential[candidate]; if the
		// result is itself some other node's potential, we found our pair.
		diff := map[int]int8{}
		for k, v := range target {
			diff[k] += v
		}
		for k, v := range b.G.potential[candidate] {
			diff[k] -= v
			if diff[k] == 0 {
				delete(diff, k)
			}
		}
		if other, found := b.findNodeWithPotential(diff); found {
			b.G.AddEdge(candidate, other, elt, +1, false)
			return candidate, other, true
		}
	}
	return 0, 0, false
}

func (b *NetworkBuilder) findNodeWithPotential(want map[int]int8) (int, bool) {
	for n := 0; n < b.G.NumNodes(); n++ {
		if potentialEqual(b.G.potential[n], want) {
			return n, true
		}
	}
	return 0, false
}

func potentialEqual(a, b map[int]int8) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}
