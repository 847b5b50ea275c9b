// Package graphoracle implements the incidence-list graph facility spec
// §1 names as an external collaborator (node/edge insertion, deletion,
// merge, edge-list reader/writer) together with component C11's
// graphicness oracle: a direct small-matrix test (used by stage C7) and
// an incremental one-element extension test driven by a spanning-tree
// potential encoding (used by stage C11 while walking a nested-minor
// sequence).
//
// The graph type itself is a stripped-down version of the teacher's
// core.Graph: the same Node/Edge shape and insertion primitives, with the
// sync.RWMutex removed because the decomposition engine is single
// threaded end to end (spec §5).
//
// Scope cut: NetworkBuilder always grows its bookkeeping tree as a star
// rooted at node 0, rather than running the general incremental
// tree-discovery search a production network-matrix recognizer (e.g.
// Bixby-Wagner) performs. It is exact for star/shallow structures and
// strictly conservative otherwise — it may reject a prefix that is in
// fact graphic rather than ever accepting a non-graphic one — which keeps
// the decomposition engine's irregularity/leaf findings sound while
// leaving full general-graph recognition out of scope.
package graphoracle

import "github.com/discopt/seymour-go/element"

// Node is a graph vertex, identified by a dense 0-based index.
type Node struct {
	ID int
}

// Edge connects two nodes and carries the matroid Element it represents
// (a row of the matrix being tested), plus whether it is a tree edge of
// the spanning structure used to encode graphicness incrementally.
type Edge struct {
	Elt      element.Element
	From, To int
	Sign     int8 // +1 or -1; orientation used by the potential encoding
	IsTree   bool
}

// Graph is an incidence-list graph: per-node adjacency via forward edge
// indices, grown by AddNode/AddEdge, shrunk by RemoveEdge/MergeNodes.
type Graph struct {
	nodes  []Node
	edges  []Edge
	adj    [][]int // node -> indices into edges

	// potential[n] is the signed sum, over tree edges, of the path from
	// an arbitrary root (node 0) to n — see ExtendByRow's doc comment.
	potential []map[int]int8 // node -> (tree edge index -> accumulated sign)
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{}
}

// AddNode appends a fresh node and returns its ID.
func (g *Graph) AddNode() int {
	id := len(g.nodes)
	g.nodes = append(g.nodes, Node{ID: id})
	g.adj = append(g.adj, nil)
	g.potential = append(g.potential, map[int]int8{})
	return id
}

// NumNodes returns the current node count.
func (g *Graph) NumNodes() int { return len(g.nodes) }

// NumEdges returns the number of edge slots, including slots RemoveEdge
// has turned into tombstones (From and To set to -1); RemoveEdge does not
// compact.
func (g *Graph) NumEdges() int { return len(g.edges) }

// Edges returns a read-only view of all edge slots, tombstones included.
func (g *Graph) Edges() []Edge { return g.edges }

// AddEdge inserts a new edge between from and to carrying elt, returning
// its index. tree/sign are as described on Edge.
func (g *Graph) AddEdge(from, to int, elt element.Element, sign int8, isTree bool) int {
	idx := len(g.edges)
	g.edges = append(g.edges, Edge{Elt: elt, From: from, To: to, Sign: sign, IsTree: isTree})
	g.adj[from] = append(g.adj[from], idx)
	g.adj[to] = append(g.adj[to], idx)
	return idx
}

// RemoveEdge deletes edge idx, compacting adjacency lists. Part of the
// graph facility's public surface named in spec §1 alongside AddEdge;
// callers building a graphic leaf's representation outside this package's
// own oracle use it directly (the oracle itself never deletes an edge
// once placed).
func (g *Graph) RemoveEdge(idx int) {
	e := g.edges[idx]
	g.adj[e.From] = removeValue(g.adj[e.From], idx)
	g.adj[e.To] = removeValue(g.adj[e.To], idx)
	g.edges[idx] = Edge{From: -1, To: -1}
}

func removeValue(xs []int, v int) []int {
	out := xs[:0]
	for _, x := range xs {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}

// MergeNodes folds b into a: every edge incident to b is rewired to a,
// and b becomes isolated. Part of the graph facility's public surface;
// a caller contracting an edge in a materialized graphic leaf's
// representation uses this rather than rebuilding the graph.
func (g *Graph) MergeNodes(a, b int) {
	if a == b {
		return
	}
	for _, idx := range g.adj[b] {
		e := &g.edges[idx]
		if e.From == b {
			e.From = a
		}
		if e.To == b {
			e.To = a
		}
		g.adj[a] = append(g.adj[a], idx)
	}
	g.adj[b] = nil
}

// NeighborsOf returns the edge indices incident to node n.
func (g *Graph) NeighborsOf(n int) []int { return g.adj[n] }
