// Package decomp implements the decomposition node (component C4): a
// shared, reference-counted record holding a matrix, its type, children,
// parent/child element maps, cached analysis artefacts, and the three
// tri-state attributes regularity/graphicness/cographicness.
//
// Ownership follows spec §4.4/§5: each node is owned by exactly one
// scheduler task at a time; CloneSubtree yields a fresh subtree of new
// nodes with their own child lists, element maps and step/pivot slices,
// while each clone's Matrix, Graph/Cograph artefacts, Sequence and
// LastSeparation are the original's pointers, not copies. Reference counts
// are bumped only
// for deliberate sharing across separate subtrees.
package decomp

import (
	"github.com/google/uuid"

	"github.com/discopt/seymour-go/element"
	"github.com/discopt/seymour-go/separation"
	"github.com/discopt/seymour-go/spmatrix"
)

// TriState is one of the three per-node attributes (regularity,
// graphicness, cographicness), valued in {-1, 0, +1}.
type TriState int8

const (
	// Unknown means the attribute has not yet been resolved.
	Unknown TriState = 0
	// False means the attribute is definitively negative (certified by a
	// minor on the node).
	False TriState = -1
	// True means the attribute is definitively positive.
	True TriState = 1
)

// String renders the TriState as its CLI/log presentation form.
func (t TriState) String() string {
	switch t {
	case False:
		return "false"
	case True:
		return "true"
	default:
		return "unknown"
	}
}

// NodeType classifies what kind of decomposition step a node represents.
type NodeType int

const (
	TypeUnknown NodeType = iota
	TypeIrregular
	TypeOneSum
	TypeTwoSum
	TypeDeltaSum
	TypeThreeSum
	TypeYSum
	TypeSeriesParallel
	TypeGraph
	TypeCograph
	TypePlanar
	TypeR10
	TypePivots
)

func (t NodeType) String() string {
	switch t {
	case TypeUnknown:
		return "unknown"
	case TypeIrregular:
		return "irregular"
	case TypeOneSum:
		return "1-sum"
	case TypeTwoSum:
		return "2-sum"
	case TypeDeltaSum:
		return "delta-sum"
	case TypeThreeSum:
		return "3-sum"
	case TypeYSum:
		return "Y-sum"
	case TypeSeriesParallel:
		return "series-parallel"
	case TypeGraph:
		return "graph"
	case TypeCograph:
		return "cograph"
	case TypePlanar:
		return "planar"
	case TypeR10:
		return "R10"
	case TypePivots:
		return "pivots"
	default:
		return "invalid"
	}
}

// ChildLink records, for one child of a node, how its rows and columns map
// back into the parent's element space, plus the special rows/columns a
// sum shares with its parent.
type ChildLink struct {
	RowToParent    []element.Element // length == child.Matrix.Rows()
	ColumnToParent []element.Element // length == child.Matrix.Cols()
	SpecialRows    []int             // indices (into child matrix) shared with parent
	SpecialColumns []int
}

// SequenceBookkeeping holds the nested-minor sequence state of C10/C11:
// the current (possibly pivoted) matrix, maps back into the node's own
// element space, and prefix-length arrays.
type SequenceBookkeeping struct {
	Matrix            *spmatrix.Matrix
	RowsOriginal      []element.Element
	ColumnsOriginal   []element.Element
	SequenceNumRows   []int
	SequenceNumCols   []int
	LastGraphic       int // largest i such that every prefix M_0..M_i is known graphic; -1 if none
	LastCographic     int
	FirstNonCoGraphic int // first i where neither graphic nor cographic extension succeeded; -1 if none
}

// GraphArtefact caches a graphic/cographic leaf's representation: the
// graph object (opaque to decomp; graphoracle owns its shape) plus
// forest/coforest edge labels and arc-reversal bits, indexed by element.
type GraphArtefact struct {
	Graph             interface{} // *graphoracle.Graph, kept as interface{} to avoid an import cycle
	ForestEdges       map[element.Element]int
	CoforestEdges     map[element.Element]int
	ArcReversed       map[element.Element]bool
}

// Node is the decomposition tree/DAG node of spec §3/§4.4.
type Node struct {
	id uuid.UUID

	Ternary bool // false: binary (GF(2)) input; true: 0/+-1 input

	Matrix    *spmatrix.Matrix
	transpose *spmatrix.Matrix // built lazily by Transpose()

	Type NodeType

	Regularity    TriState
	Graphicness   TriState
	Cographicness TriState

	Children   []*Node
	ChildLinks []ChildLink // parallel to Children

	rowToChild []int // parent row index -> child index, -1 if none
	colToChild []int // parent column index -> child index, -1 if none

	refCount int

	// Cached analysis artefacts.
	Graph          *GraphArtefact // for graphic leaves
	Cograph        *GraphArtefact // for cographic leaves
	SPReduction    []SPReductionStep
	PivotRows      []int
	PivotColumns   []int
	Sequence       *SequenceBookkeeping
	Minors         []*element.Minor
	LastSeparation *separation.Sepa

	// Progress flags (spec §4.5 scheduler dispatch).
	TestedTwoConnected   bool
	TestedR10            bool
	TestedSeriesParallel bool
}

// SPReductionStep records one series-parallel reduction: the removed
// element and, for a parallel/series reduction, the surviving element it
// was identified with.
type SPReductionStep struct {
	Removed  element.Element
	Survivor element.Element // None for a zero/unit-row/column removal
	Negated  bool            // true if Removed was anti-parallel to Survivor
}

// New creates a fresh, unreferenced Node wrapping m. Callers that want a
// root node call New directly; children are created via the node's
// update-* methods (see update.go).
func New(m *spmatrix.Matrix, ternary bool) *Node {
	return &Node{
		id:         uuid.New(),
		Ternary:    ternary,
		Matrix:     m,
		Type:       TypeUnknown,
		refCount:   1,
		rowToChild: fillInt(m.Rows(), -1),
		colToChild: fillInt(m.Cols(), -1),
	}
}

func fillInt(n int, v int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// ID returns the node's debug identifier, used only for log correlation —
// it is never part of the decomposition's semantics.
func (n *Node) ID() uuid.UUID { return n.id }

// Transpose returns (building and caching on first use) the node matrix's
// transpose.
func (n *Node) Transpose() *spmatrix.Matrix {
	if n.transpose == nil {
		n.transpose = n.Matrix.Transpose()
	}
	return n.transpose
}

// ChildIndexForRow returns the child index a parent row was distributed
// to, or -1 if it belongs to no single child (e.g. it is a sum's special
// row shared by two children — callers should consult ChildLinks directly
// in that case).
func (n *Node) ChildIndexForRow(row int) int { return n.rowToChild[row] }

// ChildIndexForColumn returns the child index a parent column was
// distributed to, or -1 under the same condition as ChildIndexForRow.
func (n *Node) ChildIndexForColumn(col int) int { return n.colToChild[col] }
