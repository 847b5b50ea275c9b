package stage

import (
	"github.com/discopt/seymour-go/decomp"
	"github.com/discopt/seymour-go/graphoracle"
)

// directThreshold is the row/column count at or below which the direct
// shortcut is cheap enough to always try first, per spec C7.
const directThreshold = 3

// TryDirect applies spec C7: for a matrix with at most directThreshold
// rows or columns, settle (co)graphicness directly via graphoracle
// rather than falling through to the nested-minor machinery. It returns
// true if it resolved n (setting its Type/attributes), false if the
// matrix is too large for the shortcut or neither test succeeded.
//
// directGraphicness gates whether this shortcut runs at all (params.Params'
// DirectGraphicness bit); callers that want every node to go through the
// full nested-minor sequence instead pass false.
//
// A matrix that is both graphic and cographic (the 0x0 matrix trivially
// is, and so is any matrix representing a planar graph's incidence
// structure) resolves to a planar leaf rather than a plain graph leaf
// by default. preferGraphicness (params.Params' PreferGraphicness bit)
// overrides that: when both hold, it picks TypeGraph over TypePlanar,
// leaving cographicness recorded as an attribute but not as the node's
// own type.
//
// constructLeafGraphs/constructAllGraphs (params.Params' bits of the same
// name) gate whether the NetworkBuilder's graph is captured into
// n.Graph/n.Cograph as a decomp.GraphArtefact: constructLeafGraphs stores
// only the artefact matching the chosen leaf type, constructAllGraphs
// stores both whenever both tests succeeded, regardless of which one
// became the node's type.
func TryDirect(n *decomp.Node, directGraphicness, preferGraphicness, constructLeafGraphs, constructAllGraphs bool) bool {
	if !directGraphicness {
		return false
	}
	if n.Matrix.Rows() > directThreshold && n.Matrix.Cols() > directThreshold {
		return false
	}

	graphBuilder, graphic := graphoracle.TestGraphic(n.Matrix)
	coBuilder, cographic := graphoracle.TestCographic(n.Matrix)

	artefact := func(b *graphoracle.NetworkBuilder) *decomp.GraphArtefact {
		if b == nil {
			return nil
		}
		return &decomp.GraphArtefact{Graph: b.G}
	}

	switch {
	case graphic && cographic && !preferGraphicness:
		n.Type = decomp.TypePlanar
		n.Regularity = decomp.True
		n.Graphicness = decomp.True
		n.Cographicness = decomp.True
		if constructLeafGraphs || constructAllGraphs {
			n.Graph = artefact(graphBuilder)
			n.Cograph = artefact(coBuilder)
		}
		return true
	case graphic:
		n.Type = decomp.TypeGraph
		n.Regularity = decomp.True
		n.Graphicness = decomp.True
		if cographic {
			n.Cographicness = decomp.True
		}
		if constructLeafGraphs || constructAllGraphs {
			n.Graph = artefact(graphBuilder)
			if constructAllGraphs && cographic {
				n.Cograph = artefact(coBuilder)
			}
		}
		return true
	case cographic:
		n.Type = decomp.TypeCograph
		n.Regularity = decomp.True
		n.Cographicness = decomp.True
		if constructLeafGraphs || constructAllGraphs {
			n.Cograph = artefact(coBuilder)
		}
		return true
	default:
		return false
	}
}
