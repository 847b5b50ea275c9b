// File: attributes.go
// Role: post-order propagation of the three tri-state attributes from
// children to parent, per spec §7.
package decomp

// SetAttributes recomputes n's three tri-state attributes from its
// children (recursively, post-order), leaving leaf nodes' attributes as
// already set by the stage that produced them. When the scheduler's
// stop-flags cut the run short, Unknown attributes can remain.
func (n *Node) SetAttributes() {
	for _, c := range n.Children {
		c.SetAttributes()
	}

	switch n.Type {
	case TypeIrregular:
		n.Regularity, n.Graphicness, n.Cographicness = False, False, False
	case TypePlanar:
		n.Regularity, n.Graphicness, n.Cographicness = True, True, True
	case TypeR10:
		n.Regularity, n.Graphicness, n.Cographicness = True, False, False
	case TypeGraph:
		n.Regularity = True
		n.Graphicness = True
	case TypeCograph:
		n.Regularity = True
		n.Cographicness = True
	case TypeSeriesParallel:
		if len(n.Children) == 1 {
			c := n.Children[0]
			n.Regularity = c.Regularity
			n.Graphicness = c.Graphicness
			n.Cographicness = c.Cographicness
		} else {
			n.Regularity, n.Graphicness, n.Cographicness = True, True, True
		}
	case TypeOneSum, TypeTwoSum, TypeThreeSum, TypeDeltaSum, TypeYSum, TypePivots:
		n.Regularity = minAttr(n.Children, func(c *Node) TriState { return c.Regularity })
		n.Graphicness = minAttr(n.Children, func(c *Node) TriState { return c.Graphicness })
		n.Cographicness = minAttr(n.Children, func(c *Node) TriState { return c.Cographicness })
	}
}

// minAttr reduces an attribute across children: if any child is False,
// the result is False (clamped); else if every child is True, the result
// is True; otherwise Unknown.
func minAttr(children []*Node, get func(*Node) TriState) TriState {
	sawUnknown := false
	for _, c := range children {
		v := get(c)
		if v == False {
			return False
		}
		if v == Unknown {
			sawUnknown = true
		}
	}
	if sawUnknown {
		return Unknown
	}
	return True
}
