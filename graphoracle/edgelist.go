package graphoracle

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/discopt/seymour-go/element"
)

// WriteEdgeList serializes g as one "from to elt sign tree" line per
// edge, in insertion order, matching the plain-text format spec §6 asks
// ioformat to round-trip for a decomposition's graphic/cographic leaves.
func WriteEdgeList(w io.Writer, g *Graph) error {
	bw := bufio.NewWriter(w)
	for _, e := range g.Edges() {
		if e.From < 0 {
			continue // tombstoned by RemoveEdge
		}
		tree := "0"
		if e.IsTree {
			tree = "1"
		}
		if _, err := fmt.Fprintf(bw, "%d %d %s %d %s\n", e.From, e.To, e.Elt, e.Sign, tree); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadEdgeList parses the format WriteEdgeList produces, returning a
// fresh Graph with exactly the nodes referenced by at least one edge.
func ReadEdgeList(r io.Reader) (*Graph, error) {
	g := NewGraph()
	seen := map[int]int{} // raw node id in the file -> dense index in g
	nodeFor := func(raw int) int {
		if idx, ok := seen[raw]; ok {
			return idx
		}
		idx := g.AddNode()
		seen[raw] = idx
		return idx
	}

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 5 {
			return nil, fmt.Errorf("graphoracle: line %d: want 5 fields, got %d", line, len(fields))
		}
		from, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("graphoracle: line %d: bad from: %w", line, err)
		}
		to, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("graphoracle: line %d: bad to: %w", line, err)
		}
		var elt element.Element
		if err := elt.UnmarshalText([]byte(fields[2])); err != nil {
			return nil, fmt.Errorf("graphoracle: line %d: bad element: %w", line, err)
		}
		sign, err := strconv.Atoi(fields[3])
		if err != nil {
			return nil, fmt.Errorf("graphoracle: line %d: bad sign: %w", line, err)
		}
		tree := fields[4] == "1"
		g.AddEdge(nodeFor(from), nodeFor(to), elt, int8(sign), tree)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return g, nil
}
