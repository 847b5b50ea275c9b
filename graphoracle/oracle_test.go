package graphoracle_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/discopt/seymour-go/graphoracle"
	"github.com/discopt/seymour-go/spmatrix"
)

func buildRows(t *testing.T, rows, cols int, perRow [][]spmatrix.Entry) *spmatrix.Matrix {
	t.Helper()
	m, err := spmatrix.BuildFromRows(rows, cols, spmatrix.Binary, perRow)
	require.NoError(t, err)
	return m
}

func TestTestGraphicTriangleSucceeds(t *testing.T) {
	m := buildRows(t, 3, 2, [][]spmatrix.Entry{
		{{Index: 0, Value: 1}},
		{{Index: 1, Value: 1}},
		{{Index: 0, Value: 1}, {Index: 1, Value: 1}},
	})
	_, ok := graphoracle.TestGraphic(m)
	require.True(t, ok)
}

func TestTestGraphicStarTripleRejected(t *testing.T) {
	m := buildRows(t, 4, 3, [][]spmatrix.Entry{
		{{Index: 0, Value: 1}},
		{{Index: 1, Value: 1}},
		{{Index: 2, Value: 1}},
		{{Index: 0, Value: 1}, {Index: 1, Value: 1}, {Index: 2, Value: 1}},
	})
	_, ok := graphoracle.TestGraphic(m)
	require.False(t, ok)
}

func TestTestGraphicSingleLoop(t *testing.T) {
	m := buildRows(t, 1, 1, [][]spmatrix.Entry{
		{{Index: 0, Value: 1}},
	})
	_, ok := graphoracle.TestGraphic(m)
	require.True(t, ok)
}

func TestEdgeListRoundTrip(t *testing.T) {
	m := buildRows(t, 3, 2, [][]spmatrix.Entry{
		{{Index: 0, Value: 1}},
		{{Index: 1, Value: 1}},
		{{Index: 0, Value: 1}, {Index: 1, Value: 1}},
	})
	b, ok := graphoracle.TestGraphic(m)
	require.True(t, ok)

	var buf bytes.Buffer
	require.NoError(t, graphoracle.WriteEdgeList(&buf, b.G))

	g2, err := graphoracle.ReadEdgeList(&buf)
	require.NoError(t, err)
	require.Equal(t, b.G.NumEdges(), g2.NumEdges())
}
