package scheduler_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/discopt/seymour-go/decomp"
	"github.com/discopt/seymour-go/scheduler"
	"github.com/discopt/seymour-go/spmatrix"
)

func TestRunSplitsOneSumIntoGraphicLeaves(t *testing.T) {
	b := spmatrix.NewBuilder(3, 3, spmatrix.Ternary)
	require.NoError(t, b.Add(0, 0, 1))
	require.NoError(t, b.Add(1, 1, 1))
	require.NoError(t, b.Add(2, 2, 1))
	m, err := b.Build()
	require.NoError(t, err)

	root := decomp.New(m, true)
	s := scheduler.New(scheduler.Flags{}, time.Time{}, nil)
	s.Enqueue(root)
	require.NoError(t, s.Run())

	root.SetAttributes()
	require.Equal(t, decomp.TypeOneSum, root.Type)
	require.Equal(t, decomp.True, root.Regularity)
	require.Len(t, root.Children, 3)
	for _, c := range root.Children {
		// A 1x1 component with a single entry is both graphic and
		// cographic (it realizes a single self-loop either way), so it
		// resolves as a planar leaf rather than a plain graph leaf.
		require.Equal(t, decomp.TypePlanar, c.Type)
		require.Equal(t, decomp.True, c.Cographicness)
	}
}

func TestRunTerminatesOnLargerConnectedMatrix(t *testing.T) {
	// A 5x5 matrix too large for the direct shortcut (directThreshold==3)
	// but shaped like R10's candidate test; exercises the R10/series-
	// parallel/sequence stages regardless of which one actually resolves
	// it, checking only that the run terminates cleanly.
	b := spmatrix.NewBuilder(5, 5, spmatrix.Ternary)
	for i := 0; i < 5; i++ {
		for _, off := range []int{0, 1, 2} {
			require.NoError(t, b.Add(i, (i+off)%5, 1))
		}
	}
	m, err := b.Build()
	require.NoError(t, err)

	root := decomp.New(m, true)
	s := scheduler.New(scheduler.Flags{StopOnIrregularity: true}, time.Time{}, nil)
	s.Enqueue(root)
	require.NoError(t, s.Run())
}
