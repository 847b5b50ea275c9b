package ioformat_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/discopt/seymour-go/ioformat"
	"github.com/discopt/seymour-go/params"
)

func TestParamsJSONRoundTrip(t *testing.T) {
	p := params.New(params.WithStopWhenIrregular(true))

	var buf bytes.Buffer
	require.NoError(t, ioformat.WriteParams(&buf, p))

	got, err := ioformat.ReadParams(&buf)
	require.NoError(t, err)
	require.Equal(t, p, got)
}

func TestReadParamsRejectsInvalidStrategy(t *testing.T) {
	in := `{"decomposeStrategy": 0}`
	_, err := ioformat.ReadParams(bytes.NewBufferString(in))
	require.Error(t, err)
}

func TestWriteStatisticsEncodesTotals(t *testing.T) {
	var st params.Statistics
	st.Observe(&st.Graphicness, 5*time.Millisecond)

	var buf bytes.Buffer
	require.NoError(t, ioformat.WriteStatistics(&buf, st))
	require.Contains(t, buf.String(), "\"calls\": 1")
}
