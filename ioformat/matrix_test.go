package ioformat_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/discopt/seymour-go/ioformat"
	"github.com/discopt/seymour-go/spmatrix"
)

func TestReadSparseMatrixRoundTrip(t *testing.T) {
	in := "2 2 2\n1 1 1\n2 2 -1\n"
	m, err := ioformat.ReadSparseMatrix(strings.NewReader(in), spmatrix.Ternary)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 2, m.NNZ())

	var buf bytes.Buffer
	require.NoError(t, ioformat.WriteSparseMatrix(&buf, m))
	require.Equal(t, in, buf.String())
}

func TestReadSparseMatrixRejectsTrailingGarbage(t *testing.T) {
	in := "1 1 1\n1 1 1\nextra\n"
	_, err := ioformat.ReadSparseMatrix(strings.NewReader(in), spmatrix.Ternary)
	require.Error(t, err)
}

func TestReadSparseMatrixRejectsDuplicateEntry(t *testing.T) {
	in := "1 1 2\n1 1 1\n1 1 1\n"
	_, err := ioformat.ReadSparseMatrix(strings.NewReader(in), spmatrix.Ternary)
	require.Error(t, err)
}

func TestReadDenseMatrixRoundTrip(t *testing.T) {
	in := "2 3\n1 0 -1\n0 1 0\n"
	m, err := ioformat.ReadDenseMatrix(strings.NewReader(in), spmatrix.Ternary)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	var buf bytes.Buffer
	require.NoError(t, ioformat.WriteDenseMatrix(&buf, m))
	require.Equal(t, in, buf.String())
}
