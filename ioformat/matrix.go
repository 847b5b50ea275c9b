package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/discopt/seymour-go/cmrerrors"
	"github.com/discopt/seymour-go/spmatrix"
)

// tokenizer reads whitespace (and newline) separated tokens from r,
// keeping one token of lookahead so trailing-garbage checks (atEnd) can
// tell "nothing left" from "parse error".
type tokenizer struct {
	sc   *bufio.Scanner
	more bool
}

func newTokenizer(r io.Reader) *tokenizer {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	sc.Split(bufio.ScanWords)
	t := &tokenizer{sc: sc}
	t.more = sc.Scan()
	return t
}

func (t *tokenizer) next() (string, bool) {
	if !t.more {
		return "", false
	}
	tok := t.sc.Text()
	t.more = t.sc.Scan()
	return tok, true
}

func (t *tokenizer) nextInt() (int64, error) {
	tok, ok := t.next()
	if !ok {
		return 0, fmt.Errorf("ioformat: unexpected end of input")
	}
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("ioformat: expected integer, got %q", tok)
	}
	return v, nil
}

func (t *tokenizer) atEnd() bool { return !t.more }

// ReadSparseMatrix parses spec §6's sparse matrix text format: a header
// line `numRows numColumns numNonzeros` followed by that many `row column
// value` triples, 1-based. Duplicate (row, column) pairs and trailing
// garbage after the last entry are rejected.
func ReadSparseMatrix(r io.Reader, domain spmatrix.Domain) (*spmatrix.Matrix, error) {
	t := newTokenizer(r)
	rows, err := t.nextInt()
	if err != nil {
		return nil, cmrerrors.New(cmrerrors.Input, err)
	}
	cols, err := t.nextInt()
	if err != nil {
		return nil, cmrerrors.New(cmrerrors.Input, err)
	}
	nnz, err := t.nextInt()
	if err != nil {
		return nil, cmrerrors.New(cmrerrors.Input, err)
	}

	b := spmatrix.NewBuilder(int(rows), int(cols), domain)
	for i := int64(0); i < nnz; i++ {
		r1, err := t.nextInt()
		if err != nil {
			return nil, cmrerrors.New(cmrerrors.Input, err)
		}
		c1, err := t.nextInt()
		if err != nil {
			return nil, cmrerrors.New(cmrerrors.Input, err)
		}
		v, err := t.nextInt()
		if err != nil {
			return nil, cmrerrors.New(cmrerrors.Input, err)
		}
		if err := b.Add(int(r1)-1, int(c1)-1, v); err != nil {
			return nil, cmrerrors.New(cmrerrors.Input, err)
		}
	}
	if !t.atEnd() {
		return nil, cmrerrors.New(cmrerrors.Input, fmt.Errorf("ioformat: trailing garbage after %d entries", nnz))
	}
	m, err := b.Build()
	if err != nil {
		return nil, cmrerrors.New(cmrerrors.Input, err)
	}
	return m, nil
}

// WriteSparseMatrix renders m in spec §6's sparse matrix text format.
func WriteSparseMatrix(w io.Writer, m *spmatrix.Matrix) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d %d\n", m.Rows(), m.Cols(), m.NNZ()); err != nil {
		return cmrerrors.New(cmrerrors.Output, err)
	}
	for i := 0; i < m.Rows(); i++ {
		entries, err := m.RowSlice(i)
		if err != nil {
			return cmrerrors.New(cmrerrors.Output, err)
		}
		for _, e := range entries {
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", i+1, e.Index+1, e.Value); err != nil {
				return cmrerrors.New(cmrerrors.Output, err)
			}
		}
	}
	if err := bw.Flush(); err != nil {
		return cmrerrors.New(cmrerrors.Output, err)
	}
	return nil
}

// ReadDenseMatrix parses spec §6's dense matrix text format: a header line
// `numRows numColumns` followed by numRows*numColumns row-major integers.
func ReadDenseMatrix(r io.Reader, domain spmatrix.Domain) (*spmatrix.Matrix, error) {
	t := newTokenizer(r)
	rows, err := t.nextInt()
	if err != nil {
		return nil, cmrerrors.New(cmrerrors.Input, err)
	}
	cols, err := t.nextInt()
	if err != nil {
		return nil, cmrerrors.New(cmrerrors.Input, err)
	}

	b := spmatrix.NewBuilder(int(rows), int(cols), domain)
	for i := int64(0); i < rows; i++ {
		for j := int64(0); j < cols; j++ {
			v, err := t.nextInt()
			if err != nil {
				return nil, cmrerrors.New(cmrerrors.Input, err)
			}
			if v == 0 {
				continue
			}
			if err := b.Add(int(i), int(j), v); err != nil {
				return nil, cmrerrors.New(cmrerrors.Input, err)
			}
		}
	}
	if !t.atEnd() {
		return nil, cmrerrors.New(cmrerrors.Input, fmt.Errorf("ioformat: trailing garbage after dense body"))
	}
	m, err := b.Build()
	if err != nil {
		return nil, cmrerrors.New(cmrerrors.Input, err)
	}
	return m, nil
}

// WriteDenseMatrix renders m in spec §6's dense matrix text format.
func WriteDenseMatrix(w io.Writer, m *spmatrix.Matrix) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d\n", m.Rows(), m.Cols()); err != nil {
		return cmrerrors.New(cmrerrors.Output, err)
	}
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return cmrerrors.New(cmrerrors.Output, err)
			}
			sep := " "
			if j == m.Cols()-1 {
				sep = "\n"
			}
			if _, err := fmt.Fprintf(bw, "%d%s", v, sep); err != nil {
				return cmrerrors.New(cmrerrors.Output, err)
			}
		}
	}
	if err := bw.Flush(); err != nil {
		return cmrerrors.New(cmrerrors.Output, err)
	}
	return nil
}
