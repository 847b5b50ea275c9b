package ioformat

import (
	"bufio"
	"fmt"
	"io"

	"github.com/discopt/seymour-go/cmrerrors"
	"github.com/discopt/seymour-go/element"
)

// ReadSubmatrix parses spec §6's submatrix text format: one header line
// `totalRows totalColumns selectedRows selectedColumns`, one line of
// selectedRows 1-based row indices, one line of selectedColumns 1-based
// column indices. totalRows/totalColumns are validated against the
// selector's own indices but are not otherwise part of the returned value.
func ReadSubmatrix(r io.Reader) (*element.Submatrix, error) {
	t := newTokenizer(r)
	totalRows, err := t.nextInt()
	if err != nil {
		return nil, cmrerrors.New(cmrerrors.Input, err)
	}
	totalCols, err := t.nextInt()
	if err != nil {
		return nil, cmrerrors.New(cmrerrors.Input, err)
	}
	selRows, err := t.nextInt()
	if err != nil {
		return nil, cmrerrors.New(cmrerrors.Input, err)
	}
	selCols, err := t.nextInt()
	if err != nil {
		return nil, cmrerrors.New(cmrerrors.Input, err)
	}

	rows := make([]int, selRows)
	for i := range rows {
		v, err := t.nextInt()
		if err != nil {
			return nil, cmrerrors.New(cmrerrors.Input, err)
		}
		if v < 1 || v > totalRows {
			return nil, cmrerrors.New(cmrerrors.Input, fmt.Errorf("ioformat: row index %d out of range [1,%d]", v, totalRows))
		}
		rows[i] = int(v) - 1
	}
	cols := make([]int, selCols)
	for j := range cols {
		v, err := t.nextInt()
		if err != nil {
			return nil, cmrerrors.New(cmrerrors.Input, err)
		}
		if v < 1 || v > totalCols {
			return nil, cmrerrors.New(cmrerrors.Input, fmt.Errorf("ioformat: column index %d out of range [1,%d]", v, totalCols))
		}
		cols[j] = int(v) - 1
	}
	if !t.atEnd() {
		return nil, cmrerrors.New(cmrerrors.Input, fmt.Errorf("ioformat: trailing garbage after submatrix body"))
	}
	return element.NewSubmatrix(rows, cols), nil
}

// WriteSubmatrix renders sub in spec §6's submatrix text format. totalRows
// and totalColumns describe the matrix sub selects from.
func WriteSubmatrix(w io.Writer, sub *element.Submatrix, totalRows, totalColumns int) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d %d %d\n", totalRows, totalColumns, len(sub.Rows), len(sub.Columns)); err != nil {
		return cmrerrors.New(cmrerrors.Output, err)
	}
	for i, r := range sub.Rows {
		sep := " "
		if i == len(sub.Rows)-1 {
			sep = "\n"
		}
		if _, err := fmt.Fprintf(bw, "%d%s", r+1, sep); err != nil {
			return cmrerrors.New(cmrerrors.Output, err)
		}
	}
	if len(sub.Rows) == 0 {
		if _, err := fmt.Fprint(bw, "\n"); err != nil {
			return cmrerrors.New(cmrerrors.Output, err)
		}
	}
	for j, c := range sub.Columns {
		sep := " "
		if j == len(sub.Columns)-1 {
			sep = "\n"
		}
		if _, err := fmt.Fprintf(bw, "%d%s", c+1, sep); err != nil {
			return cmrerrors.New(cmrerrors.Output, err)
		}
	}
	if len(sub.Columns) == 0 {
		if _, err := fmt.Fprint(bw, "\n"); err != nil {
			return cmrerrors.New(cmrerrors.Output, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return cmrerrors.New(cmrerrors.Output, err)
	}
	return nil
}
