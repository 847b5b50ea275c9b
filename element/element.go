// Package element defines the signed row/column handles that travel across
// decomposition node boundaries, plus submatrix selectors and minor
// records built from them.
//
// An Element is the only identifier shared between a parent node and its
// children: a positive value names a row, a negative value names a column,
// and zero means "none". This mirrors how the teacher's core package uses
// string Vertex/Edge IDs as the sole cross-boundary handle, specialised
// here to a signed machine integer because rows and columns are dense,
// 1-based index spaces rather than user-chosen names.
package element

import "fmt"

// Element is a signed handle: positive for a row, negative for a column,
// zero for "none". Row r (r >= 1) is encoded as Element(r); column c
// (c >= 1) is encoded as Element(-c).
type Element int

// None is the sentinel "no element" value.
const None Element = 0

// MakeRow returns the Element naming 1-based row index r.
func MakeRow(r int) Element {
	if r <= 0 {
		panic(fmt.Sprintf("element: MakeRow requires r >= 1, got %d", r))
	}
	return Element(r)
}

// MakeColumn returns the Element naming 1-based column index c.
func MakeColumn(c int) Element {
	if c <= 0 {
		panic(fmt.Sprintf("element: MakeColumn requires c >= 1, got %d", c))
	}
	return Element(-c)
}

// IsRow reports whether e names a row.
func (e Element) IsRow() bool { return e > 0 }

// IsColumn reports whether e names a column.
func (e Element) IsColumn() bool { return e < 0 }

// IsNone reports whether e is the sentinel "none" value.
func (e Element) IsNone() bool { return e == 0 }

// Index extracts the 0-based index of e within its own kind (row or
// column). Panics if e is None.
func (e Element) Index() int {
	switch {
	case e > 0:
		return int(e) - 1
	case e < 0:
		return int(-e) - 1
	default:
		panic("element: Index called on None")
	}
}

// OneBased extracts the 1-based index of e within its own kind.
func (e Element) OneBased() int {
	if e > 0 {
		return int(e)
	}
	return int(-e)
}

// String renders e as "+N" for rows, "-N" for columns, "none" for None —
// the textual form used by certificate dumps (ioformat) and log lines.
func (e Element) String() string {
	switch {
	case e > 0:
		return fmt.Sprintf("+%d", int(e))
	case e < 0:
		return fmt.Sprintf("-%d", int(-e))
	default:
		return "none"
	}
}

// MarshalText implements encoding.TextMarshaler using the String form.
func (e Element) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, parsing the String form.
func (e *Element) UnmarshalText(data []byte) error {
	s := string(data)
	if s == "none" || s == "" {
		*e = None
		return nil
	}
	var sign int
	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err != nil {
		return fmt.Errorf("element: cannot parse %q: %w", s, err)
	}
	if n > 0 {
		sign = 1
	} else {
		sign = -1
		n = -n
	}
	*e = Element(sign * n)
	return nil
}
