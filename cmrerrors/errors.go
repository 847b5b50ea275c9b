// Package cmrerrors defines the wire error taxonomy shared by every stage
// of the Seymour decomposition engine, plus sentinel errors for conditions
// that show up across package boundaries (timeouts, invariant violations,
// bad parameters).
//
// Every exported function in this module that can fail returns a plain
// Go error. Callers that need the wire code use CodeOf to classify it;
// the CLI exits with status 1 on any error, whatever its code.
package cmrerrors

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// Code is the closed wire-value enum from spec §6.
type Code int

const (
	// Ok indicates success; Code values are otherwise only attached to errors.
	Ok Code = iota
	// Input indicates malformed input (matrix text, submatrix text, parameters).
	Input
	// Output indicates a failure while writing a result.
	Output
	// Memory indicates an allocation failure.
	Memory
	// Overflow indicates a fixed-width arithmetic overflow that could not be
	// downgraded to arbitrary precision.
	Overflow
	// InvalidParameters indicates a DecompositionParams value violates its
	// own constraints (e.g. the decomposeStrategy bitset contract).
	InvalidParameters
	// Timeout indicates the wall-clock deadline elapsed.
	Timeout
	// InternalInvariant indicates a broken internal invariant; any such error
	// aborts the whole run (spec §7).
	InternalInvariant
)

// String renders the Code using the wire vocabulary from spec §6.
func (c Code) String() string {
	switch c {
	case Ok:
		return "Ok"
	case Input:
		return "Input"
	case Output:
		return "Output"
	case Memory:
		return "Memory"
	case Overflow:
		return "Overflow"
	case InvalidParameters:
		return "InvalidParameters"
	case Timeout:
		return "Timeout"
	case InternalInvariant:
		return "InternalInvariant"
	default:
		return fmt.Sprintf("Code(%d)", int(c))
	}
}

// codedError pairs a Code with an underlying error so callers can recover
// the wire classification via errors.As without losing the message chain.
type codedError struct {
	code Code
	err  error
}

func (e *codedError) Error() string { return e.code.String() + ": " + e.err.Error() }
func (e *codedError) Unwrap() error { return e.err }

// New wraps err with a wire Code, attaching a stack trace via pkg/errors so
// CLI-level diagnostics can show where the failure originated.
func New(code Code, err error) error {
	if err == nil {
		return nil
	}
	return &codedError{code: code, err: pkgerrors.WithStack(err)}
}

// Newf formats a message and wraps it with a wire Code.
func Newf(code Code, format string, args ...interface{}) error {
	return New(code, fmt.Errorf(format, args...))
}

// CodeOf extracts the wire Code from err, or Ok if err is nil, or
// InternalInvariant if err carries no Code (an uncategorised bug).
func CodeOf(err error) Code {
	if err == nil {
		return Ok
	}
	var ce *codedError
	if errors.As(err, &ce) {
		return ce.code
	}
	return InternalInvariant
}

// Sentinel errors shared across packages. ErrTimeout and
// ErrInvalidParameters are wrapped with New where they are detected so
// CodeOf classifies them; ErrInternalInvariant and ErrMissingCertificate
// are declared here but no package in this module returns them.
var (
	// ErrTimeout is returned by the scheduler when the deadline elapses.
	ErrTimeout = errors.New("cmrerrors: deadline exceeded")
	// ErrInternalInvariant flags a broken structural invariant (unsorted
	// row, non-monotone slice, out-of-range entry at a non-pivot check).
	ErrInternalInvariant = errors.New("cmrerrors: internal invariant violated")
	// ErrInvalidParameters flags a DecompositionParams value that violates
	// its own bitset contract.
	ErrInvalidParameters = errors.New("cmrerrors: invalid parameters")
	// ErrMissingCertificate flags a negative tri-state attribute with no
	// attached minor, itself an InternalInvariant violation per spec §7.
	ErrMissingCertificate = errors.New("cmrerrors: negative attribute without certificate")
)
