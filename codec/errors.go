package codec

import (
	"errors"
	"fmt"
	goio "io"
)

// Kinds of decoding failures. Every [DecodeError] wraps exactly one of them.
var (
	// ErrTruncated is returned when input ends before the value is complete.
	ErrTruncated = errors.New("truncated input")

	// ErrTrailingBytes is returned when top-level input has bytes left after
	// the value.
	ErrTrailingBytes = errors.New("trailing bytes after value")

	// ErrInvalidWidth is returned for fixed-width values of the wrong length.
	ErrInvalidWidth = errors.New("invalid width")

	// ErrPadding is returned for non-minimal top-level integers.
	ErrPadding = errors.New("non-canonical padding")

	// ErrOverflow is returned for integers not fitting into the target type.
	ErrOverflow = errors.New("integer overflow")
)

// DecodeError is returned when input can't be parsed under the canonical
// encoding rules.
type DecodeError struct {
	// Type is a name of the value being decoded.
	Type string
	// Err is the failure reason, matches one of the package kinds
	// with [errors.Is].
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Type, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// newDecodeError makes DecodeError from an arbitrary reader error. Short reads
// are reported as ErrTruncated, already typed errors are returned as is.
func newDecodeError(typ string, err error) error {
	var de *DecodeError
	if errors.As(err, &de) {
		return err
	}

	if errors.Is(err, goio.EOF) || errors.Is(err, goio.ErrUnexpectedEOF) {
		err = fmt.Errorf("%w: %w", ErrTruncated, err)
	}

	return &DecodeError{Type: typ, Err: err}
}
