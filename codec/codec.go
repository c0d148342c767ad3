/*
Package codec implements canonical binary encoding of contract records.

Records encode as a concatenation of their fields in declaration order with
no delimiters and no length prefix. Fixed-width values are written raw, integers
in nested position take fixed big-endian width. Only standalone top-level
integers use the minimal big-endian form, see [TopEncodeU64].

Records plug into the codec by implementing [io.Serializable]: EncodeBinary
writes the nested form of the record, DecodeBinary reads it back and reports
failures through [io.BinReader.Err].
*/
package codec

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/io"
)

// Codec is a host canonical encoding layer for records.
type Codec interface {
	// Marshal returns canonical top-level encoding of v.
	Marshal(v io.Serializable) ([]byte, error)
	// Unmarshal decodes top-level value b into v. The error is always
	// a *DecodeError.
	Unmarshal(b []byte, v io.Serializable) error
}

// Strict is a [Codec] requiring the whole input to be consumed by a
// top-level value.
type Strict struct{}

var _ Codec = Strict{}

// Marshal implements [Codec].
func (Strict) Marshal(v io.Serializable) ([]byte, error) {
	w := io.NewBufBinWriter()
	v.EncodeBinary(w.BinWriter)
	if w.Err != nil {
		return nil, fmt.Errorf("encode %s: %w", typeName(v), w.Err)
	}

	return w.Bytes(), nil
}

// Unmarshal implements [Codec].
func (Strict) Unmarshal(b []byte, v io.Serializable) error {
	src := bytes.NewReader(b)
	r := io.NewBinReaderFromIO(src)

	v.DecodeBinary(r)
	if r.Err != nil {
		return newDecodeError(typeName(v), r.Err)
	}

	if n := src.Len(); n > 0 {
		return &DecodeError{
			Type: typeName(v),
			Err:  fmt.Errorf("%w: %d left", ErrTrailingBytes, n),
		}
	}

	return nil
}

func typeName(v any) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", v), "*")
}
