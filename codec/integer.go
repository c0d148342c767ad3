package codec

import (
	"encoding/binary"
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/io"
)

// U64Size is a size of nested uint64 encoding.
const U64Size = 8

// WriteU64 writes x in nested form: U64Size big-endian bytes.
func WriteU64(w *io.BinWriter, x uint64) {
	var b [U64Size]byte
	binary.BigEndian.PutUint64(b[:], x)
	w.WriteBytes(b[:])
}

// ReadU64 reads uint64 written by WriteU64. Errors are reported through
// r.Err, zero is returned in this case.
func ReadU64(r *io.BinReader) uint64 {
	var b [U64Size]byte
	r.ReadBytes(b[:])
	if r.Err != nil {
		return 0
	}

	return binary.BigEndian.Uint64(b[:])
}

// TopEncodeU64 returns top-level encoding of x: big-endian bytes with leading
// zeros stripped. Zero encodes into empty byte slice.
func TopEncodeU64(x uint64) []byte {
	var b [U64Size]byte
	binary.BigEndian.PutUint64(b[:], x)

	i := 0
	for i < U64Size && b[i] == 0 {
		i++
	}

	return append([]byte{}, b[i:]...)
}

// TopDecodeU64 decodes top-level uint64 produced by TopEncodeU64. The whole
// input is consumed; leading zero bytes are rejected.
func TopDecodeU64(b []byte) (uint64, error) {
	if len(b) > U64Size {
		return 0, &DecodeError{
			Type: "uint64",
			Err:  fmt.Errorf("%w: %d bytes", ErrOverflow, len(b)),
		}
	}

	if len(b) > 0 && b[0] == 0 {
		return 0, &DecodeError{Type: "uint64", Err: ErrPadding}
	}

	var x uint64
	for i := range b {
		x = x<<8 | uint64(b[i])
	}

	return x, nil
}
