package reputation

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/mr-tron/base58"
	"github.com/nspcc-dev/neo-go/pkg/io"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/spiritupbro/human-protocol/codec"
)

// AddressSize is a size of account identifier in bytes.
const AddressSize = util.Uint256Size

// Address is an opaque account identifier supplied by the host.
type Address [AddressSize]byte

// AddressFromBytes makes Address from its raw representation.
func AddressFromBytes(b []byte) (Address, error) {
	var a Address
	if len(b) != AddressSize {
		return a, &codec.DecodeError{
			Type: "address",
			Err:  fmt.Errorf("%w: expected %d bytes, got %d", codec.ErrInvalidWidth, AddressSize, len(b)),
		}
	}

	copy(a[:], b)
	return a, nil
}

// ParseAddress parses Address from base58 string or from hex string with
// 0x prefix.
func ParseAddress(s string) (Address, error) {
	var (
		b   []byte
		err error
	)

	if h, ok := strings.CutPrefix(s, "0x"); ok {
		b, err = hex.DecodeString(h)
	} else {
		b, err = base58.Decode(s)
	}
	if err != nil {
		return Address{}, fmt.Errorf("invalid address %q: %w", s, err)
	}

	return AddressFromBytes(b)
}

// Bytes returns a copy of raw address bytes.
func (a Address) Bytes() []byte {
	return a[:]
}

// Equals checks whether both addresses are the same.
func (a Address) Equals(other Address) bool {
	return a == other
}

// Uint256 returns address as neo-go 256-bit value with the same bytes.
func (a Address) Uint256() util.Uint256 {
	return util.Uint256(a)
}

// String returns base58 form of the address.
func (a Address) String() string {
	return base58.Encode(a[:])
}

// MarshalText implements encoding.TextMarshaler.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Address) UnmarshalText(text []byte) error {
	res, err := ParseAddress(string(text))
	if err != nil {
		return err
	}

	*a = res
	return nil
}

// EncodeBinary implements io.Serializable. Address is written raw.
func (a *Address) EncodeBinary(w *io.BinWriter) {
	w.WriteBytes(a[:])
}

// DecodeBinary implements io.Serializable.
func (a *Address) DecodeBinary(r *io.BinReader) {
	r.ReadBytes(a[:])
}
