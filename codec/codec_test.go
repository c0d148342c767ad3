package codec_test

import (
	"errors"
	"math"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/io"
	"github.com/spiritupbro/human-protocol/codec"
	"github.com/stretchr/testify/require"
)

// testRecord is a minimal fixed-width record used to exercise the codec.
type testRecord struct {
	tag   [4]byte
	value uint64
}

func (x *testRecord) EncodeBinary(w *io.BinWriter) {
	w.WriteBytes(x.tag[:])
	codec.WriteU64(w, x.value)
}

func (x *testRecord) DecodeBinary(r *io.BinReader) {
	r.ReadBytes(x.tag[:])
	x.value = codec.ReadU64(r)
}

// failingRecord reports a typed decoding error through the reader.
type failingRecord struct{}

func (failingRecord) EncodeBinary(*io.BinWriter) {}

func (failingRecord) DecodeBinary(r *io.BinReader) {
	r.Err = &codec.DecodeError{Type: "custom", Err: codec.ErrInvalidWidth}
}

func TestStrict_Marshal(t *testing.T) {
	rec := testRecord{tag: [4]byte{1, 2, 3, 4}, value: 0x0102}

	b, err := codec.Strict{}.Marshal(&rec)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3, 4, 0, 0, 0, 0, 0, 0, 1, 2}, b)

	t.Run("deterministic", func(t *testing.T) {
		again, err := codec.Strict{}.Marshal(&rec)
		require.NoError(t, err)
		require.Equal(t, b, again)
	})
}

func TestStrict_Unmarshal(t *testing.T) {
	src := testRecord{tag: [4]byte{0xff, 0, 0xff, 0}, value: math.MaxUint64}
	b, err := codec.Strict{}.Marshal(&src)
	require.NoError(t, err)

	var res testRecord
	require.NoError(t, codec.Strict{}.Unmarshal(b, &res))
	require.Equal(t, src, res)

	t.Run("empty", func(t *testing.T) {
		err := codec.Strict{}.Unmarshal(nil, new(testRecord))
		require.ErrorIs(t, err, codec.ErrTruncated)
	})

	t.Run("truncated", func(t *testing.T) {
		for i := 1; i < len(b); i++ {
			err := codec.Strict{}.Unmarshal(b[:i], new(testRecord))

			var de *codec.DecodeError
			require.True(t, errors.As(err, &de), "prefix %d", i)
			require.Equal(t, "codec_test.testRecord", de.Type)
			require.ErrorIs(t, err, codec.ErrTruncated, "prefix %d", i)
		}
	})

	t.Run("trailing bytes", func(t *testing.T) {
		err := codec.Strict{}.Unmarshal(append(b, 0), new(testRecord))
		require.ErrorIs(t, err, codec.ErrTrailingBytes)
	})

	t.Run("typed reader error", func(t *testing.T) {
		err := codec.Strict{}.Unmarshal([]byte{1}, failingRecord{})

		var de *codec.DecodeError
		require.True(t, errors.As(err, &de))
		require.Equal(t, "custom", de.Type)
		require.ErrorIs(t, err, codec.ErrInvalidWidth)
	})
}
