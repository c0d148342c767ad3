package reputation

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/nspcc-dev/neo-go/pkg/io"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/spiritupbro/human-protocol/codec"
)

// WorkerSize is a size of canonical Worker encoding.
const WorkerSize = AddressSize + codec.U64Size

// Worker is a contract participant with its reputation score. Reputation is
// kept raw, it's not guaranteed to be within [MinReputation, MaxReputation].
type Worker struct {
	WorkerAddress Address `json:"worker_address"`
	Reputation    uint64  `json:"reputation"`
}

var (
	_ io.Serializable       = (*Worker)(nil)
	_ stackitem.Convertible = (*Worker)(nil)
)

// NewWorker constructs Worker from the given fields as is.
func NewWorker(addr Address, reputation uint64) Worker {
	return Worker{
		WorkerAddress: addr,
		Reputation:    reputation,
	}
}

// Equals checks whether both workers have the same address and reputation.
func (w Worker) Equals(other Worker) bool {
	return w.WorkerAddress.Equals(other.WorkerAddress) && w.Reputation == other.Reputation
}

// Clone returns independent copy of the worker.
func (w Worker) Clone() Worker {
	return NewWorker(w.WorkerAddress, w.Reputation)
}

// EncodeBinary implements io.Serializable.
func (w *Worker) EncodeBinary(bw *io.BinWriter) {
	w.WorkerAddress.EncodeBinary(bw)
	codec.WriteU64(bw, w.Reputation)
}

// DecodeBinary implements io.Serializable.
func (w *Worker) DecodeBinary(r *io.BinReader) {
	w.WorkerAddress.DecodeBinary(r)
	w.Reputation = codec.ReadU64(r)
}

// Encode returns canonical encoding of w.
func Encode(w Worker) []byte {
	bw := io.NewBufBinWriter()
	w.EncodeBinary(bw.BinWriter)
	return bw.Bytes()
}

// Decode decodes Worker from its canonical encoding. Input must contain
// exactly one Worker, the error is always a *codec.DecodeError.
func Decode(b []byte) (Worker, error) {
	return DecodeWith(codec.Strict{}, b)
}

// EncodeWith encodes w using the given host codec.
func EncodeWith(c codec.Codec, w Worker) ([]byte, error) {
	return c.Marshal(&w)
}

// DecodeWith decodes Worker using the given host codec.
func DecodeWith(c codec.Codec, b []byte) (Worker, error) {
	var w Worker
	if err := c.Unmarshal(b, &w); err != nil {
		return Worker{}, err
	}

	return w, nil
}

// ToStackItem converts Worker to VM structure of address bytes and integer
// reputation.
func (w *Worker) ToStackItem() (stackitem.Item, error) {
	return stackitem.NewStruct([]stackitem.Item{
		stackitem.NewByteArray(w.WorkerAddress.Bytes()),
		stackitem.NewBigInteger(new(big.Int).SetUint64(w.Reputation)),
	}), nil
}

// FromStackItem retrieves fields of Worker from the given
// [stackitem.Item] or returns an error if it's not possible to do so.
func (w *Worker) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	b, err := arr[0].TryBytes()
	if err != nil {
		return fmt.Errorf("field WorkerAddress: %w", err)
	}

	addr, err := AddressFromBytes(b)
	if err != nil {
		return fmt.Errorf("field WorkerAddress: %w", err)
	}

	n, err := arr[1].TryInteger()
	if err != nil {
		return fmt.Errorf("field Reputation: %w", err)
	}
	if !n.IsUint64() {
		return fmt.Errorf("field Reputation: %w: %s", codec.ErrOverflow, n)
	}

	w.WorkerAddress = addr
	w.Reputation = n.Uint64()

	return nil
}
