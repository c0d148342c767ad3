package reputation_test

import (
	"encoding/hex"
	"fmt"

	"github.com/spiritupbro/human-protocol/rpc/reputation"
)

func ExampleEncode() {
	var addr reputation.Address
	addr[len(addr)-1] = 0x01

	w := reputation.NewWorker(addr, 100)
	fmt.Println(hex.EncodeToString(reputation.Encode(w)))
	// Output:
	// 00000000000000000000000000000000000000000000000000000000000000010000000000000064
}

func ExampleCheckReputation() {
	for _, r := range []uint64{0, 50, 101} {
		fmt.Println(r, reputation.CheckReputation(r))
	}
	// Output:
	// 0 reputation out of range: 0 not in [1, 100]
	// 50 <nil>
	// 101 reputation out of range: 101 not in [1, 100]
}
