package reputation

import (
	"github.com/spiritupbro/human-protocol/contracts/reputation/reputationconst"
)

const (
	// MaxReputation is the highest reputation a worker may hold.
	MaxReputation uint64 = reputationconst.MaxReputation

	// MinReputation is the lowest reputation a worker may hold.
	MinReputation uint64 = reputationconst.MinReputation
)
