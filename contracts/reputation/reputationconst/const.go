/*
Package reputationconst contains reputation bounds shared by the reputation
contract code and off-chain tooling.
*/
package reputationconst

const (
	// MaxReputation is the highest reputation score a worker may hold. It
	// stands for 100% reputation.
	MaxReputation = 100

	// MinReputation is the lowest reputation score a worker may hold.
	MinReputation = 1
)
