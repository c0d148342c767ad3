package reputation_test

import (
	"errors"
	"math"
	"testing"

	"github.com/spiritupbro/human-protocol/rpc/reputation"
	"github.com/stretchr/testify/require"
)

func TestBounds(t *testing.T) {
	require.EqualValues(t, 1, reputation.MinReputation)
	require.EqualValues(t, 100, reputation.MaxReputation)
}

func TestCheckReputation(t *testing.T) {
	for _, r := range []uint64{reputation.MinReputation, 50, reputation.MaxReputation} {
		require.NoError(t, reputation.CheckReputation(r), r)
	}

	for _, r := range []uint64{0, reputation.MaxReputation + 1, math.MaxUint64} {
		err := reputation.CheckReputation(r)
		require.ErrorIs(t, err, reputation.ErrRangeViolation, r)

		var rv *reputation.RangeViolationError
		require.True(t, errors.As(err, &rv))
		require.Equal(t, r, rv.Value)
	}
}

func TestClampReputation(t *testing.T) {
	for _, tc := range []struct {
		in, out uint64
	}{
		{0, reputation.MinReputation},
		{1, 1},
		{42, 42},
		{100, 100},
		{101, reputation.MaxReputation},
		{math.MaxUint64, reputation.MaxReputation},
	} {
		require.Equal(t, tc.out, reputation.ClampReputation(tc.in), tc.in)
		require.NoError(t, reputation.CheckReputation(reputation.ClampReputation(tc.in)))
	}
}

func TestCheckWorker(t *testing.T) {
	addr := sequentialAddress()

	require.NoError(t, reputation.CheckWorker(reputation.NewWorker(addr, 100)))

	err := reputation.CheckWorker(reputation.NewWorker(addr, 0))
	require.ErrorIs(t, err, reputation.ErrRangeViolation)
	require.Contains(t, err.Error(), addr.String())
}
