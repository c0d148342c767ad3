package reputation

import (
	"errors"
	"fmt"
)

// ErrRangeViolation is matched by errors returned from CheckReputation.
var ErrRangeViolation = errors.New("reputation out of range")

// RangeViolationError describes reputation value outside of
// [MinReputation, MaxReputation].
type RangeViolationError struct {
	Value uint64
}

func (e *RangeViolationError) Error() string {
	return fmt.Sprintf("%v: %d not in [%d, %d]", ErrRangeViolation, e.Value, MinReputation, MaxReputation)
}

// Is makes RangeViolationError match ErrRangeViolation.
func (e *RangeViolationError) Is(target error) bool {
	return target == ErrRangeViolation
}

// CheckReputation returns *RangeViolationError if r is outside of
// [MinReputation, MaxReputation].
func CheckReputation(r uint64) error {
	if r < MinReputation || r > MaxReputation {
		return &RangeViolationError{Value: r}
	}
	return nil
}

// ClampReputation returns the closest to r value within
// [MinReputation, MaxReputation].
func ClampReputation(r uint64) uint64 {
	switch {
	case r < MinReputation:
		return MinReputation
	case r > MaxReputation:
		return MaxReputation
	default:
		return r
	}
}

// CheckWorker checks reputation of the worker, see CheckReputation.
func CheckWorker(w Worker) error {
	if err := CheckReputation(w.Reputation); err != nil {
		return fmt.Errorf("worker %s: %w", w.WorkerAddress, err)
	}
	return nil
}
