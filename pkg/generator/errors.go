package generator

import (
	"errors"
	"fmt"
)

var (
	// ErrNotReady the model repository cannot supply every expected model.
	ErrNotReady = errors.New("model repository is not ready")

	ErrInvalidJob = errors.New("invalid job")
)

// DistributionError an inter-arrival distribution that kept producing only
// unusable gaps.
type DistributionError struct {
	Model   string
	Batches int
	Draws   int
}

func (e *DistributionError) Error() string {
	return fmt.Sprintf("model %q produced no valid inter-arrival time in %d batches (%d draws)", e.Model, e.Batches, e.Draws)
}
