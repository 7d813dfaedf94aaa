package booking

import (
	"errors"
	"fmt"

	"govt-appointments-api/internal/model"
)

var ErrBadTransition = errors.New("illegal status transition")

// transitions is the legal lifecycle graph. completed and cancelled are
// terminal. Re-applying the current status is allowed so that repeated
// delivery of the same update stays idempotent.
var transitions = map[string][]string{
	model.StatusPending:   {model.StatusConfirmed, model.StatusCancelled},
	model.StatusConfirmed: {model.StatusCompleted, model.StatusCancelled},
	model.StatusCompleted: {},
	model.StatusCancelled: {},
}

func validTransition(from, to string) error {
	if _, ok := transitions[to]; !ok {
		return fmt.Errorf("%w: unknown status %q", ErrBadTransition, to)
	}
	if from == to {
		return nil
	}
	for _, allowed := range transitions[from] {
		if allowed == to {
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrBadTransition, from, to)
}
