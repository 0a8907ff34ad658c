package generator

import (
	"errors"
	"fmt"
)

// ErrAttemptBudgetExhausted is matched by every *BudgetExhaustedError.
var ErrAttemptBudgetExhausted = errors.New("appointment attempt budget exhausted")

// BudgetExhaustedError reports that the requested number of appointments does
// not fit in the available provider and patient timeslots.
type BudgetExhaustedError struct {
	Generated int
	Requested int
	Attempts  int
}

func (e *BudgetExhaustedError) Error() string {
	return fmt.Sprintf(
		"could only generate %d appointments out of %d without violating unique constraints after %d attempts: lower the appointment count or add providers and patients",
		e.Generated, e.Requested, e.Attempts,
	)
}

func (e *BudgetExhaustedError) Unwrap() error {
	return ErrAttemptBudgetExhausted
}
