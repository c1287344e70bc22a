package schedule

import "errors"

// Domain-specific errors for the schedule package. Infeasible placement is
// deliberately not among them: a task that fits nowhere is an expected outcome
// surfaced through statistics, not an error.
var (
	ErrInvalidWorkingHours = errors.New("invalid working hours")
	ErrNoWorkingDays       = errors.New("no valid working days configured")
	ErrInvalidSlotDuration = errors.New("slot duration must be positive")
	ErrInvalidPriority     = errors.New("priority must be between 1 and 5")
	ErrInvalidEstimate     = errors.New("time estimate must be positive")
	ErrInvalidHorizon      = errors.New("horizon must be a positive number of days")
	ErrTaskCollect         = errors.New("failed to collect tasks from the task store")
)
