package model

import "errors"

// Common errors used across the application
var (
	// Step errors
	ErrInvalidStep  = errors.New("invalid step")
	ErrUnknownUnit  = errors.New("unknown step unit")
	ErrStepTooLarge = errors.New("step exceeds one day of ticks")
	ErrTooManySteps = errors.New("too many steps")
)
