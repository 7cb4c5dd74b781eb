package request

// CreateClockRequest is the request body for building a clock.
// Time takes precedence over the components when both are set.
type CreateClockRequest struct {
	Time    *string `json:"time,omitempty"`
	Hours   int     `json:"hours"`
	Minutes int     `json:"minutes"`
	Seconds int     `json:"seconds"`
}

// StepClockRequest is the request body for stepping a clock
type StepClockRequest struct {
	Time  string   `json:"time"`
	Steps []string `json:"steps"`
}
