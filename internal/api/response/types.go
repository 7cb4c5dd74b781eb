package response

import (
	"github.com/mcoot/clockface/internal/services/clock"
)

// Clock represents a clock reading in API responses
type Clock struct {
	Hours    int    `json:"hours"`
	Minutes  int    `json:"minutes"`
	Seconds  int    `json:"seconds"`
	Military string `json:"military"`
	Standard string `json:"standard"`
}

// ClockFromReading converts a clock.Reading to a response Clock
func ClockFromReading(r clock.Reading) Clock {
	return Clock{
		Hours:    r.Hours,
		Minutes:  r.Minutes,
		Seconds:  r.Seconds,
		Military: r.Military,
		Standard: r.Standard,
	}
}

// Health is the response for the health endpoint
type Health struct {
	Status string `json:"status"`
}
