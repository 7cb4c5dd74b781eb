package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Unit identifies which dial of the clock a step moves
type Unit string

const (
	UnitSecond Unit = "s"
	UnitMinute Unit = "m"
	UnitHour   Unit = "h"
)

// MaxTicks bounds the tick count of a single step (one day of seconds)
const MaxTicks = hoursPerDay * minutesPerHour * secondsPerMinute

// MaxSteps bounds how many steps one sequence may hold
const MaxSteps = 64

// Valid reports whether u is a known unit
func (u Unit) Valid() bool {
	switch u {
	case UnitSecond, UnitMinute, UnitHour:
		return true
	}
	return false
}

// cycle is the number of ticks of u in one day
func (u Unit) cycle() int {
	switch u {
	case UnitSecond:
		return MaxTicks
	case UnitMinute:
		return hoursPerDay * minutesPerHour
	default:
		return hoursPerDay
	}
}

// Step moves the clock by Ticks single-unit increments (or decrements when
// Ticks is negative)
type Step struct {
	Unit  Unit
	Ticks int
}

// ParseStep parses a step of the form [+|-][count]unit, e.g. "+s", "-2h", "15m".
// A missing sign means forward and a missing count means one tick.
func ParseStep(text string) (Step, error) {
	raw := strings.TrimSpace(text)
	if raw == "" {
		return Step{}, fmt.Errorf("%w: empty step", ErrInvalidStep)
	}

	unit := Unit(strings.ToLower(raw[len(raw)-1:]))
	if !unit.Valid() {
		return Step{}, fmt.Errorf("%w: %q", ErrUnknownUnit, text)
	}
	body := raw[:len(raw)-1]

	sign := 1
	switch {
	case strings.HasPrefix(body, "+"):
		body = body[1:]
	case strings.HasPrefix(body, "-"):
		sign = -1
		body = body[1:]
	}

	count := 1
	if body != "" {
		n, err := strconv.Atoi(body)
		if err != nil || n < 0 || body[0] == '+' || body[0] == '-' {
			return Step{}, fmt.Errorf("%w: %q", ErrInvalidStep, text)
		}
		count = n
	}
	if count > MaxTicks {
		return Step{}, fmt.Errorf("%w: %q", ErrStepTooLarge, text)
	}

	return Step{Unit: unit, Ticks: sign * count}, nil
}

// String renders the step in the form ParseStep accepts
func (s Step) String() string {
	if s.Ticks < 0 {
		return fmt.Sprintf("-%d%s", -s.Ticks, s.Unit)
	}
	return fmt.Sprintf("+%d%s", s.Ticks, s.Unit)
}

// Increment advances the clock by one tick of unit
func (c *Clock) Increment(unit Unit) error {
	switch unit {
	case UnitSecond:
		c.IncrementSecond()
	case UnitMinute:
		c.IncrementMinute()
	case UnitHour:
		c.IncrementHour()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownUnit, unit)
	}
	return nil
}

// Decrement moves the clock back by one tick of unit
func (c *Clock) Decrement(unit Unit) error {
	switch unit {
	case UnitSecond:
		c.DecrementSecond()
	case UnitMinute:
		c.DecrementMinute()
	case UnitHour:
		c.DecrementHour()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownUnit, unit)
	}
	return nil
}

// Apply performs the step one tick at a time. Whole days of ticks leave the
// clock unchanged and are skipped. The clock is unchanged if the step is
// rejected.
func (c *Clock) Apply(step Step) error {
	if !step.Unit.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownUnit, step.Unit)
	}
	if step.Ticks > MaxTicks || step.Ticks < -MaxTicks {
		return fmt.Errorf("%w: %d ticks", ErrStepTooLarge, step.Ticks)
	}

	tick := c.Increment
	n := step.Ticks % step.Unit.cycle()
	if n < 0 {
		tick = c.Decrement
		n = -n
	}
	for range n {
		// Unit was validated above
		_ = tick(step.Unit)
	}
	return nil
}
