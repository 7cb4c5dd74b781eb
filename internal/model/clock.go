package model

import (
	"fmt"
	"regexp"
	"strconv"
)

const (
	secondsPerMinute = 60
	minutesPerHour   = 60
	hoursPerDay      = 24
)

// militaryPattern matches HH:MM:SS with ASCII digits only
var militaryPattern = regexp.MustCompile(`^\d\d:\d\d:\d\d$`)

// Clock is a time of day on a 24-hour dial with second resolution.
// The zero value is 00:00:00.
//
// Hours, minutes and seconds are always within 0-23, 0-59 and 0-59
// once a constructor or mutator returns.
type Clock struct {
	hours   int
	minutes int
	seconds int
}

// NewClock creates a Clock from the given components.
// Negative components are set to zero independently of each other, then any
// excess seconds and minutes carry upward and hours wrap around the day.
func NewClock(hours, minutes, seconds int) *Clock {
	c := &Clock{
		hours:   max(hours, 0),
		minutes: max(minutes, 0),
		seconds: max(seconds, 0),
	}
	c.rollOver()
	return c
}

// ParseClock creates a Clock from military time text (HH:MM:SS).
// Components above their range roll over as in NewClock, so "29:07:72" is
// 05:08:12. Text that does not match the format yields 00:00:00.
func ParseClock(text string) *Clock {
	if !militaryPattern.MatchString(text) {
		return &Clock{}
	}

	// The pattern guarantees two ASCII digits per field
	hours, _ := strconv.Atoi(text[0:2])
	minutes, _ := strconv.Atoi(text[3:5])
	seconds, _ := strconv.Atoi(text[6:8])

	return NewClock(hours, minutes, seconds)
}

// IsMilitary reports whether text has the HH:MM:SS shape ParseClock accepts
func IsMilitary(text string) bool {
	return militaryPattern.MatchString(text)
}

// Clone returns an independent copy of the clock
func (c *Clock) Clone() *Clock {
	clone := *c
	return &clone
}

// Hours returns the hour of the day, 0-23
func (c *Clock) Hours() int {
	return c.hours
}

// Minutes returns the minute of the hour, 0-59
func (c *Clock) Minutes() int {
	return c.minutes
}

// Seconds returns the second of the minute, 0-59
func (c *Clock) Seconds() int {
	return c.seconds
}

// IncrementSecond advances the clock by one second
func (c *Clock) IncrementSecond() {
	c.seconds++
	c.rollOver()
}

// IncrementMinute advances the clock by one minute
func (c *Clock) IncrementMinute() {
	c.minutes++
	c.rollOver()
}

// IncrementHour advances the clock by one hour
func (c *Clock) IncrementHour() {
	c.hours++
	c.rollOver()
}

// DecrementSecond moves the clock back by one second
func (c *Clock) DecrementSecond() {
	c.seconds--
	c.rollUnder()
}

// DecrementMinute moves the clock back by one minute
func (c *Clock) DecrementMinute() {
	c.minutes--
	c.rollUnder()
}

// DecrementHour moves the clock back by one hour
func (c *Clock) DecrementHour() {
	c.hours--
	c.rollUnder()
}

// Military renders the clock as HH:MM:SS on the 24-hour dial, e.g. 16:23:43
func (c *Clock) Military() string {
	return fmt.Sprintf("%02d:%02d:%02d", c.hours, c.minutes, c.seconds)
}

// Standard renders the clock on the 12-hour dial with an AM/PM suffix,
// e.g. 12:04:32AM or 04:23:43PM.
//
// Only hours strictly after 12 are PM, so hour 12 renders as 12:MM:SSAM.
func (c *Clock) Standard() string {
	hours := c.hours
	suffix := "AM"
	switch {
	case hours > 12:
		hours -= 12
		suffix = "PM"
	case hours == 0:
		hours = 12
	}

	return fmt.Sprintf("%02d:%02d:%02d%s", hours, c.minutes, c.seconds, suffix)
}

// String implements fmt.Stringer using military time
func (c *Clock) String() string {
	return c.Military()
}

// rollOver carries non-negative excess upward and wraps hours.
// Each field is reduced before its carry is added so that no sum overflows.
func (c *Clock) rollOver() {
	minuteCarry := c.seconds / secondsPerMinute
	c.seconds %= secondsPerMinute

	minutes := c.minutes%minutesPerHour + minuteCarry
	hourCarry := c.minutes/minutesPerHour + minutes/minutesPerHour
	c.minutes = minutes % minutesPerHour

	c.hours = (c.hours%hoursPerDay + hourCarry%hoursPerDay) % hoursPerDay
}

// rollUnder borrows from the next unit after a single-tick decrement.
// Each unit is at most one tick below zero, so one borrow per level suffices.
func (c *Clock) rollUnder() {
	if c.seconds < 0 {
		c.seconds += secondsPerMinute
		c.minutes--
	}
	if c.minutes < 0 {
		c.minutes += minutesPerHour
		c.hours--
	}
	if c.hours < 0 {
		c.hours += hoursPerDay
	}
}
