package model_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/clockface/internal/model"
)

var allowClock = cmp.AllowUnexported(model.Clock{})

func tick(c *model.Clock, times int, fn func(*model.Clock)) {
	for range times {
		fn(c)
	}
}

func assertInRange(t *testing.T, c *model.Clock) {
	t.Helper()
	assert.GreaterOrEqual(t, c.Hours(), 0)
	assert.LessOrEqual(t, c.Hours(), 23)
	assert.GreaterOrEqual(t, c.Minutes(), 0)
	assert.LessOrEqual(t, c.Minutes(), 59)
	assert.GreaterOrEqual(t, c.Seconds(), 0)
	assert.LessOrEqual(t, c.Seconds(), 59)
}

func TestZeroValueIsMidnight(t *testing.T) {
	var c model.Clock

	assert.Equal(t, "00:00:00", c.Military())
	assert.Equal(t, "12:00:00AM", c.Standard())
	assert.Equal(t, "00:00:00", c.String())
}

func TestNewClock(t *testing.T) {
	testCases := []struct {
		name                    string
		hours, minutes, seconds int
		want                    string
	}{
		{name: "in range", hours: 12, minutes: 13, seconds: 14, want: "12:13:14"},
		{name: "zero", want: "00:00:00"},
		{name: "negatives clamped independently", hours: -12, minutes: -13, seconds: 14, want: "00:00:14"},
		{name: "negative seconds only", hours: 5, minutes: 6, seconds: -1, want: "05:06:00"},
		{name: "multi-level carry", hours: 50, minutes: 125, seconds: 125, want: "04:07:05"},
		{name: "seconds carry into hours", hours: 23, minutes: 59, seconds: 60, want: "00:00:00"},
		{name: "hours wrap", hours: 24, want: "00:00:00"},
		{name: "upper bound", hours: 23, minutes: 59, seconds: 59, want: "23:59:59"},
		{name: "max hours and minutes", hours: math.MaxInt, minutes: math.MaxInt, want: "01:07:00"},
		{name: "max minutes and seconds", minutes: math.MaxInt, seconds: math.MaxInt, want: "09:37:07"},
		{name: "max everything", hours: math.MaxInt, minutes: math.MaxInt, seconds: math.MaxInt, want: "16:37:07"},
		{name: "min everything", hours: math.MinInt, minutes: math.MinInt, seconds: math.MinInt, want: "00:00:00"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := model.NewClock(tc.hours, tc.minutes, tc.seconds)

			assert.Equal(t, tc.want, c.Military())
			assertInRange(t, c)
		})
	}
}

func TestParseClock(t *testing.T) {
	testCases := []struct {
		name string
		text string
		want string
	}{
		{name: "valid", text: "15:07:32", want: "15:07:32"},
		{name: "rolls over", text: "29:07:72", want: "05:08:12"},
		{name: "maximum digits", text: "99:99:99", want: "04:40:39"},
		{name: "invalid middle", text: "15:invalid:32", want: "00:00:00"},
		{name: "empty", text: "", want: "00:00:00"},
		{name: "single digit hour", text: "1:02:03", want: "00:00:00"},
		{name: "trailing text", text: "01:02:03PM", want: "00:00:00"},
		{name: "leading space", text: " 01:02:03", want: "00:00:00"},
		{name: "wrong separator", text: "01-02-03", want: "00:00:00"},
		{name: "sign in digit slot", text: "+1:02:03", want: "00:00:00"},
		{name: "non-ascii digit", text: "٠١:02:03", want: "00:00:00"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, model.ParseClock(tc.text).Military())
		})
	}
}

func TestIsMilitary(t *testing.T) {
	assert.True(t, model.IsMilitary("00:00:00"))
	assert.True(t, model.IsMilitary("29:07:72"))
	assert.False(t, model.IsMilitary("15:invalid:32"))
	assert.False(t, model.IsMilitary("00:00:000"))
}

func TestMilitaryRoundTrip(t *testing.T) {
	for h := range 24 {
		for _, m := range []int{0, 1, 30, 59} {
			for _, s := range []int{0, 9, 10, 59} {
				want := model.NewClock(h, m, s)
				got := model.ParseClock(want.Military())

				if diff := cmp.Diff(want, got, allowClock); diff != "" {
					t.Errorf("round trip of %s (-want +got):\n%s", want, diff)
				}
			}
		}
	}
}

func TestClone(t *testing.T) {
	src := &model.Clock{}
	tick(src, 15, (*model.Clock).IncrementHour)
	tick(src, 7, (*model.Clock).IncrementMinute)
	tick(src, 32, (*model.Clock).IncrementSecond)

	clone := src.Clone()
	require.Equal(t, "15:07:32", clone.Military())

	src.IncrementHour()
	assert.Equal(t, "16:07:32", src.Military())
	assert.Equal(t, "15:07:32", clone.Military())
}

func TestAccessors(t *testing.T) {
	c := model.NewClock(15, 7, 32)

	assert.Equal(t, 15, c.Hours())
	assert.Equal(t, 7, c.Minutes())
	assert.Equal(t, 32, c.Seconds())
}

func TestRepeatedIncrements(t *testing.T) {
	c := &model.Clock{}
	tick(c, 23, (*model.Clock).IncrementHour)
	tick(c, 7, (*model.Clock).IncrementMinute)
	tick(c, 32, (*model.Clock).IncrementSecond)

	assert.Equal(t, "23:07:32", c.Military())
}

func TestRepeatedDecrements(t *testing.T) {
	testCases := []struct {
		name  string
		start *model.Clock
		fn    func(*model.Clock)
		want  string
	}{
		{name: "seconds", start: model.NewClock(0, 0, 14), fn: (*model.Clock).DecrementSecond, want: "00:00:07"},
		{name: "minutes", start: model.NewClock(0, 14, 0), fn: (*model.Clock).DecrementMinute, want: "00:07:00"},
		{name: "hours", start: model.NewClock(14, 0, 0), fn: (*model.Clock).DecrementHour, want: "07:00:00"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tick(tc.start, 7, tc.fn)
			assert.Equal(t, tc.want, tc.start.Military())
		})
	}
}

func TestSingleTickBoundaries(t *testing.T) {
	testCases := []struct {
		name  string
		start *model.Clock
		fn    func(*model.Clock)
		want  string
	}{
		{"second rolls into minute", model.NewClock(0, 10, 59), (*model.Clock).IncrementSecond, "00:11:00"},
		{"second rolls into hour", model.NewClock(0, 59, 59), (*model.Clock).IncrementSecond, "01:00:00"},
		{"second rolls over the day", model.NewClock(23, 59, 59), (*model.Clock).IncrementSecond, "00:00:00"},
		{"minute rolls into hour", model.NewClock(10, 59, 0), (*model.Clock).IncrementMinute, "11:00:00"},
		{"minute rolls over the day", model.NewClock(23, 59, 0), (*model.Clock).IncrementMinute, "00:00:00"},
		{"hour rolls over the day", model.NewClock(23, 10, 59), (*model.Clock).IncrementHour, "00:10:59"},
		{"second borrows from minute", model.NewClock(0, 10, 0), (*model.Clock).DecrementSecond, "00:09:59"},
		{"second borrows from hour", model.NewClock(10, 0, 0), (*model.Clock).DecrementSecond, "09:59:59"},
		{"second rolls under the day", &model.Clock{}, (*model.Clock).DecrementSecond, "23:59:59"},
		{"minute borrows from hour", model.NewClock(10, 0, 0), (*model.Clock).DecrementMinute, "09:59:00"},
		{"minute rolls under the day", &model.Clock{}, (*model.Clock).DecrementMinute, "23:59:00"},
		{"hour rolls under the day", model.NewClock(0, 10, 59), (*model.Clock).DecrementHour, "23:10:59"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.fn(tc.start)
			assert.Equal(t, tc.want, tc.start.Military())
			assertInRange(t, tc.start)
		})
	}
}

func TestFullCycleReturnsToStart(t *testing.T) {
	testCases := []struct {
		name  string
		ticks int
		inc   func(*model.Clock)
		dec   func(*model.Clock)
	}{
		{"seconds", 86400, (*model.Clock).IncrementSecond, (*model.Clock).DecrementSecond},
		{"minutes", 1440, (*model.Clock).IncrementMinute, (*model.Clock).DecrementMinute},
		{"hours", 24, (*model.Clock).IncrementHour, (*model.Clock).DecrementHour},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			start := model.NewClock(13, 47, 5)

			forward := start.Clone()
			tick(forward, tc.ticks, tc.inc)
			if diff := cmp.Diff(start, forward, allowClock); diff != "" {
				t.Errorf("forward cycle (-want +got):\n%s", diff)
			}

			backward := start.Clone()
			tick(backward, tc.ticks, tc.dec)
			if diff := cmp.Diff(start, backward, allowClock); diff != "" {
				t.Errorf("backward cycle (-want +got):\n%s", diff)
			}
		})
	}
}

func TestIncrementThenDecrementIsNoOp(t *testing.T) {
	starts := []*model.Clock{
		{},
		model.NewClock(23, 59, 59),
		model.NewClock(0, 59, 0),
		model.NewClock(12, 0, 59),
	}
	pairs := map[string][2]func(*model.Clock){
		"second": {(*model.Clock).IncrementSecond, (*model.Clock).DecrementSecond},
		"minute": {(*model.Clock).IncrementMinute, (*model.Clock).DecrementMinute},
		"hour":   {(*model.Clock).IncrementHour, (*model.Clock).DecrementHour},
	}
	for name, pair := range pairs {
		for _, start := range starts {
			t.Run(fmt.Sprintf("%s from %s", name, start), func(t *testing.T) {
				c := start.Clone()
				pair[0](c)
				pair[1](c)
				assert.Equal(t, start.Military(), c.Military())

				c = start.Clone()
				pair[1](c)
				pair[0](c)
				assert.Equal(t, start.Military(), c.Military())
			})
		}
	}
}

func TestStandardTime(t *testing.T) {
	testCases := []struct {
		name  string
		clock *model.Clock
		want  string
	}{
		{"midnight", &model.Clock{}, "12:00:00AM"},
		{"morning", model.NewClock(4, 23, 43), "04:23:43AM"},
		{"before noon", model.NewClock(11, 59, 59), "11:59:59AM"},
		{"one pm", model.NewClock(13, 0, 0), "01:00:00PM"},
		{"afternoon", model.NewClock(15, 7, 32), "03:07:32PM"},
		{"last second", model.NewClock(23, 59, 59), "11:59:59PM"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.clock.Standard())
		})
	}
}

// Hour 12 is not classified as PM: the AM/PM split uses hours > 12, so
// noon renders with an AM suffix. Conventional noon would be 12:00:00PM.
func TestStandardTimeNoonKeepsAMSuffix(t *testing.T) {
	assert.Equal(t, "12:00:00AM", model.NewClock(12, 0, 0).Standard())
	assert.Equal(t, "12:59:59AM", model.NewClock(12, 59, 59).Standard())
}

func TestStandardTimeAfterIncrements(t *testing.T) {
	c := &model.Clock{}
	tick(c, 15, (*model.Clock).IncrementHour)
	tick(c, 7, (*model.Clock).IncrementMinute)
	tick(c, 32, (*model.Clock).IncrementSecond)

	assert.Equal(t, "03:07:32PM", c.Standard())
}
