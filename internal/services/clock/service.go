package clock

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mcoot/clockface/internal/model"
)

// Reading is a snapshot of a clock in both renderings
type Reading struct {
	Hours    int
	Minutes  int
	Seconds  int
	Military string
	Standard string
}

// Service builds, steps and renders clocks
type Service struct {
	logger *slog.Logger
}

// New creates a new clock Service
func New(logger *slog.Logger) *Service {
	return &Service{
		logger: logger,
	}
}

// Read takes a Reading of c
func (s *Service) Read(c *model.Clock) Reading {
	return Reading{
		Hours:    c.Hours(),
		Minutes:  c.Minutes(),
		Seconds:  c.Seconds(),
		Military: c.Military(),
		Standard: c.Standard(),
	}
}

// FromComponents reads a clock built from hours, minutes and seconds
func (s *Service) FromComponents(ctx context.Context, hours, minutes, seconds int) Reading {
	if hours < 0 || minutes < 0 || seconds < 0 {
		s.logger.DebugContext(ctx, "negative clock components clamped to zero",
			slog.Int("hours", hours),
			slog.Int("minutes", minutes),
			slog.Int("seconds", seconds),
		)
	}
	return s.Read(model.NewClock(hours, minutes, seconds))
}

// Parse reads a clock parsed from military time text.
// Malformed text reads as midnight.
func (s *Service) Parse(ctx context.Context, text string) Reading {
	return s.Read(s.parse(ctx, text))
}

// Step parses start, applies each step in order, and reads the result
func (s *Service) Step(ctx context.Context, start string, steps []string) (Reading, error) {
	if len(steps) > model.MaxSteps {
		return Reading{}, fmt.Errorf("%w: %d given, at most %d", model.ErrTooManySteps, len(steps), model.MaxSteps)
	}

	parsed := make([]model.Step, 0, len(steps))
	for i, raw := range steps {
		step, err := model.ParseStep(raw)
		if err != nil {
			return Reading{}, fmt.Errorf("step %d: %w", i, err)
		}
		parsed = append(parsed, step)
	}

	c := s.parse(ctx, start)
	for i, step := range parsed {
		if err := c.Apply(step); err != nil {
			return Reading{}, fmt.Errorf("step %d: %w", i, err)
		}
	}

	s.logger.DebugContext(ctx, "clock stepped",
		slog.String("start", start),
		slog.Int("steps", len(parsed)),
		slog.String("result", c.Military()),
	)

	return s.Read(c), nil
}

func (s *Service) parse(ctx context.Context, text string) *model.Clock {
	if !model.IsMilitary(text) {
		s.logger.DebugContext(ctx, "malformed clock text, using midnight", slog.String("text", text))
	}
	return model.ParseClock(text)
}
