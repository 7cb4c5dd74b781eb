package cli

import (
	"context"

	"github.com/mcoot/clockface/internal/services/clock"
)

// ClockRequest describes the clock to show.
// Time takes precedence over the components when set.
type ClockRequest struct {
	Time    *string `json:"time,omitempty"`
	Hours   int     `json:"hours"`
	Minutes int     `json:"minutes"`
	Seconds int     `json:"seconds"`
}

// StepRequest describes a start time and the steps to apply to it
type StepRequest struct {
	Time  string   `json:"time"`
	Steps []string `json:"steps"`
}

// backend answers clock requests either in-process or over the HTTP API
type backend interface {
	Show(ctx context.Context, req ClockRequest) (ClockResult, error)
	Step(ctx context.Context, req StepRequest) (ClockResult, error)
}

type localBackend struct {
	service *clock.Service
}

func (b *localBackend) Show(ctx context.Context, req ClockRequest) (ClockResult, error) {
	if req.Time != nil {
		return clockResultFromReading(b.service.Parse(ctx, *req.Time)), nil
	}
	return clockResultFromReading(b.service.FromComponents(ctx, req.Hours, req.Minutes, req.Seconds)), nil
}

func (b *localBackend) Step(ctx context.Context, req StepRequest) (ClockResult, error) {
	reading, err := b.service.Step(ctx, req.Time, req.Steps)
	if err != nil {
		return ClockResult{}, err
	}
	return clockResultFromReading(reading), nil
}

type remoteBackend struct {
	client *Client
}

func (b *remoteBackend) Show(ctx context.Context, req ClockRequest) (ClockResult, error) {
	var result ClockResult
	err := b.client.Post(ctx, "/api/v1/clocks", req, &result)
	return result, err
}

func (b *remoteBackend) Step(ctx context.Context, req StepRequest) (ClockResult, error) {
	var result ClockResult
	err := b.client.Post(ctx, "/api/v1/clocks/step", req, &result)
	return result, err
}

func clockResultFromReading(r clock.Reading) ClockResult {
	return ClockResult{
		Hours:    r.Hours,
		Minutes:  r.Minutes,
		Seconds:  r.Seconds,
		Military: r.Military,
		Standard: r.Standard,
	}
}
