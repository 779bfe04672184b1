package ai

import (
	"context"
	"errors"

	"github.com/Abdul-bari-Zahid/doctor-startup/internal/models"
)

// Recorder persists per-call telemetry. Failures to record never fail the call.
type Recorder interface {
	RecordCall(ctx context.Context, call models.AICall) error
}

type discardRecorder struct{}

func (discardRecorder) RecordCall(context.Context, models.AICall) error {
	return nil
}

func outcomeForError(err error) string {
	if errors.Is(err, ErrRateLimited) {
		return models.AICallOutcomeRateLimited
	}
	return models.AICallOutcomeError
}
