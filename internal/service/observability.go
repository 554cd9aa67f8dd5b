package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/alexanderramin/coursepilot/internal/app"
	"github.com/oklog/ulid/v2"
)

// UseCaseEvent captures lightweight execution telemetry for a service use case.
type UseCaseEvent struct {
	Name         string
	InvocationID string
	Duration     time.Duration
	Success      bool
	ReasonCode   string
	Err          error
	Fields       map[string]any
	StartedAt    time.Time
}

// UseCaseObserver receives use-case execution events.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver ignores all events.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

type logUseCaseObserver struct {
	logger *slog.Logger
}

// NewLogUseCaseObserver writes service use-case events to the provided writer.
func NewLogUseCaseObserver(w io.Writer) UseCaseObserver {
	if w == nil {
		return NoopUseCaseObserver{}
	}
	return &logUseCaseObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logUseCaseObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	attrs := make([]any, 0, 12+len(event.Fields)*2)
	attrs = append(attrs,
		"use_case", event.Name,
		"invocation_id", event.InvocationID,
		"duration_ms", event.Duration.Milliseconds(),
		"success", event.Success,
	)
	if event.ReasonCode != "" {
		attrs = append(attrs, "reason_code", event.ReasonCode)
	}
	for k, v := range event.Fields {
		attrs = append(attrs, k, v)
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.ErrorContext(ctx, "service_use_case", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "service_use_case", attrs...)
}

func useCaseObserverOrNoop(observers []UseCaseObserver) UseCaseObserver {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopUseCaseObserver{}
}

// newUseCaseEvent stamps a fresh invocation id. Call finish once the use case
// returns.
func newUseCaseEvent(name string, fields map[string]any) UseCaseEvent {
	return UseCaseEvent{
		Name:         name,
		InvocationID: ulid.Make().String(),
		StartedAt:    time.Now().UTC(),
		Fields:       fields,
	}
}

// finish fills outcome fields. A structured failure is unsuccessful but is not
// an error.
func (e UseCaseEvent) finish(failure *app.Failure, err error) UseCaseEvent {
	e.Duration = time.Since(e.StartedAt)
	e.Err = err
	e.Success = err == nil && failure == nil
	switch {
	case failure != nil:
		e.ReasonCode = string(failure.Code)
	case err != nil:
		e.ReasonCode = string(app.FailInternal)
		var engErr *app.EngineError
		if errors.As(err, &engErr) {
			e.ReasonCode = string(engErr.Code)
		}
	}
	return e
}
