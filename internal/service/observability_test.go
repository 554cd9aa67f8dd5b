package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/coursepilot/internal/app"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogUseCaseObserver_WritesStructuredEvent(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)

	event := newUseCaseEvent("plan-pathway", map[string]any{"student_id": "s-1"})
	obs.ObserveUseCase(context.Background(), event.finish(app.NotFound("student s-1 not found"), nil))

	out := buf.String()
	assert.Contains(t, out, "msg=service_use_case")
	assert.Contains(t, out, "use_case=plan-pathway")
	assert.Contains(t, out, "invocation_id="+event.InvocationID)
	assert.Contains(t, out, "success=false")
	assert.Contains(t, out, "reason_code=NOT_FOUND")
	assert.Contains(t, out, "student_id=s-1")
	assert.Contains(t, out, "level=INFO")
}

func TestLogUseCaseObserver_ErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)

	event := newUseCaseEvent("check-eligibility", map[string]any{})
	obs.ObserveUseCase(context.Background(), event.finish(nil, app.Internal("loading student", errors.New("boom"))))

	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "reason_code=INTERNAL_ERROR")
	assert.Contains(t, out, "boom")
}

func TestNewLogUseCaseObserver_NilWriter(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
}

func TestNewUseCaseEvent_InvocationIDsAreUnique(t *testing.T) {
	a := newUseCaseEvent("x", nil)
	b := newUseCaseEvent("x", nil)
	assert.NotEqual(t, a.InvocationID, b.InvocationID)

	_, err := ulid.Parse(a.InvocationID)
	require.NoError(t, err)
}

func TestUseCaseEventFinish_SuccessOnlyWithoutFailureOrError(t *testing.T) {
	ok := newUseCaseEvent("x", nil).finish(nil, nil)
	assert.True(t, ok.Success)
	assert.Empty(t, ok.ReasonCode)

	failed := newUseCaseEvent("x", nil).finish(app.Invalid("bad"), nil)
	assert.False(t, failed.Success)
	assert.Equal(t, "VALIDATION_ERROR", failed.ReasonCode)
}
