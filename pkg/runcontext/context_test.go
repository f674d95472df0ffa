package runcontext

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunBegin(t *testing.T) {
	ctx, cancel := RunBegin(context.Background(), 4, "summary", time.Minute)
	defer cancel()

	gen, ok := GetGeneration(ctx)
	require.True(t, ok)
	assert.Equal(t, int64(4), gen)
	assert.Equal(t, "summary", GetStage(ctx))

	_, hasDeadline := ctx.Deadline()
	assert.True(t, hasDeadline)

	meta := GetStageMetadata(ctx)
	assert.Equal(t, "summary", meta.Stage)
	assert.False(t, meta.StartTime.IsZero())
	assert.Len(t, Fields(ctx), 3)
}

func TestRunBegin_NoTimeout(t *testing.T) {
	ctx, cancel := RunBegin(context.Background(), 1, "transcription", 0)
	_, hasDeadline := ctx.Deadline()
	assert.False(t, hasDeadline)

	cancel()
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}

func TestRunStage(t *testing.T) {
	ctx, cancel := RunBegin(context.Background(), 1, "chat", 0)
	defer cancel()

	calls := 0
	err := RunStage(ctx, func(context.Context) error {
		calls++
		return errors.New("failed once")
	})
	assert.EqualError(t, err, "failed once")
	assert.Equal(t, 1, calls)

	err = RunStage(ctx, func(context.Context) error { panic("boom") })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panic recovered in stage chat")

	cancel()
	err = RunStage(ctx, func(context.Context) error {
		calls++
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestIsTransientError(t *testing.T) {
	assert.False(t, IsTransientError(nil))
	assert.True(t, IsTransientError(context.DeadlineExceeded))
	assert.True(t, IsTransientError(errors.New("groq returned status 503: overloaded")))
	assert.True(t, IsTransientError(errors.New("dial tcp: connection refused")))
	assert.False(t, IsTransientError(errors.New("invalid api key")))
}
