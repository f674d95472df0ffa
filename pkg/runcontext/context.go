package runcontext

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

type KeyContext string

var (
	keyGeneration KeyContext = "generation"
	keyStage      KeyContext = "stage"
	keyStartTime  KeyContext = "stage_start_time"
)

// StageMetadata holds metadata for one external call made by a run
type StageMetadata struct {
	Generation int64
	Stage      string
	StartTime  time.Time
}

// RunBegin derives a context for one stage of a run. A non-positive timeout
// leaves the deadline to the parent.
func RunBegin(parentCtx context.Context, generation int64, stage string, timeout time.Duration) (context.Context, context.CancelFunc) {
	var (
		ctx    context.Context
		cancel context.CancelFunc
	)
	if timeout > 0 {
		ctx, cancel = context.WithTimeout(parentCtx, timeout)
	} else {
		ctx, cancel = context.WithCancel(parentCtx)
	}

	ctx = context.WithValue(ctx, keyGeneration, generation)
	ctx = context.WithValue(ctx, keyStage, stage)
	ctx = context.WithValue(ctx, keyStartTime, time.Now())

	return ctx, cancel
}

// RunStage executes fn once, turning a panic into an error. It does not
// retry: a failed stage is reported to the caller as is.
func RunStage(ctx context.Context, fn func(context.Context) error) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic recovered in stage %s: %v", GetStage(ctx), p)
		}
	}()

	if ctx.Err() != nil {
		return fmt.Errorf("context cancelled before stage %s: %w", GetStage(ctx), ctx.Err())
	}
	return fn(ctx)
}

// GetGeneration extracts the run generation from context
func GetGeneration(ctx context.Context) (int64, bool) {
	gen, ok := ctx.Value(keyGeneration).(int64)
	return gen, ok
}

// GetStage extracts the stage name from context
func GetStage(ctx context.Context) string {
	stage, _ := ctx.Value(keyStage).(string)
	return stage
}

// GetStartTime extracts the stage start time from context
func GetStartTime(ctx context.Context) (time.Time, bool) {
	start, ok := ctx.Value(keyStartTime).(time.Time)
	return start, ok
}

// Elapsed returns the time since the stage began, or zero outside a stage.
func Elapsed(ctx context.Context) time.Duration {
	start, ok := GetStartTime(ctx)
	if !ok {
		return 0
	}
	return time.Since(start)
}

// GetStageMetadata extracts all stage metadata from context
func GetStageMetadata(ctx context.Context) *StageMetadata {
	gen, _ := GetGeneration(ctx)
	start, _ := GetStartTime(ctx)
	return &StageMetadata{
		Generation: gen,
		Stage:      GetStage(ctx),
		StartTime:  start,
	}
}

// Fields renders the stage metadata as zap fields.
func Fields(ctx context.Context) []zap.Field {
	gen, _ := GetGeneration(ctx)
	return []zap.Field{
		zap.Int64("generation", gen),
		zap.String("stage", GetStage(ctx)),
		zap.Duration("elapsed", Elapsed(ctx)),
	}
}

// IsTransientError reports whether err looks like a condition that may clear
// on a later attempt: timeouts, network failures, rate limits, 5xx.
func IsTransientError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())

	// Context errors (timeout, cancelled)
	if strings.Contains(errStr, "context deadline exceeded") ||
		strings.Contains(errStr, "context canceled") {
		return true
	}

	// Network errors
	if strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "connection reset") ||
		strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "i/o timeout") {
		return true
	}

	// API rate limiting
	if strings.Contains(errStr, "rate limit") ||
		strings.Contains(errStr, "too many requests") ||
		strings.Contains(errStr, "status 429") {
		return true
	}

	// Server errors (5xx)
	if strings.Contains(errStr, "status 5") ||
		strings.Contains(errStr, "service unavailable") ||
		strings.Contains(errStr, "bad gateway") {
		return true
	}

	return false
}
