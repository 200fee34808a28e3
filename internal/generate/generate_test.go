// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/explain-engine/pkg/types"
)

// failNTimesGenerator fails the first N calls, then succeeds.
type failNTimesGenerator struct {
	failures  int
	callCount int
	output    string
}

func (f *failNTimesGenerator) Generate(_ context.Context, _ string) (string, error) {
	f.callCount++
	if f.callCount <= f.failures {
		return "", fmt.Errorf("transient error (call %d)", f.callCount)
	}
	return f.output, nil
}

func testAIConfig() types.AIConfig {
	return types.AIConfig{
		MaxRetries: 3,
		Backoff:    time.Millisecond,
	}
}

func TestInvokeSucceedsFirstAttempt(t *testing.T) {
	gen := &failNTimesGenerator{failures: 0, output: "  generated text \n"}
	inv := NewInvoker(gen, testAIConfig(), io.Discard)

	got := inv.Invoke(context.Background(), "prompt")

	assert.Equal(t, "generated text", got, "output is trimmed")
	assert.Equal(t, 1, gen.callCount)
}

func TestInvokeRecoversWithinRetryBudget(t *testing.T) {
	// Fails N times; with max_retries = N+1 the final attempt succeeds.
	gen := &failNTimesGenerator{failures: 2, output: "ok"}
	cfg := testAIConfig()
	cfg.MaxRetries = 3
	inv := NewInvoker(gen, cfg, io.Discard)

	got := inv.Invoke(context.Background(), "prompt")

	assert.Equal(t, "ok", got)
	assert.Equal(t, 3, gen.callCount)
}

func TestInvokeExhaustsRetries(t *testing.T) {
	// Fails N times; with max_retries = N every attempt fails and the
	// sentinel comes back after exactly N attempts.
	gen := &failNTimesGenerator{failures: 2, output: "never seen"}
	cfg := testAIConfig()
	cfg.MaxRetries = 2
	inv := NewInvoker(gen, cfg, io.Discard)

	got := inv.Invoke(context.Background(), "prompt")

	assert.Equal(t, FailureSentinel, got)
	assert.Equal(t, 2, gen.callCount)
}

func TestInvokeBacksOffBetweenAttempts(t *testing.T) {
	gen := &failNTimesGenerator{failures: 3}
	cfg := testAIConfig()
	cfg.MaxRetries = 3
	cfg.Backoff = 20 * time.Millisecond
	inv := NewInvoker(gen, cfg, io.Discard)

	start := time.Now()
	got := inv.Invoke(context.Background(), "prompt")
	elapsed := time.Since(start)

	assert.Equal(t, FailureSentinel, got)
	// Two waits between three attempts; none after the last.
	assert.GreaterOrEqual(t, elapsed, 40*time.Millisecond)
}

func TestInvokeContextCancelledDuringBackoff(t *testing.T) {
	gen := &failNTimesGenerator{failures: 10}
	cfg := testAIConfig()
	cfg.Backoff = time.Hour
	inv := NewInvoker(gen, cfg, io.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got := inv.Invoke(ctx, "prompt")

	assert.Equal(t, FailureSentinel, got)
	assert.Equal(t, 1, gen.callCount, "no further attempts after cancellation")
}

func TestInvokeLogsFailures(t *testing.T) {
	gen := &failNTimesGenerator{failures: 2, output: "ok"}
	var log testWriter
	inv := NewInvoker(gen, testAIConfig(), &log)

	inv.Invoke(context.Background(), "prompt")

	assert.Contains(t, log.String(), "attempt 1/3 failed")
	assert.Contains(t, log.String(), "attempt 2/3 failed")
}

func TestNewInvokerDefaults(t *testing.T) {
	inv := NewInvoker(&failNTimesGenerator{}, types.AIConfig{}, nil)
	assert.Equal(t, 3, inv.maxRetries)
	assert.Equal(t, 3*time.Second, inv.backoff)
	assert.NotNil(t, inv.log)
}

// testWriter collects log output for assertions.
type testWriter struct {
	buf []byte
}

func (w *testWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	return len(p), nil
}

func (w *testWriter) String() string { return string(w.buf) }
