// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package generate drives the external text-generation process with a
// timeout and bounded retries.
//
// The Generator interface is the seam tests use to substitute a
// deterministic double for the real process; the Invoker owns all retry
// and backoff handling so no caller ever sees a generation error.
package generate

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pdiddy/explain-engine/pkg/types"
)

// FailureSentinel is returned by Invoke after all attempts fail. It is
// a fixed value distinct from any real generated content; aggregation
// drops chunk results equal to it.
const FailureSentinel = "Failed to generate explanation after multiple attempts."

const (
	defaultMaxRetries = 3
	defaultBackoff    = 3 * time.Second
)

// Generator produces text for a single prompt. Implementations handle
// one attempt; retries belong to the Invoker.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Invoker wraps a Generator with bounded retry-and-backoff. A failed
// prompt degrades to FailureSentinel instead of propagating an error,
// so one bad chunk never stops the rest of a run.
type Invoker struct {
	gen        Generator
	maxRetries int
	backoff    time.Duration
	log        io.Writer
}

// NewInvoker builds an Invoker over gen. Zero config values take the
// defaults: 3 attempts, 3s backoff. Progress and failure lines go to log.
func NewInvoker(gen Generator, cfg types.AIConfig, log io.Writer) *Invoker {
	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	backoff := cfg.Backoff
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	if log == nil {
		log = io.Discard
	}
	return &Invoker{
		gen:        gen,
		maxRetries: maxRetries,
		backoff:    backoff,
		log:        log,
	}
}

// Invoke runs prompt through the Generator with up to maxRetries total
// attempts, waiting the fixed backoff between attempts. On success it
// returns the trimmed output; after exhausting attempts, or when the
// context is cancelled during backoff, it returns FailureSentinel.
func (inv *Invoker) Invoke(ctx context.Context, prompt string) string {
	for attempt := 1; attempt <= inv.maxRetries; attempt++ {
		out, err := inv.gen.Generate(ctx, prompt)
		if err == nil {
			return strings.TrimSpace(out)
		}

		fmt.Fprintf(inv.log, "generation attempt %d/%d failed: %v\n", attempt, inv.maxRetries, err)

		if attempt < inv.maxRetries {
			select {
			case <-ctx.Done():
				fmt.Fprintf(inv.log, "generation aborted: %v\n", ctx.Err())
				return FailureSentinel
			case <-time.After(inv.backoff):
			}
		}
	}
	return FailureSentinel
}
