// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/pdiddy/explain-engine/pkg/types"
)

const (
	binOllama    = "ollama"
	defaultModel = "llama3.2"

	// defaultTimeout bounds one model invocation end to end.
	defaultTimeout = 120 * time.Second
)

// runner abstracts subprocess execution for testing.
type runner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr string, err error)
}

// execRunner is the production runner backed by os/exec. The context
// deadline kills the in-flight process, so a timed-out invocation never
// leaks a subprocess.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var out, errOut bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errOut

	err := cmd.Run()
	return out.String(), errOut.String(), err
}

// Ollama generates text by spawning "ollama run <model> <prompt>". It
// implements Generator; retry handling stays with the Invoker.
type Ollama struct {
	model   string
	timeout time.Duration
	run     runner
}

// NewOllama builds an Ollama backend from cfg, applying the default
// model and timeout for zero values.
func NewOllama(cfg types.AIConfig) *Ollama {
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Ollama{model: model, timeout: timeout, run: execRunner{}}
}

// Generate runs one model invocation. The prompt travels as a process
// argument; generated text comes back on stdout, diagnostics on stderr.
// Exit status zero within the timeout is the only success path.
func (o *Ollama) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	stdout, stderr, err := o.run.Run(ctx, binOllama, "run", o.model, prompt)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("model %s timed out after %v", o.model, o.timeout)
		}
		if diag := strings.TrimSpace(stderr); diag != "" {
			return "", fmt.Errorf("running %s: %w: %s", o.model, err, diag)
		}
		return "", fmt.Errorf("running %s: %w", o.model, err)
	}

	return strings.TrimSpace(stdout), nil
}
