// Package tool runs the external calculation CLI and captures its output.
package tool

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

// DefaultToolPath is the calculator binary looked up in PATH.
const DefaultToolPath = "rink"

const waitDelay = 500 * time.Millisecond

// Output holds the captured streams of one tool run.
type Output struct {
	// Stdout is the decoded standard output text.
	Stdout string

	// Stderr is the decoded standard error text. Any content here is
	// treated as a failed run by callers.
	Stderr string

	// ExitCode is the process exit status. Informational only.
	ExitCode int

	// Duration is the wall time of the run.
	Duration time.Duration
}

// Runner executes a tool with arguments and returns its output.
// Implementations must not retry.
type Runner interface {
	Run(ctx context.Context, tool string, args []string) (*Output, error)
}

// ExecRunner runs tools as child processes via os/exec.
// It follows the http.Client pattern: create once, use many times.
type ExecRunner struct {
	// Timeout bounds each run. Zero waits until the process exits.
	Timeout time.Duration
}

// NewExecRunner creates an ExecRunner with the given timeout.
func NewExecRunner(timeout time.Duration) *ExecRunner {
	return &ExecRunner{Timeout: timeout}
}

// Run starts tool with args, waits for it, and captures stdout and stderr
// separately. A non-zero exit status is not an error; it is reported in
// Output.ExitCode. Spawn failures and timeouts are returned as errors.
func (r *ExecRunner) Run(ctx context.Context, tool string, args []string) (*Output, error) {
	if tool == "" {
		return nil, fmt.Errorf("tool path is required")
	}

	ctxToUse := ctx
	var cancel context.CancelFunc
	if r.Timeout > 0 {
		ctxToUse, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	startTime := time.Now()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctxToUse, tool, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if r.Timeout > 0 {
		// Grandchildren holding the pipes open must not outlive the deadline.
		cmd.WaitDelay = waitDelay
	}
	SetPlainEnv(cmd)

	err := cmd.Run()

	out := &Output{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(startTime),
	}

	if ctxErr := ctxToUse.Err(); ctxErr != nil {
		return out, fmt.Errorf("%s did not finish: %w", tool, ctxErr)
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			out.ExitCode = exitErr.ExitCode()
			return out, nil
		}
		return out, fmt.Errorf("%s invocation failed: %w", tool, err)
	}

	return out, nil
}
