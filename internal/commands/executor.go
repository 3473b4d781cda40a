package commands

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// ExecOptions configures subprocess execution
type ExecOptions struct {
	Timeout time.Duration // Command timeout (default: DefaultExecTimeout)
}

// ProcessExecutor runs a fixed argv as a subprocess, appending the
// command's arguments
type ProcessExecutor struct {
	argv []string
	opts ExecOptions
}

// NewProcessExecutor creates a new executor for argv
func NewProcessExecutor(argv []string, opts ExecOptions) *ProcessExecutor {
	return &ProcessExecutor{
		argv: append([]string(nil), argv...),
		opts: opts,
	}
}

// Execute runs the process with extra args and returns its stdout
func (e *ProcessExecutor) Execute(args []string) (string, error) {
	if len(e.argv) == 0 {
		return "", errors.New("exec handler has no program")
	}

	// Set timeout (default 30s)
	timeout := e.opts.Timeout
	if timeout == 0 {
		timeout = DefaultExecTimeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	full := append(append([]string(nil), e.argv[1:]...), args...)
	cmd := exec.CommandContext(ctx, e.argv[0], full...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", fmt.Errorf("%s timed out after %v", e.argv[0], timeout)
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("%s error: %s", e.argv[0], msg)
		}
		return "", fmt.Errorf("%s failed: %w", e.argv[0], err)
	}
	return stdout.String(), nil
}

// Handler adapts the executor to a command Handler
func (e *ProcessExecutor) Handler() Handler {
	return func(args []string) (any, error) {
		return e.Execute(args)
	}
}
