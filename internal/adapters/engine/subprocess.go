// Package engine runs the external JSON query processor.
package engine

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"
	"syscall"
	"time"

	"tomlq/internal/core/ports"
	"tomlq/internal/platform/errors"
	"tomlq/internal/platform/logx"
)

// SubprocessConfig contains configuration for Subprocess.
type SubprocessConfig struct {
	ExecPath string    // Binary to run, resolved via PATH by os/exec
	Stdout   io.Writer // Engine stdout (default: os.Stdout)
	Stderr   io.Writer // Engine stderr (default: os.Stderr)
}

// Subprocess is a ports.QueryEngine backed by a child process. The child's
// output streams are connected straight to the configured writers; nothing
// is captured or reformatted.
type Subprocess struct {
	logger   logx.Logger
	execPath string
	stdout   io.Writer
	stderr   io.Writer
}

var _ ports.QueryEngine = (*Subprocess)(nil)

// NewSubprocess creates a Subprocess engine.
func NewSubprocess(logger logx.Logger, cfg SubprocessConfig) *Subprocess {
	if logger == nil {
		logger = logx.Discard()
	}
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}
	if cfg.Stderr == nil {
		cfg.Stderr = os.Stderr
	}
	return &Subprocess{
		logger:   logger.With("engine", cfg.ExecPath),
		execPath: cfg.ExecPath,
		stdout:   cfg.Stdout,
		stderr:   cfg.Stderr,
	}
}

// Name returns the executable the engine runs.
func (s *Subprocess) Name() string { return s.execPath }

// Run starts the engine with req.Args and waits for it. When req.Stdin is
// set its text is written to the child's stdin which is then closed;
// otherwise the child reads from the null device.
//
// A child that exits unsuccessfully is not an error: its status is returned
// in the QueryResult. Errors are reserved for failing to start the child or
// to deliver its input.
func (s *Subprocess) Run(ctx context.Context, req ports.QueryRequest) (ports.QueryResult, error) {
	cmd := exec.CommandContext(ctx, s.execPath, req.Args...)
	cmd.Stdout = s.stdout
	cmd.Stderr = s.stderr

	var stdin io.WriteCloser
	if req.Stdin != nil {
		pipe, err := cmd.StdinPipe()
		if err != nil {
			return ports.QueryResult{}, errors.Mark(err, errors.ErrSpawn, "create stdin pipe")
		}
		stdin = pipe
	}

	s.logger.Debug("starting query engine", "args", strings.Join(req.Args, " "))
	start := time.Now()

	if err := cmd.Start(); err != nil {
		return ports.QueryResult{}, errors.Mark(err, errors.ErrSpawn, "start process")
	}
	s.logger.Debug("subprocess started", "pid", cmd.Process.Pid)

	var writeErr error
	if stdin != nil {
		_, writeErr = io.WriteString(stdin, *req.Stdin)
		if cerr := stdin.Close(); writeErr == nil {
			writeErr = cerr
		}
	}

	// Always reap the child, even when delivering its input failed.
	waitErr := cmd.Wait()

	result, err := resultOf(cmd.ProcessState, waitErr)
	if err != nil {
		return ports.QueryResult{}, errors.Wrap(err, "wait for process")
	}

	s.logger.Debug("subprocess exited",
		"status", result.String(),
		"duration", time.Since(start).String(),
	)

	if writeErr != nil {
		s.logger.Debug("stdin write failed", "error", writeErr.Error(), "status", result.String())
		return result, errors.Mark(writeErr, errors.ErrPipeWrite, "write converted input")
	}
	return result, nil
}

// resultOf translates the outcome of cmd.Wait into a QueryResult. An
// *exec.ExitError only means the child did not succeed; any other error
// from Wait is returned.
func resultOf(state *os.ProcessState, waitErr error) (ports.QueryResult, error) {
	if waitErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(waitErr, &exitErr) {
			return ports.QueryResult{}, waitErr
		}
		state = exitErr.ProcessState
	}
	if state == nil {
		return ports.QueryResult{ExitCode: -1}, nil
	}

	result := ports.QueryResult{ExitCode: state.ExitCode()}
	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		result.Signal = ws.Signal().String()
		result.SignalNumber = int(ws.Signal())
	}
	return result, nil
}
