// internal/core/usecases/invocation.go
package usecases

import (
	"context"
	"io"
	"time"

	"tomlq/internal/core/domain"
	"tomlq/internal/core/ports"
	"tomlq/internal/platform/errors"
	"tomlq/internal/platform/logx"
)

// BuildRequest assembles the engine invocation: flags, then the command,
// then the positional arguments of the converted input. In stdin mode the
// converted text becomes the engine's standard input.
func BuildRequest(inv domain.ResolvedInvocation, input ConvertedInput) ports.QueryRequest {
	positional := input.Args()
	args := make([]string, 0, len(inv.Flags)+1+len(positional))
	args = append(args, inv.Flags...)
	args = append(args, inv.Command)
	args = append(args, positional...)

	req := ports.QueryRequest{Args: args}
	if text, ok := input.Stdin(); ok {
		req.Stdin = &text
	}
	return req
}

// InvocationOptions configures an InvocationOrchestrator.
type InvocationOptions struct {
	Engine   ports.QueryEngine
	Pipeline *ConversionPipeline

	// Stdin is the tool's own standard input, read in stdin mode only.
	Stdin io.Reader

	Logger logx.Logger
}

// InvocationOrchestrator runs a resolved invocation end to end: convert,
// spawn the engine, wait, release the converted input.
type InvocationOrchestrator struct {
	engine   ports.QueryEngine
	pipeline *ConversionPipeline
	stdin    io.Reader
	logger   logx.Logger
}

// NewInvocationOrchestrator creates an InvocationOrchestrator.
func NewInvocationOrchestrator(opts InvocationOptions) *InvocationOrchestrator {
	if opts.Logger == nil {
		opts.Logger = logx.Discard()
	}
	return &InvocationOrchestrator{
		engine:   opts.Engine,
		pipeline: opts.Pipeline,
		stdin:    opts.Stdin,
		logger:   opts.Logger,
	}
}

// Run executes inv and reports how the engine exited. Temp files are
// removed after the engine has been waited on, on every path.
func (o *InvocationOrchestrator) Run(ctx context.Context, inv domain.ResolvedInvocation) (ports.QueryResult, error) {
	if err := inv.Validate(); err != nil {
		return ports.QueryResult{}, err
	}

	o.logger.Debug("resolved invocation",
		"mode", inv.Mode,
		"format", inv.Format,
		"flags", inv.Flags,
		"command", inv.Command,
		"targets", len(inv.Targets),
	)

	input, err := o.pipeline.Convert(inv, o.stdin)
	if err != nil {
		return ports.QueryResult{}, err
	}
	defer func() {
		if cerr := input.Close(); cerr != nil {
			o.logger.Warn("failed to remove temporary files", "error", cerr.Error())
		}
	}()

	req := BuildRequest(inv, input)

	start := time.Now()
	result, err := o.engine.Run(ctx, req)
	if err != nil {
		return ports.QueryResult{}, errors.Wrapf(err, "run %s", o.engine.Name())
	}

	o.logger.Debug("query engine finished",
		"engine", o.engine.Name(),
		"status", result.String(),
		"duration", time.Since(start).String(),
	)
	if result.Signaled() {
		o.logger.Debug("query engine terminated by signal",
			"engine", o.engine.Name(),
			"signal", result.Signal,
			"exit_code", result.StatusCode(),
		)
	}

	return result, nil
}
