// cmd/tomlq/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"tomlq/internal/adapters/engine"
	"tomlq/internal/adapters/format"
	"tomlq/internal/core/domain"
	"tomlq/internal/core/usecases"
	"tomlq/internal/platform/config"
	perrors "tomlq/internal/platform/errors"
	"tomlq/internal/platform/logx"
	"tomlq/internal/platform/ui"
)

func main() {
	ctx, cancel := rootContextWithSignals()
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr, config.Load())
	cancel()
	os.Exit(code)
}

// run executes one tomlq invocation and returns the process exit status:
// the query engine's own status when it ran, 1 for the tool's errors.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, cfg config.Config) int {
	presenter := ui.NewPresenter(stderr)
	logger := logx.NewWithWriter(stderr, cfg.LogLevel).With("app", config.AppName)

	// 1. Split the command line
	inv, err := usecases.ResolveArgs(args)
	if err != nil {
		return fail(presenter, err)
	}

	// 2. Wire conversion and the engine
	pipeline := usecases.NewConversionPipeline(usecases.ConversionOptions{
		Converters:  format.For,
		Encode:      format.MarshalCompact,
		TempDir:     cfg.TempDir,
		TempPattern: cfg.TempPattern,
		Logger:      logger,
	})

	jq := engine.NewSubprocess(logger, engine.SubprocessConfig{
		ExecPath: cfg.Engine,
		Stdout:   stdout,
		Stderr:   stderr,
	})

	orch := usecases.NewInvocationOrchestrator(usecases.InvocationOptions{
		Engine:   jq,
		Pipeline: pipeline,
		Stdin:    stdin,
		Logger:   logger,
	})

	// 3. Run and mirror the engine's status
	result, err := orch.Run(ctx, inv)
	if err != nil {
		return fail(presenter, err)
	}
	if result.Signaled() {
		presenter.Warning(fmt.Sprintf("query engine terminated by signal: %s", result.Signal))
	}
	return result.StatusCode()
}

// fail reports err and returns its exit status.
func fail(presenter ui.Presenter, err error) int {
	presenter.Error(err.Error())

	var usageErr *domain.UsageError
	if errors.As(err, &usageErr) && usageErr.ShowUsage {
		presenter.Usage(config.Usage)
	}
	return perrors.ExitCode(err)
}

// rootContextWithSignals keeps the tool alive through SIGINT and SIGTERM so
// temporary files are removed after the engine exits. SIGINT already
// reaches the engine through the terminal's process group. SIGTERM is sent
// to the tool alone and cancels the context, which kills the engine.
func rootContextWithSignals() (context.Context, context.CancelFunc) {
	base, baseCancel := context.WithCancel(context.Background())

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		for {
			select {
			case sig := <-ch:
				if sig == syscall.SIGTERM {
					baseCancel()
				}
			case <-base.Done():
				return
			}
		}
	}()

	cleanupCancel := func() {
		signal.Stop(ch)
		baseCancel()
	}

	return base, cleanupCancel
}
