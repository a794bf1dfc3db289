// internal/core/usecases/mocks_test.go
package usecases

import (
	"context"
	"os"
	"testing"

	"tomlq/internal/adapters/format"
	"tomlq/internal/core/ports"
)

// mockEngine is a ports.QueryEngine for orchestrator tests. It records the
// request and, for every path argument, whether the file existed while the
// engine was "running".
type mockEngine struct {
	runFunc      func(ctx context.Context, req ports.QueryRequest) (ports.QueryResult, error)
	requests     []ports.QueryRequest
	filesPresent map[string]bool
	fileContents map[string]string
}

func newMockEngine() *mockEngine {
	return &mockEngine{
		filesPresent: map[string]bool{},
		fileContents: map[string]string{},
	}
}

func (m *mockEngine) Name() string { return "mock-jq" }

func (m *mockEngine) Run(ctx context.Context, req ports.QueryRequest) (ports.QueryResult, error) {
	m.requests = append(m.requests, req)
	for _, arg := range req.Args {
		if data, err := os.ReadFile(arg); err == nil {
			m.filesPresent[arg] = true
			m.fileContents[arg] = string(data)
		}
	}
	if m.runFunc != nil {
		return m.runFunc(ctx, req)
	}
	return ports.QueryResult{ExitCode: 0}, nil
}

func (m *mockEngine) lastRequest(t *testing.T) ports.QueryRequest {
	t.Helper()
	if len(m.requests) == 0 {
		t.Fatal("engine was never run")
	}
	return m.requests[len(m.requests)-1]
}

// newTestPipeline wires the real converters into a pipeline writing its
// temp files into dir.
func newTestPipeline(dir string) *ConversionPipeline {
	return NewConversionPipeline(ConversionOptions{
		Converters:  format.For,
		Encode:      format.MarshalCompact,
		TempDir:     dir,
		TempPattern: "tomlq*.json",
	})
}
