// internal/core/usecases/conversion_test.go
package usecases

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"

	"tomlq/internal/core/domain"
	perrors "tomlq/internal/platform/errors"
	"tomlq/internal/testutil"
)

func TestConvert_FileMode(t *testing.T) {
	src := t.TempDir()
	tmp := t.TempDir()
	a := testutil.WriteFile(t, src, "a.toml", testutil.FixtureTOML)
	b := testutil.WriteFile(t, src, "b.toml", "x = 1\n")

	inv := domain.ResolvedInvocation{Command: ".", Targets: []string{a, b}, Mode: domain.TargetModeFile, Format: domain.TargetFormatTOML}
	input, err := newTestPipeline(tmp).Convert(inv, nil)
	testutil.RequireNoError(t, err, "Convert")

	files, ok := input.(*TempFiles)
	testutil.AssertTrue(t, ok, "file mode yields temp files")
	testutil.AssertEqual(t, input.Mode(), domain.TargetModeFile, "mode")

	paths := input.Args()
	if len(paths) != 2 {
		t.Fatalf("expected 2 temp files, got %d", len(paths))
	}
	for _, p := range paths {
		testutil.AssertEqual(t, filepath.Dir(p), tmp, "temp file location")
		testutil.AssertTrue(t, strings.HasPrefix(filepath.Base(p), "tomlq"), "temp file prefix")
		testutil.AssertTrue(t, strings.HasSuffix(p, ".json"), "temp file suffix")
	}

	first, err := os.ReadFile(paths[0])
	testutil.RequireNoError(t, err, "read first temp file")
	testutil.AssertEqual(t, string(first), testutil.FixtureTOMLJSON, "first file holds compact json of first target")
	second, err := os.ReadFile(paths[1])
	testutil.RequireNoError(t, err, "read second temp file")
	testutil.AssertEqual(t, string(second), `{"x":1}`, "target order is preserved")

	_, hasStdin := input.Stdin()
	testutil.AssertFalse(t, hasStdin, "no stdin in file mode")

	testutil.RequireNoError(t, files.Close(), "Close")
	testutil.AssertEqual(t, len(testutil.TempJSONFiles(t, tmp, "tomlq")), 0, "temp files removed")
	testutil.AssertNoError(t, files.Close(), "second Close is a no-op")
}

func TestConvert_FileModeAppliesFirstFormatToAll(t *testing.T) {
	src := t.TempDir()
	tmp := t.TempDir()
	a := testutil.WriteFile(t, src, "a.toml", "a = 1\n")
	b := testutil.WriteFile(t, src, "b.yaml", "list:\n  - 1\n")

	inv, err := ResolveArgs([]string{".", a, b})
	testutil.RequireNoError(t, err, "ResolveArgs")
	testutil.AssertEqual(t, inv.Format, domain.TargetFormatTOML, "format from first target")

	_, err = newTestPipeline(tmp).Convert(inv, nil)
	var parseErr *domain.ParseError
	testutil.AssertTrue(t, errors.As(err, &parseErr), "yaml file parsed as toml must fail")
	testutil.AssertEqual(t, parseErr.Format, domain.TargetFormatTOML, "parse error format")
	testutil.AssertEqual(t, parseErr.Source, b, "parse error names the file")
	testutil.AssertEqual(t, len(testutil.TempJSONFiles(t, tmp, "tomlq")), 0, "partial temp files removed")
}

func TestConvert_FileModeMissingFile(t *testing.T) {
	tmp := t.TempDir()
	src := t.TempDir()
	a := testutil.WriteFile(t, src, "a.yaml", "a: 1\n")
	missing := filepath.Join(src, "missing.yaml")

	inv := domain.ResolvedInvocation{Command: ".", Targets: []string{a, missing}, Mode: domain.TargetModeFile, Format: domain.TargetFormatYAML}
	_, err := newTestPipeline(tmp).Convert(inv, nil)

	testutil.AssertTrue(t, perrors.Is(err, perrors.ErrOpenInput), "classified as input failure")
	testutil.AssertTrue(t, errors.Is(err, os.ErrNotExist), "keeps the cause")
	testutil.AssertContains(t, err.Error(), missing, "names the path")
	testutil.AssertEqual(t, len(testutil.TempJSONFiles(t, tmp, "tomlq")), 0, "temp file of first target removed")
}

func TestConvert_FileModeTempDirFailure(t *testing.T) {
	src := t.TempDir()
	a := testutil.WriteFile(t, src, "a.yaml", "a: 1\n")

	inv := domain.ResolvedInvocation{Command: ".", Targets: []string{a}, Mode: domain.TargetModeFile, Format: domain.TargetFormatYAML}
	_, err := newTestPipeline(filepath.Join(src, "does-not-exist")).Convert(inv, nil)

	testutil.AssertTrue(t, perrors.Is(err, perrors.ErrTempFile), "classified as temp file failure")
}

func TestConvert_LiteralMode(t *testing.T) {
	inv := domain.ResolvedInvocation{
		Command: "$ARGS",
		Targets: []string{"a = 1", `b = "two"`, ""},
		Mode:    domain.TargetModeLiteralStrings,
		Format:  domain.TargetFormatTOML,
	}
	input, err := newTestPipeline(t.TempDir()).Convert(inv, nil)
	testutil.RequireNoError(t, err, "Convert")

	_, ok := input.(*LiteralStrings)
	testutil.AssertTrue(t, ok, "literal mode yields literal strings")
	testutil.AssertStrings(t, input.Args(), []string{`{"a":1}`, `{"b":"two"}`, `{}`}, "literals")
	testutil.AssertNoError(t, input.Close(), "Close")
}

func TestConvert_LiteralModeParseError(t *testing.T) {
	inv := domain.ResolvedInvocation{
		Command: ".",
		Targets: []string{"a: 1", "a: [", "b: 2"},
		Mode:    domain.TargetModeLiteralStrings,
		Format:  domain.TargetFormatYAML,
	}
	_, err := newTestPipeline(t.TempDir()).Convert(inv, nil)

	var parseErr *domain.ParseError
	testutil.AssertTrue(t, errors.As(err, &parseErr), "parse error")
	testutil.AssertEqual(t, parseErr.Source, "argument #2", "names the argument")
	testutil.AssertEqual(t, parseErr.Format, domain.TargetFormatYAML, "names the format")
}

func TestConvert_StdinMode(t *testing.T) {
	inv := domain.ResolvedInvocation{Command: ".", Mode: domain.TargetModeStdin, Format: domain.TargetFormatYAML}
	input, err := newTestPipeline(t.TempDir()).Convert(inv, strings.NewReader(testutil.FixtureYAML))
	testutil.RequireNoError(t, err, "Convert")

	text, ok := input.Stdin()
	testutil.AssertTrue(t, ok, "stdin payload present")
	testutil.AssertEqual(t, len(input.Args()), 0, "no positional args")

	var got, want any
	testutil.RequireNoError(t, json.Unmarshal([]byte(text), &got), "payload is json")
	testutil.RequireNoError(t, json.Unmarshal([]byte(testutil.FixtureYAMLJSON), &want), "expected json")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("stdin payload mismatch (-want +got):\n%s", diff)
	}
}

func TestConvert_StdinModeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  error
	}{
		{"malformed", testutil.FixtureInvalidYAML, nil},
		{"multiple documents", "a: 1\n---\nb: 2\n", domain.ErrMultipleDocuments},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := domain.ResolvedInvocation{Command: ".", Mode: domain.TargetModeStdin, Format: domain.TargetFormatYAML}
			_, err := newTestPipeline(t.TempDir()).Convert(inv, strings.NewReader(tt.input))

			var parseErr *domain.ParseError
			testutil.AssertTrue(t, errors.As(err, &parseErr), "parse error")
			testutil.AssertEqual(t, parseErr.Source, "<stdin>", "names stdin")
			if tt.kind != nil {
				testutil.AssertTrue(t, errors.Is(err, tt.kind), "error kind")
			}
		})
	}
}

func TestConvert_StdinReadFailure(t *testing.T) {
	for _, f := range []domain.TargetFormat{domain.TargetFormatTOML, domain.TargetFormatYAML} {
		t.Run(f.String(), func(t *testing.T) {
			inv := domain.ResolvedInvocation{Command: ".", Mode: domain.TargetModeStdin, Format: f}
			_, err := newTestPipeline(t.TempDir()).Convert(inv, iotest.ErrReader(errors.New("input/output error")))

			var parseErr *domain.ParseError
			testutil.AssertFalse(t, errors.As(err, &parseErr), "not reported as a parse error")
			testutil.AssertTrue(t, perrors.Is(err, perrors.ErrOpenInput), "classified as input failure")
			testutil.AssertContains(t, err.Error(), "<stdin>", "names stdin")
		})
	}
}

func TestConvert_UnknownFormat(t *testing.T) {
	inv := domain.ResolvedInvocation{Command: ".", Mode: domain.TargetModeStdin, Format: "ini"}
	_, err := newTestPipeline(t.TempDir()).Convert(inv, strings.NewReader(""))
	testutil.AssertError(t, err, "no converter for ini")
}
