// internal/core/domain/invocation_test.go
package domain

import (
	"errors"
	"testing"

	"tomlq/internal/testutil"
)

func TestInferFormat(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		want    TargetFormat
		wantErr error
		message string
	}{
		{name: "toml", path: "a.toml", want: TargetFormatTOML},
		{name: "yaml in directory", path: "conf/app.yaml", want: TargetFormatYAML},
		{name: "double extension uses last", path: "x.yaml.toml", want: TargetFormatTOML},
		{name: "yml is not yaml", path: "x.yml", wantErr: ErrExtensionUnknown, message: "unknown file extension: .yml"},
		{name: "ini", path: "x.ini", wantErr: ErrExtensionUnknown, message: "unknown file extension: .ini"},
		{name: "extension is case sensitive", path: "X.TOML", wantErr: ErrExtensionUnknown, message: "unknown file extension: .TOML"},
		{name: "no extension", path: "README", wantErr: ErrExtensionMissing, message: "file has no extension: README"},
		{name: "dot file has no extension", path: "dir/.toml", wantErr: ErrExtensionMissing, message: "file has no extension: dir/.toml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := InferFormat(tt.path)
			if tt.wantErr == nil {
				testutil.AssertNoError(t, err, "InferFormat")
				testutil.AssertEqual(t, got, tt.want, "format")
				return
			}

			testutil.AssertTrue(t, errors.Is(err, tt.wantErr), "error kind")
			var ambiguous *AmbiguousExtensionError
			testutil.AssertTrue(t, errors.As(err, &ambiguous), "typed error")
			testutil.AssertEqual(t, err.Error(), tt.message, "error message")
		})
	}
}

func TestResolvedInvocation_Validate(t *testing.T) {
	tests := []struct {
		name    string
		inv     ResolvedInvocation
		wantErr bool
	}{
		{"file with targets", ResolvedInvocation{Command: ".", Targets: []string{"a.toml"}, Mode: TargetModeFile, Format: TargetFormatTOML}, false},
		{"literals with targets", ResolvedInvocation{Command: ".", Targets: []string{"a = 1"}, Mode: TargetModeLiteralStrings, Format: TargetFormatTOML}, false},
		{"stdin without targets", ResolvedInvocation{Command: ".", Mode: TargetModeStdin, Format: TargetFormatYAML}, false},
		{"stdin with targets", ResolvedInvocation{Command: ".", Targets: []string{"a"}, Mode: TargetModeStdin, Format: TargetFormatYAML}, true},
		{"file without targets", ResolvedInvocation{Command: ".", Mode: TargetModeFile, Format: TargetFormatYAML}, true},
		{"unknown format", ResolvedInvocation{Command: ".", Mode: TargetModeStdin, Format: "json"}, true},
		{"unknown mode", ResolvedInvocation{Command: ".", Mode: "socket", Format: TargetFormatTOML}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.inv.Validate()
			if tt.wantErr {
				testutil.AssertTrue(t, errors.Is(err, ErrInvalidInvocation), "should be an invalid invocation")
			} else {
				testutil.AssertNoError(t, err, "Validate")
			}
		})
	}
}

func TestErrors(t *testing.T) {
	usage := NewUsageError(ErrConflictingFormats, "conflicting options %s and %s", "--yaml", "--toml")
	testutil.AssertTrue(t, errors.Is(usage, ErrConflictingFormats), "usage error unwraps to kind")
	testutil.AssertEqual(t, usage.Error(), "conflicting options --yaml and --toml", "usage message")
	testutil.AssertEqual(t, usage.ExitCode(), 1, "usage exit code")

	bare := &UsageError{Kind: ErrMissingCommand}
	testutil.AssertEqual(t, bare.Error(), ErrMissingCommand.Error(), "message falls back to kind")

	cause := errors.New("unexpected token")
	parse := &ParseError{Format: TargetFormatYAML, Source: "<stdin>", Err: cause}
	testutil.AssertTrue(t, errors.Is(parse, cause), "parse error unwraps to cause")
	testutil.AssertEqual(t, parse.Error(), "invalid yaml in <stdin>: unexpected token", "parse message")
}
