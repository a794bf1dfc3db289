// internal/core/usecases/conversion.go
package usecases

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"tomlq/internal/core/domain"
	"tomlq/internal/core/ports"
	"tomlq/internal/platform/errors"
	"tomlq/internal/platform/logx"
)

// ConverterLookup returns the converter for a format.
type ConverterLookup func(domain.TargetFormat) (ports.Converter, error)

// JSONEncoder serialises a converted value as compact JSON text.
type JSONEncoder func(v any) ([]byte, error)

// ConversionOptions configures a ConversionPipeline.
type ConversionOptions struct {
	// Converters resolves the converter for the invocation's format.
	Converters ConverterLookup

	// Encode serialises converted values.
	Encode JSONEncoder

	// TempDir is where ephemeral JSON files go ("" = OS default).
	TempDir string

	// TempPattern is the os.CreateTemp pattern, e.g. "tomlq*.json".
	TempPattern string

	Logger logx.Logger
}

// ConversionPipeline converts the targets of an invocation into JSON shaped
// for its mode.
type ConversionPipeline struct {
	converters  ConverterLookup
	encode      JSONEncoder
	tempDir     string
	tempPattern string
	logger      logx.Logger
}

// NewConversionPipeline creates a ConversionPipeline.
func NewConversionPipeline(opts ConversionOptions) *ConversionPipeline {
	if opts.Logger == nil {
		opts.Logger = logx.Discard()
	}
	return &ConversionPipeline{
		converters:  opts.Converters,
		encode:      opts.Encode,
		tempDir:     opts.TempDir,
		tempPattern: opts.TempPattern,
		logger:      opts.Logger.With("stage", "convert"),
	}
}

// Convert converts every target of inv, or stdin when inv is in stdin mode.
// The first failure aborts the batch; temp files created up to that point
// are removed before Convert returns.
func (p *ConversionPipeline) Convert(inv domain.ResolvedInvocation, stdin io.Reader) (ConvertedInput, error) {
	conv, err := p.converters(inv.Format)
	if err != nil {
		return nil, err
	}

	switch inv.Mode {
	case domain.TargetModeFile:
		return p.convertFiles(conv, inv.Targets)
	case domain.TargetModeLiteralStrings:
		return p.convertLiterals(conv, inv.Targets)
	case domain.TargetModeStdin:
		return p.convertStdin(conv, stdin)
	default:
		return nil, fmt.Errorf("%w: unknown mode %q", domain.ErrInvalidInvocation, inv.Mode)
	}
}

func (p *ConversionPipeline) convertFiles(conv ports.Converter, paths []string) (ConvertedInput, error) {
	files := &TempFiles{}
	for _, path := range paths {
		if err := p.convertFile(conv, path, files); err != nil {
			if cerr := files.Close(); cerr != nil {
				p.logger.Warn("failed to remove temporary files", "error", cerr.Error())
			}
			return nil, err
		}
	}
	return files, nil
}

func (p *ConversionPipeline) convertFile(conv ports.Converter, path string, files *TempFiles) error {
	in, err := os.Open(path)
	if err != nil {
		return errors.Mark(err, errors.ErrOpenInput, "open %s", path)
	}
	defer in.Close()

	data, err := p.toCompactJSON(conv, bufio.NewReader(in), path)
	if err != nil {
		return err
	}

	out, err := os.CreateTemp(p.tempDir, p.tempPattern)
	if err != nil {
		return errors.Mark(err, errors.ErrTempFile, "create temporary file for %s", path)
	}
	// registered before writing so a failed write is cleaned up too
	files.add(out.Name())

	if _, err := out.Write(data); err != nil {
		out.Close()
		return errors.Mark(err, errors.ErrTempFile, "write %s", out.Name())
	}
	if err := out.Close(); err != nil {
		return errors.Mark(err, errors.ErrTempFile, "close %s", out.Name())
	}

	p.logger.Debug("converted file", "path", path, "temp", out.Name(), "bytes", len(data))
	return nil
}

func (p *ConversionPipeline) convertLiterals(conv ports.Converter, targets []string) (ConvertedInput, error) {
	lits := &LiteralStrings{literals: make([]string, 0, len(targets))}
	for i, target := range targets {
		data, err := p.toCompactJSON(conv, strings.NewReader(target), fmt.Sprintf("argument #%d", i+1))
		if err != nil {
			return nil, err
		}
		lits.literals = append(lits.literals, string(data))
	}
	p.logger.Debug("converted literals", "count", len(lits.literals))
	return lits, nil
}

func (p *ConversionPipeline) convertStdin(conv ports.Converter, stdin io.Reader) (ConvertedInput, error) {
	if stdin == nil {
		stdin = strings.NewReader("")
	}
	data, err := p.toCompactJSON(conv, stdin, "<stdin>")
	if err != nil {
		return nil, err
	}
	p.logger.Debug("converted stdin", "bytes", len(data), "text", string(data))
	return &StdinPayload{text: string(data)}, nil
}

// toCompactJSON runs one document through conv. Read failures keep their
// I/O classification; everything else is a parse error naming source.
func (p *ConversionPipeline) toCompactJSON(conv ports.Converter, r io.Reader, source string) ([]byte, error) {
	v, err := conv.ToJSON(r)
	if err != nil {
		if errors.IsIO(err) {
			return nil, errors.Wrapf(err, "%s", source)
		}
		return nil, &domain.ParseError{Format: conv.Format(), Source: source, Err: err}
	}

	data, err := p.encode(v)
	if err != nil {
		return nil, &domain.ParseError{Format: conv.Format(), Source: source, Err: err}
	}
	return data, nil
}
