// internal/core/usecases/resolver.go
package usecases

import (
	"strings"

	"github.com/spf13/pflag"

	"tomlq/internal/core/domain"
	"tomlq/internal/platform/config"
)

// ResolveArgs turns the raw argument list (program name stripped) into a
// ResolvedInvocation. It performs no I/O: command-line mistakes come back as
// *domain.UsageError and format inference failures as
// *domain.AmbiguousExtensionError, for the caller to report.
//
// Grammar: [FLAGS...] [--] COMMAND [TARGETS...]. The flag run ends at the
// first token not starting with "-" or at "--", which is dropped.
func ResolveArgs(args []string) (domain.ResolvedInvocation, error) {
	var inv domain.ResolvedInvocation

	flagRun, rest := splitFlagRun(args)

	fs := config.ResolverFlags()
	var recognised []string
	inv.Flags = make([]string, 0, len(flagRun))
	for _, tok := range flagRun {
		if config.IsResolverFlag(fs, tok) {
			recognised = append(recognised, tok)
			// format flags are ours alone; --args is also meant for jq
			if tok == "--"+config.FlagTOML || tok == "--"+config.FlagYAML {
				continue
			}
		}
		inv.Flags = append(inv.Flags, tok)
	}
	if err := fs.Parse(recognised); err != nil {
		return domain.ResolvedInvocation{}, domain.NewUsageError(domain.ErrInvalidInvocation, "%v", err)
	}

	if set(fs, config.FlagJSONArgs) {
		return domain.ResolvedInvocation{}, &domain.UsageError{Kind: domain.ErrJSONArgsUnsupported}
	}

	var modeIntent domain.TargetMode
	if set(fs, config.FlagArgs) {
		modeIntent = domain.TargetModeLiteralStrings
	}

	var formatIntent domain.TargetFormat
	switch toml, yaml := set(fs, config.FlagTOML), set(fs, config.FlagYAML); {
	case toml && yaml:
		return domain.ResolvedInvocation{}, domain.NewUsageError(domain.ErrConflictingFormats,
			"conflicting options %s and %s", domain.TargetFormatTOML.Flag(), domain.TargetFormatYAML.Flag())
	case toml:
		formatIntent = domain.TargetFormatTOML
	case yaml:
		formatIntent = domain.TargetFormatYAML
	}

	if len(rest) == 0 {
		return domain.ResolvedInvocation{}, &domain.UsageError{Kind: domain.ErrMissingCommand, ShowUsage: true}
	}
	inv.Command = rest[0]
	inv.Targets = append([]string{}, rest[1:]...)

	switch {
	case len(inv.Targets) == 0 && modeIntent != "":
		return domain.ResolvedInvocation{}, domain.NewUsageError(domain.ErrExplicitModeWithoutTargets,
			"cannot specify explicit %s mode without specifying any targets", modeIntent)
	case len(inv.Targets) == 0:
		inv.Mode = domain.TargetModeStdin
	case modeIntent != "":
		inv.Mode = modeIntent
	default:
		inv.Mode = domain.TargetModeFile
	}

	switch {
	case formatIntent != "":
		inv.Format = formatIntent
	case inv.Mode == domain.TargetModeFile:
		// the first target decides for all of them
		f, err := domain.InferFormat(inv.Targets[0])
		if err != nil {
			return domain.ResolvedInvocation{}, err
		}
		inv.Format = f
	default:
		return domain.ResolvedInvocation{}, domain.NewUsageError(domain.ErrFormatRequired,
			"must specify explicit %s or %s for %s mode",
			domain.TargetFormatYAML.Flag(), domain.TargetFormatTOML.Flag(), inv.Mode)
	}

	return inv, nil
}

// splitFlagRun separates the leading flag tokens from the rest.
func splitFlagRun(args []string) (flags, rest []string) {
	i := 0
	for i < len(args) && args[i] != "--" && strings.HasPrefix(args[i], "-") {
		i++
	}
	flags, rest = args[:i], args[i:]
	if len(rest) > 0 && rest[0] == "--" {
		rest = rest[1:]
	}
	return flags, rest
}

func set(fs *pflag.FlagSet, name string) bool {
	v, err := fs.GetBool(name)
	return err == nil && v
}
