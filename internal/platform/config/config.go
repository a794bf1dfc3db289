// internal/platform/config/config.go
package config

import (
	"os"
	"strings"

	"github.com/spf13/pflag"

	"tomlq/internal/platform/logx"
)

const (
	// AppName is the name of the tool as shown in usage and messages.
	AppName = "tomlq"

	// DefaultEngine is the query engine executable, resolved through PATH.
	DefaultEngine = "jq"

	// TempPrefix names every ephemeral JSON file the tool creates.
	TempPrefix = "tomlq"

	// TempSuffix is the extension of every ephemeral JSON file.
	TempSuffix = ".json"

	// EnvLogLevel selects the diagnostic log level (debug, info, warn, error).
	EnvLogLevel = "TOMLQ_LOG_LEVEL"
)

// Resolver flag names. They are matched on their long "--name" form only.
const (
	FlagArgs     = "args"
	FlagJSONArgs = "jsonargs"
	FlagTOML     = "toml"
	FlagYAML     = "yaml"
)

// Config holds the knobs of a single run. There is no config file; the
// defaults cover normal use and tests override individual fields.
type Config struct {
	// Engine is the query engine executable (name or path).
	Engine string

	// TempDir is where ephemeral JSON files are created ("" = OS default).
	TempDir string

	// TempPattern is the os.CreateTemp pattern for ephemeral JSON files.
	TempPattern string

	// LogLevel is the level of the diagnostic logger.
	LogLevel logx.Level
}

// DefaultConfig returns the configuration used by the command.
func DefaultConfig() Config {
	return Config{
		Engine:      DefaultEngine,
		TempDir:     "",
		TempPattern: TempPrefix + "*" + TempSuffix,
		LogLevel:    logx.LevelWarn,
	}
}

// Load returns the defaults with the environment applied.
func Load() Config {
	cfg := DefaultConfig()
	loadFromEnv(&cfg)
	return cfg
}

// loadFromEnv only reads the log level: the tool's behaviour never depends
// on the environment, its diagnostics may.
func loadFromEnv(cfg *Config) {
	if v := getenv(EnvLogLevel, ""); v != "" {
		cfg.LogLevel = logx.ParseLevel(v, cfg.LogLevel)
	}
}

// ResolverFlags returns a fresh flag set declaring the flags the tool
// itself interprets. Every other flag is forwarded to the query engine.
func ResolverFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet(AppName, pflag.ContinueOnError)
	fs.SortFlags = false
	fs.Bool(FlagTOML, false, "Parse targets as TOML (not forwarded)")
	fs.Bool(FlagYAML, false, "Parse targets as YAML (not forwarded)")
	fs.Bool(FlagArgs, false, "Targets are inline documents, passed to jq as JSON strings (forwarded)")
	fs.Bool(FlagJSONArgs, false, "Not supported")
	return fs
}

// IsResolverFlag reports whether token is the long form of a resolver flag.
func IsResolverFlag(fs *pflag.FlagSet, token string) bool {
	name, ok := strings.CutPrefix(token, "--")
	if !ok || name == "" || strings.Contains(name, "=") {
		return false
	}
	return fs.Lookup(name) != nil
}

// Helpers

func getenv(k, def string) string {
	if v, ok := os.LookupEnv(k); ok {
		return v
	}
	return def
}
