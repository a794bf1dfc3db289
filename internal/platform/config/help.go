// internal/platform/config/help.go
package config

import (
	"fmt"
	"io"
)

const helpHeader = `tomlq - run jq over TOML and YAML

USAGE:
  tomlq [FLAGS...] [--] COMMAND [TARGETS...]

  With no TARGETS the document is read from standard input and a format
  flag is required. File targets take their format from the extension of
  the first file (.toml or .yaml); it then applies to every file.

TOMLQ FLAGS:
`

const helpFooter = `
Every other flag before COMMAND is passed to jq unchanged.

EXAMPLES:
  tomlq .package.name Cargo.toml
  tomlq -r '.services | keys[]' docker-compose.yaml
  cat config.yaml | tomlq --yaml .server.port
  tomlq -n --args --toml '$ARGS.positional' 'a = 1' 'b = 2'
`

// Usage writes the usage text, built from the resolver flag set, to w.
func Usage(w io.Writer) {
	fmt.Fprint(w, helpHeader)
	fmt.Fprint(w, ResolverFlags().FlagUsages())
	fmt.Fprint(w, helpFooter)
}
