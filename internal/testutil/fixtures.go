// internal/testutil/fixtures.go
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// Fixture documents (primitive values only, no dependency on domain).

// FixtureTOML is a small TOML document touching tables, arrays and scalars.
const FixtureTOML = `title = "tomlq"
version = 3
ratio = 0.5
enabled = true
tags = ["a", "b"]

[owner]
name = "Tom"

[[servers]]
host = "alpha"
port = 8080

[[servers]]
host = "beta"
port = 8081
`

// FixtureTOMLJSON is the compact JSON encoding of FixtureTOML.
const FixtureTOMLJSON = `{"enabled":true,"owner":{"name":"Tom"},"ratio":0.5,"servers":[{"host":"alpha","port":8080},{"host":"beta","port":8081}],"tags":["a","b"],"title":"tomlq","version":3}`

// FixtureYAML is a YAML document with an anchor and an alias.
const FixtureYAML = `defaults: &defaults
  adapter: postgres
  port: 5432
development:
  <<: *defaults
  database: dev
list:
  - 1
  - two
  - null
`

// FixtureYAMLJSON is the compact JSON encoding of FixtureYAML.
const FixtureYAMLJSON = `{"defaults":{"adapter":"postgres","port":5432},"development":{"adapter":"postgres","database":"dev","port":5432},"list":[1,"two",null]}`

// FixtureInvalidTOML is not parseable as TOML.
const FixtureInvalidTOML = "key = \n[broken"

// FixtureInvalidYAML is not parseable as YAML.
const FixtureInvalidYAML = "a: [1, 2\nb: }"

// WriteFile writes content to name inside dir and returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture %s: %v", path, err)
	}
	return path
}

// StubEngine writes an executable shell script standing in for the query
// engine and returns its path. Tests relying on it are skipped on Windows.
func StubEngine(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub engine scripts need a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "jq-stub")
	script := "#!/bin/sh\n" + body + "\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub engine: %v", err)
	}
	return path
}

// TempJSONFiles lists the files matching prefix*.json in dir.
func TempJSONFiles(t *testing.T, dir, prefix string) []string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, prefix+"*.json"))
	if err != nil {
		t.Fatalf("glob temp files: %v", err)
	}
	return matches
}
