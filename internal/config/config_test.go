package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefault verifies the stock values.
func TestDefault(t *testing.T) {
	cfg := Default("/project")

	assert.Equal(t, "/project", cfg.Dir)
	assert.Equal(t, "package.json", cfg.ManifestFile)
	assert.Equal(t, ".eslintrc.js", cfg.ConfigFile)
	assert.Equal(t, "lint", cfg.ScriptName)
	assert.Equal(t, "eslint . --ext .ts,.js", cfg.LintCommand)
	assert.Equal(t, "npm", cfg.PackageManager)
	assert.False(t, cfg.FailOnInstallError)
	if diff := cmp.Diff(DefaultDependencies, cfg.Dependencies); diff != "" {
		t.Errorf("Dependencies mismatch (-want +got):\n%s", diff)
	}
	assert.NoError(t, cfg.Validate())
}

// TestDefaultDoesNotShareDependencies verifies that editing one config's
// dependency list leaves the package default alone.
func TestDefaultDoesNotShareDependencies(t *testing.T) {
	cfg := Default("/project")
	cfg.Dependencies[0] = "changed"

	assert.Equal(t, "eslint", DefaultDependencies[0])
}

// TestReadOverlay verifies that file values override defaults and missing
// fields keep them.
func TestReadOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eslint-setup.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
  "dependencies": ["eslint", "prettier"],
  "packageManager": "pnpm",
  "failOnInstallError": true
}`), 0o644))

	cfg, err := Read(path, "/project")
	require.NoError(t, err)

	assert.Equal(t, []string{"eslint", "prettier"}, cfg.Dependencies)
	assert.Equal(t, "pnpm", cfg.PackageManager)
	assert.True(t, cfg.FailOnInstallError)
	assert.Equal(t, "eslint . --ext .ts,.js", cfg.LintCommand)
	assert.Equal(t, "/project", cfg.Dir)
}

// TestReadMissing verifies that a missing config file is an error.
func TestReadMissing(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.json"), "/project")
	assert.Error(t, err)
}

// TestReadInvalid verifies that malformed JSON is an error.
func TestReadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Read(path, "/project")
	assert.Error(t, err)
}

// TestEncodeOmitsDir verifies that Encode emits JSON Read can consume and
// never leaks the project directory.
func TestEncodeOmitsDir(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, Default("/secret/project")))

	assert.NotContains(t, buf.String(), "/secret/project")

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "lint", decoded["scriptName"])
}

// TestValidate verifies each rejected field.
func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no dir", func(c *Config) { c.Dir = "" }},
		{"no manifest file", func(c *Config) { c.ManifestFile = "" }},
		{"config file is a path", func(c *Config) { c.ConfigFile = "../.eslintrc.js" }},
		{"blank script", func(c *Config) { c.ScriptName = " " }},
		{"blank lint command", func(c *Config) { c.LintCommand = "" }},
		{"no dependencies", func(c *Config) { c.Dependencies = nil }},
		{"dependency with space", func(c *Config) { c.Dependencies = []string{"eslint prettier"} }},
		{"unknown package manager", func(c *Config) { c.PackageManager = "cargo" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default("/project")
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

// TestValidateCustomCommandSkipsManager verifies that a custom install
// command makes the package manager name irrelevant.
func TestValidateCustomCommandSkipsManager(t *testing.T) {
	cfg := Default("/project")
	cfg.PackageManager = "bun"
	cfg.InstallCommand = "bun add -d"

	assert.NoError(t, cfg.Validate())
}
