// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/constellation/internal/config"
)

// inTempDir runs the test from an empty directory so no stray config file
// is picked up.
func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	inTempDir(t)

	cfg, err := config.Load(config.New(""))
	require.NoError(t, err)

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"DataDir", cfg.DataDir, "data"},
		{"Format", cfg.Format, "table"},
		{"Top", cfg.Top, 10},
		{"StartYear", cfg.StartYear, 2004},
		{"CurrentYear", cfg.CurrentYear, 2026},
		{"Seed", cfg.Seed, int64(0)},
		{"SampleSize", cfg.SampleSize, 50},
		{"Damping", cfg.Damping, 0.85},
		{"Iterations", cfg.Iterations, 100},
		{"Verbose", cfg.Verbose, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	inTempDir(t)
	t.Setenv("CONSTELLATION_DATA_DIR", "/srv/tron")
	t.Setenv("CONSTELLATION_CURRENT_YEAR", "2030")
	t.Setenv("CONSTELLATION_FORMAT", "json")

	cfg, err := config.Load(config.New(""))
	require.NoError(t, err)
	assert.Equal(t, "/srv/tron", cfg.DataDir)
	assert.Equal(t, 2030, cfg.CurrentYear)
	assert.Equal(t, "json", cfg.Format)
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := inTempDir(t)
	body := "data_dir: exports\nformat: toml\nseed: 42\nsample_size: 7\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".constellation.yaml"), []byte(body), 0o644))

	cfg, err := config.Load(config.New(""))
	require.NoError(t, err)
	assert.Equal(t, "exports", cfg.DataDir)
	assert.Equal(t, "toml", cfg.Format)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 7, cfg.SampleSize)
}

func TestLoad_ExplicitTOMLFile(t *testing.T) {
	dir := inTempDir(t)
	path := filepath.Join(dir, "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte("top = 3\nstart_year = 2010\n"), 0o644))

	cfg, err := config.Load(config.New(path))
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Top)
	assert.Equal(t, 2010, cfg.StartYear)
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	dir := inTempDir(t)
	_, err := config.Load(config.New(filepath.Join(dir, "nope.yaml")))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := config.Config{
		DataDir: "data", Format: "table", Top: 0,
		StartYear: 2004, CurrentYear: 2026, SampleSize: 1,
	}
	require.NoError(t, config.Validate(valid))

	cases := map[string]func(*config.Config){
		"NoDataDir":     func(c *config.Config) { c.DataDir = "" },
		"BadFormat":     func(c *config.Config) { c.Format = "xml" },
		"NegativeTop":   func(c *config.Config) { c.Top = -1 },
		"ZeroSample":    func(c *config.Config) { c.SampleSize = 0 },
		"StartAfterNow": func(c *config.Config) { c.StartYear = 2027 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := valid
			mutate(&cfg)
			assert.ErrorIs(t, config.Validate(cfg), config.ErrInvalidConfig)
		})
	}
}
