package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindDefaultsAndShortFlags(t *testing.T) {
	cfg := NewConfig()
	fs := pflag.NewFlagSet("reso", pflag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-f", "in.png", "-n", "12", "-o", "frames", "-l"}))

	assert.Equal(t, "in.png", cfg.Input)
	assert.Equal(t, 12, cfg.Ticks)
	assert.Equal(t, "frames", cfg.OutputDir)
	assert.True(t, cfg.LastOnly)
	assert.Equal(t, 1, cfg.Scale)
	require.NoError(t, cfg.Validate())
}

func TestBindRejectsNonNumericTicks(t *testing.T) {
	cfg := NewConfig()
	fs := pflag.NewFlagSet("reso", pflag.ContinueOnError)
	fs.SetOutput(&bytes.Buffer{})
	cfg.Bind(fs)
	assert.Error(t, fs.Parse([]string{"--number", "many"}))
}

func TestLoadFileFlagsWin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reso.yaml")
	doc := "input: board.png\nticks: 40\noutput_dir: out\nscale: 4\nlog_format: json\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg := NewConfig()
	fs := pflag.NewFlagSet("reso", pflag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-n", "7"}))
	require.NoError(t, cfg.LoadFile(path, fs))

	assert.Equal(t, "board.png", cfg.Input)
	assert.Equal(t, 7, cfg.Ticks)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, 4, cfg.Scale)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadFileErrors(t *testing.T) {
	cfg := NewConfig()
	err := cfg.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ticks: [1, 2"), 0o644))
	err = cfg.LoadFile(path, nil)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"zero ticks":     func(c *Config) { c.Ticks = 0 },
		"negative ticks": func(c *Config) { c.Ticks = -3 },
		"no input":       func(c *Config) { c.Input = "" },
		"no output":      func(c *Config) { c.OutputDir = "" },
		"zero scale":     func(c *Config) { c.Scale = 0 },
		"workers":        func(c *Config) { c.Workers = -1 },
		"tps":            func(c *Config) { c.TPS = 0 },
		"log level":      func(c *Config) { c.LogLevel = "loud" },
		"log format":     func(c *Config) { c.LogFormat = "xml" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := NewConfig()
			mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidArgument))
		})
	}
	require.NoError(t, NewConfig().Validate())
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewConfig()
	cfg.LogFormat = "json"
	cfg.LogLevel = "warn"
	log, err := NewLogger(&buf, cfg)
	require.NoError(t, err)

	log.Info("hidden")
	log.Warn("shown", "tick", 3)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"tick":3`)
}

func TestNewLoggerMatchesValidate(t *testing.T) {
	for _, format := range []string{"", "xml"} {
		cfg := NewConfig()
		cfg.LogFormat = format
		_, err := NewLogger(&bytes.Buffer{}, cfg)
		assert.True(t, errors.Is(err, ErrInvalidArgument), "format %q", format)
		assert.True(t, errors.Is(cfg.Validate(), ErrInvalidArgument), "format %q", format)
	}
}
