package app

import (
	"os"
	"runtime"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// ErrInvalidArgument marks a configuration value that cannot be used.
var ErrInvalidArgument = errors.New("invalid argument")

// Config represents the options of a simulation run.
type Config struct {
	Input     string `yaml:"input"`
	Ticks     int    `yaml:"ticks"`
	OutputDir string `yaml:"output_dir"`
	LastOnly  bool   `yaml:"last_only"`
	Scale     int    `yaml:"scale"`
	Workers   int    `yaml:"workers"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	// TPS is the preview window's playback rate in ticks per second.
	TPS int `yaml:"tps"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Input:     "reso.png",
		Ticks:     1,
		OutputDir: "./output/",
		Scale:     1,
		Workers:   runtime.NumCPU(),
		LogLevel:  "info",
		LogFormat: "text",
		TPS:       4,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&c.Input, "file", "f", c.Input, "image to run the simulation on")
	fs.IntVarP(&c.Ticks, "number", "n", c.Ticks, "number of ticks to simulate")
	fs.StringVarP(&c.OutputDir, "output", "o", c.OutputDir, "directory to write frames to")
	fs.BoolVarP(&c.LastOnly, "last", "l", c.LastOnly, "only write the final tick's frame")
	fs.IntVar(&c.Scale, "scale", c.Scale, "integer upscale factor for written frames")
	fs.IntVar(&c.Workers, "workers", c.Workers, "concurrent frame encoders")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "log format (text, json)")
}

// BindPreview attaches the preview-only options.
func (c *Config) BindPreview(fs *pflag.FlagSet) {
	fs.IntVar(&c.TPS, "tps", c.TPS, "preview ticks per second")
}

// LoadFile overlays the YAML document at path onto c, then re-applies every
// flag explicitly set on fs so the command line wins over the file.
func (c *Config) LoadFile(path string, fs *pflag.FlagSet) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(ErrInvalidArgument, "read config %s: %v", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return errors.Wrapf(ErrInvalidArgument, "parse config %s: %v", path, err)
	}
	if fs == nil {
		return nil
	}
	var setErr error
	fs.Visit(func(f *pflag.Flag) {
		if setErr != nil || f.Name == "config" {
			return
		}
		if err := fs.Set(f.Name, f.Value.String()); err != nil {
			setErr = errors.Wrapf(ErrInvalidArgument, "flag --%s: %v", f.Name, err)
		}
	})
	return setErr
}

// Validate checks that every option is usable.
func (c *Config) Validate() error {
	switch {
	case c.Input == "":
		return errors.Wrap(ErrInvalidArgument, "no input file")
	case c.Ticks < 1:
		return errors.Wrapf(ErrInvalidArgument, "tick count %d out of range, need at least 1", c.Ticks)
	case c.OutputDir == "":
		return errors.Wrap(ErrInvalidArgument, "no output directory")
	case c.Scale < 1:
		return errors.Wrapf(ErrInvalidArgument, "scale %d out of range, need at least 1", c.Scale)
	case c.Workers < 0:
		return errors.Wrapf(ErrInvalidArgument, "negative worker count %d", c.Workers)
	case c.TPS < 1:
		return errors.Wrapf(ErrInvalidArgument, "preview rate %d out of range, need at least 1", c.TPS)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return errors.Wrapf(ErrInvalidArgument, "unknown log format %q", c.LogFormat)
	}
	return nil
}
