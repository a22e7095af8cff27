package app

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"reso/internal/codec"
	"reso/internal/palette"
	"reso/internal/render"

	"github.com/pkg/errors"
)

// Result summarizes a finished run.
type Result struct {
	Nodes  int
	Ticks  int
	Frames int
	Census map[palette.Class]int
}

// Open validates cfg, decodes the input image and builds a session for it.
// Nothing is written to disk.
func Open(cfg *Config, reg *palette.Registry, log *slog.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	img, format, err := codec.DecodeFile(cfg.Input)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	log.Info("decoded input", "path", cfg.Input, "format", format, "width", b.Dx(), "height", b.Dy())

	s := NewSession(filepath.Base(cfg.Input), img, reg)
	census := s.Circuit().Census()
	log.Info("extracted circuit", "nodes", s.Circuit().Len())
	for _, class := range palette.Classes {
		if n := census[class]; n > 0 {
			log.Debug("node class", "class", class.String(), "count", n)
		}
	}
	return s, nil
}

// Run simulates cfg.Ticks ticks of the circuit in cfg.Input and writes one
// frame per tick, or only the last one when cfg.LastOnly is set. Invalid
// options and unreadable input abort before anything is written; a failed
// frame or a canceled context removes the frames this run already wrote.
func Run(ctx context.Context, cfg *Config, log *slog.Logger) (Result, error) {
	if log == nil {
		log = slog.Default()
	}
	s, err := Open(cfg, palette.Default(), log)
	if err != nil {
		return Result{}, err
	}

	w, err := codec.NewFrameWriter(ctx, cfg.OutputDir, cfg.Workers, log)
	if err != nil {
		return Result{}, err
	}

	start := time.Now()
	res := Result{Nodes: s.Circuit().Len(), Census: s.Circuit().Census()}
	for tick := 0; tick < cfg.Ticks; tick++ {
		if err := ctx.Err(); err != nil {
			w.Discard()
			return Result{}, errors.Wrapf(err, "interrupted at tick %d", tick)
		}
		s.Step()
		res.Ticks++
		log.Debug("tick", "tick", tick)

		if cfg.LastOnly && tick != cfg.Ticks-1 {
			continue
		}
		w.Write(tick, render.Scale(s.Frame(), cfg.Scale))
		res.Frames++
	}
	if err := w.Wait(); err != nil {
		return Result{}, err
	}

	log.Info("simulation complete",
		"ticks", res.Ticks,
		"frames", res.Frames,
		"output", cfg.OutputDir,
		"elapsed", time.Since(start).Round(time.Millisecond))
	return res, nil
}
