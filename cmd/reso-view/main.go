//go:build ebiten

package main

import (
	"errors"
	"log/slog"
	"os"

	"reso/internal/app"
	"reso/internal/palette"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/pflag"
)

func main() {
	cfg := app.NewConfig()
	cfg.Scale = 8
	fs := pflag.CommandLine
	cfg.Bind(fs)
	cfg.BindPreview(fs)
	configPath := fs.String("config", "", "YAML file with run options")
	pflag.Parse()

	if *configPath != "" {
		if err := cfg.LoadFile(*configPath, fs); err != nil {
			fatal(err)
		}
	}
	log, err := app.NewLogger(os.Stderr, cfg)
	if err != nil {
		fatal(err)
	}

	sess, err := app.Open(cfg, palette.Default(), log)
	if err != nil {
		fatal(err)
	}

	game := app.New(sess, cfg.Scale, cfg.TPS, cfg.Ticks)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("reso: " + sess.Name())
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		fatal(err)
	}
}

func fatal(err error) {
	slog.Error("reso-view failed", "error", err)
	os.Exit(1)
}
