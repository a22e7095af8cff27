// Command reso simulates the logic circuit drawn in an image and writes one
// frame per simulated tick.
//
// Usage:
//
//	reso -f circuit.png -n 20 -o ./output/
//	reso -f circuit.png -n 200 --last --scale 8
//	reso --config run.yaml -n 50
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"reso/internal/app"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		slog.Error("reso failed", "error", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := app.NewConfig()
	var configPath string

	cmd := &cobra.Command{
		Use:   "reso",
		Short: "Simulate a logic circuit drawn in an image",
		Long: `reso reads an image whose exact palette colors encode wires, gates and
I/O terminals, simulates the circuit for a fixed number of ticks and writes a
PNG frame per tick (output_<tick>.png) to the output directory.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if configPath != "" {
				if err := cfg.LoadFile(configPath, cmd.Flags()); err != nil {
					return err
				}
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			log, err := app.NewLogger(cmd.ErrOrStderr(), cfg)
			if err != nil {
				return err
			}
			slog.SetDefault(log)
			_, err = app.Run(cmd.Context(), cfg, log)
			return err
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.Wrapf(app.ErrInvalidArgument, "%v", err)
	})

	fs := cmd.Flags()
	cfg.Bind(fs)
	fs.StringVar(&configPath, "config", "", "YAML file with run options")
	fs.SortFlags = false
	cmd.Version = version
	cmd.SetVersionTemplate(fmt.Sprintf("reso %s\n", version))
	return cmd
}

const version = "0.1.0"
