package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jc141x/rres/core"
	"github.com/jc141x/rres/internal/config"
	"github.com/jc141x/rres/internal/drm"
	"github.com/jc141x/rres/internal/logger"
	"github.com/jc141x/rres/model"
)

const usageExample = `  # print the first detected monitor's resolution
  rres

  # launch a Wine virtual desktop at the host's native resolution
  wine "explorer /desktop=Game,$(rres)" game.exe

Environment variables:

  RRES_DISPLAY=<index>   select display in single mode (starting at 0)
  RRES_FORCE_RES=<W>x<H> report this resolution without touching the GPU`

// InitCLI builds the root command.
func InitCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "rres",
		Short:         "rres reports the native resolution of connected displays",
		Example:       usageExample,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Resolve(cmd)
			if err != nil {
				return err
			}
			return run(cmd, cfg)
		},
	}

	config.BindFlags(rootCmd)

	return rootCmd
}

// run performs the single query and prints one WIDTHxHEIGHT per line.
// Diagnostics go to stderr via the logger; stdout carries results only.
func run(cmd *cobra.Command, cfg *model.Config) error {
	log := logger.New(cfg.Verbosity)

	results, err := core.Query(cfg, drm.NewSystem(log), log)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, res := range results {
		fmt.Fprintln(out, res)
	}
	return nil
}
