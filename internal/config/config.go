package config

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jc141x/rres/model"
)

// BindFlags registers the CLI flag surface on the root command.
func BindFlags(cmd *cobra.Command) {
	defaults := model.DefaultConfig()

	cmd.Flags().StringP("card", "c", defaults.Card, "GPU to read (a file existing in /dev/dri, e.g. card0)")
	cmd.Flags().BoolP("multi", "m", defaults.Multi, "read all monitors instead of only the first detected one")
	cmd.Flags().CountP("verbose", "v", "raise verbosity, can be repeated (e.g. -vv)")
	cmd.Flags().CountP("quiet", "q", "lower verbosity, opposite of -v")
}

// Resolve builds the immutable query configuration with proper priority:
// CLI flags over environment (RRES_*) over defaults. This is the only
// place the environment is read; the core receives a finished Config.
func Resolve(cmd *cobra.Command) (*model.Config, error) {
	v := viper.New()

	v.SetEnvPrefix("RRES")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	for _, name := range []string{"card", "multi"} {
		if err := v.BindPFlag(name, cmd.Flags().Lookup(name)); err != nil {
			return nil, errors.Wrapf(err, "binding flag %s", name)
		}
	}

	cfg := model.DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	// RRES_DISPLAY is read as a string so garbage fails loudly instead of
	// silently becoming zero.
	display, err := parseDisplayIndex(v.GetString("display"))
	if err != nil {
		return nil, err
	}
	cfg.Display = display

	verbose, _ := cmd.Flags().GetCount("verbose")
	quiet, _ := cmd.Flags().GetCount("quiet")
	cfg.Verbosity = verbose - quiet

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	defaults := model.DefaultConfig()
	v.SetDefault("card", defaults.Card)
	v.SetDefault("multi", defaults.Multi)
	v.SetDefault("display", strconv.Itoa(defaults.Display))
	v.SetDefault("force_res", defaults.ForceRes)
}

// parseDisplayIndex validates the RRES_DISPLAY override: a non-negative
// integer. Anything else is a malformed override, rejected before any
// device is touched.
func parseDisplayIndex(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, model.NewQueryError(model.InvalidOverrideFormat,
			errors.Wrapf(err, "RRES_DISPLAY=%q", raw))
	}
	if n < 0 {
		return 0, model.NewQueryError(model.InvalidOverrideFormat,
			errors.Errorf("RRES_DISPLAY=%q: index must not be negative", raw))
	}
	return n, nil
}
