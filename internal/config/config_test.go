package config

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jc141x/rres/model"
)

func testCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "rres", RunE: func(*cobra.Command, []string) error { return nil }}
	BindFlags(cmd)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return cmd
}

func TestResolveDefaults(t *testing.T) {
	cmd := testCommand(t)

	cfg, err := Resolve(cmd)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultConfig(), cfg)
}

func TestResolveFlags(t *testing.T) {
	cmd := testCommand(t, "--card", "card1", "--multi", "-vv", "-q")

	cfg, err := Resolve(cmd)
	require.NoError(t, err)
	assert.Equal(t, "card1", cfg.Card)
	assert.True(t, cfg.Multi)
	assert.Equal(t, 1, cfg.Verbosity)
}

func TestResolveEnvOverrides(t *testing.T) {
	t.Setenv("RRES_DISPLAY", "2")
	t.Setenv("RRES_FORCE_RES", "1280x720")

	cfg, err := Resolve(testCommand(t))
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Display)
	assert.Equal(t, "1280x720", cfg.ForceRes)
}

func TestResolveRejectsMalformedDisplayIndex(t *testing.T) {
	for _, bad := range []string{"abc", "-1", "1.5", "0x1"} {
		t.Setenv("RRES_DISPLAY", bad)

		_, err := Resolve(testCommand(t))
		require.Error(t, err, "RRES_DISPLAY=%q", bad)
		kind, ok := model.KindOf(err)
		require.True(t, ok)
		assert.Equal(t, model.InvalidOverrideFormat, kind)
	}
}

func TestResolveForceResIsNotValidatedAtBoundary(t *testing.T) {
	// force_res syntax is the override layer's contract; the boundary only
	// transports the raw value.
	t.Setenv("RRES_FORCE_RES", "not-a-resolution")

	cfg, err := Resolve(testCommand(t))
	require.NoError(t, err)
	assert.Equal(t, "not-a-resolution", cfg.ForceRes)
}
