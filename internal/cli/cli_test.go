package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInitCLI tests CLI initialization
func TestInitCLI(t *testing.T) {
	cmd := InitCLI()

	require.NotNil(t, cmd)
	assert.Equal(t, "rres", cmd.Use)
	assert.NotNil(t, cmd.RunE)
}

// TestCLIFlags tests that the flag surface is registered
func TestCLIFlags(t *testing.T) {
	cmd := InitCLI()
	flags := cmd.Flags()

	for _, name := range []string{"card", "multi", "verbose", "quiet"} {
		assert.NotNil(t, flags.Lookup(name), "%s flag should exist", name)
	}
	assert.Equal(t, "c", flags.Lookup("card").Shorthand)
	assert.Equal(t, "m", flags.Lookup("multi").Shorthand)
}

// TestForcedOverrideEndToEnd runs the command with RRES_FORCE_RES set;
// the override path needs no hardware so the whole pipe is exercised.
func TestForcedOverrideEndToEnd(t *testing.T) {
	t.Setenv("RRES_FORCE_RES", "1920x1080")

	cmd := InitCLI()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "1920x1080\n", out.String())
}

// TestMalformedOverrideEndToEnd verifies the distinguishable failure kind
// reaches the command boundary.
func TestMalformedOverrideEndToEnd(t *testing.T) {
	t.Setenv("RRES_FORCE_RES", "1920X1080")

	cmd := InitCLI()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid override format")
}

// TestRejectsPositionalArgs ensures stray arguments fail instead of being
// silently ignored.
func TestRejectsPositionalArgs(t *testing.T) {
	cmd := InitCLI()
	cmd.SetArgs([]string{"card0"})
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))

	assert.Error(t, cmd.Execute())
}
