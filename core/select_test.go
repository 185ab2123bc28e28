package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jc141x/rres/model"
)

func TestSelectSingleDefaultsToFirst(t *testing.T) {
	results := []model.Resolution{
		{Width: 1920, Height: 1080},
		{Width: 2560, Height: 1440},
	}

	selected, err := Select(model.DefaultConfig(), results)
	require.NoError(t, err)
	assert.Equal(t, results[:1], selected)
}

func TestSelectMultiKeepsOrder(t *testing.T) {
	results := []model.Resolution{
		{Width: 2560, Height: 1440},
		{Width: 1920, Height: 1080},
	}
	cfg := model.DefaultConfig()
	cfg.Multi = true

	selected, err := Select(cfg, results)
	require.NoError(t, err)
	assert.Equal(t, results, selected)
}

func TestSelectEmptyIsNoDisplayDetected(t *testing.T) {
	for _, multi := range []bool{false, true} {
		cfg := model.DefaultConfig()
		cfg.Multi = multi

		_, err := Select(cfg, nil)
		require.Error(t, err)
		kind, ok := model.KindOf(err)
		require.True(t, ok)
		assert.Equal(t, model.NoDisplayDetected, kind)
	}
}

func TestSelectIndexPastEndIsOutOfRange(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Display = 2

	_, err := Select(cfg, []model.Resolution{{Width: 1920, Height: 1080}})
	require.Error(t, err)
	kind, ok := model.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, model.DisplayIndexOutOfRange, kind)
}

func TestSelectEmptyBeatsOutOfRange(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Display = 3

	_, err := Select(cfg, nil)
	kind, ok := model.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, model.NoDisplayDetected, kind)
}
