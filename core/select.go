package core

import (
	"github.com/pkg/errors"

	"github.com/jc141x/rres/model"
)

// Select applies the single/multi selection policy to the extracted
// results. Multi mode returns every result in enumeration order; single
// mode returns exactly the one at the configured display index. An empty
// result set is an error, never an empty success.
func Select(cfg *model.Config, results []model.Resolution) ([]model.Resolution, error) {
	if len(results) == 0 {
		return nil, model.NewQueryError(model.NoDisplayDetected,
			errors.New("found no display connected"))
	}
	if cfg.Multi {
		return results, nil
	}
	if cfg.Display >= len(results) {
		return nil, model.NewQueryError(model.DisplayIndexOutOfRange,
			errors.Errorf("display %d requested, %d detected", cfg.Display, len(results)))
	}
	return results[cfg.Display : cfg.Display+1], nil
}
