package core

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/jc141x/rres/model"
)

// Query performs one read-only resolution query: resolve the device,
// enumerate its connectors, read the driven mode of each eligible one and
// apply the selection policy. A forced-resolution override short-circuits
// before any device is touched. The returned slice is never empty on
// success.
func Query(cfg *model.Config, sys System, log *logrus.Logger) ([]model.Resolution, error) {
	if cfg.ForceRes != "" {
		res, err := model.ParseResolution(cfg.ForceRes)
		if err != nil {
			return nil, model.NewQueryError(model.InvalidOverrideFormat,
				errors.Wrap(err, "RRES_FORCE_RES"))
		}
		log.Debugf("forced resolution %s, skipping hardware query", res)
		return []model.Resolution{res}, nil
	}

	path, err := sys.Locate(cfg.Card)
	if err != nil {
		return nil, err
	}
	log.Debugf("querying %s", path)

	dev, err := sys.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := dev.Close(); cerr != nil {
			log.Warnf("closing %s: %v", path, cerr)
		}
	}()

	log.Infof("found GPU: %s", dev.Driver())

	connectors, err := dev.Connectors()
	if err != nil {
		return nil, model.NewQueryError(model.DeviceOpenFailed,
			errors.Wrapf(err, "enumerating connectors on %s", path))
	}

	results := extract(dev, connectors, log)
	return Select(cfg, results)
}

// extract reads the driven resolution of every eligible connector,
// preserving enumeration order. A connector whose mode cannot be read is
// dropped with a warning so one bad output cannot abort the whole query.
func extract(dev Device, connectors []Connector, log *logrus.Logger) []model.Resolution {
	var results []model.Resolution
	for _, conn := range connectors {
		if !conn.Eligible() {
			log.Debugf("connector %d: %s, skipping", conn.ID, conn.State)
			continue
		}
		res, err := dev.ActiveMode(conn.ID)
		if err != nil {
			log.Warnf("connector %d: %v", conn.ID,
				model.NewQueryError(model.ModeUnavailable, err))
			continue
		}
		if !res.Valid() {
			log.Warnf("connector %d: %v", conn.ID,
				model.NewQueryError(model.ModeUnavailable,
					errors.Errorf("malformed mode %s", res)))
			continue
		}
		log.Infof("found display: connector %d, %s", conn.ID, res)
		results = append(results, res)
	}
	return results
}
