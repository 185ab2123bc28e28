package drm

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/jc141x/rres/model"
)

const (
	defaultDevRoot   = "/dev/dri"
	defaultSysfsRoot = "/sys/class/drm"
)

// Locator resolves which card node to open. The roots are fields so tests
// can point it at a scratch tree.
type Locator struct {
	DevRoot   string
	SysfsRoot string
}

// NewLocator returns a locator for the kernel's standard paths.
func NewLocator() Locator {
	return Locator{DevRoot: defaultDevRoot, SysfsRoot: defaultSysfsRoot}
}

// Locate returns the device node for the named card, or for the first card
// (in card-index order) with a connected, enabled connector when card is
// empty. It probes sysfs only; the device node itself is never opened here.
func (l Locator) Locate(card string) (string, error) {
	if card != "" {
		if !strings.HasPrefix(card, "card") {
			return "", model.NewQueryError(model.DeviceNotFound,
				errors.Errorf("invalid card (%s)", card))
		}
		path := filepath.Join(l.DevRoot, card)
		if _, err := os.Stat(path); err != nil {
			return "", model.NewQueryError(model.DeviceNotFound,
				errors.Wrapf(err, "invalid card (%s)", card))
		}
		return path, nil
	}

	cards, err := l.cardNames()
	if err != nil {
		return "", model.NewQueryError(model.NoUsableDevice,
			errors.Wrapf(err, "scanning %s", l.SysfsRoot))
	}
	for _, name := range cards {
		if l.hasActiveConnector(name) {
			return filepath.Join(l.DevRoot, name), nil
		}
	}
	return "", model.NewQueryError(model.NoUsableDevice,
		errors.New("no card with an active connector"))
}

// cardNames lists card0, card1... in index order, skipping connector
// entries like card0-HDMI-A-1 and render nodes.
func (l Locator) cardNames() ([]string, error) {
	entries, err := os.ReadDir(l.SysfsRoot)
	if err != nil {
		return nil, err
	}
	indexed := map[string]int{}
	var names []string
	for _, entry := range entries {
		name := entry.Name()
		idx, ok := cardIndex(name)
		if !ok {
			continue
		}
		indexed[name] = idx
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return indexed[names[i]] < indexed[names[j]]
	})
	return names, nil
}

// cardIndex parses the N of a bare "cardN" name.
func cardIndex(name string) (int, bool) {
	suffix, ok := strings.CutPrefix(name, "card")
	if !ok || suffix == "" {
		return 0, false
	}
	idx, err := strconv.Atoi(suffix)
	if err != nil || idx < 0 {
		return 0, false
	}
	return idx, true
}

// hasActiveConnector reports whether any of the card's sysfs connector
// entries is both connected and enabled.
func (l Locator) hasActiveConnector(card string) bool {
	entries, err := os.ReadDir(l.SysfsRoot)
	if err != nil {
		return false
	}
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, card+"-") {
			continue
		}
		status, err := os.ReadFile(filepath.Join(l.SysfsRoot, name, "status"))
		if err != nil || strings.TrimSpace(string(status)) != "connected" {
			continue
		}
		enabled, err := os.ReadFile(filepath.Join(l.SysfsRoot, name, "enabled"))
		if err == nil && strings.TrimSpace(string(enabled)) == "enabled" {
			return true
		}
	}
	return false
}
