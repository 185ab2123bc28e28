package model

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Resolution is a display resolution in pixels.
type Resolution struct {
	Width  int
	Height int
}

// String renders the resolution in the WIDTHxHEIGHT form printed on stdout
// and accepted by RRES_FORCE_RES.
func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// Valid reports whether both dimensions are positive.
func (r Resolution) Valid() bool {
	return r.Width > 0 && r.Height > 0
}

// ParseResolution parses a WIDTHxHEIGHT string. The separator is a literal
// lowercase "x" and both dimensions must be positive integers.
func ParseResolution(s string) (Resolution, error) {
	w, h, ok := strings.Cut(s, "x")
	if !ok {
		return Resolution{}, errors.Errorf("%q: missing \"x\" separator", s)
	}
	width, err := strconv.Atoi(w)
	if err != nil {
		return Resolution{}, errors.Wrapf(err, "%q: bad width", s)
	}
	height, err := strconv.Atoi(h)
	if err != nil {
		return Resolution{}, errors.Wrapf(err, "%q: bad height", s)
	}
	res := Resolution{Width: width, Height: height}
	if !res.Valid() {
		return Resolution{}, errors.Errorf("%q: dimensions must be positive", s)
	}
	return res, nil
}
