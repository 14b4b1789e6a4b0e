// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shutil

import (
	"fmt"

	"github.com/ebujak/edutils/summary"
)

// IsLatitude reports whether v is in [-90, 90].
func IsLatitude(v float64) bool {
	return -90 <= v && v <= 90
}

// IsLongitude reports whether v is in [-180, 180].
func IsLongitude(v float64) bool {
	return -180 <= v && v <= 180
}

// IsLatitudeOf is like IsLatitude, but accepts any numeric value and
// returns an error wrapping summary.ErrNotNumeric for anything else.
func IsLatitudeOf(v interface{}) (bool, error) {
	x, err := coordinate("latitude", v)
	return err == nil && IsLatitude(x), err
}

// IsLongitudeOf is like IsLongitude, but accepts any numeric value.
func IsLongitudeOf(v interface{}) (bool, error) {
	x, err := coordinate("longitude", v)
	return err == nil && IsLongitude(x), err
}

func coordinate(what string, v interface{}) (float64, error) {
	xs, err := summary.Floats([]interface{}{v})
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", what, err)
	}
	return xs[0], nil
}
