// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package summary

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMethod(t *testing.T) {
	m, err := ParseMethod("hinge")
	require.NoError(t, err)
	assert.Equal(t, Hinge, m)
	m, err = ParseMethod("interp")
	require.NoError(t, err)
	assert.Equal(t, Interp, m)
	_, err = ParseMethod("nearest")
	assert.Error(t, err)
}

func TestDescribe(t *testing.T) {
	d, err := Describe([]float64{1, 2, 3, 7, 8, 8, 11, 15, 17}, Hinge)
	require.NoError(t, err)
	assert.Equal(t, 9, d.N)
	assert.Equal(t, 72.0, d.Sum)
	assert.Equal(t, 8.0, d.Mean)
	assert.False(t, math.IsNaN(d.GeoMean))
	assert.Equal(t, Summary{1, 2.5, 8, 13, 17}, d.Summary)

	d, err = Describe([]float64{1, 2, 3, 7, 8, 8, 11, 15, 17}, Interp)
	require.NoError(t, err)
	assert.Equal(t, Summary{1, 3, 8, 11, 17}, d.Summary)

	d, err = Describe([]float64{-1, 1}, Hinge)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(d.GeoMean))

	_, err = Describe([]float64{1}, Hinge)
	assert.ErrorIs(t, err, ErrTooShort)
}

func TestDescriptionFprint(t *testing.T) {
	d, err := Describe([]float64{1, 1, 1, 1}, Hinge)
	require.NoError(t, err)
	var buf bytes.Buffer
	d.Fprint(&buf)
	out := buf.String()
	assert.Contains(t, out, "N 4  sum 4  mean 1  gmean 1")
	assert.Contains(t, out, "  median 1\n")
	assert.Contains(t, out, "     max 1\n")
}
