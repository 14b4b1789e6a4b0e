// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inspect

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shapesSrc = `package shapes

const Sides = 4

var Default = Square{1}

var scratch int

type Square struct{ Side float64 }

func (s Square) Area() float64 { return s.Side * s.Side }

func (s *Square) Scale(by float64) { s.Side *= by }

func (s Square) grow() {}

type Shape interface{ Area() float64 }

func Sum(label string, shapes ...Shape) (total float64, err error) { return 0, nil }

func New(side float64) *Square { return &Square{side} }

func helper() {}
`

// shapesModule writes a small self-contained module and returns its
// directory.
func shapesModule(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go command not available")
	}
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module example.com/shapes\n\ngo 1.21\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shapes.go"), []byte(shapesSrc), 0o644))
	return dir
}

func TestPackage(t *testing.T) {
	dir := shapesModule(t)
	ctx := context.Background()

	info, err := Package(ctx, ".", Options{Dir: dir})
	require.NoError(t, err)
	assert.Equal(t, "shapes", info.Name)
	assert.Equal(t, "example.com/shapes", info.Path)
	assert.Equal(t, []string{"shapes.go"}, info.Files)
	assert.Equal(t, []string{"Sides"}, info.Consts)
	assert.Equal(t, []string{"Default"}, info.Vars)
	assert.Equal(t, []string{"New", "Sum"}, info.Funcs)
	assert.Equal(t, []Type{
		{Name: "Shape", Kind: "interface", Methods: []string{"Area"}},
		{Name: "Square", Kind: "struct", Methods: []string{"Area", "Scale"}},
	}, info.Types)

	var buf bytes.Buffer
	info.Fprint(&buf)
	assert.Contains(t, buf.String(), "package shapes // import \"example.com/shapes\"\n")
	assert.Contains(t, buf.String(), "\ntypes:\n    Shape (interface)\n        Area\n")

	all, err := Package(ctx, ".", Options{Dir: dir, All: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"Default", "scratch"}, all.Vars)
	assert.Equal(t, []string{"New", "Sum", "helper"}, all.Funcs)
	assert.Equal(t, []string{"Area", "Scale", "grow"}, all.Types[1].Methods)
}

func TestSignature(t *testing.T) {
	dir := shapesModule(t)
	ctx := context.Background()

	sig, err := Signature(ctx, ".", "Sum", Options{Dir: dir})
	require.NoError(t, err)
	assert.Equal(t, []Param{{"label", "string"}, {"shapes", "...Shape"}}, sig.Params)
	assert.Equal(t, []Param{{"total", "float64"}, {"err", "error"}}, sig.Results)
	assert.Equal(t, "Sum(label string, shapes ...Shape) (total float64, err error)", sig.String())

	var buf bytes.Buffer
	sig.Fprint(&buf)
	assert.Equal(t, "label   string\nshapes  ...Shape\nreturn  (total float64, err error)\n", buf.String())

	sig, err = Signature(ctx, ".", "Square.Scale", Options{Dir: dir})
	require.NoError(t, err)
	assert.Equal(t, "Square.Scale(by float64)", sig.String())

	sig, err = Signature(ctx, ".", "New", Options{Dir: dir})
	require.NoError(t, err)
	assert.Equal(t, "New(side float64) *Square", sig.String())

	_, err = Signature(ctx, ".", "Missing", Options{Dir: dir})
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = Signature(ctx, ".", "Square.Missing", Options{Dir: dir})
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = Signature(ctx, ".", "Sides", Options{Dir: dir})
	assert.Error(t, err)
}

func TestSigFprintNoParams(t *testing.T) {
	var buf bytes.Buffer
	(&Sig{Name: "F"}).Fprint(&buf)
	assert.Equal(t, "No parameters or results.\n", buf.String())
}
