// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ebujak/edutils/summary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(io.Discard)
	err := root.Execute()
	return out.String(), err
}

func TestSummaryCmd(t *testing.T) {
	for _, test := range []struct {
		stdin string
		args  []string
		want  string
	}{
		{"", []string{"summary", "1", "2", "3", "7", "8", "8", "11", "15", "17"}, "(1, 2.5, 8, 13, 17)\n"},
		{"", []string{"summary", "-m", "interp", "1", "2", "3", "4"}, "(1, 1.75, 2.5, 3.25, 4)\n"},
		{"5, 9\n", []string{"summary"}, "(5, 5, 7, 9, 9)\n"},
		{"# comment\n4 3\n2 1\n", []string{"summary", "-f", "-"}, "(1, 1.5, 2.5, 3.5, 4)\n"},
	} {
		got, err := run(t, test.stdin, test.args...)
		require.NoError(t, err, "%v", test.args)
		assert.Equal(t, test.want, got, "%v", test.args)
	}
}

func TestSummaryCmdColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ages.csv")
	require.NoError(t, os.WriteFile(path, []byte("name,age\nann,5\nbob,\ncy,9\n"), 0o644))
	got, err := run(t, "", "summary", "-f", path, "-c", "age")
	require.NoError(t, err)
	assert.Equal(t, "(5, 5, 7, 9, 9)\n", got)

	got, err = run(t, "", "summary", "-d", "-f", path, "-c", "age")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "N 2  sum 14  mean 7"), got)
}

func TestSummaryCmdErrors(t *testing.T) {
	_, err := run(t, "", "summary", "5")
	assert.ErrorIs(t, err, summary.ErrTooShort)
	_, err = run(t, "", "summary", "1", "two")
	assert.ErrorIs(t, err, summary.ErrNotNumeric)
	_, err = run(t, "", "summary", "-m", "median", "1", "2")
	assert.Error(t, err)
	_, err = run(t, "", "summary", "-d", "1")
	assert.ErrorIs(t, err, summary.ErrTooShort)
}

func TestChartCmds(t *testing.T) {
	got, err := run(t, "apple: 3\nbanana: 5\n", "bar", "--annotate", "count")
	require.NoError(t, err)
	assert.Contains(t, got, "<svg")
	assert.Contains(t, got, "banana")

	got, err = run(t, "apple: 3\nbanana: 5\n", "pie", "--label", "count_and_percentage")
	require.NoError(t, err)
	assert.Contains(t, got, "(62.5%)")

	got, err = run(t, "1 2 2 3 3 3 4", "hist", "--bins", "4")
	require.NoError(t, err)
	assert.Contains(t, got, "<svg")

	out := filepath.Join(t.TempDir(), "bar.png")
	_, err = run(t, "a: 1\n", "bar", "-o", out)
	require.NoError(t, err)
	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("\x89PNG")))
}

func TestGrepCmdStatus(t *testing.T) {
	path := filepath.Join(t.TempDir(), "animals.txt")
	require.NoError(t, os.WriteFile(path, []byte("lion\ntiger\n"), 0o644))

	got, err := run(t, "", "grep", "-n", "ti", path)
	require.NoError(t, err)
	assert.Equal(t, "2: tiger\n", got)

	_, err = run(t, "", "grep", "bear", path)
	assert.Equal(t, exitError{1}, err)
	_, err = run(t, "", "grep", "bear", path+".missing")
	assert.Equal(t, exitError{2}, err)
}

func TestGeoCmd(t *testing.T) {
	got, err := run(t, "", "geo", "45.5", "-181")
	assert.Equal(t, exitError{1}, err)
	assert.Equal(t, "latitude 45.5: valid\nlongitude -181: out of range\n", got)

	_, err = run(t, "", "geo", "north")
	assert.ErrorIs(t, err, summary.ErrNotNumeric)
}

func TestPPCmd(t *testing.T) {
	got, err := run(t, `{"b": 1, "a": "x"}`, "pp")
	require.NoError(t, err)
	assert.Equal(t, "{\n    \"a\": \"x\",\n    \"b\": 1\n}\n", got)
}

func TestColumnsCmd(t *testing.T) {
	got, err := run(t, "", "columns", "-w", "20", "-g", "2", "dog", "cat", "giraffe")
	require.NoError(t, err)
	assert.Equal(t, "dog      cat      giraffe  \n", got)
}

func TestVersionsCmd(t *testing.T) {
	got, err := run(t, "", "versions")
	require.NoError(t, err)
	for _, name := range []string{"edutil ", "edutil summary ", "edutil shell "} {
		assert.Contains(t, got, name)
	}
}

type fakeLines struct {
	lines []string
}

func (f *fakeLines) Readline() (string, error) {
	if len(f.lines) == 0 {
		return "", io.EOF
	}
	l := f.lines[0]
	f.lines = f.lines[1:]
	return l, nil
}

func TestShell(t *testing.T) {
	var out, errOut bytes.Buffer
	rl := &fakeLines{[]string{
		"",
		"# a comment",
		"summary 5 9",
		"summary 'not a number' 1",
		"shell",
		"summary -m interp 1 2 3 4",
		"exit",
		"summary 1 2",
	}}
	require.NoError(t, runShell(rl, &out, &errOut))
	assert.Equal(t, "(5, 5, 7, 9, 9)\n(1, 1.75, 2.5, 3.25, 4)\n", out.String())
	assert.Contains(t, errOut.String(), "integers or real numbers")
	assert.Contains(t, errOut.String(), "already in the shell")
}
