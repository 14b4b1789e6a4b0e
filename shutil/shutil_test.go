// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shutil

import (
	"bytes"
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestHeadTail(t *testing.T) {
	path := writeFile(t, t.TempDir(), "lines.txt", "one\ntwo  \nthree\nfour\nfive")

	for _, test := range []struct {
		tail bool
		n    int
		want string
	}{
		{false, 2, "one\ntwo\n"},
		{false, 10, "one\ntwo\nthree\nfour\nfive\n"},
		{true, 2, "four\nfive\n"},
		{true, 4, "two\nthree\nfour\nfive\n"},
		{true, 10, "one\ntwo\nthree\nfour\nfive\n"},
	} {
		var buf bytes.Buffer
		var err error
		if test.tail {
			err = Tail(&buf, path, test.n, TextOptions{})
		} else {
			err = Head(&buf, path, test.n, TextOptions{})
		}
		require.NoError(t, err)
		assert.Equal(t, test.want, buf.String(), "tail=%v n=%d", test.tail, test.n)
	}
}

func TestHeadErrors(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, Head(&buf, "  ", 10, TextOptions{}), ErrBlankPath)
	assert.ErrorIs(t, Tail(&buf, "", 10, TextOptions{}), ErrBlankPath)
	assert.Error(t, Head(&buf, "x", 0, TextOptions{}))
	assert.Error(t, Tail(&buf, "x", -1, TextOptions{}))

	missing := filepath.Join(t.TempDir(), "missing.txt")
	err := Head(&buf, missing, 10, TextOptions{})
	assert.ErrorIs(t, err, fs.ErrNotExist)
	var pe *fs.PathError
	assert.ErrorAs(t, err, &pe)
}

func TestHeadEncoding(t *testing.T) {
	path := writeFile(t, t.TempDir(), "latin.txt", "caf\xe9\n")
	var buf bytes.Buffer
	require.NoError(t, Head(&buf, path, 1, TextOptions{Encoding: "windows-1252"}))
	assert.Equal(t, "café\n", buf.String())

	err := Head(&buf, path, 1, TextOptions{Encoding: "no-such-encoding"})
	assert.Error(t, err)
}

func TestWordCount(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "hello world\nfoo\nbar baz qux")
	b := writeFile(t, dir, "b.txt", "café au lait\n\n")

	c, err := WordCount(a, TextOptions{})
	require.NoError(t, err)
	assert.Equal(t, Counts{Path: a, Lines: 3, Words: 6, Chars: 27}, c)

	cs, err := WordCountFiles(context.Background(), []string{a, b}, TextOptions{})
	require.NoError(t, err)
	require.Len(t, cs, 2)
	assert.Equal(t, Counts{Path: b, Lines: 2, Words: 3, Chars: 14}, cs[1])
	assert.Equal(t, Counts{Path: "total", Lines: 5, Words: 9, Chars: 41}, Total(cs))

	_, err = WordCountFiles(context.Background(), []string{a, filepath.Join(dir, "nope")}, TextOptions{})
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestTree(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a/b.txt", "")
	writeFile(t, root, "a/d/e.txt", "")
	writeFile(t, root, "c.txt", "")
	writeFile(t, root, ".hidden", "")

	var buf bytes.Buffer
	dirs, files, err := Tree(&buf, root, TreeOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, dirs)
	assert.Equal(t, 3, files)
	want := root + "\n" +
		"|-- a\n" +
		"    |-- b.txt\n" +
		"    `-- d\n" +
		"        `-- e.txt\n" +
		"`-- c.txt\n" +
		"\n2 directories, 3 files\n"
	assert.Equal(t, want, buf.String())

	buf.Reset()
	_, files, err = Tree(&buf, root, TreeOptions{ShowHidden: true})
	require.NoError(t, err)
	assert.Equal(t, 4, files)
	assert.Contains(t, buf.String(), "|-- .hidden\n")

	_, _, err = Tree(&buf, filepath.Join(root, "c.txt"), TreeOptions{})
	assert.ErrorIs(t, err, ErrNotDirectory)
	_, _, err = Tree(&buf, filepath.Join(root, "nope"), TreeOptions{})
	assert.ErrorIs(t, err, ErrNotDirectory)
}

func TestGrep(t *testing.T) {
	path := writeFile(t, t.TempDir(), "animals.txt", "Giraffe\nlion\ngiraffe calf\n")

	var buf bytes.Buffer
	n, err := Grep(&buf, "giraffe", path, GrepOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "giraffe calf\n", buf.String())

	buf.Reset()
	n, err = Grep(&buf, "giraffe", path, GrepOptions{LineNumbers: true, IgnoreCase: true})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "1: Giraffe\n3: giraffe calf\n", buf.String())

	_, err = Grep(&buf, " ", path, GrepOptions{})
	assert.Error(t, err)
	_, err = Grep(&buf, "(", path, GrepOptions{})
	assert.Error(t, err)
	_, err = Grep(&buf, "x", "", GrepOptions{})
	assert.ErrorIs(t, err, ErrBlankPath)
}

func TestLongList(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "data.csv", "12345")
	require.NoError(t, os.Chmod(file, 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.Chmod(filepath.Join(dir, "sub"), 0o755))

	ref, err := os.Stat(file)
	require.NoError(t, err)
	mtime := ref.ModTime()

	var buf bytes.Buffer
	require.NoError(t, LongList(&buf, dir, ListOptions{Now: mtime}))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "-rw-r--r--"), lines[0])
	assert.Contains(t, lines[0], "   12345 "+mtime.Format("Jan _2 15:04")+" data.csv")
	assert.True(t, strings.HasPrefix(lines[1], "drwxr-xr-x"), lines[1])
	assert.True(t, strings.HasSuffix(lines[1], " sub/"), lines[1])

	// Old files show the year instead of the time.
	buf.Reset()
	later := mtime.AddDate(2, 0, 0)
	require.NoError(t, LongList(&buf, file, ListOptions{Now: later}))
	assert.Contains(t, buf.String(), mtime.Format("Jan _2  2006")+" "+file+"\n")

	buf.Reset()
	require.NoError(t, LongList(&buf, dir, ListOptions{Format: "HTML", Now: mtime}))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<pre style='font-family: monospace'>"), out)
	assert.Contains(t, out, `<span style="color:blue">sub</span>/<br>`)
	assert.Contains(t, out, " data.csv<br>")

	assert.Error(t, LongList(&buf, dir, ListOptions{Format: "jupyter"}))
	assert.ErrorIs(t, LongList(&buf, filepath.Join(dir, "nope"), ListOptions{}), fs.ErrNotExist)
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "-rwxr-x--- ", modeString(0o750, false))
	assert.Equal(t, "drwxrwxrwx@", modeString(fs.ModeDir|0o777, true))
}

func TestColumns(t *testing.T) {
	got, err := Columns([]string{"dog", "cat", "giraffe"}, 20, 2)
	require.NoError(t, err)
	assert.Equal(t, "dog      cat      giraffe  \n", got)

	got, err = Columns([]string{"ab", "c"}, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, "ab\nc \n", got)

	got, err = Columns(nil, 70, 5)
	require.NoError(t, err)
	assert.Equal(t, "", got)

	_, err = Columns([]string{"x"}, 70, -1)
	assert.Error(t, err)
}

func TestGeo(t *testing.T) {
	assert.True(t, IsLatitude(45.678))
	assert.True(t, IsLatitude(-90))
	assert.True(t, IsLatitude(90))
	assert.False(t, IsLatitude(91))
	assert.True(t, IsLongitude(-180))
	assert.True(t, IsLongitude(180))
	assert.False(t, IsLongitude(181))

	ok, err := IsLatitudeOf(int16(-45))
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = IsLongitudeOf(uint(200))
	require.NoError(t, err)
	assert.False(t, ok)
	_, err = IsLatitudeOf("invalid")
	assert.Error(t, err)
	_, err = IsLongitudeOf(nil)
	assert.Error(t, err)
}

func TestSpeak(t *testing.T) {
	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("no /bin/sh")
	}
	dir := t.TempDir()
	out := filepath.Join(dir, "played.txt")
	o := SpeakOptions{
		Command: `/bin/sh -c 'printf %s "$0" > "$1"' {text} {file}`,
		Play:    "cp {file} " + out,
		Dir:     dir,
	}
	require.NoError(t, Speak(context.Background(), "dobry dzień", o))
	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "dobry dzień", string(got))

	// The temporary audio file is cleaned up.
	ents, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, ents, 1)

	assert.NoError(t, Speak(context.Background(), "  ", SpeakOptions{Command: "false"}))
	assert.Error(t, Speak(context.Background(), "hi", SpeakOptions{Command: "false"}))
	assert.Error(t, Speak(context.Background(), "hi", SpeakOptions{Command: "say {file}"}))
	assert.Error(t, Speak(context.Background(), "hi", SpeakOptions{Command: "'unterminated"}))
}

func TestPrettyJSON(t *testing.T) {
	got, err := PrettyJSON(map[string]interface{}{"b": 1, "a": []int{1, 2}})
	require.NoError(t, err)
	assert.Equal(t, "{\n    \"a\": [\n        1,\n        2\n    ],\n    \"b\": 1\n}", got)

	_, err = PrettyJSON(complex(1, 2))
	assert.Error(t, err)
	_, err = PrettyJSON(make(chan int))
	assert.Error(t, err)
}

func TestParseMeminfo(t *testing.T) {
	const in = `MemTotal:       16384000 kB
MemFree:         1024000 kB
MemAvailable:    8192000 kB
CommitLimit:    10240000 kB
Committed_AS:    4096000 kB
HugePages_Total:       0
`
	m, err := parseMeminfo(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, MemInfo{
		TotalPhysical:     16000,
		AvailablePhysical: 8000,
		VirtualMax:        10000,
		VirtualAvailable:  6000,
		VirtualInUse:      4000,
	}, m)

	var buf bytes.Buffer
	m.Fprint(&buf)
	assert.Contains(t, buf.String(), "      total_physical_memory  16000\n")

	_, err = parseMeminfo(strings.NewReader("Bogus: 1 kB\n"))
	assert.Error(t, err)
}

func TestHideOutput(t *testing.T) {
	saved := os.Stdout
	restore := HideOutput()
	assert.NotEqual(t, saved, os.Stdout)
	restore()
	assert.Equal(t, saved, os.Stdout)

	Nop()()
	assert.Equal(t, saved, os.Stdout)
}
