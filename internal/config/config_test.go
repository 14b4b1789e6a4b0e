// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mapEnv(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnvDefaults(t *testing.T) {
	c, err := FromEnv(mapEnv(nil))
	require.NoError(t, err)
	assert.False(t, c.Verbose)
	assert.Equal(t, "utf-8", c.Encoding)
	assert.Equal(t, 0, c.LineLength)
	assert.Equal(t, "", c.TTSCommand)
}

func TestFromEnv(t *testing.T) {
	c, err := FromEnv(mapEnv(map[string]string{
		"EDUTIL_VERBOSE":      "true",
		"EDUTIL_TTS_COMMAND":  "espeak-ng -w {file} {text}",
		"EDUTIL_TTS_PLAY":     "aplay -q {file}",
		"EDUTIL_LINE_LENGTH":  " 87 ",
		"EDUTIL_ENCODING":     "windows-1252",
		"EDUTIL_CHART_WIDTH":  "800",
		"EDUTIL_CHART_HEIGHT": "600",
		"EDUTIL_HISTORY_FILE": "/tmp/h",
	}))
	require.NoError(t, err)
	assert.Equal(t, &Config{
		Verbose:     true,
		TTSCommand:  "espeak-ng -w {file} {text}",
		TTSPlay:     "aplay -q {file}",
		LineLength:  87,
		Encoding:    "windows-1252",
		ChartWidth:  800,
		ChartHeight: 600,
		HistoryFile: "/tmp/h",
	}, c)
}

func TestFromEnvInvalid(t *testing.T) {
	for k, v := range map[string]string{
		"EDUTIL_VERBOSE":     "sometimes",
		"EDUTIL_LINE_LENGTH": "wide",
		"EDUTIL_CHART_WIDTH": "-5",
	} {
		_, err := FromEnv(mapEnv(map[string]string{k: v}))
		assert.ErrorIs(t, err, ErrInvalid, "%s=%s", k, v)
	}
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("EDUTIL_LINE_LENGTH=42\nEDUTIL_ENCODING=latin1\n"), 0o644))

	t.Setenv("EDUTIL_ENCODING", "utf-16le")
	// Make sure t.Setenv restores the unset variable afterwards.
	t.Setenv("EDUTIL_LINE_LENGTH", "")
	os.Unsetenv("EDUTIL_LINE_LENGTH")

	c, err := Load(filepath.Join(dir, "missing.env"), path)
	require.NoError(t, err)
	assert.Equal(t, 42, c.LineLength)
	// Variables already set win over the file.
	assert.Equal(t, "utf-16le", c.Encoding)
}
