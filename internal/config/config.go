// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads edutil settings from EDUTIL_* environment
// variables, optionally seeded from .env files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Prefix is the prefix of every environment variable read by Load.
const Prefix = "EDUTIL_"

// ErrInvalid is wrapped by errors for malformed settings.
var ErrInvalid = errors.New("invalid configuration")

// Config holds settings that flags may override.
type Config struct {
	Verbose bool

	// TTSCommand and TTSPlay are speech synthesis and playback
	// command templates for the speak command.
	TTSCommand string
	TTSPlay    string

	// LineLength is the output width for columns. 0 means the
	// terminal width.
	LineLength int

	// Encoding is the text encoding of input files.
	Encoding string

	ChartWidth, ChartHeight int

	// HistoryFile is where the interactive shell keeps its history.
	HistoryFile string
}

// Load reads any of the given .env files that exist into the
// environment, without overriding variables that are already set,
// then builds a Config from the environment.
func Load(envFiles ...string) (*Config, error) {
	var present []string
	for _, f := range envFiles {
		if _, err := os.Stat(f); err == nil {
			present = append(present, f)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	if len(present) > 0 {
		if err := godotenv.Load(present...); err != nil {
			return nil, fmt.Errorf("loading %s: %w", strings.Join(present, ", "), err)
		}
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from the variables returned by getenv.
func FromEnv(getenv func(string) string) (*Config, error) {
	e := env{getenv: getenv}
	c := &Config{
		Verbose:     e.bool("VERBOSE", false),
		TTSCommand:  e.string("TTS_COMMAND", ""),
		TTSPlay:     e.string("TTS_PLAY", ""),
		LineLength:  e.int("LINE_LENGTH", 0),
		Encoding:    e.string("ENCODING", "utf-8"),
		ChartWidth:  e.int("CHART_WIDTH", 0),
		ChartHeight: e.int("CHART_HEIGHT", 0),
		HistoryFile: e.string("HISTORY_FILE", defaultHistoryFile()),
	}
	if e.err != nil {
		return nil, e.err
	}
	if c.LineLength < 0 || c.ChartWidth < 0 || c.ChartHeight < 0 {
		return nil, fmt.Errorf("%w: sizes must not be negative", ErrInvalid)
	}
	return c, nil
}

func defaultHistoryFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".edutil_history")
}

// env reads prefixed variables and records the first parse error.
type env struct {
	getenv func(string) string
	err    error
}

func (e *env) lookup(key string) (string, bool) {
	v := strings.TrimSpace(e.getenv(Prefix + key))
	return v, v != ""
}

func (e *env) string(key, def string) string {
	if v, ok := e.lookup(key); ok {
		return v
	}
	return def
}

func (e *env) int(key string, def int) int {
	v, ok := e.lookup(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil && e.err == nil {
		e.err = fmt.Errorf("%w: %s%s=%q is not an integer", ErrInvalid, Prefix, key, v)
	}
	return n
}

func (e *env) bool(key string, def bool) bool {
	v, ok := e.lookup(key)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil && e.err == nil {
		e.err = fmt.Errorf("%w: %s%s=%q is not a boolean", ErrInvalid, Prefix, key, v)
	}
	return b
}
