// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package versions reports the versions of the modules linked into
// the running binary and orders version strings.
package versions

import (
	"errors"
	"runtime/debug"
	"sort"
	"strings"

	"golang.org/x/mod/semver"
)

// ErrNoBuildInfo is returned by Linked when the binary was built
// without module support.
var ErrNoBuildInfo = errors.New("no build information in binary")

// Module is a module path and version.
type Module struct {
	Path    string
	Version string
}

// Canonical returns the canonical semantic version of v, accepting
// versions without the leading "v" such as "0.1" or "1.2.3". It
// returns "" if v is not a semantic version.
func Canonical(v string) string {
	v = strings.TrimSpace(v)
	if v != "" && !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return semver.Canonical(v)
}

// Compare compares two version strings by semantic version. Invalid
// versions sort before valid ones and among themselves by string.
func Compare(a, b string) int {
	ca, cb := Canonical(a), Canonical(b)
	if c := semver.Compare(ca, cb); c != 0 || ca != "" {
		return c
	}
	return strings.Compare(a, b)
}

// Sort sorts ms by path, and by version within a path.
func Sort(ms []Module) {
	sort.Slice(ms, func(i, j int) bool {
		if ms[i].Path != ms[j].Path {
			return ms[i].Path < ms[j].Path
		}
		return Compare(ms[i].Version, ms[j].Version) < 0
	})
}

// FromBuildInfo lists the main module and dependencies of bi, with
// replacements applied. If paths is not empty, only modules whose
// path equals or is under one of paths are included.
func FromBuildInfo(bi *debug.BuildInfo, paths ...string) []Module {
	var out []Module
	add := func(m *debug.Module) {
		if m == nil || m.Path == "" {
			return
		}
		v := m.Version
		if m.Replace != nil && m.Replace.Version != "" {
			v = m.Replace.Version
		}
		if matches(m.Path, paths) {
			out = append(out, Module{m.Path, v})
		}
	}
	add(&bi.Main)
	for _, dep := range bi.Deps {
		add(dep)
	}
	Sort(out)
	return out
}

func matches(path string, prefixes []string) bool {
	if len(prefixes) == 0 {
		return true
	}
	for _, p := range prefixes {
		p = strings.TrimSuffix(p, "/")
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

// Linked is FromBuildInfo for the running binary.
func Linked(paths ...string) ([]Module, error) {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return nil, ErrNoBuildInfo
	}
	return FromBuildInfo(bi, paths...), nil
}
