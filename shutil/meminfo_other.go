// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !linux

package shutil

import (
	"errors"
	"fmt"
	"runtime"
)

// MemoryInfo reports the system's memory use. It is only implemented
// on Linux.
func MemoryInfo() (MemInfo, error) {
	return MemInfo{}, fmt.Errorf("memory info on %s: %w", runtime.GOOS, errors.ErrUnsupported)
}
