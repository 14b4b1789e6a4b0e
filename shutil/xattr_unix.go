// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux || darwin

package shutil

import "golang.org/x/sys/unix"

// hasXattr reports whether path has any extended attributes.
func hasXattr(path string) bool {
	n, err := unix.Listxattr(path, nil)
	return err == nil && n > 0
}
