// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shutil

import "os"

// HideOutput redirects os.Stdout to the null device until the
// returned function is called. Code run in between still executes;
// only its standard output is discarded.
//
//	restore := HideOutput()
//	noisy()
//	restore()
func HideOutput() (restore func()) {
	null, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		return func() {}
	}
	saved := os.Stdout
	os.Stdout = null
	return func() {
		os.Stdout = saved
		null.Close()
	}
}

// Nop returns a restore function that does nothing. It can stand in
// for HideOutput when output should be kept.
func Nop() (restore func()) {
	return func() {}
}
