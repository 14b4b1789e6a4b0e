// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shutil

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"
)

// DefaultLineLength is the line length Columns uses when the output
// is not a terminal.
const DefaultLineLength = 70

// Columns lays items out in fixed-width columns. Every item is padded
// to the width of the longest item plus gap spaces, and a line is
// ended once its width reaches lineLength. An item longer than
// lineLength gets a line to itself.
func Columns(items []string, lineLength, gap int) (string, error) {
	if gap < 0 {
		return "", fmt.Errorf("gap %d must not be negative", gap)
	}
	if len(items) == 0 {
		return "", nil
	}
	longest := 0
	for _, s := range items {
		longest = max(longest, utf8.RuneCountInString(s))
	}
	width := longest + gap

	var b strings.Builder
	cur := 0
	for _, s := range items {
		b.WriteString(s)
		b.WriteString(strings.Repeat(" ", width-utf8.RuneCountInString(s)))
		cur += width
		if cur >= lineLength {
			b.WriteByte('\n')
			cur = 0
		}
	}
	return b.String(), nil
}

// TerminalWidth returns the width of the terminal on stdout, or
// DefaultLineLength if stdout is not a terminal.
func TerminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return DefaultLineLength
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return DefaultLineLength
	}
	return w
}
