// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shutil

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// GrepOptions control Grep.
type GrepOptions struct {
	TextOptions

	// LineNumbers prefixes each match with "N: ".
	LineNumbers bool
	IgnoreCase  bool
}

// Grep writes the lines of path that match the regular expression
// pattern to w and returns the number of matching lines.
func Grep(w io.Writer, pattern, path string, o GrepOptions) (int, error) {
	if strings.TrimSpace(pattern) == "" {
		return 0, errors.New("pattern must be a non-blank string")
	}
	if o.IgnoreCase {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return 0, fmt.Errorf("bad regexp: %w", err)
	}
	f, err := openText(path, o.TextOptions)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	bw := bufio.NewWriter(w)
	scanner := newLineScanner(f)
	matches := 0
	for n := 1; scanner.Scan(); n++ {
		line := scanner.Text()
		if !re.MatchString(line) {
			continue
		}
		matches++
		line = strings.TrimRight(line, " \t\r")
		if o.LineNumbers {
			fmt.Fprintf(bw, "%d: %s\n", n, line)
		} else {
			fmt.Fprintln(bw, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return matches, fmt.Errorf("%s: %w", path, err)
	}
	return matches, bw.Flush()
}
