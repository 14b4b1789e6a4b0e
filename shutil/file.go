// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shutil implements small versions of familiar shell tools:
// head, tail, wc, tree, grep and ls -l, plus a few odds and ends for
// interactive use.
package shutil

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
)

// ErrBlankPath is returned when a path argument is empty or all space.
var ErrBlankPath = errors.New("path must be a non-blank string")

// DefaultLines is the number of lines Head and Tail show by default.
const DefaultLines = 10

// TextOptions control how text files are read.
type TextOptions struct {
	// Encoding is a WHATWG encoding label such as "utf-8" or
	// "windows-1252". Empty means UTF-8.
	Encoding string
}

// textFile is an open file decoded to UTF-8.
type textFile struct {
	f *os.File
	io.Reader
}

func (t *textFile) Close() error { return t.f.Close() }

func openText(path string, o TextOptions) (*textFile, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrBlankPath
	}
	var r io.Reader
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	r = f
	if enc := strings.TrimSpace(o.Encoding); enc != "" {
		e, err := htmlindex.Get(enc)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("encoding %q: %w", enc, err)
		}
		r = e.NewDecoder().Reader(f)
	}
	return &textFile{f, r}, nil
}

func checkLines(n int) error {
	if n <= 0 {
		return fmt.Errorf("number of lines %d must be positive", n)
	}
	return nil
}

// Head writes the first n lines of path to w. Trailing white space is
// trimmed from each line.
func Head(w io.Writer, path string, n int, o TextOptions) error {
	if err := checkLines(n); err != nil {
		return err
	}
	f, err := openText(path, o)
	if err != nil {
		return err
	}
	defer f.Close()

	bw := bufio.NewWriter(w)
	scanner := newLineScanner(f)
	for i := 0; i < n && scanner.Scan(); i++ {
		fmt.Fprintln(bw, strings.TrimRight(scanner.Text(), " \t\r\n"))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return bw.Flush()
}

// Tail writes the last n lines of path to w. Trailing white space is
// trimmed from each line.
func Tail(w io.Writer, path string, n int, o TextOptions) error {
	if err := checkLines(n); err != nil {
		return err
	}
	f, err := openText(path, o)
	if err != nil {
		return err
	}
	defer f.Close()

	// Keep a ring of the last n lines.
	ring := make([]string, n)
	total := 0
	scanner := newLineScanner(f)
	for scanner.Scan() {
		ring[total%n] = scanner.Text()
		total++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	bw := bufio.NewWriter(w)
	start := 0
	if total > n {
		start = total - n
	}
	for i := start; i < total; i++ {
		fmt.Fprintln(bw, strings.TrimRight(ring[i%n], " \t\r\n"))
	}
	return bw.Flush()
}

func newLineScanner(r io.Reader) *bufio.Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 64<<10), 16<<20)
	return s
}
