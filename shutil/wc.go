// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shutil

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"
)

// Counts are the results of WordCount.
type Counts struct {
	Path  string
	Lines int
	Words int
	Chars int // runes, including line terminators
}

func (c Counts) String() string {
	return fmt.Sprintf("%7d %7d %7d %s", c.Lines, c.Words, c.Chars, c.Path)
}

// WordCount counts the lines, words and characters in path. A final
// line without a terminator still counts as a line.
func WordCount(path string, o TextOptions) (Counts, error) {
	f, err := openText(path, o)
	if err != nil {
		return Counts{}, err
	}
	defer f.Close()
	c, err := countReader(f)
	if err != nil {
		return Counts{}, fmt.Errorf("%s: %w", path, err)
	}
	c.Path = path
	return c, nil
}

func countReader(r io.Reader) (Counts, error) {
	var c Counts
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			c.Lines++
			c.Words += len(strings.Fields(line))
			c.Chars += utf8.RuneCountInString(line)
		}
		if err == io.EOF {
			return c, nil
		} else if err != nil {
			return c, err
		}
	}
}

// WordCountFiles counts each of paths concurrently. The results are in
// the same order as paths. It stops at the first error.
func WordCountFiles(ctx context.Context, paths []string, o TextOptions) ([]Counts, error) {
	res := make([]Counts, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c, err := WordCount(path, o)
			res[i] = c
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

// Total sums counts, labeled "total".
func Total(counts []Counts) Counts {
	t := Counts{Path: "total"}
	for _, c := range counts {
		t.Lines += c.Lines
		t.Words += c.Words
		t.Chars += c.Chars
	}
	return t
}
