// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shutil

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotDirectory is returned by Tree when its root is not a
// directory.
var ErrNotDirectory = errors.New("not a directory")

// TreeOptions control Tree.
type TreeOptions struct {
	// ShowHidden includes entries whose names start with ".".
	ShowHidden bool
}

// Tree writes the contents of dir to w as an indented tree, followed by
// a summary line, and returns the number of directories and files
// found below dir.
//
//	dir
//	|-- a
//	    `-- b.txt
//	`-- c.txt
//
//	1 directories, 2 files
//
// Entries are sorted by name. Symbolic links to directories are not
// followed.
func Tree(w io.Writer, dir string, o TreeOptions) (dirs, files int, err error) {
	if dir == "" {
		dir = "."
	}
	if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
		return 0, 0, fmt.Errorf("%s: %w", dir, ErrNotDirectory)
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, dir)
	dirs, files, err = walkTree(bw, dir, 0, o)
	if err != nil {
		return dirs, files, err
	}
	fmt.Fprintf(bw, "\n%d directories, %d files\n", dirs, files)
	return dirs, files, bw.Flush()
}

func walkTree(w io.Writer, dir string, indent int, o TreeOptions) (dirs, files int, err error) {
	// os.ReadDir sorts by name.
	ents, err := os.ReadDir(dir)
	if err != nil {
		return 0, 0, err
	}
	if !o.ShowHidden {
		keep := ents[:0]
		for _, ent := range ents {
			if !strings.HasPrefix(ent.Name(), ".") {
				keep = append(keep, ent)
			}
		}
		ents = keep
	}
	for i, ent := range ents {
		prefix := "|-- "
		if i == len(ents)-1 {
			prefix = "`-- "
		}
		fmt.Fprintf(w, "%s%s%s\n", strings.Repeat(" ", indent), prefix, ent.Name())
		if !ent.IsDir() {
			files++
			continue
		}
		dirs++
		d, f, err := walkTree(w, filepath.Join(dir, ent.Name()), indent+4, o)
		dirs, files = dirs+d, files+f
		if err != nil {
			return dirs, files, err
		}
	}
	return dirs, files, nil
}
