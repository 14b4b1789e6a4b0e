// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shutil

import (
	"bufio"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"
	"os/user"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
)

// ListFormat selects the output of LongList.
type ListFormat string

const (
	ListText ListFormat = "text"
	ListHTML ListFormat = "html"
)

// ParseListFormat parses s, ignoring case.
func ParseListFormat(s string) (ListFormat, error) {
	switch f := ListFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case "", ListText:
		return ListText, nil
	case ListHTML:
		return f, nil
	}
	return "", fmt.Errorf("list format %q must be text or html", s)
}

// ListOptions control LongList.
type ListOptions struct {
	Format ListFormat

	// Color highlights directory names in text output.
	Color bool

	// Now is the reference time for choosing the date format. The
	// zero value means time.Now().
	Now time.Time
}

// Entry is one line of a long listing.
type Entry struct {
	Name    string
	IsDir   bool
	Mode    string // e.g. "drwxr-xr-x@"
	Links   uint64
	Owner   string
	Group   string
	Size    int64
	ModTime time.Time
}

// List stats path, or each entry of path if it is a directory, sorted
// by name.
func List(path string) ([]Entry, error) {
	if path == "" {
		path = "."
	}
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !fi.IsDir() {
		return []Entry{newEntry(path, path, fi)}, nil
	}
	ents, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	var out []Entry
	for _, ent := range ents {
		full := filepath.Join(path, ent.Name())
		fi, err := os.Stat(full)
		if err != nil {
			// Dangling symlink; describe the link itself.
			if fi, err = os.Lstat(full); err != nil {
				return nil, err
			}
		}
		out = append(out, newEntry(ent.Name(), full, fi))
	}
	return out, nil
}

func newEntry(name, full string, fi fs.FileInfo) Entry {
	e := Entry{
		Name:    name,
		IsDir:   fi.IsDir(),
		Mode:    modeString(fi.Mode(), hasXattr(full)),
		Links:   1,
		Size:    fi.Size(),
		ModTime: fi.ModTime(),
	}
	if uid, gid, links, ok := statOwner(fi); ok {
		e.Links = links
		e.Owner, e.Group = userName(uid), groupName(gid)
	}
	return e
}

func modeString(m fs.FileMode, xattr bool) string {
	var b strings.Builder
	if m.IsDir() {
		b.WriteByte('d')
	} else {
		b.WriteByte('-')
	}
	const rwx = "rwxrwxrwx"
	for i := 0; i < 9; i++ {
		if m&(1<<uint(8-i)) != 0 {
			b.WriteByte(rwx[i])
		} else {
			b.WriteByte('-')
		}
	}
	if xattr {
		b.WriteByte('@')
	} else {
		b.WriteByte(' ')
	}
	return b.String()
}

func userName(uid uint32) string {
	id := strconv.FormatUint(uint64(uid), 10)
	if u, err := user.LookupId(id); err == nil {
		return u.Username
	}
	return id
}

func groupName(gid uint32) string {
	id := strconv.FormatUint(uint64(gid), 10)
	if g, err := user.LookupGroupId(id); err == nil {
		return g.Name
	}
	return id
}

// line formats everything about e except its name.
func (e Entry) line(now time.Time) string {
	stamp := e.ModTime.Format("Jan _2 15:04")
	if now.Sub(e.ModTime) >= 365*24*time.Hour {
		stamp = e.ModTime.Format("Jan _2  2006")
	}
	return fmt.Sprintf("%s %3d %s  %s  %8d %s", e.Mode, e.Links, e.Owner, e.Group, e.Size, stamp)
}

var listHTML = template.Must(template.New("ls").Parse(
	`<pre style='font-family: monospace'>` +
		`{{range .}}{{.Line}} {{if .IsDir}}<span style="color:blue">{{.Name}}</span>/{{else}}{{.Name}}{{end}}<br>{{end}}` +
		`</pre>`))

// LongList writes a listing of path to w in the style of "ls -l".
// Directories are shown with a trailing "/".
func LongList(w io.Writer, path string, o ListOptions) error {
	format, err := ParseListFormat(string(o.Format))
	if err != nil {
		return err
	}
	ents, err := List(path)
	if err != nil {
		return err
	}
	now := o.Now
	if now.IsZero() {
		now = time.Now()
	}

	if format == ListHTML {
		type row struct {
			Line, Name string
			IsDir      bool
		}
		rows := make([]row, len(ents))
		for i, e := range ents {
			rows[i] = row{e.line(now), e.Name, e.IsDir}
		}
		return listHTML.Execute(w, rows)
	}

	blue := color.New(color.FgBlue)
	if o.Color {
		blue.EnableColor()
	} else {
		blue.DisableColor()
	}
	bw := bufio.NewWriter(w)
	for _, e := range ents {
		name := e.Name
		if e.IsDir {
			name = blue.Sprint(name) + "/"
		}
		fmt.Fprintf(bw, "%s %s\n", e.line(now), name)
	}
	return bw.Flush()
}
