// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inspect summarizes the API of a Go package and the
// signatures of its functions, using the type checker.
package inspect

import (
	"context"
	"errors"
	"fmt"
	"go/types"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"
)

// ErrNotFound is returned by Signature when the package has no such
// function or method.
var ErrNotFound = errors.New("not found")

// Options control how packages are loaded and reported.
type Options struct {
	// Dir is the directory the package pattern is resolved in.
	// Empty means the current directory.
	Dir string

	// All includes unexported names.
	All bool
}

// Info is the API of one package.
type Info struct {
	Name   string
	Path   string
	Files  []string
	Consts []string
	Vars   []string
	Funcs  []string
	Types  []Type
}

// Type is a named type and its declared methods.
type Type struct {
	Name    string
	Kind    string // "struct", "interface", "func", ...
	Methods []string
}

func load(ctx context.Context, pattern string, o Options) (*packages.Package, error) {
	cfg := &packages.Config{
		Context: ctx,
		Dir:     o.Dir,
		Mode:    packages.NeedName | packages.NeedFiles | packages.NeedTypes,
	}
	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, err
	}
	if len(pkgs) != 1 {
		return nil, fmt.Errorf("pattern %q matched %d packages, want 1", pattern, len(pkgs))
	}
	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		return nil, fmt.Errorf("loading %s: %w", pattern, pkg.Errors[0])
	}
	if pkg.Types == nil {
		return nil, fmt.Errorf("loading %s: no type information", pattern)
	}
	return pkg, nil
}

// Package loads the package named by pattern and lists its top-level
// declarations, sorted by name.
func Package(ctx context.Context, pattern string, o Options) (*Info, error) {
	pkg, err := load(ctx, pattern, o)
	if err != nil {
		return nil, err
	}
	info := &Info{Name: pkg.Name, Path: pkg.PkgPath}
	for _, f := range pkg.GoFiles {
		info.Files = append(info.Files, filepath.Base(f))
	}

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		obj := scope.Lookup(name)
		if !o.All && !obj.Exported() {
			continue
		}
		switch obj := obj.(type) {
		case *types.Const:
			info.Consts = append(info.Consts, name)
		case *types.Var:
			info.Vars = append(info.Vars, name)
		case *types.Func:
			info.Funcs = append(info.Funcs, name)
		case *types.TypeName:
			t := Type{Name: name, Kind: kindOf(obj.Type())}
			for _, m := range methods(obj.Type()) {
				if o.All || m.Exported() {
					t.Methods = append(t.Methods, m.Name())
				}
			}
			sort.Strings(t.Methods)
			info.Types = append(info.Types, t)
		}
	}
	return info, nil
}

// methods returns the methods declared on t, or the method set of an
// interface type.
func methods(t types.Type) []*types.Func {
	var ms []*types.Func
	if iface, ok := t.Underlying().(*types.Interface); ok {
		for i := 0; i < iface.NumMethods(); i++ {
			ms = append(ms, iface.Method(i))
		}
		return ms
	}
	if named, ok := t.(*types.Named); ok {
		for i := 0; i < named.NumMethods(); i++ {
			ms = append(ms, named.Method(i))
		}
	}
	return ms
}

func kindOf(t types.Type) string {
	if _, ok := t.(*types.Alias); ok {
		return "alias"
	}
	switch u := t.Underlying().(type) {
	case *types.Struct:
		return "struct"
	case *types.Interface:
		return "interface"
	case *types.Signature:
		return "func"
	case *types.Map:
		return "map"
	case *types.Slice:
		return "slice"
	case *types.Array:
		return "array"
	case *types.Pointer:
		return "pointer"
	case *types.Chan:
		return "chan"
	case *types.Basic:
		return u.Name()
	}
	return "type"
}

// Fprint writes info to w.
func (info *Info) Fprint(w io.Writer) {
	fmt.Fprintf(w, "package %s // import %q\n", info.Name, info.Path)
	fmt.Fprintf(w, "files: %s\n", strings.Join(info.Files, ", "))
	list := func(title string, names []string) {
		if len(names) == 0 {
			return
		}
		fmt.Fprintf(w, "\n%s:\n", title)
		for _, n := range names {
			fmt.Fprintf(w, "    %s\n", n)
		}
	}
	list("constants", info.Consts)
	list("variables", info.Vars)
	list("functions", info.Funcs)
	if len(info.Types) > 0 {
		fmt.Fprintf(w, "\ntypes:\n")
		for _, t := range info.Types {
			fmt.Fprintf(w, "    %s (%s)\n", t.Name, t.Kind)
			for _, m := range t.Methods {
				fmt.Fprintf(w, "        %s\n", m)
			}
		}
	}
}
