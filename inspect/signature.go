// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inspect

import (
	"context"
	"fmt"
	"go/types"
	"io"
	"strings"
)

// Param is one parameter or result of a signature. Name is empty for
// unnamed results.
type Param struct {
	Name string
	Type string
}

// Sig is the signature of a function or method.
type Sig struct {
	Name     string // "F" or "T.M"
	Params   []Param
	Results  []Param
	Variadic bool
}

// Signature loads the package named by pattern and returns the
// signature of name, which is either a function name or
// "Type.Method". Types are written relative to the package.
func Signature(ctx context.Context, pattern, name string, o Options) (*Sig, error) {
	pkg, err := load(ctx, pattern, o)
	if err != nil {
		return nil, err
	}
	fn, err := lookupFunc(pkg.Types, name)
	if err != nil {
		return nil, err
	}
	sig := fn.Type().(*types.Signature)
	qual := types.RelativeTo(pkg.Types)
	s := &Sig{Name: name, Variadic: sig.Variadic()}
	s.Params = tupleParams(sig.Params(), qual)
	s.Results = tupleParams(sig.Results(), qual)
	if s.Variadic && len(s.Params) > 0 {
		// Show "...T" rather than "[]T".
		last := sig.Params().At(sig.Params().Len() - 1)
		elem := last.Type().(*types.Slice).Elem()
		s.Params[len(s.Params)-1].Type = "..." + types.TypeString(elem, qual)
	}
	return s, nil
}

func lookupFunc(pkg *types.Package, name string) (*types.Func, error) {
	typeName, method, isMethod := strings.Cut(name, ".")
	obj := pkg.Scope().Lookup(typeName)
	if obj == nil {
		return nil, fmt.Errorf("%s.%s: %w", pkg.Path(), name, ErrNotFound)
	}
	if !isMethod {
		fn, ok := obj.(*types.Func)
		if !ok {
			return nil, fmt.Errorf("%s.%s is a %T, not a function", pkg.Path(), name, obj)
		}
		return fn, nil
	}
	tn, ok := obj.(*types.TypeName)
	if !ok {
		return nil, fmt.Errorf("%s.%s is not a type", pkg.Path(), typeName)
	}
	mobj, _, _ := types.LookupFieldOrMethod(types.NewPointer(tn.Type()), true, pkg, method)
	fn, ok := mobj.(*types.Func)
	if !ok {
		return nil, fmt.Errorf("%s.%s: %w", pkg.Path(), name, ErrNotFound)
	}
	return fn, nil
}

func tupleParams(t *types.Tuple, qual types.Qualifier) []Param {
	ps := make([]Param, t.Len())
	for i := range ps {
		v := t.At(i)
		ps[i] = Param{v.Name(), types.TypeString(v.Type(), qual)}
	}
	return ps
}

// Fprint writes the parameters of s one per line with their types
// aligned, followed by a "return" line if s has results.
func (s *Sig) Fprint(w io.Writer) {
	if len(s.Params) == 0 && len(s.Results) == 0 {
		fmt.Fprintln(w, "No parameters or results.")
		return
	}
	width := len("return")
	if len(s.Results) == 0 {
		width = 0
	}
	for _, p := range s.Params {
		width = max(width, len(p.Name))
	}
	for _, p := range s.Params {
		fmt.Fprintf(w, "%-*s  %s\n", width, p.Name, p.Type)
	}
	if len(s.Results) > 0 {
		fmt.Fprintf(w, "%-*s  %s\n", width, "return", s.resultString())
	}
}

func (s *Sig) resultString() string {
	if len(s.Results) == 1 && s.Results[0].Name == "" {
		return s.Results[0].Type
	}
	parts := make([]string, len(s.Results))
	for i, r := range s.Results {
		parts[i] = strings.TrimSpace(r.Name + " " + r.Type)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// String returns s in Go syntax, without the func keyword.
func (s *Sig) String() string {
	parts := make([]string, len(s.Params))
	for i, p := range s.Params {
		parts[i] = strings.TrimSpace(p.Name + " " + p.Type)
	}
	out := s.Name + "(" + strings.Join(parts, ", ") + ")"
	if len(s.Results) > 0 {
		out += " " + s.resultString()
	}
	return out
}
