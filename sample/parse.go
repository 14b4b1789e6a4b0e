// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sample reads numeric samples and categorical counts from
// text, CSV, spreadsheet and YAML files.
//
// Values are returned dynamically typed so that non-numeric input
// reaches the summary package, which reports it as
// summary.ErrNotNumeric rather than failing at parse time.
package sample

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// ValueParser parses a string token into a typed value or returns an
// error if the token cannot be parsed.
type ValueParser func(string) (interface{}, error)

// DefaultValueParsers is the sequence of value parsers used by Parse
// if no parsers are specified. Integers are tried before floats so
// that integral input stays integral.
//
// Complex numbers are deliberately absent.
var DefaultValueParsers = []ValueParser{
	func(s string) (interface{}, error) { return strconv.Atoi(s) },
	func(s string) (interface{}, error) { return strconv.ParseFloat(s, 64) },
}

// Parse reads whitespace- or comma-separated tokens from r. Lines
// starting with "#" are comments.
//
// Each token is converted by the first of valueParsers that accepts
// it. If none do, the raw string is kept. If valueParsers is nil,
// Parse uses DefaultValueParsers.
func Parse(r io.Reader, valueParsers []ValueParser) ([]interface{}, error) {
	if valueParsers == nil {
		valueParsers = DefaultValueParsers
	}
	vals := []interface{}{}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		for _, tok := range strings.FieldsFunc(line, isSep) {
			vals = append(vals, parseValue(tok, valueParsers))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return vals, nil
}

// ParseStrings converts each of toks like Parse.
func ParseStrings(toks []string, valueParsers []ValueParser) []interface{} {
	if valueParsers == nil {
		valueParsers = DefaultValueParsers
	}
	vals := make([]interface{}, len(toks))
	for i, tok := range toks {
		vals[i] = parseValue(strings.TrimSpace(tok), valueParsers)
	}
	return vals
}

func parseValue(tok string, valueParsers []ValueParser) interface{} {
	for _, vp := range valueParsers {
		if v, err := vp(tok); err == nil {
			return v
		}
	}
	return tok
}

func isSep(r rune) bool {
	return r == ',' || r == ' ' || r == '\t' || r == ';'
}
