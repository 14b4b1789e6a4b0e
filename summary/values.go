// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package summary

import (
	"fmt"
	"math/big"
	"reflect"
)

// Floats converts a dynamically typed sample to []float64.
//
// Each value must be a Go integer or floating-point type (or a type
// whose underlying type is one), a *big.Int, or a *big.Float.
// Complex numbers, strings, booleans and nil are rejected with an
// error wrapping ErrNotNumeric.
func Floats(vals []interface{}) ([]float64, error) {
	xs := make([]float64, len(vals))
	for i, v := range vals {
		x, ok := toFloat(v)
		if !ok {
			return nil, fmt.Errorf("value %d (%v, %T): %w", i, v, v, ErrNotNumeric)
		}
		xs[i] = x
	}
	return xs, nil
}

func toFloat(v interface{}) (float64, bool) {
	switch v := v.(type) {
	case *big.Int:
		if v == nil {
			return 0, false
		}
		f, _ := new(big.Float).SetInt(v).Float64()
		return f, true
	case *big.Float:
		if v == nil {
			return 0, false
		}
		f, _ := v.Float64()
		return f, true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// FiveNumberOf is like FiveNumber, but takes a dynamically typed
// sample. The length is checked first, then every value is checked
// by Floats before anything is sorted.
func FiveNumberOf(vals []interface{}) (Summary, error) {
	if len(vals) < 2 {
		return Summary{}, ErrTooShort
	}
	xs, err := Floats(vals)
	if err != nil {
		return Summary{}, err
	}
	return FiveNumber(xs)
}

// FiveNumberInterpOf is like FiveNumberInterp, but takes a
// dynamically typed sample.
func FiveNumberInterpOf(vals []interface{}) (Summary, error) {
	if len(vals) < 2 {
		return Summary{}, ErrTooShort
	}
	xs, err := Floats(vals)
	if err != nil {
		return Summary{}, err
	}
	return FiveNumberInterp(xs)
}
