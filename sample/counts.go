// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sample

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Count is one category of a categorical distribution.
type Count struct {
	Category string
	Value    float64
}

// ReadCounts reads a YAML mapping from category to count from path.
// The order of the mapping is preserved.
func ReadCounts(path string) ([]Count, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	counts, err := DecodeCounts(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return counts, nil
}

// DecodeCounts is like ReadCounts, but reads from r.
func DecodeCounts(r io.Reader) ([]Count, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return []Count{}, nil
		}
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 {
		return nil, fmt.Errorf("expected a single YAML document")
	}
	m := doc.Content[0]
	if m.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping of category to count", m.Line)
	}

	counts := make([]Count, 0, len(m.Content)/2)
	for i := 0; i+1 < len(m.Content); i += 2 {
		k, v := m.Content[i], m.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: count for %q is not a number", v.Line, k.Value)
		}
		x, err := strconv.ParseFloat(v.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: count for %q: %w", v.Line, k.Value, err)
		}
		counts = append(counts, Count{k.Value, x})
	}
	return counts, nil
}
