// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sample

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCounts(t *testing.T) {
	counts, err := DecodeCounts(strings.NewReader("dog: 3\ncat: 5\n10: 1.5\n"))
	require.NoError(t, err)
	assert.Equal(t, []Count{{"dog", 3}, {"cat", 5}, {"10", 1.5}}, counts)

	counts, err = DecodeCounts(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, counts)

	for _, bad := range []string{"- 1\n- 2\n", "dog: many\n", "dog: [1, 2]\n"} {
		_, err := DecodeCounts(strings.NewReader(bad))
		assert.Error(t, err, "DecodeCounts(%q)", bad)
	}
}

func TestReadCounts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counts.yaml")
	require.NoError(t, os.WriteFile(path, []byte("Not Cancelled: 90\nCancelled: 10\n"), 0o644))
	counts, err := ReadCounts(path)
	require.NoError(t, err)
	assert.Equal(t, []Count{{"Not Cancelled", 90}, {"Cancelled", 10}}, counts)
}
