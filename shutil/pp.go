// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shutil

import (
	"encoding/json"
	"fmt"
)

// PrettyJSON returns v as JSON indented by four spaces. Map keys are
// sorted. Values JSON cannot represent, such as channels, functions
// and complex numbers, are an error.
func PrettyJSON(v interface{}) (string, error) {
	b, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return "", fmt.Errorf("cannot pretty print %T: %w", v, err)
	}
	return string(b), nil
}
