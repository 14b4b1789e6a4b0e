// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shutil

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// MemInfo is a snapshot of system memory, in MiB.
type MemInfo struct {
	TotalPhysical     int64
	AvailablePhysical int64
	VirtualMax        int64 // commit limit
	VirtualAvailable  int64
	VirtualInUse      int64 // committed
}

// Fprint writes m as aligned "name value" lines.
func (m MemInfo) Fprint(w io.Writer) {
	for _, f := range []struct {
		name string
		v    int64
	}{
		{"total_physical_memory", m.TotalPhysical},
		{"available_physical_memory", m.AvailablePhysical},
		{"virtual_memory_max_size", m.VirtualMax},
		{"virtual_memory_available", m.VirtualAvailable},
		{"virtual_memory_in_use", m.VirtualInUse},
	} {
		fmt.Fprintf(w, "%27s %6d\n", f.name, f.v)
	}
}

// parseMeminfo parses the format of /proc/meminfo.
func parseMeminfo(r io.Reader) (MemInfo, error) {
	kb := make(map[string]int64)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		key, val, ok := strings.Cut(scanner.Text(), ":")
		if !ok {
			continue
		}
		fields := strings.Fields(val)
		if len(fields) == 0 {
			continue
		}
		n, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return MemInfo{}, fmt.Errorf("meminfo %s: %w", key, err)
		}
		kb[key] = n
	}
	if err := scanner.Err(); err != nil {
		return MemInfo{}, err
	}
	if _, ok := kb["MemTotal"]; !ok {
		return MemInfo{}, fmt.Errorf("meminfo: no MemTotal")
	}
	avail, ok := kb["MemAvailable"]
	if !ok {
		// Kernels before 3.14.
		avail = kb["MemFree"] + kb["Buffers"] + kb["Cached"]
	}
	m := MemInfo{
		TotalPhysical:     kb["MemTotal"] >> 10,
		AvailablePhysical: avail >> 10,
		VirtualMax:        kb["CommitLimit"] >> 10,
		VirtualInUse:      kb["Committed_AS"] >> 10,
	}
	m.VirtualAvailable = max(m.VirtualMax-m.VirtualInUse, 0)
	return m, nil
}
