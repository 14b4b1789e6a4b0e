// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sample

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrNoColumn is returned when a named column is not in a table's
// header row.
var ErrNoColumn = errors.New("column not found")

// Column is one column of a table file.
type Column struct {
	Name string

	// Values holds the parsed non-empty cells, in row order.
	Values []interface{}

	// Rows is the number of data rows, including rows where this
	// column was empty.
	Rows int
}

// NonEmptyFraction returns the fraction of rows with a value in c.
func (c *Column) NonEmptyFraction() float64 {
	if c.Rows == 0 {
		return 0
	}
	return float64(len(c.Values)) / float64(c.Rows)
}

// ReadColumn reads the column named name from the table in path. The
// first row is the header. Files ending in .xlsx are read as
// spreadsheets (first sheet); anything else is read as CSV.
//
// Empty cells and "NaN"/"NA" cells are skipped.
func ReadColumn(path, name string) (*Column, error) {
	var rows [][]string
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		rows, err = readXLSX(path)
	default:
		rows, err = readCSV(path)
	}
	if err != nil {
		return nil, err
	}
	return columnFromRows(rows, name)
}

// ReadColumnCSV reads the column named name from CSV data in r.
func ReadColumnCSV(r io.Reader, name string) (*Column, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	return columnFromRows(rows, name)
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s: workbook has no sheets", path)
	}
	return f.GetRows(sheets[0])
}

func columnFromRows(rows [][]string, name string) (*Column, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%q: %w (table is empty)", name, ErrNoColumn)
	}
	idx := -1
	for i, h := range rows[0] {
		if strings.TrimSpace(h) == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%q: %w (have %s)", name, ErrNoColumn, strings.Join(rows[0], ", "))
	}

	col := &Column{Name: name, Values: []interface{}{}, Rows: len(rows) - 1}
	for _, row := range rows[1:] {
		if idx >= len(row) {
			continue
		}
		cell := strings.TrimSpace(row[idx])
		switch cell {
		case "", "NaN", "nan", "NA":
			continue
		}
		col.Values = append(col.Values, parseValue(cell, DefaultValueParsers))
	}
	return col, nil
}
