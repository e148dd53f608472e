// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package column

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/gwenn/yacr"
)

// ReadCSV reads delimited text from r and returns one column per
// field. If sep is 0, the separator is guessed from the first line.
//
// The first record is taken as a header if any of its fields is not a
// number. Fields that do not parse as numbers and fields missing from
// short records are NaN.
func ReadCSV(r io.Reader, sep byte) ([]*Column, error) {
	guess := sep == 0
	if guess {
		sep = ','
	}
	cr := yacr.NewReader(r, sep, true, guess)
	cr.Trim = true
	cr.Comment = '#'

	var records [][]string
	var rec []string
	for cr.Scan() {
		rec = append(rec, cr.Text())
		if cr.EndOfRecord() {
			if !blank(rec) {
				records = append(records, rec)
			}
			rec = nil
		}
	}
	if err := cr.Err(); err != nil {
		return nil, fmt.Errorf("column: line %d: %w", cr.LineNumber(), err)
	}
	if !blank(rec) {
		records = append(records, rec)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var names []string
	if isHeader(records[0]) {
		names, records = records[0], records[1:]
	}
	width := len(names)
	for _, rec := range records {
		if len(rec) > width {
			width = len(rec)
		}
	}

	cols := make([]*Column, width)
	for i := range cols {
		name := fmt.Sprintf("Column %d", i+1)
		if i < len(names) && names[i] != "" {
			name = names[i]
		}
		cols[i] = &Column{Name: name, values: make([]float64, len(records))}
	}
	for row, rec := range records {
		for i, col := range cols {
			col.values[row] = math.NaN()
			if i < len(rec) {
				if v, err := strconv.ParseFloat(rec[i], 64); err == nil {
					col.values[row] = v
				}
			}
		}
	}
	return cols, nil
}

// Find returns the column named name, or nil.
func Find(cols []*Column, name string) *Column {
	for _, c := range cols {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func blank(rec []string) bool {
	return len(rec) == 0 || len(rec) == 1 && rec[0] == ""
}

func isHeader(rec []string) bool {
	for _, f := range rec {
		if f == "" {
			continue
		}
		if isNum, _ := yacr.IsNumber([]byte(f)); !isNum {
			return true
		}
	}
	return false
}
