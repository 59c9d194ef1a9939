/*
 * fwrite - Write-plan text format parser.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package wconfig

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/rcornwell/fwrite/encode"
	"github.com/rcornwell/fwrite/table"
)

// LoadPlan reads a small line-oriented "write plan" and builds a
// table.Table from it. This is a convenience for driving the engine
// end-to-end from the demo CLI and the test suite; it is not a
// general-purpose table format. Lines look like:
//
//	# comment
//	rows 5
//	col name:STRING  alice,bob,NA,dan,"eve, f"
//	col score:DOUBLE 3.5,NA,-1,1e10,0
//	col ok:BOOL      TRUE,FALSE,NA,TRUE,FALSE
//
// Parse errors are tagged with the 1-based source line number, mirroring
// the S370 emulator's .cfg line parser.
func LoadPlan(r io.Reader) (*table.Table, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	n := -1
	var cols []encode.ColumnView
	var names []string
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "rows":
			if len(fields) != 2 {
				return nil, planError(lineNo, "rows requires exactly one argument")
			}
			v, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, planError(lineNo, "rows argument must be an integer: %v", err)
			}
			n = v
		case "col":
			if n < 0 {
				return nil, planError(lineNo, "col line seen before rows")
			}
			col, name, err := parseColLine(line, n)
			if err != nil {
				return nil, planError(lineNo, "%v", err)
			}
			cols = append(cols, col)
			names = append(names, name)
		default:
			return nil, planError(lineNo, "unrecognized directive %q", fields[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("wconfig: reading write plan: %w", err)
	}

	t, err := table.New(cols, names)
	if err != nil {
		return nil, fmt.Errorf("wconfig: write plan: %w", err)
	}
	return t, nil
}

func planError(lineNo int, format string, args ...any) error {
	return fmt.Errorf("wconfig: write plan line %d: %s", lineNo, fmt.Sprintf(format, args...))
}

// parseColLine parses `col NAME:KIND  v1,v2,...,vN` into a ColumnView
// plus its column name.
func parseColLine(line string, n int) (encode.ColumnView, string, error) {
	rest := strings.TrimSpace(strings.TrimPrefix(line, "col"))
	sep := strings.IndexByte(rest, ' ')
	if sep < 0 {
		return nil, "", fmt.Errorf("col line missing values")
	}
	header := rest[:sep]
	valuesPart := strings.TrimSpace(rest[sep+1:])

	nameKind := strings.SplitN(header, ":", 2)
	if len(nameKind) != 2 {
		return nil, "", fmt.Errorf("col header %q must be NAME:KIND", header)
	}
	name, kind := nameKind[0], strings.ToUpper(nameKind[1])

	raw := splitPlanValues(valuesPart)
	if len(raw) != n {
		return nil, "", fmt.Errorf("col %q has %d values, want %d", name, len(raw), n)
	}

	col, err := buildColumn(kind, raw)
	if err != nil {
		return nil, "", fmt.Errorf("col %q: %w", name, err)
	}
	return col, name, nil
}

// splitPlanValues splits a comma-separated value list, honoring a
// double-quoted field that may itself contain a comma (e.g. "eve, f").
func splitPlanValues(s string) []string {
	var out []string
	var cur strings.Builder
	inQuote := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"':
			inQuote = !inQuote
		case c == ',' && !inQuote:
			out = append(out, cur.String())
			cur.Reset()
			continue
		default:
			cur.WriteByte(c)
		}
	}
	out = append(out, cur.String())
	for i := range out {
		out[i] = strings.TrimSpace(out[i])
	}
	return out
}

func buildColumn(kind string, raw []string) (encode.ColumnView, error) {
	switch kind {
	case "STRING":
		vals := make([]string, len(raw))
		missing := make([]bool, len(raw))
		for i, s := range raw {
			if s == "NA" {
				missing[i] = true
				continue
			}
			vals[i] = s
		}
		col := table.NewStringColumn(vals)
		col.Missing = missing
		return col, nil
	case "DOUBLE":
		vals := make([]float64, len(raw))
		for i, s := range raw {
			if s == "NA" {
				vals[i] = naFloat()
				continue
			}
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("value %q is not a double: %w", s, err)
			}
			vals[i] = v
		}
		return table.DoubleColumn(vals), nil
	case "INT32":
		vals := make([]int32, len(raw))
		for i, s := range raw {
			if s == "NA" {
				vals[i] = table.Int32NA
				continue
			}
			v, err := strconv.ParseInt(s, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("value %q is not an int32: %w", s, err)
			}
			vals[i] = int32(v)
		}
		return table.Int32Column(vals), nil
	case "INT64":
		vals := make([]int64, len(raw))
		for i, s := range raw {
			if s == "NA" {
				vals[i] = int64(encode.Int64NA)
				continue
			}
			v, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("value %q is not an int64: %w", s, err)
			}
			vals[i] = v
		}
		return table.NewInt64Column(vals), nil
	case "BOOL":
		vals := make([]encode.BoolValue, len(raw))
		for i, s := range raw {
			switch strings.ToUpper(s) {
			case "TRUE":
				vals[i] = encode.BoolTrue
			case "FALSE":
				vals[i] = encode.BoolFalse
			case "NA":
				vals[i] = encode.BoolNA
			default:
				return nil, fmt.Errorf("value %q is not a bool", s)
			}
		}
		return table.BoolColumn(vals), nil
	default:
		return nil, fmt.Errorf("unsupported column kind %q", kind)
	}
}

func naFloat() float64 {
	return math.NaN()
}
