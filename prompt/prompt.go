/*
 * fwrite - Interactive table prompt.
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

// Package prompt is a liner-backed interactive front-end for repeated
// writes of the same in-memory table under different configurations.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/peterh/liner"

	"github.com/rcornwell/fwrite/encode"
	"github.com/rcornwell/fwrite/table"
	"github.com/rcornwell/fwrite/wconfig"
	"github.com/rcornwell/fwrite/writer"
)

var commands = []string{"write", "show", "set", "quit"}

// Run drives an interactive "table> " prompt over t, starting from opts,
// until the user types quit or aborts the prompt (Ctrl-D/Ctrl-C).
func Run(t *table.Table, opts wconfig.Options) {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(func(in string) []string {
		var out []string
		for _, c := range commands {
			if len(in) <= len(c) && c[:len(in)] == in {
				out = append(out, c)
			}
		}
		return out
	})

	for {
		input, err := line.Prompt("table> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				return
			}
			slog.Error("error reading line: " + err.Error())
			return
		}
		line.AppendHistory(input)

		quit, err := dispatch(input, t, &opts)
		if err != nil {
			fmt.Println("Error: " + err.Error())
		}
		if quit {
			return
		}
	}
}

func dispatch(input string, t *table.Table, opts *wconfig.Options) (bool, error) {
	fields := splitFields(input)
	if len(fields) == 0 {
		return false, nil
	}

	switch fields[0] {
	case "quit", "exit":
		return true, nil
	case "show":
		showTable(t, *opts)
		return false, nil
	case "write":
		if len(fields) != 2 {
			return false, fmt.Errorf("usage: write <path>")
		}
		return false, runWrite(t, *opts, fields[1])
	case "set":
		if len(fields) != 3 {
			return false, fmt.Errorf("usage: set <option> <value>")
		}
		return false, setOption(opts, fields[1], fields[2])
	default:
		return false, fmt.Errorf("unknown command %q", fields[0])
	}
}

func splitFields(s string) []string {
	var out []string
	var cur []byte
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' || s[i] == '\t' {
			if len(cur) > 0 {
				out = append(out, string(cur))
				cur = nil
			}
			continue
		}
		cur = append(cur, s[i])
	}
	if len(cur) > 0 {
		out = append(out, string(cur))
	}
	return out
}

func showTable(t *table.Table, opts wconfig.Options) {
	fmt.Printf("rows=%d cols=%d colSep=%q rowSep=%q decSep=%q quote=%v threads=%d turbo=%v\n",
		t.N, len(t.Cols), opts.ColSep, opts.RowSep, opts.DecSep, opts.Quote, opts.Threads, opts.Turbo)
	for i, name := range t.Names {
		fmt.Printf("  col %d: %s\n", i, name)
	}
}

func runWrite(t *table.Table, opts wconfig.Options, path string) error {
	var rowNames encode.RowNames = t.RowNames
	err := writer.Write(context.Background(), t.Cols, t.Names, rowNames, t.N, opts, path, nil)
	if err != nil {
		return err
	}
	fmt.Printf("wrote %d rows to %s\n", t.N, path)
	return nil
}

func setOption(opts *wconfig.Options, name, value string) error {
	switch name {
	case "sep":
		if len(value) != 1 {
			return fmt.Errorf("sep must be a single character")
		}
		opts.ColSep = value[0]
	case "dec":
		if len(value) != 1 {
			return fmt.Errorf("dec must be a single character")
		}
		opts.DecSep = value[0]
	case "threads":
		n, err := parsePositiveInt(value)
		if err != nil {
			return fmt.Errorf("threads must be a non-negative integer: %w", err)
		}
		opts.Threads = n
	case "turbo":
		b, err := parseBool(value)
		if err != nil {
			return err
		}
		opts.Turbo = b
	case "append":
		b, err := parseBool(value)
		if err != nil {
			return err
		}
		opts.Append = b
	case "header":
		b, err := parseBool(value)
		if err != nil {
			return err
		}
		opts.ColNames = b
	default:
		return fmt.Errorf("unknown option %q", name)
	}
	return nil
}

func parsePositiveInt(s string) (int, error) {
	n := 0
	if s == "" {
		return 0, fmt.Errorf("empty value")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("not a number: %q", s)
		}
		n = n*10 + int(s[i]-'0')
	}
	return n, nil
}

func parseBool(s string) (bool, error) {
	switch s {
	case "true", "1", "on":
		return true, nil
	case "false", "0", "off":
		return false, nil
	default:
		return false, fmt.Errorf("not a bool: %q", s)
	}
}
