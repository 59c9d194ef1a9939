/*
 * fwrite - Command-line front-end.
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

package main

import (
	"context"
	"log/slog"
	"os"

	getopt "github.com/pborman/getopt/v2"

	"github.com/rcornwell/fwrite/encode"
	"github.com/rcornwell/fwrite/logger"
	"github.com/rcornwell/fwrite/prompt"
	"github.com/rcornwell/fwrite/table"
	"github.com/rcornwell/fwrite/wconfig"
	"github.com/rcornwell/fwrite/writer"
)

var Logger *slog.Logger

func main() {
	optPlan := getopt.StringLong("plan", 'p', "", "Write-plan file to load")
	optOut := getopt.StringLong("o", 'o', "", "Output file (console if empty)")
	optSep := getopt.StringLong("sep", 0, ",", "Column separator")
	optThreads := getopt.IntLong("threads", 0, 0, "Worker goroutines (0 = NumCPU)")
	optAppend := getopt.BoolLong("append", 0, "Append instead of truncate")
	optLogFile := getopt.StringLong("log", 'l', "", "Log file")
	optInteractive := getopt.BoolLong("i", 'i', "Drop into the interactive prompt")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	var file *os.File
	if *optLogFile != "" {
		var err error
		file, err = os.Create(*optLogFile)
		if err != nil {
			slog.Error("cannot create log file", "path", *optLogFile, "error", err)
			os.Exit(1)
		}
	}
	programLevel := new(slog.LevelVar)
	programLevel.Set(slog.LevelInfo)
	debug := false
	Logger = slog.New(logger.NewHandler(file, &slog.HandlerOptions{Level: programLevel, AddSource: false}, &debug))
	slog.SetDefault(Logger)

	Logger.Info("fwrite started")

	opts := wconfig.DefaultOptions()
	if len(*optSep) != 1 {
		Logger.Error("sep must be exactly one character", "sep", *optSep)
		os.Exit(1)
	}
	opts.ColSep = (*optSep)[0]
	opts.Threads = *optThreads
	opts.Append = *optAppend
	if err := opts.Validate(); err != nil {
		Logger.Error(err.Error())
		os.Exit(1)
	}

	t, err := loadTable(*optPlan)
	if err != nil {
		Logger.Error(err.Error())
		os.Exit(1)
	}

	if *optInteractive {
		prompt.Run(t, opts)
		return
	}

	var rowNames encode.RowNames = t.RowNames
	err = writer.Write(context.Background(), t.Cols, t.Names, rowNames, t.N, opts, *optOut, nil)
	if err != nil {
		Logger.Error(err.Error())
		os.Exit(1)
	}
	Logger.Info("write complete", "rows", t.N, "output", *optOut)
}

// loadTable reads a write-plan file if one was given, otherwise
// synthesizes a small sample table so the demo runs with no arguments.
func loadTable(planPath string) (*table.Table, error) {
	if planPath == "" {
		return sampleTable(), nil
	}
	f, err := os.Open(planPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return wconfig.LoadPlan(f)
}

func sampleTable() *table.Table {
	cols := []encode.ColumnView{
		table.Int32Column{1, 2, table.Int32NA, 4},
		table.DoubleColumn{3.1416, 30460, 0.0072, 0},
		table.NewStringColumn([]string{"alice", "bob", "NA", "dan"}),
	}
	names := []string{"id", "value", "name"}
	t, _ := table.New(cols, names)
	return t
}
