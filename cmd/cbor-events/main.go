// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
)

type globalFlags struct {
	flagset  *pflag.FlagSet
	hexInput bool
	format   string
	diag     bool
	reencode bool
	digest   bool
	debug    bool
}

func newGlobalFlags() *globalFlags {
	f := &globalFlags{
		flagset: pflag.NewFlagSet(os.Args[0], pflag.ExitOnError),
	}
	f.flagset.BoolVarP(
		&f.hexInput,
		"hex",
		"x",
		false,
		"treat input as hex-encoded CBOR (whitespace is ignored)",
	)
	f.flagset.StringVarP(
		&f.format,
		"format",
		"f",
		formatText,
		"event output format: text, json or yaml",
	)
	f.flagset.BoolVar(
		&f.diag,
		"diag",
		false,
		"print diagnostic notation for each top-level item instead of events",
	)
	f.flagset.BoolVar(
		&f.reencode,
		"reencode",
		false,
		"print the hex of the input re-encoded in shortest form instead of events",
	)
	f.flagset.BoolVar(
		&f.digest,
		"digest",
		false,
		"print the BLAKE2b-256 digest of the re-encoded input instead of events",
	)
	f.flagset.BoolVar(&f.debug, "debug", false, "enable debug logging")
	f.flagset.Usage = func() {
		fmt.Fprintf(
			os.Stderr,
			"Usage: %s [flags] [file]\n\nDump the event stream of CBOR data read from a file or stdin.\n\n",
			os.Args[0],
		)
		f.flagset.PrintDefaults()
	}
	return f
}

func main() {
	f := newGlobalFlags()
	if err := f.flagset.Parse(os.Args[1:]); err != nil {
		fmt.Printf("failed to parse command args: %s\n", err)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if f.debug {
		level = slog.LevelDebug
	}
	logger := slog.New(
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}),
	)

	if err := run(f, f.flagset.Args(), os.Stdin, os.Stdout, logger); err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
}

func run(
	f *globalFlags,
	args []string,
	stdin io.Reader,
	stdout io.Writer,
	logger *slog.Logger,
) error {
	if logger == nil {
		logger = slog.Default()
	}
	if len(args) > 1 {
		return fmt.Errorf("expected at most one file argument, got %d", len(args))
	}
	data, err := readInput(args, stdin, f.hexInput)
	if err != nil {
		return err
	}
	logger.Debug("read input", "bytes", len(data), "hex", f.hexInput)

	switch {
	case f.diag:
		return diagCBOR(data, stdout)
	case f.reencode, f.digest:
		return reencodeCBOR(data, stdout, f.reencode, f.digest, logger)
	default:
		return writeEvents(data, stdout, f.format, logger)
	}
}
