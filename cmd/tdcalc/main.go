// SPDX-License-Identifier: MIT

// Command tdcalc runs one vector or matrix operation over whitespace-delimited
// text. Operands are read in order from the input; the result is written to
// the output in the same text format.
//
// Usage:
//
//	echo "1 4 7 3" | tdcalc -op vdot -dim 2
//	tdcalc -config job.yaml -in operands.txt
package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
)

const name = "tdcalc"

var version = "unknown"

func main() {
	cfg, showVersion, err := parseArgs(os.Args[1:])
	if err != nil {
		log.WithError(err).Error("parse arguments failed")
		os.Exit(1)
	}
	if showVersion {
		fmt.Printf("%v %v %v %v %v\n",
			name, version, runtime.GOOS, runtime.GOARCH, runtime.Version())
		os.Exit(0)
	}
	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	}

	start := time.Now()
	entry := log.WithFields(log.Fields{"op": cfg.Op, "dim": cfg.Dim})
	entry.Debug("job started")
	if err = runJob(cfg); err != nil {
		entry.WithError(err).Error("job failed")
		os.Exit(1)
	}
	entry.WithField("elapsed", time.Since(start)).Info("job finished")
}

// runJob opens the configured streams, runs the job and closes both streams
// before returning.
func runJob(cfg *Config) error {
	in, closeIn, err := openInput(cfg.Input)
	if err != nil {
		return fmt.Errorf("open input %q: %w", cfg.Input, err)
	}
	defer closeIn()

	out, closeOut, err := openOutput(cfg.Output)
	if err != nil {
		return fmt.Errorf("open output %q: %w", cfg.Output, err)
	}
	defer closeOut()

	return run(cfg, in, out)
}

func openInput(path string) (io.Reader, func(), error) {
	if path == stdStream || path == "" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == stdStream || path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() {
		if err := f.Close(); err != nil {
			log.WithError(err).WithField("output", path).Warning("close output failed")
		}
	}, nil
}
