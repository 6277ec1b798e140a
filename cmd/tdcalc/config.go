// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Defaults (single source of truth).
const (
	defaultOp       = "vdot"
	defaultDim      = 2
	defaultLogLevel = "info"
	stdStream       = "-" // input/output placeholder for stdin/stdout
)

var (
	errNoDim     = errors.New("tdcalc: dim must be > 0")
	errUnknownOp = errors.New("tdcalc: unknown operation")
)

// Config describes one calculation job.
// It can be loaded from YAML and overridden by explicitly set flags.
type Config struct {
	// Op names the operation, see ops.
	Op string `yaml:"op"`
	// Dim is the sequence length or matrix dimension of every operand.
	Dim int `yaml:"dim"`
	// Scalar is the factor used by vscale/mscale.
	Scalar float64 `yaml:"scalar"`
	// Input is a file path or "-" for stdin.
	Input string `yaml:"input"`
	// Output is a file path or "-" for stdout.
	Output string `yaml:"output"`
	// LogLevel is a logrus level name.
	LogLevel string `yaml:"log_level"`
}

func defaultConfig() *Config {
	return &Config{
		Op:       defaultOp,
		Dim:      defaultDim,
		Scalar:   1,
		Input:    stdStream,
		Output:   stdStream,
		LogLevel: defaultLogLevel,
	}
}

// LoadConfig reads a YAML job file on top of the defaults.
func LoadConfig(configPath string) (config *Config, err error) {
	configBytes, err := os.ReadFile(configPath)
	if err != nil {
		log.WithError(err).WithField("path", configPath).Error("read config file failed")
		return
	}
	config = defaultConfig()
	if err = yaml.Unmarshal(configBytes, config); err != nil {
		log.WithError(err).WithField("path", configPath).Error("unmarshal config file failed")
		return nil, err
	}
	return
}

// validate checks the job before any input is read.
func (c *Config) validate() error {
	if c.Dim <= 0 {
		return errNoDim
	}
	if _, ok := ops[c.Op]; !ok {
		return fmt.Errorf("%w: %q", errUnknownOp, c.Op)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// parseArgs builds the effective Config: defaults, then -config file, then
// every flag the user set explicitly.
func parseArgs(args []string) (cfg *Config, showVersion bool, err error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	var (
		configPath string
		flagCfg    = defaultConfig()
	)
	fs.StringVar(&configPath, "config", "", "YAML job file")
	fs.StringVar(&flagCfg.Op, "op", defaultOp, "operation: vadd vsub vdot vscale madd msub mmul mscale mvec mtranspose")
	fs.IntVar(&flagCfg.Dim, "dim", defaultDim, "sequence length / matrix dimension")
	fs.Float64Var(&flagCfg.Scalar, "scalar", 1, "scalar factor for vscale/mscale")
	fs.StringVar(&flagCfg.Input, "in", stdStream, "input file, - for stdin")
	fs.StringVar(&flagCfg.Output, "out", stdStream, "output file, - for stdout")
	fs.StringVar(&flagCfg.LogLevel, "log-level", defaultLogLevel, "log level")
	fs.BoolVar(&showVersion, "version", false, "Show version information and exit")
	if err = fs.Parse(args); err != nil {
		return nil, false, err
	}

	cfg = defaultConfig()
	if configPath != "" {
		if cfg, err = LoadConfig(configPath); err != nil {
			return nil, false, err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "op":
			cfg.Op = flagCfg.Op
		case "dim":
			cfg.Dim = flagCfg.Dim
		case "scalar":
			cfg.Scalar = flagCfg.Scalar
		case "in":
			cfg.Input = flagCfg.Input
		case "out":
			cfg.Output = flagCfg.Output
		case "log-level":
			cfg.LogLevel = flagCfg.LogLevel
		}
	})

	return cfg, showVersion, nil
}
