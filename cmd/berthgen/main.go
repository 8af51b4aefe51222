// Command berthgen writes the berth declarations of a package from its
// //berth: directive comments.
//
// Usage:
//
//	//go:generate go run github.com/xraph/berth/cmd/berthgen
//
// Flags override the BERTH_DIR, BERTH_OUTPUT, BERTH_PLAN and BERTH_LOG_LEVEL
// environment variables, which may also come from a .env file.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/xraph/berth/internal/gen"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "berthgen:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := gen.Load()

	flag.StringVar(&cfg.Dir, "dir", cfg.Dir, "package directory to scan")
	flag.StringVar(&cfg.Output, "output", cfg.Output, "generated file name, relative to -dir")
	flag.BoolVar(&cfg.Plan, "plan", cfg.Plan, "print a YAML plan instead of writing the file")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	flag.Parse()

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	return gen.NewGenerator(cfg, logger).Run(os.Stdout)
}

func newLogger(level string) (*zap.Logger, error) {
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	zc := zap.NewProductionConfig()
	if parsed == zapcore.DebugLevel {
		zc = zap.NewDevelopmentConfig()
	}

	zc.Level = zap.NewAtomicLevelAt(parsed)
	zc.OutputPaths = []string{"stderr"}

	return zc.Build()
}
