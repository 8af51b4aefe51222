// Package gen turns berth directive comments into generated declarations.
package gen

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Generator runs berthgen over one package directory.
type Generator struct {
	cfg    *Config
	logger *zap.Logger
}

// NewGenerator creates a generator. A nil logger discards output.
func NewGenerator(cfg *Config, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Generator{cfg: cfg, logger: logger}
}

// Run parses the configured directory, then either writes the plan to w or
// writes the generated file.
func (g *Generator) Run(w io.Writer) error {
	pkg, err := Parse(g.cfg.Dir)
	if err != nil {
		g.logger.Error("failed to parse package", zap.String("dir", g.cfg.Dir), zap.Error(err))
		return err
	}

	g.logger.Debug("parsed package",
		zap.String("package", pkg.Name),
		zap.Int("contracts", len(pkg.Contracts)),
		zap.Int("implementations", len(pkg.Implementations)),
	)

	if g.cfg.Plan {
		return WritePlan(w, pkg)
	}

	output := filepath.Join(g.cfg.Dir, g.cfg.Output)

	if pkg.IsEmpty() {
		// Remove the output of an earlier run
		if err := os.Remove(output); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}

		g.logger.Info("no berth directives found, nothing generated", zap.String("package", pkg.Name))

		return nil
	}

	src, err := Render(pkg)
	if err != nil {
		return err
	}

	if err := os.WriteFile(output, src, 0o644); err != nil {
		return err
	}

	g.logger.Info("generated declarations",
		zap.String("package", pkg.Name),
		zap.String("file", output),
	)

	return nil
}
