// Package gen generates proxy stubs for sets of interfaces.
//
// A stub is a struct embedding proxy.Stub with one method per
// method of its contracts.  Each method forwards to
// proxy.Stub.Dispatch and the stub registers itself with
// proxy.Register when the package is initialized.
package gen

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-logr/logr"
)

// Generator writes the stubs described by a Config.
type Generator struct {
	config Config
	logger logr.Logger
}

// New creates a Generator for a validated Config.
func New(config Config, logger logr.Logger) *Generator {
	return &Generator{config, logger}
}

// Source returns the generated source and the path it
// belongs to without writing it.
func (g *Generator) Source() (string, []byte, error) {
	cfg := g.config
	pkg, err := loadPackage(cfg.Dir, cfg.Pattern)
	if err != nil {
		return "", nil, err
	}
	g.logger.V(1).Info("loaded package", "path", pkg.PkgPath, "files", len(pkg.GoFiles))

	stubs := make([]*stub, 0, len(cfg.Proxies))
	for _, proxy := range cfg.Proxies {
		s, err := resolveStub(pkg, proxy)
		if err != nil {
			return "", nil, err
		}
		g.logger.V(1).Info("resolved proxy",
			"name", s.name,
			"contracts", len(s.contracts),
			"methods", len(s.methods))
		stubs = append(stubs, s)
	}

	dir := cfg.Dir
	if len(pkg.GoFiles) > 0 {
		dir = filepath.Dir(pkg.GoFiles[0])
	}
	path := filepath.Join(dir, cfg.Output)
	src, err := render(pkg.Types, path, stubs)
	if err != nil {
		return "", nil, err
	}
	return path, src, nil
}

// Generate writes the generated source next to the package
// and returns the path of the file.
func (g *Generator) Generate() (string, error) {
	path, src, err := g.Source()
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	g.logger.Info("generated proxies", "file", path, "count", len(g.config.Proxies))
	return path, nil
}
