package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// projectManifest is a discovered lexkit.toml plus where it was found.
type projectManifest struct {
	Path   string
	Root   string
	Config projectConfig
}

type projectConfig struct {
	Package  packageConfig  `toml:"package"`
	Tokenize tokenizeConfig `toml:"tokenize"`
}

type packageConfig struct {
	Name string `toml:"name"`
}

type tokenizeConfig struct {
	Ext    string `toml:"ext"`
	Format string `toml:"format"`
}

// findLexkitToml walks from startDir up to the filesystem root looking for
// the nearest lexkit.toml.
func findLexkitToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "lexkit.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// loadManifest finds and parses the nearest lexkit.toml. A missing manifest
// is not an error; callers fall back to built-in defaults.
func loadManifest(startDir string) (*projectManifest, bool, error) {
	manifestPath, ok, err := findLexkitToml(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := loadManifestConfig(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &projectManifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

func loadManifestConfig(path string) (projectConfig, error) {
	var cfg projectConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return projectConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return projectConfig{}, fmt.Errorf("%s: missing [package]", path)
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return projectConfig{}, fmt.Errorf("%s: missing [package].name", path)
	}
	if cfg.Tokenize.Ext != "" && !strings.HasPrefix(cfg.Tokenize.Ext, ".") {
		return projectConfig{}, fmt.Errorf("%s: [tokenize].ext must start with a dot", path)
	}
	switch cfg.Tokenize.Format {
	case "", "pretty", "json":
	default:
		return projectConfig{}, fmt.Errorf("%s: [tokenize].format must be pretty or json", path)
	}
	return cfg, nil
}
