// SPDX-License-Identifier: MIT

// Package config loads the process configuration of the segmentation tools.
//
// Two formats are accepted. Files ending in .yaml or .yml are decoded as YAML.
// Anything else is read in the legacy line format: one "key value" pair per
// line, '#' starting a comment line. Unknown keys are ignored in both formats,
// so a shared configuration file may carry settings of other stages.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for configuration loading.
var (
	// ErrBadValue indicates a key whose value could not be parsed.
	ErrBadValue = errors.New("config: bad value")
	// ErrMissing indicates a required setting left empty.
	ErrMissing = errors.New("config: missing setting")
)

// Config is the explicit process configuration.
type Config struct {
	// HumanInPath is the directory holding the body mesh.
	HumanInPath string `yaml:"human_in_path"`
	// HumanInFile is the body mesh file name (STL).
	HumanInFile string `yaml:"human_in_file"`
	// HumanMeshDirection names the body's up axis, e.g. "y".
	HumanMeshDirection string `yaml:"human_mesh_direction"`
	// HumanSegOutPath is where segmentation results are written.
	HumanSegOutPath string `yaml:"human_seg_out_path"`
	// SkeletonInFile is the skeleton graph (.cg), relative to HumanInPath
	// unless absolute.
	SkeletonInFile string `yaml:"skeleton_in_file"`
	// RegionDumpPath enables region dumps when non-empty.
	RegionDumpPath string `yaml:"region_dump_path"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when a key is absent.
func Default() Config {
	return Config{
		HumanMeshDirection: "y",
		LogLevel:           "info",
	}
}

// Load reads the configuration file at path, picking the format from the
// file extension.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		cfg, err = ParseYAML(f)
	default:
		cfg, err = Parse(f)
	}
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// legacyKeys maps legacy keys to their fields. The misspelled
// "human_mesh_diretion" is what existing files contain.
var legacyKeys = map[string]func(*Config) *string{
	"human_in_path":        func(c *Config) *string { return &c.HumanInPath },
	"human_in_file":        func(c *Config) *string { return &c.HumanInFile },
	"human_mesh_diretion":  func(c *Config) *string { return &c.HumanMeshDirection },
	"human_mesh_direction": func(c *Config) *string { return &c.HumanMeshDirection },
	"human_seg_out_path":   func(c *Config) *string { return &c.HumanSegOutPath },
	"skeleton_in_file":     func(c *Config) *string { return &c.SkeletonInFile },
	"region_dump_path":     func(c *Config) *string { return &c.RegionDumpPath },
	"log_level":            func(c *Config) *string { return &c.LogLevel },
}

// Parse reads the legacy "key value" format.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	sc := bufio.NewScanner(r)
	for ln := 1; sc.Scan(); ln++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key := strings.Fields(line)[0]
		field, ok := legacyKeys[key]
		if !ok {
			continue
		}
		value := strings.TrimSpace(line[len(key):])
		if value == "" {
			return Config{}, fmt.Errorf("%w: line %d: %s has no value", ErrBadValue, ln, key)
		}
		*field(&cfg) = value
	}
	if err := sc.Err(); err != nil {
		return Config{}, err
	}
	return cfg, cfg.validate()
}

// ParseYAML reads the YAML format.
func ParseYAML(r io.Reader) (Config, error) {
	cfg := Default()
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrBadValue, err)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level returns LogLevel as a slog.Level.
func (c Config) Level() slog.Level {
	l, _ := parseLevel(c.LogLevel)
	return l
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: log_level %q", ErrBadValue, s)
	}
	return l, nil
}

// MeshPath returns the body mesh path.
func (c Config) MeshPath() (string, error) {
	if c.HumanInFile == "" {
		return "", fmt.Errorf("%w: human_in_file", ErrMissing)
	}
	return c.resolve(c.HumanInFile), nil
}

// SkeletonPath returns the skeleton graph path.
func (c Config) SkeletonPath() (string, error) {
	if c.SkeletonInFile == "" {
		return "", fmt.Errorf("%w: skeleton_in_file", ErrMissing)
	}
	return c.resolve(c.SkeletonInFile), nil
}

func (c Config) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.HumanInPath, name)
}
