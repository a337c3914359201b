package config

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// GameFile is the name of the game config inside a config directory
const GameFile = "game.yaml"

// Loader loads game configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadGame loads game.yaml. Keys missing from the file keep their default values.
func (l *Loader) LoadGame() (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, GameFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Join(l.basePath, GameFile), err)
	}
	return Parse(data)
}

// LoadFile loads a game config from an explicit path
func LoadFile(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result
func Parse(data []byte) (*GameConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values the simulation divides by or indexes with
func (c *GameConfig) Validate() error {
	switch {
	case c.Display.TileSize <= 0:
		return fmt.Errorf("display.tileSize must be positive, got %d", c.Display.TileSize)
	case c.Display.Framerate <= 0:
		return fmt.Errorf("display.framerate must be positive, got %d", c.Display.Framerate)
	case c.Generator.GroundRow < 1 || c.Generator.GroundRow+1 >= c.Generator.Rows:
		return fmt.Errorf("generator.groundRow %d does not fit in %d rows", c.Generator.GroundRow, c.Generator.Rows)
	case c.Generator.PitSegments <= 0:
		return fmt.Errorf("generator.pitSegments must be positive, got %d", c.Generator.PitSegments)
	case c.Generator.BaseWidth < 30:
		return fmt.Errorf("generator.baseWidth must be at least 30, got %d", c.Generator.BaseWidth)
	case c.Session.MaxLevels <= 0:
		return fmt.Errorf("session.maxLevels must be positive, got %d", c.Session.MaxLevels)
	}
	return nil
}
