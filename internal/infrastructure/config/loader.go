package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Tuning *TuningConfig
	Arena  *ArenaConfig
}

// Loader loads configuration from JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: ".",
	}
}

// NewFSLoader creates a new config loader from fs.FS rooted at basePath
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	if basePath == "" {
		basePath = "."
	}
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

func (l *Loader) readJSON(name string, v any) error {
	data, err := fs.ReadFile(l.fsys, path.Join(l.basePath, name))
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

// LoadTuning loads and validates tuning.json.
// Missing fields keep their DefaultTuning value.
func (l *Loader) LoadTuning() (*TuningConfig, error) {
	cfg := DefaultTuning()
	if err := l.readJSON("tuning.json", cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate tuning.json: %w", err)
	}
	return cfg, nil
}

// LoadArena loads and validates an arena JSON file
func (l *Loader) LoadArena(name string) (*ArenaConfig, error) {
	var cfg ArenaConfig
	if err := l.readJSON("arenas/"+name+".json", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load arena %s: %w", name, err)
	}
	if cfg.ID == "" {
		cfg.ID = name
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate arena %s: %w", name, err)
	}
	return &cfg, nil
}

// LoadAll loads the tuning and the named arena
func (l *Loader) LoadAll(arena string) (*GameConfig, error) {
	tuning, err := l.LoadTuning()
	if err != nil {
		return nil, err
	}

	arenaCfg, err := l.LoadArena(arena)
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Tuning: tuning,
		Arena:  arenaCfg,
	}, nil
}
