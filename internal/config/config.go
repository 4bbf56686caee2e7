// Package config loads and stores grab's settings file.
package config

import (
	"errors"
	"io/fs"
	"path/filepath"

	"gopkg.in/ini.v1"

	"github.com/inovacc/grab/internal/application"
)

const section = "grab"

// Config holds the user-tunable settings.
type Config struct {
	// BasePath anchors the clone tree. Empty means the working directory.
	BasePath string `ini:"base_path"`
}

// Path returns the settings file location.
func Path() (string, error) {
	dir, err := application.GetApplicationDirectory()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, application.ConfigFileName), nil
}

// Load reads the settings file. A missing file is not an error and yields
// the defaults.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}

	return loadFile(path)
}

func loadFile(path string) (*Config, error) {
	cfg := &Config{}

	f, err := ini.Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := f.Section(section).MapTo(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the settings file, replacing its previous contents.
func Save(cfg *Config) error {
	path, err := Path()
	if err != nil {
		return err
	}

	return saveFile(cfg, path)
}

func saveFile(cfg *Config, path string) error {
	f := ini.Empty()
	if err := f.Section(section).ReflectFrom(cfg); err != nil {
		return err
	}

	return f.SaveTo(path)
}
