package config

import (
	"log"
	"path/filepath"

	"github.com/spf13/afero"
)

// Initialize writes the default configuration into the directory,
// skipping files that already exist, and returns the loaded result.
func Initialize(fsys afero.Fs, path string, logger *log.Logger) (*Configuration, error) {
	configPath := filepath.Join(path, ConfigurationName)

	exists, err := afero.Exists(fsys, configPath)
	if err != nil {
		return nil, err
	}

	if exists {
		logger.Printf("Found existing %s, keeping it", configPath)
	} else {
		if err := fsys.MkdirAll(path, 0700); err != nil {
			return nil, err
		}
		if err := afero.WriteFile(fsys, configPath, defaultConfigData, 0600); err != nil {
			return nil, err
		}
		logger.Printf("Wrote %s", configPath)
	}

	return Load(fsys, path)
}
