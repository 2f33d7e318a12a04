package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

// Load loads the configuration from the directory. A directory without a
// configuration file gets the built-in defaults.
func Load(path string) (*Configuration, error) {
	// If given the path to a config.yaml file, move back up a level.
	if filepath.Base(path) == ConfigurationName {
		path = filepath.Dir(path)
	}

	return LoadFs(afero.NewBasePathFs(afero.NewOsFs(), path))
}

// LoadFs loads the configuration stored at the root of configFs.
func LoadFs(configFs afero.Fs) (*Configuration, error) {
	configContents, err := afero.ReadFile(configFs, ConfigurationName)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		out := Default()
		out.configFs = configFs
		return out, nil
	case err != nil:
		return nil, err
	}

	var out Configuration
	if err := yaml.UnmarshalStrict(configContents, &out); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", ConfigurationName, err)
	}
	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", ConfigurationName, err)
	}
	out.configFs = configFs
	return &out, nil
}

// Initialize writes the default configuration into dir unless one already
// exists, then loads it.
func Initialize(dir string, logger *log.Logger) (*Configuration, error) {
	configFs := afero.NewBasePathFs(afero.NewOsFs(), dir)

	if err := configFs.MkdirAll(".", 0700); err != nil {
		return nil, err
	}

	exists, err := afero.Exists(configFs, ConfigurationName)
	switch {
	case err != nil:
		return nil, err
	case exists:
		logger.Info("Configuration already exists", "path", filepath.Join(dir, ConfigurationName))
	default:
		logger.Info("Writing default configuration", "path", filepath.Join(dir, ConfigurationName))
		if err := afero.WriteFile(configFs, ConfigurationName, defaultConfigData, 0600); err != nil {
			return nil, err
		}
	}

	return LoadFs(configFs)
}
