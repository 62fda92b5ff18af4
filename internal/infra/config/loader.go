package config

import (
	"os"

	"github.com/spf13/afero"

	"github.com/YoshitsuguKoike/propbrief/internal/app/config"
)

// HomeEnv names the environment variable that points at the home directory
const HomeEnv = "PROPBRIEF_HOME"

// DefaultHome is used when HomeEnv is unset
const DefaultHome = ".propbrief"

// ResolveHome returns the home directory. The environment variable is only
// used to locate setting.json; every other setting lives in the file.
func ResolveHome() string {
	if v := os.Getenv(HomeEnv); v != "" {
		return v
	}
	return DefaultHome
}

// Load resolves the home directory and loads its settings from the OS file system
func Load() (config.Config, error) {
	cfg, err := LoadSettings(afero.NewOsFs(), ResolveHome())
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
