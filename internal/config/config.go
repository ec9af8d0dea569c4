// Package config builds the run configuration from the environment.
//
// The bootstrap contract is deliberately tiny: two environment
// variables, no configuration file, no flags. Everything is read once
// at startup into a Config struct so the later steps never consult
// process globals.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Environment variable names forming the bootstrap contract.
const (
	// EnvTarget overrides the install directory. The directory must
	// already exist.
	EnvTarget = "TARGET"

	// EnvTag pins the release version. Empty or unset means the latest
	// release.
	EnvTag = "TAG"
)

// Config captures every environment input for one bootstrap run.
type Config struct {
	TargetDir string // install directory; empty means "use the default"
	Tag       string // release tag; empty means the latest release
}

// Load reads the environment into a Config.
func Load() (*Config, error) {
	v := viper.New()
	if err := v.BindEnv("target", EnvTarget); err != nil {
		return nil, fmt.Errorf("bind %s: %w", EnvTarget, err)
	}
	if err := v.BindEnv("tag", EnvTag); err != nil {
		return nil, fmt.Errorf("bind %s: %w", EnvTag, err)
	}

	return &Config{
		TargetDir: v.GetString("target"),
		Tag:       v.GetString("tag"),
	}, nil
}

// DefaultTargetDir returns the install directory used when TARGET is
// not set: a system-wide path for the superuser, ~/bin otherwise.
func DefaultTargetDir(euid int) (string, error) {
	if euid == 0 {
		return "/usr/local/bin", nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, "bin"), nil
}
