package config

import (
	"os"
	"path/filepath"
)

const (
	DefaultConfigDirName = ".coldvault"
	DefaultConfigName    = "config.yaml"
)

const EnvConfigPath = "COLDVAULT_CONFIG"

func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, DefaultConfigDirName, DefaultConfigName)
}

func ResolveConfigPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return DefaultConfigPath()
}
