package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Load reads the config file at path (or the resolved default when path is
// empty). checkPerms rejects files readable by group/other, since the file
// may carry a secret key.
func Load(path string, checkPerms bool) (*viper.Viper, error) {
	if path == "" {
		path = ResolveConfigPath()
	}
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetEnvPrefix("COLDVAULT")
	v.AutomaticEnv()

	if checkPerms {
		if err := checkConfigPermissions(path); err != nil {
			return nil, err
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, fmt.Errorf("config file not found: %s (run 'coldvault configure')", path)
		}
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s (run 'coldvault configure')", path)
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	return v, nil
}

func checkConfigPermissions(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	mode := info.Mode().Perm()

	if mode&0077 != 0 {
		return fmt.Errorf("config file %s has overly permissive mode %s (recommended: 0600)", path, mode)
	}
	return nil
}
