package config

import (
	"errors"
	"fmt"
)

var (
	ErrMissingRegion     = errors.New("region is required")
	ErrIncompleteKeyPair = errors.New("access_key and secret_key must be set together")
	ErrInvalidPartSize   = errors.New("transfer.part_size_mb must be a power of two between 1 and 4096")
)

func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if cfg.Region == "" {
		return ErrMissingRegion
	}
	if (cfg.AccessKey == "") != (cfg.SecretKey == "") {
		return ErrIncompleteKeyPair
	}
	if cfg.Transfer != nil && cfg.Transfer.PartSizeMB != 0 {
		mb := cfg.Transfer.PartSizeMB
		if mb < 1 || mb > 4096 || mb&(mb-1) != 0 {
			return fmt.Errorf("%w: got %d", ErrInvalidPartSize, mb)
		}
	}
	return nil
}
