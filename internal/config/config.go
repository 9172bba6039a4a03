package config

import "github.com/spf13/viper"

const (
	// DefaultAccountID addresses the calling account on every storage call.
	DefaultAccountID = "-"

	DefaultPartSizeMB = 8
)

type Config struct {
	Region    string `mapstructure:"region" yaml:"region"`
	AccessKey string `mapstructure:"access_key" yaml:"access_key,omitempty"`
	SecretKey string `mapstructure:"secret_key" yaml:"secret_key,omitempty"`

	// AccountID is almost always "-" (the calling account). Kept
	// configurable for test endpoints that validate it.
	AccountID string `mapstructure:"account_id" yaml:"account_id,omitempty"`

	// Endpoint overrides the service endpoints, for local stacks.
	Endpoint *EndpointConfig `mapstructure:"endpoint" yaml:"endpoint,omitempty"`

	Transfer *TransferConfig `mapstructure:"transfer" yaml:"transfer,omitempty"`
}

type EndpointConfig struct {
	Storage      string `mapstructure:"storage" yaml:"storage,omitempty"`
	Notification string `mapstructure:"notification" yaml:"notification,omitempty"`
}

type TransferConfig struct {
	PartSizeMB int `mapstructure:"part_size_mb" yaml:"part_size_mb,omitempty"`
}

func Unmarshal(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, err
	}
	if c.AccountID == "" {
		c.AccountID = DefaultAccountID
	}
	return &c, nil
}

// PartSizeMB returns the configured upload part size, falling back to the
// default when unset.
func (c *Config) PartSizeMB() int {
	if c.Transfer != nil && c.Transfer.PartSizeMB > 0 {
		return c.Transfer.PartSizeMB
	}
	return DefaultPartSizeMB
}
