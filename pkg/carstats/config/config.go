package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by Load
const EnvPrefix = "CARSTATS"

// Config holds the settings shared by all commands
type Config struct {
	DataFile  string `mapstructure:"data"`
	Format    string `mapstructure:"format"`
	LogLevel  string `mapstructure:"log-level"`
	LogFormat string `mapstructure:"log-format"`
}

// SetDefaults registers the default value of every key on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault("data", "cars.json")
	v.SetDefault("format", "text")
	v.SetDefault("log-level", "WARN")
	v.SetDefault("log-format", "text")
}

// Load resolves the configuration from, in order of precedence, flags already
// bound to v, CARSTATS_* environment variables, the optional config file and
// the defaults.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}
