package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds CLI defaults loaded from ~/.deviceiq/config.yaml.
type Config struct {
	DataFile       string `mapstructure:"data_file" yaml:"data_file"`
	Format         string `mapstructure:"format" yaml:"format"`
	ClassifierSeed int64  `mapstructure:"classifier_seed" yaml:"classifier_seed"`
}

// Default returns the built-in defaults used when no config file exists.
func Default() *Config {
	return &Config{Format: "json"}
}

// Load reads the configuration from cfgFile, or from the default location
// when cfgFile is empty. A missing file is not an error; defaults apply.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return Default(), nil
		}
		v.AddConfigPath(filepath.Join(home, ".deviceiq"))
		v.SetConfigName("config")
	}

	v.SetDefault("format", "json")
	v.SetEnvPrefix("DEVICEIQ")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); notFound {
			cfg := Default()
			return cfg, nil
		}
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration to cfgFile, or to the default location when
// cfgFile is empty, creating the directory if necessary.
func Save(c *Config, cfgFile string) error {
	path := cfgFile
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("cannot resolve home directory: %w", err)
		}
		dir := filepath.Join(home, ".deviceiq")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("cannot create config directory: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}

	out, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("cannot marshal config: %w", err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("cannot write config: %w", err)
	}
	return nil
}
