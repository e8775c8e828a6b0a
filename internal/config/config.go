package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
)

const appName = "Vitagotchi"

type StoreConfig struct {
	DataDir     string `mapstructure:"data_dir"`
	PatientFile string `mapstructure:"patient_file"`
	CounterFile string `mapstructure:"counter_file"`
	IDWidth     int    `mapstructure:"id_width"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type Config struct {
	Store StoreConfig `mapstructure:"store"`
	Log   LogConfig   `mapstructure:"log"`
}

// PatientPath is the absolute path of the record map file.
func (c *Config) PatientPath() string {
	return filepath.Join(c.Store.DataDir, c.Store.PatientFile)
}

// CounterPath is the absolute path of the identifier counter file.
func (c *Config) CounterPath() string {
	return filepath.Join(c.Store.DataDir, c.Store.CounterFile)
}

// LoadConfig reads config.yaml from the working directory or ./config,
// with environment overrides. A missing config file falls back to
// defaults entirely; only an unreadable one is an error.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetDefault("store.data_dir", defaultDataDir())
	viper.SetDefault("store.patient_file", "patient_database.json")
	viper.SetDefault("store.counter_file", "patient_id_counter.txt")
	viper.SetDefault("store.id_width", 5)
	viper.SetDefault("log.level", "info")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// defaultDataDir resolves the user-writable data directory per
// platform, falling back to the working directory when the home
// cannot be determined.
func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	switch runtime.GOOS {
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, appName)
		}
		return filepath.Join(home, appName)
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", appName)
	default:
		return filepath.Join(home, ".local", "share", appName)
	}
}
