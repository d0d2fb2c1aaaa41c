package store

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	// DefaultPath is where goal and settings files live unless configured.
	DefaultPath = "~/.goals"
)

type Config interface {
	BasePath() string
}

// LoadConfig resolves the storage directory from, in order: the "path" key
// bound by the command line, GOALS_PATH (including values from a .env file),
// a .goals.yaml config file, and DefaultPath.
func LoadConfig() (Config, error) {
	// A missing .env is the common case.
	_ = godotenv.Load()

	viper.SetDefault("path", DefaultPath)
	viper.SetConfigName(".goals") // .yaml is implicit
	viper.SetEnvPrefix("GOALS")
	viper.AutomaticEnv()

	if override := os.Getenv("GOALS_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}
	return &fileConfig{Path: path, File: viper.ConfigFileUsed()}, nil
}

// NewConfig returns a Config rooted at path.
func NewConfig(path string) Config {
	return &fileConfig{Path: path}
}

type fileConfig struct {
	Path string `json:"path"`
	File string `json:"file,omitempty"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

// ConfigFile returns the config file viper read, if any.
func ConfigFile(cfg Config) string {
	if f, ok := cfg.(*fileConfig); ok {
		return f.File
	}
	return ""
}
