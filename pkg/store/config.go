package store

import (
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

type Config interface {
	BasePath() string
}

// LoadConfig resolves the storage base path from a .cue config file, CUE_*
// environment variables, or the default of ~/.cue.db.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.cue.db")
	viper.SetConfigName(".cue") // .yaml is implicit
	viper.SetEnvPrefix("CUE")
	viper.AutomaticEnv()

	if override := os.Getenv("CUE_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	path := viper.GetString("path")
	if expanded, err := homedir.Expand(path); err == nil {
		path = expanded
	}

	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
