package store

import (
	"log"
	"os"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config supplies the local store path and the optional remote endpoint.
type Config interface {
	BasePath() string
	RemoteURL() string
	SyncDebounce() time.Duration
}

// LoadConfig reads the .violet config file (current directory or the path in
// VIOLET_CONFIG_PATH) with VIOLET_* environment overrides.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.violet.db")
	viper.SetDefault("remote", "")
	viper.SetDefault("debounce", "750ms")
	viper.SetConfigName(".violet") // .yaml is implicit
	viper.SetEnvPrefix("VIOLET")
	viper.AutomaticEnv()

	if override := os.Getenv("VIOLET_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("error reading config file: %v", err)
			return nil, err
		}
	}

	path := viper.GetString("path")
	if expanded, err := homedir.Expand(path); err == nil {
		path = expanded
	}

	return &fileConfig{
		Path:     path,
		Remote:   viper.GetString("remote"),
		Debounce: viper.GetDuration("debounce"),
	}, nil
}

type fileConfig struct {
	Path     string        `json:"path"`
	Remote   string        `json:"remote"`
	Debounce time.Duration `json:"debounce"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) RemoteURL() string {
	return f.Remote
}

func (f *fileConfig) SyncDebounce() time.Duration {
	if f.Debounce <= 0 {
		return 750 * time.Millisecond
	}
	return f.Debounce
}
