// Package config loads treetop's optional configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config stores the scan defaults a user can persist. The values are read
// by viper from a config file or TREETOP_* environment variables;
// command-line flags override them.
type Config struct {
	// Top is the default result count.
	Top int `mapstructure:"top"`
	// Mode is the default scan mode ("files" or "directories").
	Mode string `mapstructure:"mode"`
	// OutputDir is where reports land when no explicit output is given.
	OutputDir string `mapstructure:"outputDir"`
	// OlderThan is the default age cutoff: a duration such as "720h",
	// a day count such as "30d", or a date "2006-01-02". Empty disables
	// the filter.
	OlderThan string `mapstructure:"olderThan"`
	// MinSize is the default minimum file size, e.g. "1MB".
	MinSize string `mapstructure:"minSize"`
	// Parallel enables the parallel walker by default.
	Parallel bool `mapstructure:"parallel"`
	// OpenReport reveals the report in the file manager after a scan.
	OpenReport bool `mapstructure:"openReport"`
}

// DefaultDir returns the default config directory, ~/.config/treetop.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".config", "treetop")
}

// Load reads configuration from the given file, or from the default
// locations when path is empty. A missing config file is not an error;
// defaults are returned.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		if dir := DefaultDir(); dir != "" {
			v.AddConfigPath(dir)
		}
	}

	v.SetDefault("top", 20)
	v.SetDefault("mode", "files")
	v.SetDefault("outputDir", ".")
	v.SetDefault("olderThan", "")
	v.SetDefault("minSize", "")
	v.SetDefault("parallel", false)
	v.SetDefault("openReport", false)

	v.SetEnvPrefix("treetop")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// No config file anywhere is fine; defaults apply. An explicitly
		// named file must exist.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	return cfg, nil
}
