// Package config loads the aria command configuration from aria.yaml and
// ARIA_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override ("ARIA_ANIMATED").
const EnvPrefix = "ARIA"

// Config is the resolved configuration.
type Config struct {
	Animated bool          `mapstructure:"animated" yaml:"animated"`
	IDs      IDsConfig     `mapstructure:"ids" yaml:"ids"`
	Log      LogConfig     `mapstructure:"log" yaml:"log"`
	Page     PageConfig    `mapstructure:"page" yaml:"page"`
	Labels   LabelsConfig  `mapstructure:"labels" yaml:"labels"`
	Preview  PreviewConfig `mapstructure:"preview" yaml:"preview"`

	// File is the config file that was read, empty when none was found.
	File string `mapstructure:"-" yaml:"-"`
}

// IDsConfig selects the identifier generator.
type IDsConfig struct {
	// Deterministic numbers ids in document order instead of using random
	// suffixes, so repeated runs produce identical output.
	Deterministic bool `mapstructure:"deterministic" yaml:"deterministic"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
}

// PageConfig describes the page being decorated.
type PageConfig struct {
	// Path is the page URL or path, used to mark the current breadcrumb.
	Path string `mapstructure:"path" yaml:"path"`
}

// LabelsConfig overrides widget button texts.
type LabelsConfig struct {
	ExpandAll   string `mapstructure:"expand_all" yaml:"expand_all"`
	CollapseAll string `mapstructure:"collapse_all" yaml:"collapse_all"`
}

// PreviewConfig holds settings for the interactive preview.
type PreviewConfig struct {
	// Tick is the interval between preview frames.
	Tick time.Duration `mapstructure:"tick" yaml:"tick"`
	// Duration is how long a simulated transition runs.
	Duration time.Duration `mapstructure:"duration" yaml:"duration"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("animated", true)
	v.SetDefault("ids.deterministic", false)
	v.SetDefault("log.level", "warn")
	v.SetDefault("page.path", "/")
	v.SetDefault("labels.expand_all", "Expand All")
	v.SetDefault("labels.collapse_all", "Collapse All")
	v.SetDefault("preview.tick", 50*time.Millisecond)
	v.SetDefault("preview.duration", 250*time.Millisecond)
}

// Load reads configuration. An explicit path must exist; otherwise
// $ARIA_CONFIG is tried, then aria.yaml in the working directory and in
// $HOME/.config/aria. A missing search-path file is not an error.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("yaml")

	if path == "" {
		path = os.Getenv(EnvPrefix + "_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("aria")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "aria"))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	c.File = v.ConfigFileUsed()
	if _, err := c.LogLevel(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// LogLevel parses Log.Level.
func (c Config) LogLevel() (logrus.Level, error) {
	lvl, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return 0, fmt.Errorf("invalid log.level %q: %w", c.Log.Level, err)
	}
	return lvl, nil
}

// YAML renders the configuration in aria.yaml form.
func (c Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}
