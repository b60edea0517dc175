package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const envPrefix = "ORGANISER"

type Config struct {
	// TreeFile is an optional .json/.yaml tree loaded at startup; empty means the demo tree.
	TreeFile string `mapstructure:"tree_file" yaml:"tree_file" json:"treeFile"`
	// JournalPath is the SQLite drag journal; empty disables journaling.
	JournalPath string `mapstructure:"journal_path" yaml:"journal_path" json:"journalPath"`
	LogLevel    string `mapstructure:"log_level" yaml:"log_level" json:"logLevel"`
	LogFile     string `mapstructure:"log_file" yaml:"log_file" json:"logFile"`
	Format      string `mapstructure:"format" yaml:"format" json:"format"`
	Theme       string `mapstructure:"theme" yaml:"theme" json:"theme"`
	Indent      int    `mapstructure:"indent" yaml:"indent" json:"indent"`

	// Source is the config file that was read, if any.
	Source string `mapstructure:"-" yaml:"-" json:"source,omitempty"`
}

// Dir returns the config directory. ORGANISER_CONFIG_DIR overrides it so tests never touch
// the real home directory.
func Dir() (string, error) {
	if v := strings.TrimSpace(os.Getenv(envPrefix + "_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "organiser"), nil
}

func setDefaults(v *viper.Viper, dir string) {
	v.SetDefault("tree_file", "")
	v.SetDefault("journal_path", filepath.Join(dir, "journal.sqlite"))
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_file", "")
	v.SetDefault("format", "json")
	v.SetDefault("theme", "auto")
	v.SetDefault("indent", 2)
}

// Load reads configuration from cfgFile (or <Dir>/config.yaml when empty) and ORGANISER_*
// environment variables. A missing default config file is not an error.
func Load(cfgFile string) (Config, error) {
	dir, err := Dir()
	if err != nil {
		return Config{}, err
	}

	v := viper.New()
	setDefaults(v, dir)
	if strings.TrimSpace(cfgFile) != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(dir)
		v.SetConfigType("yaml")
		v.SetConfigName("config")
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if strings.TrimSpace(cfgFile) != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.Source = v.ConfigFileUsed()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	switch c.Format {
	case "json", "edn", "yaml":
	default:
		return fmt.Errorf("invalid format %q (json|edn|yaml)", c.Format)
	}
	switch c.Theme {
	case "auto", "light", "dark":
	default:
		return fmt.Errorf("invalid theme %q (auto|light|dark)", c.Theme)
	}
	if c.Indent < 1 || c.Indent > 8 {
		return fmt.Errorf("indent must be between 1 and 8; got %d", c.Indent)
	}
	return nil
}
