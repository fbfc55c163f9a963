// Package config loads restock settings from file, environment and flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/tayloree/restock/internal/catalog"
	"github.com/tayloree/restock/internal/share"
	"github.com/tayloree/restock/internal/translate"
)

// EnvPrefix prefixes every environment override, e.g. RESTOCK_LIST_LANGUAGE.
const EnvPrefix = "RESTOCK"

// Config holds all configuration for the application.
type Config struct {
	List       ListConfig       `mapstructure:"list"`
	Share      ShareConfig      `mapstructure:"share"`
	Translate  TranslateConfig  `mapstructure:"translate"`
	Restaurant RestaurantConfig `mapstructure:"restaurant"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// ListConfig controls where the list lives and how it is shown.
type ListConfig struct {
	File         string `mapstructure:"file"`
	Language     string `mapstructure:"language"`
	QuantityMode bool   `mapstructure:"quantity_mode"`
}

// ShareConfig controls share links.
type ShareConfig struct {
	BaseURL      string        `mapstructure:"base_url"`
	Shorten      bool          `mapstructure:"shorten"`
	ShortenerURL string        `mapstructure:"shortener_url"`
	Timeout      time.Duration `mapstructure:"timeout"`
}

// TranslateConfig selects the translator for unknown products.
type TranslateConfig struct {
	Provider string        `mapstructure:"provider"`
	Endpoint string        `mapstructure:"endpoint"`
	APIKey   string        `mapstructure:"api_key"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// RestaurantConfig is printed at the top of the order sheet.
type RestaurantConfig struct {
	Name    string `mapstructure:"name"`
	Address string `mapstructure:"address"`
	Phone   string `mapstructure:"phone"`
}

// LoggingConfig holds slog settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Lang returns the parsed display language.
func (c ListConfig) Lang() catalog.Language {
	lang, _ := catalog.ParseLanguage(c.Language)
	return lang
}

// TranslatorOptions converts the section into translate.Options.
func (c TranslateConfig) TranslatorOptions() translate.Options {
	return translate.Options{
		Provider: c.Provider,
		Endpoint: c.Endpoint,
		APIKey:   c.APIKey,
		Timeout:  c.Timeout,
	}
}

// New returns a viper instance with defaults and environment bindings.
func New() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads cfgFile, or config.yaml from the standard locations when
// cfgFile is empty, and decodes the merged settings. A missing config file
// in the standard locations is not an error.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "restock"))
		}
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the rest of the program cannot act on.
func (c *Config) Validate() error {
	if _, ok := catalog.ParseLanguage(c.List.Language); !ok {
		return fmt.Errorf("invalid list.language %q (want es or fr)", c.List.Language)
	}
	if strings.TrimSpace(c.List.File) == "" {
		return errors.New("list.file must not be empty")
	}
	switch strings.ToLower(strings.TrimSpace(c.Translate.Provider)) {
	case "", translate.ProviderDictionary:
	case translate.ProviderRemote:
		if strings.TrimSpace(c.Translate.Endpoint) == "" {
			return errors.New("translate.endpoint is required for the remote provider")
		}
	default:
		return fmt.Errorf("invalid translate.provider %q (want %s or %s)",
			c.Translate.Provider, translate.ProviderDictionary, translate.ProviderRemote)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging.level %q", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("invalid logging.format %q", c.Logging.Format)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("list.file", defaultListFile())
	v.SetDefault("list.language", string(catalog.Spanish))
	v.SetDefault("list.quantity_mode", false)

	v.SetDefault("share.base_url", "https://restock.local/")
	v.SetDefault("share.shorten", true)
	v.SetDefault("share.shortener_url", share.DefaultShortenerURL)
	v.SetDefault("share.timeout", 10*time.Second)

	v.SetDefault("translate.provider", translate.ProviderDictionary)
	v.SetDefault("translate.endpoint", "")
	v.SetDefault("translate.api_key", "")
	v.SetDefault("translate.timeout", 5*time.Second)

	v.SetDefault("restaurant.name", "")
	v.SetDefault("restaurant.address", "")
	v.SetDefault("restaurant.phone", "")

	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")
}

func defaultListFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "restock-list.json"
	}
	return filepath.Join(home, ".local", "share", "restock", "list.json")
}
