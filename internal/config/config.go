package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"
)

// Config represents the global ~/.rolodex/config.toml. Every key can be
// overridden from the environment.
type Config struct {
	DefaultProfile     string `toml:"default_profile" env:"ROLODEX_PROFILE"`
	DefaultTheme       string `toml:"default_theme" env:"ROLODEX_THEME"`
	AvatarBaseURL      string `toml:"avatar_base_url" env:"ROLODEX_AVATAR_BASE_URL"`
	DefaultCountryCode string `toml:"default_country_code" env:"ROLODEX_COUNTRY_CODE"`
	Locale             string `toml:"locale" env:"ROLODEX_LOCALE"`
	LogLevel           string `toml:"log_level" env:"ROLODEX_LOG_LEVEL"`
}

// Defaults returns the configuration used when nothing is set.
func Defaults() *Config {
	return &Config{
		DefaultTheme:       "dark",
		AvatarBaseURL:      "https://ui-avatars.com/api/",
		DefaultCountryCode: "+91",
		Locale:             "en",
		LogLevel:           "info",
	}
}

// Load reads config from the given path. Returns nil config and error if file missing.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Resolve layers defaults, the file at path (optional) and the environment.
func Resolve(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg, err = Defaults(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Tag returns the collation locale, falling back to the root locale.
func (c *Config) Tag() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Und
	}
	return tag
}

// Save writes config to the given path, creating parent dirs as needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	encErr := toml.NewEncoder(f).Encode(cfg)
	if closeErr := f.Close(); closeErr != nil && encErr == nil {
		return closeErr
	}
	return encErr
}
