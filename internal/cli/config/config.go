// Package config loads the CLI settings from ~/.lotaya/config.yaml with
// LOTAYA_* environment overrides.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	DefaultServerURL  = "http://localhost:8001"
	DefaultWebsiteURL = "http://localhost:4002"
	defaultTimeout    = "60s"
)

type Config struct {
	ServerURL  string   `mapstructure:"server_url" yaml:"server_url"`
	WebsiteURL string   `mapstructure:"website_url" yaml:"website_url"`
	Timeout    string   `mapstructure:"timeout" yaml:"timeout"`
	Output     string   `mapstructure:"output" yaml:"output"`
	Debug      bool     `mapstructure:"debug" yaml:"debug"`
	SentryDSN  string   `mapstructure:"sentry_dsn" yaml:"sentry_dsn,omitempty"`
	UI         UIConfig `mapstructure:"ui" yaml:"ui"`
}

type UIConfig struct {
	Color string `mapstructure:"color" yaml:"color"` // auto, always, never
	Theme string `mapstructure:"theme" yaml:"theme"` // glamour style for chat replies
}

func Load(path string) (*Config, error) {
	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		return defaults(), nil
	}
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaults() *Config {
	return &Config{
		ServerURL:  DefaultServerURL,
		WebsiteURL: DefaultWebsiteURL,
		Timeout:    defaultTimeout,
		Output:     "table",
		UI: UIConfig{
			Color: "auto",
			Theme: "dark",
		},
	}
}

// DiscoverPath resolves the config file: the flag value, then LOTAYA_CONFIG,
// then ~/.lotaya/config.yaml.
func DiscoverPath(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	if envPath := os.Getenv("LOTAYA_CONFIG"); envPath != "" {
		return envPath
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".lotaya", "config.yaml")
	}
	return filepath.Join(homeDir, ".lotaya", "config.yaml")
}

// LoadWithEnv reads path when it exists and applies LOTAYA_* overrides,
// e.g. LOTAYA_SERVER_URL or LOTAYA_UI_COLOR.
func LoadWithEnv(path string) (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix("LOTAYA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, key := range []string{
		"server_url", "website_url", "timeout", "output", "debug", "sentry_dsn",
		"ui.color", "ui.theme",
	} {
		_ = v.BindEnv(key)
	}

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	d := defaults()
	if cfg.ServerURL == "" {
		cfg.ServerURL = d.ServerURL
	}
	if cfg.WebsiteURL == "" {
		cfg.WebsiteURL = d.WebsiteURL
	}
	if cfg.Timeout == "" {
		cfg.Timeout = d.Timeout
	}
	if cfg.Output == "" {
		cfg.Output = d.Output
	}
	if cfg.UI.Color == "" {
		cfg.UI.Color = d.UI.Color
	}
	if cfg.UI.Theme == "" {
		cfg.UI.Theme = d.UI.Theme
	}
	return cfg, nil
}

// RequestTimeout parses Timeout, falling back to 60s.
func (c *Config) RequestTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return 60 * time.Second
	}
	return d
}

// UseColor decides whether styled output is wanted.
func (c *Config) UseColor(noColorFlag bool) bool {
	if noColorFlag || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return c.UI.Color != "never"
}
