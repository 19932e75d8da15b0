// Package config loads btcrpc settings from a file, BTCRPC_* environment
// variables and command line flags, in increasing order of precedence.
package config

import (
	"net/url"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const EnvPrefix = "BTCRPC"

// DefaultURL is the mainnet RPC endpoint of a local node.
const DefaultURL = "http://127.0.0.1:8332/"

// CookieUser is the user name Bitcoin Core writes into its cookie file.
const CookieUser = "__cookie__"

type Config struct {
	URL        string  `mapstructure:"url"`
	User       string  `mapstructure:"user"`
	Password   string  `mapstructure:"password"`
	CookieFile string  `mapstructure:"cookie_file"`
	RateLimit  float64 `mapstructure:"rate_limit"`
	RateBurst  int     `mapstructure:"rate_burst"`
	Log        Log     `mapstructure:"log"`
}

type Log struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json_format"`
	// File enables a rotating log file instead of stderr.
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
}

var keys = []string{
	"url", "user", "password", "cookie_file", "rate_limit", "rate_burst",
	"log.level", "log.json_format", "log.file", "log.max_size_mb", "log.max_backups",
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("url", DefaultURL)
	v.SetDefault("rate_burst", 1)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 5)
}

// Load reads the optional config file at path into v, then decodes v with
// environment overrides applied. Flags bound to v before Load take
// precedence over both.
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, k := range keys {
		if err := v.BindEnv(k); err != nil {
			return nil, errors.Wrapf(err, "config: binding %s", k)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "config: reading %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "config: decoding")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.URL == "" {
		return errors.New("config: url required")
	}
	u, err := url.Parse(cfg.URL)
	if err != nil {
		return errors.Wrap(err, "config: url")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.Errorf("config: url scheme must be http or https, got %q", u.Scheme)
	}
	if cfg.User != "" && cfg.CookieFile != "" {
		return errors.New("config: user and cookie_file are mutually exclusive")
	}
	if cfg.RateLimit < 0 {
		return errors.New("config: rate_limit must not be negative")
	}
	if cfg.RateLimit > 0 && cfg.RateBurst < 1 {
		return errors.New("config: rate_burst must be at least 1 when rate_limit is set")
	}
	return nil
}

// Credentials returns the basic auth pair, reading the cookie file when one
// is configured. An empty user means no authentication.
func (cfg *Config) Credentials() (user, password string, err error) {
	if cfg.CookieFile == "" {
		return cfg.User, cfg.Password, nil
	}
	b, err := os.ReadFile(cfg.CookieFile)
	if err != nil {
		return "", "", errors.Wrap(err, "config: reading cookie")
	}
	user, password, ok := strings.Cut(strings.TrimSpace(string(b)), ":")
	if !ok || user == "" {
		return "", "", errors.Errorf("config: malformed cookie file %s", cfg.CookieFile)
	}
	return user, password, nil
}
