package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	APIURL         string `json:"api_url" mapstructure:"api_url"`
	TCPMultiaddr   string `json:"tcp_multiaddr" mapstructure:"tcp_multiaddr"`
	RequestTimeout int    `json:"request_timeout_seconds" mapstructure:"request_timeout_seconds"`
}

func DefaultConfig() *Config {
	return &Config{
		APIURL:         "http://localhost:9181/api/v0/",
		TCPMultiaddr:   "localhost:9161",
		RequestTimeout: 30,
	}
}

func Load() (*Config, error) {
	var cfg Config

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	defaults := DefaultConfig()
	if cfg.APIURL == "" {
		cfg.APIURL = defaults.APIURL
	}
	if cfg.TCPMultiaddr == "" {
		cfg.TCPMultiaddr = defaults.TCPMultiaddr
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaults.RequestTimeout
	}

	// The API root is used as a base for relative endpoint paths, so it
	// has to end with a slash.
	if !strings.HasSuffix(cfg.APIURL, "/") {
		cfg.APIURL += "/"
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.APIURL == "" {
		return fmt.Errorf("api_url cannot be empty")
	}
	u, err := url.Parse(c.APIURL)
	if err != nil {
		return fmt.Errorf("invalid api_url %q: %w", c.APIURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("api_url must use http or https, got %q", c.APIURL)
	}
	if c.TCPMultiaddr == "" {
		return fmt.Errorf("tcp_multiaddr cannot be empty")
	}
	return nil
}

func (c *Config) Timeout() time.Duration {
	return time.Duration(c.RequestTimeout) * time.Second
}
