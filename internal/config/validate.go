package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate checks the configuration for values the dashboard cannot run
// with. Call after applyDefaults.
func (c *Config) Validate() error {
	if c.Server.Listen == "" {
		return fmt.Errorf("server.listen is required")
	}

	if c.Zora.BaseURL == "" {
		return fmt.Errorf("zora.base_url is required")
	}
	u, err := url.Parse(c.Zora.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("zora.base_url %q is not a valid URL", c.Zora.BaseURL)
	}
	if c.Zora.Timeout <= 0 {
		return fmt.Errorf("zora.timeout must be positive, got %v", c.Zora.Timeout)
	}

	if c.Stream.URL != "" {
		su, err := url.Parse(c.Stream.URL)
		if err != nil || su.Scheme == "" || su.Host == "" {
			return fmt.Errorf("stream.url %q is not a valid URL", c.Stream.URL)
		}
	}
	if c.Stream.PingTimeout <= 0 {
		return fmt.Errorf("stream.ping_timeout must be positive, got %v", c.Stream.PingTimeout)
	}
	if c.Stream.WriteTimeout <= 0 {
		return fmt.Errorf("stream.write_timeout must be positive, got %v", c.Stream.WriteTimeout)
	}
	if c.Stream.BufferSize < 1 {
		return fmt.Errorf("stream.buffer_size must be at least 1, got %d", c.Stream.BufferSize)
	}

	if c.Alerts.MinUSD < 0 {
		return fmt.Errorf("alerts.min_usd must not be negative, got %v", c.Alerts.MinUSD)
	}
	if c.Alerts.BufferCap < 1 {
		return fmt.Errorf("alerts.buffer_cap must be at least 1, got %d", c.Alerts.BufferCap)
	}
	if c.Alerts.DisplayCap < c.Alerts.BufferCap {
		return fmt.Errorf("alerts.display_cap (%d) must be at least alerts.buffer_cap (%d)",
			c.Alerts.DisplayCap, c.Alerts.BufferCap)
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level)
	}

	return nil
}
