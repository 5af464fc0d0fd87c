package config

import "time"

// Default values applied to any field left unset.
const (
	DefaultListen       = ":8080"
	DefaultBaseURL      = "https://api-sdk.zora.engineering"
	DefaultTimeout      = 30 * time.Second
	DefaultPingTimeout  = 60 * time.Second
	DefaultWriteTimeout = 5 * time.Second
	DefaultBufferSize   = 256
	DefaultMinUSD       = 1000
	DefaultBufferCap    = 20
	DefaultDisplayCap   = 50
	DefaultLogLevel     = "info"
)

func (c *Config) applyDefaults() {
	if c.Server.Listen == "" {
		c.Server.Listen = DefaultListen
	}
	if c.Zora.BaseURL == "" {
		c.Zora.BaseURL = DefaultBaseURL
	}
	if c.Zora.Timeout == 0 {
		c.Zora.Timeout = DefaultTimeout
	}
	if c.Stream.PingTimeout == 0 {
		c.Stream.PingTimeout = DefaultPingTimeout
	}
	if c.Stream.WriteTimeout == 0 {
		c.Stream.WriteTimeout = DefaultWriteTimeout
	}
	if c.Stream.BufferSize == 0 {
		c.Stream.BufferSize = DefaultBufferSize
	}
	if c.Alerts.MinUSD == 0 {
		c.Alerts.MinUSD = DefaultMinUSD
	}
	if c.Alerts.BufferCap == 0 {
		c.Alerts.BufferCap = DefaultBufferCap
	}
	if c.Alerts.DisplayCap == 0 {
		c.Alerts.DisplayCap = DefaultDisplayCap
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}
