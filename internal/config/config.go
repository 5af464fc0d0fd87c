// Package config loads and validates the dashboard configuration.
package config

import "time"

// Config is the root configuration for a zora-dash instance.
type Config struct {
	Server Server `yaml:"server"`
	Zora   Zora   `yaml:"zora"`
	Stream Stream `yaml:"stream"`
	Alerts Alerts `yaml:"alerts"`
	Log    Log    `yaml:"log"`
}

// Server holds the presentation API settings.
type Server struct {
	Listen string `yaml:"listen"` // e.g. ":8080"
}

// Zora holds remote API settings.
type Zora struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// Stream holds live channel settings.
type Stream struct {
	URL          string        `yaml:"url"` // optional override; derived from base_url when empty
	PingTimeout  time.Duration `yaml:"ping_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	BufferSize   int           `yaml:"buffer_size"`
}

// Alerts holds whale alert settings.
type Alerts struct {
	MinUSD     float64 `yaml:"min_usd"`
	BufferCap  int     `yaml:"buffer_cap"`
	DisplayCap int     `yaml:"display_cap"`
}

// Log holds logging settings.
type Log struct {
	Level string `yaml:"level"` // debug, info, warn, error
}
