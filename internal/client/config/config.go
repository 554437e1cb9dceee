package config

import "time"

// Config holds runtime settings for the bioadmin CLI.
//
// Fields:
//   - ServerEndpointAddr: base URL of the platform API, e.g. "https://10.0.0.5".
//   - RequestTimeout: end-to-end bound for a single API request.
//   - PageSize: default page size for directory listings.
//   - InsecureSkipVerify: disable TLS certificate verification (self-signed
//     appliance certificates only).
type Config struct {
	ServerEndpointAddr string
	RequestTimeout     time.Duration
	PageSize           int
	InsecureSkipVerify bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "https://127.0.0.1"
	c.RequestTimeout = 15 * time.Second
	c.PageSize = 50
	c.InsecureSkipVerify = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
