package config

import "time"

// Config holds runtime settings for the Crack CLI.
//
// Fields:
//   - DatabasePath: filesystem path of the local SQLite database.
//   - PaymentConfirmDelay: simulated payment-gateway latency applied before a
//     top-up is confirmed.
type Config struct {
	DatabasePath        string
	PaymentConfirmDelay time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "crack.db"
	c.PaymentConfirmDelay = 0
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
