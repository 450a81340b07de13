package config

import "time"

// Config holds runtime settings for the forum CLI.
//
// Timeouts are fixed per transport: the general API answers quickly, the
// image-upload endpoint gets a longer budget. No per-call overrides exist.
type Config struct {
	APIBaseURL    string
	PicBaseURL    string
	WebOrigin     string
	APITimeout    time.Duration
	UploadTimeout time.Duration
	CredentialDB  string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://qnhd.twt.edu.cn/api/v1/f/"
	c.PicBaseURL = "https://qnhdpic.twt.edu.cn/"
	c.WebOrigin = "https://qnhd.twt.edu.cn"
	c.APITimeout = 10 * time.Second
	c.UploadTimeout = 15 * time.Second
	c.CredentialDB = "lakecli.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
