// Package config loads runtime configuration for the forum CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the general API
//	-p string   base URL of the image-upload API
//	-o string   web origin used when presenting image links
//	-d string   path of the credential database
//
// # JSON schema
//
// The JSON loader uses timex.Duration for timeouts, so values can be either
// strings like "10s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "https://qnhd.twt.edu.cn/api/v1/f/",
//	  "pic_base_url": "https://qnhdpic.twt.edu.cn/",
//	  "web_origin": "https://qnhd.twt.edu.cn",
//	  "api_timeout": "10s",
//	  "upload_timeout": "15s",
//	  "credential_db": "lakecli.db"
//	}
//
// Primary API
//
//   - type Config                     — holds endpoints, timeouts and the credential db path
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
package config
