package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/lakeforum/lakecli/internal/flagx"
	"github.com/lakeforum/lakecli/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can spell timeouts either as strings like "10s" or
// as integer nanoseconds. After parsing, values are copied into the runtime
// Config.
type JsonConfig struct {
	APIBaseURL    string         `json:"api_base_url"`
	PicBaseURL    string         `json:"pic_base_url"`
	WebOrigin     string         `json:"web_origin"`
	APITimeout    timex.Duration `json:"api_timeout"`
	UploadTimeout timex.Duration `json:"upload_timeout"`
	CredentialDB  string         `json:"credential_db"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flags; when absent, nothing is loaded.
// Fields missing from the file keep their current values. Read or unmarshal
// errors panic (caller should recover if desired).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.PicBaseURL != "" {
		cfg.PicBaseURL = jc.PicBaseURL
	}
	if jc.WebOrigin != "" {
		cfg.WebOrigin = jc.WebOrigin
	}
	if jc.APITimeout.Duration != 0 {
		cfg.APITimeout = time.Duration(jc.APITimeout.Duration)
	}
	if jc.UploadTimeout.Duration != 0 {
		cfg.UploadTimeout = time.Duration(jc.UploadTimeout.Duration)
	}
	if jc.CredentialDB != "" {
		cfg.CredentialDB = jc.CredentialDB
	}
}
