package config

import (
	"flag"
	"os"

	"github.com/lakeforum/lakecli/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-p", "-o", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the general API")
	fs.StringVar(&cfg.PicBaseURL, "p", cfg.PicBaseURL, "base URL of the image-upload API")
	fs.StringVar(&cfg.WebOrigin, "o", cfg.WebOrigin, "web origin for presenting image links")
	fs.StringVar(&cfg.CredentialDB, "d", cfg.CredentialDB, "path of the credential database")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
