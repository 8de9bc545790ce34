package config

import (
	"flag"
	"os"

	"github.com/sigerhq/fieldreport/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   API base URL (default from Config)
//	-u string   user id placeholder
//	-d string   local database path
//
// The function filters os.Args to only the flags it knows about, using
// flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-u", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the SIGER API")
	fs.StringVar(&cfg.UserID, "u", cfg.UserID, "user id to report as")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local database")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
