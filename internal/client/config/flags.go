package config

import (
	"flag"
	"os"

	"github.com/ondoapp/ondo-cli/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the backend server (default from Config)
//	-p string   platform class: android, ios or other
//	-d string   DSN of the local credential database
//
// Note: The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other
// components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-p", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointURL, "a", cfg.ServerEndpointURL, "base URL of the backend server")
	fs.StringVar(&cfg.Platform, "p", cfg.Platform, "platform class (android, ios, other)")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "local credential database DSN")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
