package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/wordbridge/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
// Only -a and -t are considered; everything else is filtered out first.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-t"})

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "base URL of the WordBridge API")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "request timeout")

	return fs.Parse(args)
}
