package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/wordbridge/internal/flagx"
)

// parseFlags overlays Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string     HTTP bind address (e.g., ":8080")
//	-d string     database DSN
//	-n string     database name (Mongo)
//	-u string     translation API URL
//	-k string     translation API key
//	-t duration   translation call timeout
//	-s duration   store call timeout
//	-b int        bcrypt cost
//	-l string     log level
//	-o string     comma-separated CORS origins
//
// Unknown flags (such as -c or -env) are filtered out first with flagx.FilterArgs.
func parseFlags(config *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-d", "-n", "-u", "-k", "-t", "-s", "-b", "-l", "-o"})

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.DatabaseName, "n", config.DatabaseName, "database name")
	fs.StringVar(&config.TranslateAPIURL, "u", config.TranslateAPIURL, "translation API URL")
	fs.StringVar(&config.TranslateAPIKey, "k", config.TranslateAPIKey, "translation API key")
	fs.DurationVar(&config.TranslateTimeout, "t", config.TranslateTimeout, "translation call timeout")
	fs.DurationVar(&config.StoreTimeout, "s", config.StoreTimeout, "store call timeout")
	fs.IntVar(&config.BcryptCost, "b", config.BcryptCost, "bcrypt cost")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	origins := fs.String("o", "", "comma-separated CORS origins")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *origins != "" {
		config.AllowedOrigins = splitList(*origins)
	}

	return nil
}
