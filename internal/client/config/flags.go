package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/mediavault/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-b string   backend flavor: rest or graphql
//	-a string   base URL of the REST API
//	-g string   URL of the GraphQL endpoint
//	-t string   session token
//	-d string   path of the local cache database
//	-i int      request timeout in seconds
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-b", "-a", "-g", "-t", "-d", "-i"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	backend := fs.String("b", string(cfg.Backend), "backend flavor (rest|graphql)")
	fs.StringVar(&cfg.RESTBaseURL, "a", cfg.RESTBaseURL, "base URL of the REST API")
	fs.StringVar(&cfg.GraphQLEndpoint, "g", cfg.GraphQLEndpoint, "URL of the GraphQL endpoint")
	fs.StringVar(&cfg.SessionToken, "t", cfg.SessionToken, "session token")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local cache database")
	timeout := fs.Int("i", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.Backend = Backend(*backend)
	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
