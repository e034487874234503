package config

import "time"

// Backend selects which remote data gateway implementation the client uses.
type Backend string

const (
	BackendREST    Backend = "rest"
	BackendGraphQL Backend = "graphql"
)

// Config holds runtime settings for the MediaVault client.
//
// Fields:
//   - Backend: remote gateway flavor, "rest" or "graphql".
//   - RESTBaseURL: base URL of the REST API; also used for multipart uploads
//     in the GraphQL flavor (binary payloads bypass the query language).
//   - GraphQLEndpoint: URL of the GraphQL endpoint.
//   - SessionToken: bearer token identifying the session; the user id is
//     derived from its "sub" claim.
//   - DatabasePath: path of the local SQLite database holding the mutation
//     cache.
//   - RequestTimeout: client-side deadline applied to every remote call.
type Config struct {
	Backend         Backend
	RESTBaseURL     string
	GraphQLEndpoint string
	SessionToken    string
	DatabasePath    string
	RequestTimeout  time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.Backend = BackendREST
	c.RESTBaseURL = "http://127.0.0.1:8085/api"
	c.GraphQLEndpoint = "http://127.0.0.1:8080/graphql"
	c.DatabasePath = "mediavault.db"
	c.RequestTimeout = 30 * time.Second
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
