package config

import (
	"encoding/json"
	"errors"
	"os"
	"time"

	"github.com/dmitrijs2005/mediavault/internal/flagx"
)

// jsonDuration lets JSON specify intervals either as strings like "30s" or as
// integer nanoseconds.
type jsonDuration struct {
	time.Duration
}

func (d *jsonDuration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		d.Duration = parsed
		return nil
	default:
		return errors.New("invalid duration")
	}
}

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Values are
// copied into the runtime Config after parsing.
type JsonConfig struct {
	Backend         string       `json:"backend"`
	RESTBaseURL     string       `json:"rest_base_url"`
	GraphQLEndpoint string       `json:"graphql_endpoint"`
	SessionToken    string       `json:"session_token"`
	DatabasePath    string       `json:"database_path"`
	RequestTimeout  jsonDuration `json:"request_timeout"`
}

// parseJson overlays Config with values loaded from a JSON file whose path is
// taken from the -c/-config flags. A missing flag means no JSON is loaded.
// Empty JSON fields leave the current value untouched, so the intended
// layering is: defaults -> parseJson -> parseFlags.
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

	if jc.Backend != "" {
		cfg.Backend = Backend(jc.Backend)
	}
	if jc.RESTBaseURL != "" {
		cfg.RESTBaseURL = jc.RESTBaseURL
	}
	if jc.GraphQLEndpoint != "" {
		cfg.GraphQLEndpoint = jc.GraphQLEndpoint
	}
	if jc.SessionToken != "" {
		cfg.SessionToken = jc.SessionToken
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
}
