package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		expectPanic bool
		expected    *Config
	}{
		{
			name: "overrides backend, addr and timeout",
			args: []string{"cmd", "-b", "graphql", "-a", "http://127.0.0.1:9090/api", "-i", "10"},
			expected: &Config{
				Backend:        BackendGraphQL,
				RESTBaseURL:    "http://127.0.0.1:9090/api",
				RequestTimeout: 10 * time.Second,
			},
		},
		{
			name:        "incorrect timeout",
			args:        []string{"cmd", "-i", "abc"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)

			origArgs := os.Args
			t.Cleanup(func() { os.Args = origArgs })
			os.Args = tt.args

			config := &Config{}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config) })
				return
			}

			require.NotPanics(t, func() { parseFlags(config) })
			assert.Equal(t, tt.expected.Backend, config.Backend)
			assert.Equal(t, tt.expected.RESTBaseURL, config.RESTBaseURL)
			assert.Equal(t, tt.expected.RequestTimeout, config.RequestTimeout)
		})
	}
}
