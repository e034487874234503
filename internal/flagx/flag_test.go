package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "separate value is kept with its flag",
			args:         []string{"-c", "conf.json", "-b", "graphql"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c", "conf.json"},
		},
		{
			name:         "equals form is kept whole",
			args:         []string{"--config=alt.json", "-b", "graphql"},
			allowedFlags: []string{"--config"},
			want:         []string{"--config=alt.json"},
		},
		{
			name:         "foreign flags are dropped",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
		{
			name:         "dash-starting token is not consumed as a value",
			args:         []string{"-c", "-b"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c"},
		},
		{
			name:         "trailing flag without value survives",
			args:         []string{"-c"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c"},
		},
		{
			name:         "several allowed flags keep their order",
			args:         []string{"-a", "http://localhost:8085/api", "-c", "conf.json", "--other", "x"},
			allowedFlags: []string{"-c", "-a"},
			want:         []string{"-a", "http://localhost:8085/api", "-c", "conf.json"},
		},
		{
			name:         "repeated flag stays repeated",
			args:         []string{"-c", "one.json", "-c", "two.json"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c", "one.json", "-c", "two.json"},
		},
		{
			name:         "empty input gives empty output",
			args:         []string{},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("short form", func(t *testing.T) {
		os.Args = []string{"mvault", "-c", "/path/short.json"}
		require.Equal(t, "/path/short.json", JsonConfigFlags())
	})

	t.Run("long form", func(t *testing.T) {
		os.Args = []string{"mvault", "-config", "/path/long.json"}
		require.Equal(t, "/path/long.json", JsonConfigFlags())
	})

	t.Run("absent means empty", func(t *testing.T) {
		os.Args = []string{"mvault", "-b", "graphql"}
		require.Empty(t, JsonConfigFlags())
	})

	t.Run("last occurrence wins", func(t *testing.T) {
		os.Args = []string{"mvault", "-c", "/path/1.json", "-config", "/path/2.json"}
		require.Equal(t, "/path/2.json", JsonConfigFlags())
	})
}
