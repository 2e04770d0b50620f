package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	base := Config{APIBaseURL: "http://x/api/auth", OnlineCheckInterval: 1500 * time.Millisecond}

	tests := []struct {
		expected *Config
		name     string
		args     []string
		wantErr  bool
	}{
		{name: "all flags", args: []string{"-a", "http://10.0.0.1:9000/api/auth", "-d", "/tmp/ac", "-i", "10", "-s", "memory", "-l", "debug"},
			expected: &Config{APIBaseURL: "http://10.0.0.1:9000/api/auth", DataDir: "/tmp/ac", OnlineCheckInterval: 10 * time.Second, Storage: "memory", LogLevel: "debug"}},
		{name: "interval untouched without -i", args: []string{"-s", "redis"},
			expected: &Config{APIBaseURL: "http://x/api/auth", OnlineCheckInterval: 1500 * time.Millisecond, Storage: "redis"}},
		{name: "foreign flags ignored", args: []string{"-c", "cfg.json", "-a", "http://y/api/auth"},
			expected: &Config{APIBaseURL: "http://y/api/auth", OnlineCheckInterval: 1500 * time.Millisecond}},
		{name: "incorrect check interval", args: []string{"-i", "abc"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withArgs(t, tt.args...)

			cfg := base
			err := parseFlags(&cfg)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.expected, &cfg))
		})
	}
}
