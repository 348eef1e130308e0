package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"moff.io/ual-tokenpocket/internal/chains"
)

func TestLoadBundledConfig(t *testing.T) {
	cfg, err := Load("config.yml")
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.LogLevel)
	assert.Equal(t, 500*time.Millisecond, cfg.TokenPocket.CheckInterval)
	assert.Equal(t, 10, cfg.TokenPocket.NumChecks)
	assert.Equal(t, []string{chains.EOSMainnetID}, cfg.TokenPocket.SupportedChains)
	require.Len(t, cfg.Chains, 1)
	assert.Equal(t, chains.EOSMainnetID, cfg.Chains[0].ChainID)
	assert.Equal(t, 443, cfg.Chains[0].RPCEndpoints[0].Port)
	assert.Contains(t, cfg.UserAgent, "iPhone")
	assert.Equal(t, 2, cfg.BridgeConnectAfter)
	assert.Equal(t, time.Minute, cfg.Reporters.ReportSilence)
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse([]byte("chains: []\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.LogLevel)
	assert.Equal(t, time.Minute, cfg.Reporters.ReportSilence)

	opts := cfg.TokenPocket.Options()
	assert.Zero(t, opts.CheckInterval)
	assert.Nil(t, opts.SupportedChains)
}

func TestTokenPocketOptions(t *testing.T) {
	section := TokenPocket{
		CheckInterval:   time.Second,
		NumChecks:       3,
		SupportedChains: []string{"abc", chains.EOSMainnetID},
		OnboardingLink:  "https://example.org",
	}
	opts := section.Options()
	assert.Equal(t, time.Second, opts.CheckInterval)
	assert.Equal(t, 3, opts.NumChecks)
	assert.Equal(t, "https://example.org", opts.OnboardingLink)
	assert.True(t, opts.SupportedChains.Contains("abc"))
	assert.Equal(t, 2, opts.SupportedChains.Len())
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"LogLevel", "log_level: 7\n"},
		{"NegativeInterval", "tokenpocket:\n  check_interval: -1s\n"},
		{"NegativeChecks", "tokenpocket:\n  num_checks: -2\n"},
		{"BlankChain", "chains:\n  - chain_id: \"\"\n"},
		{"UnknownField", "colour: blue\n"},
		{"BadDuration", "tokenpocket:\n  check_interval: soon\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.yml")
	_, err := Load(missing)
	assert.EqualError(t, err, "file "+missing+" does not exist")

	path := filepath.Join(t.TempDir(), "broken.yml")
	require.NoError(t, os.WriteFile(path, []byte("tokenpocket: ["), 0o600))
	_, err = Load(path)
	assert.Error(t, err)
}
