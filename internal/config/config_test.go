package config

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/covgate/internal/domain/model"
)

// allConfigKeys lists every env var that Load() reads.
var allConfigKeys = []string{
	"COVGATE_GITHUB_TOKEN",
	"COVGATE_REPO",
	"COVGATE_PR_NUMBER",
	"GITHUB_TOKEN",
	"GITHUB_REPOSITORY",
	"PR_NUMBER",
}

// isolateConfigEnv saves and unsets all config env vars so tests don't
// inherit values from the host environment (e.g. a real CI runner).
// t.Cleanup restores original values after the test.
func isolateConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range allConfigKeys {
		if orig, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, orig) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}

func TestLoad_Success(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("COVGATE_GITHUB_TOKEN", "ghp_test123")
	t.Setenv("COVGATE_REPO", "acme/widgets")
	t.Setenv("COVGATE_PR_NUMBER", "42")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "ghp_test123", cfg.GitHubToken)
	assert.Equal(t, "acme/widgets", cfg.Repo)
	assert.Equal(t, 42, cfg.PRNumber)
}

func TestLoad_ActionsFallbacks(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("GITHUB_TOKEN", "ghp_actions")
	t.Setenv("GITHUB_REPOSITORY", "acme/widgets")
	t.Setenv("PR_NUMBER", "7")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "ghp_actions", cfg.GitHubToken)
	assert.Equal(t, "acme/widgets", cfg.Repo)
	assert.Equal(t, 7, cfg.PRNumber)
}

func TestLoad_PrefixedOverridesFallback(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("GITHUB_TOKEN", "ghp_actions")
	t.Setenv("COVGATE_GITHUB_TOKEN", "ghp_override")
	t.Setenv("COVGATE_REPO", "acme/widgets")
	t.Setenv("COVGATE_PR_NUMBER", "7")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "ghp_override", cfg.GitHubToken)
}

func TestLoad_MissingValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "no token", env: map[string]string{
			"COVGATE_REPO": "acme/widgets", "COVGATE_PR_NUMBER": "1",
		}},
		{name: "no repo", env: map[string]string{
			"COVGATE_GITHUB_TOKEN": "t", "COVGATE_PR_NUMBER": "1",
		}},
		{name: "no pr number", env: map[string]string{
			"COVGATE_GITHUB_TOKEN": "t", "COVGATE_REPO": "acme/widgets",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateConfigEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()

			require.Error(t, err)
			assert.True(t, errors.Is(err, model.ErrValidation))
		})
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "repo without owner", key: "COVGATE_REPO", val: "widgets"},
		{name: "repo empty owner", key: "COVGATE_REPO", val: "/widgets"},
		{name: "pr number not numeric", key: "COVGATE_PR_NUMBER", val: "abc"},
		{name: "pr number zero", key: "COVGATE_PR_NUMBER", val: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateConfigEnv(t)
			t.Setenv("COVGATE_GITHUB_TOKEN", "t")
			t.Setenv("COVGATE_REPO", "acme/widgets")
			t.Setenv("COVGATE_PR_NUMBER", "1")
			t.Setenv(tt.key, tt.val)

			_, err := Load()

			require.Error(t, err)
			assert.True(t, errors.Is(err, model.ErrValidation))
		})
	}
}
