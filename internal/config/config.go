// Package config loads synchronizer configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ericfisherdev/covgate/internal/domain/model"
)

// Config holds the credentials and pull-request coordinates the comment
// synchronizer needs. It is built once at the entry point and passed by
// parameter; nothing reads the environment after Load returns.
type Config struct {
	GitHubToken string
	Repo        string // "owner/name"
	PRNumber    int
}

// Load reads COVGATE_GITHUB_TOKEN, COVGATE_REPO and COVGATE_PR_NUMBER, with
// the GitHub Actions defaults GITHUB_TOKEN, GITHUB_REPOSITORY and PR_NUMBER
// as fallbacks. All three values are required; absence is a configuration
// error surfaced before any network call.
func Load() (*Config, error) {
	token := firstEnv("COVGATE_GITHUB_TOKEN", "GITHUB_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("%w: COVGATE_GITHUB_TOKEN (or GITHUB_TOKEN) is not set", model.ErrValidation)
	}

	repo := firstEnv("COVGATE_REPO", "GITHUB_REPOSITORY")
	if repo == "" {
		return nil, fmt.Errorf("%w: COVGATE_REPO (or GITHUB_REPOSITORY) is not set", model.ErrValidation)
	}
	parts := strings.SplitN(repo, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, fmt.Errorf("%w: repo %q must be owner/name", model.ErrValidation, repo)
	}

	raw := firstEnv("COVGATE_PR_NUMBER", "PR_NUMBER")
	if raw == "" {
		return nil, fmt.Errorf("%w: COVGATE_PR_NUMBER (or PR_NUMBER) is not set", model.ErrValidation)
	}
	prNumber, err := strconv.Atoi(raw)
	if err != nil || prNumber <= 0 {
		return nil, fmt.Errorf("%w: pull request number %q must be a positive integer", model.ErrValidation, raw)
	}

	return &Config{
		GitHubToken: token,
		Repo:        repo,
		PRNumber:    prNumber,
	}, nil
}

// LoadPRContext returns the repo and PR number from the environment without
// requiring a token, for callers that only key local state by them (the
// coverage history). Missing values come back as "" and 0.
func LoadPRContext() (string, int) {
	repo := firstEnv("COVGATE_REPO", "GITHUB_REPOSITORY")
	prNumber, _ := strconv.Atoi(firstEnv("COVGATE_PR_NUMBER", "PR_NUMBER"))
	if prNumber < 0 {
		prNumber = 0
	}
	return repo, prNumber
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v
		}
	}
	return ""
}
