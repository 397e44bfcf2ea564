package config

import "time"

// MaxPageSize is the largest page the GitHub commits endpoint serves.
const MaxPageSize = 100

// GitHubConfig holds GitHub client configuration
type GitHubConfig struct {
	Token          string
	APIBaseURL     string
	RequestTimeout time.Duration
	PerPage        int
	UserAgent      string
}

// DefaultGitHubConfig returns the default GitHub client configuration
func DefaultGitHubConfig() *GitHubConfig {
	return &GitHubConfig{
		APIBaseURL:     "https://api.github.com",
		RequestTimeout: 10 * time.Second,
		PerPage:        100,
		UserAgent:      "repo-pulse",
	}
}
