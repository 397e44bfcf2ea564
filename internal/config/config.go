package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port           string
	GitHubToken    string
	APIBaseURL     string
	RequestTimeout time.Duration
	PageSize       int
	DefaultOwner   string
	DefaultRepo    string
	LogLevel       string
}

func Load() (*Config, error) {
	port := getEnv("PORT", "8080")
	githubToken := getEnv("GITHUB_TOKEN", "")
	apiBaseURL := getEnv("GITHUB_API_BASE_URL", "https://api.github.com")
	defaultOwner := getEnv("DEFAULT_OWNER", "pandas-dev")
	defaultRepo := getEnv("DEFAULT_REPO", "pandas")
	logLevel := getEnv("LOG_LEVEL", "info")

	timeoutSeconds, err := strconv.Atoi(getEnv("REQUEST_TIMEOUT_SECONDS", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid REQUEST_TIMEOUT_SECONDS: %w", err)
	}

	pageSize, err := strconv.Atoi(getEnv("COMMIT_PAGE_SIZE", "100"))
	if err != nil {
		return nil, fmt.Errorf("invalid COMMIT_PAGE_SIZE: %w", err)
	}
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	return &Config{
		Port:           port,
		GitHubToken:    githubToken,
		APIBaseURL:     apiBaseURL,
		RequestTimeout: time.Duration(timeoutSeconds) * time.Second,
		PageSize:       pageSize,
		DefaultOwner:   defaultOwner,
		DefaultRepo:    defaultRepo,
		LogLevel:       logLevel,
	}, nil
}

// GitHub returns the client configuration derived from the loaded values.
func (c *Config) GitHub() *GitHubConfig {
	gh := DefaultGitHubConfig()
	gh.Token = c.GitHubToken
	if c.APIBaseURL != "" {
		gh.APIBaseURL = c.APIBaseURL
	}
	if c.RequestTimeout > 0 {
		gh.RequestTimeout = c.RequestTimeout
	}
	if c.PageSize > 0 {
		gh.PerPage = c.PageSize
	}
	return gh
}

// Dashboard returns the dashboard configuration derived from the loaded values.
func (c *Config) Dashboard() *DashboardConfig {
	d := DefaultDashboardConfig()
	if c.DefaultOwner != "" {
		d.DefaultOwner = c.DefaultOwner
	}
	if c.DefaultRepo != "" {
		d.DefaultRepo = c.DefaultRepo
	}
	return d
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
