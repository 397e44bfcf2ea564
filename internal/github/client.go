package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	"github.com/Kamar-Folarin/repo-pulse/internal/config"
	apperrors "github.com/Kamar-Folarin/repo-pulse/internal/errors"
	"github.com/Kamar-Folarin/repo-pulse/internal/models"
)

// Client is a GitHub REST API client scoped to the commit listing
// endpoint. It performs exactly one outbound request per call, with no
// retries and no caching.
type Client struct {
	client    *http.Client
	baseURL   string
	userAgent string
	perPage   int
	logger    *logrus.Logger
}

// NewClient creates a new GitHub client from the given configuration.
// When a token is configured, requests are authenticated through an
// oauth2 static token source; otherwise they go out anonymously.
func NewClient(cfg *config.GitHubConfig, logger *logrus.Logger) *Client {
	if cfg == nil {
		cfg = config.DefaultGitHubConfig()
	}

	httpClient := &http.Client{}
	if cfg.Token != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: cfg.Token},
		)
		httpClient = oauth2.NewClient(context.Background(), ts)
	}
	httpClient.Timeout = cfg.RequestTimeout

	return &Client{
		client:    httpClient,
		baseURL:   strings.TrimRight(cfg.APIBaseURL, "/"),
		userAgent: cfg.UserAgent,
		perPage:   cfg.PerPage,
		logger:    logger,
	}
}

// ListCommits fetches one page of commits for a repository and reshapes
// it into a commit table sorted ascending by author date. Rows whose
// timestamp is missing or unparseable are dropped; a missing author
// account is normalized to models.UnknownAuthor. An empty repository
// yields an empty table, not an error.
func (c *Client) ListCommits(ctx context.Context, owner, repo string, perPage int) ([]models.Commit, error) {
	if owner == "" {
		return nil, apperrors.NewValidationError("owner", "cannot be empty")
	}
	if repo == "" {
		return nil, apperrors.NewValidationError("repo", "cannot be empty")
	}

	if perPage <= 0 {
		perPage = c.perPage
	}
	if perPage > config.MaxPageSize {
		perPage = config.MaxPageSize
	}

	baseURL := fmt.Sprintf("%s/repos/%s/%s/commits", c.baseURL, url.PathEscape(owner), url.PathEscape(repo))
	query := url.Values{}
	query.Set("per_page", strconv.Itoa(perPage))

	req, err := http.NewRequestWithContext(ctx, "GET", baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, apperrors.NewUnexpectedError("failed to create request", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, apperrors.NewUnexpectedError("request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewUnexpectedError("failed to read response body", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, apperrors.NewAPIError(resp.StatusCode, truncateBody(body), nil)
	}

	var payload []struct {
		SHA    string `json:"sha"`
		Commit struct {
			Message string `json:"message"`
			Author  *struct {
				Name string `json:"name"`
				Date string `json:"date"`
			} `json:"author"`
		} `json:"commit"`
		Author *struct {
			Login string `json:"login"`
		} `json:"author"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, apperrors.NewUnexpectedError("failed to decode response", err)
	}

	commits := make([]models.Commit, 0, len(payload))
	dropped := 0
	for _, row := range payload {
		if row.Commit.Author == nil || row.Commit.Author.Date == "" {
			dropped++
			continue
		}
		authoredAt, err := time.Parse(time.RFC3339, row.Commit.Author.Date)
		if err != nil {
			dropped++
			continue
		}

		login := models.UnknownAuthor
		if row.Author != nil && row.Author.Login != "" {
			login = row.Author.Login
		}

		commits = append(commits, models.Commit{
			SHA:         row.SHA,
			Message:     row.Commit.Message,
			AuthorName:  row.Commit.Author.Name,
			AuthorLogin: login,
			AuthorDate:  authoredAt,
		})
	}

	sort.Slice(commits, func(i, j int) bool {
		return commits[i].AuthorDate.Before(commits[j].AuthorDate)
	})

	c.logger.WithFields(logrus.Fields{
		"owner":    owner,
		"repo":     repo,
		"received": len(payload),
		"dropped":  dropped,
		"returned": len(commits),
	}).Info("Fetched commits page from GitHub API")

	return commits, nil
}

// truncateBody trims an upstream error body down to something safe to
// embed in an error message.
func truncateBody(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > 200 {
		return s[:200] + "..."
	}
	return s
}
