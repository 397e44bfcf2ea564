package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Kamar-Folarin/repo-pulse/internal/errors"
	"github.com/Kamar-Folarin/repo-pulse/internal/models"
)

// MockRefresher is a mock implementation of dashboard.Refresher
type MockRefresher struct {
	mock.Mock
}

func (m *MockRefresher) Refresh(ctx context.Context, owner, repo string) (*models.Dashboard, error) {
	args := m.Called(ctx, owner, repo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Dashboard), args.Error(1)
}

func setupTestHandler() (*Handler, *MockRefresher) {
	mockService := new(MockRefresher)
	logger := logrus.New()
	logger.SetOutput(bytes.NewBuffer(nil)) // Discard logs during tests

	return NewHandler(mockService, logger), mockService
}

func setupHandlerRouter(handler *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/dashboard", handler.GetDashboard)
	router.GET("/health", handler.HealthCheck)
	return router
}

func sampleDashboard() *models.Dashboard {
	return &models.Dashboard{
		Owner:     "pandas-dev",
		Repo:      "pandas",
		FetchedAt: time.Date(2024, 3, 21, 12, 0, 0, 0, time.UTC),
		Stats: models.Stats{
			Weekly: []models.WeekBucket{
				{WeekStart: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), WeekEnd: time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC), Commits: 2},
				{WeekStart: time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), WeekEnd: time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC), Commits: 5},
			},
			Contributors: []models.AuthorStats{
				{Login: "alice", Commits: 4},
				{Login: "bob", Commits: 3},
			},
			Summary: &models.Summary{
				TotalCommits:  7,
				UniqueAuthors: 2,
				DateRange:     "2024-01-02 → 2024-01-12",
				TopAuthor:     "alice",
				TopShare:      57.1,
			},
		},
	}
}

func getDashboard(t *testing.T, router *gin.Engine, query url.Values) (int, DashboardResponse) {
	t.Helper()

	w := httptest.NewRecorder()
	req, err := http.NewRequest("GET", "/dashboard?"+query.Encode(), nil)
	require.NoError(t, err)
	router.ServeHTTP(w, req)

	var resp DashboardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w.Code, resp
}

func TestGetDashboardSuccess(t *testing.T) {
	handler, mockService := setupTestHandler()
	router := setupHandlerRouter(handler)

	mockService.On("Refresh", mock.Anything, "pandas-dev", "pandas").Return(sampleDashboard(), nil)

	code, resp := getDashboard(t, router, url.Values{"owner": {"pandas-dev"}, "repo": {"pandas"}})

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "pandas-dev", resp.Owner)
	assert.Equal(t, "pandas", resp.Repo)
	require.Len(t, resp.Weekly, 2)
	assert.Equal(t, 5, resp.Weekly[1].Commits)
	require.Len(t, resp.Contributors, 2)
	require.NotNil(t, resp.Summary)
	assert.Equal(t, 7, resp.Summary.TotalCommits)
	assert.Equal(t, "alice", resp.Summary.TopAuthor)
	assert.Empty(t, resp.Error)
	assert.Empty(t, resp.Notice)
	mockService.AssertExpectations(t)
}

func TestGetDashboardErrorOutcomes(t *testing.T) {
	tests := []struct {
		name            string
		query           url.Values
		refreshErr      error
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "validation error",
			query:           url.Values{"owner": {""}, "repo": {"pandas"}},
			refreshErr:      apperrors.NewValidationError("owner", "cannot be empty"),
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Please enter both owner and repo.",
		},
		{
			name:            "repository not found",
			query:           url.Values{"owner": {"pandas-dev"}, "repo": {"missing"}},
			refreshErr:      apperrors.NewAPIError(http.StatusNotFound, "Not Found", nil),
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "GitHub API error (status 404). Check that the repository exists and is public.",
		},
		{
			name:            "upstream failure",
			query:           url.Values{"owner": {"pandas-dev"}, "repo": {"pandas"}},
			refreshErr:      apperrors.NewAPIError(http.StatusServiceUnavailable, "upstream down", nil),
			expectedStatus:  http.StatusBadGateway,
			expectedMessage: "GitHub API error (status 503). Check that the repository exists and is public.",
		},
		{
			name:            "unexpected error",
			query:           url.Values{"owner": {"pandas-dev"}, "repo": {"pandas"}},
			refreshErr:      apperrors.NewUnexpectedError("request failed", errors.New("connection reset")),
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "Unexpected error: connection reset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, mockService := setupTestHandler()
			router := setupHandlerRouter(handler)

			mockService.On("Refresh", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.refreshErr)

			code, resp := getDashboard(t, router, tt.query)

			assert.Equal(t, tt.expectedStatus, code)
			assert.Equal(t, tt.expectedMessage, resp.Error)

			// Placeholder reset: data fields present but empty, never stale.
			assert.NotNil(t, resp.Weekly)
			assert.Empty(t, resp.Weekly)
			assert.NotNil(t, resp.Contributors)
			assert.Empty(t, resp.Contributors)
			assert.Nil(t, resp.Summary)
		})
	}
}

func TestGetDashboardEmptyResult(t *testing.T) {
	handler, mockService := setupTestHandler()
	router := setupHandlerRouter(handler)

	mockService.On("Refresh", mock.Anything, "pandas-dev", "quiet").
		Return(nil, apperrors.NewEmptyResultError("pandas-dev", "quiet"))

	code, resp := getDashboard(t, router, url.Values{"owner": {"pandas-dev"}, "repo": {"quiet"}})

	// An empty repository is an outcome, not a failure.
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "No commit data returned (empty result).", resp.Notice)
	assert.Empty(t, resp.Error)
	assert.Empty(t, resp.Weekly)
	assert.Empty(t, resp.Contributors)
	assert.Nil(t, resp.Summary)
	mockService.AssertExpectations(t)
}

func TestGetDashboardRepositoryParam(t *testing.T) {
	tests := []struct {
		name          string
		repository    string
		expectedOwner string
		expectedRepo  string
	}{
		{name: "shorthand", repository: "golang/go", expectedOwner: "golang", expectedRepo: "go"},
		{name: "full URL", repository: "https://github.com/torvalds/linux", expectedOwner: "torvalds", expectedRepo: "linux"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, mockService := setupTestHandler()
			router := setupHandlerRouter(handler)

			result := sampleDashboard()
			result.Owner = tt.expectedOwner
			result.Repo = tt.expectedRepo
			mockService.On("Refresh", mock.Anything, tt.expectedOwner, tt.expectedRepo).Return(result, nil)

			code, resp := getDashboard(t, router, url.Values{"repository": {tt.repository}})

			assert.Equal(t, http.StatusOK, code)
			assert.Equal(t, tt.expectedOwner, resp.Owner)
			assert.Equal(t, tt.expectedRepo, resp.Repo)
			mockService.AssertExpectations(t)
		})
	}
}

func TestGetDashboardExplicitFieldsWinOverRepositoryParam(t *testing.T) {
	handler, mockService := setupTestHandler()
	router := setupHandlerRouter(handler)

	mockService.On("Refresh", mock.Anything, "pandas-dev", "pandas").Return(sampleDashboard(), nil)

	query := url.Values{
		"owner":      {"pandas-dev"},
		"repo":       {"pandas"},
		"repository": {"golang/go"},
	}
	code, _ := getDashboard(t, router, query)

	assert.Equal(t, http.StatusOK, code)
	mockService.AssertExpectations(t)
}

func TestGetDashboardMalformedRepositoryParam(t *testing.T) {
	handler, mockService := setupTestHandler()
	router := setupHandlerRouter(handler)

	code, resp := getDashboard(t, router, url.Values{"repository": {"not-a-repository"}})

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Please enter both owner and repo.", resp.Error)
	mockService.AssertNotCalled(t, "Refresh")
}

func TestHealthCheck(t *testing.T) {
	handler, _ := setupTestHandler()
	router := setupHandlerRouter(handler)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.False(t, resp.Time.IsZero())
}
