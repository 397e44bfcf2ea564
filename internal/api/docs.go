package api

import (
	"time"

	"github.com/Kamar-Folarin/repo-pulse/internal/models"

	_ "github.com/Kamar-Folarin/repo-pulse/docs"
)

// @title Repo Pulse API
// @version 1.0
// @description Commit activity dashboard for GitHub repositories
// @host localhost:8080
// @BasePath /api/v1

// DashboardResponse represents the outcome of one dashboard refresh cycle
// @Description Weekly commit series, contributor ranking and summary metrics for one repository. On an error outcome the three data fields are delivered as empty placeholders and the message is carried in error (or notice for an empty repository).
// @swagger:model DashboardResponse
type DashboardResponse struct {
	// Owner of the repository
	// @example pandas-dev
	Owner string `json:"owner" example:"pandas-dev"`
	// Name of the repository
	// @example pandas
	Repo string `json:"repo" example:"pandas"`
	// When this cycle fetched its data
	// @example 2024-03-21T12:00:00Z
	FetchedAt time.Time `json:"fetched_at" example:"2024-03-21T12:00:00Z"`
	// Commit counts per calendar week, ascending, non-empty weeks only
	Weekly []models.WeekBucket `json:"weekly"`
	// Top contributors by commit count, at most ten entries
	Contributors []models.AuthorStats `json:"contributors"`
	// Scalar summary metrics; null on error outcomes
	Summary *models.Summary `json:"summary"`
	// Informational message for the empty-result outcome
	// @example No commit data returned (empty result).
	Notice string `json:"notice,omitempty" example:"No commit data returned (empty result)."`
	// Human-readable message for failure outcomes
	// @example GitHub API error (status 404). Check that the repository exists and is public.
	Error string `json:"error,omitempty" example:"GitHub API error (status 404). Check that the repository exists and is public."`
}

// HealthResponse represents the liveness probe body
// @Description Service liveness information
// @swagger:model HealthResponse
type HealthResponse struct {
	// Service status
	// @example ok
	Status string `json:"status" example:"ok"`
	// Server time of the probe
	// @example 2024-03-21T12:00:00Z
	Time time.Time `json:"time" example:"2024-03-21T12:00:00Z"`
}
