package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Kamar-Folarin/repo-pulse/internal/dashboard"
	apperrors "github.com/Kamar-Folarin/repo-pulse/internal/errors"
	"github.com/Kamar-Folarin/repo-pulse/internal/models"
	"github.com/Kamar-Folarin/repo-pulse/internal/utils"
)

type Handler struct {
	dashboards dashboard.Refresher
	logger     *logrus.Logger
}

func NewHandler(dashboards dashboard.Refresher, logger *logrus.Logger) *Handler {
	return &Handler{
		dashboards: dashboards,
		logger:     logger,
	}
}

// GetDashboard runs one refresh cycle and returns its result. The
// repository is addressed either by the owner and repo query fields or by
// a single repository field holding "owner/name" or a full GitHub URL.
// Error outcomes keep the response shape: the three data fields are reset
// to empty placeholders, never left holding data from a previous cycle.
func (h *Handler) GetDashboard(c *gin.Context) {
	owner := strings.TrimSpace(c.Query("owner"))
	repo := strings.TrimSpace(c.Query("repo"))

	if ref := strings.TrimSpace(c.Query("repository")); ref != "" && (owner == "" || repo == "") {
		parsedOwner, parsedRepo, err := utils.ParseRepoInput(ref)
		if err != nil {
			h.logger.WithError(err).Warn("Rejected malformed repository reference")
			h.respondWithError(c, owner, repo, apperrors.NewValidationError("repository", ref))
			return
		}
		owner, repo = parsedOwner, parsedRepo
	}

	result, err := h.dashboards.Refresh(c.Request.Context(), owner, repo)
	if err != nil {
		if apperrors.IsEmptyResult(err) {
			resp := placeholderResponse(owner, repo)
			resp.Notice = apperrors.UserMessage(err)
			c.JSON(http.StatusOK, resp)
			return
		}
		h.logger.WithFields(logrus.Fields{
			"owner": owner,
			"repo":  repo,
		}).WithError(err).Error("Dashboard refresh failed")
		h.respondWithError(c, owner, repo, err)
		return
	}

	c.JSON(http.StatusOK, newDashboardResponse(result))
}

// HealthCheck reports service liveness.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status: "ok",
		Time:   time.Now().UTC(),
	})
}

func (h *Handler) respondWithError(c *gin.Context, owner, repo string, err error) {
	resp := placeholderResponse(owner, repo)
	resp.Error = apperrors.UserMessage(err)
	c.JSON(statusForError(err), resp)
}

func newDashboardResponse(d *models.Dashboard) DashboardResponse {
	return DashboardResponse{
		Owner:        d.Owner,
		Repo:         d.Repo,
		FetchedAt:    d.FetchedAt,
		Weekly:       d.Weekly,
		Contributors: d.Contributors,
		Summary:      d.Summary,
	}
}

// placeholderResponse is the explicit "no data" envelope delivered on
// every non-success outcome.
func placeholderResponse(owner, repo string) DashboardResponse {
	return DashboardResponse{
		Owner:        owner,
		Repo:         repo,
		FetchedAt:    time.Now().UTC(),
		Weekly:       []models.WeekBucket{},
		Contributors: []models.AuthorStats{},
	}
}

// statusForError maps the error taxonomy onto HTTP statuses: validation
// 400, upstream 404 stays 404, any other upstream failure 502, the rest
// 500. The empty-result outcome never reaches here.
func statusForError(err error) int {
	if apperrors.IsValidation(err) {
		return http.StatusBadRequest
	}
	if apiErr, ok := apperrors.AsAPIError(err); ok {
		if apiErr.StatusCode == http.StatusNotFound {
			return http.StatusNotFound
		}
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
