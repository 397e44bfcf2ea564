package dashboard

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/Kamar-Folarin/repo-pulse/internal/config"
	apperrors "github.com/Kamar-Folarin/repo-pulse/internal/errors"
	"github.com/Kamar-Folarin/repo-pulse/internal/metrics"
	"github.com/Kamar-Folarin/repo-pulse/internal/models"
	"github.com/Kamar-Folarin/repo-pulse/internal/stats"
)

// CommitFetcher is the slice of the GitHub client the dashboard consumes.
type CommitFetcher interface {
	ListCommits(ctx context.Context, owner, repo string, perPage int) ([]models.Commit, error)
}

// Refresher is the dashboard surface the API layer consumes.
type Refresher interface {
	Refresh(ctx context.Context, owner, repo string) (*models.Dashboard, error)
}

// Service runs refresh cycles: validate the input, fetch one page of
// commits, aggregate it, and wrap the result in a dashboard envelope.
// Concurrent refreshes of the same owner/repo coalesce into a single
// in-flight cycle; distinct repositories proceed independently. No state
// survives a cycle beyond the in-flight group itself.
type Service struct {
	fetcher   CommitFetcher
	cfg       *config.DashboardConfig
	collector *metrics.Collector
	logger    *logrus.Logger
	group     singleflight.Group
}

// NewService creates a dashboard service. A nil config or collector falls
// back to defaults so tests can wire only what they need.
func NewService(fetcher CommitFetcher, cfg *config.DashboardConfig, collector *metrics.Collector, logger *logrus.Logger) *Service {
	if cfg == nil {
		cfg = config.DefaultDashboardConfig()
	}
	if collector == nil {
		collector = metrics.NewCollector(nil)
	}
	return &Service{
		fetcher:   fetcher,
		cfg:       cfg,
		collector: collector,
		logger:    logger,
	}
}

// Refresh runs one fetch-and-aggregate cycle for the given repository.
// Callers that arrive while an identical cycle is in flight receive the
// leader's result and must treat it as read-only; the leader's context
// governs the shared fetch, so cancelling the leader fails the whole
// flight. Every error is one of the internal/errors types; an empty
// repository reports EmptyResultError, which callers surface as a notice
// rather than a failure.
func (s *Service) Refresh(ctx context.Context, owner, repo string) (*models.Dashboard, error) {
	owner = strings.TrimSpace(owner)
	repo = strings.TrimSpace(repo)

	if owner == "" {
		s.collector.ObserveRefresh(metrics.OutcomeValidation, 0, 0)
		return nil, apperrors.NewValidationError("owner", "cannot be empty")
	}
	if repo == "" {
		s.collector.ObserveRefresh(metrics.OutcomeValidation, 0, 0)
		return nil, apperrors.NewValidationError("repo", "cannot be empty")
	}

	result, err, shared := s.group.Do(owner+"/"+repo, func() (interface{}, error) {
		return s.runCycle(ctx, owner, repo)
	})
	if shared {
		s.logger.WithFields(logrus.Fields{
			"owner": owner,
			"repo":  repo,
		}).Debug("Joined in-flight refresh")
	}
	if err != nil {
		return nil, err
	}
	return result.(*models.Dashboard), nil
}

// runCycle executes the fetch and aggregation for one flight. Metrics and
// logs are recorded here so a coalesced flight counts exactly once.
func (s *Service) runCycle(ctx context.Context, owner, repo string) (*models.Dashboard, error) {
	start := time.Now()
	log := s.logger.WithFields(logrus.Fields{
		"cycle_id": uuid.New().String(),
		"owner":    owner,
		"repo":     repo,
	})

	commits, err := s.fetcher.ListCommits(ctx, owner, repo, 0)
	if err != nil {
		s.collector.ObserveRefresh(outcomeFor(err), time.Since(start), 0)
		log.WithError(err).Warn("Refresh cycle failed")
		return nil, err
	}
	if len(commits) == 0 {
		s.collector.ObserveRefresh(metrics.OutcomeEmpty, time.Since(start), 0)
		log.Info("Refresh cycle returned no commits")
		return nil, apperrors.NewEmptyResultError(owner, repo)
	}

	derived := stats.Aggregate(commits, s.cfg.TopContributors)
	result := &models.Dashboard{
		Owner:     owner,
		Repo:      repo,
		FetchedAt: time.Now().UTC(),
		Stats:     derived,
	}

	s.collector.ObserveRefresh(metrics.OutcomeSuccess, time.Since(start), len(commits))
	log.WithFields(logrus.Fields{
		"commits":      len(commits),
		"weeks":        len(derived.Weekly),
		"contributors": len(derived.Contributors),
		"duration_ms":  time.Since(start).Milliseconds(),
	}).Info("Refresh cycle completed")

	return result, nil
}

func outcomeFor(err error) string {
	switch {
	case apperrors.IsValidation(err):
		return metrics.OutcomeValidation
	case apperrors.IsAPIError(err):
		return metrics.OutcomeAPIError
	case apperrors.IsEmptyResult(err):
		return metrics.OutcomeEmpty
	default:
		return metrics.OutcomeError
	}
}
