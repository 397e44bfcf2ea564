package stats

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/Kamar-Folarin/repo-pulse/internal/models"
)

// DefaultTopContributors is the ranking length used when the caller
// does not specify one.
const DefaultTopContributors = 10

// Aggregate derives the weekly series, contributor ranking and summary
// metrics from one commit table. It is a pure function: no I/O, no
// error paths, identical output for identical input regardless of row
// order. An empty table produces empty views and a nil summary.
func Aggregate(commits []models.Commit, topN int) models.Stats {
	if topN <= 0 {
		topN = DefaultTopContributors
	}

	result := models.Stats{
		Weekly:       []models.WeekBucket{},
		Contributors: []models.AuthorStats{},
	}
	if len(commits) == 0 {
		return result
	}

	result.Weekly = weeklyCounts(commits)
	result.Contributors = topContributors(commits, topN)
	result.Summary = summarize(commits, result.Contributors)
	return result
}

// weeklyCounts groups commits into Monday..Sunday calendar weeks (UTC)
// and counts rows per week. Only weeks with at least one commit are
// emitted, ordered ascending.
func weeklyCounts(commits []models.Commit) []models.WeekBucket {
	counts := make(map[time.Time]int)
	for _, commit := range commits {
		counts[weekStart(commit.AuthorDate)]++
	}

	buckets := make([]models.WeekBucket, 0, len(counts))
	for start, n := range counts {
		buckets = append(buckets, models.WeekBucket{
			WeekStart: start,
			WeekEnd:   start.AddDate(0, 0, 6),
			Commits:   n,
		})
	}

	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].WeekStart.Before(buckets[j].WeekStart)
	})

	return buckets
}

// weekStart returns the Monday 00:00 UTC of the week containing t.
func weekStart(t time.Time) time.Time {
	t = t.UTC()
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -daysSinceMonday)
}

// topContributors counts commits per login and returns the top entries,
// descending by count with ties broken by login ascending.
func topContributors(commits []models.Commit, limit int) []models.AuthorStats {
	counts := make(map[string]int)
	for _, commit := range commits {
		counts[normalizeLogin(commit.AuthorLogin)]++
	}

	ranking := make([]models.AuthorStats, 0, len(counts))
	for login, n := range counts {
		ranking = append(ranking, models.AuthorStats{Login: login, Commits: n})
	}

	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Commits != ranking[j].Commits {
			return ranking[i].Commits > ranking[j].Commits
		}
		return ranking[i].Login < ranking[j].Login
	})

	if len(ranking) > limit {
		ranking = ranking[:limit]
	}
	return ranking
}

func summarize(commits []models.Commit, ranking []models.AuthorStats) *models.Summary {
	first := commits[0].AuthorDate
	last := commits[0].AuthorDate
	authors := make(map[string]struct{})

	for _, commit := range commits {
		if commit.AuthorDate.Before(first) {
			first = commit.AuthorDate
		}
		if commit.AuthorDate.After(last) {
			last = commit.AuthorDate
		}
		authors[normalizeLogin(commit.AuthorLogin)] = struct{}{}
	}

	summary := &models.Summary{
		TotalCommits:  len(commits),
		UniqueAuthors: len(authors),
		FirstCommit:   first,
		LastCommit:    last,
		DateRange:     fmt.Sprintf("%s → %s", first.UTC().Format("2006-01-02"), last.UTC().Format("2006-01-02")),
	}

	if len(ranking) > 0 {
		summary.TopAuthor = ranking[0].Login
		summary.TopShare = roundToOneDecimal(100 * float64(ranking[0].Commits) / float64(len(commits)))
	}

	return summary
}

// normalizeLogin guards against zero-value logins in hand-built tables.
// Fetched tables arrive already normalized.
func normalizeLogin(login string) string {
	if login == "" {
		return models.UnknownAuthor
	}
	return login
}

func roundToOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
