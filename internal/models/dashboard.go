package models

import "time"

// WeekBucket is one calendar week of commit activity. Weeks run
// Monday through Sunday in UTC; weeks without commits are never
// materialized.
type WeekBucket struct {
	WeekStart time.Time `json:"week_start"`
	WeekEnd   time.Time `json:"week_end"`
	Commits   int       `json:"commits"`
}

// AuthorStats is one entry of the contributor ranking.
type AuthorStats struct {
	Login   string `json:"login"`
	Commits int    `json:"commits"`
}

// Summary holds the scalar metrics derived from one commit table.
type Summary struct {
	TotalCommits  int       `json:"total_commits"`
	UniqueAuthors int       `json:"unique_authors"`
	FirstCommit   time.Time `json:"first_commit"`
	LastCommit    time.Time `json:"last_commit"`
	// DateRange is the inclusive day-granularity span, e.g. "2024-01-02 → 2024-03-05".
	DateRange string `json:"date_range"`
	TopAuthor string `json:"top_author"`
	// TopShare is the top author's percentage of all commits, rounded to one decimal.
	TopShare float64 `json:"top_share"`
}

// Stats bundles the three derived views of one refresh cycle.
type Stats struct {
	Weekly       []WeekBucket  `json:"weekly"`
	Contributors []AuthorStats `json:"contributors"`
	Summary      *Summary      `json:"summary"`
}

// Dashboard is the full result of one refresh cycle. It is rebuilt
// from scratch every cycle and never mutated afterwards.
type Dashboard struct {
	Owner     string    `json:"owner"`
	Repo      string    `json:"repo"`
	FetchedAt time.Time `json:"fetched_at"`
	Stats
}
