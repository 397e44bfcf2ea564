package models

import "time"

// UnknownAuthor is the login recorded for commits whose GitHub account
// is missing (bot commits, deleted accounts). Normalization happens at
// the fetch boundary; aggregation treats this value like any other login.
const UnknownAuthor = "unknown"

// Commit is one row of a fetched commit table.
type Commit struct {
	SHA         string    `json:"sha"`
	Message     string    `json:"message"`
	AuthorName  string    `json:"author_name"`
	AuthorLogin string    `json:"author_login"`
	AuthorDate  time.Time `json:"author_date"`
}
