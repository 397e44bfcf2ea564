// Repo Pulse is a web dashboard for GitHub commit activity.
//
// Each refresh cycle fetches one page of a repository's commit history
// from the GitHub REST API, aggregates it by calendar week and by author,
// and serves the result to an embedded single-page dashboard.
//
// Usage:
//
//	# Start the server with configuration from the environment / .env
//	repo-pulse run
//
//	# Override the listen port
//	repo-pulse run --port 9090
//
//	# Show version information
//	repo-pulse version
package main

func main() {
	Execute()
}
