// Package web serves the embedded dashboard page. The page is a thin
// client over GET /api/v1/dashboard; all aggregation happens server-side
// and the charts render in the browser.
package web

import (
	"embed"
	"net/http"
)

//go:embed static/*
var staticFS embed.FS

// Index returns the handler for the dashboard page.
func Index() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, err := staticFS.ReadFile("static/index.html")
		if err != nil {
			http.Error(w, "dashboard page unavailable", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(page)
	})
}
