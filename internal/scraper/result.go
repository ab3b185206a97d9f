package scraper

import (
	"fmt"
	"time"
)

// RunResult tracks counts and errors from one scrape run. The counters are
// observability only — nothing reads them for control flow.
type RunResult struct {
	AlertsProcessed   int
	QueriesPlanned    int
	QueriesIssued     int
	QueriesFailed     int
	MatchesFound      int
	NotificationsSent int
	Errors            []string
	Duration          time.Duration
}

// AddError records an error message.
func (r *RunResult) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
}

// AddErrorf records a formatted error message.
func (r *RunResult) AddErrorf(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Summary returns a human-readable summary of the run.
func (r *RunResult) Summary() string {
	return fmt.Sprintf(
		"alerts=%d queries=%d/%d failed=%d matches=%d notified=%d errors=%d",
		r.AlertsProcessed, r.QueriesIssued, r.QueriesPlanned, r.QueriesFailed,
		r.MatchesFound, r.NotificationsSent, len(r.Errors),
	)
}
