package domain

import (
	"context"
	"time"
)

// IssueTracker fetches issues from the remote tracker.
type IssueTracker interface {
	// FetchQuery returns all issues matching a saved server-side query.
	// The query is pre-filtered on the tracker; no client-side filtering
	// happens here.
	FetchQuery(ctx context.Context, queryID int) ([]Issue, error)
}

// ScheduleReader parses a demo schedule file into its video slug and
// ordered segments.
type ScheduleReader interface {
	ReadSchedule(path string) (slug string, demos []Demo, err error)
}

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system time.
type RealClock struct{}

// Now returns the current system time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// ConfigLoader loads the application configuration.
type ConfigLoader interface {
	// Load returns the merged configuration (defaults + config file).
	Load() (*Config, error)
}

// Config holds the tool settings. All fields have defaults; a config file
// only needs to override what differs.
type Config struct {
	TrackerURL     string `toml:"tracker_url"`     // Redmine base URL
	DefaultAuthor  string `toml:"default_author"`  // Author when --author is omitted
	YouTubeChannel string `toml:"youtube_channel"` // Channel URL used in templates
	ReposBaseURL   string `toml:"repos_base_url"`  // Base URL of the release repositories
}

// NewDefaultConfig returns the built-in defaults.
func NewDefaultConfig() *Config {
	return &Config{
		TrackerURL:     "https://pulp.plan.io",
		DefaultAuthor:  "Brian Bouterse",
		YouTubeChannel: "https://www.youtube.com/PulpProject",
		ReposBaseURL:   "https://repos.fedorapeople.org/repos/pulp/pulp",
	}
}
