// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"time"

	"github.com/bmbouter/pulp-demos/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockIssueTracker is a test double for domain.IssueTracker.
type MockIssueTracker struct {
	Issues   []domain.Issue
	FetchErr error
	QueryID  int // Last query ID passed to FetchQuery
}

// FetchQuery returns the configured issues or error.
func (m *MockIssueTracker) FetchQuery(_ context.Context, queryID int) ([]domain.Issue, error) {
	m.QueryID = queryID
	if m.FetchErr != nil {
		return nil, m.FetchErr
	}
	return m.Issues, nil
}

// MockScheduleReader is a test double for domain.ScheduleReader.
type MockScheduleReader struct {
	Slug    string
	Demos   []domain.Demo
	ReadErr error
	Path    string // Last path passed to ReadSchedule
}

// ReadSchedule returns the configured slug and demos or error.
func (m *MockScheduleReader) ReadSchedule(path string) (string, []domain.Demo, error) {
	m.Path = path
	if m.ReadErr != nil {
		return "", nil, m.ReadErr
	}
	return m.Slug, m.Demos, nil
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config  *domain.Config
	LoadErr error
}

// Load returns the configured config, falling back to the defaults.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Config != nil {
		return m.Config, nil
	}
	return domain.NewDefaultConfig(), nil
}
