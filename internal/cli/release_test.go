package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bmbouter/pulp-demos/internal/domain"
	"github.com/bmbouter/pulp-demos/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func trackerWithIssues() *testutil.MockIssueTracker {
	return &testutil.MockIssueTracker{
		Issues: []domain.Issue{
			{ID: 2901, Subject: "Publish is slow", Project: "RPM Support", URL: "https://pulp.plan.io/issues/2901"},
			{ID: 2887, Subject: "Sync fails on bad metadata", Project: "Pulp", URL: "https://pulp.plan.io/issues/2887"},
		},
	}
}

func TestReleaseCommand_Stable(t *testing.T) {
	tracker := trackerWithIssues()
	container := newTestContainer(tracker)

	cmd := newReleaseCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--version", "2.14.3", "--author", "Jane Doe", "--query-num", "108"})

	err := cmd.Execute()

	assert.NoError(t, err)
	assert.Equal(t, 108, tracker.QueryID)

	out := buf.String()
	assert.Contains(t, out, "Pulp 2.14.3 is now available")
	assert.Contains(t, out, "bugfixes for: Pulp, and RPM Support")
	assert.Contains(t, out, "author: Jane Doe")
	assert.Contains(t, out, "Upgrading is recommended")
	// Email, blog, tweet separated by two dividers.
	assert.Equal(t, 2, strings.Count(out, releaseDivider))
}

func TestReleaseCommand_Beta(t *testing.T) {
	container := newTestContainer(trackerWithIssues())

	cmd := newReleaseCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--version", "2.15.0", "--author", "Jane Doe", "--query-num", "112", "--beta", "2"})

	err := cmd.Execute()

	assert.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Pulp 2.15.0 Beta 2 is now available")
	assert.Contains(t, out, "new features")
	assert.Contains(t, out, "Beta testing is recommended")
}

func TestReleaseCommand_RC(t *testing.T) {
	container := newTestContainer(trackerWithIssues())

	cmd := newReleaseCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--version", "2.15.0", "--author", "Jane Doe", "--query-num", "112", "--rc", "1"})

	err := cmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Release Candidate testing is recommended")
}

func TestReleaseCommand_BetaAndRCRejected(t *testing.T) {
	container := newTestContainer(trackerWithIssues())

	cmd := newReleaseCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--version", "2.15.0", "--author", "Jane Doe", "--query-num", "112", "--beta", "1", "--rc", "1"})

	err := cmd.Execute()

	assert.ErrorIs(t, err, domain.ErrChannelConflict)
}

func TestReleaseCommand_InvalidVersion(t *testing.T) {
	tracker := trackerWithIssues()
	container := newTestContainer(tracker)

	cmd := newReleaseCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--version", "2.14", "--author", "Jane Doe", "--query-num", "108"})

	err := cmd.Execute()

	assert.ErrorIs(t, err, domain.ErrInvalidVersion)
	// Rejected before any tracker call.
	assert.Equal(t, 0, tracker.QueryID)
}

func TestReleaseCommand_QueryNotFound(t *testing.T) {
	tracker := &testutil.MockIssueTracker{FetchErr: domain.ErrQueryNotFound}
	container := newTestContainer(tracker)

	cmd := newReleaseCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--version", "2.14.3", "--author", "Jane Doe", "--query-num", "9999"})

	err := cmd.Execute()

	assert.ErrorIs(t, err, domain.ErrQueryNotFound)
}
