package usecase

import (
	"context"
	"fmt"

	"github.com/bmbouter/pulp-demos/internal/domain"
	"github.com/bmbouter/pulp-demos/internal/render"
)

// AnnounceReleaseInput contains the parameters for a release announcement.
// Fields are ordered to minimize memory padding.
type AnnounceReleaseInput struct {
	Author  string         // Blog author full name (required)
	Version domain.Version // Release version
	Channel domain.Channel // Stable, beta, or release candidate
	QueryID int            // Saved tracker query listing the release's issues
}

// AnnounceReleaseOutput contains the rendered announcement sections.
type AnnounceReleaseOutput struct {
	Email    string
	BlogPost string
	Tweet    string
}

// AnnounceRelease is the use case for generating release announcements.
type AnnounceRelease struct {
	tracker domain.IssueTracker
	config  domain.ConfigLoader
}

// NewAnnounceRelease creates a new AnnounceRelease use case.
func NewAnnounceRelease(tracker domain.IssueTracker, config domain.ConfigLoader) *AnnounceRelease {
	return &AnnounceRelease{tracker: tracker, config: config}
}

// Execute fetches the release's issues, groups them by project, and renders
// all three announcement sections.
func (uc *AnnounceRelease) Execute(ctx context.Context, in AnnounceReleaseInput) (*AnnounceReleaseOutput, error) {
	cfg, err := uc.config.Load()
	if err != nil {
		return nil, err
	}

	issues, err := uc.tracker.FetchQuery(ctx, in.QueryID)
	if err != nil {
		return nil, err
	}
	if len(issues) == 0 {
		return nil, fmt.Errorf("%w: query %d", domain.ErrNoIssues, in.QueryID)
	}

	renderIn := render.ReleaseInput{
		Groups:       domain.GroupByProject(issues),
		Author:       in.Author,
		ReposBaseURL: cfg.ReposBaseURL,
		Version:      in.Version,
		Channel:      in.Channel,
	}

	email, err := render.ReleaseEmail(renderIn)
	if err != nil {
		return nil, err
	}
	blog, err := render.ReleaseBlogPost(renderIn)
	if err != nil {
		return nil, err
	}
	tweet, err := render.ReleaseTweet(renderIn)
	if err != nil {
		return nil, err
	}

	return &AnnounceReleaseOutput{
		Email:    email,
		BlogPost: blog,
		Tweet:    tweet,
	}, nil
}
