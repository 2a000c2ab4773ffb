// Package usecase contains the application use cases.
package usecase

import (
	"context"

	"github.com/bmbouter/pulp-demos/internal/domain"
	"github.com/bmbouter/pulp-demos/internal/render"
)

// demoDateFormat matches the dates used on the blog, e.g. "Aug 30, 2026".
const demoDateFormat = "Jan 02, 2006"

// AnnounceDemoInput contains the parameters for a demo announcement.
type AnnounceDemoInput struct {
	Filename string // Path to the demo schedule CSV (required)
	Date     string // Demo date; empty means today
	Author   string // Blog author; empty means the configured default
}

// AnnounceDemoOutput contains the rendered announcement sections.
type AnnounceDemoOutput struct {
	YouTubeDescription string
	BlogPost           string
	Email              string
}

// AnnounceDemo is the use case for generating community demo announcements.
type AnnounceDemo struct {
	schedules domain.ScheduleReader
	config    domain.ConfigLoader
	clock     domain.Clock
}

// NewAnnounceDemo creates a new AnnounceDemo use case.
func NewAnnounceDemo(schedules domain.ScheduleReader, config domain.ConfigLoader, clock domain.Clock) *AnnounceDemo {
	return &AnnounceDemo{schedules: schedules, config: config, clock: clock}
}

// Execute parses the schedule and renders all three announcement sections.
func (uc *AnnounceDemo) Execute(_ context.Context, in AnnounceDemoInput) (*AnnounceDemoOutput, error) {
	cfg, err := uc.config.Load()
	if err != nil {
		return nil, err
	}

	slug, demos, err := uc.schedules.ReadSchedule(in.Filename)
	if err != nil {
		return nil, err
	}

	date := in.Date
	if date == "" {
		date = uc.clock.Now().Format(demoDateFormat)
	}
	author := in.Author
	if author == "" {
		author = cfg.DefaultAuthor
	}

	renderIn := render.DemoInput{
		Slug:    slug,
		Date:    date,
		Author:  author,
		Channel: cfg.YouTubeChannel,
		Demos:   demos,
	}

	blog, err := render.DemoBlogPost(renderIn)
	if err != nil {
		return nil, err
	}
	email, err := render.DemoEmail(renderIn)
	if err != nil {
		return nil, err
	}

	return &AnnounceDemoOutput{
		YouTubeDescription: render.YouTubeDescription(renderIn),
		BlogPost:           blog,
		Email:              email,
	}, nil
}
