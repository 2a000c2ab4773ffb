// Package app provides the dependency injection container for the application.
package app

import (
	"log/slog"
	"os"

	"github.com/bmbouter/pulp-demos/internal/domain"
	"github.com/bmbouter/pulp-demos/internal/infra/config"
	"github.com/bmbouter/pulp-demos/internal/infra/csvdemo"
	"github.com/bmbouter/pulp-demos/internal/infra/redmine"
	"github.com/bmbouter/pulp-demos/internal/usecase"
)

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	Tracker      domain.IssueTracker
	Schedules    domain.ScheduleReader
	ConfigLoader domain.ConfigLoader
	Clock        domain.Clock
	Logger       *slog.Logger
}

// New creates a new Container with the production implementations.
func New() (*Container, error) {
	configLoader := config.NewLoader()
	cfg, err := configLoader.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// The key may be absent; the tracker client reports that on first use
	// so the demo command keeps working without credentials.
	tracker := redmine.NewClient(cfg.TrackerURL, config.APIKey())

	return &Container{
		Tracker:      tracker,
		Schedules:    csvdemo.NewReader(),
		ConfigLoader: configLoader,
		Clock:        domain.RealClock{},
		Logger:       logger,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(tracker domain.IssueTracker, schedules domain.ScheduleReader, configLoader domain.ConfigLoader, clock domain.Clock, logger *slog.Logger) *Container {
	return &Container{
		Tracker:      tracker,
		Schedules:    schedules,
		ConfigLoader: configLoader,
		Clock:        clock,
		Logger:       logger,
	}
}

// UseCase factory methods

// AnnounceDemoUseCase returns a new AnnounceDemo use case.
func (c *Container) AnnounceDemoUseCase() *usecase.AnnounceDemo {
	return usecase.NewAnnounceDemo(c.Schedules, c.ConfigLoader, c.Clock)
}

// AnnounceReleaseUseCase returns a new AnnounceRelease use case.
func (c *Container) AnnounceReleaseUseCase() *usecase.AnnounceRelease {
	return usecase.NewAnnounceRelease(c.Tracker, c.ConfigLoader)
}
