package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/omarshaarawi/leaguedash/internal/config"
	"github.com/omarshaarawi/leaguedash/internal/service"
)

type Scheduler struct {
	s           gocron.Scheduler
	dashboard   *service.DashboardService
	sendMessage func(string) error
	interval    time.Duration
}

// NewScheduler builds the periodic jobs. sendMessage may be nil, in which case
// only the season refresh is scheduled.
func NewScheduler(dashboard *service.DashboardService, sendMessage func(string) error, cfg config.Scheduler) (*Scheduler, error) {
	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		slog.Error("Failed to load location", "timezone", cfg.Timezone, "error", err)
		location = time.UTC
	}

	s, err := gocron.NewScheduler(
		gocron.WithLocation(location),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Scheduler{
		s:           s,
		dashboard:   dashboard,
		sendMessage: sendMessage,
		interval:    cfg.RefreshInterval,
	}, nil
}

func (s *Scheduler) Start(ctx context.Context) error {
	var err error

	if s.interval > 0 {
		_, err = s.s.NewJob(
			gocron.DurationJob(s.interval),
			gocron.NewTask(func() { s.refresh(ctx) }),
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
		)
		if err != nil {
			return fmt.Errorf("failed to create refresh job: %w", err)
		}
	}

	// Power rankings - Tuesday 7:30, after Monday night settles the week
	if s.sendMessage != nil {
		_, err = s.s.NewJob(
			gocron.WeeklyJob(1, gocron.NewWeekdays(time.Tuesday), gocron.NewAtTimes(gocron.NewAtTime(7, 30, 0))),
			gocron.NewTask(s.sendRankings),
		)
		if err != nil {
			return fmt.Errorf("failed to create rankings job: %w", err)
		}
	}

	s.s.Start()
	return nil
}

func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}

func (s *Scheduler) refresh(ctx context.Context) {
	report, err := s.dashboard.Refresh(ctx)
	if err != nil {
		slog.Error("Failed to refresh seasons", "error", err)
		return
	}
	if !report.OK() {
		slog.Warn("Some seasons failed to refresh", "failed", len(report.Failed))
	}
}

func (s *Scheduler) sendRankings() {
	view, err := s.dashboard.PowerRankings("")
	if err != nil {
		slog.Error("Failed to get power rankings", "error", err)
		return
	}
	if err := s.sendMessage(service.FormatRankings(view)); err != nil {
		slog.Error("Failed to send power rankings", "error", err)
	}
}
