package sitemap

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mhdatheek136/branfern/internal/logging"
)

const refreshTimeout = 30 * time.Second

// Scheduler refreshes the sitemap on a cron schedule with a seconds field.
type Scheduler struct {
	cron     *cron.Cron
	gen      *Generator
	schedule string
}

func NewScheduler(gen *Generator, schedule string) *Scheduler {
	return &Scheduler{
		cron:     cron.New(cron.WithSeconds()),
		gen:      gen,
		schedule: schedule,
	}
}

// Start registers the refresh job and starts the cron loop.
func (s *Scheduler) Start(ctx context.Context) error {
	logger := logging.NewLogger(ctx)
	if _, err := s.cron.AddFunc(s.schedule, func() { s.run(ctx) }); err != nil {
		logger.LogError("sitemap_scheduler", err)
		return err
	}
	s.cron.Start()
	logger.LogInfof("sitemap_scheduler", "sitemap scheduler started (%s)", s.schedule)
	return nil
}

func (s *Scheduler) run(parent context.Context) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(parent), refreshTimeout)
	defer cancel()
	_ = s.gen.Refresh(ctx)
}

// Stop halts the schedule and waits for a running refresh to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
