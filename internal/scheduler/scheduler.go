package scheduler

import (
	"context"
	"time"

	"github.com/changzc22/SM-Assignment-sub000/internal/snapshot"
	"github.com/wb-go/wbf/logger"
)

type snapshotExporter interface {
	Export(ctx context.Context) (snapshot.Stats, error)
}

// Scheduler exports a snapshot every interval until its context is done.
type Scheduler struct {
	exporter snapshotExporter
	interval time.Duration
	logger   logger.Logger
}

func New(
	exporter snapshotExporter,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		exporter: exporter,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	started := time.Now()
	stats, err := s.exporter.Export(ctx)
	if err != nil {
		s.logger.Error("failed to export snapshot",
			logger.String("error", err.Error()),
		)
		return
	}

	s.logger.Info("snapshot exported",
		logger.Int("trains", stats.Trains),
		logger.Int("bookings", stats.Bookings),
		logger.Int("staff", stats.Staff),
		logger.Duration("took", time.Since(started)),
	)
}
