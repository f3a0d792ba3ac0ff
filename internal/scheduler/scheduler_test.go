package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/changzc22/SM-Assignment-sub000/internal/scheduler/mocks"
	"github.com/changzc22/SM-Assignment-sub000/internal/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_Exports(t *testing.T) {
	exporter := mocks.NewMockSnapshotExporter(t)
	log := newTestLogger(t)

	s := New(exporter, 50*time.Millisecond, log)

	exporter.EXPECT().Export(mock.Anything).Return(snapshot.Stats{Trains: 2, Bookings: 3, Staff: 1}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(exporter.Calls), 1)
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	exporter := mocks.NewMockSnapshotExporter(t)
	log := newTestLogger(t)

	s := New(exporter, 50*time.Millisecond, log)

	exporter.EXPECT().Export(mock.Anything).Return(snapshot.Stats{}, errors.New("disk full"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(exporter.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	exporter := mocks.NewMockSnapshotExporter(t)
	log := newTestLogger(t)

	s := New(exporter, time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	exporter := mocks.NewMockSnapshotExporter(t)
	log := newTestLogger(t)

	s := New(exporter, 30*time.Millisecond, log)

	exporter.EXPECT().Export(mock.Anything).Return(snapshot.Stats{}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(exporter.Calls), 3)
}
