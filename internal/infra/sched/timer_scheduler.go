// Package sched provides the timer-backed Scheduler implementation.
package sched

import (
	"log/slog"
	"time"

	"agriconnect/internal/domain/service"
)

type timerScheduler struct {
	logger *slog.Logger
}

// NewTimerScheduler creates a Scheduler that runs tasks on process-local
// timers. Pending tasks do not survive a restart; callers are expected to
// tolerate a task that never fires.
func NewTimerScheduler(logger *slog.Logger) service.Scheduler {
	return &timerScheduler{logger: logger}
}

// Schedule runs task once after delay has elapsed.
func (s *timerScheduler) Schedule(id string, delay time.Duration, task func()) {
	s.logger.Debug("task scheduled",
		slog.String("task_id", id),
		slog.Duration("delay", delay),
	)

	time.AfterFunc(delay, task)
}
