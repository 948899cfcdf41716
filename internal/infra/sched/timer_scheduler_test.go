package sched

import (
	"log/slog"
	"testing"
	"time"
)

func TestTimerScheduler_Schedule(t *testing.T) {
	t.Parallel()

	scheduler := NewTimerScheduler(slog.New(slog.DiscardHandler))

	fired := make(chan struct{})
	scheduler.Schedule("task-1", 10*time.Millisecond, func() {
		close(fired)
	})

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("scheduled task never fired")
	}
}

func TestTimerScheduler_DelayIsHonored(t *testing.T) {
	t.Parallel()

	scheduler := NewTimerScheduler(slog.New(slog.DiscardHandler))

	fired := make(chan struct{})
	scheduler.Schedule("task-1", 50*time.Millisecond, func() {
		close(fired)
	})

	select {
	case <-fired:
		t.Fatal("task fired before the delay elapsed")
	case <-time.After(10 * time.Millisecond):
	}

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("scheduled task never fired")
	}
}
