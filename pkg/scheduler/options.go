package scheduler

import (
	"time"

	"go.uber.org/zap"
)

// Observer is notified of task lifecycle events. Implementations must be safe
// for concurrent use and must not block.
type Observer interface {
	TaskSubmitted()
	TaskCompleted(elapsed time.Duration, err error)
	TaskBroken()
}

type noopObserver struct{}

func (noopObserver) TaskSubmitted()                     {}
func (noopObserver) TaskCompleted(time.Duration, error) {}
func (noopObserver) TaskBroken()                        {}

type Option func(*Scheduler)

// WithIdleBackoff makes idle workers sleep d between polls instead of
// yielding. Zero keeps the default busy-poll.
func WithIdleBackoff(d time.Duration) Option {
	return func(s *Scheduler) {
		s.idleBackoff = d
	}
}

// WithObserver registers o for task lifecycle events. A nil o is ignored.
func WithObserver(o Observer) Option {
	return func(s *Scheduler) {
		if o != nil {
			s.observer = o
		}
	}
}

// WithLogger replaces the default "scheduler" named global logger.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(s *Scheduler) {
		if l != nil {
			s.log = l
		}
	}
}
