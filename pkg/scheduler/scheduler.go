package scheduler

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	srvErrors "github.com/kubev2v/workpool/pkg/errors"
	"github.com/kubev2v/workpool/pkg/loop"
	"github.com/kubev2v/workpool/pkg/queue"
)

// task is the type-erased form of submitted work as it sits in the queue.
type task struct {
	id      uuid.UUID
	run     func(ctx context.Context)
	abandon func(err error)
}

// Stats is a point-in-time snapshot of the scheduler counters.
type Stats struct {
	Workers   int   `json:"workers"`
	Pending   int   `json:"pending"`
	Submitted int64 `json:"submitted"`
	Completed int64 `json:"completed"`
	Failed    int64 `json:"failed"`
	Broken    int64 `json:"broken"`
}

// Scheduler runs submitted work on a fixed set of workers.
type Scheduler struct {
	executors   []*loop.Executor
	tasks       *queue.Queue[task]
	mainCtx     context.Context
	mainCancel  context.CancelFunc
	idleBackoff time.Duration
	observer    Observer
	log         *zap.SugaredLogger

	// closed is only written under the write lock; submitters hold the read
	// lock across the check and the enqueue.
	mu     sync.RWMutex
	closed bool
	once   sync.Once

	submitted atomic.Int64
	completed atomic.Int64
	failed    atomic.Int64
	broken    atomic.Int64
}

func NewScheduler(nbWorkers int, opts ...Option) (*Scheduler, error) {
	if nbWorkers <= 0 {
		return nil, srvErrors.NewInvalidArgumentError("number of workers must be positive, got %d", nbWorkers)
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		tasks:      queue.New[task](),
		mainCtx:    ctx,
		mainCancel: cancel,
		observer:   noopObserver{},
		log:        zap.S().Named("scheduler"),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.executors = make([]*loop.Executor, 0, nbWorkers)
	for range nbWorkers {
		s.executors = append(s.executors, loop.New(s.poll))
	}

	s.log.Infow("scheduler started", "workers", nbWorkers, "idle_backoff", s.idleBackoff)

	return s, nil
}

// AddWork submits w and returns its future immediately.
func (s *Scheduler) AddWork(w Work[any]) *Future[any] {
	return Submit(s, w)
}

// Submit enqueues w on s. It never blocks on the workers. After Close the
// returned future is already resolved with a ClosedPoolError.
func Submit[T any](s *Scheduler, w Work[T]) *Future[T] {
	f := newFuture[T]()

	t := task{
		id: f.id,
		run: func(ctx context.Context) {
			start := time.Now()
			v, err := invoke(ctx, f.id, w)
			if err != nil {
				var tf *srvErrors.TaskFailureError
				if errors.As(err, &tf) && tf.Panicked() {
					s.log.Errorw("task panicked", "task_id", f.id, "panic", tf.Panic)
				} else {
					s.log.Debugw("task failed", "task_id", f.id, "error", err)
				}
			}
			f.resolve(v, err)
			s.done(time.Since(start), err)
		},
		abandon: func(err error) {
			f.fail(err)
		},
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		f.fail(srvErrors.NewClosedPoolError())
		return f
	}

	s.submitted.Add(1)
	s.observer.TaskSubmitted()
	s.tasks.Enqueue(t)

	return f
}

// invoke runs w, turning a returned error or a panic into a TaskFailureError.
func invoke[T any](ctx context.Context, id uuid.UUID, w Work[T]) (v T, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			var zero T
			v, err = zero, srvErrors.NewTaskPanicError(id, rec)
		}
	}()

	v, err = w(ctx)
	if err != nil {
		err = srvErrors.NewTaskFailureError(id, err)
	}
	return v, err
}

// Size returns the number of workers. It never changes.
func (s *Scheduler) Size() int {
	return len(s.executors)
}

// QueueSize returns the number of tasks waiting for a worker. Diagnostic only.
func (s *Scheduler) QueueSize() int {
	return s.tasks.Size()
}

func (s *Scheduler) Stats() Stats {
	return Stats{
		Workers:   s.Size(),
		Pending:   s.QueueSize(),
		Submitted: s.submitted.Load(),
		Completed: s.completed.Load(),
		Failed:    s.failed.Load(),
		Broken:    s.broken.Load(),
	}
}

// Close stops every worker and waits for in-flight tasks to finish with their
// own outcome. Tasks still queued are never run; their futures resolve with a
// BrokenError. The context passed to work is cancelled only once every worker
// has exited. Close is idempotent.
//
// Close waits for the worker it is called from, so work must not call it
// directly. Work that needs to shut the scheduler down calls it on a new
// goroutine.
func (s *Scheduler) Close() {
	s.once.Do(func() {
		s.mu.Lock()
		s.closed = true
		s.mu.Unlock()

		for _, e := range s.executors {
			e.Stop()
		}
		for _, e := range s.executors {
			if err := e.Join(); err != nil {
				s.log.Errorw("failed to join worker", "error", err)
			}
		}
		s.mainCancel()

		abandoned := 0
		for {
			t, ok := s.tasks.TryDequeue()
			if !ok {
				break
			}
			t.abandon(srvErrors.NewBrokenError(t.id))
			s.broken.Add(1)
			s.observer.TaskBroken()
			abandoned++
		}
		if abandoned > 0 {
			s.log.Warnw("abandoned pending tasks", "count", abandoned)
		}

		s.log.Infow("scheduler closed", "workers", len(s.executors))
	})
}

// poll is the body of every worker loop.
func (s *Scheduler) poll() {
	t, ok := s.tasks.TryDequeue()
	if !ok {
		s.idle()
		return
	}

	defer func() {
		// the task recovers its own panics; this guards the observer and
		// anything else running on the worker.
		if rec := recover(); rec != nil {
			s.log.Errorw("worker recovered from panic", "task_id", t.id, "panic", rec)
		}
	}()

	t.run(s.mainCtx)
}

func (s *Scheduler) idle() {
	if s.idleBackoff > 0 {
		time.Sleep(s.idleBackoff)
		return
	}
	runtime.Gosched()
}

func (s *Scheduler) done(elapsed time.Duration, err error) {
	if err != nil {
		s.failed.Add(1)
	} else {
		s.completed.Add(1)
	}
	s.observer.TaskCompleted(elapsed, err)
}
