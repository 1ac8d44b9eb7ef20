package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kubev2v/workpool/internal/models"
	"github.com/kubev2v/workpool/internal/workload"
	srvErrors "github.com/kubev2v/workpool/pkg/errors"
	"github.com/kubev2v/workpool/pkg/scheduler"
)

type WorkBuilder interface {
	Build(n int) []workload.Unit
}

type RunnerOptions struct {
	Tasks      int
	Submitters int
	// DrainWait bounds the wait for the scheduler queue to empty after all
	// futures resolved.
	DrainWait time.Duration
}

type Runner struct {
	scheduler *scheduler.Scheduler
	builder   WorkBuilder
	opts      RunnerOptions

	mu     sync.Mutex
	status models.RunnerStatus
	report *models.Report
}

func NewRunner(s *scheduler.Scheduler, b WorkBuilder, opts RunnerOptions) *Runner {
	if opts.Submitters <= 0 {
		opts.Submitters = 1
	}
	return &Runner{
		scheduler: s,
		builder:   b,
		opts:      opts,
		status:    models.RunnerStatus{State: models.RunnerStateReady},
	}
}

func (r *Runner) Status() models.RunnerStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status
}

// Report returns the report of the last completed run.
func (r *Runner) Report() (models.Report, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.report == nil {
		return models.Report{}, false
	}
	return *r.report, true
}

// Run submits the workload and waits for every future. Only one run can be in
// progress at a time.
func (r *Runner) Run(ctx context.Context) (*models.Report, error) {
	if err := r.begin(); err != nil {
		return nil, err
	}
	return r.finish(r.run(ctx))
}

// Start is Run in the background. It fails synchronously if a run is already
// in progress; the outcome is observed through Status and Report.
func (r *Runner) Start(ctx context.Context) error {
	if err := r.begin(); err != nil {
		return err
	}
	go func() {
		if _, err := r.finish(r.run(ctx)); err != nil {
			zap.S().Named("runner").Errorw("run failed", "error", err)
		}
	}()
	return nil
}

func (r *Runner) begin() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.status.State == models.RunnerStateRunning {
		return srvErrors.NewRunInProgressError()
	}
	r.status = models.RunnerStatus{State: models.RunnerStateRunning}
	return nil
}

func (r *Runner) finish(report *models.Report, err error) (*models.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err != nil {
		r.status = models.RunnerStatus{State: models.RunnerStateError, Error: err}
		return nil, err
	}
	r.status = models.RunnerStatus{State: models.RunnerStateCompleted}
	r.report = report

	return report, nil
}

func (r *Runner) run(ctx context.Context) (*models.Report, error) {
	log := zap.S().Named("runner")

	units := r.builder.Build(r.opts.Tasks)
	futures := make([]*scheduler.Future[time.Duration], len(units))

	log.Infow("starting run", "tasks", len(units), "submitters", r.opts.Submitters, "workers", r.scheduler.Size())
	start := time.Now()

	// each submitter owns a contiguous slice of units
	g, gctx := errgroup.WithContext(ctx)
	chunk := (len(units) + r.opts.Submitters - 1) / max(r.opts.Submitters, 1)
	for lo := 0; lo < len(units); lo += chunk {
		hi := min(lo+chunk, len(units))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				futures[i] = scheduler.Submit(r.scheduler, units[i].Work)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to submit workload: %w", err)
	}

	report := &models.Report{
		Workers:    r.scheduler.Size(),
		Submitters: r.opts.Submitters,
		Tasks:      len(units),
	}
	for _, f := range futures {
		busy, err := f.Wait(ctx)
		switch {
		case err == nil:
			report.Succeeded++
			report.Busy += busy
		case srvErrors.IsBrokenError(err), srvErrors.IsClosedPoolError(err):
			report.Broken++
		case srvErrors.IsTaskFailureError(err):
			report.Failed++
		default:
			// ctx expired while waiting
			return nil, fmt.Errorf("failed to wait for task %s: %w", f.ID(), err)
		}
	}
	report.Elapsed = time.Since(start)

	if err := r.waitDrained(ctx); err != nil {
		log.Warnw("queue not drained", "queue_size", r.scheduler.QueueSize(), "error", err)
	}

	log.Infow("run completed",
		"succeeded", report.Succeeded,
		"failed", report.Failed,
		"broken", report.Broken,
		"elapsed", report.Elapsed)

	return report, nil
}

var errQueueNotEmpty = errors.New("scheduler queue not empty")

// waitDrained polls QueueSize until it reports 0. The size is advisory so
// this is only used to report a settled state, never for correctness.
func (r *Runner) waitDrained(ctx context.Context) error {
	if r.opts.DrainWait <= 0 {
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = time.Millisecond
	b.MaxInterval = 100 * time.Millisecond

	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		if r.scheduler.QueueSize() > 0 {
			return struct{}{}, errQueueNotEmpty
		}
		return struct{}{}, nil
	}, backoff.WithBackOff(b), backoff.WithMaxElapsedTime(r.opts.DrainWait))

	return err
}
