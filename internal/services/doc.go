// Package services implements the business logic layer for workpool.
//
// # Runner
//
// Runner drives a synthetic workload through a shared scheduler and produces
// a report. It is the component the CLI and the diagnostics API talk to.
//
// State Machine:
//
//	┌───────┐    ┌─────────┐    ┌───────────┐
//	│ Ready │───►│ Running │───►│ Completed │
//	└───────┘    └─────────┘    └───────────┘
//	                  │               │
//	                  │               │ (run again)
//	                  ▼               ▼
//	             ┌─────────┐     ┌─────────┐
//	             │  Error  │────►│ Running │
//	             └─────────┘     └─────────┘
//
// States:
//   - Ready: Initial state, no run requested yet
//   - Running: Units are being submitted or their futures awaited
//   - Completed: The last run finished, Report() returns its summary
//   - Error: The last run was interrupted (context cancelled while waiting)
//
// Key behaviors:
//   - Only one run can be in progress at a time (returns RunInProgressError otherwise)
//   - Units are built by a WorkBuilder and submitted from Submitters
//     goroutines (errgroup), each owning a contiguous slice of units
//   - Every future is awaited; outcomes are tallied as succeeded, failed
//     (TaskFailureError) or broken (BrokenError / ClosedPoolError)
//   - After all futures resolve the runner polls QueueSize() with exponential
//     backoff, bounded by DrainWait, so the report reflects a settled queue
//
// Usage:
//
//	builder, _ := workload.NewBuilder(cfg.Workload)
//	runner := services.NewRunner(sched, builder, services.RunnerOptions{
//	    Tasks:      cfg.Workload.Tasks,
//	    Submitters: cfg.Workload.Submitters,
//	    DrainWait:  cfg.Workload.DrainWait,
//	})
//	report, err := runner.Run(ctx)
//	status := runner.Status()
//
// # Thread Safety
//
// Runner:
//   - State protected by sync.Mutex
//   - Run may be called from any goroutine; concurrent calls are rejected
package services
