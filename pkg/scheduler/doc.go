// Package scheduler implements a fixed-size worker pool that executes
// submitted work asynchronously and hands back a Future for each submission.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────────┐
//	│                           Scheduler                                 │
//	│                                                                     │
//	│  ┌──────────────┐      ┌──────────────┐      ┌──────────────┐       │
//	│  │ loop.Executor│      │ loop.Executor│      │ loop.Executor│       │
//	│  │   Worker 1   │      │   Worker 2   │      │   Worker N   │       │
//	│  └──────┬───────┘      └──────┬───────┘      └──────┬───────┘       │
//	│         │  poll()             │  poll()             │  poll()       │
//	│         └─────────────────────┼─────────────────────┘               │
//	│                               │ TryDequeue                          │
//	│  ┌────────────────────────────┴────────────────────────────┐        │
//	│  │                 queue.Queue[task] (FIFO)                │        │
//	│  │  [task1] [task2] [task3] ...                            │        │
//	│  └─────────────────────────────────────────────────────────┘        │
//	│                               ▲ Enqueue                             │
//	│                               │                                     │
//	│                     AddWork(fn) / Submit(s, fn)                     │
//	└─────────────────────────────────────────────────────────────────────┘
//
// # Core Components
//
// Scheduler:
//   - Owns N workers (configured at creation, never resized)
//   - Owns one queue shared by every worker
//   - Supports shutdown via Close()
//
// Worker:
//   - A loop.Executor whose action is poll(): try to dequeue one task, run it
//     if there is one, otherwise yield (or sleep, see WithIdleBackoff)
//   - Never blocks waiting for work, so submission latency stays low
//   - Survives panicking work
//
// Future:
//   - Write-once handle to the outcome of one submission
//   - Get() blocks, Wait(ctx) blocks with a bound, C() delivers a Result
//   - Reading more than once returns the same outcome
//
// # Work Execution Flow
//
//  1. Client calls AddWork(fn) or Submit(s, fn)
//     │
//     ▼
//  2. Scheduler creates a Future and a task closure that runs fn and
//     resolves the Future with its value or failure
//     │
//     ▼
//  3. The task is enqueued (read lock held, so Close cannot slip in between
//     the closed check and the enqueue); the Future is returned immediately
//     │
//     ▼
//  4. Some idle worker dequeues the task. The queue lock is released before
//     the task runs, so long tasks never hold up other workers
//     │
//     ▼
//  5. The task runs fn(ctx):
//     - value      → Future resolved with Result{Data: value}
//     - error      → Future resolved with a TaskFailureError wrapping it
//     - panic      → Future resolved with a TaskFailureError carrying the
//     panic value; the worker keeps running
//
// # Ordering
//
// Tasks leave the queue in the order their Enqueue calls acquired the queue
// lock. With one worker this is also completion order. With more workers two
// tasks enqueued back to back may complete in either order.
//
// # Shutdown
//
// Close() is idempotent (sync.Once):
//
//  1. Marks the scheduler closed under the write lock. From here on AddWork
//     returns a Future already failed with ClosedPoolError
//  2. Stops every worker, then joins them. A worker that is running a task
//     finishes it first, with a live context, and its Future gets the task's
//     own outcome
//  3. Cancels the context passed to work. No task is running anymore; only
//     goroutines the work started itself can observe it
//  4. Drains the queue. Every task that never started has its Future
//     resolved with BrokenError
//
// Close joins the worker it is called from, so calling it synchronously from
// inside work never returns. Work that wants to shut the scheduler down uses
// `go sched.Close()`.
//
// Every submission therefore ends in exactly one of: ran once and resolved
// with its outcome, or never ran and resolved Broken (or ClosedPool).
//
// # Usage Example
//
//	sched, err := scheduler.NewScheduler(4)
//	if err != nil {
//	    return err
//	}
//	defer sched.Close()
//
//	future := scheduler.Submit(sched, func(ctx context.Context) (int, error) {
//	    return 42, nil
//	})
//
//	v, err := future.Get()
//	switch {
//	case srvErrors.IsBrokenError(err):
//	    // scheduler closed before the work ran
//	case err != nil:
//	    // work failed
//	default:
//	    log.Printf("result: %d", v)
//	}
package scheduler
