package loop

import (
	"sync"
	"sync/atomic"

	srvErrors "github.com/kubev2v/workpool/pkg/errors"
)

// Executor runs an action in a loop on its own goroutine.
// The zero value represents no running execution.
type Executor struct {
	stop *atomic.Bool
	done chan struct{}
	mu   sync.Mutex
}

// New starts a goroutine calling action until the executor is stopped.
func New(action func()) *Executor {
	stop := new(atomic.Bool)
	done := make(chan struct{})

	go run(stop, done, action)

	return &Executor{
		stop: stop,
		done: done,
	}
}

func run(stop *atomic.Bool, done chan struct{}, action func()) {
	defer close(done)
	for !stop.Load() {
		action()
	}
}

// Stop asks the loop to exit after the current iteration. It does not wait.
func (e *Executor) Stop() {
	if e.stop != nil {
		e.stop.Store(true)
	}
}

// Stopped reports whether Stop (or Join) has been called.
func (e *Executor) Stopped() bool {
	return e.stop == nil || e.stop.Load()
}

// Joinable reports whether a goroutine is attached and not yet joined.
func (e *Executor) Joinable() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.done != nil
}

// Join stops the loop and waits for its goroutine to exit.
// Joining an executor twice, or the zero value, is an InvalidStateError.
func (e *Executor) Join() error {
	e.mu.Lock()
	done := e.done
	e.done = nil
	e.mu.Unlock()

	if done == nil {
		return srvErrors.NewInvalidStateError("executor is not joinable")
	}

	e.Stop()
	<-done

	return nil
}

// Close stops and joins the executor if it is still joinable.
func (e *Executor) Close() error {
	e.Stop()
	if !e.Joinable() {
		return nil
	}
	if err := e.Join(); err != nil && !srvErrors.IsInvalidStateError(err) {
		return err
	}
	return nil
}
