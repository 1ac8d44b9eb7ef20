// Package loop provides Executor, a goroutine that repeats an action until it
// is told to stop.
//
// An Executor starts running as soon as it is created:
//
//	e := loop.New(func() {
//	    // one iteration of work
//	})
//	...
//	e.Stop()
//	if err := e.Join(); err != nil {
//	    // the executor was already joined
//	}
//
// The stop flag is checked once per iteration, so Join returns at most one
// action call after Stop. The flag lives on the heap and is shared with the
// goroutine, so the Executor value itself can be passed around freely.
//
// The action must not panic. A panic inside the loop is not recovered and
// terminates the process; callers that run untrusted code (see the scheduler
// package) recover inside the action.
package loop
