package scheduler

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type Work[T any] func(ctx context.Context) (T, error)

// Func adapts a plain function to Work.
func Func[T any](fn func() T) Work[T] {
	return func(context.Context) (T, error) {
		return fn(), nil
	}
}

// Call binds a at submission time.
func Call[A, T any](fn func(A) (T, error), a A) Work[T] {
	return func(context.Context) (T, error) {
		return fn(a)
	}
}

func Call2[A, B, T any](fn func(A, B) (T, error), a A, b B) Work[T] {
	return func(context.Context) (T, error) {
		return fn(a, b)
	}
}

type Result[T any] struct {
	Data T
	Err  error
}

// Future is the one-shot handle to the outcome of submitted work. It is
// resolved exactly once, with the work's result, its failure, or a
// BrokenError if the scheduler was closed before the work ran.
type Future[T any] struct {
	id     uuid.UUID
	done   chan struct{}
	once   sync.Once
	result Result[T]
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{
		id:   uuid.New(),
		done: make(chan struct{}),
	}
}

func (f *Future[T]) ID() uuid.UUID {
	return f.id
}

// resolve stores the outcome. Only the first call has an effect.
func (f *Future[T]) resolve(data T, err error) bool {
	resolved := false
	f.once.Do(func() {
		f.result = Result[T]{Data: data, Err: err}
		close(f.done)
		resolved = true
	})
	return resolved
}

func (f *Future[T]) fail(err error) bool {
	var zero T
	return f.resolve(zero, err)
}

// Done is closed once the future is resolved.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Resolved reports whether the outcome is available without blocking.
func (f *Future[T]) Resolved() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Get blocks until the future is resolved. It can be called any number of
// times and always returns the same outcome.
func (f *Future[T]) Get() (T, error) {
	<-f.done
	return f.result.Data, f.result.Err
}

// Wait is Get bounded by ctx. The future stays valid when ctx expires.
func (f *Future[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.result.Data, f.result.Err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// C returns a channel that receives the result once it is available.
func (f *Future[T]) C() <-chan Result[T] {
	c := make(chan Result[T], 1)
	select {
	case <-f.done:
		c <- f.result
	default:
		go func() {
			<-f.done
			c <- f.result
		}()
	}
	return c
}
