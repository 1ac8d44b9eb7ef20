package errors

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

type InvalidArgumentError struct {
	msg string
}

func NewInvalidArgumentError(format string, args ...any) *InvalidArgumentError {
	return &InvalidArgumentError{msg: fmt.Sprintf(format, args...)}
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument: %s", e.msg)
}

func IsInvalidArgumentError(err error) bool {
	var e *InvalidArgumentError
	return errors.As(err, &e)
}

type InvalidStateError struct {
	msg string
}

func NewInvalidStateError(format string, args ...any) *InvalidStateError {
	return &InvalidStateError{msg: fmt.Sprintf(format, args...)}
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("invalid state: %s", e.msg)
}

func IsInvalidStateError(err error) bool {
	var e *InvalidStateError
	return errors.As(err, &e)
}

// TaskFailureError carries the failure of a submitted task: either the error it
// returned or the value it panicked with.
type TaskFailureError struct {
	TaskID uuid.UUID
	Panic  any
	err    error
}

func NewTaskFailureError(id uuid.UUID, err error) *TaskFailureError {
	return &TaskFailureError{TaskID: id, err: err}
}

func NewTaskPanicError(id uuid.UUID, rec any) *TaskFailureError {
	return &TaskFailureError{TaskID: id, Panic: rec, err: fmt.Errorf("task panicked: %v", rec)}
}

func (e *TaskFailureError) Error() string {
	return fmt.Sprintf("task %s failed: %v", e.TaskID, e.err)
}

func (e *TaskFailureError) Unwrap() error {
	return e.err
}

// Panicked reports whether the task panicked instead of returning an error.
func (e *TaskFailureError) Panicked() bool {
	return e.Panic != nil
}

func IsTaskFailureError(err error) bool {
	var e *TaskFailureError
	return errors.As(err, &e)
}

// BrokenError is delivered to the future of a task that was still queued when
// the scheduler was closed. The task never ran.
type BrokenError struct {
	TaskID uuid.UUID
}

func NewBrokenError(id uuid.UUID) *BrokenError {
	return &BrokenError{TaskID: id}
}

func (e *BrokenError) Error() string {
	return fmt.Sprintf("task %s abandoned: scheduler closed before it ran", e.TaskID)
}

func IsBrokenError(err error) bool {
	var e *BrokenError
	return errors.As(err, &e)
}

type ClosedPoolError struct{}

func NewClosedPoolError() *ClosedPoolError {
	return &ClosedPoolError{}
}

func (e *ClosedPoolError) Error() string {
	return "scheduler is closed"
}

func IsClosedPoolError(err error) bool {
	var e *ClosedPoolError
	return errors.As(err, &e)
}

type RunInProgressError struct{}

func NewRunInProgressError() *RunInProgressError {
	return &RunInProgressError{}
}

func (e *RunInProgressError) Error() string {
	return "a workload run is already in progress"
}

func IsRunInProgressError(err error) bool {
	var e *RunInProgressError
	return errors.As(err, &e)
}
