package models

import "time"

type RunnerState string

const (
	// RunnerStateReady - waiting for a run request
	RunnerStateReady RunnerState = "ready"
	// RunnerStateRunning - tasks are being submitted or awaited
	RunnerStateRunning RunnerState = "running"
	// RunnerStateCompleted - the last run finished, report available
	RunnerStateCompleted RunnerState = "completed"
	// RunnerStateError - the last run was interrupted
	RunnerStateError RunnerState = "error"
)

// RunnerStatus holds the current Runner state and metadata.
type RunnerStatus struct {
	State RunnerState
	Error error
}

// Report summarizes one workload run.
type Report struct {
	Workers    int           `json:"workers"`
	Submitters int           `json:"submitters"`
	Tasks      int           `json:"tasks"`
	Succeeded  int           `json:"succeeded"`
	Failed     int           `json:"failed"`
	Broken     int           `json:"broken"`
	Elapsed    time.Duration `json:"elapsed"`
	// Busy is the sum of the durations reported by successful tasks.
	Busy time.Duration `json:"busy"`
}

// Throughput is the number of tasks resolved per second.
func (r Report) Throughput() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Succeeded+r.Failed+r.Broken) / r.Elapsed.Seconds()
}
