// Package metrics exports scheduler activity as Prometheus metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kubev2v/workpool/pkg/scheduler"
)

const namespace = "workpool"

// Collector implements scheduler.Observer.
type Collector struct {
	submitted prometheus.Counter
	completed prometheus.Counter
	failed    prometheus.Counter
	broken    prometheus.Counter
	duration  prometheus.Histogram
}

var _ scheduler.Observer = (*Collector)(nil)

func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		submitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tasks_submitted_total",
			Help:      "Number of tasks accepted by the scheduler.",
		}),
		completed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tasks_completed_total",
			Help:      "Number of tasks that ran and returned a value.",
		}),
		failed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tasks_failed_total",
			Help:      "Number of tasks that ran and returned an error or panicked.",
		}),
		broken: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tasks_broken_total",
			Help:      "Number of queued tasks dropped when the scheduler closed.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "task_duration_seconds",
			Help:      "Time spent running a task on a worker.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
	}
	reg.MustRegister(c.submitted, c.completed, c.failed, c.broken, c.duration)
	return c
}

func (c *Collector) TaskSubmitted() {
	c.submitted.Inc()
}

func (c *Collector) TaskCompleted(elapsed time.Duration, err error) {
	c.duration.Observe(elapsed.Seconds())
	if err != nil {
		c.failed.Inc()
		return
	}
	c.completed.Inc()
}

func (c *Collector) TaskBroken() {
	c.broken.Inc()
}

// RegisterScheduler exposes the pool size and the pending queue length of s.
func RegisterScheduler(reg prometheus.Registerer, s *scheduler.Scheduler) {
	reg.MustRegister(
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "workers",
			Help:      "Number of scheduler workers.",
		}, func() float64 { return float64(s.Size()) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "queue_size",
			Help:      "Tasks waiting for a worker.",
		}, func() float64 { return float64(s.QueueSize()) }),
	)
}
