package workload

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kubev2v/workpool/internal/config"
	"github.com/kubev2v/workpool/pkg/scheduler"
	"github.com/kubev2v/workpool/pkg/zipf"
)

// Unit is one synthetic task. Rank is its Zipf rank; Duration how long the
// task sleeps.
type Unit struct {
	Index    int
	Rank     int64
	Duration time.Duration
	Work     scheduler.Work[time.Duration]
}

// Builder builds a sequence of Units whose durations follow a Zipf
// distribution: most tasks are short, a few take up to MaxDuration.
type Builder struct {
	ranks       *zipf.Generator
	maxDuration time.Duration
	failEvery   int
	panicEvery  int
}

func NewBuilder(cfg config.Workload) (*Builder, error) {
	g, err := zipf.NewGenerator(cfg.Population, cfg.Theta, cfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("failed to create rank generator: %w", err)
	}
	return &Builder{
		ranks:       g,
		maxDuration: cfg.MaxDuration,
		failEvery:   cfg.FailEvery,
		panicEvery:  cfg.PanicEvery,
	}, nil
}

// Build creates n units. It is not safe for concurrent use.
func (b *Builder) Build(n int) []Unit {
	units := make([]Unit, 0, n)
	for i := range n {
		rank := b.ranks.Next()
		d := time.Duration(int64(b.maxDuration) * rank / b.ranks.N())
		units = append(units, Unit{
			Index:    i,
			Rank:     rank,
			Duration: d,
			Work:     b.work(i, d),
		})
	}
	return units
}

func (b *Builder) work(i int, d time.Duration) scheduler.Work[time.Duration] {
	// ordinal is 1-based so that fail-every=N hits the Nth task
	ordinal := i + 1
	return func(ctx context.Context) (time.Duration, error) {
		start := time.Now()

		if d > 0 {
			timer := time.NewTimer(d)
			select {
			case <-timer.C:
			case <-ctx.Done():
				timer.Stop()
				zap.S().Named("workload").Debugw("task interrupted", "index", i, "error", ctx.Err())
				return time.Since(start), ctx.Err()
			}
		}

		if b.panicEvery > 0 && ordinal%b.panicEvery == 0 {
			panic(fmt.Sprintf("synthetic panic in task %d", i))
		}
		if b.failEvery > 0 && ordinal%b.failEvery == 0 {
			return time.Since(start), fmt.Errorf("synthetic failure in task %d", i)
		}

		return time.Since(start), nil
	}
}
