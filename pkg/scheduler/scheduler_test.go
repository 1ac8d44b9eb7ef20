package scheduler_test

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	srvErrors "github.com/kubev2v/workpool/pkg/errors"
	"github.com/kubev2v/workpool/pkg/scheduler"
)

type countingObserver struct {
	submitted atomic.Int64
	completed atomic.Int64
	failed    atomic.Int64
	broken    atomic.Int64
}

func (o *countingObserver) TaskSubmitted() { o.submitted.Add(1) }

func (o *countingObserver) TaskCompleted(_ time.Duration, err error) {
	if err != nil {
		o.failed.Add(1)
		return
	}
	o.completed.Add(1)
}

func (o *countingObserver) TaskBroken() { o.broken.Add(1) }

var _ = Describe("Scheduler", func() {
	var s *scheduler.Scheduler

	AfterEach(func() {
		if s != nil {
			s.Close()
		}
	})

	Describe("NewScheduler", func() {
		It("should reject a non-positive number of workers", func() {
			for _, n := range []int{0, -1} {
				sched, err := scheduler.NewScheduler(n)
				Expect(err).To(HaveOccurred())
				Expect(srvErrors.IsInvalidArgumentError(err)).To(BeTrue())
				Expect(sched).To(BeNil())
			}
		})

		It("should report a constant number of workers", func() {
			var err error
			s, err = scheduler.NewScheduler(3)
			Expect(err).NotTo(HaveOccurred())
			Expect(s.Size()).To(Equal(3))

			for range 10 {
				s.AddWork(func(ctx context.Context) (any, error) { return nil, nil })
			}
			Expect(s.Size()).To(Equal(3))
		})

		It("should terminate when closed right after creation", func() {
			for _, n := range []int{1, 2, 8} {
				sched, err := scheduler.NewScheduler(n)
				Expect(err).NotTo(HaveOccurred())

				closed := make(chan struct{})
				go func() {
					sched.Close()
					close(closed)
				}()
				Eventually(closed, 2*time.Second).Should(BeClosed())
			}
		})
	})

	Describe("AddWork", func() {
		It("should add work and return a future", func() {
			var err error
			s, err = scheduler.NewScheduler(1)
			Expect(err).NotTo(HaveOccurred())

			future := s.AddWork(func(ctx context.Context) (any, error) {
				return "done", nil
			})
			Expect(future).NotTo(BeNil())

			var result scheduler.Result[any]
			Eventually(future.C(), 2*time.Second).Should(Receive(&result))
			Expect(result.Err).NotTo(HaveOccurred())
			Expect(result.Data).To(Equal("done"))
		})

		It("should return typed results through Submit", func() {
			var err error
			s, err = scheduler.NewScheduler(2)
			Expect(err).NotTo(HaveOccurred())

			add := func(a, b int) (int, error) { return a + b, nil }
			future := scheduler.Submit(s, scheduler.Call2(add, 2, 3))

			v, err := future.Get()
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal(5))
		})

		It("should not block the submitter while workers are busy", func() {
			var err error
			s, err = scheduler.NewScheduler(1)
			Expect(err).NotTo(HaveOccurred())

			unblock := make(chan struct{})
			s.AddWork(func(ctx context.Context) (any, error) {
				<-unblock
				return nil, nil
			})

			submitted := make(chan struct{})
			go func() {
				for range 100 {
					s.AddWork(func(ctx context.Context) (any, error) { return nil, nil })
				}
				close(submitted)
			}()

			Eventually(submitted, 1*time.Second).Should(BeClosed())
			close(unblock)
		})
	})

	Describe("Run work", func() {
		It("should resolve all futures with the same constant", func() {
			var err error
			s, err = scheduler.NewScheduler(2)
			Expect(err).NotTo(HaveOccurred())

			f := func() int { return 3 }
			futures := make([]*scheduler.Future[int], 0, 6)
			for range 5 {
				futures = append(futures, scheduler.Submit(s, scheduler.Func(f)))
			}
			last := scheduler.Submit(s, scheduler.Func(f))
			futures = append(futures, last)

			v, err := last.Get()
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal(3))

			Eventually(s.QueueSize, 2*time.Second, 10*time.Millisecond).Should(BeZero())

			for _, future := range futures {
				v, err := future.Get()
				Expect(err).NotTo(HaveOccurred())
				Expect(v).To(Equal(3))
			}
		})

		It("should execute every task exactly once", func() {
			for _, workers := range []int{1, 3, 8} {
				for _, m := range []int{0, 1, 500} {
					sched, err := scheduler.NewScheduler(workers)
					Expect(err).NotTo(HaveOccurred())

					var counter atomic.Int64
					futures := make([]*scheduler.Future[any], 0, m)
					for range m {
						futures = append(futures, sched.AddWork(func(ctx context.Context) (any, error) {
							counter.Add(1)
							return nil, nil
						}))
					}

					for _, future := range futures {
						_, err := future.Get()
						Expect(err).NotTo(HaveOccurred())
					}
					Expect(counter.Load()).To(Equal(int64(m)))

					sched.Close()
					Expect(counter.Load()).To(Equal(int64(m)))
				}
			}
		})

		It("should accept concurrent submitters", func() {
			var err error
			s, err = scheduler.NewScheduler(4)
			Expect(err).NotTo(HaveOccurred())

			var (
				counter atomic.Int64
				mu      sync.Mutex
				futures []*scheduler.Future[any]
				wg      sync.WaitGroup
			)
			for range 8 {
				wg.Add(1)
				go func() {
					defer GinkgoRecover()
					defer wg.Done()
					for range 50 {
						f := s.AddWork(func(ctx context.Context) (any, error) {
							counter.Add(1)
							return nil, nil
						})
						mu.Lock()
						futures = append(futures, f)
						mu.Unlock()
					}
				}()
			}
			wg.Wait()

			for _, f := range futures {
				_, err := f.Get()
				Expect(err).NotTo(HaveOccurred())
			}
			Expect(counter.Load()).To(Equal(int64(400)))
			Eventually(func() int64 { return s.Stats().Completed }, 1*time.Second).Should(Equal(int64(400)))
		})

		It("should run tasks in FIFO order on a single worker", func() {
			var err error
			s, err = scheduler.NewScheduler(1)
			Expect(err).NotTo(HaveOccurred())

			var firstStart, secondEnd time.Time
			first := scheduler.Submit(s, func(ctx context.Context) (int, error) {
				firstStart = time.Now()
				time.Sleep(100 * time.Millisecond)
				return 1, nil
			})
			second := scheduler.Submit(s, func(ctx context.Context) (int, error) {
				secondEnd = time.Now()
				return 2, nil
			})

			v1, err := first.Get()
			Expect(err).NotTo(HaveOccurred())
			Expect(v1).To(Equal(1))

			v2, err := second.Get()
			Expect(err).NotTo(HaveOccurred())
			Expect(v2).To(Equal(2))

			Expect(secondEnd.Sub(firstStart)).To(BeNumerically(">=", 100*time.Millisecond))
		})

		It("should honor the idle backoff option", func() {
			var err error
			s, err = scheduler.NewScheduler(2, scheduler.WithIdleBackoff(time.Millisecond))
			Expect(err).NotTo(HaveOccurred())

			v, err := scheduler.Submit(s, scheduler.Func(func() string { return "ok" })).Get()
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal("ok"))
		})
	})

	Describe("Failures", func() {
		It("should deliver the work error through the future", func() {
			var err error
			s, err = scheduler.NewScheduler(1)
			Expect(err).NotTo(HaveOccurred())

			boom := errors.New("boom")
			future := s.AddWork(func(ctx context.Context) (any, error) {
				return nil, boom
			})

			_, err = future.Get()
			Expect(err).To(HaveOccurred())
			Expect(srvErrors.IsTaskFailureError(err)).To(BeTrue())
			Expect(errors.Is(err, boom)).To(BeTrue())
		})

		It("should recover from a panic and keep the worker alive", func() {
			var err error
			s, err = scheduler.NewScheduler(1)
			Expect(err).NotTo(HaveOccurred())

			panicking := s.AddWork(func(ctx context.Context) (any, error) {
				panic("worker exploded")
			})
			_, err = panicking.Get()
			Expect(srvErrors.IsTaskFailureError(err)).To(BeTrue())

			var tf *srvErrors.TaskFailureError
			Expect(errors.As(err, &tf)).To(BeTrue())
			Expect(tf.Panicked()).To(BeTrue())
			Expect(tf.Panic).To(Equal("worker exploded"))
			Expect(tf.TaskID).To(Equal(panicking.ID()))

			next := s.AddWork(func(ctx context.Context) (any, error) {
				return "still alive", nil
			})
			v, err := next.Get()
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal("still alive"))
		})

		It("should report failures to the observer", func() {
			obs := &countingObserver{}
			var err error
			s, err = scheduler.NewScheduler(2, scheduler.WithObserver(obs))
			Expect(err).NotTo(HaveOccurred())

			ok := s.AddWork(func(ctx context.Context) (any, error) { return nil, nil })
			ko := s.AddWork(func(ctx context.Context) (any, error) { return nil, errors.New("ko") })
			_, _ = ok.Get()
			_, _ = ko.Get()

			Eventually(func() int64 { return obs.completed.Load() + obs.failed.Load() }, 1*time.Second).Should(Equal(int64(2)))
			Expect(obs.submitted.Load()).To(Equal(int64(2)))
			Expect(obs.failed.Load()).To(Equal(int64(1)))
		})
	})

	Describe("Close behavior", func() {
		It("should return a closed pool error when AddWork is called after Close", func() {
			var err error
			s, err = scheduler.NewScheduler(1)
			Expect(err).NotTo(HaveOccurred())
			s.Close()

			future := s.AddWork(func(ctx context.Context) (any, error) {
				return "done", nil
			})

			Expect(future.Resolved()).To(BeTrue())
			_, err = future.Get()
			Expect(srvErrors.IsClosedPoolError(err)).To(BeTrue())
		})

		It("should be idempotent", func() {
			var err error
			s, err = scheduler.NewScheduler(2)
			Expect(err).NotTo(HaveOccurred())

			s.Close()
			s.Close()
		})

		It("should wait for in-flight work to finish on Close", func() {
			var err error
			s, err = scheduler.NewScheduler(1)
			Expect(err).NotTo(HaveOccurred())

			started := make(chan struct{})
			unblock := make(chan struct{})
			future := s.AddWork(func(ctx context.Context) (any, error) {
				close(started)
				<-unblock
				return "done", nil
			})
			Eventually(started, 1*time.Second).Should(BeClosed())

			closeDone := make(chan struct{})
			go func() {
				s.Close()
				close(closeDone)
			}()

			Consistently(closeDone, 200*time.Millisecond).ShouldNot(BeClosed())
			close(unblock)
			Eventually(closeDone, 1*time.Second).Should(BeClosed())

			v, err := future.Get()
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal("done"))
		})

		It("should break futures of tasks that never ran", func() {
			obs := &countingObserver{}
			var err error
			s, err = scheduler.NewScheduler(1, scheduler.WithObserver(obs))
			Expect(err).NotTo(HaveOccurred())

			started := make(chan struct{})
			unblock := make(chan struct{})
			var ran atomic.Bool

			s.AddWork(func(ctx context.Context) (any, error) {
				close(started)
				<-unblock
				return nil, nil
			})
			Eventually(started, 1*time.Second).Should(BeClosed())

			pending := s.AddWork(func(ctx context.Context) (any, error) {
				ran.Store(true)
				return nil, nil
			})
			Expect(s.QueueSize()).To(Equal(1))

			closeDone := make(chan struct{})
			go func() {
				s.Close()
				close(closeDone)
			}()

			// Close has stopped the only worker by now; releasing the running
			// task lets the join complete without dequeuing the pending one.
			Consistently(closeDone, 100*time.Millisecond).ShouldNot(BeClosed())
			close(unblock)
			Eventually(closeDone, 1*time.Second).Should(BeClosed())

			_, err = pending.Get()
			Expect(srvErrors.IsBrokenError(err)).To(BeTrue())
			Expect(ran.Load()).To(BeFalse())
			Expect(obs.broken.Load()).To(Equal(int64(1)))
			Expect(s.Stats().Broken).To(Equal(int64(1)))
			Expect(s.QueueSize()).To(BeZero())
		})

		It("should let in-flight work that watches its context finish with its own result", func() {
			var err error
			s, err = scheduler.NewScheduler(1)
			Expect(err).NotTo(HaveOccurred())

			started := make(chan struct{})
			future := scheduler.Submit(s, func(ctx context.Context) (int, error) {
				close(started)
				select {
				case <-time.After(200 * time.Millisecond):
					return 1, nil
				case <-ctx.Done():
					return 0, ctx.Err()
				}
			})
			Eventually(started, 1*time.Second).Should(BeClosed())

			s.Close()

			v, err := future.Get()
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal(1))
		})

		It("should cancel the work context only after every worker exited", func() {
			var err error
			s, err = scheduler.NewScheduler(1)
			Expect(err).NotTo(HaveOccurred())

			ctxs := make(chan context.Context, 1)
			_, err = s.AddWork(func(ctx context.Context) (any, error) {
				ctxs <- ctx
				return nil, nil
			}).Get()
			Expect(err).NotTo(HaveOccurred())

			workCtx := <-ctxs
			Expect(workCtx.Err()).NotTo(HaveOccurred())

			s.Close()
			Expect(workCtx.Err()).To(MatchError(context.Canceled))
		})

		It("should shut down when work closes the scheduler on a new goroutine", func() {
			var err error
			s, err = scheduler.NewScheduler(2)
			Expect(err).NotTo(HaveOccurred())
			sched := s

			future := scheduler.Submit(sched, func(ctx context.Context) (int, error) {
				go sched.Close()
				return 7, nil
			})

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			v, err := future.Wait(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal(7))

			Eventually(func() bool {
				_, err := scheduler.Submit(sched, func(context.Context) (int, error) { return 0, nil }).Get()
				return srvErrors.IsClosedPoolError(err)
			}, 2*time.Second, 10*time.Millisecond).Should(BeTrue())
		})
	})

	Describe("Goroutine cleanup", func() {
		It("should not leak goroutines after Close under load", func() {
			base := runtime.NumGoroutine()
			var err error
			s, err = scheduler.NewScheduler(4)
			Expect(err).NotTo(HaveOccurred())

			for i := 0; i < 200; i++ {
				s.AddWork(func(ctx context.Context) (any, error) {
					time.Sleep(time.Millisecond)
					return nil, nil
				})
			}

			time.Sleep(100 * time.Millisecond)
			s.Close()
			s = nil // prevent AfterEach from closing again

			Eventually(func() int {
				return runtime.NumGoroutine()
			}, 5*time.Second, 100*time.Millisecond).Should(BeNumerically("<=", base+10))
		})
	})
})
