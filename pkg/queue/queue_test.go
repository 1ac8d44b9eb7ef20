package queue_test

import (
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kubev2v/workpool/pkg/queue"
)

var _ = Describe("Queue", func() {
	It("should report empty on a new queue", func() {
		q := queue.New[int]()

		v, ok := q.TryDequeue()
		Expect(ok).To(BeFalse())
		Expect(v).To(BeZero())
		Expect(q.Size()).To(BeZero())
	})

	It("should dequeue in insertion order", func() {
		q := queue.New[string]()
		for _, s := range []string{"a", "b", "c"} {
			q.Enqueue(s)
		}
		Expect(q.Size()).To(Equal(3))

		var got []string
		for {
			v, ok := q.TryDequeue()
			if !ok {
				break
			}
			got = append(got, v)
		}
		Expect(got).To(Equal([]string{"a", "b", "c"}))
		Expect(q.Size()).To(BeZero())
	})

	It("should grow without a capacity limit", func() {
		q := queue.New[int]()
		for i := range 10000 {
			q.Enqueue(i)
		}
		Expect(q.Size()).To(Equal(10000))

		v, ok := q.TryDequeue()
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal(0))
	})

	It("should hold nil function values", func() {
		q := queue.New[func()]()
		q.Enqueue(nil)

		v, ok := q.TryDequeue()
		Expect(ok).To(BeTrue())
		Expect(v).To(BeNil())
	})

	It("should neither lose nor duplicate items under concurrent access", func() {
		q := queue.New[int]()
		const producers, perProducer = 8, 1000

		var wg sync.WaitGroup
		for p := range producers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range perProducer {
					q.Enqueue(p*perProducer + i)
				}
			}()
		}

		var (
			mu   sync.Mutex
			seen = make(map[int]int)
		)
		consume := func() {
			for {
				v, ok := q.TryDequeue()
				if !ok {
					return
				}
				mu.Lock()
				seen[v]++
				mu.Unlock()
			}
		}

		var cwg sync.WaitGroup
		for range 4 {
			cwg.Add(1)
			go func() {
				defer cwg.Done()
				consume()
			}()
		}

		wg.Wait()
		cwg.Wait()
		consume()

		Expect(seen).To(HaveLen(producers * perProducer))
		for _, n := range seen {
			Expect(n).To(Equal(1))
		}
		Expect(q.Size()).To(BeZero())
	})
})
