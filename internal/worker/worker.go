package worker

import "sync"

// Task represents a unit of work executed by the queue.
type Task func()

// Queue runs submitted tasks one at a time, in submission order.
type Queue interface {
	Do(Task)
	Stop()
}

// NewQueue starts a queue backed by a single goroutine. Do blocks until
// the submitted task has run, so a caller always observes its own write.
func NewQueue() Queue {
	q := &queue{jobs: make(chan job)}
	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		for j := range q.jobs {
			if j.task != nil {
				j.task()
			}
			close(j.done)
		}
	}()
	return q
}

type job struct {
	task Task
	done chan struct{}
}

type queue struct {
	jobs chan job
	wg   sync.WaitGroup
}

func (q *queue) Do(t Task) {
	done := make(chan struct{})
	q.jobs <- job{task: t, done: done}
	<-done
}

func (q *queue) Stop() {
	close(q.jobs)
	q.wg.Wait()
}
