// File: concurrency/executor.go
// License: Apache-2.0
//
// Executor dispatches tasks across worker goroutines. Each worker drains a
// private SPSC ring fed by a single dispatcher goroutine, so every inbox has
// exactly one producer (the dispatcher) and one consumer (its worker) by
// construction. Submissions land on an unbounded overflow queue first; the
// dispatcher moves them into worker inboxes round-robin.

package concurrency

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/eapache/queue"

	"github.com/hotring/ringkit/spsc"
)

// TaskFunc is a unit of work.
type TaskFunc func()

const inboxCapacity = 256

// Executor manages a fixed pool of worker goroutines.
type Executor struct {
	mu       sync.Mutex
	overflow *queue.Queue // pending tasks not yet handed to a worker
	wake     chan struct{}
	stop     chan struct{}
	inboxes  []*spsc.LockFreeRing[TaskFunc]
	closed   atomic.Bool
	wg       sync.WaitGroup
}

// NewExecutor creates an executor with the given number of workers;
// numWorkers <= 0 means runtime.NumCPU().
func NewExecutor(numWorkers int) *Executor {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	e := &Executor{
		overflow: queue.New(),
		wake:     make(chan struct{}, 1),
		stop:     make(chan struct{}),
		inboxes:  make([]*spsc.LockFreeRing[TaskFunc], numWorkers),
	}
	for i := range e.inboxes {
		e.inboxes[i] = spsc.NewLockFreeRing[TaskFunc](inboxCapacity)
	}
	e.wg.Add(numWorkers + 1)
	for i := range e.inboxes {
		go e.worker(e.inboxes[i])
	}
	go e.dispatch()
	return e
}

// Submit enqueues a task. Returns ErrExecutorClosed after Close.
func (e *Executor) Submit(task TaskFunc) error {
	if e.closed.Load() {
		return ErrExecutorClosed
	}
	e.mu.Lock()
	e.overflow.Add(task)
	e.mu.Unlock()

	select {
	case e.wake <- struct{}{}:
	default: // dispatcher already has a pending wake
	}
	return nil
}

// NumWorkers returns the worker count.
func (e *Executor) NumWorkers() int { return len(e.inboxes) }

// Close stops the dispatcher and all workers and waits for them to exit.
// Tasks still queued at that point are dropped.
func (e *Executor) Close() {
	if e.closed.CompareAndSwap(false, true) {
		close(e.stop)
		e.wg.Wait()
	}
}

func (e *Executor) dispatch() {
	defer e.wg.Done()
	next := 0
	for {
		select {
		case <-e.stop:
			return
		case <-e.wake:
		}
		for {
			e.mu.Lock()
			if e.overflow.Length() == 0 {
				e.mu.Unlock()
				break
			}
			task := e.overflow.Peek().(TaskFunc)
			placed := false
			for i := 0; i < len(e.inboxes); i++ {
				idx := (next + i) % len(e.inboxes)
				if e.inboxes[idx].TryPush(task) {
					next = idx + 1
					placed = true
					break
				}
			}
			if placed {
				e.overflow.Remove()
			}
			e.mu.Unlock()
			if !placed {
				// Every inbox full; give workers a chance to drain.
				select {
				case <-e.stop:
					return
				default:
					runtime.Gosched()
				}
			}
		}
	}
}

func (e *Executor) worker(inbox *spsc.LockFreeRing[TaskFunc]) {
	defer e.wg.Done()
	idle := 0
	for {
		if task, ok := inbox.TryPop(); ok {
			safeRun(task)
			idle = 0
			continue
		}
		select {
		case <-e.stop:
			return
		default:
		}
		if idle++; idle < 64 {
			runtime.Gosched()
		} else {
			time.Sleep(50 * time.Microsecond)
		}
	}
}

// safeRun keeps a panicking task from taking its worker down.
func safeRun(task TaskFunc) {
	defer func() { recover() }()
	task()
}
