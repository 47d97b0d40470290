package worker

import (
	"runtime"
	"sync"

	"github.com/getsentry/sentry-go"
)

var workerQueue = make(chan func(), runtime.NumCPU())

func init() {
	for i := 0; i < runtime.NumCPU(); i++ {
		go worker()
	}
}

func worker() {
	defer sentry.Recover()

	for {
		f, ok := <-workerQueue
		if !ok {
			return
		}

		f()
	}
}

// To be used by a function that may be CPU intensive.
func Submit(f func()) {
	workerQueue <- f
}

// Go ties f to the wait group, for fan-out work (e.g. several independent
// prediction calls within one tick) that must be combined before the tick's
// output is finalized. It hands f to the pool when a slot is free and runs it
// inline otherwise, so fan-out issued from a pool worker can never deadlock
// against a saturated queue.
func Go(wg *sync.WaitGroup, f func()) {
	wg.Add(1)
	job := func() {
		defer wg.Done()
		f()
	}
	select {
	case workerQueue <- job:
	default:
		job()
	}
}

// Detached runs f on its own goroutine, outside the pool, with the same panic
// reporting the pool workers have. For long-lived or blocking work that would
// otherwise occupy a pool slot while waiting on fan-out.
func Detached(f func()) {
	go func() {
		defer sentry.Recover()
		f()
	}()
}
