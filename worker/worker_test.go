package worker

import (
	"runtime"
	"sync"
	"testing"
	"time"
)

func TestGoRunsInlineWhenPoolSaturated(t *testing.T) {
	n := runtime.NumCPU()
	release := make(chan struct{})
	started := make(chan struct{})

	// Park every worker, then fill the queue to capacity so no slot is free.
	for i := 0; i < n; i++ {
		Submit(func() {
			started <- struct{}{}
			<-release
		})
	}
	for i := 0; i < n; i++ {
		<-started
	}
	for i := 0; i < n; i++ {
		Submit(func() {})
	}
	defer close(release)

	// Go must fall back to running the job on the calling goroutine instead
	// of blocking on the saturated queue.
	var wg sync.WaitGroup
	ran := false
	Go(&wg, func() { ran = true })
	if !ran {
		t.Fatal("expected the job to run inline with every worker busy and the queue full")
	}
	wg.Wait()
}

func TestDetachedRunsOffPool(t *testing.T) {
	done := make(chan struct{})
	Detached(func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("expected the detached job to run without a pool slot")
	}
}
