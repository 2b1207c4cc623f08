package matches

import (
	"context"
	"log"
	"sync"
	"time"
)

// Refresher re-fetches the feed on a fixed period while the
// authenticated view is visible and hands each batch to the handler.
// It delivers once immediately on Start.
type Refresher struct {
	feed     Feed
	interval time.Duration
	handler  func([]Match)

	done      chan struct{}
	wg        sync.WaitGroup
	startOnce sync.Once
	stopOnce  sync.Once
}

// NewRefresher creates a stopped refresher. A non-positive interval
// defaults to 30 seconds.
func NewRefresher(feed Feed, interval time.Duration, handler func([]Match)) *Refresher {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Refresher{
		feed:     feed,
		interval: interval,
		handler:  handler,
		done:     make(chan struct{}),
	}
}

// Start launches the refresh loop. Starting twice is a no-op.
func (r *Refresher) Start() {
	r.startOnce.Do(func() {
		r.wg.Add(1)
		go r.run()
	})
}

// Stop halts the loop and waits for it to exit. Stopping a refresher
// that never started, or stopping twice, is a no-op.
func (r *Refresher) Stop() {
	r.stopOnce.Do(func() {
		close(r.done)
	})
	r.wg.Wait()
}

func (r *Refresher) run() {
	defer r.wg.Done()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.deliver()
	for {
		select {
		case <-ticker.C:
			r.deliver()
		case <-r.done:
			return
		}
	}
}

func (r *Refresher) deliver() {
	list, err := r.feed.Live(context.Background())
	if err != nil {
		log.Print("scorematch: live feed fetch failed: ", err)
		return
	}
	if r.handler != nil {
		r.handler(list)
	}
}
