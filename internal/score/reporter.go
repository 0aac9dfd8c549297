package score

import (
	"context"
	"io"
	"sync"

	"github.com/charmbracelet/log"
)

// Reporter submits scores on a background goroutine so a slow or absent
// server never stalls the caller. Submissions that arrive while the queue
// is full are dropped.
type Reporter struct {
	svc    Service
	logger *log.Logger
	queue  chan submission
	wg     sync.WaitGroup
	once   sync.Once

	mu        sync.Mutex
	closed    bool
	submitted int
	dropped   int
}

type submission struct {
	player string
	value  int
}

// NewReporter starts a reporter with room for size pending submissions.
func NewReporter(svc Service, size int, logger *log.Logger) *Reporter {
	if svc == nil {
		svc = Noop{}
	}
	if size <= 0 {
		size = 16
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	r := &Reporter{
		svc:    svc,
		logger: logger,
		queue:  make(chan submission, size),
	}
	r.wg.Add(1)
	go r.run()
	return r
}

// Submit queues a score. Returns false when the service is unavailable or
// the queue is full.
func (r *Reporter) Submit(player string, value int) bool {
	if !r.svc.Available() {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return false
	}
	select {
	case r.queue <- submission{player: player, value: value}:
		return true
	default:
		r.dropped++
		r.logger.Warn("score queue full, dropping submission", "score", value)
		return false
	}
}

// Close stops accepting submissions and waits for the queue to drain.
func (r *Reporter) Close() {
	r.once.Do(func() {
		r.mu.Lock()
		r.closed = true
		close(r.queue)
		r.mu.Unlock()
	})
	r.wg.Wait()
}

// Submitted returns how many submissions the service accepted.
func (r *Reporter) Submitted() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.submitted
}

// Dropped returns how many submissions were discarded.
func (r *Reporter) Dropped() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dropped
}

func (r *Reporter) run() {
	defer r.wg.Done()
	for s := range r.queue {
		ok := r.svc.SubmitScore(context.Background(), s.player, s.value)
		r.mu.Lock()
		if ok {
			r.submitted++
		}
		r.mu.Unlock()
	}
}
