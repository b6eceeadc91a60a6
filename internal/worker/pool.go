// Package worker checks batches of FEN lines on a bounded set of
// goroutines and hands the results back in input order.
package worker

import (
	"context"
	"sort"
	"sync"
)

// WorkItem is one input line.
type WorkItem struct {
	Text  string
	Index int // position in the input batch
}

// ProcessResult is what a ProcessFunc made of one line.
type ProcessResult struct {
	Text    string
	Index   int
	Payload interface{} // typed by the caller
	Error   error
}

// ProcessFunc handles a single line. It must be safe for concurrent use.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool feeds submitted lines to a fixed number of workers.
type Pool struct {
	workers int
	buffer  int
	process ProcessFunc

	items   chan WorkItem
	results chan ProcessResult
	wg      sync.WaitGroup

	ctx    context.Context
	cancel context.CancelFunc
}

// Option configures a Pool.
type Option func(*Pool)

// WithWorkers sets the number of worker goroutines. Values below 1 are
// ignored.
func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n >= 1 {
			p.workers = n
		}
	}
}

// WithBufferSize sets the capacity of the item and result channels.
// Values below 1 are ignored.
func WithBufferSize(size int) Option {
	return func(p *Pool) {
		if size >= 1 {
			p.buffer = size
		}
	}
}

// New returns a pool with one worker and a buffer of 16 unless opts say
// otherwise. Call Start before submitting.
func New(process ProcessFunc, opts ...Option) *Pool {
	p := &Pool{workers: 1, buffer: 16, process: process}
	for _, opt := range opts {
		opt(p)
	}
	p.items = make(chan WorkItem, p.buffer)
	p.results = make(chan ProcessResult, p.buffer)
	return p
}

// Start launches the workers. Once ctx is done they skip every item not
// yet picked up.
func (p *Pool) Start(ctx context.Context) {
	p.ctx, p.cancel = context.WithCancel(ctx)
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.work()
	}
}

// work runs until the item channel is closed. Once the pool is stopped it
// keeps draining items without processing them, so Submit never deadlocks.
func (p *Pool) work() {
	defer p.wg.Done()
	for item := range p.items {
		if p.Stopped() {
			continue
		}
		p.results <- p.process(item)
	}
}

// Submit queues item, blocking while the buffer is full. It returns false
// without queueing once the pool is stopped.
func (p *Pool) Submit(item WorkItem) bool {
	if p.Stopped() {
		return false
	}
	select {
	case p.items <- item:
		return true
	case <-p.ctx.Done():
		return false
	}
}

// Stopped reports whether the start context is done.
func (p *Pool) Stopped() bool {
	return p.ctx.Err() != nil
}

// Close ends submission, waits for the workers and closes Results. It
// must be called exactly once, after the last Submit.
func (p *Pool) Close() {
	close(p.items)
	p.wg.Wait()
	close(p.results)
	p.cancel()
}

// Results is closed by Close once every worker has returned.
func (p *Pool) Results() <-chan ProcessResult {
	return p.results
}

// Ordered drains results and returns them sorted by input index.
func Ordered(results <-chan ProcessResult) []ProcessResult {
	var out []ProcessResult
	for r := range results {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}

// Run processes every text with process on n workers and returns the
// results in input order. If ctx ends early only the lines already
// processed are returned.
func Run(ctx context.Context, texts []string, n int, process ProcessFunc) []ProcessResult {
	pool := New(process, WithWorkers(n), WithBufferSize(min(len(texts), 128)))
	pool.Start(ctx)

	go func() {
		defer pool.Close()
		for i, text := range texts {
			if !pool.Submit(WorkItem{Text: text, Index: i}) {
				return
			}
		}
	}()
	return Ordered(pool.Results())
}
