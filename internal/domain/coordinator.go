// Package domain implements the incremental search engine: pattern
// compilation, file enumeration, line scanning and the coordinator that ties
// them to a live-editing front end.
package domain

import (
	"context"
	"iter"
	"log/slog"
	"runtime"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"tgrep.dev/pkg/tgrep/internal/adapter"
	m "tgrep.dev/pkg/tgrep/internal/model"
)

// DefaultDebounce is how long the coordinator waits for further edits
// before starting a search.
const DefaultDebounce = 50 * time.Millisecond

// Options tunes the coordinator.
type Options struct {
	// Parallel bounds how many files are scanned at once. Zero means NumCPU.
	Parallel int
	// Debounce coalesces updates arriving within the window. Zero starts
	// every search immediately.
	Debounce time.Duration
}

// Coordinator owns the lifecycle of "the current search".
type Coordinator interface {
	// Update requests a search for text over roots. An invalid pattern is
	// returned as *PatternCompileError and leaves the current search alone.
	// Empty text stops searching and clears the results.
	Update(text string, roots []m.Path) error
	// Current returns a snapshot of the latest outcome.
	Current() m.Outcome
	// Generation returns the generation of the latest request.
	Generation() m.Generation
	// Wait blocks until the latest request reaches a terminal status or ctx is done.
	Wait(ctx context.Context) m.Outcome
	// Close cancels any search and waits for its workers to exit.
	Close()
}

type coordinator struct {
	enumerator FileEnumerator
	scanner    LineScanner
	store      adapter.ResultStore
	parallel   int
	debounce   time.Duration

	generation atomic.Uint64

	mu      sync.Mutex
	current *run
	closed  bool
	wg      sync.WaitGroup
}

// run is one generation's worth of work.
type run struct {
	request m.SearchRequest
	ctx     context.Context
	cancel  context.CancelFunc
	timer   *time.Timer
	done    chan struct{}
}

type fileResult struct {
	index   int
	matches []m.Match
}

// NewCoordinator creates a Coordinator publishing into store.
func NewCoordinator(
	enumerator FileEnumerator,
	scanner LineScanner,
	store adapter.ResultStore,
	opts Options,
) Coordinator {
	parallel := opts.Parallel
	if parallel <= 0 {
		parallel = runtime.NumCPU()
	}

	return &coordinator{
		enumerator: enumerator,
		scanner:    scanner,
		store:      store,
		parallel:   parallel,
		debounce:   opts.Debounce,
	}
}

func (c *coordinator) Update(text string, roots []m.Path) error {
	pattern, err := Compile(text)
	if err != nil {
		slog.Debug("Ignoring invalid pattern", "pattern", text, "error", err)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrCoordinatorClosed
	}

	gen := m.Generation(c.generation.Add(1))
	c.stopLocked()

	if pattern == nil {
		c.current = nil
		c.store.Reset(gen, "", m.Idle)
		slog.Debug("Search cleared", "generation", gen)

		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	r := &run{
		request: m.SearchRequest{
			Pattern:    pattern,
			Roots:      slices.Clone(roots),
			Generation: gen,
		},
		ctx:    ctx,
		cancel: cancel,
		done:   make(chan struct{}),
	}

	c.current = r
	c.store.Reset(gen, text, m.Running)
	c.wg.Add(1)

	if c.debounce <= 0 {
		go c.execute(r)
	} else {
		r.timer = time.AfterFunc(c.debounce, func() { c.execute(r) })
	}

	return nil
}

// stopLocked cancels the current run. A run still waiting on its debounce
// timer is retired here since execute will never see it.
func (c *coordinator) stopLocked() {
	r := c.current
	if r == nil {
		return
	}

	r.cancel()

	if r.timer != nil && r.timer.Stop() {
		close(r.done)
		c.wg.Done()
	}
}

func (c *coordinator) Current() m.Outcome {
	return c.store.Current()
}

func (c *coordinator) Generation() m.Generation {
	return m.Generation(c.generation.Load())
}

func (c *coordinator) Wait(ctx context.Context) m.Outcome {
	for {
		c.mu.Lock()
		r := c.current
		c.mu.Unlock()

		if r == nil {
			return c.store.Current()
		}

		select {
		case <-r.done:
		case <-ctx.Done():
			return c.store.Current()
		}

		c.mu.Lock()
		latest := c.current == r
		c.mu.Unlock()

		if latest {
			return c.store.Current()
		}
	}
}

func (c *coordinator) Close() {
	c.mu.Lock()
	c.closed = true
	c.stopLocked()
	c.mu.Unlock()

	c.wg.Wait()
}

func (c *coordinator) superseded(r *run) bool {
	return r.ctx.Err() != nil || c.generation.Load() != uint64(r.request.Generation)
}

func (c *coordinator) execute(r *run) {
	defer c.wg.Done()
	defer close(r.done)

	gen := r.request.Generation
	started := time.Now()

	status, reason := c.search(r)
	c.store.SetStatus(gen, status, reason)

	slog.Debug("Search finished",
		"generation", gen,
		"pattern", r.request.Pattern.Source(),
		"status", status,
		"elapsed", time.Since(started),
	)
}

func (c *coordinator) search(r *run) (m.Status, string) {
	if c.superseded(r) {
		return m.Cancelled, ""
	}

	slog.Debug("Search started",
		"generation", r.request.Generation,
		"pattern", r.request.Pattern.Source(),
		"roots", r.request.Roots,
		"parallel", c.parallel,
	)

	files, err := c.enumerator.Enumerate(r.ctx, r.request.Roots)
	if err != nil {
		slog.Warn("Search failed", "generation", r.request.Generation, "error", err)
		return m.Failed, err.Error()
	}

	results := make(chan fileResult, c.parallel)
	merged := make(chan struct{})

	go func() {
		defer close(merged)
		c.mergeInOrder(r, results)
	}()

	c.scanAll(r, files, results)
	close(results)
	<-merged

	if c.superseded(r) {
		return m.Cancelled, ""
	}

	return m.Completed, ""
}

// scanAll feeds candidates to a bounded worker pool, checking for
// supersession between files.
func (c *coordinator) scanAll(r *run, files iter.Seq[m.FileCandidate], results chan<- fileResult) {
	var group errgroup.Group
	group.SetLimit(c.parallel)

	index := 0

	for file := range files {
		if c.superseded(r) {
			break
		}

		current, candidate := index, file
		index++

		group.Go(func() error {
			results <- c.scanFile(r, current, candidate)
			return nil
		})
	}

	_ = group.Wait()
}

// scanFile buffers one file's matches. Files the scanner rejects, or that
// were interrupted by cancellation, contribute nothing.
func (c *coordinator) scanFile(r *run, index int, file m.FileCandidate) fileResult {
	var matches []m.Match

	for match, err := range c.scanner.Scan(r.ctx, file, r.request.Pattern) {
		if err != nil {
			slog.Debug("Skipping file", "path", file.Path, "error", err)
			return fileResult{index: index}
		}

		matches = append(matches, match)
	}

	if r.ctx.Err() != nil {
		return fileResult{index: index}
	}

	return fileResult{index: index, matches: matches}
}

// mergeInOrder publishes results in enumeration order: a finished file is
// held back until every file enumerated before it has been published.
func (c *coordinator) mergeInOrder(r *run, results <-chan fileResult) {
	pending := make(map[int]fileResult)
	next := 0

	for result := range results {
		pending[result.index] = result

		var batch []m.Match

		scanned := 0

		for {
			ready, ok := pending[next]
			if !ok {
				break
			}

			delete(pending, next)

			batch = append(batch, ready.matches...)
			scanned++
			next++
		}

		if scanned == 0 {
			continue
		}

		if !c.store.Publish(r.request.Generation, scanned, batch...) {
			// A newer generation owns the store; stop the rest of this run.
			r.cancel()
		}
	}
}
