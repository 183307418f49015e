// Package dispatch fans layout-scoring requests out over a bounded pool of
// persistent worker goroutines and exposes them over HTTP, reworking the
// reference implementation's per-connection thread model into a Go
// channel/WaitGroup pool sized to the host's CPU count.
package dispatch

import (
	"context"
	"runtime"
	"sync"

	"github.com/rbscholtus/layoutscore/internal/catalog"
	"github.com/rbscholtus/layoutscore/internal/corpus"
	"github.com/rbscholtus/layoutscore/internal/langdef"
	"github.com/rbscholtus/layoutscore/internal/scoring"
)

// BatchItem is one layout to score.
type BatchItem struct {
	Name    string
	Layout  string
	Weights scoring.ReducedWeights
}

// BatchResult is one item's outcome. Error is non-empty and Result is the
// zero value if scoring that item failed; a failure never affects sibling
// items in the same batch.
type BatchResult struct {
	Name   string
	Result scoring.ReducedResult
	Error  string
}

type task struct {
	item     BatchItem
	resultCh chan BatchResult
}

// Pool holds the immutable catalog, corpus tables and language table shared
// read-only by every worker, plus the persistent goroutine pool itself.
type Pool struct {
	cat    *catalog.Catalog
	tables *corpus.Tables
	lang   *langdef.Table

	tasks chan task
	wg    sync.WaitGroup
}

// NewPool starts workers persistent goroutines reading from an internal
// task queue. workers <= 0 defaults to runtime.GOMAXPROCS(0).
func NewPool(cat *catalog.Catalog, tables *corpus.Tables, lang *langdef.Table, workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		cat:    cat,
		tables: tables,
		lang:   lang,
		tasks:  make(chan task, workers*2),
	}
	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.run()
	}
	return p
}

func (p *Pool) run() {
	defer p.wg.Done()
	for t := range p.tasks {
		t.resultCh <- p.execute(t.item)
	}
}

func (p *Pool) execute(item BatchItem) BatchResult {
	layout, err := scoring.ParseLayoutString(item.Name, item.Layout, p.lang)
	if err != nil {
		return BatchResult{Name: item.Name, Error: "Invalid layout string."}
	}
	res, err := scoring.ScoreReduced(p.cat, p.tables, layout, item.Weights)
	if err != nil {
		return BatchResult{Name: item.Name, Error: err.Error()}
	}
	return BatchResult{Name: item.Name, Result: res}
}

// Submit enqueues one item and blocks for its result, or until ctx is done.
func (p *Pool) Submit(ctx context.Context, item BatchItem) BatchResult {
	resultCh := make(chan BatchResult, 1)
	select {
	case p.tasks <- task{item: item, resultCh: resultCh}:
	case <-ctx.Done():
		return BatchResult{Name: item.Name, Error: ctx.Err().Error()}
	}
	select {
	case r := <-resultCh:
		return r
	case <-ctx.Done():
		return BatchResult{Name: item.Name, Error: ctx.Err().Error()}
	}
}

// ScoreBatch dispatches every item concurrently and returns results in the
// same order as items, regardless of completion order.
func (p *Pool) ScoreBatch(ctx context.Context, items []BatchItem) []BatchResult {
	results := make([]BatchResult, len(items))
	var wg sync.WaitGroup
	wg.Add(len(items))
	for i, item := range items {
		go func(i int, item BatchItem) {
			defer wg.Done()
			results[i] = p.Submit(ctx, item)
		}(i, item)
	}
	wg.Wait()
	return results
}

// Close stops accepting new work and waits for in-flight tasks to drain.
func (p *Pool) Close() {
	close(p.tasks)
	p.wg.Wait()
}
