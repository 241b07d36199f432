// Package harvest coordinates retrieval, parsing, and storage of term catalogs.
package harvest

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/fwojciec/oscar"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of terms harvested at once when
// Concurrency is not set.
const DefaultConcurrency = 2

// Harvester retrieves term documents, parses them and stores snapshots.
type Harvester struct {
	Retriever   oscar.Retriever
	Parser      oscar.Parser
	Snapshots   oscar.SnapshotService
	RateLimiter oscar.RateLimiter
	Concurrency int
	RetryDelays []time.Duration
	Logger      LogFunc
}

// Result holds the outcome of a harvest.
type Result struct {
	Saved     int
	Unchanged int
	Failed    int
	Courses   int
	Sections  int
}

// ProgressEvent reports progress during a harvest.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Term      string
	Snapshot  *oscar.Snapshot
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressSaved
	ProgressUnchanged
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting harvest progress.
type ProgressFunc func(event ProgressEvent)

// termResult holds the outcome of processing a single term.
type termResult struct {
	term      string
	snapshot  *oscar.Snapshot
	unchanged bool
	err       error
}

// Harvest processes each term and stores a snapshot for every term whose
// document changed since its latest snapshot. Failures of individual terms
// are counted and reported through progress; they do not stop the harvest.
func (h *Harvester) Harvest(ctx context.Context, terms []string, progress ProgressFunc) (*Result, error) {
	if len(terms) == 0 {
		return &Result{}, nil
	}

	concurrency := h.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	resultCh := make(chan termResult, len(terms))

	var completed atomic.Int64
	total := len(terms)

	notify(progress, ProgressEvent{Type: ProgressStarted, Total: total})

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, term := range terms {
			g.Go(func() error {
				resultCh <- h.processTerm(gctx, term)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Snapshots are stored from this goroutine only, in completion order.
	result := &Result{}
	for r := range resultCh {
		n := int(completed.Add(1))
		event := ProgressEvent{Completed: n, Total: total, Term: r.term}

		switch {
		case r.err != nil:
			result.Failed++
			event.Type, event.Error = ProgressFailed, r.err
		case r.unchanged:
			result.Unchanged++
			event.Type = ProgressUnchanged
		default:
			if err := h.Snapshots.CreateSnapshot(ctx, r.snapshot); err != nil {
				result.Failed++
				event.Type, event.Error = ProgressFailed, fmt.Errorf("store snapshot: %w", err)
				break
			}
			result.Saved++
			result.Courses += len(r.snapshot.Catalog)
			result.Sections += r.snapshot.Catalog.SectionCount()
			event.Type, event.Snapshot = ProgressSaved, r.snapshot
		}

		notify(progress, event)
	}

	notify(progress, ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})

	if err := ctx.Err(); err != nil {
		return result, err
	}
	return result, nil
}

// processTerm retrieves and parses a single term.
func (h *Harvester) processTerm(ctx context.Context, term string) termResult {
	result := termResult{term: term}

	delays := h.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	retrieveFn := func(ctx context.Context, term string) (string, error) {
		if h.RateLimiter != nil {
			if err := h.RateLimiter.Wait(ctx); err != nil {
				return "", err
			}
		}
		return h.Retriever.Retrieve(ctx, term)
	}
	doc, err := RetrieveWithRetryDelays(ctx, term, retrieveFn, h.Logger, delays)
	if err != nil {
		result.err = fmt.Errorf("retrieve %s: %w", term, err)
		return result
	}

	hash := ComputeHash(doc)

	latest, err := h.Snapshots.FindSnapshots(ctx, oscar.SnapshotFilter{Term: &term, Limit: 1})
	if err != nil {
		result.err = fmt.Errorf("find latest snapshot: %w", err)
		return result
	}
	if len(latest) > 0 && latest[0].DocumentHash == hash {
		result.unchanged = true
		return result
	}

	catalog, err := h.Parser.Parse(doc)
	if err != nil {
		result.err = fmt.Errorf("parse %s: %w", term, err)
		return result
	}

	result.snapshot = &oscar.Snapshot{
		Term:         term,
		DocumentHash: hash,
		Catalog:      catalog,
	}
	return result
}

func notify(progress ProgressFunc, event ProgressEvent) {
	if progress != nil {
		progress(event)
	}
}
