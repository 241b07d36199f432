package main

import (
	"fmt"

	"github.com/fwojciec/oscar"
	"github.com/fwojciec/oscar/harvest"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	terms := c.Terms
	if len(terms) == 0 {
		found, err := deps.Terms.FindTerms(deps.Ctx)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", oscar.ErrorMessage(err))
			return err
		}
		for _, t := range found {
			if !t.ViewOnly {
				terms = append(terms, t.ID)
			}
		}
		if len(terms) == 0 {
			fmt.Fprintln(deps.Stdout, "No open terms found.")
			return nil
		}
	}

	if c.Concurrency > 0 {
		deps.Harvester.Concurrency = c.Concurrency
	}

	progress := func(event harvest.ProgressEvent) {
		switch event.Type {
		case harvest.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Fetching %d terms\n", event.Total)
		case harvest.ProgressSaved:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] %s  %d courses, %d sections (%s)\n",
				event.Completed, event.Total, event.Term,
				len(event.Snapshot.Catalog), event.Snapshot.Catalog.SectionCount(), event.Snapshot.ID)
		case harvest.ProgressUnchanged:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] %s  unchanged\n", event.Completed, event.Total, event.Term)
		case harvest.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  [%d/%d] %s  failed: %v\n",
				event.Completed, event.Total, event.Term, event.Error)
		}
	}

	result, err := deps.Harvester.Harvest(deps.Ctx, terms, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", oscar.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %d, unchanged %d, failed %d (%d courses, %d sections)\n",
		result.Saved, result.Unchanged, result.Failed, result.Courses, result.Sections)

	if result.Failed > 0 {
		return fmt.Errorf("%d of %d terms failed", result.Failed, len(terms))
	}
	return nil
}
