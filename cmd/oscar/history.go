package main

import (
	"fmt"

	"github.com/fwojciec/oscar"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	snapshots, err := deps.Snapshots.FindSnapshots(deps.Ctx, oscar.SnapshotFilter{
		Term:  &c.Term,
		Limit: c.Limit,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", oscar.ErrorMessage(err))
		return err
	}

	if len(snapshots) == 0 {
		fmt.Fprintf(deps.Stdout, "No snapshots for term %s. Use 'oscar fetch %s' to create one.\n", c.Term, c.Term)
		return nil
	}

	for _, s := range snapshots {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", s.ID, s.FetchedAt.Format("2006-01-02 15:04:05"), s.DocumentHash)
	}
	return nil
}
