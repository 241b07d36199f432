package main

import (
	"fmt"

	"github.com/fwojciec/oscar"
	"github.com/fwojciec/oscar/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	snapshot, err := deps.Snapshots.FindLatestSnapshot(deps.Ctx, c.Term)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", oscar.ErrorMessage(err))
		return err
	}

	writer := deps.Writer
	if writer == nil {
		writer = fs.NewWriter(c.Dir)
	}

	if err := writer.WriteCatalog(deps.Ctx, c.Term, snapshot.Catalog); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", oscar.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d courses, %d sections to %s\n",
		len(snapshot.Catalog), snapshot.Catalog.SectionCount(), c.Dir)
	return nil
}
