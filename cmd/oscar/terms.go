package main

import (
	"fmt"

	"github.com/fwojciec/oscar"
)

// Run executes the terms command.
func (c *TermsCmd) Run(deps *Dependencies) error {
	terms, err := deps.Terms.FindTerms(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", oscar.ErrorMessage(err))
		return err
	}

	for _, t := range terms {
		if t.ViewOnly && !c.All {
			continue
		}
		if t.ViewOnly {
			fmt.Fprintf(deps.Stdout, "%s  %s  (view only)\n", t.ID, t.Description)
			continue
		}
		fmt.Fprintf(deps.Stdout, "%s  %s\n", t.ID, t.Description)
	}

	return nil
}
