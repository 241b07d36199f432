package main

import (
	"fmt"

	"github.com/fwojciec/oscar"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	snapshot, err := deps.Snapshots.FindLatestSnapshot(deps.Ctx, c.Term)
	if err != nil {
		if oscar.ErrorCode(err) == oscar.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: no catalog stored for term %q. Use 'oscar fetch %s' first.\n", c.Term, c.Term)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", oscar.ErrorMessage(err))
		return err
	}

	catalog := snapshot.Catalog
	if c.Code != "" || c.CRN != "" {
		catalog = filterCatalog(catalog, c.Code, c.CRN)
		if len(catalog) == 0 {
			fmt.Fprintln(deps.Stderr, "error: no matching sections")
			return oscar.Errorf(oscar.ENOTFOUND, "no matching sections")
		}
	}

	fmt.Fprintf(deps.Stdout, "Term %s, fetched %s\n\n", snapshot.Term, snapshot.FetchedAt.Format("2006-01-02 15:04"))
	if len(catalog) > 0 {
		fmt.Fprintln(deps.Stdout, oscar.FormatCatalog(catalog))
	}
	return nil
}

// filterCatalog returns the courses and sections matching code and crn.
// Empty arguments match everything.
func filterCatalog(catalog oscar.Catalog, code, crn string) oscar.Catalog {
	filtered := oscar.Catalog{}
	for _, course := range catalog {
		if code != "" && course.Code != code {
			continue
		}
		for label, section := range course.Sections {
			if crn != "" && section.RegistrationNumber != crn {
				continue
			}
			filtered.AddSection(course.Code, course.Name, label, section)
		}
	}
	return filtered
}
