package oscar

import "context"

// Term is an academic term offered by the registration system.
type Term struct {
	// ID is the identifier submitted as term_in (e.g. "202008").
	ID string `json:"id"`

	// Description is the human-readable label (e.g. "Fall 2020").
	Description string `json:"description"`

	// ViewOnly is set for terms that are closed for registration.
	ViewOnly bool `json:"viewOnly"`
}

// TermService lists the terms available in the registration system.
type TermService interface {
	FindTerms(ctx context.Context) ([]Term, error)
}

// TermParser reads the term selection page into terms.
type TermParser interface {
	// ParseTerms returns the terms in page order.
	// Returns EINVALID if the page cannot be parsed.
	ParseTerms(html string) ([]Term, error)
}
