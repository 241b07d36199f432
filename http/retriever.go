package http

import (
	"context"
	"net/url"
	"strings"

	"github.com/fwojciec/oscar"
)

// Ensure Retriever implements oscar.Retriever at compile time.
var _ oscar.Retriever = (*Retriever)(nil)

// placeholderFields are submitted once with the value "dummy" ahead of the
// real criteria. Banner expects each multi-select to carry this placeholder.
var placeholderFields = []string{
	"sel_subj", "sel_day", "sel_schd", "sel_insm", "sel_camp",
	"sel_levl", "sel_sess", "sel_instr", "sel_ptrm", "sel_attr",
}

// Retriever fetches the section search results for every section in a term.
type Retriever struct {
	client *Client
}

// NewRetriever creates a new Retriever using c.
func NewRetriever(c *Client) *Retriever {
	return &Retriever{client: c}
}

// Retrieve submits the unfiltered class search for term and returns the
// rendered results page.
func (r *Retriever) Retrieve(ctx context.Context, term string) (string, error) {
	if term == "" {
		return "", oscar.Errorf(oscar.EINVALID, "term required")
	}
	return r.client.postForm(ctx, SearchPath, SearchForm(term), TermPath)
}

// SearchForm returns the urlencoded search criteria matching every section
// in term: all subjects, schedule types, campuses, parts of term,
// instructors, attributes and times.
func SearchForm(term string) string {
	parts := make([]string, 0, len(placeholderFields)+17)
	for _, name := range placeholderFields {
		parts = append(parts, name+"=dummy")
	}

	criteria := []struct{ name, value string }{
		{"term_in", term},
		{"sel_subj", ""},
		{"sel_crse", ""},
		{"sel_title", ""},
		{"sel_schd", "%"},
		{"sel_from_cred", ""},
		{"sel_to_cred", ""},
		{"sel_camp", "%"},
		{"sel_ptrm", "%"},
		{"sel_instr", "%"},
		{"sel_attr", "%"},
		{"begin_hh", "0"},
		{"begin_mi", "0"},
		{"begin_ap", "a"},
		{"end_hh", "0"},
		{"end_mi", "0"},
		{"end_ap", "a"},
	}
	for _, c := range criteria {
		parts = append(parts, c.name+"="+url.QueryEscape(c.value))
	}

	return strings.Join(parts, "&")
}
