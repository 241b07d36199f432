// Package goquery reads Banner self-service HTML pages with goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/oscar"
)

// TermSelector matches the term drop-down of the class schedule and catalog
// term selection pages.
const TermSelector = `select[name="p_term"], select[name="cal_in"]`

// viewOnlySuffix marks terms closed for registration.
const viewOnlySuffix = "(View only)"

// Ensure TermParser implements oscar.TermParser at compile time.
var _ oscar.TermParser = (*TermParser)(nil)

// TermParser reads terms from a term selection page.
type TermParser struct{}

// NewTermParser creates a new TermParser.
func NewTermParser() *TermParser {
	return &TermParser{}
}

// ParseTerms returns the terms listed in the page's term drop-down in page
// order. Placeholder options without a value are skipped.
// Returns EINVALID if the page has no term drop-down.
func (p *TermParser) ParseTerms(html string) ([]oscar.Term, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, oscar.Errorf(oscar.EINVALID, "failed to parse HTML: %v", err)
	}

	sel := doc.Find(TermSelector).First()
	if sel.Length() == 0 {
		return nil, oscar.Errorf(oscar.EINVALID, "term selector not found")
	}

	terms := []oscar.Term{}
	sel.Find("option").Each(func(_ int, opt *goquery.Selection) {
		id, _ := opt.Attr("value")
		id = strings.TrimSpace(id)
		if id == "" {
			return
		}

		desc := strings.TrimSpace(opt.Text())
		viewOnly := strings.HasSuffix(desc, viewOnlySuffix)
		if viewOnly {
			desc = strings.TrimSpace(strings.TrimSuffix(desc, viewOnlySuffix))
		}

		terms = append(terms, oscar.Term{
			ID:          id,
			Description: desc,
			ViewOnly:    viewOnly,
		})
	})

	return terms, nil
}
