package mock

import (
	"context"

	"github.com/fwojciec/oscar"
)

var _ oscar.TermService = (*TermService)(nil)

// TermService is a mock implementation of oscar.TermService.
type TermService struct {
	FindTermsFn func(ctx context.Context) ([]oscar.Term, error)
}

func (s *TermService) FindTerms(ctx context.Context) ([]oscar.Term, error) {
	return s.FindTermsFn(ctx)
}

var _ oscar.TermParser = (*TermParser)(nil)

// TermParser is a mock implementation of oscar.TermParser.
type TermParser struct {
	ParseTermsFn func(html string) ([]oscar.Term, error)
}

func (p *TermParser) ParseTerms(html string) ([]oscar.Term, error) {
	return p.ParseTermsFn(html)
}
