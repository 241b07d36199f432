package http

import (
	"context"
	"fmt"

	"github.com/fwojciec/oscar"
)

// Ensure TermService implements oscar.TermService at compile time.
var _ oscar.TermService = (*TermService)(nil)

// TermService lists terms from the class schedule term selection page.
type TermService struct {
	client *Client
	parser oscar.TermParser
}

// NewTermService creates a new TermService that reads pages with parser.
func NewTermService(c *Client, parser oscar.TermParser) *TermService {
	return &TermService{client: c, parser: parser}
}

// FindTerms returns the terms offered on the term selection page.
func (s *TermService) FindTerms(ctx context.Context) ([]oscar.Term, error) {
	html, err := s.client.get(ctx, TermPath)
	if err != nil {
		return nil, fmt.Errorf("fetch term page: %w", err)
	}
	return s.parser.ParseTerms(html)
}
