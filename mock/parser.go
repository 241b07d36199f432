package mock

import "github.com/fwojciec/oscar"

var _ oscar.Parser = (*Parser)(nil)

// Parser is a mock implementation of oscar.Parser.
type Parser struct {
	ParseFn func(document string) (oscar.Catalog, error)
}

func (p *Parser) Parse(document string) (oscar.Catalog, error) {
	return p.ParseFn(document)
}
