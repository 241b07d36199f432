package mock

import (
	"context"

	"github.com/fwojciec/oscar"
)

var _ oscar.CatalogWriter = (*CatalogWriter)(nil)

// CatalogWriter is a mock implementation of oscar.CatalogWriter.
type CatalogWriter struct {
	WriteCatalogFn func(ctx context.Context, term string, catalog oscar.Catalog) error
}

func (w *CatalogWriter) WriteCatalog(ctx context.Context, term string, catalog oscar.Catalog) error {
	return w.WriteCatalogFn(ctx, term, catalog)
}
