// Package fs provides file-based export of course catalogs.
package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/oscar"
)

// Ensure Writer implements oscar.CatalogWriter at compile time.
var _ oscar.CatalogWriter = (*Writer)(nil)

// Writer writes catalogs to a directory as <term>.json and <term>.txt.
// Each file is written to a temporary name first and renamed into place,
// so readers never observe a partial export.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// JSONPath returns the path of the JSON export for term.
func (w *Writer) JSONPath(term string) string {
	return filepath.Join(w.baseDir, term+".json")
}

// TextPath returns the path of the plain-text export for term.
func (w *Writer) TextPath(term string) string {
	return filepath.Join(w.baseDir, term+".txt")
}

// WriteCatalog writes catalog as indented JSON and as a plain-text listing.
func (w *Writer) WriteCatalog(ctx context.Context, term string, catalog oscar.Catalog) error {
	if term == "" {
		return oscar.Errorf(oscar.EINVALID, "term required")
	}
	if strings.ContainsAny(term, `/\`) {
		return oscar.Errorf(oscar.EINVALID, "invalid term %q", term)
	}
	if catalog == nil {
		catalog = oscar.Catalog{}
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		return err
	}
	if err := writeAtomic(w.JSONPath(term), append(data, '\n')); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	text := oscar.FormatCatalog(catalog)
	if text != "" {
		text += "\n"
	}
	return writeAtomic(w.TextPath(term), []byte(text))
}

func writeAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
