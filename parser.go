package oscar

// Parser extracts a catalog from a raw section search document.
type Parser interface {
	// Parse returns every course found in the document keyed by course code.
	// Extraction failures carry EBOUNDARY, EHEADER, ECREDITS or EMEETING.
	Parse(document string) (Catalog, error)
}
