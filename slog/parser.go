package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/oscar"
)

// Ensure LoggingParser implements oscar.Parser.
var _ oscar.Parser = (*LoggingParser)(nil)

// LoggingParser wraps a Parser with debug logging.
type LoggingParser struct {
	next   oscar.Parser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next oscar.Parser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser and logs catalog size.
func (p *LoggingParser) Parse(document string) (catalog oscar.Catalog, err error) {
	defer func(begin time.Time) {
		p.logger.Info("parse",
			"bytes", len(document),
			"courses", len(catalog),
			"sections", catalog.SectionCount(),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Parse(document)
}
