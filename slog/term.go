package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/oscar"
)

// Ensure LoggingTermService implements oscar.TermService.
var _ oscar.TermService = (*LoggingTermService)(nil)

// LoggingTermService wraps a TermService with debug logging.
type LoggingTermService struct {
	next   oscar.TermService
	logger *slog.Logger
}

// NewLoggingTermService creates a new LoggingTermService.
func NewLoggingTermService(next oscar.TermService, logger *slog.Logger) *LoggingTermService {
	return &LoggingTermService{next: next, logger: logger}
}

// FindTerms delegates to the wrapped service and logs the operation.
func (s *LoggingTermService) FindTerms(ctx context.Context) (terms []oscar.Term, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find terms",
			"count", len(terms),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindTerms(ctx)
}
