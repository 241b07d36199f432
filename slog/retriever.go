// Package slog provides logging decorators for oscar services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/oscar"
)

// Ensure LoggingRetriever implements oscar.Retriever.
var _ oscar.Retriever = (*LoggingRetriever)(nil)

// LoggingRetriever wraps a Retriever with debug logging.
type LoggingRetriever struct {
	next   oscar.Retriever
	logger *slog.Logger
}

// NewLoggingRetriever creates a new LoggingRetriever.
func NewLoggingRetriever(next oscar.Retriever, logger *slog.Logger) *LoggingRetriever {
	return &LoggingRetriever{next: next, logger: logger}
}

// Retrieve delegates to the wrapped retriever and logs the operation.
func (r *LoggingRetriever) Retrieve(ctx context.Context, term string) (document string, err error) {
	defer func(begin time.Time) {
		r.logger.Info("retrieve",
			"term", term,
			"bytes", len(document),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Retrieve(ctx, term)
}
