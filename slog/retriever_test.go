package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/oscar/mock"
	oscarslog "github.com/fwojciec/oscar/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingRetriever_Retrieve(t *testing.T) {
	t.Parallel()

	t.Run("logs retrieve with bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Retriever{
			RetrieveFn: func(ctx context.Context, term string) (string, error) {
				return "<html>content</html>", nil
			},
		}

		retriever := oscarslog.NewLoggingRetriever(inner, logger)
		document, err := retriever.Retrieve(context.Background(), "202008")

		require.NoError(t, err)
		assert.Equal(t, "<html>content</html>", document)
		output := buf.String()
		assert.Contains(t, output, "retrieve")
		assert.Contains(t, output, "term=202008")
		assert.Contains(t, output, "bytes=20")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Retriever{
			RetrieveFn: func(ctx context.Context, term string) (string, error) {
				return "", errors.New("network error")
			},
		}

		retriever := oscarslog.NewLoggingRetriever(inner, logger)
		_, err := retriever.Retrieve(context.Background(), "202008")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"network error\"")
	})
}
