package inventory

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

// decode parses a JSON fixture the way callers typically hand dumps over.
func decode(t *testing.T, raw string) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &m))
	return m
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func bufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func newFlat(t *testing.T, items ...string) *FlatTranslator {
	t.Helper()
	tr, err := NewFlatTranslator(items, WithLogger(discardLogger()))
	require.NoError(t, err)
	return tr
}

func newVariant(t *testing.T, useVariants bool, items ...string) *VariantTranslator {
	t.Helper()
	tr, err := NewVariantTranslator(items, useVariants, WithLogger(discardLogger()))
	require.NoError(t, err)
	return tr
}
