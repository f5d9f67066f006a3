package logging_test

import (
	"io"
	"log/slog"
	"testing"
)

func slogToBuffer(t *testing.T, w io.Writer) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
