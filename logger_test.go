package shape

import (
	"context"
	"log/slog"
	"testing"
)

func TestNopHandler(t *testing.T) {
	h := nopHandler{}
	for _, level := range []slog.Level{
		slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError,
	} {
		if h.Enabled(context.Background(), level) {
			t.Errorf("nopHandler enabled at %v", level)
		}
	}
	if err := h.Handle(context.Background(), slog.Record{}); err != nil {
		t.Errorf("Handle() = %v, want nil", err)
	}
	if h.WithAttrs(nil) == nil || h.WithGroup("g") == nil {
		t.Error("derived handlers must not be nil")
	}
}

func TestLogger_DefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() = nil")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger is not silent")
	}
}

func TestSetLogger(t *testing.T) {
	h := &captureHandler{}
	SetLogger(slog.New(h))
	defer SetLogger(nil)

	Logger().Warn("probe")
	if len(h.messages) != 1 || h.messages[0] != "probe" {
		t.Errorf("messages = %v, want [probe]", h.messages)
	}

	SetLogger(nil)
	if Logger() == nil {
		t.Fatal("Logger() = nil after SetLogger(nil)")
	}
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) did not restore the silent default")
	}
}
