package logger

import (
	"context"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
)

const tagKey = "tag" // Attribute key used for tag filtering

// filteringHandler drops records by tag or originating package before
// passing them to the wrapped handler.
type filteringHandler struct {
	base slog.Handler
	cfg  *Config
}

func newFilteringHandler(base slog.Handler, cfg *Config) *filteringHandler {
	return &filteringHandler{base: base, cfg: cfg}
}

func (h *filteringHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.base.Enabled(ctx, level)
}

func (h *filteringHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.cfg == nil || h.allowed(r) {
		return h.base.Handle(ctx, r)
	}
	return nil
}

func (h *filteringHandler) allowed(r slog.Record) bool {
	if h.cfg.disabledPackagesSet != nil && r.PC != 0 {
		frames := runtime.CallersFrames([]uintptr{r.PC})
		frame, _ := frames.Next()
		pkg := strings.ToLower(filepath.Base(filepath.Dir(frame.File)))
		if inSet(h.cfg.disabledPackagesSet, pkg) {
			return false
		}
	}

	tag := ""
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == tagKey {
			tag = strings.ToLower(a.Value.String())
			return false
		}
		return true
	})

	if tag == "" {
		// Untagged messages only pass when no tag allow-list is set.
		return h.cfg.enabledTagsSet == nil
	}
	if inSet(h.cfg.disabledTagsSet, tag) {
		return false
	}
	if h.cfg.enabledTagsSet != nil && !inSet(h.cfg.enabledTagsSet, tag) {
		return false
	}
	return true
}

func (h *filteringHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return newFilteringHandler(h.base.WithAttrs(attrs), h.cfg)
}

func (h *filteringHandler) WithGroup(name string) slog.Handler {
	return newFilteringHandler(h.base.WithGroup(name), h.cfg)
}
