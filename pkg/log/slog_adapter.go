package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes call log events to an slog.Logger.
// Useful for development when you want to see remote calls in the console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger at Debug level.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("session_id", event.SessionID),
		slog.String("category", event.Category.String()),
	}

	switch {
	case event.Call != nil:
		attrs = append(attrs,
			slog.String("routine", event.Call.Routine),
			slog.Int("args", event.Call.Args),
			slog.Duration("duration", event.Call.Duration),
			slog.Bool("failed", event.Call.Failed),
		)
		if event.Call.Code != nil {
			attrs = append(attrs, slog.Int("error_code", *event.Call.Code))
		}
	case event.Handshake != nil:
		attrs = append(attrs,
			slog.String("requested", event.Handshake.Requested),
			slog.String("remote", event.Handshake.Remote),
			slog.String("method", event.Handshake.Method.String()),
			slog.Bool("compatible", event.Handshake.Compatible),
		)
	case event.Object != nil:
		attrs = append(attrs,
			slog.String("type", event.Object.TypeName),
			slog.String("stage", event.Object.Stage.String()),
		)
		if event.Object.ObjectID != "" {
			attrs = append(attrs, slog.String("object_id", event.Object.ObjectID))
		}
		if event.Object.Stage != StageConstructed {
			attrs = append(attrs, slog.Bool("has_output", event.Object.HasOutput))
		}
	case event.Error != nil:
		attrs = append(attrs,
			slog.String("error_msg", event.Error.Message),
			slog.String("error_context", event.Error.Context),
		)
		if event.Error.Code != nil {
			attrs = append(attrs, slog.Int("error_code", *event.Error.Code))
		}
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "utplsql", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
