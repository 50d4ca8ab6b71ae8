package observability

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"detectivequest/internal/explorer"
	"detectivequest/internal/report"
)

// SessionSpan records one exploration as a span, with one span event per
// explorer transition.
type SessionSpan struct {
	span trace.Span
}

func StartSession(ctx context.Context, tracer trace.Tracer, sessionID, mapName string) (context.Context, *SessionSpan) {
	ctx = WithSessionID(ctx, sessionID)
	ctx, span := tracer.Start(ctx, "explore",
		trace.WithAttributes(
			attribute.String("detective.map", mapName),
		),
	)
	return ctx, &SessionSpan{span: span}
}

func (s *SessionSpan) Observe(ev explorer.Event) {
	attrs := []attribute.KeyValue{
		attribute.String("detective.command", ev.Command.String()),
		attribute.String("detective.room", ev.Room.Name),
	}
	switch ev.Kind {
	case explorer.EventEntered:
		attrs = append(attrs,
			attribute.Bool("detective.clue.present", ev.Room.HasClue),
			attribute.Bool("detective.clue.added", ev.ClueAdded),
			attribute.Bool("detective.room.terminal", ev.Room.Terminal()),
		)
	case explorer.EventViewed:
		attrs = append(attrs, attribute.Int("detective.clues.count", ev.Report.Count))
	case explorer.EventRejected:
		attrs = append(attrs, attribute.String("detective.reason", ev.Reason))
	}
	s.span.AddEvent("room."+ev.Kind.String(), trace.WithAttributes(attrs...))
}

// End closes the span with the final clue count.
func (s *SessionSpan) End(summary report.Report) {
	s.span.SetAttributes(attribute.Int("detective.clues.count", summary.Count))
	s.span.End()
}
