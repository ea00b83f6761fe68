package cache

import (
	"context"

	"github.com/getsentry/sentry-go"
)

// startSpan opens a db.cache span when the context carries a sentry hub.
func startSpan(ctx context.Context, operation, key string) *sentry.Span {
	if sentry.GetHubFromContext(ctx) == nil {
		return nil
	}

	span := sentry.StartSpan(ctx, "db.cache")
	span.Description = "cache.inmemory." + operation
	span.SetData("cache.key", key)
	return span
}

// finishSpan records whether a lookup hit and closes the span. It accepts a
// nil span.
func finishSpan(span *sentry.Span, hit bool) {
	if span == nil {
		return
	}
	span.SetData("cache.hit", hit)
	span.Status = sentry.SpanStatusOK
	span.Finish()
}
