package httpapi

import (
	"context"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var apiTracer = otel.Tracer("cricket-insights/internal/interfaces/httpapi")
var noopSpan = trace.SpanFromContext(context.Background())

// tracedQueryParams are the filter parameters copied onto handler spans.
var tracedQueryParams = []string{"format", "type", "metric", "search", "country", "role", "page", "limit", "minRuns", "players", "metrics"}

func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		// Filtered routes like /healthz have no parent; skip standalone roots.
		return ctx, noopSpan
	}
	if !shouldCreateHTTPAPISpan(name) {
		return ctx, noopSpan
	}
	return apiTracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func shouldCreateHTTPAPISpan(name string) bool {
	return strings.HasPrefix(name, "httpapi.Handler.")
}

func queryAttributes(values url.Values) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, len(tracedQueryParams))
	for _, key := range tracedQueryParams {
		v := strings.TrimSpace(values.Get(key))
		if v == "" {
			continue
		}
		attrs = append(attrs, attribute.String("query."+key, v))
	}
	return attrs
}
