package tracing

import (
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"tourcatalog/internal/handler/http/pathutil"
	"tourcatalog/internal/handler/http/responsewriter"
)

// Middleware opens a server span per request. Incoming W3C trace context is
// honored when a caller propagates one, the trace ID is echoed back in
// X-Trace-Id so API consumers can quote it in bug reports, and the span is
// named by the normalized route so span cardinality stays bounded.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := otel.GetTextMapPropagator().Extract(
			r.Context(),
			propagation.HeaderCarrier(r.Header),
		)

		route := pathutil.NormalizePath(r.URL.Path)
		ctx, span := tracer.Start(ctx, r.Method+" "+route,
			trace.WithSpanKind(trace.SpanKindServer),
		)
		defer span.End()

		w.Header().Set("X-Trace-Id", span.SpanContext().TraceID().String())

		rec := responsewriter.Wrap(w)
		next.ServeHTTP(rec, r.WithContext(ctx))

		span.SetAttributes(
			attribute.Int("http.status_code", rec.Status()),
			attribute.String("http.method", r.Method),
			attribute.String("http.path", route),
		)
		if rec.Status() >= 500 {
			span.SetAttributes(attribute.Bool("error", true))
		}
	})
}
