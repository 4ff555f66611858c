package middleware

import (
	"net/http"

	otlp_util "github.com/bluexlab/otlp-util-go"
	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Trace wraps every request in a span named after the matched route template.
func Trace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := r.URL.Path
		if current := mux.CurrentRoute(r); current != nil {
			if tpl, err := current.GetPathTemplate(); err == nil {
				route = tpl
			}
		}

		ctx, span := otlp_util.Start(r.Context(), r.Method+" "+route,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("http.route", route),
			),
		)
		defer span.End()

		interceptor := NewResponseInterceptor(w)
		next.ServeHTTP(interceptor, r.WithContext(ctx))

		span.SetAttributes(attribute.Int("http.status_code", interceptor.Status))
		if interceptor.IsSystemError() {
			span.SetStatus(codes.Error, interceptor.Returned())
		}
	})
}
