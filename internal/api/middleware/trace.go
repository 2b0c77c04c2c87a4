package middleware

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/elearn-api/internal/api/shared"
	"github.com/phrazzld/elearn-api/internal/platform/logger"
)

// TraceHeader echoes the request trace ID back to the client.
const TraceHeader = "X-Trace-ID"

// Trace assigns each request a trace ID and a logger tagged with it. Mount it
// after otelhttp so the OpenTelemetry trace ID is reused.
func Trace(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceID(r.Context())
			traceID := shared.GetTraceID(ctx)

			log := base.With(slog.String("trace_id", traceID))
			ctx = logger.WithLogger(ctx, log)

			log.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			w.Header().Set(TraceHeader, traceID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
