package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/questlinehq/questline-backend/pkg/ctxutil"
)

// Recovery converts a handler panic into a logged 500 instead of a dropped
// connection. The stack and the request's correlation ID go to the log so
// the panic can be traced across services.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				logger.ErrorContext(r.Context(), "panic recovered",
					slog.Any("error", rec),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
					slog.String("stack", string(debug.Stack())),
				)
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
