package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRecoverer returns a middleware that turns a panic in a downstream
// handler into a call to onPanic, which writes the client-facing 500.
// The panic value and stack are logged; neither reaches the client.
// http.ErrAbortHandler is re-panicked so net/http can abort the connection.
func NewRecoverer(log *slog.Logger, onPanic http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				log.ErrorContext(r.Context(), "panic recovered",
					"method", r.Method,
					"path", r.URL.Path,
					"panic", rec,
					"stack", string(debug.Stack()),
					"request_id", chimiddleware.GetReqID(r.Context()),
				)
				onPanic(w, r)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
