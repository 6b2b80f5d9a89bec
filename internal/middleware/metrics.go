package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// RequestObserver records one finished HTTP request.
type RequestObserver interface {
	ObserveRequest(method, route string, status int, elapsed time.Duration)
}

// unmatchedRoute labels requests no route matched, keeping label cardinality bounded.
const unmatchedRoute = "unmatched"

// NewMetricsHandler returns a middleware that reports each request to obs,
// labelled by the chi route pattern rather than the raw path.
// Wire it on the top-level chi router so the route context exists.
func NewMetricsHandler(obs RequestObserver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			route := unmatchedRoute
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				// A bare mount point means no sub-route matched.
				if p := rctx.RoutePattern(); p != "" && p != "/*" {
					route = p
				}
			}
			obs.ObserveRequest(r.Method, route, statusOf(ww), time.Since(start))
		})
	}
}
