package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/devsomeware/contactkit/pkg/logger"
)

// HealthCheckHandler returns a handler usable for liveness and readiness probes.
//
//   - Liveness: without dependency checks it answers 200 "ALIVE".
//   - Readiness: every check must pass for 200 "READY", otherwise 503 "NOT_READY".
func HealthCheckHandler(log *slog.Logger, checks ...func(context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if len(checks) == 0 {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ALIVE"))
			return
		}

		for _, check := range checks {
			if err := check(r.Context()); err != nil {
				log.ErrorContext(r.Context(), "readiness check failed",
					logger.Error(err),
					logger.Component("healthcheck"),
				)
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("NOT_READY"))
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("READY"))
	}
}
