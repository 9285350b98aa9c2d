package graceful_shutdown

import (
	"net/http"
	"sync/atomic"

	"shipment-service/internal/handlers/rest/apierror"
)

const retryAfterSeconds = "5"

// Middleware отвечает 503 на новые запросы после начала остановки и закрывает
// keep-alive соединение, чтобы балансировщик переключился на другой под.
// Запросы, принятые раньше, дорабатывают.
func Middleware(isShuttingDown *atomic.Bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isShuttingDown.Load() {
				w.Header().Set("Connection", "close")
				w.Header().Set("Retry-After", retryAfterSeconds)
				apierror.WriteCode(w, http.StatusServiceUnavailable, apierror.CodeUnavailable, "service is shutting down")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
