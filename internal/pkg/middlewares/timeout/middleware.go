package timeout

import (
	"context"
	"net/http"
	"time"
)

// Middleware ограничивает контекст запроса; транзакции и запросы к базе
// внутри обработчика отменяются вместе с ним. timeout <= 0 - без ограничения.
func Middleware(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if timeout <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
