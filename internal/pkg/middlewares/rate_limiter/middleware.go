package rate_limiter

import (
	"math"
	"net/http"
	"strconv"

	"shipment-service/internal/handlers/rest/apierror"
	"shipment-service/internal/pkg/middlewares/metrics"
	"shipment-service/internal/pkg/middlewares/request_id"
	"shipment-service/pkg/logger"
)

const rateLimitedMessage = "Rate limit exceeded. Try again later."

// Middleware отвечает 429 с Retry-After в целых секундах, не меньше одной.
// rateLimiterQPS попадает только в заголовок X-RateLimit-Limit, сам лимит задает rlimiter.
func Middleware(log handlerLogger, rateLimiterQPS int, rlimiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if rlimiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			route := metrics.RouteTemplate(r)
			retryAfter := max(1, int(math.Ceil(rlimiter.RetryAfter().Seconds())))

			log.Warn("rate limit exceeded",
				logger.NewField("request_id", request_id.FromContext(r.Context())),
				logger.NewField("method", r.Method),
				logger.NewField("route", route),
				logger.NewField("remote_addr", r.RemoteAddr),
				logger.NewField("retry_after", retryAfter),
			)

			RateLimitExceededTotal.WithLabelValues(r.Method, route).Inc()

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rateLimiterQPS))
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			apierror.WriteCode(w, http.StatusTooManyRequests, apierror.CodeRateLimited, rateLimitedMessage)
		})
	}
}
