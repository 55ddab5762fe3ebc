package httpapi

import (
	"net/http"
	"time"

	"github.com/riskibarqy/cricket-insights/internal/platform/logging"
)

type RouterOptions struct {
	SwaggerEnabled     bool
	CORSAllowedOrigins []string
	RateLimitRequests  int
	RateLimitWindow    time.Duration
	// TrustProxyHeaders keys rate limiting on X-Forwarded-For and friends.
	TrustProxyHeaders bool
}

func NewRouter(handler *Handler, logger *logging.Logger, opts RouterOptions) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, opts.SwaggerEnabled)
	registerPlayerRoutes(mux, handler)
	registerAnalyticsRoutes(mux, handler)

	api := RateLimit(opts.RateLimitRequests, opts.RateLimitWindow, opts.TrustProxyHeaders, recoverPanic(logger, mux))
	return RequestTracing(RequestLogging(logger, CORS(opts.CORSAllowedOrigins, api)))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec, "path", r.URL.Path)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
