package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.HandleFunc("GET /api/health", handler.Health)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerPlayerRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/players", handler.ListPlayers)
	mux.HandleFunc("GET /api/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("GET /api/compare", handler.ComparePlayers)
	mux.HandleFunc("GET /api/leaderboard", handler.GetLeaderboard)
	mux.HandleFunc("GET /api/countries", handler.ListCountries)
	mux.HandleFunc("GET /api/roles", handler.ListRoles)
	mux.HandleFunc("GET /api/formats", handler.ListFormats)
}

func registerAnalyticsRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/analytics/era-distribution", handler.GetEraDistribution)
	mux.HandleFunc("GET /api/analytics/country-contribution", handler.GetCountryContribution)
	mux.HandleFunc("GET /api/analytics/top-boundary-hitters", handler.GetTopBoundaryHitters)
	mux.HandleFunc("GET /api/analytics/strike-rate-vs-average", handler.GetStrikeRateVsAverage)
	mux.HandleFunc("GET /api/analytics/dashboard-stats", handler.GetDashboardStats)
}
