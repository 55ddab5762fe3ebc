package httpapi

import "net/http"

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz", queryAttributes(r.URL.Query())...)
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Health", queryAttributes(r.URL.Query())...)
	defer span.End()

	health, err := h.healthService.Check(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "health check failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, healthToDTO(health))
}
