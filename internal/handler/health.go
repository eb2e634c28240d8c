package handler

import (
	"context"
	"net/http"

	"github.com/cradoe/biodata/internal/errHandler"
	"github.com/cradoe/biodata/internal/response"
	"github.com/cradoe/biodata/internal/version"
)

// Pinger reports whether a backing service is reachable.
type Pinger func(ctx context.Context) error

type HealthCheckHandler struct {
	ErrHandler *errHandler.ErrorHandler
	Checks     map[string]Pinger
}

func NewHealthCheckHandler(handler *HealthCheckHandler) *HealthCheckHandler {
	return &HealthCheckHandler{
		ErrHandler: handler.ErrHandler,
		Checks:     handler.Checks,
	}
}

func (h *HealthCheckHandler) HandleHealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaultTimeout)
	defer cancel()

	status := "available"
	checks := make(map[string]string, len(h.Checks))
	for name, ping := range h.Checks {
		if err := ping(ctx); err != nil {
			checks[name] = err.Error()
			status = "degraded"
			continue
		}
		checks[name] = "ok"
	}

	data := map[string]any{
		"status":  status,
		"version": version.Get(),
		"checks":  checks,
	}

	err := response.JSONOkResponse(w, data, "Up and grateful", nil)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
	}
}
