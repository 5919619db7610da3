// Package http provides http transport for scoring
package http

import (
	stdhttp "net/http"

	"tenantrisk/internal/modkit/httpkit"
	"tenantrisk/internal/services/api/score/domain"
	svc "tenantrisk/internal/services/api/score/service"
)

// Register mounts scoring endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.ScoreInput](r, "/score", h.score)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /predict/score Score predictScore
// @Summary Score a tenant's risk from payment history features
// @Tags Score
// @Accept json
// @Produce json
// @Param payload body domain.ScoreInput true "Tenant features"
// @Success 200 {object} domain.ScoreResult "ok"
// @Failure 503 {object} httpkit.Envelope "model not loaded"
// @Router /predict/score [post]
func (h *handlers) score(r *stdhttp.Request, in domain.ScoreInput) (any, error) {
	return h.svc.Score(r.Context(), in)
}
