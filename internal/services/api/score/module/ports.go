package module

import (
	"context"

	"tenantrisk/internal/services/api/score/domain"
	scoresvc "tenantrisk/internal/services/api/score/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptScorePort struct{ svc scoresvc.Service }

// Score converts one scoring request into one scoring response
func (a adaptScorePort) Score(ctx context.Context, in domain.ScoreInput) (domain.ScoreResult, error) {
	return a.svc.Score(ctx, in)
}
