package domain

import (
	"context"

	"tenantrisk/internal/core/model"
)

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Score(ctx context.Context, in ScoreInput) (ScoreResult, error)
}

// Predictor is the narrow inference seam the service depends on.
// The concrete artifact format stays swappable behind it
type Predictor interface {
	PredictProba(row model.FeatureRow) (model.Probs, error)
}
