// Package service contains the scoring workflow
package service

import (
	"context"

	"tenantrisk/internal/core/model"
	perr "tenantrisk/internal/platform/errors"
	"tenantrisk/internal/platform/logger"
	"tenantrisk/internal/services/api/score/domain"
)

// Service defines the scoring service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the scoring service over a loaded classifier
type Svc struct {
	pred   domain.Predictor
	loaded bool
}

// New constructs a scoring service from the startup model state
func New(st model.State) *Svc {
	if !st.Loaded() {
		return &Svc{}
	}
	return &Svc{pred: st.Artifact(), loaded: true}
}

// NewWithPredictor constructs a scoring service around an explicit predictor
func NewWithPredictor(p domain.Predictor) *Svc {
	if p == nil {
		panic("score.Service requires a non nil Predictor")
	}
	return &Svc{pred: p, loaded: true}
}

// Score converts one scoring request into one scoring response.
// The unavailable check runs before the perfect-record fast path, so a
// degraded process answers 503 even for a zero/zero request
func (s *Svc) Score(ctx context.Context, in domain.ScoreInput) (domain.ScoreResult, error) {
	if !s.loaded {
		return domain.ScoreResult{}, perr.Unavailablef("model is not loaded")
	}

	missed := *in.MissedPeriods
	disputes := *in.TotalDisputes

	// perfect record approves without consulting the model
	if missed == 0 && disputes == 0 {
		return domain.ScoreResult{
			TrustScore:     domain.MaxTrustScore,
			RiskCategory:   domain.RiskSafe,
			Recommendation: domain.RecommendApprove,
		}, nil
	}

	row := model.FeatureRow{
		domain.FeatureMissedPeriods: float64(missed),
		domain.FeatureTotalDisputes: float64(disputes),
	}
	probs, err := s.pred.PredictProba(row)
	if err != nil {
		logger.C(ctx).Error().Err(err).
			Int("missed_periods", missed).
			Int("total_disputes", disputes).
			Msg("prediction failed")
		return domain.ScoreResult{}, perr.Predictionf("prediction failed: %v", err)
	}

	// integer truncation, not rounding
	score := int(probs.Good * 100)
	cat, rec := domain.Categorize(score)

	return domain.ScoreResult{
		TrustScore:     score,
		RiskCategory:   cat,
		Recommendation: rec,
	}, nil
}
