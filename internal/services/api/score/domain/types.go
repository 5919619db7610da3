// Package domain holds scoring types and contracts
package domain

// Feature names as the training pipeline declared them, in field order
const (
	FeatureMissedPeriods = "missedPeriods"
	FeatureTotalDisputes = "totalDisputes"
)

// MaxTrustScore is the ceiling of the trust score range
const MaxTrustScore = 100

// RiskCategory buckets a trust score
type RiskCategory string

// Risk categories in decreasing order of trust
const (
	RiskSafe     RiskCategory = "Safe"
	RiskModerate RiskCategory = "Moderate"
	RiskRisky    RiskCategory = "Risky"
)

// Recommendation is the action suggested for a scored tenant
type Recommendation string

// Recommendations paired with the risk categories
const (
	RecommendApprove Recommendation = "Approve"
	RecommendReview  Recommendation = "Review Manually"
)

// Categorize maps a trust score to its category and recommendation.
// Boundaries: 76..100 Safe, 40..75 Moderate, 0..39 Risky
func Categorize(score int) (RiskCategory, Recommendation) {
	switch {
	case score > 75:
		return RiskSafe, RecommendApprove
	case score < 40:
		return RiskRisky, RecommendReview
	default:
		return RiskModerate, RecommendReview
	}
}
