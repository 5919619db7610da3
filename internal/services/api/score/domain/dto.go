package domain

// ScoreInput is the request body for a scoring call.
// Both counts are required; pointers let an explicit 0 satisfy required
type ScoreInput struct {
	MissedPeriods *int `json:"missedPeriods" validate:"required,min=0" example:"2"`
	TotalDisputes *int `json:"totalDisputes" validate:"required,min=0" example:"1"`
}

// ScoreResult is the scoring response payload
type ScoreResult struct {
	TrustScore     int            `json:"trust_score" example:"82"`
	RiskCategory   RiskCategory   `json:"risk_category" example:"Safe"`
	Recommendation Recommendation `json:"recommendation" example:"Approve"`
}
