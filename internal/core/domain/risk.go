package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxRiskScore caps the summed heuristic points.
const MaxRiskScore = 100

// RiskCandidate is a payment about to settle, as seen by the risk engine.
type RiskCandidate struct {
	SenderID        uuid.UUID
	ReceiverID      uuid.UUID
	SourceAccountID uuid.UUID
	Amount          int64
	Rail            Rail
	At              time.Time
}

// RiskAssessment is the advisory verdict stored on a transaction.
type RiskAssessment struct {
	Score       int
	Reasons     []string
	EvaluatedAt *time.Time
}

// Add accumulates points and a reason, clamping the score at MaxRiskScore.
func (r *RiskAssessment) Add(points int, reason string) {
	r.Score += points
	if r.Score > MaxRiskScore {
		r.Score = MaxRiskScore
	}
	r.Reasons = append(r.Reasons, reason)
}

// NotEvaluated is the verdict recorded when no heuristic finished in time.
func NotEvaluated() RiskAssessment {
	return RiskAssessment{Reasons: []string{}}
}
