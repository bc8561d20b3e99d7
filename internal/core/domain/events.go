package domain

import (
	"time"

	"github.com/google/uuid"
)

// TransactionEvent is published after a transaction record commits.
type TransactionEvent struct {
	TransactionID uuid.UUID         `json:"transaction_id"`
	SenderID      uuid.UUID         `json:"sender_id"`
	ReceiverID    uuid.UUID         `json:"receiver_id"`
	Amount        int64             `json:"amount"`
	Rail          Rail              `json:"rail"`
	Status        TransactionStatus `json:"status"`
	RiskScore     int               `json:"risk_score"`
	RiskReasons   []string          `json:"risk_reasons"`
	OccurredAt    time.Time         `json:"occurred_at"`
}

// EventFromTransaction snapshots the publishable fields of t.
func EventFromTransaction(t *Transaction) TransactionEvent {
	return TransactionEvent{
		TransactionID: t.ID,
		SenderID:      t.SenderID,
		ReceiverID:    t.ReceiverID,
		Amount:        t.Amount,
		Rail:          t.Rail,
		Status:        t.Status,
		RiskScore:     t.RiskScore,
		RiskReasons:   t.RiskReasons,
		OccurredAt:    t.CreatedAt,
	}
}
