package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"paysecure-gateway/config"
	"paysecure-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockWriter struct {
	mock.Mock
}

func (m *MockWriter) WriteMessages(ctx context.Context, msgs ...kafkago.Message) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}

func (m *MockWriter) Close() error {
	args := m.Called()
	return args.Error(0)
}

func sampleEvent() domain.TransactionEvent {
	return domain.TransactionEvent{
		TransactionID: uuid.New(),
		SenderID:      uuid.New(),
		ReceiverID:    uuid.New(),
		Amount:        5000,
		Rail:          domain.RailUPI,
		Status:        domain.TransactionStatusSuccess,
		RiskScore:     15,
		RiskReasons:   []string{"balance-drain: payment would drain the balance"},
		OccurredAt:    time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC),
	}
}

func TestPublisher_PublishTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("keys by sender and encodes the event", func(t *testing.T) {
		w := new(MockWriter)
		p := newPublisher(w, "paysecure.transactions", zerolog.Nop())
		event := sampleEvent()
		expected, _ := json.Marshal(event)

		w.On("WriteMessages", ctx, mock.MatchedBy(func(msgs []kafkago.Message) bool {
			if len(msgs) != 1 {
				return false
			}
			m := msgs[0]
			return string(m.Key) == event.SenderID.String() &&
				string(m.Value) == string(expected) &&
				len(m.Headers) == 1 && string(m.Headers[0].Value) == "transaction.SUCCESS"
		})).Return(nil).Once()

		require.NoError(t, p.PublishTransaction(ctx, event))
		w.AssertExpectations(t)
	})

	t.Run("wraps writer errors", func(t *testing.T) {
		w := new(MockWriter)
		p := newPublisher(w, "paysecure.transactions", zerolog.Nop())
		writeErr := errors.New("broker unavailable")

		w.On("WriteMessages", ctx, mock.AnythingOfType("[]kafka.Message")).Return(writeErr).Once()

		err := p.PublishTransaction(ctx, sampleEvent())
		require.Error(t, err)
		assert.ErrorIs(t, err, writeErr)
		assert.Contains(t, err.Error(), "paysecure.transactions")
	})
}

func TestPublisher_Close(t *testing.T) {
	w := new(MockWriter)
	p := newPublisher(w, "t", zerolog.Nop())

	w.On("Close").Return(nil).Once()
	assert.NoError(t, p.Close())

	w.On("Close").Return(errors.New("flush failed")).Once()
	assert.Error(t, p.Close())
	w.AssertExpectations(t)
}

func TestNewPublisher_Config(t *testing.T) {
	_, err := NewPublisher(config.KafkaConfig{Brokers: []string{"localhost:9092"}}, zerolog.Nop())
	assert.Error(t, err)

	_, err = NewPublisher(config.KafkaConfig{Topic: "t"}, zerolog.Nop())
	assert.Error(t, err)

	p, err := NewPublisher(config.KafkaConfig{Brokers: []string{"localhost:9092"}, Topic: "t"}, zerolog.Nop())
	require.NoError(t, err)
	assert.NoError(t, p.Close())
}

func TestNoopPublisher(t *testing.T) {
	var p NoopPublisher
	assert.NoError(t, p.PublishTransaction(context.Background(), sampleEvent()))
	assert.NoError(t, p.Close())
}
