package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"multichain-send/internal/service/mq"
)

// TransactionSubmittedEvent is emitted once the signing service accepted a
// draft and returned a transaction id.
// Topic: events.topic (default multichain_send_events)
type TransactionSubmittedEvent struct {
	Type        string    `json:"type"`
	AccountID   string    `json:"account_id"`
	Network     string    `json:"network"`
	Asset       string    `json:"asset"`
	Recipient   string    `json:"recipient"`
	Amount      string    `json:"amount"` // base units
	Fee         string    `json:"fee"`    // base units
	TxID        string    `json:"tx_id"`
	SubmittedAt time.Time `json:"submitted_at"`
}

const TypeTransactionSubmitted = "transaction_submitted"

// Publisher serializes events onto a producer topic.
type Publisher struct {
	producer mq.Producer
	topic    string
}

func NewPublisher(producer mq.Producer, topic string) *Publisher {
	return &Publisher{producer: producer, topic: topic}
}

func (p *Publisher) PublishSubmitted(ctx context.Context, ev TransactionSubmittedEvent) error {
	ev.Type = TypeTransactionSubmitted
	if ev.SubmittedAt.IsZero() {
		ev.SubmittedAt = time.Now().UTC()
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", ev.Type, err)
	}
	return p.producer.Publish(ctx, p.topic, ev.AccountID, payload)
}

// ParseSubmitted decodes a payload written by PublishSubmitted.
func ParseSubmitted(payload []byte) (TransactionSubmittedEvent, error) {
	var ev TransactionSubmittedEvent
	if err := json.Unmarshal(payload, &ev); err != nil {
		return ev, fmt.Errorf("unmarshal event: %w", err)
	}
	if ev.Type != TypeTransactionSubmitted {
		return ev, fmt.Errorf("unexpected event type %q", ev.Type)
	}
	return ev, nil
}
