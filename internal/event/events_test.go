package event

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multichain-send/internal/service/mq"
)

func TestPublishSubmitted(t *testing.T) {
	producer := mq.NewMemoryProducer()
	p := NewPublisher(producer, "send_events")

	require.NoError(t, p.PublishSubmitted(context.Background(), TransactionSubmittedEvent{
		AccountID: "acc-1",
		Network:   "bip122:000000000019d6689c085ae165831e93",
		Amount:    "1000000",
		TxID:      "tx-1",
	}))

	msgs := producer.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "send_events", msgs[0].Topic)
	assert.Equal(t, "acc-1", msgs[0].Key)

	var got TransactionSubmittedEvent
	require.NoError(t, json.Unmarshal(msgs[0].Payload, &got))
	assert.Equal(t, TypeTransactionSubmitted, got.Type)
	assert.Equal(t, "tx-1", got.TxID)
	assert.Equal(t, "1000000", got.Amount)
	assert.False(t, got.SubmittedAt.IsZero())
}

func TestParseSubmitted(t *testing.T) {
	ev, err := ParseSubmitted([]byte(`{"type":"transaction_submitted","tx_id":"tx-9","account_id":"acc-1"}`))
	require.NoError(t, err)
	assert.Equal(t, "tx-9", ev.TxID)

	_, err = ParseSubmitted([]byte(`{"type":"other"}`))
	assert.Error(t, err)

	_, err = ParseSubmitted([]byte(`not json`))
	assert.Error(t, err)
}
