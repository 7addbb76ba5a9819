package mq

import (
	"context"
	"strconv"
	"sync"
)

// MemoryProducer keeps messages in process. Used when events.driver is
// "memory" and in tests.
type MemoryProducer struct {
	mu       sync.Mutex
	messages []Message
}

func NewMemoryProducer() *MemoryProducer {
	return &MemoryProducer{}
}

func (p *MemoryProducer) Publish(_ context.Context, topic string, key string, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, Message{
		ID:      strconv.Itoa(len(p.messages) + 1),
		Topic:   topic,
		Key:     key,
		Payload: append([]byte(nil), payload...),
	})
	return nil
}

// Messages returns a copy of everything published so far.
func (p *MemoryProducer) Messages() []Message {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Message(nil), p.messages...)
}

func (p *MemoryProducer) Close() error { return nil }
