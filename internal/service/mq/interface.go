package mq

import "context"

// Message is one record read from or written to a topic.
type Message struct {
	ID       string // backend id, e.g. the Redis stream entry id
	Topic    string
	Key      string // partition key; the account id for drafting events
	Payload  []byte // JSON
	Metadata map[string]string
}

// Producer publishes messages to a topic.
type Producer interface {
	// Publish sends payload to topic. key orders messages per partition;
	// an empty key lets the backend pick.
	Publish(ctx context.Context, topic string, key string, payload []byte) error
	Close() error
}

// Consumer reads messages from a topic.
type Consumer interface {
	// Subscribe delivers messages of topic to handler until ctx ends. A
	// handler error leaves the message unacknowledged.
	Subscribe(ctx context.Context, topic string, handler func(msg *Message) error) error
	Close() error
}
