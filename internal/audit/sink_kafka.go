package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"
)

// KafkaSink produces audit events to a Kafka topic, keyed by user so one
// user's trail stays ordered within a partition. It is write-only; reads go
// through whichever store also receives the events.
type KafkaSink struct {
	client *kgo.Client
	topic  string
}

// NewKafkaSink connects to the given brokers and produces to topic.
func NewKafkaSink(brokers []string, topic string) (*KafkaSink, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.ProducerBatchCompression(kgo.SnappyCompression()),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka client: %w", err)
	}
	return &KafkaSink{client: client, topic: topic}, nil
}

type kafkaEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	UserID    string    `json:"userId"`
	SessionID string    `json:"sessionId,omitempty"`
	RecordID  string    `json:"recordId,omitempty"`
	Outcome   string    `json:"outcome,omitempty"`
	Detail    string    `json:"detail,omitempty"`
	Device    string    `json:"device,omitempty"`
}

func (s *KafkaSink) Append(ctx context.Context, event Event) error {
	value, err := json.Marshal(kafkaEvent{
		Timestamp: event.Timestamp,
		Action:    string(event.Action),
		UserID:    event.UserID,
		SessionID: event.SessionID,
		RecordID:  event.RecordID,
		Outcome:   event.Outcome,
		Detail:    event.Detail,
		Device:    event.Device,
	})
	if err != nil {
		return fmt.Errorf("encode audit event: %w", err)
	}
	record := &kgo.Record{
		Topic: s.topic,
		Key:   []byte(event.UserID),
		Value: value,
	}
	if err := s.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("produce audit event: %w", err)
	}
	return nil
}

// ListByUser is unsupported on the Kafka sink; the topic is an export stream,
// not a queryable store.
func (s *KafkaSink) ListByUser(context.Context, string) ([]Event, error) {
	return nil, nil
}

func (s *KafkaSink) Close() {
	s.client.Close()
}
