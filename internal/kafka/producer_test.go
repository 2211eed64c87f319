package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"event_passport_backend/internal/config"
	"event_passport_backend/internal/model"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestPublish(t *testing.T) {
	writer := &fakeWriter{}
	producer := NewProducerWithWriter(writer)

	rating := 5
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	event := &model.VisitEvent{
		Type:       model.VisitEventRated,
		VisitID:    "v1",
		AttendeeID: "a1",
		BoothID:    "b1",
		IsVisited:  true,
		Rating:     &rating,
		OccurredAt: at,
	}
	if err := producer.Publish(context.Background(), event); err != nil {
		t.Fatal(err)
	}

	if len(writer.messages) != 1 {
		t.Fatalf("messages = %d, want 1", len(writer.messages))
	}
	msg := writer.messages[0]
	if string(msg.Key) != "a1" {
		t.Errorf("key = %q, want attendee id", msg.Key)
	}
	if !msg.Time.Equal(at) {
		t.Errorf("time = %v", msg.Time)
	}
	if len(msg.Headers) != 1 || msg.Headers[0].Key != "type" || string(msg.Headers[0].Value) != model.VisitEventRated {
		t.Errorf("headers = %+v", msg.Headers)
	}

	var decoded model.VisitEvent
	if err := json.Unmarshal(msg.Value, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.VisitID != "v1" || decoded.Rating == nil || *decoded.Rating != 5 || decoded.Score != nil {
		t.Errorf("payload = %s", msg.Value)
	}

	if err := producer.Close(); err != nil || !writer.closed {
		t.Errorf("close: err=%v closed=%v", err, writer.closed)
	}
}

func TestPublishWrapsWriterError(t *testing.T) {
	cause := errors.New("broker down")
	producer := NewProducerWithWriter(&fakeWriter{err: cause})

	err := producer.Publish(context.Background(), &model.VisitEvent{Type: model.VisitEventCheckedIn})
	if !errors.Is(err, cause) {
		t.Errorf("err = %v, want wrapped %v", err, cause)
	}
}

func TestNewProducerRequiresBrokers(t *testing.T) {
	if _, err := NewProducer(&config.KafkaConfig{Topic: "passport.visits"}); err == nil {
		t.Error("expected error without brokers")
	}

	producer, err := NewProducer(&config.KafkaConfig{Brokers: []string{"localhost:9092"}, Topic: "passport.visits"})
	if err != nil {
		t.Fatal(err)
	}
	producer.Close()
}
