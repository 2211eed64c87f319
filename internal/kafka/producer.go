package kafka

import (
	"context"
	"encoding/json"
	"event_passport_backend/internal/config"
	"event_passport_backend/internal/model"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// MessageWriter kafka.Writer 的最小子集，便于替换
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Producer struct {
	writer MessageWriter
}

func NewProducer(cfg *config.KafkaConfig) (*Producer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("kafka.brokers must be set when kafka is enabled")
	}

	// 以参会者 id 作为 key 做 Hash 分区，同一参会者的事件保持顺序
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	return NewProducerWithWriter(writer), nil
}

func NewProducerWithWriter(writer MessageWriter) *Producer {
	return &Producer{writer: writer}
}

// Publish 发送访问事件
func (p *Producer) Publish(ctx context.Context, event *model.VisitEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("序列化访问事件失败: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.AttendeeID),
		Value: data,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(event.Type)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("发送访问事件失败: %w", err)
	}
	return nil
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
