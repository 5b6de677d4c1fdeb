package event

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/wsikandar/portfolio-cms/internal/config"
	"github.com/wsikandar/portfolio-cms/pkg/logger"
)

const DefaultContentTopic = "portfolio.content"

// ContentEventPayload describes a successful mutation on portfolio content.
// Consumers use Action plus Resource to decide which sections to refresh.
type ContentEventPayload struct {
	Action     string    `json:"action"`
	Resource   string    `json:"resource"`
	ResourceID int64     `json:"resourceId,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// KafkaProducerClient publishes content change events. A nil client (no
// brokers configured) is valid and publishes nothing.
type KafkaProducerClient struct {
	writer *kafka.Writer
	log    logger.Logger
}

func NewKafkaProducerClient(cfg config.Config, log logger.Logger) *KafkaProducerClient {
	if len(cfg.Kafka.Brokers) == 0 {
		log.Warn("kafka brokers not configured, content events disabled")
		return nil
	}

	topic := cfg.Kafka.Topic
	if topic == "" {
		topic = DefaultContentTopic
	}

	writer := &kafka.Writer{
		Addr:     kafka.TCP(cfg.Kafka.Brokers...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}

	log.Info("kafka producer initialized", zap.String("topic", topic))
	return &KafkaProducerClient{writer: writer, log: log}
}

// PublishContentEvent is best effort: a broker failure is logged and
// swallowed so a write that already committed never fails afterwards.
func (c *KafkaProducerClient) PublishContentEvent(ctx context.Context, payload ContentEventPayload) {
	if c == nil || c.writer == nil {
		return
	}
	if payload.OccurredAt.IsZero() {
		payload.OccurredAt = time.Now().UTC()
	}

	value, err := json.Marshal(payload)
	if err != nil {
		c.log.Error("marshal content event", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(payload.Resource),
		Value: value,
	}
	if err := c.writer.WriteMessages(ctx, msg); err != nil {
		c.log.Error("publish content event", err, zap.String("action", payload.Action))
	}
}

func (c *KafkaProducerClient) Close() {
	if c == nil || c.writer == nil {
		return
	}
	if err := c.writer.Close(); err != nil {
		c.log.Error("close kafka writer", err)
	}
}
