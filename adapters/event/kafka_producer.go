package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/config"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

const TopicContentEvents = "content.events"

type KafkaProducerClient struct {
	ContentEventsWriter *kafka.Writer
	logger              logger.Logger
}

var _ service.EventPublisher = (*KafkaProducerClient)(nil)

// NewKafkaProducerClient builds an async writer: WriteMessages returns
// immediately and delivery failures are reported through Completion.
func NewKafkaProducerClient(cfg config.Config, log logger.Logger) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  TopicContentEvents,
		Balancer:               &kafka.Hash{},
		Async:                  true,
		AllowAutoTopicCreation: true,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				log.Error("Failed to deliver content events", err, zap.Int("count", len(messages)))
			}
		},
	}

	log.Info("Initialize Kafka Producer successfully.", zap.String("topic", TopicContentEvents))
	return &KafkaProducerClient{ContentEventsWriter: writer, logger: log}, nil
}

// PublishContentChange keys messages by collection so events of one
// collection stay ordered on a partition.
func (c *KafkaProducerClient) PublishContentChange(ctx context.Context, ev service.ContentEvent) error {
	msg, err := ContentMessage(ev)
	if err != nil {
		return err
	}
	return c.ContentEventsWriter.WriteMessages(ctx, msg)
}

func ContentMessage(ev service.ContentEvent) (kafka.Message, error) {
	value, err := json.Marshal(ev)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("marshal content event: %w", err)
	}
	return kafka.Message{Key: []byte(ev.Collection), Value: value}, nil
}

// DecodeContentEvent rejects payloads that are not JSON or name no collection.
func DecodeContentEvent(msg kafka.Message) (service.ContentEvent, error) {
	var ev service.ContentEvent
	if err := json.Unmarshal(msg.Value, &ev); err != nil {
		return ev, fmt.Errorf("decode content event: %w", err)
	}
	if ev.Collection == "" || ev.Action == "" {
		return ev, fmt.Errorf("decode content event: collection and action are required")
	}
	return ev, nil
}

func (c *KafkaProducerClient) Close() {
	if c.ContentEventsWriter != nil {
		if err := c.ContentEventsWriter.Close(); err != nil {
			c.logger.Error("Failed to close Kafka producer", err)
			return
		}
	}
	c.logger.Info("Closed Kafka Producer")
}

// NopPublisher drops every event. Used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) PublishContentChange(context.Context, service.ContentEvent) error { return nil }
