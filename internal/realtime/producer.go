package realtime

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/IBM/sarama"
)

// Producer publishes change events for watched tables.
type Producer interface {
	PublishChange(ctx context.Context, event *ChangeEvent) error
	Close() error
	HealthCheck(ctx context.Context) error
}

// ProducerConfig contains configuration for the Kafka change producer
type ProducerConfig struct {
	Brokers          []string
	Topic            string
	RetryMax         int
	TimeoutMs        int
	RequiredAcks     sarama.RequiredAcks
	CompressionType  sarama.CompressionCodec
	IdempotentWrites bool
}

// DefaultProducerConfig returns a default producer configuration
func DefaultProducerConfig() *ProducerConfig {
	return &ProducerConfig{
		Brokers:          []string{"localhost:9092"},
		Topic:            "table-changes",
		RetryMax:         3,
		TimeoutMs:        10000,
		RequiredAcks:     sarama.WaitForAll,
		CompressionType:  sarama.CompressionSnappy,
		IdempotentWrites: true,
	}
}

// KafkaChangeProducer publishes change events to Kafka
type KafkaChangeProducer struct {
	producer sarama.SyncProducer
	config   *ProducerConfig
}

// NewKafkaChangeProducer creates a new Kafka change producer
func NewKafkaChangeProducer(config *ProducerConfig) (Producer, error) {
	saramaConfig := sarama.NewConfig()

	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = config.RequiredAcks
	saramaConfig.Producer.Compression = config.CompressionType
	saramaConfig.Producer.Retry.Max = config.RetryMax
	saramaConfig.Producer.Timeout = time.Duration(config.TimeoutMs) * time.Millisecond
	saramaConfig.Producer.Idempotent = config.IdempotentWrites

	if config.IdempotentWrites {
		saramaConfig.Net.MaxOpenRequests = 1
	}

	// Hash partitioner keyed by table name keeps per-table ordering
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(config.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	log.Printf("Kafka change producer created for topic %s", config.Topic)
	return &KafkaChangeProducer{producer: producer, config: config}, nil
}

// PublishChange publishes a single change event to Kafka
func (p *KafkaChangeProducer) PublishChange(ctx context.Context, event *ChangeEvent) error {
	messageBytes, err := event.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal change event: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic:     p.config.Topic,
		Key:       sarama.StringEncoder(event.PartitionKey()),
		Value:     sarama.ByteEncoder(messageBytes),
		Headers:   p.createHeaders(event),
		Timestamp: event.OccurredAt,
	}

	if _, _, err := p.producer.SendMessage(message); err != nil {
		return fmt.Errorf("failed to send change event to Kafka: %w", err)
	}

	return nil
}

func (p *KafkaChangeProducer) createHeaders(event *ChangeEvent) []sarama.RecordHeader {
	return []sarama.RecordHeader{
		{Key: []byte("event_id"), Value: []byte(event.ID.String())},
		{Key: []byte("table"), Value: []byte(event.Table)},
		{Key: []byte("change_type"), Value: []byte(string(event.Type))},
		{Key: []byte("row_id"), Value: []byte(event.RowID)},
		{Key: []byte("producer"), Value: []byte("mtour-realtime")},
		{Key: []byte("occurred_at"), Value: []byte(event.OccurredAt.Format(time.RFC3339))},
	}
}

// Close closes the Kafka producer
func (p *KafkaChangeProducer) Close() error {
	if p.producer != nil {
		if err := p.producer.Close(); err != nil {
			return fmt.Errorf("failed to close Kafka producer: %w", err)
		}
		log.Printf("Kafka change producer closed")
	}
	return nil
}

// HealthCheck validates the producer configuration
func (p *KafkaChangeProducer) HealthCheck(ctx context.Context) error {
	if p.producer == nil {
		return fmt.Errorf("health check failed - producer is nil")
	}
	if p.config.Topic == "" {
		return fmt.Errorf("health check failed - change topic not configured")
	}
	return nil
}

// NoopProducer drops all events. Used when Kafka is disabled so the
// services can publish unconditionally.
type NoopProducer struct{}

func NewNoopProducer() Producer {
	return &NoopProducer{}
}

func (NoopProducer) PublishChange(ctx context.Context, event *ChangeEvent) error { return nil }
func (NoopProducer) Close() error                                                { return nil }
func (NoopProducer) HealthCheck(ctx context.Context) error                       { return nil }
