package realtime

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/IBM/sarama"

	"mtour/pkg/logger"
)

// Listener is invoked for every change event on a subscribed table.
// Listeners refetch whatever they derive from the table, they never
// receive row payloads.
type Listener func(event *ChangeEvent)

// Consumer dispatches change events to per-table listeners.
type Consumer interface {
	Subscribe(table string, listener Listener)
	Start(ctx context.Context) error
	Stop() error
	HealthCheck(ctx context.Context) error
}

// ConsumerConfig contains configuration for the Kafka change consumer
type ConsumerConfig struct {
	Brokers          []string
	GroupID          string
	Topic            string
	SessionTimeoutMs int
	HeartbeatMs      int
	RetryBackoffMs   int
	AutoCommit       bool
	OffsetOldest     bool
}

// DefaultConsumerConfig returns a default consumer configuration
func DefaultConsumerConfig() *ConsumerConfig {
	return &ConsumerConfig{
		Brokers:          []string{"localhost:9092"},
		GroupID:          "mtour-ops",
		Topic:            "table-changes",
		SessionTimeoutMs: 30000,
		HeartbeatMs:      3000,
		RetryBackoffMs:   100,
		AutoCommit:       true,
		OffsetOldest:     false,
	}
}

// KafkaChangeConsumer consumes the change topic and fans events out to
// registered listeners.
type KafkaChangeConsumer struct {
	consumerGroup sarama.ConsumerGroup
	config        *ConsumerConfig
	log           *logger.Logger

	mu        sync.RWMutex
	listeners map[string][]Listener

	ctx    context.Context
	cancel context.CancelFunc
}

// NewKafkaChangeConsumer creates a new Kafka change consumer
func NewKafkaChangeConsumer(config *ConsumerConfig, log *logger.Logger) (*KafkaChangeConsumer, error) {
	saramaConfig := sarama.NewConfig()

	saramaConfig.Consumer.Group.Session.Timeout = time.Duration(config.SessionTimeoutMs) * time.Millisecond
	saramaConfig.Consumer.Group.Heartbeat.Interval = time.Duration(config.HeartbeatMs) * time.Millisecond
	saramaConfig.Consumer.Retry.Backoff = time.Duration(config.RetryBackoffMs) * time.Millisecond
	saramaConfig.Consumer.Return.Errors = true

	if config.OffsetOldest {
		saramaConfig.Consumer.Offsets.Initial = sarama.OffsetOldest
	} else {
		saramaConfig.Consumer.Offsets.Initial = sarama.OffsetNewest
	}

	if config.AutoCommit {
		saramaConfig.Consumer.Offsets.AutoCommit.Enable = true
		saramaConfig.Consumer.Offsets.AutoCommit.Interval = 1 * time.Second
	}

	consumerGroup, err := sarama.NewConsumerGroup(config.Brokers, config.GroupID, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &KafkaChangeConsumer{
		consumerGroup: consumerGroup,
		config:        config,
		log:           log,
		listeners:     make(map[string][]Listener),
		ctx:           ctx,
		cancel:        cancel,
	}, nil
}

// Subscribe registers a listener for one table, or for every table with
// TableAll. Must be called before Start.
func (c *KafkaChangeConsumer) Subscribe(table string, listener Listener) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners[table] = append(c.listeners[table], listener)
}

// Start runs the consume loop until the context is cancelled.
func (c *KafkaChangeConsumer) Start(ctx context.Context) error {
	log.Printf("Starting change consumer for topic %s", c.config.Topic)

	go c.handleErrors()

	go func() {
		handler := &changeGroupHandler{consumer: c}
		for {
			select {
			case <-ctx.Done():
				return
			case <-c.ctx.Done():
				return
			default:
				if err := c.consumerGroup.Consume(ctx, []string{c.config.Topic}, handler); err != nil {
					log.Printf("Change consumer error: %v", err)
					time.Sleep(time.Second)
				}
			}
		}
	}()

	return nil
}

func (c *KafkaChangeConsumer) handleErrors() {
	for err := range c.consumerGroup.Errors() {
		log.Printf("Change consumer group error: %v", err)
	}
}

func (c *KafkaChangeConsumer) dispatch(event *ChangeEvent) {
	c.log.LogChangeEvent(context.Background(), event.Table, string(event.Type), event.RowID)

	c.mu.RLock()
	targets := append([]Listener{}, c.listeners[event.Table]...)
	targets = append(targets, c.listeners[TableAll]...)
	c.mu.RUnlock()

	for _, listener := range targets {
		listener(event)
	}
}

// Stop shuts the consumer group down.
func (c *KafkaChangeConsumer) Stop() error {
	c.cancel()
	if err := c.consumerGroup.Close(); err != nil {
		return fmt.Errorf("failed to close consumer group: %w", err)
	}
	log.Printf("Change consumer stopped")
	return nil
}

func (c *KafkaChangeConsumer) HealthCheck(ctx context.Context) error {
	select {
	case <-c.ctx.Done():
		return fmt.Errorf("consumer context is cancelled")
	default:
		return nil
	}
}

type changeGroupHandler struct {
	consumer *KafkaChangeConsumer
}

func (h *changeGroupHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *changeGroupHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *changeGroupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message := <-claim.Messages():
			if message == nil {
				return nil
			}

			event, err := ChangeEventFromJSON(message.Value)
			if err != nil {
				log.Printf("Skipping malformed change event at offset %d: %v", message.Offset, err)
				session.MarkMessage(message, "")
				continue
			}

			h.consumer.dispatch(event)
			session.MarkMessage(message, "")

		case <-session.Context().Done():
			return nil
		}
	}
}
