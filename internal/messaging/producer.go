package messaging

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/sony/gobreaker"

	"vehicle-rental-api/internal/logger"
)

// Producer publishes domain events to Kafka. Writes are asynchronous and
// guarded by a circuit breaker so a dead broker never stalls request
// handling; delivery is at-least-once best-effort.
type Producer struct {
	writer *kafka.Writer
	cb     *gobreaker.CircuitBreaker
	log    *slog.Logger
}

func NewProducer(brokers []string) *Producer {
	p := &Producer{log: logger.WithService("kafka-producer")}

	p.cb = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "kafka-producer",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			p.log.Warn("Circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
		},
	})

	p.writer = &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
		Async:                  true,
		Completion:             p.completion,
	}

	return p
}

// completion receives async delivery results. Failures are counted into the
// breaker here because the async write call itself almost never errors.
func (p *Producer) completion(messages []kafka.Message, err error) {
	if err == nil {
		return
	}
	p.log.Error("Kafka delivery failed", "error", err, "messages", len(messages))
	_, _ = p.cb.Execute(func() (interface{}, error) {
		return nil, err
	})
}

func (p *Producer) Publish(ctx context.Context, topic string, payload []byte) error {
	_, err := p.cb.Execute(func() (interface{}, error) {
		return nil, p.writer.WriteMessages(ctx, kafka.Message{
			Topic: topic,
			Key:   []byte(uuid.NewString()),
			Value: payload,
		})
	})
	if err != nil {
		return err
	}
	p.log.Debug("Event queued for delivery", "topic", topic, "bytes", len(payload))
	return nil
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
