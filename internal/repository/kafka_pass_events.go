package repository

import (
	"context"
	"strconv"

	"ShopPulse/internal/domain/models"
	"ShopPulse/pkg/kafka"
	"ShopPulse/pkg/logger"
)

// KafkaPassEvents publishes pass summaries to a Kafka topic, keyed by
// snapshot version. Publish failures are logged and swallowed so a broker
// outage never breaks report generation.
type KafkaPassEvents struct {
	producer *kafka.Producer
	topic    string
	logger   *logger.Logger
}

func NewKafkaPassEvents(producer *kafka.Producer, topic string, log *logger.Logger) *KafkaPassEvents {
	return &KafkaPassEvents{producer: producer, topic: topic, logger: log}
}

func (p *KafkaPassEvents) PublishSummary(ctx context.Context, s models.PassSummary) error {
	key := []byte(strconv.FormatInt(s.SnapshotVersion, 10))
	if err := p.producer.Publish(ctx, p.topic, key, s); err != nil {
		p.logger.Warn("failed to publish pass summary",
			logger.String("topic", p.topic),
			logger.Int64("snapshot_version", s.SnapshotVersion),
			logger.Error(err))
	}
	return nil
}

func (p *KafkaPassEvents) Close() error {
	return p.producer.Close()
}

// NoopPassEvents is used when Kafka is disabled.
type NoopPassEvents struct{}

func (NoopPassEvents) PublishSummary(context.Context, models.PassSummary) error { return nil }
func (NoopPassEvents) Close() error                                             { return nil }
