package kafka

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"shipment-service/pkg/logger"
)

// NewProducerSaramaConfig конфиг асинхронного продюсера: ошибки читаются из Errors(),
// успехи не возвращаются, партиция выбирается по ключу.
func NewProducerSaramaConfig(versionStr string) (*sarama.Config, error) {
	cfg := sarama.NewConfig()

	version, err := sarama.ParseKafkaVersion(versionStr)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", versionStr, err)
	}
	cfg.Version = version

	cfg.Producer.RequiredAcks = sarama.WaitForLocal
	cfg.Producer.Partitioner = sarama.NewHashPartitioner
	cfg.Producer.Return.Successes = false
	cfg.Producer.Return.Errors = true

	return cfg, nil
}

func NewProducer(ctx context.Context, log logger.Logger, saramaVersion string, brokers []string) (sarama.AsyncProducer, error) {
	saramaConfig, err := NewProducerSaramaConfig(saramaVersion)
	if err != nil {
		return nil, fmt.Errorf("build saramaConfig: %w", err)
	}

	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("role", "producer"),
	)

	err = waitForBrokers(ctx, kafkaLog, newBrokerProbe(brokers, saramaConfig), defaultConnectRetry())
	if err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	producer, err := sarama.NewAsyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create async producer: %w", err)
	}

	kafkaLog.Info("Kafka producer started")
	return producer, nil
}
