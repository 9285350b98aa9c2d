package kafka

import (
	"context"
	"errors"
	"fmt"

	"github.com/IBM/sarama"
	"shipment-service/internal/pkg/config"
	"shipment-service/pkg/logger"
)

// Consumer крутит consumer group по одному топику до отмены ctx.
type Consumer struct {
	log     logger.Logger
	client  sarama.ConsumerGroup
	topics  []string
	handler sarama.ConsumerGroupHandler
}

// NewConsumerSaramaConfig конфиг группы: чтение с самого старого offset,
// round robin между участниками, ошибки группы отдаются в Errors().
func NewConsumerSaramaConfig(versionStr string, autoCommit bool) (*sarama.Config, error) {
	cfg := sarama.NewConfig()

	version, err := sarama.ParseKafkaVersion(versionStr)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", versionStr, err)
	}
	cfg.Version = version

	cfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	cfg.Consumer.Offsets.AutoCommit.Enable = autoCommit
	cfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	cfg.Consumer.Return.Errors = true

	return cfg, nil
}

func NewConsumer(
	ctx context.Context,
	log logger.Logger,
	cfg *config.Kafka,
	brokers []string,
	handler sarama.ConsumerGroupHandler,
) (*Consumer, error) {
	saramaConfig, err := NewConsumerSaramaConfig(cfg.Sarama.Version, cfg.Sarama.ConsumerOffsetsAutocommit)
	if err != nil {
		return nil, fmt.Errorf("build saramaConfig: %w", err)
	}

	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("group", cfg.ConsumerGroup),
		logger.NewField("topic", cfg.Topic),
	)

	if err := waitForBrokers(ctx, kafkaLog, newBrokerProbe(brokers, saramaConfig), defaultConnectRetry()); err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	client, err := sarama.NewConsumerGroup(brokers, cfg.ConsumerGroup, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("create consumer group: %w", err)
	}

	return newConsumer(kafkaLog, client, []string{cfg.Topic}, handler), nil
}

func newConsumer(log logger.Logger, client sarama.ConsumerGroup, topics []string, handler sarama.ConsumerGroupHandler) *Consumer {
	return &Consumer{
		log:     log,
		client:  client,
		topics:  topics,
		handler: handler,
	}
}

// Start блокирует до отмены ctx или закрытия группы. Consume возвращается
// при каждой ребалансировке, поэтому вызывается в цикле.
func (c *Consumer) Start(ctx context.Context) error {
	c.log.Info("Kafka consumer starting")

	go c.drainErrors()

	for {
		err := c.client.Consume(ctx, c.topics, c.handler)
		switch {
		case errors.Is(err, sarama.ErrClosedConsumerGroup):
			c.log.Info("Kafka consumer group closed")
			return nil
		case err != nil:
			c.log.Error("Error from consumer", logger.NewField("error", err))
			return fmt.Errorf("consume: %w", err)
		}

		if ctx.Err() != nil {
			c.log.Warn("Context cancelled, stopping consumer")
			return ctx.Err()
		}
		ConsumerRebalancesTotal.Inc()
	}
}

// drainErrors читает асинхронные ошибки группы, канал закрывается в Close.
func (c *Consumer) drainErrors() {
	for err := range c.client.Errors() {
		ConsumerErrorsTotal.Inc()
		c.log.Warn("consumer group error", logger.NewField("error", err))
	}
}

func (c *Consumer) Close() error {
	return c.client.Close()
}
