package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"shipment-service/pkg/logger"
	"shipment-service/pkg/retrier"
	"shipment-service/pkg/retrier/backoff_adapter"
)

// brokerProbe проверяет, что кластер отвечает на запрос метаданных.
type brokerProbe func() error

func newBrokerProbe(brokers []string, cfg *sarama.Config) brokerProbe {
	return func() (err error) {
		client, err := sarama.NewClient(brokers, cfg)
		if err != nil {
			return err
		}
		defer func() {
			if closeErr := client.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("close probe client: %w", closeErr)
			}
		}()

		_, err = client.Topics()
		return err
	}
}

func defaultConnectRetry() retrier.Config {
	return retrier.Config{
		InitialInterval: time.Second,
		MaxInterval:     30 * time.Second,
		MaxElapsedTime:  2 * time.Minute,
		Randomization:   0.5,
		Multiplier:      2,
	}
}

// waitForBrokers повторяет probe с экспоненциальной паузой, пока кластер
// не ответит или не истечет MaxElapsedTime.
func waitForBrokers(ctx context.Context, log logger.Logger, probe brokerProbe, retryConfig retrier.Config) error {
	retryConfig.Notify = func(err error, wait time.Duration) {
		log.Warn("Kafka is not reachable yet",
			logger.NewField("error", err),
			logger.NewField("retry_in", wait.String()),
		)
	}

	var attempt uint64
	err := backoff_adapter.New(retryConfig).ExecuteWithContext(ctx, func(context.Context) error {
		attempt++
		log.Info("attempting Kafka connection", logger.NewField("attempt", attempt))
		return probe()
	})
	if err != nil {
		log.Error("Kafka connection failed after retries",
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		)
		return fmt.Errorf("connect to kafka after %d attempts: %w", attempt, err)
	}

	log.Info("Kafka connection established", logger.NewField("attempts", attempt))
	return nil
}
