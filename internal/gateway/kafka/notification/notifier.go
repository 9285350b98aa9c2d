package notification

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"shipment-service/internal/entities"
	"shipment-service/pkg/logger"
)

const (
	DefaultSendTimeout = 2 * time.Second

	reasonEncode  = "encode"
	reasonTimeout = "timeout"
	reasonBroker  = "broker"
)

// Notifier публикует уведомления о смене статуса и запросы на возврат остатков.
// Публикация асинхронная: ошибки брокера только логируются и считаются.
type Notifier struct {
	producer       sarama.AsyncProducer
	log            notifierLogger
	statusTopic    string
	inventoryTopic string
	sendTimeout    time.Duration
	done           chan struct{}
}

func New(producer sarama.AsyncProducer, log notifierLogger, statusTopic, inventoryTopic string, sendTimeout time.Duration) *Notifier {
	if sendTimeout <= 0 {
		sendTimeout = DefaultSendTimeout
	}

	n := &Notifier{
		producer:       producer,
		log:            log,
		statusTopic:    statusTopic,
		inventoryTopic: inventoryTopic,
		sendTimeout:    sendTimeout,
		done:           make(chan struct{}),
	}

	go n.drainErrors()
	return n
}

func (n *Notifier) NotifyStatusChanged(ctx context.Context, transition entities.StatusTransition) {
	n.publish(ctx, n.statusTopic, orderKey(transition.Shipment.OrderID), toStatusChangedMessage(transition))
}

func (n *Notifier) ReleaseInventory(ctx context.Context, shipment entities.Shipment) {
	n.publish(ctx, n.inventoryTopic, orderKey(shipment.OrderID), toInventoryReleaseMessage(shipment))
}

// Close дожидается отправки буферизованных сообщений.
func (n *Notifier) Close() error {
	n.producer.AsyncClose()
	<-n.done
	return nil
}

func (n *Notifier) publish(ctx context.Context, topic, key string, payload any) {
	value, err := json.Marshal(payload)
	if err != nil {
		PublishErrorsTotal.WithLabelValues(topic, reasonEncode).Inc()
		n.log.Error("failed to encode kafka message",
			logger.NewField("topic", topic),
			logger.NewField("error", err),
		)
		return
	}

	msg := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(value),
	}

	timer := time.NewTimer(n.sendTimeout)
	defer timer.Stop()

	select {
	case n.producer.Input() <- msg:
		MessagesPublishedTotal.WithLabelValues(topic).Inc()
	case <-timer.C:
		PublishErrorsTotal.WithLabelValues(topic, reasonTimeout).Inc()
		n.log.Warn("kafka producer input is full, message dropped",
			logger.NewField("topic", topic),
			logger.NewField("key", key),
		)
	case <-ctx.Done():
		PublishErrorsTotal.WithLabelValues(topic, reasonTimeout).Inc()
		n.log.Warn("context done before kafka message was enqueued",
			logger.NewField("topic", topic),
			logger.NewField("key", key),
			logger.NewField("error", ctx.Err()),
		)
	}
}

func (n *Notifier) drainErrors() {
	defer close(n.done)

	for perr := range n.producer.Errors() {
		topic := ""
		if perr.Msg != nil {
			topic = perr.Msg.Topic
		}
		PublishErrorsTotal.WithLabelValues(topic, reasonBroker).Inc()
		n.log.Error("failed to publish kafka message",
			logger.NewField("topic", topic),
			logger.NewField("error", perr.Err),
		)
	}
}
