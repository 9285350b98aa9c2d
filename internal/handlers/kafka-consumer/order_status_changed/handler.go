package order_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"shipment-service/pkg/logger"
)

type Handler struct {
	orderService             Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, orderService Service, timeout time.Duration) *Handler {
	return &Handler{
		orderService:             orderService,
		log:                      log.With(logger.NewField("consumer", "order.status.changed")),
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("order.status.changed: claim messages closed, exiting ConsumeClaim")
				return nil
			}

			if shouldExit := h.messageProcessing(sess, message); shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance или остановка consumer group
			h.log.Info("order.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение. true - прервать ConsumeClaim
// без коммита офсета, сообщение будет прочитано заново.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	msgLog := h.log.With(
		logger.NewField("partition", message.Partition),
		logger.NewField("offset", message.Offset),
	)

	var event orderStatusChangedEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		msgLog.Error("order.status.changed: bad message", logger.NewField("error", err))
		sess.MarkMessage(message, "")
		return false
	}

	msgLog = msgLog.With(
		logger.NewField("order_id", event.OrderID),
		logger.NewField("status", event.Status),
	)

	change, err := event.toChange()
	if err != nil {
		msgLog.Error("order.status.changed: bad message", logger.NewField("error", err))
		sess.MarkMessage(message, "")
		return false
	}

	applied, err := h.orderService.ProcessOrderStatusChange(ctx, change)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			msgLog.Warn("order.status.changed: context cancelled, message will be reprocessed",
				logger.NewField("error", err))
			return true
		}

		msgLog.Error("order.status.changed: failed to process", logger.NewField("error", err))
		sess.MarkMessage(message, "")
		return false
	}

	if applied {
		msgLog.Info("order.status.changed: processed")
	} else {
		msgLog.Info("order.status.changed: skipped")
	}

	sess.MarkMessage(message, "")
	return false
}
