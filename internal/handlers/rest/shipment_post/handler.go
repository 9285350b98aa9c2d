package shipment_post

import (
	"encoding/json"
	"fmt"
	"net/http"

	"shipment-service/internal/entities"
	"shipment-service/internal/handlers/rest/apierror"
	"shipment-service/internal/handlers/rest/dto"
	"shipment-service/internal/service/shipment"
	"shipment-service/pkg/logger"
)

const (
	HeaderIdempotencyKey     = "Idempotency-Key"
	HeaderIdempotentReplayed = "Idempotent-Replayed"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var createDTO dto.ShipmentCreate
	err := json.NewDecoder(r.Body).Decode(&createDTO)
	if err != nil {
		apierror.BadRequest(w, "malformed JSON body")
		return
	}

	create := entities.ShipmentCreate{
		OrderID: createDTO.OrderID,
		Address: dto.ToAddress(createDTO.ShippingAddress),
	}
	if createDTO.Carrier != "" {
		carrier, err := entities.ParseCarrier(createDTO.Carrier)
		if err != nil {
			apierror.Write(w, fmt.Errorf("%w: %v", shipment.ErrInvalidCarrier, err))
			return
		}
		create.Carrier = carrier
	}

	key := r.Header.Get(HeaderIdempotencyKey)

	shipmentEntity, replayed, err := h.service.CreateShipmentIdempotent(r.Context(), key, create)
	if err != nil {
		if status := apierror.Write(w, err); status == http.StatusInternalServerError {
			h.log.With(
				logger.NewField("order_id", create.OrderID),
				logger.NewField("error", err),
			).Error("create shipment")
		}
		return
	}

	h.log.Info("shipment created",
		logger.NewField("shipment_id", shipmentEntity.ID),
		logger.NewField("order_id", shipmentEntity.OrderID),
		logger.NewField("carrier", shipmentEntity.Carrier.String()),
		logger.NewField("tracking_no", shipmentEntity.TrackingNo),
		logger.NewField("replayed", replayed),
	)

	if replayed {
		w.Header().Set(HeaderIdempotentReplayed, "true")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(dto.FromShipment(*shipmentEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
