package shipment_delete

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"shipment-service/internal/handlers/rest/apierror"
	"shipment-service/internal/handlers/rest/dto"
	"shipment-service/internal/service/shipment"
	"shipment-service/pkg/logger"
)

const cancelledMessage = "Shipment cancelled successfully"

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		apierror.Write(w, fmt.Errorf("%w: %q", shipment.ErrInvalidShipmentID, idStr))
		return
	}

	shipmentEntity, err := h.service.Cancel(r.Context(), id)
	if err != nil {
		if status := apierror.Write(w, err); status == http.StatusInternalServerError {
			h.log.With(
				logger.NewField("shipment_id", id),
				logger.NewField("error", err),
			).Error("cancel shipment")
		}
		return
	}

	h.log.Info("shipment cancelled",
		logger.NewField("shipment_id", shipmentEntity.ID),
		logger.NewField("order_id", shipmentEntity.OrderID),
		logger.NewField("tracking_no", shipmentEntity.TrackingNo),
	)

	response := dto.CancelResponse{
		Message:    cancelledMessage,
		ShipmentID: shipmentEntity.ID,
		Status:     shipmentEntity.Status.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
