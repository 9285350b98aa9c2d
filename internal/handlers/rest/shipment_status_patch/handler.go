package shipment_status_patch

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"shipment-service/internal/entities"
	"shipment-service/internal/handlers/rest/apierror"
	"shipment-service/internal/handlers/rest/dto"
	"shipment-service/internal/service/shipment"
	"shipment-service/pkg/logger"
)

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

	var updateDTO dto.StatusUpdate
	err = json.NewDecoder(r.Body).Decode(&updateDTO)
	if err != nil {
		apierror.BadRequest(w, "malformed JSON body")
		return
	}

	status, err := entities.ParseShipmentStatus(updateDTO.Status)
	if err != nil {
		apierror.Write(w, fmt.Errorf("%w: %v", shipment.ErrInvalidStatus, err))
		return
	}

	shipmentEntity, err := h.service.UpdateStatus(r.Context(), entities.StatusChange{
		ShipmentID:  id,
		Status:      status,
		Location:    updateDTO.Location,
		Description: updateDTO.Description,
	})
	if err != nil {
		if code := apierror.Write(w, err); code == http.StatusInternalServerError {
			h.log.With(
				logger.NewField("shipment_id", id),
				logger.NewField("status", status.String()),
				logger.NewField("error", err),
			).Error("update shipment status")
		}
		return
	}

	h.log.Info("shipment status updated",
		logger.NewField("shipment_id", shipmentEntity.ID),
		logger.NewField("order_id", shipmentEntity.OrderID),
		logger.NewField("tracking_no", shipmentEntity.TrackingNo),
		logger.NewField("status", shipmentEntity.Status.String()),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.FromShipment(*shipmentEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
