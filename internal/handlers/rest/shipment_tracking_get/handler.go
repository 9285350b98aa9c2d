package shipment_tracking_get

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"shipment-service/internal/handlers/rest/apierror"
	"shipment-service/internal/handlers/rest/dto"
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
	trackingNo := mux.Vars(r)["tracking_no"]

	details, err := h.service.GetByTrackingNo(r.Context(), trackingNo)
	if err != nil {
		if status := apierror.Write(w, err); status == http.StatusInternalServerError {
			h.log.With(
				logger.NewField("tracking_no", trackingNo),
				logger.NewField("error", err),
			).Error("track shipment")
		}
		return
	}

	response := dto.TrackingResponse{
		Shipment: dto.FromShipment(details.Shipment),
		Events:   dto.FromEvents(details.Events),
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
