package shipment_by_order_get

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
	orderIDStr := mux.Vars(r)["order_id"]
	orderID, err := strconv.ParseInt(orderIDStr, 10, 64)
	if err != nil {
		apierror.Write(w, fmt.Errorf("%w: %q", shipment.ErrInvalidOrderID, orderIDStr))
		return
	}

	details, err := h.service.GetByOrderID(r.Context(), orderID)
	if err != nil {
		if status := apierror.Write(w, err); status == http.StatusInternalServerError {
			h.log.With(
				logger.NewField("order_id", orderID),
				logger.NewField("error", err),
			).Error("get shipment by order")
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.FromDetails(*details))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
