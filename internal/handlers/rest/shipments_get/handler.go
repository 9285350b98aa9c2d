package shipments_get

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

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
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		apierror.Write(w, err)
		return
	}

	shipments, err := h.service.List(r.Context(), filter)
	if err != nil {
		if status := apierror.Write(w, err); status == http.StatusInternalServerError {
			h.log.With(
				logger.NewField("error", err),
			).Error("list shipments")
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.FromShipments(shipments))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

// parseFilter читает status, carrier, skip, limit; без limit берется DefaultListLimit.
func parseFilter(r *http.Request) (entities.ShipmentFilter, error) {
	query := r.URL.Query()
	filter := entities.ShipmentFilter{
		Limit: shipment.DefaultListLimit,
	}

	if v := query.Get("status"); v != "" {
		status, err := entities.ParseShipmentStatus(v)
		if err != nil {
			return filter, fmt.Errorf("%w: %v", shipment.ErrInvalidStatus, err)
		}
		filter.Status = &status
	}

	if v := query.Get("carrier"); v != "" {
		carrier, err := entities.ParseCarrier(v)
		if err != nil {
			return filter, fmt.Errorf("%w: %v", shipment.ErrInvalidCarrier, err)
		}
		filter.Carrier = &carrier
	}

	if v := query.Get("skip"); v != "" {
		skip, err := strconv.Atoi(v)
		if err != nil {
			return filter, fmt.Errorf("%w: skip %q", shipment.ErrInvalidPagination, v)
		}
		filter.Skip = skip
	}

	if v := query.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return filter, fmt.Errorf("%w: limit %q", shipment.ErrInvalidPagination, v)
		}
		filter.Limit = limit
	}

	return filter, nil
}
