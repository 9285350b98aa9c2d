package ping_get

import (
	"encoding/json"
	"net/http"
	"time"

	"shipment-service/internal/handlers/rest/dto"
	"shipment-service/pkg/logger"
)

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

type Handler struct {
	log     handlerLogger
	service string
	clock   Clock
}

func New(log handlerLogger, service string, clock Clock) *Handler {
	if clock == nil {
		clock = SystemClock{}
	}

	return &Handler{
		log:     log,
		service: service,
		clock:   clock,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	res := dto.PingResponse{
		Message: "pong",
		Service: h.service,
		Time:    h.clock.Now().UTC(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(res); err != nil {
		h.log.Error("encode JSON response", logger.NewField("error", err))
	}
}
