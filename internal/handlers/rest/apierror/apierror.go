package apierror

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"shipment-service/internal/handlers/rest/dto"
	"shipment-service/internal/service/eventlog"
	"shipment-service/internal/service/idempotency"
	"shipment-service/internal/service/shipment"
)

type Code string

const (
	CodeNotFound            Code = "NOT_FOUND"
	CodeDuplicateOrder      Code = "DUPLICATE_ORDER"
	CodeInvalidTransition   Code = "INVALID_TRANSITION"
	CodeIdempotencyConflict Code = "IDEMPOTENCY_CONFLICT"
	CodeValidation          Code = "VALIDATION_ERROR"
	CodeBadRequest          Code = "BAD_REQUEST"
	CodeRateLimited         Code = "RATE_LIMITED"
	CodeUnavailable         Code = "SERVICE_UNAVAILABLE"
	CodeInternal            Code = "INTERNAL_ERROR"
)

const internalMessage = "internal server error"

// Classify сопоставляет ошибку сервиса с HTTP статусом и кодом ответа.
// Текст внутренних ошибок наружу не отдается.
func Classify(err error) (int, Code, string) {
	switch {
	case errors.Is(err, shipment.ErrShipmentNotFound),
		errors.Is(err, eventlog.ErrShipmentNotFound):
		return http.StatusNotFound, CodeNotFound, err.Error()
	case errors.Is(err, shipment.ErrDuplicateOrder):
		return http.StatusConflict, CodeDuplicateOrder, err.Error()
	case errors.Is(err, shipment.ErrInvalidTransition):
		return http.StatusConflict, CodeInvalidTransition, err.Error()
	case errors.Is(err, idempotency.ErrIdempotencyConflict):
		return http.StatusUnprocessableEntity, CodeIdempotencyConflict, err.Error()
	case shipment.IsValidationError(err):
		return http.StatusBadRequest, CodeValidation, err.Error()
	default:
		return http.StatusInternalServerError, CodeInternal, internalMessage
	}
}

// Write пишет ошибку сервиса и возвращает HTTP статус.
func Write(w http.ResponseWriter, err error) int {
	status, code, message := Classify(err)
	WriteCode(w, status, code, message)
	return status
}

func BadRequest(w http.ResponseWriter, message string) {
	WriteCode(w, http.StatusBadRequest, CodeBadRequest, message)
}

func WriteCode(w http.ResponseWriter, status int, code Code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(dto.ErrorResponse{
		Code:      string(code),
		Message:   message,
		Timestamp: time.Now().UTC(),
	})
}
