package idempotency

import (
	"encoding/json"

	"shipment-service/internal/entities"
)

func ToDomain(r *RecordDB) *entities.IdempotencyRecord {
	if r == nil {
		return nil
	}
	record := &entities.IdempotencyRecord{
		ID:          r.ID,
		Key:         r.Key,
		RequestHash: r.RequestHash,
		CreatedAt:   r.CreatedAt,
		ExpiresAt:   r.ExpiresAt,
	}
	if len(r.ResponseData) > 0 {
		record.ResponseData = json.RawMessage(r.ResponseData)
	}
	return record
}
