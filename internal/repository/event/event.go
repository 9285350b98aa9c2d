package event

import (
	"context"
	"fmt"

	"shipment-service/internal/entities"
	"shipment-service/internal/repository"
	"shipment-service/internal/service/eventlog"
)

const eventColumns = "event_id, shipment_id, status, location, description, created_at"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Append добавляет событие. Время события не может быть раньше последнего
// события того же отправления, поэтому берется GREATEST с MAX(created_at).
func (r *Repository) Append(ctx context.Context, eventModify entities.ShipmentEventModify) (*entities.ShipmentEvent, error) {
	modifyDB := FromDomainModify(&eventModify)

	query := `
		INSERT INTO shipment_events (shipment_id, status, location, description, created_at)
		SELECT $1::bigint, $2::varchar, $3::text, $4::text,
			GREATEST($5::timestamptz, COALESCE(MAX(e.created_at), $5::timestamptz))
		FROM shipment_events e
		WHERE e.shipment_id = $1::bigint
		RETURNING ` + eventColumns

	var eventDB EventDB
	err := r.querier.QueryRow(
		ctx,
		query,
		modifyDB.ShipmentID,
		modifyDB.Status,
		modifyDB.Location,
		modifyDB.Description,
		modifyDB.CreatedAt,
	).Scan(
		&eventDB.ID,
		&eventDB.ShipmentID,
		&eventDB.Status,
		&eventDB.Location,
		&eventDB.Description,
		&eventDB.CreatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, eventlog.ErrShipmentNotFound
		}
		return nil, fmt.Errorf("unexpected event repository append error: %w", err)
	}

	return ToDomain(&eventDB), nil
}

// ListForShipment возвращает события от старых к новым.
func (r *Repository) ListForShipment(ctx context.Context, shipmentID int64) ([]entities.ShipmentEvent, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM shipment_events
		WHERE shipment_id = $1
		ORDER BY created_at ASC, event_id ASC
	`

	rows, err := r.querier.Query(ctx, query, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("unexpected event repository list error: %w", err)
	}
	defer rows.Close()

	// обычно у отправления единицы событий
	models := make([]EventDB, 0, 8)
	for rows.Next() {
		var eventDB EventDB
		err := rows.Scan(
			&eventDB.ID,
			&eventDB.ShipmentID,
			&eventDB.Status,
			&eventDB.Location,
			&eventDB.Description,
			&eventDB.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected event repository list error: %w", err)
		}
		models = append(models, eventDB)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected event repository list error: %w", err)
	}

	return ToDomainList(models), nil
}
