package shipment

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"shipment-service/internal/entities"
	"shipment-service/internal/repository"
	"shipment-service/internal/service/shipment"
)

const (
	constraintOrderID    = "shipments_order_id_key"
	constraintTrackingNo = "shipments_tracking_no_key"

	shipmentColumns = "shipment_id, order_id, carrier, status, tracking_no, shipped_at, delivered_at, created_at, updated_at"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create вставляет отправление. Коллизия трек-номера не прерывает транзакцию
// (ON CONFLICT DO NOTHING) и возвращается как shipment.ErrTrackingNumberTaken.
func (r *Repository) Create(ctx context.Context, shipmentModify entities.ShipmentModify) (*entities.Shipment, error) {
	modifyDB := FromDomainModify(&shipmentModify)

	query := `
		INSERT INTO shipments (order_id, carrier, status, tracking_no, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		ON CONFLICT (tracking_no) DO NOTHING
		RETURNING ` + shipmentColumns

	shipmentDB, err := scanShipment(r.querier.QueryRow(
		ctx,
		query,
		modifyDB.OrderID,
		modifyDB.Carrier,
		modifyDB.Status,
		modifyDB.TrackingNo,
		modifyDB.CreatedAt,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrTrackingNumberTaken
		}
		if repository.IsPgConstraintViolation(err, repository.PgErrUniqueViolation, constraintOrderID) {
			return nil, shipment.ErrDuplicateOrder
		}
		if repository.IsPgConstraintViolation(err, repository.PgErrUniqueViolation, constraintTrackingNo) {
			return nil, shipment.ErrTrackingNumberTaken
		}
		return nil, fmt.Errorf("unexpected shipment repository create error: %w", err)
	}

	return ToDomain(shipmentDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Shipment, error) {
	return r.getOne(ctx, "shipment_id", id, false)
}

// GetByIDForUpdate блокирует строку до конца текущей транзакции.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*entities.Shipment, error) {
	return r.getOne(ctx, "shipment_id", id, true)
}

func (r *Repository) GetByOrderID(ctx context.Context, orderID int64) (*entities.Shipment, error) {
	return r.getOne(ctx, "order_id", orderID, false)
}

func (r *Repository) GetByOrderIDForUpdate(ctx context.Context, orderID int64) (*entities.Shipment, error) {
	return r.getOne(ctx, "order_id", orderID, true)
}

func (r *Repository) GetByTrackingNo(ctx context.Context, trackingNo string) (*entities.Shipment, error) {
	return r.getOne(ctx, "tracking_no", trackingNo, false)
}

func (r *Repository) getOne(ctx context.Context, column string, value any, forUpdate bool) (*entities.Shipment, error) {
	if forUpdate && !r.querier.InTransaction(ctx) {
		return nil, errors.New("shipment repository: row lock requested outside of transaction")
	}

	builder := qb.
		Select(shipmentColumns).
		From("shipments").
		Where(sq.Eq{column: value})
	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository get error: %w", err)
	}

	shipmentDB, err := scanShipment(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrShipmentNotFound
		}
		return nil, fmt.Errorf("unexpected shipment repository get by %s error: %w", column, err)
	}

	return ToDomain(shipmentDB), nil
}

func (r *Repository) List(ctx context.Context, filter entities.ShipmentFilter) ([]entities.Shipment, error) {
	builder := qb.
		Select(shipmentColumns).
		From("shipments").
		OrderBy("created_at DESC", "shipment_id DESC").
		Offset(uint64(filter.Skip)).
		Limit(uint64(filter.Limit))

	// опциональные фильтры
	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}
	if filter.Carrier != nil {
		builder = builder.Where(sq.Eq{"carrier": filter.Carrier.String()})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository list error: %w", err)
	}
	defer rows.Close()

	models := make([]ShipmentDB, 0, filter.Limit)
	for rows.Next() {
		shipmentDB, err := scanShipment(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected shipment repository list error: %w", err)
		}
		models = append(models, *shipmentDB)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected shipment repository list error: %w", err)
	}

	return ToDomainList(models), nil
}

// UpdateStatus меняет статус. shipped_at и delivered_at не перезаписываются,
// если уже были выставлены. Метки времени не раньше created_at: часы
// экземпляра, обновляющего строку, могут отставать от часов создавшего.
func (r *Repository) UpdateStatus(ctx context.Context, update entities.StatusUpdate) (*entities.Shipment, error) {
	query := `
		UPDATE shipments
		SET status = $2,
			updated_at = GREATEST($3::timestamptz, created_at),
			shipped_at = CASE
				WHEN shipped_at IS NULL AND $4::timestamptz IS NOT NULL THEN GREATEST($4::timestamptz, created_at)
				ELSE shipped_at
			END,
			delivered_at = CASE
				WHEN delivered_at IS NULL AND $5::timestamptz IS NOT NULL THEN GREATEST($5::timestamptz, created_at)
				ELSE delivered_at
			END
		WHERE shipment_id = $1
		RETURNING ` + shipmentColumns

	shipmentDB, err := scanShipment(r.querier.QueryRow(
		ctx,
		query,
		update.ShipmentID,
		update.Status.String(),
		update.UpdatedAt,
		update.ShippedAt,
		update.DeliveredAt,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrShipmentNotFound
		}
		return nil, fmt.Errorf("unexpected shipment repository update status error: %w", err)
	}

	return ToDomain(shipmentDB), nil
}

// CountByStatus возвращает количество отправлений в каждом статусе,
// статусы без отправлений в результат не попадают.
func (r *Repository) CountByStatus(ctx context.Context) (map[entities.ShipmentStatus]int64, error) {
	query := `
		SELECT status, COUNT(*)
		FROM shipments
		GROUP BY status
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository count error: %w", err)
	}
	defer rows.Close()

	counts := make(map[entities.ShipmentStatus]int64)
	for rows.Next() {
		var countDB StatusCountDB
		if err := rows.Scan(&countDB.Status, &countDB.Count); err != nil {
			return nil, fmt.Errorf("unexpected shipment repository count error: %w", err)
		}
		counts[entities.ShipmentStatus(countDB.Status)] = countDB.Count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected shipment repository count error: %w", err)
	}

	return counts, nil
}

func scanShipment(row pgx.Row) (*ShipmentDB, error) {
	var shipmentDB ShipmentDB
	err := row.Scan(
		&shipmentDB.ID,
		&shipmentDB.OrderID,
		&shipmentDB.Carrier,
		&shipmentDB.Status,
		&shipmentDB.TrackingNo,
		&shipmentDB.ShippedAt,
		&shipmentDB.DeliveredAt,
		&shipmentDB.CreatedAt,
		&shipmentDB.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &shipmentDB, nil
}
