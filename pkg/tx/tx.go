package tx

import (
	"context"
	"errors"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/avito-tech/go-transaction-manager/trm/settings"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"shipment-service/pkg/retrier"
)

const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

// Manager инкапсулирует логику управления транзакциями.
// Вложенные вызовы Do присоединяются к внешней транзакции из контекста.
type Manager struct {
	internal *manager.Manager
	getter   *pgxv5.CtxGetter
	retrier  retrier.Retrier
}

// New создает менеджер READ COMMITTED транзакций. retrier повторяет
// внешнюю транзакцию целиком после IsTransient ошибки, nil - без повторов.
func New(db pgxv5.Transactional, retrier retrier.Retrier) *Manager {
	return &Manager{
		internal: manager.Must(pgxv5.NewDefaultFactory(db)),
		getter:   pgxv5.DefaultCtxGetter,
		retrier:  retrier,
	}
}

// Do выполняет fn в транзакции READ COMMITTED. Конкурирующие записи
// сериализуются блокировками строк (SELECT ... FOR UPDATE) и вставкой в уникальный индекс.
// fn может быть вызвана повторно и не должна переносить состояние между вызовами.
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	txSettings := pgxv5.MustSettings(
		settings.Must(),
		pgxv5.WithTxOptions(pgx.TxOptions{IsoLevel: pgx.ReadCommitted}),
	)

	run := func(ctx context.Context) error {
		return m.internal.DoWithSettings(ctx, txSettings, fn)
	}

	// вложенная транзакция уже прервана, повтор возможен только снаружи
	if m.retrier == nil || m.inTransaction(ctx) {
		return run(ctx)
	}
	return m.retrier.ExecuteWithContext(ctx, run)
}

func (m *Manager) inTransaction(ctx context.Context) bool {
	return m.getter.DefaultTrOrDB(ctx, nil) != nil
}

// IsTransient сообщает, что транзакцию откатил сам Postgres и ее можно повторить.
func IsTransient(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == codeSerializationFailure || pgErr.Code == codeDeadlockDetected
}
