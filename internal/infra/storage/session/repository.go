package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-StorefrontService/pkg/psqlbuilder"
)

const tableSessionRecords = "session_records"

// Repository хранилище сессий в PostgreSQL
// Таблица описана в migrations/001_session_records.sql
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сессий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает payload записи сессии
func (r *Repository) Get(ctx context.Context, sessionID, key string) ([]byte, error) {
	if err := validateKey(sessionID, key); err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Select("payload").
		From(tableSessionRecords).
		Where(squirrel.Eq{"session_id": sessionID, "record_key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var payload []byte
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan record: %v", ErrScanRow, err)
	}

	return payload, nil
}

// Set сохраняет запись, перезаписывая предыдущую с тем же ключом
func (r *Repository) Set(ctx context.Context, sessionID, key string, payload []byte) error {
	if err := validateKey(sessionID, key); err != nil {
		return err
	}

	// payload передается строкой: []byte lib/pq кодирует как bytea, а колонка jsonb
	query, args, err := psqlbuilder.Insert(tableSessionRecords).
		Columns("session_id", "record_key", "payload", "updated_at").
		Values(sessionID, key, string(payload), squirrel.Expr("NOW()")).
		Suffix("ON CONFLICT (session_id, record_key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Set - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Set - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

// Delete удаляет запись; отсутствие записи не является ошибкой
func (r *Repository) Delete(ctx context.Context, sessionID, key string) error {
	if err := validateKey(sessionID, key); err != nil {
		return err
	}

	query, args, err := psqlbuilder.Delete(tableSessionRecords).
		Where(squirrel.Eq{"session_id": sessionID, "record_key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// PurgeOlderThan удаляет брошенные записи, не обновлявшиеся с момента cutoff
func (r *Repository) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query, args, err := psqlbuilder.Delete(tableSessionRecords).
		Where(squirrel.Lt{"updated_at": cutoff}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: PurgeOlderThan - build delete query: %v", ErrBuildQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: PurgeOlderThan - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: PurgeOlderThan - rows affected: %v", ErrExecQuery, err)
	}

	return affected, nil
}
