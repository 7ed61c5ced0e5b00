package session

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StorefrontService/pkg/dbmetrics"
)

// DBExecutor поддерживает *sql.DB и *dbmetrics.DB
type DBExecutor = dbmetrics.DBExecutor

// Store хранилище записей сессии: одна запись на пару (sessionID, key)
type Store interface {
	Get(ctx context.Context, sessionID, key string) ([]byte, error)
	Set(ctx context.Context, sessionID, key string, payload []byte) error
	Delete(ctx context.Context, sessionID, key string) error
}

// Purger удаляет записи, не обновлявшиеся с момента cutoff
type Purger interface {
	PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
