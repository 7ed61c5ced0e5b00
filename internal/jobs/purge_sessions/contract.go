package purge_sessions

import (
	"context"
	"time"
)

// Purger хранилище сессий, умеющее удалять устаревшие записи
type Purger interface {
	PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// Evicter состояние сессий в памяти процесса (формы оформления, лимитеры)
type Evicter interface {
	EvictIdle(cutoff time.Time) int
}

// Observer получатель метрик очистки
type Observer interface {
	ObservePurge(kind string, count int64)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
