package purge_sessions

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

const (
	kindRecords = "records"

	runTimeout = 30 * time.Second
)

type evicter struct {
	kind    string
	evicter Evicter
}

// Job удаляет брошенные сессии: записи хранилища и состояние в памяти,
// не обновлявшиеся дольше ttl
// Для redis purger не нужен: записи истекают сами
type Job struct {
	purger   Purger
	evicters []evicter
	ttl      time.Duration
	observer Observer
	logger   Logger
	now      func() time.Time
}

// NewJob purger и observer могут быть nil
func NewJob(purger Purger, ttl time.Duration, observer Observer, logger Logger) *Job {
	return &Job{
		purger:   purger,
		ttl:      ttl,
		observer: observer,
		logger:   logger,
		now:      time.Now,
	}
}

// WithEvicter добавляет состояние в памяти, очищаемое вместе с записями
func (j *Job) WithEvicter(kind string, e Evicter) *Job {
	j.evicters = append(j.evicters, evicter{kind: kind, evicter: e})
	return j
}

// Run выполняет одну очистку
func (j *Job) Run(ctx context.Context) error {
	if j.ttl <= 0 {
		return nil
	}
	cutoff := j.now().Add(-j.ttl)

	for _, e := range j.evicters {
		evicted := e.evicter.EvictIdle(cutoff)
		j.observe(e.kind, int64(evicted))
		if evicted > 0 {
			j.logger.Info("PurgeSessions: evicted %d idle %s", evicted, e.kind)
		}
	}

	if j.purger == nil {
		return nil
	}

	purged, err := j.purger.PurgeOlderThan(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("purge sessions: failed to purge records older than %s: %w", cutoff.Format(time.RFC3339), err)
	}
	j.observe(kindRecords, purged)
	if purged > 0 {
		j.logger.Info("PurgeSessions: purged %d session records older than %s", purged, cutoff.Format(time.RFC3339))
	}
	return nil
}

func (j *Job) observe(kind string, count int64) {
	if j.observer != nil && count > 0 {
		j.observer.ObservePurge(kind, count)
	}
}

// Schedule регистрирует задачу в планировщике
func Schedule(c *cron.Cron, spec string, job *Job) (cron.EntryID, error) {
	id, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
		defer cancel()

		if err := job.Run(ctx); err != nil {
			job.logger.Error("PurgeSessions: %v", err)
		}
	})
	if err != nil {
		return 0, fmt.Errorf("purge sessions: invalid schedule %q: %w", spec, err)
	}
	return id, nil
}
