package purge_sessions

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StorefrontService/internal/domain"
	sessionStorage "github.com/m04kA/SMC-StorefrontService/internal/infra/storage/session"
	"github.com/m04kA/SMC-StorefrontService/internal/service/checkout"
	"github.com/m04kA/SMC-StorefrontService/pkg/logger"
)

type fakePurger struct {
	cutoff time.Time
	purged int64
	err    error
}

func (p *fakePurger) PurgeOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	p.cutoff = cutoff
	return p.purged, p.err
}

type fakeEvicter struct {
	cutoff  time.Time
	evicted int
}

func (e *fakeEvicter) EvictIdle(cutoff time.Time) int {
	e.cutoff = cutoff
	return e.evicted
}

type recordingObserver struct {
	counts map[string]int64
}

func (o *recordingObserver) ObservePurge(kind string, count int64) {
	if o.counts == nil {
		o.counts = map[string]int64{}
	}
	o.counts[kind] += count
}

func TestRun_UsesTTLCutoff(t *testing.T) {
	now := time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)
	purger := &fakePurger{purged: 3}
	forms := &fakeEvicter{evicted: 2}
	observer := &recordingObserver{}

	job := NewJob(purger, time.Hour, observer, logger.NewNop()).WithEvicter("forms", forms)
	job.now = func() time.Time { return now }

	require.NoError(t, job.Run(context.Background()))
	assert.Equal(t, now.Add(-time.Hour), purger.cutoff)
	assert.Equal(t, now.Add(-time.Hour), forms.cutoff)
	assert.Equal(t, map[string]int64{"records": 3, "forms": 2}, observer.counts)
}

func TestRun_PurgerError(t *testing.T) {
	purger := &fakePurger{err: errors.New("connection refused")}

	job := NewJob(purger, time.Hour, nil, logger.NewNop())
	err := job.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestRun_ZeroTTLDisablesPurge(t *testing.T) {
	purger := &fakePurger{}

	job := NewJob(purger, 0, nil, logger.NewNop())
	require.NoError(t, job.Run(context.Background()))
	assert.True(t, purger.cutoff.IsZero())
}

func TestRun_MemoryStoreAndForms(t *testing.T) {
	ctx := context.Background()
	store := sessionStorage.NewMemoryStore()
	forms := checkout.NewFormRegistry()

	require.NoError(t, store.Set(ctx, "sess-1", domain.SessionKeyPendingSelection, []byte(`{}`)))
	forms.Acquire("sess-1", domain.PendingSelection{ExperienceID: "exp-1"})

	job := NewJob(store, time.Minute, nil, logger.NewNop()).WithEvicter("forms", forms)
	job.now = func() time.Time { return time.Now().Add(2 * time.Minute) }

	require.NoError(t, job.Run(ctx))

	_, err := store.Get(ctx, "sess-1", domain.SessionKeyPendingSelection)
	assert.ErrorIs(t, err, sessionStorage.ErrRecordNotFound)
	assert.Zero(t, forms.Len())
}

func TestSchedule(t *testing.T) {
	c := cron.New()
	job := NewJob(nil, time.Hour, nil, logger.NewNop()).WithEvicter("forms", &fakeEvicter{})

	id, err := Schedule(c, "@every 5m", job)
	require.NoError(t, err)
	assert.NotZero(t, id)
	assert.Len(t, c.Entries(), 1)

	_, err = Schedule(c, "not a schedule", job)
	assert.Error(t, err)
}
