package session

import (
	"context"
	"sync"
	"time"
)

type memoryRecord struct {
	payload   []byte
	updatedAt time.Time
}

// MemoryStore хранилище сессий в памяти процесса
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]map[string]memoryRecord
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]map[string]memoryRecord),
		now:     time.Now,
	}
}

func (s *MemoryStore) Get(_ context.Context, sessionID, key string) ([]byte, error) {
	if err := validateKey(sessionID, key); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[sessionID][key]
	if !ok {
		return nil, ErrRecordNotFound
	}

	out := make([]byte, len(rec.payload))
	copy(out, rec.payload)
	return out, nil
}

func (s *MemoryStore) Set(_ context.Context, sessionID, key string, payload []byte) error {
	if err := validateKey(sessionID, key); err != nil {
		return err
	}

	stored := make([]byte, len(payload))
	copy(stored, payload)

	s.mu.Lock()
	defer s.mu.Unlock()

	bucket, ok := s.records[sessionID]
	if !ok {
		bucket = make(map[string]memoryRecord)
		s.records[sessionID] = bucket
	}
	bucket[key] = memoryRecord{payload: stored, updatedAt: s.now()}
	return nil
}

// Delete удаление отсутствующей записи не является ошибкой
func (s *MemoryStore) Delete(_ context.Context, sessionID, key string) error {
	if err := validateKey(sessionID, key); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	bucket, ok := s.records[sessionID]
	if !ok {
		return nil
	}
	delete(bucket, key)
	if len(bucket) == 0 {
		delete(s.records, sessionID)
	}
	return nil
}

func (s *MemoryStore) PurgeOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var purged int64
	for sessionID, bucket := range s.records {
		for key, rec := range bucket {
			if rec.updatedAt.Before(cutoff) {
				delete(bucket, key)
				purged++
			}
		}
		if len(bucket) == 0 {
			delete(s.records, sessionID)
		}
	}
	return purged, nil
}

func validateKey(sessionID, key string) error {
	if sessionID == "" || key == "" {
		return ErrInvalidKey
	}
	return nil
}
