package calibration

import (
	"context"
	"sync"

	"github.com/nkhanna/examind/internal/exam"
)

// MemoryStore is an in-memory Store for tests and ephemeral runs.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[int]ItemCalibration
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[int]ItemCalibration)}
}

func (m *MemoryStore) Get(_ context.Context, questionID int) (*ItemCalibration, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.items[questionID]
	if !ok {
		return nil, exam.ErrNotFound
	}
	return &c, nil
}

func (m *MemoryStore) Upsert(_ context.Context, c ItemCalibration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[c.QuestionID] = c
	return nil
}
