package exam

import (
	"context"
	"sort"
	"sync"
)

// MemoryLog is an in-memory ResponseLog for tests and simulations. It
// enforces the same duplicate rejection as the persistent store.
type MemoryLog struct {
	mu         sync.Mutex
	bySession  map[string][]Response
	byQuestion map[int][]Response
}

// NewMemoryLog creates an empty MemoryLog.
func NewMemoryLog() *MemoryLog {
	return &MemoryLog{
		bySession:  make(map[string][]Response),
		byQuestion: make(map[int][]Response),
	}
}

func (m *MemoryLog) Append(_ context.Context, r Response) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.bySession[r.SessionID] {
		if existing.QuestionID == r.QuestionID {
			return ErrDuplicateResponse
		}
	}
	m.bySession[r.SessionID] = append(m.bySession[r.SessionID], r)
	m.byQuestion[r.QuestionID] = append(m.byQuestion[r.QuestionID], r)
	return nil
}

func (m *MemoryLog) BySession(_ context.Context, sessionID string) ([]Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Response, len(m.bySession[sessionID]))
	copy(out, m.bySession[sessionID])
	return out, nil
}

// SessionIDs returns the distinct session ids seen so far, sorted.
func (m *MemoryLog) SessionIDs(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]string, 0, len(m.bySession))
	for id := range m.bySession {
		out = append(out, id)
	}
	sort.Strings(out)
	return out, nil
}

func (m *MemoryLog) ByQuestion(_ context.Context, questionID int) ([]Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Response, len(m.byQuestion[questionID]))
	copy(out, m.byQuestion[questionID])
	return out, nil
}
