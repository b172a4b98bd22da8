package bank

import (
	"context"
	"sync"

	"github.com/nkhanna/examind/internal/exam"
)

// MemoryBank is an in-memory Bank, used by unit tests and the simulator.
// Safe for concurrent readers once populated.
type MemoryBank struct {
	mu        sync.RWMutex
	questions map[int]Question
}

// NewMemoryBank creates a MemoryBank holding the given questions.
func NewMemoryBank(questions ...Question) *MemoryBank {
	m := &MemoryBank{questions: make(map[int]Question, len(questions))}
	for _, q := range questions {
		m.questions[q.ID] = q
	}
	return m
}

// Add inserts or replaces a question.
func (m *MemoryBank) Add(q Question) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.questions[q.ID] = q
}

// Len returns the number of questions in the bank.
func (m *MemoryBank) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.questions)
}

func (m *MemoryBank) Candidates(_ context.Context, excludeIDs map[int]bool, excludeTopics map[string]bool, preferred *Difficulty) ([]Question, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []Question
	for _, q := range m.questions {
		if excludeIDs[q.ID] || excludeTopics[q.Topic] {
			continue
		}
		if preferred != nil && q.Difficulty != *preferred {
			continue
		}
		out = append(out, q)
	}
	return out, nil
}

func (m *MemoryBank) Get(_ context.Context, id int) (*Question, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	q, ok := m.questions[id]
	if !ok {
		return nil, exam.ErrNotFound
	}
	return &q, nil
}
