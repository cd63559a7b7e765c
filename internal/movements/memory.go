package movements

import (
	"sync"

	"github.com/rogerio-castellano/paintchain/internal/models"
)

type InMemoryLog struct {
	mu        sync.Mutex
	movements []models.Movement
}

func NewInMemoryLog() *InMemoryLog {
	return &InMemoryLog{movements: []models.Movement{}}
}

func (l *InMemoryLog) Record(m models.Movement) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.movements = append(l.movements, m)
	return nil
}

func (l *InMemoryLog) List(f Filter) ([]models.Movement, int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	page, total := f.apply(l.movements)
	return page, total, nil
}

func (l *InMemoryLog) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.movements = []models.Movement{}
}
