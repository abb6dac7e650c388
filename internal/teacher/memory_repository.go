package teacher

import (
	"context"
	"sync"
)

type memoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	byMail map[string]Teacher
}

// NewMemoryRepository builds an in-memory teacher store for development and
// tests. It enforces the same correo uniqueness as the Postgres schema.
func NewMemoryRepository() Repository {
	return &memoryRepository{nextID: 1, byMail: make(map[string]Teacher)}
}

func (r *memoryRepository) Create(_ context.Context, t Teacher) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byMail[t.Correo]; exists {
		return 0, ErrEmailTaken
	}
	t.ID = r.nextID
	r.nextID++
	r.byMail[t.Correo] = t
	return t.ID, nil
}

func (r *memoryRepository) FindByCorreo(_ context.Context, correo string) (Teacher, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.byMail[correo]
	if !ok {
		return Teacher{}, ErrNotFound
	}
	return t, nil
}

func (r *memoryRepository) FindByID(_ context.Context, id int64) (Teacher, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.byMail {
		if t.ID == id {
			return t, nil
		}
	}
	return Teacher{}, ErrNotFound
}
