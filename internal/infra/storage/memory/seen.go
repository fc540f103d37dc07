package memory

import (
	"context"
	"sync"

	"github.com/m04kA/SMC-FacilityBookingService/internal/domain"
)

// SeenRepository хранит просмотренные счетчики уведомлений в памяти
type SeenRepository struct {
	mu     sync.RWMutex
	counts map[string]domain.SeenCounts
}

func NewSeenRepository() *SeenRepository {
	return &SeenRepository{counts: make(map[string]domain.SeenCounts)}
}

// Get возвращает нули для неизвестного пользователя
func (r *SeenRepository) Get(_ context.Context, username string) (domain.SeenCounts, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.counts[username], nil
}

func (r *SeenRepository) Set(_ context.Context, username string, counts domain.SeenCounts) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counts[username] = counts
	return nil
}
