package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-FacilityBookingService/internal/domain"
)

// ReservationRepository хранит бронирования в памяти процесса
// Используется при storage.reservations = "memory" и в тестах
type ReservationRepository struct {
	mu      sync.Mutex
	records map[string]*domain.Reservation
}

// NewReservationRepository создает репозиторий, опционально заполненный начальными данными
func NewReservationRepository(seed ...*domain.Reservation) *ReservationRepository {
	r := &ReservationRepository{records: make(map[string]*domain.Reservation, len(seed))}
	for _, res := range seed {
		r.records[res.ID] = res.Clone()
	}
	return r
}

func (r *ReservationRepository) LoadAll(_ context.Context) ([]*domain.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*domain.Reservation, 0, len(r.records))
	for _, res := range r.records {
		result = append(result, res.Clone())
	}
	return result, nil
}

// CreateBatch сохраняет все записи или ни одной
func (r *ReservationRepository) CreateBatch(_ context.Context, reservations []*domain.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, res := range reservations {
		if _, exists := r.records[res.ID]; exists {
			return ErrDuplicateID
		}
	}
	for _, res := range reservations {
		r.records[res.ID] = res.Clone()
	}
	return nil
}

func (r *ReservationRepository) UpdateStatus(_ context.Context, id string, status domain.ReservationStatus, reason *string, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, ok := r.records[id]
	if !ok {
		return ErrReservationNotFound
	}
	res.Status = status
	res.RejectionReason = nil
	if reason != nil {
		v := *reason
		res.RejectionReason = &v
	}
	res.UpdatedAt = updatedAt
	return nil
}

func (r *ReservationRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[id]; !ok {
		return ErrReservationNotFound
	}
	delete(r.records, id)
	return nil
}

// Len возвращает количество сохраненных записей
func (r *ReservationRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}
