package reservations

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FacilityBookingService/internal/domain"
	"github.com/m04kA/SMC-FacilityBookingService/internal/service/reservations/models"
	"github.com/m04kA/SMC-FacilityBookingService/pkg/ptr"
	"github.com/m04kA/SMC-FacilityBookingService/pkg/types"
)

// UUIDGenerator генерирует UUID v4
type UUIDGenerator struct{}

// NewID возвращает новый идентификатор
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// Store хранит все бронирования в памяти и синхронно сохраняет изменения в репозиторий
// Изменения сначала записываются в репозиторий и только после успеха применяются в памяти
type Store struct {
	mu sync.RWMutex

	repo         Repository
	txManager    TransactionManager
	metrics      Metrics
	idGenerator  IDGenerator
	timeProvider TimeProvider
	logger       Logger

	records map[string]*domain.Reservation
	order   []string
	// slots индекс слотов, занятых записями Pending/Approved
	slots  map[domain.SlotKey]string
	loaded bool
}

// Option настраивает Store
type Option func(*Store)

// WithTransactionManager включает транзакции для групповых изменений
func WithTransactionManager(tm TransactionManager) Option {
	return func(s *Store) { s.txManager = tm }
}

// WithMetrics включает доменные счетчики
func WithMetrics(m Metrics) Option {
	return func(s *Store) { s.metrics = m }
}

// WithTimeProvider подменяет источник времени
func WithTimeProvider(tp TimeProvider) Option {
	return func(s *Store) { s.timeProvider = tp }
}

// WithIDGenerator подменяет генератор идентификаторов
func WithIDGenerator(g IDGenerator) Option {
	return func(s *Store) { s.idGenerator = g }
}

// NewStore создает хранилище. До вызова Load оно пустое и отклоняет операции.
func NewStore(repo Repository, logger Logger, opts ...Option) *Store {
	s := &Store{
		repo:         repo,
		idGenerator:  UUIDGenerator{},
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		records:      make(map[string]*domain.Reservation),
		slots:        make(map[domain.SlotKey]string),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load читает все записи из репозитория и перестраивает индекс слотов
// Записи с некорректной часовой отметкой или статусом пропускаются
func (s *Store) Load(ctx context.Context) error {
	s.logger.Info("Load: reading reservations from repository")

	var loaded []*domain.Reservation
	err := s.inReadTx(ctx, func(ctx context.Context) error {
		var err error
		loaded, err = s.repo.LoadAll(ctx)
		return err
	})
	if err != nil {
		s.logger.Error("Load: repository error: %v", err)
		return fmt.Errorf("%w: Load - repository error: %v", ErrInternal, err)
	}

	sort.SliceStable(loaded, func(i, j int) bool {
		if !loaded[i].CreatedAt.Equal(loaded[j].CreatedAt) {
			return loaded[i].CreatedAt.Before(loaded[j].CreatedAt)
		}
		return loaded[i].ID < loaded[j].ID
	})

	records := make(map[string]*domain.Reservation, len(loaded))
	order := make([]string, 0, len(loaded))
	slots := make(map[domain.SlotKey]string)

	skipped := 0
	for _, r := range loaded {
		if !isHourMark(r.Time) || !r.Status.IsValid() || r.ID == "" {
			s.logger.Warn("Load: skipping malformed reservation id=%s time=%q status=%q", r.ID, r.Time, r.Status)
			skipped++
			continue
		}
		if _, dup := records[r.ID]; dup {
			s.logger.Warn("Load: skipping duplicate reservation id=%s", r.ID)
			skipped++
			continue
		}

		records[r.ID] = r.Clone()
		order = append(order, r.ID)

		if r.BlocksSlot() {
			key := r.Slot().Key()
			if holder, taken := slots[key]; taken {
				// Старые данные могли содержать конфликт, индекс держит первую запись
				s.logger.Warn("Load: reservation id=%s conflicts with id=%s on %s %s %s",
					r.ID, holder, key.Room, key.Date, key.Time)
				continue
			}
			slots[key] = r.ID
		}
	}

	s.mu.Lock()
	s.records = records
	s.order = order
	s.slots = slots
	s.loaded = true
	s.mu.Unlock()

	s.logger.Info("Load: loaded %d reservations, skipped %d", len(records), skipped)
	return nil
}

// Create добавляет пакет бронирований целиком или не добавляет ничего
// Каждая запись получает новый id и статус Pending
func (s *Store) Create(ctx context.Context, batch []*domain.Reservation) ([]*domain.Reservation, error) {
	if len(batch) == 0 {
		return nil, fmt.Errorf("%w: empty batch", ErrInvalidInput)
	}
	for _, r := range batch {
		if err := validateNew(r); err != nil {
			return nil, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return nil, ErrNotLoaded
	}

	now := s.timeProvider.Now()
	created := make([]*domain.Reservation, 0, len(batch))
	inBatch := make(map[domain.SlotKey]struct{}, len(batch))

	for _, r := range batch {
		key := r.Slot().Key()
		if _, dup := inBatch[key]; dup {
			s.logger.Warn("Create: duplicate slot in batch %s %s %s", key.Room, key.Date, key.Time)
			return nil, fmt.Errorf("%w: %s %s %s selected twice", ErrSlotUnavailable, key.Room, key.Date, key.Time)
		}
		if holder, taken := s.slots[key]; taken {
			s.logger.Warn("Create: slot %s %s %s already held by id=%s", key.Room, key.Date, key.Time, holder)
			return nil, fmt.Errorf("%w: %s %s %s", ErrSlotUnavailable, key.Room, key.Date, key.Time)
		}
		inBatch[key] = struct{}{}

		c := r.Clone()
		c.ID = s.idGenerator.NewID()
		c.Status = domain.StatusPending
		c.RejectionReason = nil
		c.CreatedAt = now
		c.UpdatedAt = now
		created = append(created, c)
	}

	// Сериализуемая транзакция, чтобы параллельный процесс не занял те же слоты
	err := s.inSerializableTx(ctx, func(ctx context.Context) error {
		return s.repo.CreateBatch(ctx, created)
	})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	result := make([]*domain.Reservation, 0, len(created))
	for _, c := range created {
		s.records[c.ID] = c
		s.order = append(s.order, c.ID)
		s.slots[c.Slot().Key()] = c.ID
		result = append(result, c.Clone())
	}

	if s.metrics != nil {
		s.metrics.ReservationsCreated(len(created))
	}

	s.logger.Info("Create: created %d reservations for requester=%s", len(created), created[0].Requester)
	return result, nil
}

// UpdateStatus переводит одну запись из Pending в Approved или Rejected
func (s *Store) UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus, reason string) (*domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return nil, ErrNotLoaded
	}

	r, ok := s.records[id]
	if !ok {
		return nil, ErrReservationNotFound
	}
	if err := checkTransition(r, status, reason); err != nil {
		s.logger.Warn("UpdateStatus: id=%s %s -> %s rejected: %v", id, r.Status, status, err)
		return nil, err
	}

	now := s.timeProvider.Now()
	reasonPtr := rejectionReason(status, reason)

	if err := s.repo.UpdateStatus(ctx, id, status, reasonPtr, now); err != nil {
		s.logger.Error("UpdateStatus: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.applyStatus(r, status, reasonPtr, now)
	if s.metrics != nil {
		s.metrics.StatusChanged(string(status), 1)
	}

	s.logger.Info("UpdateStatus: id=%s is now %s", id, status)
	return r.Clone(), nil
}

// UpdateStatusBatch меняет статус группы записей
// Каждая запись проверяется отдельно, допустимые сохраняются одной транзакцией
// Ошибка инфраструктуры отменяет изменение всех допустимых записей
func (s *Store) UpdateStatusBatch(ctx context.Context, ids []string, status domain.ReservationStatus, reason string) (*models.BatchResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return nil, ErrNotLoaded
	}

	result := &models.BatchResult{}
	valid := make([]*domain.Reservation, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))

	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		r, ok := s.records[id]
		if !ok {
			result.Fail(id, ErrReservationNotFound)
			continue
		}
		if err := checkTransition(r, status, reason); err != nil {
			result.Fail(id, err)
			continue
		}
		valid = append(valid, r)
	}

	if len(valid) == 0 {
		s.logger.Warn("UpdateStatusBatch: no reservation of %d can become %s", len(ids), status)
		return result, nil
	}

	now := s.timeProvider.Now()
	reasonPtr := rejectionReason(status, reason)

	err := s.inTx(ctx, func(ctx context.Context) error {
		for _, r := range valid {
			if err := s.repo.UpdateStatus(ctx, r.ID, status, reasonPtr, now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("UpdateStatusBatch: repository error: %v", err)
		return nil, fmt.Errorf("%w: UpdateStatusBatch - repository error: %v", ErrInternal, err)
	}

	for _, r := range valid {
		s.applyStatus(r, status, reasonPtr, now)
		result.Succeeded = append(result.Succeeded, r.ID)
	}
	if s.metrics != nil {
		s.metrics.StatusChanged(string(status), len(valid))
	}

	s.logger.Info("UpdateStatusBatch: %d reservations are now %s, %d failed", len(valid), status, len(result.Failed))
	return result, nil
}

// Cancel удаляет запись в статусе Pending
// Пустой owner отключает проверку владельца
func (s *Store) Cancel(ctx context.Context, id string, owner string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return ErrNotLoaded
	}

	r, ok := s.records[id]
	if !ok {
		return ErrReservationNotFound
	}
	if err := checkCancel(r, owner); err != nil {
		s.logger.Warn("Cancel: id=%s by %q refused: %v", id, owner, err)
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("Cancel: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.remove(id)
	if s.metrics != nil {
		s.metrics.ReservationsCancelled(1)
	}

	s.logger.Info("Cancel: id=%s cancelled", id)
	return nil
}

// CancelBatch отменяет группу записей с отчетом по каждому id
func (s *Store) CancelBatch(ctx context.Context, ids []string, owner string) (*models.BatchResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return nil, ErrNotLoaded
	}

	result := &models.BatchResult{}
	valid := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))

	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		r, ok := s.records[id]
		if !ok {
			result.Fail(id, ErrReservationNotFound)
			continue
		}
		if err := checkCancel(r, owner); err != nil {
			result.Fail(id, err)
			continue
		}
		valid = append(valid, id)
	}

	if len(valid) == 0 {
		return result, nil
	}

	err := s.inTx(ctx, func(ctx context.Context) error {
		for _, id := range valid {
			if err := s.repo.Delete(ctx, id); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("CancelBatch: repository error: %v", err)
		return nil, fmt.Errorf("%w: CancelBatch - repository error: %v", ErrInternal, err)
	}

	for _, id := range valid {
		s.remove(id)
		result.Succeeded = append(result.Succeeded, id)
	}
	if s.metrics != nil {
		s.metrics.ReservationsCancelled(len(valid))
	}

	s.logger.Info("CancelBatch: cancelled %d reservations, %d failed", len(valid), len(result.Failed))
	return result, nil
}

// Get возвращает копию записи
func (s *Store) Get(_ context.Context, id string) (*domain.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.records[id]
	if !ok {
		return nil, ErrReservationNotFound
	}
	return r.Clone(), nil
}

// List возвращает копии всех записей в порядке создания
func (s *Store) List(_ context.Context) []*domain.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Reservation, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.records[id].Clone())
	}
	return result
}

// ListByDate возвращает записи одного дня
func (s *Store) ListByDate(_ context.Context, date time.Time) []*domain.Reservation {
	day := date.Format(domain.DateFormat)

	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*domain.Reservation
	for _, id := range s.order {
		r := s.records[id]
		if r.Date.Format(domain.DateFormat) == day {
			result = append(result, r.Clone())
		}
	}
	return result
}

// IsSlotTaken возвращает true, если слот занят записью Pending или Approved
func (s *Store) IsSlotTaken(slot domain.Slot) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, taken := s.slots[slot.Key()]
	return taken
}

func (s *Store) inTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.txManager == nil {
		return fn(ctx)
	}
	return s.txManager.Do(ctx, fn)
}

func (s *Store) inSerializableTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.txManager == nil {
		return fn(ctx)
	}
	return s.txManager.DoSerializable(ctx, fn)
}

func (s *Store) inReadTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.txManager == nil {
		return fn(ctx)
	}
	return s.txManager.DoReadOnly(ctx, fn)
}

func (s *Store) applyStatus(r *domain.Reservation, status domain.ReservationStatus, reason *string, now time.Time) {
	r.Status = status
	r.RejectionReason = reason
	r.UpdatedAt = now

	// Отклонение освобождает слот
	if !r.BlocksSlot() {
		s.release(r.Slot().Key(), r.ID)
	}
}

// release снимает id с индекса слота
// Если старые данные содержали конфликт, слот переходит к следующей блокирующей записи
func (s *Store) release(key domain.SlotKey, id string) {
	if s.slots[key] != id {
		return
	}
	delete(s.slots, key)

	for _, oid := range s.order {
		other := s.records[oid]
		if oid == id || !other.BlocksSlot() || other.Slot().Key() != key {
			continue
		}
		s.slots[key] = oid
		s.logger.Warn("release: slot %s %s %s passed to conflicting id=%s", key.Room, key.Date, key.Time, oid)
		return
	}
}

func (s *Store) remove(id string) {
	r := s.records[id]
	s.release(r.Slot().Key(), id)
	delete(s.records, id)

	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func validateNew(r *domain.Reservation) error {
	if r == nil {
		return fmt.Errorf("%w: nil reservation", ErrInvalidInput)
	}
	if strings.TrimSpace(r.Room) == "" {
		return fmt.Errorf("%w: room is required", ErrInvalidInput)
	}
	if r.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if !isHourMark(r.Time) {
		return fmt.Errorf("%w: invalid time %q", ErrInvalidInput, r.Time)
	}
	if strings.TrimSpace(r.Requester) == "" {
		return fmt.Errorf("%w: requester is required", ErrInvalidInput)
	}
	return nil
}

// isHourMark проверяет, что время является началом часа (HH:00)
func isHourMark(t types.TimeString) bool {
	minutes, err := t.Minutes()
	return err == nil && minutes%60 == 0 && minutes < 24*60
}

func checkTransition(r *domain.Reservation, status domain.ReservationStatus, reason string) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, status)
	}
	if !r.CanTransitionTo(status) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, r.Status, status)
	}
	if status == domain.StatusRejected && strings.TrimSpace(reason) == "" {
		return fmt.Errorf("%w: rejection requires a reason", ErrInvalidTransition)
	}
	return nil
}

func checkCancel(r *domain.Reservation, owner string) error {
	if owner != "" && r.Requester != owner {
		return ErrAccessDenied
	}
	if !r.CanBeCancelled() {
		return fmt.Errorf("%w: status is %s", ErrInvalidState, r.Status)
	}
	return nil
}

func rejectionReason(status domain.ReservationStatus, reason string) *string {
	if status != domain.StatusRejected {
		return nil
	}
	return ptr.Ptr(strings.TrimSpace(reason))
}
