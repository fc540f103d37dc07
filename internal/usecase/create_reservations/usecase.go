package create_reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FacilityBookingService/internal/domain"
	"github.com/m04kA/SMC-FacilityBookingService/internal/service/reservations"
	"github.com/m04kA/SMC-FacilityBookingService/internal/service/selection"
)

// UseCase use case отправки заявки на бронирование
type UseCase struct {
	store    ReservationStore
	calendar Calendar
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(store ReservationStore, calendar Calendar, logger Logger) *UseCase {
	return &UseCase{
		store:    store,
		calendar: calendar,
		logger:   logger,
	}
}

// Execute выполняет use case создания заявки
// Все слоты создаются вместе или не создается ни один
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservations: user=%s, date=%s, slots=%d",
		userName(req.User), req.Date.Format(domain.DateFormat), len(req.Slots))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservations: validation failed: %v", err)
		return nil, err
	}

	// 2. Собираем выбор по тем же правилам, что и сетка
	selector := selection.NewSelector(req.User, req.Date, uc.calendar, uc.store)
	for _, s := range req.Slots {
		if err := selector.CanSelect(s.Room, s.Time); err != nil {
			uc.logger.Warn("CreateReservations: slot %s %s refused: %v", s.Room, s.Time, err)
			return nil, mapSelectionError(err)
		}
		selector.Toggle(s.Room, s.Time)
	}

	// 3. Формируем записи
	batch := make([]*domain.Reservation, 0, selector.Len())
	for _, slot := range selector.Selected() {
		batch = append(batch, &domain.Reservation{
			Room:          slot.Room,
			Date:          slot.Date,
			Time:          slot.Time,
			Requester:     req.User.Username,
			RequesterType: req.RequesterType,
			Organization:  req.Organization,
			Purpose:       req.Purpose,
			Equipment:     req.Equipment,
		})
	}

	// 4. Сохраняем; Store повторно проверяет занятость под блокировкой
	created, err := uc.store.Create(ctx, batch)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrSlotUnavailable):
			uc.logger.Warn("CreateReservations: slot taken concurrently: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrSlotUnavailable, err)
		case errors.Is(err, reservations.ErrInvalidInput):
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		default:
			uc.logger.Error("CreateReservations: store error: %v", err)
			return nil, fmt.Errorf("%w: failed to create reservations: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("CreateReservations: created %d reservations for user=%s", len(created), req.User.Username)
	return &Response{Reservations: created}, nil
}

func mapSelectionError(err error) error {
	switch {
	case errors.Is(err, selection.ErrBookingNotAllowed):
		return ErrBookingNotAllowed
	case errors.Is(err, selection.ErrPastDate):
		return fmt.Errorf("%w: %v", ErrPastDate, err)
	case errors.Is(err, selection.ErrUnknownSlot):
		return fmt.Errorf("%w: %v", ErrUnknownSlot, err)
	case errors.Is(err, selection.ErrSlotTaken):
		return fmt.Errorf("%w: %v", ErrSlotUnavailable, err)
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}

func userName(u *domain.User) string {
	if u == nil {
		return "<anonymous>"
	}
	return u.Username
}
