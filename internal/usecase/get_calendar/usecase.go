package get_calendar

import (
	"context"

	"github.com/m04kA/SMC-FacilityBookingService/internal/domain"
)

// UseCase use case получения сетки занятости на день
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

// Execute строит сетку помещение x час
// Отклоненные записи не занимают ячейку
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		uc.logger.Warn("GetCalendar: date is required")
		return nil, ErrInvalidInput
	}

	// 1. Индекс занятых ячеек дня
	occupied := make(map[domain.SlotKey]*domain.Reservation)
	for _, r := range uc.store.ListByDate(ctx, req.Date) {
		if r.BlocksSlot() {
			occupied[r.Slot().Key()] = r
		}
	}

	// 2. Сетка
	rooms := uc.calendar.Rooms()
	hours := uc.calendar.Hours(req.Date)

	resp := &Response{
		Date:    req.Date,
		Past:    uc.calendar.IsPast(req.Date),
		CanBook: req.User.CanBook(),
		Rooms:   rooms,
		Hours:   hours,
		Cells:   make([]Cell, 0, len(rooms)*len(hours)),
	}

	for _, room := range rooms {
		for _, h := range hours {
			cell := Cell{Room: room, Time: h, State: domain.SlotAvailable}
			key := domain.Slot{Room: room, Date: req.Date, Time: h}.Key()
			if r, ok := occupied[key]; ok {
				cell.State = domain.SlotStateFor(r.Status)
				cell.Mine = req.User != nil && r.Requester == req.User.Username
				resp.Occupied++
			}
			resp.Cells = append(resp.Cells, cell)
		}
	}

	uc.logger.Info("GetCalendar: date=%s, rooms=%d, hours=%d, occupied=%d",
		req.Date.Format(domain.DateFormat), len(rooms), len(hours), resp.Occupied)
	return resp, nil
}
