package selection

import (
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-FacilityBookingService/internal/domain"
	"github.com/m04kA/SMC-FacilityBookingService/pkg/types"
)

type cell struct {
	room string
	time types.TimeString
}

// Selector набор слотов, выбранных одним пользователем на одну дату
// Не потокобезопасен: принадлежит одному запросу или сессии
type Selector struct {
	user      *domain.User
	date      time.Time
	calendar  Calendar
	occupancy Occupancy
	selected  map[cell]struct{}
}

// NewSelector создает пустой выбор на дату
func NewSelector(user *domain.User, date time.Time, calendar Calendar, occupancy Occupancy) *Selector {
	return &Selector{
		user:      user,
		date:      date,
		calendar:  calendar,
		occupancy: occupancy,
		selected:  make(map[cell]struct{}),
	}
}

// CanSelect объясняет, почему слот нельзя добавить; nil если можно
func (s *Selector) CanSelect(room string, t types.TimeString) error {
	if !s.user.CanBook() {
		return ErrBookingNotAllowed
	}
	if s.calendar.IsPast(s.date) {
		return fmt.Errorf("%w: %s", ErrPastDate, s.date.Format(domain.DateFormat))
	}
	if !s.calendar.IsRoom(room) || !s.calendar.IsHour(t) {
		return fmt.Errorf("%w: %s %s", ErrUnknownSlot, room, t)
	}
	if s.occupancy.IsSlotTaken(domain.Slot{Room: room, Date: s.date, Time: t}) {
		return fmt.Errorf("%w: %s %s", ErrSlotTaken, room, t)
	}
	return nil
}

// Toggle добавляет слот, если его нет и он доступен, или убирает, если он уже выбран
// Недоступный слот молча игнорируется. Возвращает, выбран ли слот после вызова.
func (s *Selector) Toggle(room string, t types.TimeString) bool {
	c := cell{room: room, time: t}
	if _, ok := s.selected[c]; ok {
		delete(s.selected, c)
		return false
	}
	if s.CanSelect(room, t) != nil {
		return false
	}
	s.selected[c] = struct{}{}
	return true
}

// IsSelected возвращает true, если слот выбран
func (s *Selector) IsSelected(room string, t types.TimeString) bool {
	_, ok := s.selected[cell{room: room, time: t}]
	return ok
}

// Clear очищает выбор
func (s *Selector) Clear() {
	s.selected = make(map[cell]struct{})
}

// SetDate меняет дату и очищает выбор
func (s *Selector) SetDate(date time.Time) {
	s.date = date
	s.Clear()
}

// Date возвращает текущую дату выбора
func (s *Selector) Date() time.Time {
	return s.date
}

func (s *Selector) Len() int {
	return len(s.selected)
}

// Selected возвращает выбранные слоты по времени, затем по помещению
func (s *Selector) Selected() []domain.Slot {
	slots := make([]domain.Slot, 0, len(s.selected))
	for c := range s.selected {
		slots = append(slots, domain.Slot{Room: c.room, Date: s.date, Time: c.time})
	}
	sort.Slice(slots, func(i, j int) bool {
		if slots[i].Time != slots[j].Time {
			return slots[i].Time.IsBefore(slots[j].Time)
		}
		return slots[i].Room < slots[j].Room
	})
	return slots
}
