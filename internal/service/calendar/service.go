package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-FacilityBookingService/internal/domain"
	"github.com/m04kA/SMC-FacilityBookingService/pkg/types"
)

// Config параметры календаря
type Config struct {
	Rooms     []string
	OpenHour  int
	CloseHour int // исключительно: последний слот начинается в CloseHour-1
	Timezone  string
}

// Service фиксированный набор помещений и часовых отметок
// После создания не меняется и безопасен для конкурентного чтения
type Service struct {
	rooms        []string
	roomSet      map[string]struct{}
	hours        []types.TimeString
	hourSet      map[types.TimeString]struct{}
	location     *time.Location
	timeProvider TimeProvider
}

// NewService создает календарь
func NewService(cfg Config, timeProvider TimeProvider) (*Service, error) {
	if len(cfg.Rooms) == 0 {
		return nil, ErrNoRooms
	}
	if cfg.OpenHour < 0 || cfg.CloseHour > 24 || cfg.OpenHour >= cfg.CloseHour {
		return nil, fmt.Errorf("%w: %d-%d", ErrInvalidHours, cfg.OpenHour, cfg.CloseHour)
	}

	location := time.UTC
	if cfg.Timezone != "" {
		loc, err := time.LoadLocation(cfg.Timezone)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidTimezone, cfg.Timezone, err)
		}
		location = loc
	}

	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}

	s := &Service{
		roomSet:      make(map[string]struct{}, len(cfg.Rooms)),
		hourSet:      make(map[types.TimeString]struct{}, cfg.CloseHour-cfg.OpenHour),
		location:     location,
		timeProvider: timeProvider,
	}

	for _, room := range cfg.Rooms {
		room = strings.TrimSpace(room)
		if room == "" {
			continue
		}
		if _, dup := s.roomSet[room]; dup {
			continue
		}
		s.roomSet[room] = struct{}{}
		s.rooms = append(s.rooms, room)
	}
	if len(s.rooms) == 0 {
		return nil, ErrNoRooms
	}

	for h := cfg.OpenHour; h < cfg.CloseHour; h++ {
		mark := types.NewHourMark(h)
		s.hours = append(s.hours, mark)
		s.hourSet[mark] = struct{}{}
	}

	return s, nil
}

// Rooms возвращает помещения в порядке конфигурации
func (s *Service) Rooms() []string {
	return append([]string(nil), s.rooms...)
}

// Hours возвращает часовые отметки дня. Набор одинаков для любой даты.
func (s *Service) Hours(_ time.Time) []types.TimeString {
	return append([]types.TimeString(nil), s.hours...)
}

// IsRoom проверяет, что помещение есть в календаре
func (s *Service) IsRoom(room string) bool {
	_, ok := s.roomSet[room]
	return ok
}

// IsHour проверяет, что отметка входит в рабочие часы
func (s *Service) IsHour(t types.TimeString) bool {
	_, ok := s.hourSet[t]
	return ok
}

// Today возвращает текущую дату календаря (полночь UTC того же календарного дня)
func (s *Service) Today() time.Time {
	return DateOf(s.timeProvider.Now().In(s.location))
}

// IsPast возвращает true, если дата раньше сегодняшней
func (s *Service) IsPast(date time.Time) bool {
	return DateOf(date).Before(s.Today())
}

// DateOf отбрасывает время, сохраняя календарный день
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate разбирает дату в формате YYYY-MM-DD
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(domain.DateFormat, s, time.UTC)
}
