package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FacilityBookingService/pkg/types"
)

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time { return f.now }

func newTestService(t *testing.T, now time.Time) *Service {
	t.Helper()
	s, err := NewService(Config{
		Rooms:     []string{"AUDITORIUM", "LOBBY", "AUDITORIUM", " "},
		OpenHour:  7,
		CloseHour: 17,
		Timezone:  "Asia/Jakarta",
	}, fixedTime{now: now})
	require.NoError(t, err)
	return s
}

func TestNewService_Invalid(t *testing.T) {
	_, err := NewService(Config{OpenHour: 7, CloseHour: 17}, nil)
	assert.ErrorIs(t, err, ErrNoRooms)

	_, err = NewService(Config{Rooms: []string{"A"}, OpenHour: 17, CloseHour: 7}, nil)
	assert.ErrorIs(t, err, ErrInvalidHours)

	_, err = NewService(Config{Rooms: []string{"A"}, OpenHour: 7, CloseHour: 17, Timezone: "Mars/Olympus"}, nil)
	assert.ErrorIs(t, err, ErrInvalidTimezone)
}

func TestService_RoomsAndHours(t *testing.T) {
	s := newTestService(t, time.Now())

	assert.Equal(t, []string{"AUDITORIUM", "LOBBY"}, s.Rooms())

	hours := s.Hours(time.Now())
	require.Len(t, hours, 10)
	assert.Equal(t, types.TimeString("07:00"), hours[0])
	assert.Equal(t, types.TimeString("16:00"), hours[9])

	assert.True(t, s.IsRoom("LOBBY"))
	assert.False(t, s.IsRoom("ROOFTOP"))
	assert.True(t, s.IsHour("09:00"))
	assert.False(t, s.IsHour("17:00"))
	assert.False(t, s.IsHour("09:30"))
}

func TestService_TodayUsesTimezone(t *testing.T) {
	// 20:00 UTC 1 мая это уже 2 мая в Джакарте (UTC+7)
	s := newTestService(t, time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), s.Today())
	assert.True(t, s.IsPast(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, s.IsPast(time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)))
	assert.False(t, s.IsPast(time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-05-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("01/05/2024")
	assert.Error(t, err)
}
