package get_calendar

import (
	"time"

	"github.com/m04kA/SMC-FacilityBookingService/internal/domain"
	"github.com/m04kA/SMC-FacilityBookingService/pkg/types"
)

// Request модель запроса сетки на день
type Request struct {
	User *domain.User // Может быть nil; используется для отметки своих заявок
	Date time.Time
}

// Response сетка помещений и часов
type Response struct {
	Date     time.Time
	Past     bool // Дата в прошлом: выбор запрещен
	CanBook  bool // Роль пользователя позволяет бронировать
	Rooms    []string
	Hours    []types.TimeString
	Cells    []Cell // Построчно: помещение, затем час
	Occupied int    // Количество занятых ячеек
}

// Cell ячейка сетки
type Cell struct {
	Room  string
	Time  types.TimeString
	State domain.SlotState
	Mine  bool // Ячейку занимает заявка текущего пользователя
}
