package create_reservations

import (
	"time"

	"github.com/m04kA/SMC-FacilityBookingService/internal/domain"
	"github.com/m04kA/SMC-FacilityBookingService/pkg/types"
)

// Request модель запроса на бронирование набора слотов одного дня
type Request struct {
	User  *domain.User // Аутентифицированный пользователь
	Date  time.Time    // Дата (без времени)
	Slots []SlotRequest

	// Детали заявки, копируются в каждую запись
	RequesterType string
	Organization  string
	Purpose       string
	Equipment     []string
}

// SlotRequest выбранная ячейка сетки
type SlotRequest struct {
	Room string
	Time types.TimeString
}

// Response модель ответа с созданными записями
type Response struct {
	Reservations []*domain.Reservation // Упорядочены по времени, затем по помещению
}
