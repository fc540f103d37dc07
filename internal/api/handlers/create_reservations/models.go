package create_reservations

import (
	"fmt"

	"github.com/m04kA/SMC-FacilityBookingService/internal/domain"
	"github.com/m04kA/SMC-FacilityBookingService/internal/service/calendar"
	"github.com/m04kA/SMC-FacilityBookingService/internal/service/history/models"
	createReservations "github.com/m04kA/SMC-FacilityBookingService/internal/usecase/create_reservations"
	"github.com/m04kA/SMC-FacilityBookingService/pkg/types"
)

// CreateReservationsRequest HTTP модель заявки на набор слотов одного дня
type CreateReservationsRequest struct {
	Date          string        `json:"date"` // "2024-05-01"
	Slots         []SlotRequest `json:"slots"`
	RequesterType string        `json:"requesterType"`
	Organization  string        `json:"organization"`
	Purpose       string        `json:"purpose"`
	Equipment     []string      `json:"equipment"`
}

type SlotRequest struct {
	Room string `json:"room"`
	Time string `json:"time"` // "09:00"
}

// CreateReservationsResponse созданные почасовые записи
type CreateReservationsResponse struct {
	Reservations []*models.ReservationResponse `json:"reservations"`
	Total        int                           `json:"total"`
}

// ToUseCaseRequest парсит дату и время слотов
func (r *CreateReservationsRequest) ToUseCaseRequest(user *domain.User) (*createReservations.Request, error) {
	date, err := calendar.ParseDate(r.Date)
	if err != nil {
		return nil, errInvalidDate
	}

	slots := make([]createReservations.SlotRequest, 0, len(r.Slots))
	for _, s := range r.Slots {
		t, err := types.NewTimeStringFromString(s.Time)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", errInvalidTime, s.Time)
		}
		slots = append(slots, createReservations.SlotRequest{Room: s.Room, Time: t})
	}

	return &createReservations.Request{
		User:          user,
		Date:          date,
		Slots:         slots,
		RequesterType: r.RequesterType,
		Organization:  r.Organization,
		Purpose:       r.Purpose,
		Equipment:     r.Equipment,
	}, nil
}

func FromUseCaseResponse(resp *createReservations.Response) *CreateReservationsResponse {
	return &CreateReservationsResponse{
		Reservations: models.FromDomainReservationList(resp.Reservations),
		Total:        len(resp.Reservations),
	}
}
