package models

import (
	"time"

	"github.com/m04kA/SMC-FacilityBookingService/internal/domain"
)

// ReservationResponse почасовая запись
type ReservationResponse struct {
	ID              string   `json:"id"`
	Room            string   `json:"room"`
	Date            string   `json:"date"` // "2024-05-01"
	Time            string   `json:"time"` // "09:00"
	Requester       string   `json:"requester"`
	Status          string   `json:"status"`
	RequesterType   string   `json:"requesterType,omitempty"`
	Organization    string   `json:"organization,omitempty"`
	Purpose         string   `json:"purpose"`
	Equipment       []string `json:"equipment"`
	RejectionReason *string  `json:"rejectionReason,omitempty"`
	CreatedAt       string   `json:"createdAt"`
	UpdatedAt       string   `json:"updatedAt"`
}

// GroupResponse непрерывный интервал заявок
type GroupResponse struct {
	IDs             []string `json:"ids"`
	Room            string   `json:"room"`
	Date            string   `json:"date"`
	Requester       string   `json:"requester"`
	Status          string   `json:"status"`
	StartTime       string   `json:"startTime"`
	EndTime         string   `json:"endTime"`
	RequesterType   string   `json:"requesterType,omitempty"`
	Organization    string   `json:"organization,omitempty"`
	Purpose         string   `json:"purpose"`
	Equipment       []string `json:"equipment"`
	RejectionReason *string  `json:"rejectionReason,omitempty"`
}

// GroupListResponse список групп
type GroupListResponse struct {
	Groups []GroupResponse `json:"groups"`
	Total  int             `json:"total"`
}

// FromDomainReservation конвертирует запись в ответ
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	equipment := r.Equipment
	if equipment == nil {
		equipment = []string{}
	}
	return &ReservationResponse{
		ID:              r.ID,
		Room:            r.Room,
		Date:            r.Date.Format(domain.DateFormat),
		Time:            r.Time.String(),
		Requester:       r.Requester,
		Status:          string(r.Status),
		RequesterType:   r.RequesterType,
		Organization:    r.Organization,
		Purpose:         r.Purpose,
		Equipment:       equipment,
		RejectionReason: r.RejectionReason,
		CreatedAt:       r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       r.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainReservationList конвертирует список записей
func FromDomainReservationList(list []*domain.Reservation) []*ReservationResponse {
	result := make([]*ReservationResponse, 0, len(list))
	for _, r := range list {
		result = append(result, FromDomainReservation(r))
	}
	return result
}

// FromDomainGroup конвертирует группу в ответ
func FromDomainGroup(g *domain.ReservationGroup) GroupResponse {
	equipment := g.Equipment
	if equipment == nil {
		equipment = []string{}
	}
	return GroupResponse{
		IDs:             g.IDs,
		Room:            g.Room,
		Date:            g.Date.Format(domain.DateFormat),
		Requester:       g.Requester,
		Status:          string(g.Status),
		StartTime:       g.StartTime.String(),
		EndTime:         g.EndTime.String(),
		RequesterType:   g.RequesterType,
		Organization:    g.Organization,
		Purpose:         g.Purpose,
		Equipment:       equipment,
		RejectionReason: g.RejectionReason,
	}
}

// FromDomainGroupList конвертирует список групп
func FromDomainGroupList(groups []*domain.ReservationGroup) *GroupListResponse {
	result := &GroupListResponse{
		Groups: make([]GroupResponse, 0, len(groups)),
		Total:  len(groups),
	}
	for _, g := range groups {
		result.Groups = append(result.Groups, FromDomainGroup(g))
	}
	return result
}
