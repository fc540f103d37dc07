package get_notifications

import "github.com/m04kA/SMC-FacilityBookingService/internal/domain"

// UnseenResponse HTTP модель счетчиков непросмотренных решений
type UnseenResponse struct {
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
	Total    int `json:"total"`
}

func FromDomainUnseen(c domain.UnseenCounts) *UnseenResponse {
	return &UnseenResponse{
		Approved: c.Approved,
		Rejected: c.Rejected,
		Total:    c.Total(),
	}
}
