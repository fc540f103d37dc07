package notifications

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-FacilityBookingService/internal/domain"
)

// Service счетчик непросмотренных решений по заявкам пользователя
type Service struct {
	reservations ReservationLister
	seen         SeenRepository
	logger       Logger
}

// NewService создает сервис уведомлений
func NewService(reservations ReservationLister, seen SeenRepository, logger Logger) *Service {
	return &Service{reservations: reservations, seen: seen, logger: logger}
}

// ComputeUnseen возвращает количество новых согласований и отказов
func (s *Service) ComputeUnseen(ctx context.Context, username string) (domain.UnseenCounts, error) {
	if strings.TrimSpace(username) == "" {
		return domain.UnseenCounts{}, fmt.Errorf("%w: username is required", ErrInvalidInput)
	}

	seen, err := s.seen.Get(ctx, username)
	if err != nil {
		s.logger.Error("ComputeUnseen: seen repository error for user=%s: %v", username, err)
		return domain.UnseenCounts{}, fmt.Errorf("%w: ComputeUnseen - get seen counts: %v", ErrInternal, err)
	}

	return domain.Unseen(s.current(ctx, username), seen), nil
}

// MarkSeen запоминает текущие итоги как просмотренные. Повторный вызов ничего не меняет.
func (s *Service) MarkSeen(ctx context.Context, username string) error {
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("%w: username is required", ErrInvalidInput)
	}

	current := s.current(ctx, username)
	if err := s.seen.Set(ctx, username, current); err != nil {
		s.logger.Error("MarkSeen: seen repository error for user=%s: %v", username, err)
		return fmt.Errorf("%w: MarkSeen - set seen counts: %v", ErrInternal, err)
	}

	s.logger.Info("MarkSeen: user=%s approved=%d rejected=%d", username, current.Approved, current.Rejected)
	return nil
}

// current считает почасовые записи пользователя в терминальных статусах
func (s *Service) current(ctx context.Context, username string) domain.SeenCounts {
	var counts domain.SeenCounts
	for _, r := range s.reservations.List(ctx) {
		if r.Requester != username {
			continue
		}
		switch r.Status {
		case domain.StatusApproved:
			counts.Approved++
		case domain.StatusRejected:
			counts.Rejected++
		}
	}
	return counts
}
