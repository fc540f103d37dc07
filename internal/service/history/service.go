package history

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FacilityBookingService/internal/domain"
	"github.com/m04kA/SMC-FacilityBookingService/internal/service/grouping"
	"github.com/m04kA/SMC-FacilityBookingService/internal/service/history/models"
	"github.com/m04kA/SMC-FacilityBookingService/internal/service/reservations"
)

// Service представления заявок для администратора и студентов
type Service struct {
	store  ReservationStore
	logger Logger
}

// NewService создает новый экземпляр сервиса истории
func NewService(store ReservationStore, logger Logger) *Service {
	return &Service{store: store, logger: logger}
}

// ApprovalQueue возвращает группы, ожидающие решения
func (s *Service) ApprovalQueue(ctx context.Context) *models.GroupListResponse {
	groups := grouping.Group(s.store.List(ctx), grouping.ApprovalQueue())
	s.logger.Info("ApprovalQueue: %d pending groups", len(groups))
	return models.FromDomainGroupList(groups)
}

// History возвращает завершенные группы
func (s *Service) History(ctx context.Context) *models.GroupListResponse {
	return models.FromDomainGroupList(s.HistoryGroups(ctx))
}

// HistoryGroups возвращает завершенные группы в доменном виде (для экспорта)
func (s *Service) HistoryGroups(ctx context.Context) []*domain.ReservationGroup {
	groups := grouping.Group(s.store.List(ctx), grouping.History())
	s.logger.Info("History: %d completed groups", len(groups))
	return groups
}

// StudentHistory возвращает группы пользователя
// Доступно самому пользователю и администратору
func (s *Service) StudentHistory(ctx context.Context, username string, viewer *domain.User) (*models.GroupListResponse, error) {
	if !canView(viewer, username) {
		s.logger.Warn("StudentHistory: access denied for %s to history of %s", viewerName(viewer), username)
		return nil, ErrAccessDenied
	}

	groups := grouping.Group(s.store.List(ctx), grouping.StudentHistory(username))
	s.logger.Info("StudentHistory: %d groups for user=%s", len(groups), username)
	return models.FromDomainGroupList(groups), nil
}

// GetByID получает запись по ID
// Проверяет права доступа - пользователь видит только свои записи, администратор любые
func (s *Service) GetByID(ctx context.Context, id string, viewer *domain.User) (*models.ReservationResponse, error) {
	r, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, reservations.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%s not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: store error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - store error: %v", ErrInternal, err)
	}

	if !canView(viewer, r.Requester) {
		s.logger.Warn("GetByID: access denied for %s to reservation id=%s", viewerName(viewer), id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainReservation(r), nil
}

func canView(viewer *domain.User, owner string) bool {
	if viewer == nil {
		return false
	}
	return viewer.IsAdmin() || viewer.Username == owner
}

func viewerName(viewer *domain.User) string {
	if viewer == nil {
		return "<anonymous>"
	}
	return viewer.Username
}
