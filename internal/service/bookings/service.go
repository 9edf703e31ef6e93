package bookings

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
	"github.com/m04kA/SMC-FieldBookingService/internal/service/bookings/models"
)

// Service сервис для чтения локальной истории бронирований
type Service struct {
	historyRepo HistoryRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(historyRepo HistoryRepository, logger Logger) *Service {
	return &Service{
		historyRepo: historyRepo,
		logger:      logger,
	}
}

// GetUserBookings получает историю бронирований пользователя.
// Пользователь видит только свою историю, администратор - любую.
// Опционально фильтрует по статусу.
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d by requester=%d, status=%v",
		req.UserID, req.RequesterID, req.Status)

	// Проверяем права доступа
	if err := checkAccess(req); err != nil {
		s.logger.Warn("GetUserBookings: access denied for requester=%d to user=%d", req.RequesterID, req.UserID)
		return nil, err
	}

	filter := domain.HistoryFilter{
		UserID: req.UserID,
		Limit:  req.Limit,
		Offset: req.Offset,
	}

	// Конвертируем статус из строки в domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
	}

	if filter.Limit == 0 || filter.Limit > models.MaxPageSize {
		filter.Limit = models.DefaultPageSize
	}

	entries, err := s.historyRepo.ListByUser(ctx, filter)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(entries), req.UserID)
	return models.FromDomainHistoryList(entries), nil
}

// checkAccess проверяет, что запрашивающий - владелец истории или администратор
func checkAccess(req *models.GetUserBookingsRequest) error {
	if req.RequesterID <= 0 {
		return ErrAccessDenied
	}
	if req.RequesterID == req.UserID || req.RequesterRole == domain.RoleAdministrator {
		return nil
	}
	return ErrAccessDenied
}
