package bookingflows

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
	"github.com/m04kA/SMC-FieldBookingService/internal/service/bankaccounts"
	"github.com/m04kA/SMC-FieldBookingService/internal/service/flow"
)

// Service операции над открытым потоком бронирования от имени его владельца
type Service struct {
	registry FlowRegistry
	accounts AccountLookup
	logger   Logger
}

// NewService создает новый экземпляр сервиса
func NewService(registry FlowRegistry, accounts AccountLookup, logger Logger) *Service {
	return &Service{
		registry: registry,
		accounts: accounts,
		logger:   logger,
	}
}

// Get возвращает снимок потока
func (s *Service) Get(flowID string, userID int64) (*flow.Snapshot, error) {
	machine, err := s.load(flowID, userID)
	if err != nil {
		return nil, err
	}

	snap := machine.Snapshot()
	return &snap, nil
}

// UpdateDraft меняет черновик; доступно только на шаге details
func (s *Service) UpdateDraft(flowID string, userID int64, patch flow.DraftPatch) (*flow.Snapshot, error) {
	s.logger.Info("UpdateDraft: flow=%s, user=%d", flowID, userID)

	machine, err := s.load(flowID, userID)
	if err != nil {
		return nil, err
	}

	snap, err := machine.UpdateDraft(patch)
	if err != nil {
		s.logger.Warn("UpdateDraft: flow=%s rejected: %v", flowID, err)
		return nil, mapFlowError(err)
	}
	return &snap, nil
}

// Dismiss проверяет, можно ли свернуть окно бронирования
func (s *Service) Dismiss(flowID string, userID int64) error {
	machine, err := s.load(flowID, userID)
	if err != nil {
		return err
	}

	if err := machine.Dismiss(); err != nil {
		s.logger.Warn("Dismiss: flow=%s refused: %v", flowID, err)
		return mapFlowError(err)
	}
	return nil
}

// Close закрывает поток и удаляет его из реестра
func (s *Service) Close(flowID string, userID int64) error {
	s.logger.Info("CloseFlow: flow=%s, user=%d", flowID, userID)

	if _, err := s.load(flowID, userID); err != nil {
		return err
	}

	if err := s.registry.Close(flowID); err != nil {
		s.logger.Warn("CloseFlow: flow=%s refused: %v", flowID, err)
		return mapFlowError(err)
	}
	return nil
}

// CancelPayment отменяет бронирование на шаге оплаты и возвращает поток на шаг details.
// Серверное бронирование остается как есть, отмена только локальная.
func (s *Service) CancelPayment(flowID string, userID int64, confirmed bool) (*flow.Snapshot, *domain.BookingRecord, error) {
	s.logger.Info("CancelPayment: flow=%s, user=%d, confirmed=%t", flowID, userID, confirmed)

	machine, err := s.load(flowID, userID)
	if err != nil {
		return nil, nil, err
	}

	cancelled, err := machine.CancelPayment(confirmed)
	if err != nil {
		s.logger.Warn("CancelPayment: flow=%s rejected: %v", flowID, err)
		return nil, nil, mapFlowError(err)
	}

	snap := machine.Snapshot()
	return &snap, cancelled, nil
}

// PaymentAccount возвращает банковский счет для оплаты депозита.
// Доступно только на шаге оплаты.
func (s *Service) PaymentAccount(ctx context.Context, flowID string, userID int64) (*domain.BankAccount, error) {
	machine, err := s.load(flowID, userID)
	if err != nil {
		return nil, err
	}

	snap := machine.Snapshot()
	if snap.Step != flow.StepPayment {
		s.logger.Warn("PaymentAccount: flow=%s is on step %s", flowID, snap.Step)
		return nil, ErrInvalidStep
	}

	account, err := s.accounts.Lookup(ctx, snap.Draft.BankAccountID, snap.Draft.OwnerID)
	if err != nil {
		if errors.Is(err, bankaccounts.ErrBankAccountNotFound) || errors.Is(err, bankaccounts.ErrNoAccountReference) {
			s.logger.Warn("PaymentAccount: flow=%s, no bank account: %v", flowID, err)
			return nil, ErrBankAccountNotFound
		}
		s.logger.Error("PaymentAccount: flow=%s: %v", flowID, err)
		return nil, fmt.Errorf("%w: bank account lookup: %v", ErrInternal, err)
	}
	return account, nil
}

// load возвращает поток, если он принадлежит пользователю
func (s *Service) load(flowID string, userID int64) (*flow.Machine, error) {
	machine, err := s.registry.Get(flowID)
	if err != nil {
		if errors.Is(err, flow.ErrFlowNotFound) {
			s.logger.Warn("Flow %s not found", flowID)
			return nil, ErrFlowNotFound
		}
		return nil, fmt.Errorf("%w: failed to get flow: %v", ErrInternal, err)
	}

	if machine.UserID() != userID {
		s.logger.Warn("User=%d has no access to flow %s", userID, flowID)
		return nil, ErrForbidden
	}
	return machine, nil
}

func mapFlowError(err error) error {
	switch {
	case errors.Is(err, flow.ErrFlowNotFound), errors.Is(err, flow.ErrFlowClosed):
		return ErrFlowNotFound
	case errors.Is(err, flow.ErrPaymentLocked):
		return ErrPaymentLocked
	case errors.Is(err, flow.ErrInvalidTransition), errors.Is(err, flow.ErrDraftNotEditable):
		return fmt.Errorf("%w: %v", ErrInvalidStep, err)
	case errors.Is(err, flow.ErrInvalidPatch):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	case errors.Is(err, flow.ErrCancelNotConfirmed):
		return ErrCancelNotConfirmed
	case errors.Is(err, flow.ErrSubmissionInProgress):
		return ErrSubmissionInProgress
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
