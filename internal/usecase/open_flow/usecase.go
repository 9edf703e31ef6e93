package open_flow

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
	"github.com/m04kA/SMC-FieldBookingService/internal/service/flow"
)

// UUIDGenerator генерирует ID потоков через google/uuid
type UUIDGenerator struct{}

// NewID возвращает новый UUID v4
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// UseCase use case для открытия потока бронирования
type UseCase struct {
	registry    FlowRegistry
	ids         IDGenerator
	machineOpts []flow.Option
	logger      Logger
}

// NewUseCase создает новый экземпляр use case.
// machineOpts применяются к каждому новому потоку (длительность блокировки, обработчик истечения).
func NewUseCase(registry FlowRegistry, logger Logger, machineOpts ...flow.Option) *UseCase {
	return &UseCase{
		registry:    registry,
		ids:         UUIDGenerator{},
		machineOpts: machineOpts,
		logger:      logger,
	}
}

// Execute открывает новый поток на шаге details
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("OpenFlow: user=%d, field=%s, slot=%s, date=%s",
		req.UserID, req.FieldID, req.SlotID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("OpenFlow: validation failed: %v", err)
		return nil, err
	}

	// 2. Собираем черновик
	draft := &domain.BookingDraft{
		UserID:        req.UserID,
		FieldID:       req.FieldID,
		SlotID:        req.SlotID,
		SlotLabel:     req.SlotLabel,
		Date:          domain.DateOnly(req.Date),
		BasePrice:     req.BasePrice,
		OwnerID:       req.OwnerID,
		BankAccountID: req.BankAccountID,
		DepositPolicy: req.DepositPolicy,
	}

	// 3. Создаем машину состояний и регистрируем ее
	machine := flow.NewMachine(uc.ids.NewID(), draft, uc.logger, uc.machineOpts...)
	if err := uc.registry.Add(machine); err != nil {
		if errors.Is(err, flow.ErrTooManyFlows) {
			uc.logger.Warn("OpenFlow: registry is full, user=%d", req.UserID)
			return nil, ErrTooManyFlows
		}
		uc.logger.Error("OpenFlow: failed to register flow: %v", err)
		return nil, fmt.Errorf("%w: failed to register flow: %v", ErrInternal, err)
	}

	uc.logger.Info("OpenFlow: flow %s opened for user=%d", machine.ID(), req.UserID)
	return &Response{Flow: machine.Snapshot()}, nil
}
