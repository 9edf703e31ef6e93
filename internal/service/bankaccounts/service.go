package bankaccounts

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
	fieldClient "github.com/m04kA/SMC-FieldBookingService/internal/integrations/fieldservice"
)

// Service поиск банковского счета владельца поля для шага оплаты
type Service struct {
	cache  AccountCache
	client FieldServiceClient
	logger Logger
}

// NewService создает новый экземпляр сервиса; cache может быть nil
func NewService(cache AccountCache, client FieldServiceClient, logger Logger) *Service {
	return &Service{
		cache:  cache,
		client: client,
		logger: logger,
	}
}

// Lookup ищет счет по ID, а если ID не задан - по владельцу поля.
// Сначала проверяется кэш; ошибки кэша не прерывают поиск.
func (s *Service) Lookup(ctx context.Context, accountID, ownerID string) (*domain.BankAccount, error) {
	var key string
	switch {
	case accountID != "":
		key = "id:" + accountID
	case ownerID != "":
		key = "owner:" + ownerID
	default:
		return nil, ErrNoAccountReference
	}

	// 1. Кэш
	if s.cache != nil {
		account, ok, err := s.cache.GetBankAccount(ctx, key)
		if err != nil {
			s.logger.Warn("BankAccounts: cache read failed for %s: %v", key, err)
		} else if ok {
			return account, nil
		}
	}

	// 2. FieldService
	var (
		account *domain.BankAccount
		err     error
	)
	if accountID != "" {
		account, err = s.client.GetBankAccount(ctx, accountID)
	} else {
		account, err = s.client.GetBankAccountByOwner(ctx, ownerID)
	}
	if err != nil {
		if errors.Is(err, fieldClient.ErrBankAccountNotFound) {
			s.logger.Warn("BankAccounts: account %s not found", key)
			return nil, ErrBankAccountNotFound
		}
		s.logger.Error("BankAccounts: failed to fetch %s: %v", key, err)
		return nil, fmt.Errorf("%w: failed to fetch bank account: %v", ErrInternal, err)
	}

	// 3. Сохраняем в кэш
	if s.cache != nil {
		if err := s.cache.SetBankAccount(ctx, key, account); err != nil {
			s.logger.Warn("BankAccounts: cache write failed for %s: %v", key, err)
		}
	}

	return account, nil
}
