package fieldservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
)

// Client клиент для работы с FieldService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента FieldService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CheckAvailability проверяет, свободен ли слот поля на дату
func (c *Client) CheckAvailability(ctx context.Context, fieldID string, date time.Time, slotID string) (*domain.Availability, error) {
	query := url.Values{}
	query.Set("date", date.Format(domain.DateFormat))
	query.Set("slotId", slotID)
	endpoint := fmt.Sprintf("%s/api/v1/fields/%s/availability?%s", c.baseURL, url.PathEscape(fieldID), query.Encode())

	var resp AvailabilityResponse
	if err := c.doJSON(ctx, http.MethodGet, endpoint, nil, &resp); err != nil {
		return nil, err
	}

	return &domain.Availability{
		Available: resp.Available,
		Message:   resp.Message,
	}, nil
}

// CreateBooking создает бронирование на стороне FieldService
func (c *Client) CreateBooking(ctx context.Context, payload *CreateBookingRequest) (*BookingResponse, error) {
	endpoint := fmt.Sprintf("%s/api/v1/bookings", c.baseURL)

	c.log.Info("FieldService: creating booking field=%s slot=%s date=%s recurring=%t",
		payload.FieldID, payload.SlotID, payload.Date, payload.IsRecurring)

	var resp BookingResponse
	if err := c.doJSON(ctx, http.MethodPost, endpoint, payload, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListSchedules возвращает расписание поля
func (c *Client) ListSchedules(ctx context.Context, fieldID string) ([]domain.Schedule, error) {
	endpoint := fmt.Sprintf("%s/api/v1/fields/%s/schedules", c.baseURL, url.PathEscape(fieldID))

	var resp []ScheduleResponse
	if err := c.doJSON(ctx, http.MethodGet, endpoint, nil, &resp); err != nil {
		return nil, err
	}

	schedules := make([]domain.Schedule, 0, len(resp))
	for _, s := range resp {
		date, err := time.Parse(domain.DateFormat, s.Date)
		if err != nil {
			c.log.Warn("FieldService: skipping schedule id=%s with bad date %q", s.ID, s.Date)
			continue
		}
		schedules = append(schedules, domain.Schedule{
			ID:        s.ID,
			FieldID:   s.FieldID,
			SlotID:    s.SlotID,
			Date:      date,
			Available: s.Available,
		})
	}
	return schedules, nil
}

// GetBankAccount возвращает банковский счет по ID
func (c *Client) GetBankAccount(ctx context.Context, accountID string) (*domain.BankAccount, error) {
	endpoint := fmt.Sprintf("%s/api/v1/bank-accounts/%s", c.baseURL, url.PathEscape(accountID))
	return c.getBankAccount(ctx, endpoint)
}

// GetBankAccountByOwner возвращает банковский счет владельца поля
func (c *Client) GetBankAccountByOwner(ctx context.Context, ownerID string) (*domain.BankAccount, error) {
	endpoint := fmt.Sprintf("%s/api/v1/owners/%s/bank-account", c.baseURL, url.PathEscape(ownerID))
	return c.getBankAccount(ctx, endpoint)
}

func (c *Client) getBankAccount(ctx context.Context, endpoint string) (*domain.BankAccount, error) {
	var resp BankAccountResponse
	if err := c.doJSON(ctx, http.MethodGet, endpoint, nil, &resp); err != nil {
		if err == ErrFieldNotFound {
			return nil, ErrBankAccountNotFound
		}
		return nil, err
	}

	return &domain.BankAccount{
		ID:            resp.ID,
		OwnerID:       resp.OwnerID,
		BankName:      resp.BankName,
		AccountNumber: resp.AccountNumber,
		AccountHolder: resp.AccountHolder,
	}, nil
}

// doJSON выполняет запрос и декодирует ответ в out
func (c *Client) doJSON(ctx context.Context, method, endpoint string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusNotFound:
		return ErrFieldNotFound
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrSlotConflict, readErrorMessage(resp.Body))
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		raw, _ := io.ReadAll(resp.Body)
		var apiErr ErrorResponse
		if json.Unmarshal(raw, &apiErr) == nil {
			switch apiErr.Code {
			case codeDurationLimit:
				return fmt.Errorf("%w: %s", ErrDurationLimitExceeded, apiErr.Message)
			case codeSlotConflict:
				return fmt.Errorf("%w: %s", ErrSlotConflict, apiErr.Message)
			}
		}
		return fmt.Errorf("%w: status %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	default:
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}

	// Парсим ответ
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}

func readErrorMessage(r io.Reader) string {
	raw, _ := io.ReadAll(r)
	var apiErr ErrorResponse
	if err := json.Unmarshal(raw, &apiErr); err == nil && apiErr.Message != "" {
		return apiErr.Message
	}
	return string(raw)
}
