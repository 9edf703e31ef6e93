package open_flow

import (
	"time"

	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
	"github.com/m04kA/SMC-FieldBookingService/internal/service/flow"
)

// Request модель запроса на открытие потока бронирования
type Request struct {
	UserID        int64                // ID пользователя
	FieldID       string               // ID поля
	SlotID        string               // ID слота
	SlotLabel     string               // Время слота для отображения ("18:00-19:00")
	Date          time.Time            // Дата игры (без времени)
	BasePrice     int64                // Цена одной сессии
	OwnerID       string               // ID владельца поля
	BankAccountID string               // ID счета для оплаты (опционально)
	DepositPolicy domain.DepositPolicy // Правила расчета депозита
}

// Response модель ответа с открытым потоком
type Response struct {
	Flow flow.Snapshot
}
