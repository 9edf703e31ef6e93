package pricing

import (
	"math"

	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
)

// Input входные данные для расчета стоимости
type Input struct {
	BasePrice    int64
	SessionCount int
	Policy       domain.DepositPolicy
}

// Derive рассчитывает полную разбивку стоимости.
// Разбивка всегда пересчитывается целиком: скидка, итог, депозит и остаток
// зависят друг от друга и не обновляются по отдельности.
func Derive(in Input) domain.PricingBreakdown {
	sessions := in.SessionCount
	if sessions < domain.MinSessionCount {
		sessions = domain.MinSessionCount
	}

	subtotal := in.BasePrice * int64(sessions)
	discountPercent := DiscountPercent(sessions)
	discountAmount := roundAmount(float64(subtotal) * discountPercent)
	total := subtotal - discountAmount

	deposit := Deposit(total, in.Policy)

	remaining := total - deposit
	if remaining < 0 {
		remaining = 0
	}

	return domain.PricingBreakdown{
		SessionCount:    sessions,
		Subtotal:        subtotal,
		DiscountPercent: discountPercent,
		DiscountAmount:  discountAmount,
		Total:           total,
		DepositAmount:   deposit,
		RemainingAmount: remaining,
	}
}

// DeriveForDraft рассчитывает стоимость по текущему состоянию черновика
func DeriveForDraft(draft *domain.BookingDraft) domain.PricingBreakdown {
	return Derive(Input{
		BasePrice:    draft.BasePrice,
		SessionCount: SessionCount(draft),
		Policy:       draft.DepositPolicy,
	})
}

// SessionCount количество оплачиваемых сессий: 1 без повторения,
// иначе weekCount × |weekdaySet|
func SessionCount(draft *domain.BookingDraft) int {
	rec := draft.ActiveRecurrence()
	if !rec.IsEnabled() {
		return domain.MinSessionCount
	}
	return rec.WeekCount * len(rec.WeekdaySet)
}

// DiscountPercent возвращает скидку за количество сессий
func DiscountPercent(sessionCount int) float64 {
	for _, tier := range domain.DiscountTiers {
		if sessionCount >= tier.MinSessions {
			return tier.Percent
		}
	}
	return 0
}

// Deposit рассчитывает депозит от итоговой суммы и ограничивает его границами политики.
// Граница учитывается, только если она больше нуля.
func Deposit(total int64, policy domain.DepositPolicy) int64 {
	deposit := roundAmount(float64(total) * EffectivePercent(policy))

	if policy.Min > 0 && deposit < policy.Min {
		deposit = policy.Min
	}
	if policy.Max > 0 && deposit > policy.Max {
		deposit = policy.Max
	}

	return deposit
}

// EffectivePercent возвращает процент депозита или значение по умолчанию,
// если процент не задан или некорректен
func EffectivePercent(policy domain.DepositPolicy) float64 {
	if policy.Percent == nil {
		return domain.DefaultDepositPercent
	}
	p := *policy.Percent
	if math.IsNaN(p) || p < 0 || p > 1 {
		return domain.DefaultDepositPercent
	}
	return p
}

func roundAmount(v float64) int64 {
	return int64(math.Round(v))
}
