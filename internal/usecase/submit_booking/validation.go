package submit_booking

import (
	"net/mail"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
)

// validateDraft проверяет контактные данные и параметры повторения.
// Возвращает *ValidationError со всеми найденными ошибками.
func validateDraft(draft *domain.BookingDraft) error {
	fields := make(map[string]string)

	name := strings.TrimSpace(draft.Contact.Name)
	switch {
	case name == "":
		fields["contactName"] = "required"
	case utf8.RuneCountInString(name) > domain.MaxContactName:
		fields["contactName"] = "too long"
	}

	phone := strings.TrimSpace(draft.Contact.Phone)
	if phone == "" {
		fields["phone"] = "required"
	} else if !isValidPhone(phone) {
		fields["phone"] = "invalid format"
	}

	if email := strings.TrimSpace(draft.Contact.Email); email != "" {
		if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
			fields["email"] = "invalid format"
		}
	}

	if utf8.RuneCountInString(draft.Contact.Notes) > domain.MaxNotesLength {
		fields["notes"] = "too long"
	}

	if draft.IsRecurring {
		rec := draft.Recurrence
		if rec.StartDate.IsZero() {
			fields["startDate"] = "required"
		}
		if len(rec.WeekdaySet) == 0 {
			fields["weekdays"] = "at least one weekday is required"
		}
		if rec.WeekCount < 1 {
			fields["weekCount"] = "must be at least 1"
		} else if rec.WeekCount > domain.MaxWeekCount {
			fields["weekCount"] = "too many weeks"
		}
	} else if draft.Date.IsZero() {
		fields["date"] = "required"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// isValidPhone допускает цифры, пробелы, дефисы, скобки и ведущий '+'
func isValidPhone(phone string) bool {
	digits := 0
	for i, r := range phone {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == '+' && i == 0:
		case r == ' ' || r == '-' || r == '(' || r == ')':
		default:
			return false
		}
	}
	return digits >= domain.MinPhoneDigits && digits <= domain.MaxPhoneDigits
}
