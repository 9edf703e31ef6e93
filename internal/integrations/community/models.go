package community

import "time"

// EventTypeMatchRequest тип события поиска соперника/игроков на регулярную игру
const EventTypeMatchRequest = "match_request"

// MatchRequestEvent пост в сообщество о регулярном бронировании
type MatchRequestEvent struct {
	Type            string    `json:"type"`
	BookingID       string    `json:"booking_id"`
	UserID          int64     `json:"user_id"`
	FieldID         string    `json:"field_id"`
	SlotLabel       string    `json:"slot_label"`
	SessionDates    []string  `json:"session_dates"`
	LookingOpponent bool      `json:"looking_opponent"`
	ContactName     string    `json:"contact_name"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
