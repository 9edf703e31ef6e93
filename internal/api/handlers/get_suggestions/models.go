package get_suggestions

import suggestWeekdays "github.com/m04kA/SMC-FieldBookingService/internal/usecase/suggest_weekdays"

// SuggestionResponse день недели, который можно добавить к повторению
type SuggestionResponse struct {
	Weekday   int     `json:"weekday"` // 0 = воскресенье ... 6 = суббота
	Name      string  `json:"name"`
	Available int     `json:"available"`
	Probed    int     `json:"probed"`
	Score     float64 `json:"score"`
}

// SuggestionsResponse HTTP response model
type SuggestionsResponse struct {
	Suggestions []SuggestionResponse `json:"suggestions"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *suggestWeekdays.Response) *SuggestionsResponse {
	result := &SuggestionsResponse{
		Suggestions: make([]SuggestionResponse, 0, len(resp.Suggestions)),
	}
	for _, s := range resp.Suggestions {
		result.Suggestions = append(result.Suggestions, SuggestionResponse{
			Weekday:   int(s.Weekday),
			Name:      s.Weekday.String(),
			Available: s.Available,
			Probed:    s.Probed,
			Score:     s.Score,
		})
	}
	return result
}
