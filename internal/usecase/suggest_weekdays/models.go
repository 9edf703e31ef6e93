package suggest_weekdays

import "time"

// Request модель запроса подсказок по дням недели
type Request struct {
	FlowID string
	UserID int64
}

// Input параметры расчета подсказок
type Input struct {
	FieldID    string
	SlotID     string
	StartDate  time.Time
	WeekdaySet []time.Weekday
	WeekCount  int
}

// Suggestion день недели, который можно добавить к повторяющемуся бронированию
type Suggestion struct {
	Weekday   time.Weekday
	Available int     // Сколько проверок вернули "свободно"
	Probed    int     // Сколько проверок выполнено (= weekCount)
	Score     float64 // Available / Probed
}

// Response модель ответа с подсказками
type Response struct {
	Suggestions []Suggestion
}
