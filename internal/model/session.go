package model

type SessionStatus string

const (
	SessionStatusProposed  SessionStatus = "PROPOSED"  // Ожидает подтверждений участников
	SessionStatusConfirmed SessionStatus = "CONFIRMED" // Подтверждено всеми участниками
	SessionStatusCancelled SessionStatus = "CANCELLED" // Отменено, терминальный статус
)

// Ordinal возвращает порядок статуса для сортировки списков:
// PROPOSED < CONFIRMED < CANCELLED.
func (s SessionStatus) Ordinal() int {
	switch s {
	case SessionStatusProposed:
		return 0
	case SessionStatusConfirmed:
		return 1
	default:
		return 2
	}
}

type Session struct {
	ID           int           `json:"id"`
	CourseCode   string        `json:"course_code"`
	Day          int           `json:"day"`
	Start        int           `json:"start"`
	Duration     int           `json:"duration"` // всегда 1 час в текущей версии
	OrganizerID  int           `json:"organizer_id"`
	Status       SessionStatus `json:"status"`
	CancelReason string        `json:"cancel_reason"` // заполняется только при отмене
}
