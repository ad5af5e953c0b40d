package model

// SessionParticipant — участник сессии (организатор или приглашённый).
// Создаётся вместе с сессией и живёт до её удаления.
type SessionParticipant struct {
	SessionID int  `json:"session_id"`
	StudentID int  `json:"student_id"`
	Confirmed bool `json:"confirmed"`
}
