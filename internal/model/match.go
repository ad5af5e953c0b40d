package model

// DayOverlap — общие свободные часы с одногруппником в конкретный день.
type DayOverlap struct {
	Day   int   `json:"day"`
	Hours []int `json:"hours"` // целые часы пересечения, по возрастанию
}

// MatchCandidate — одногруппник с хотя бы одним пересечением свободного времени.
type MatchCandidate struct {
	ClassmateID   int          `json:"classmate_id"`
	ClassmateName string       `json:"classmate_name"`
	Overlaps      []DayOverlap `json:"overlaps"`
}
