package model

// AvailabilitySlot — интервал свободного времени [Start, End) в часах.
// Для пары (student_id, day) слоты всегда хранятся слитыми: без пересечений,
// без смежных интервалов, отсортированы по началу.
type AvailabilitySlot struct {
	StudentID int `json:"student_id"`
	Day       int `json:"day"`   // 0..6
	Start     int `json:"start"` // 0..23
	End       int `json:"end"`   // 1..24, End > Start
}
