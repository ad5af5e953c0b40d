package model

// Enrollment — запись студента на курс. Пара (student_id, course_code) уникальна.
type Enrollment struct {
	StudentID  int    `json:"student_id"`
	CourseCode string `json:"course_code"` // формат "DEPT NUM", например "CPSC 2120"
}
