package service

import "regexp"

var (
	// Простая эвристика: что-то@что-то.что-то
	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

	courseRe = regexp.MustCompile(`^[A-Z]{2,5} [0-9]{3,4}$`)
)

func isValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

func isValidCourse(code string) bool {
	return courseRe.MatchString(code)
}

func isValidDay(day int) bool {
	return day >= 0 && day <= 6
}

func isValidAvailRange(start, end int) bool {
	return start >= 0 && end <= 24 && start < end
}
