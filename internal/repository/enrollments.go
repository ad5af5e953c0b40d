package repository

import (
	"strconv"

	"github.com/Freeeeeet/studybuddy/internal/model"
)

// enrollments.csv: student_id,course_code
func (s *Store) loadEnrollments() error {
	return s.readTable(s.enrollmentsFile, "enrollments", 2, func(rec []string) bool {
		studentID, err := strconv.Atoi(rec[0])
		if err != nil {
			return false
		}
		s.Enrollments = append(s.Enrollments, model.Enrollment{
			StudentID:  studentID,
			CourseCode: rec[1],
		})
		return true
	})
}

func (s *Store) SaveEnrollments() {
	records := make([][]string, 0, len(s.Enrollments))
	for _, e := range s.Enrollments {
		records = append(records, []string{
			strconv.Itoa(e.StudentID),
			e.CourseCode,
		})
	}

	s.atomicWrite(s.enrollmentsFile, records)
}
