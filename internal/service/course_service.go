package service

import (
	"context"
	"sort"

	"github.com/Freeeeeet/studybuddy/internal/model"
	"github.com/Freeeeeet/studybuddy/internal/repository"
	"go.uber.org/zap"
)

type CourseService struct {
	store  *repository.Store
	logger *zap.Logger
}

func NewCourseService(store *repository.Store, logger *zap.Logger) *CourseService {
	return &CourseService{
		store:  store,
		logger: logger,
	}
}

// AddCourse записывает студента на курс. Повторная запись на тот же курс
// отклоняется.
func (s *CourseService) AddCourse(ctx context.Context, studentID int, courseCode string) error {
	if !isValidCourse(courseCode) {
		return ErrBadCourse
	}
	if s.Enrolled(studentID, courseCode) {
		return ErrDupCourse
	}

	s.store.Enrollments = append(s.store.Enrollments, model.Enrollment{
		StudentID:  studentID,
		CourseCode: courseCode,
	})
	s.store.EnrollmentsByCourse[courseCode] = append(s.store.EnrollmentsByCourse[courseCode], studentID)
	s.store.SaveEnrollments()

	s.logger.Info("Course added",
		zap.Int("student_id", studentID),
		zap.String("course", courseCode),
	)

	return nil
}

// RemoveCourse снимает студента с курса. Запрещено, пока у студента есть
// неотменённая сессия по этому курсу: запись нельзя отозвать из-под живой
// договорённости.
func (s *CourseService) RemoveCourse(ctx context.Context, studentID int, courseCode string) error {
	for _, sess := range s.store.Sessions {
		if sess.CourseCode != courseCode || sess.Status == model.SessionStatusCancelled {
			continue
		}
		involved := sess.OrganizerID == studentID
		if !involved {
			for _, p := range s.store.Participants {
				if p.SessionID == sess.ID && p.StudentID == studentID {
					involved = true
					break
				}
			}
		}
		if involved {
			return ErrSessionsExist
		}
	}

	removed := false
	kept := s.store.Enrollments[:0]
	for _, e := range s.store.Enrollments {
		if e.StudentID == studentID && e.CourseCode == courseCode {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	s.store.Enrollments = kept

	if !removed {
		return ErrCourseNotEnrolled
	}

	s.store.RecomputeIndices()
	s.store.SaveEnrollments()

	s.logger.Info("Course removed",
		zap.Int("student_id", studentID),
		zap.String("course", courseCode),
	)

	return nil
}

// ListCourses возвращает коды курсов студента по возрастанию.
func (s *CourseService) ListCourses(ctx context.Context, studentID int) []string {
	var out []string
	for _, e := range s.store.Enrollments {
		if e.StudentID == studentID {
			out = append(out, e.CourseCode)
		}
	}
	sort.Strings(out)
	return out
}

// Enrolled сообщает, записан ли студент на курс.
func (s *CourseService) Enrolled(studentID int, courseCode string) bool {
	for _, e := range s.store.Enrollments {
		if e.StudentID == studentID && e.CourseCode == courseCode {
			return true
		}
	}
	return false
}
