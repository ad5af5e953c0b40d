package service

import (
	"context"
	"sort"

	"github.com/Freeeeeet/studybuddy/internal/model"
	"github.com/Freeeeeet/studybuddy/internal/repository"
	"go.uber.org/zap"
)

type MatchService struct {
	store   *repository.Store
	courses *CourseService
	logger  *zap.Logger
}

func NewMatchService(store *repository.Store, courses *CourseService, logger *zap.Logger) *MatchService {
	return &MatchService{
		store:   store,
		courses: courses,
		logger:  logger,
	}
}

// SuggestMatches ранжирует одногруппников по самому раннему пересечению
// свободного времени. Результат детерминирован при одинаковом состоянии:
// кандидаты идут по ключу day*24+firstHour самого раннего пересечения,
// при равенстве — по имени.
func (s *MatchService) SuggestMatches(ctx context.Context, studentID int, courseCode string) ([]model.MatchCandidate, error) {
	if !isValidCourse(courseCode) {
		return nil, ErrBadCourse
	}
	if !s.courses.Enrolled(studentID, courseCode) {
		return nil, ErrNotEnrolled
	}

	var mine []model.AvailabilitySlot
	for _, a := range s.store.Availability {
		if a.StudentID == studentID {
			mine = append(mine, a)
		}
	}

	// Одногруппники без повторов, сам студент исключается
	seen := make(map[int]bool)
	var mates []int
	for _, id := range s.store.EnrollmentsByCourse[courseCode] {
		if id != studentID && !seen[id] {
			seen[id] = true
			mates = append(mates, id)
		}
	}
	sort.Ints(mates)

	var result []model.MatchCandidate
	for _, mateID := range mates {
		mate, ok := s.store.Students[mateID]
		if !ok {
			// Запись о курсе без профиля: возможна после ручной правки файлов
			s.logger.Warn("enrollment without student record skipped",
				zap.Int("student_id", mateID),
				zap.String("course", courseCode),
			)
			continue
		}

		var theirs []model.AvailabilitySlot
		for _, a := range s.store.Availability {
			if a.StudentID == mateID {
				theirs = append(theirs, a)
			}
		}

		var overlaps []model.DayOverlap
		for _, m1 := range mine {
			for _, m2 := range theirs {
				if m1.Day != m2.Day {
					continue
				}
				lo := max(m1.Start, m2.Start)
				hi := min(m1.End, m2.End)
				if lo >= hi {
					continue
				}
				var hours []int
				for h := lo; h < hi && h <= 23; h++ {
					hours = append(hours, h)
				}
				if len(hours) > 0 {
					overlaps = append(overlaps, model.DayOverlap{Day: m1.Day, Hours: hours})
				}
			}
		}
		if len(overlaps) == 0 {
			continue
		}

		sort.Slice(overlaps, func(i, j int) bool {
			if overlaps[i].Day != overlaps[j].Day {
				return overlaps[i].Day < overlaps[j].Day
			}
			if overlaps[i].Hours[0] != overlaps[j].Hours[0] {
				return overlaps[i].Hours[0] < overlaps[j].Hours[0]
			}
			return len(overlaps[i].Hours) < len(overlaps[j].Hours)
		})

		result = append(result, model.MatchCandidate{
			ClassmateID:   mateID,
			ClassmateName: mate.Name,
			Overlaps:      overlaps,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		a, b := result[i], result[j]
		ak := a.Overlaps[0].Day*24 + a.Overlaps[0].Hours[0]
		bk := b.Overlaps[0].Day*24 + b.Overlaps[0].Hours[0]
		if ak != bk {
			return ak < bk
		}
		return a.ClassmateName < b.ClassmateName
	})

	return result, nil
}
