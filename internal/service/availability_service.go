package service

import (
	"context"
	"sort"

	"github.com/Freeeeeet/studybuddy/internal/model"
	"github.com/Freeeeeet/studybuddy/internal/repository"
	"go.uber.org/zap"
)

type AvailabilityService struct {
	store  *repository.Store
	logger *zap.Logger
}

func NewAvailabilityService(store *repository.Store, logger *zap.Logger) *AvailabilityService {
	return &AvailabilityService{
		store:  store,
		logger: logger,
	}
}

// AddSlot добавляет интервал свободного времени и сразу сливает его с
// соседями. Инвариант: для пары (студент, день) слоты хранятся без
// пересечений и смежностей, отсортированы по началу. Повторное добавление
// того же слота идемпотентно.
func (s *AvailabilityService) AddSlot(ctx context.Context, studentID, day, start, end int) error {
	if !isValidDay(day) || !isValidAvailRange(start, end) {
		return ErrBadRange
	}

	var slots []model.AvailabilitySlot
	for _, a := range s.store.Availability {
		if a.StudentID == studentID && a.Day == day {
			slots = append(slots, a)
		}
	}
	slots = append(slots, model.AvailabilitySlot{
		StudentID: studentID,
		Day:       day,
		Start:     start,
		End:       end,
	})

	sort.Slice(slots, func(i, j int) bool { return slots[i].Start < slots[j].Start })

	// Слияние слева направо: next.Start <= cur.End — сливаем, касание тоже
	var merged []model.AvailabilitySlot
	for _, cur := range slots {
		if len(merged) == 0 || merged[len(merged)-1].End < cur.Start {
			merged = append(merged, cur)
		} else if cur.End > merged[len(merged)-1].End {
			merged[len(merged)-1].End = cur.End
		}
	}

	var kept []model.AvailabilitySlot
	for _, a := range s.store.Availability {
		if a.StudentID != studentID || a.Day != day {
			kept = append(kept, a)
		}
	}
	s.store.Availability = append(kept, merged...)
	s.store.SaveAvailability()

	s.logger.Info("Availability added",
		zap.Int("student_id", studentID),
		zap.Int("day", day),
		zap.Int("start", start),
		zap.Int("end", end),
		zap.Int("slots_after_merge", len(merged)),
	)

	return nil
}

// RemoveSlotExact удаляет слот только при точном совпадении границ.
// Возвращает false, если такого слота нет: удаление части слитого слота
// сознательно не поддерживается.
func (s *AvailabilityService) RemoveSlotExact(ctx context.Context, studentID, day, start, end int) (bool, error) {
	removed := false
	kept := s.store.Availability[:0]
	for _, a := range s.store.Availability {
		if a.StudentID == studentID && a.Day == day && a.Start == start && a.End == end {
			removed = true
			continue
		}
		kept = append(kept, a)
	}
	s.store.Availability = kept

	if !removed {
		return false, nil
	}

	s.store.SaveAvailability()

	s.logger.Info("Availability removed",
		zap.Int("student_id", studentID),
		zap.Int("day", day),
		zap.Int("start", start),
		zap.Int("end", end),
	)

	return true, nil
}

// ListSlots возвращает слоты студента, упорядоченные по (день, начало).
func (s *AvailabilityService) ListSlots(ctx context.Context, studentID int) []model.AvailabilitySlot {
	var out []model.AvailabilitySlot
	for _, a := range s.store.Availability {
		if a.StudentID == studentID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Day != out[j].Day {
			return out[i].Day < out[j].Day
		}
		return out[i].Start < out[j].Start
	})
	return out
}

// Contains сообщает, покрывает ли какой-то один слот студента интервал
// [start, end) целиком. Частичное перекрытие не считается.
func (s *AvailabilityService) Contains(studentID, day, start, end int) bool {
	for _, a := range s.store.Availability {
		if a.StudentID == studentID && a.Day == day && a.Start <= start && end <= a.End {
			return true
		}
	}
	return false
}
