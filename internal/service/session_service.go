package service

import (
	"context"
	"sort"

	"github.com/Freeeeeet/studybuddy/internal/model"
	"github.com/Freeeeeet/studybuddy/internal/repository"
	"go.uber.org/zap"
)

type SessionService struct {
	store        *repository.Store
	courses      *CourseService
	availability *AvailabilityService
	logger       *zap.Logger
}

func NewSessionService(
	store *repository.Store,
	courses *CourseService,
	availability *AvailabilityService,
	logger *zap.Logger,
) *SessionService {
	return &SessionService{
		store:        store,
		courses:      courses,
		availability: availability,
		logger:       logger,
	}
}

// hasConflict: у студента конфликт в (day, start), если другая CONFIRMED
// сессия занимает ровно этот час и студент — её организатор либо участник
// с собственным подтверждением. PROPOSED сессии сознательно не учитываются:
// повторная проверка при подтверждении — единственная страховка.
// excludeSessionID исключает проверяемую сессию, чтобы она не конфликтовала
// сама с собой.
func (s *SessionService) hasConflict(studentID, day, start, excludeSessionID int) bool {
	for _, sess := range s.store.Sessions {
		if sess.ID == excludeSessionID || sess.Status != model.SessionStatusConfirmed {
			continue
		}
		if sess.Day != day || sess.Start != start {
			continue
		}
		if sess.OrganizerID == studentID {
			return true
		}
		for _, p := range s.store.Participants {
			if p.SessionID == sess.ID && p.StudentID == studentID && p.Confirmed {
				return true
			}
		}
	}
	return false
}

// ScheduleSession создаёт сессию в статусе PROPOSED с неподтверждёнными
// записями участников для организатора и всех приглашённых. Приглашённые
// дедуплицируются, самоприглашение организатора отбрасывается.
func (s *SessionService) ScheduleSession(ctx context.Context, organizerID int, courseCode string, day, start int, invitees []int) (int, error) {
	if !isValidCourse(courseCode) {
		return 0, ErrBadCourse
	}
	if !isValidDay(day) || start < 0 || start > 23 {
		return 0, ErrBadTime
	}
	if !s.courses.Enrolled(organizerID, courseCode) {
		return 0, ErrNotEnrolledOrg
	}
	if !s.availability.Contains(organizerID, day, start, start+1) {
		return 0, ErrOutsideAvailOrg
	}
	if s.hasConflict(organizerID, day, start, 0) {
		return 0, ErrOrgConflict
	}

	seen := make(map[int]bool)
	var uniq []int
	for _, id := range invitees {
		if id == organizerID {
			continue
		}
		if _, ok := s.store.Students[id]; !ok {
			return 0, ErrInvID
		}
		if !s.courses.Enrolled(id, courseCode) {
			return 0, ErrInvNotEnrolled
		}
		if !seen[id] {
			seen[id] = true
			uniq = append(uniq, id)
		}
	}
	if len(uniq) == 0 {
		return 0, ErrNoInvitees
	}

	sess := &model.Session{
		ID:          s.store.NextSessionID,
		CourseCode:  courseCode,
		Day:         day,
		Start:       start,
		Duration:    1,
		OrganizerID: organizerID,
		Status:      model.SessionStatusProposed,
	}
	s.store.NextSessionID++
	s.store.Sessions[sess.ID] = sess

	s.store.Participants = append(s.store.Participants, model.SessionParticipant{
		SessionID: sess.ID,
		StudentID: organizerID,
	})
	for _, id := range uniq {
		s.store.Participants = append(s.store.Participants, model.SessionParticipant{
			SessionID: sess.ID,
			StudentID: id,
		})
	}

	s.store.SaveSessions()
	s.store.SaveParticipants()

	s.logger.Info("Session proposed",
		zap.Int("session_id", sess.ID),
		zap.Int("organizer_id", organizerID),
		zap.String("course", courseCode),
		zap.Int("day", day),
		zap.Int("start", start),
		zap.Int("invitees", len(uniq)),
	)

	return sess.ID, nil
}

// ConfirmSession подтверждает участие. Конфликт и доступность проверяются
// заново на момент подтверждения: состояние могло измениться после
// планирования. Когда подтвердились все участники, сессия переходит в
// CONFIRMED. Из CANCELLED выхода нет.
func (s *SessionService) ConfirmSession(ctx context.Context, actorID, sessionID int) error {
	sess, ok := s.store.Sessions[sessionID]
	if !ok {
		return ErrNoSession
	}
	if sess.Status == model.SessionStatusCancelled {
		return ErrSessionCancelled
	}

	found := false
	for i := range s.store.Participants {
		p := &s.store.Participants[i]
		if p.SessionID != sessionID || p.StudentID != actorID {
			continue
		}
		found = true
		if s.hasConflict(actorID, sess.Day, sess.Start, sess.ID) {
			return ErrTimeConflict
		}
		if !s.availability.Contains(actorID, sess.Day, sess.Start, sess.Start+1) {
			return ErrOutsideAvail
		}
		p.Confirmed = true
		break
	}
	if !found {
		return ErrNotParticipant
	}

	allConfirmed := true
	for _, p := range s.store.Participants {
		if p.SessionID == sessionID && !p.Confirmed {
			allConfirmed = false
			break
		}
	}
	if allConfirmed {
		sess.Status = model.SessionStatusConfirmed
		s.store.SaveSessions()
	}
	s.store.SaveParticipants()

	s.logger.Info("Session confirmation recorded",
		zap.Int("session_id", sessionID),
		zap.Int("student_id", actorID),
		zap.String("status", string(sess.Status)),
	)

	return nil
}

// CancelSession переводит сессию в CANCELLED из любого статуса и запоминает
// причину. Повторная отмена разрешена и просто перезаписывает причину.
func (s *SessionService) CancelSession(ctx context.Context, actorID, sessionID int, reason string) error {
	sess, ok := s.store.Sessions[sessionID]
	if !ok {
		return ErrNoSession
	}

	isParticipant := sess.OrganizerID == actorID
	if !isParticipant {
		for _, p := range s.store.Participants {
			if p.SessionID == sessionID && p.StudentID == actorID {
				isParticipant = true
				break
			}
		}
	}
	if !isParticipant {
		return ErrNotParticipant
	}

	sess.Status = model.SessionStatusCancelled
	sess.CancelReason = reason
	s.store.SaveSessions()

	s.logger.Info("Session cancelled",
		zap.Int("session_id", sessionID),
		zap.Int("student_id", actorID),
		zap.String("reason", reason),
	)

	return nil
}

// ListSessionsFor возвращает сессии, где студент организатор или участник,
// отсортированные по (статус, день, начало, id).
func (s *SessionService) ListSessionsFor(ctx context.Context, studentID int) []model.Session {
	var out []model.Session
	for _, sess := range s.store.Sessions {
		if sess.OrganizerID == studentID {
			out = append(out, *sess)
			continue
		}
		for _, p := range s.store.Participants {
			if p.SessionID == sess.ID && p.StudentID == studentID {
				out = append(out, *sess)
				break
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Status != out[j].Status {
			return out[i].Status.Ordinal() < out[j].Status.Ordinal()
		}
		if out[i].Day != out[j].Day {
			return out[i].Day < out[j].Day
		}
		if out[i].Start != out[j].Start {
			return out[i].Start < out[j].Start
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// ListSessionsByStatusFor — отфильтрованный по статусу вид ListSessionsFor.
func (s *SessionService) ListSessionsByStatusFor(ctx context.Context, studentID int, status model.SessionStatus) []model.Session {
	var out []model.Session
	for _, sess := range s.ListSessionsFor(ctx, studentID) {
		if sess.Status == status {
			out = append(out, sess)
		}
	}
	return out
}

// ListPendingInvitationsFor возвращает PROPOSED сессии, в которых студент
// ещё не подтвердил участие, по (день, начало, id).
func (s *SessionService) ListPendingInvitationsFor(ctx context.Context, studentID int) []model.Session {
	var out []model.Session
	for _, p := range s.store.Participants {
		if p.StudentID != studentID || p.Confirmed {
			continue
		}
		sess, ok := s.store.Sessions[p.SessionID]
		if !ok || sess.Status != model.SessionStatusProposed {
			continue
		}
		out = append(out, *sess)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Day != out[j].Day {
			return out[i].Day < out[j].Day
		}
		if out[i].Start != out[j].Start {
			return out[i].Start < out[j].Start
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// ParticipantsFor возвращает записи участников сессии в порядке создания.
func (s *SessionService) ParticipantsFor(ctx context.Context, sessionID int) []model.SessionParticipant {
	var out []model.SessionParticipant
	for _, p := range s.store.Participants {
		if p.SessionID == sessionID {
			out = append(out, p)
		}
	}
	return out
}
