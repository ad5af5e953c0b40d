package repository

import (
	"sort"
	"strconv"

	"github.com/Freeeeeet/studybuddy/internal/model"
)

// sessions.csv: id,course_code,day,start,duration,organizer_id,status,cancel_reason?
func (s *Store) loadSessions() error {
	return s.readTable(s.sessionsFile, "sessions", 7, func(rec []string) bool {
		id, err := strconv.Atoi(rec[0])
		if err != nil {
			return false
		}
		day, err := strconv.Atoi(rec[2])
		if err != nil {
			return false
		}
		start, err := strconv.Atoi(rec[3])
		if err != nil {
			return false
		}
		duration, err := strconv.Atoi(rec[4])
		if err != nil {
			return false
		}
		organizerID, err := strconv.Atoi(rec[5])
		if err != nil {
			return false
		}

		var status model.SessionStatus
		switch rec[6] {
		case string(model.SessionStatusProposed):
			status = model.SessionStatusProposed
		case string(model.SessionStatusConfirmed):
			status = model.SessionStatusConfirmed
		default:
			status = model.SessionStatusCancelled
		}

		sess := &model.Session{
			ID:          id,
			CourseCode:  rec[1],
			Day:         day,
			Start:       start,
			Duration:    duration,
			OrganizerID: organizerID,
			Status:      status,
		}
		if len(rec) >= 8 {
			sess.CancelReason = rec[7]
		}
		s.Sessions[id] = sess
		return true
	})
}

// SaveSessions сохраняет таблицу сессий, строки упорядочены по ID.
func (s *Store) SaveSessions() {
	ids := make([]int, 0, len(s.Sessions))
	for id := range s.Sessions {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	records := make([][]string, 0, len(ids))
	for _, id := range ids {
		sess := s.Sessions[id]
		records = append(records, []string{
			strconv.Itoa(sess.ID),
			sess.CourseCode,
			strconv.Itoa(sess.Day),
			strconv.Itoa(sess.Start),
			strconv.Itoa(sess.Duration),
			strconv.Itoa(sess.OrganizerID),
			string(sess.Status),
			sess.CancelReason,
		})
	}

	s.atomicWrite(s.sessionsFile, records)
}
