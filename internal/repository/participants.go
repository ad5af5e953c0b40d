package repository

import (
	"strconv"

	"github.com/Freeeeeet/studybuddy/internal/model"
)

// session_participants.csv: session_id,student_id,confirmed
func (s *Store) loadParticipants() error {
	return s.readTable(s.participantsFile, "session_participants", 3, func(rec []string) bool {
		sessionID, err := strconv.Atoi(rec[0])
		if err != nil {
			return false
		}
		studentID, err := strconv.Atoi(rec[1])
		if err != nil {
			return false
		}
		s.Participants = append(s.Participants, model.SessionParticipant{
			SessionID: sessionID,
			StudentID: studentID,
			Confirmed: rec[2] == "true" || rec[2] == "1",
		})
		return true
	})
}

func (s *Store) SaveParticipants() {
	records := make([][]string, 0, len(s.Participants))
	for _, p := range s.Participants {
		records = append(records, []string{
			strconv.Itoa(p.SessionID),
			strconv.Itoa(p.StudentID),
			strconv.FormatBool(p.Confirmed),
		})
	}

	s.atomicWrite(s.participantsFile, records)
}
