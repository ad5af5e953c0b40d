package repository

import (
	"strconv"

	"github.com/Freeeeeet/studybuddy/internal/model"
)

// availability.csv: student_id,day,start,end
func (s *Store) loadAvailability() error {
	return s.readTable(s.availabilityFile, "availability", 4, func(rec []string) bool {
		studentID, err := strconv.Atoi(rec[0])
		if err != nil {
			return false
		}
		day, err := strconv.Atoi(rec[1])
		if err != nil {
			return false
		}
		start, err := strconv.Atoi(rec[2])
		if err != nil {
			return false
		}
		end, err := strconv.Atoi(rec[3])
		if err != nil {
			return false
		}
		s.Availability = append(s.Availability, model.AvailabilitySlot{
			StudentID: studentID,
			Day:       day,
			Start:     start,
			End:       end,
		})
		return true
	})
}

func (s *Store) SaveAvailability() {
	records := make([][]string, 0, len(s.Availability))
	for _, a := range s.Availability {
		records = append(records, []string{
			strconv.Itoa(a.StudentID),
			strconv.Itoa(a.Day),
			strconv.Itoa(a.Start),
			strconv.Itoa(a.End),
		})
	}

	s.atomicWrite(s.availabilityFile, records)
}
