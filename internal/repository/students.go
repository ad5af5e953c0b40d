package repository

import (
	"sort"
	"strconv"

	"github.com/Freeeeeet/studybuddy/internal/model"
)

// students.csv: id,name,email,pass_hash?
func (s *Store) loadStudents() error {
	return s.readTable(s.studentsFile, "students", 3, func(rec []string) bool {
		id, err := strconv.Atoi(rec[0])
		if err != nil {
			return false
		}
		st := &model.Student{
			ID:    id,
			Name:  rec[1],
			Email: rec[2],
		}
		if len(rec) >= 4 {
			st.PassHash = rec[3]
		}
		s.Students[id] = st
		return true
	})
}

// SaveStudents сохраняет таблицу студентов, строки упорядочены по ID.
func (s *Store) SaveStudents() {
	ids := make([]int, 0, len(s.Students))
	for id := range s.Students {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	records := make([][]string, 0, len(ids))
	for _, id := range ids {
		st := s.Students[id]
		records = append(records, []string{
			strconv.Itoa(st.ID),
			st.Name,
			st.Email,
			st.PassHash,
		})
	}

	s.atomicWrite(s.studentsFile, records)
}
