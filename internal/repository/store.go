package repository

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Freeeeeet/studybuddy/internal/model"
	"go.uber.org/zap"
)

// Store владеет пятью CSV-таблицами и производными индексами.
// Первичны только таблицы: индексы и счётчики всегда пересчитываются
// из них заново после загрузки.
type Store struct {
	dataDir string
	logger  *zap.Logger

	studentsFile     string
	enrollmentsFile  string
	availabilityFile string
	sessionsFile     string
	participantsFile string

	Students     map[int]*model.Student
	Enrollments  []model.Enrollment
	Availability []model.AvailabilitySlot
	Sessions     map[int]*model.Session
	Participants []model.SessionParticipant

	// Производные индексы, не источник истины
	StudentsByEmail     map[string]int
	EnrollmentsByCourse map[string][]int

	NextStudentID int
	NextSessionID int
}

// NewStore создаёт каталог данных и недостающие файлы таблиц,
// загружает все таблицы и пересчитывает индексы и счётчики ID.
func NewStore(dataDir string, logger *zap.Logger) (*Store, error) {
	s := &Store{
		dataDir: dataDir,
		logger:  logger,

		studentsFile:     filepath.Join(dataDir, "students.csv"),
		enrollmentsFile:  filepath.Join(dataDir, "enrollments.csv"),
		availabilityFile: filepath.Join(dataDir, "availability.csv"),
		sessionsFile:     filepath.Join(dataDir, "sessions.csv"),
		participantsFile: filepath.Join(dataDir, "session_participants.csv"),
	}

	if err := s.ensureFiles(); err != nil {
		return nil, err
	}

	if err := s.LoadAll(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Store) ensureFiles() error {
	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	files := []string{
		s.studentsFile,
		s.enrollmentsFile,
		s.availabilityFile,
		s.sessionsFile,
		s.participantsFile,
	}
	for _, path := range files {
		f, err := os.OpenFile(path, os.O_CREATE, 0o644)
		if err != nil {
			return fmt.Errorf("ensure table file %s: %w", path, err)
		}
		f.Close()
	}

	return nil
}

// LoadAll перечитывает все таблицы с диска. Битые строки пропускаются
// с предупреждением, это не фатальная ошибка.
func (s *Store) LoadAll() error {
	s.Students = make(map[int]*model.Student)
	s.Enrollments = nil
	s.Availability = nil
	s.Sessions = make(map[int]*model.Session)
	s.Participants = nil

	if err := s.loadStudents(); err != nil {
		return err
	}
	if err := s.loadEnrollments(); err != nil {
		return err
	}
	if err := s.loadAvailability(); err != nil {
		return err
	}
	if err := s.loadSessions(); err != nil {
		return err
	}
	if err := s.loadParticipants(); err != nil {
		return err
	}

	s.RecomputeIndices()
	s.setNextIDs()

	return nil
}

// RecomputeIndices пересобирает производные индексы из первичных таблиц.
// Вызывается после загрузки и после структурных правок таблиц.
func (s *Store) RecomputeIndices() {
	s.StudentsByEmail = make(map[string]int, len(s.Students))
	for id, st := range s.Students {
		s.StudentsByEmail[st.Email] = id
	}

	s.EnrollmentsByCourse = make(map[string][]int)
	for _, e := range s.Enrollments {
		s.EnrollmentsByCourse[e.CourseCode] = append(s.EnrollmentsByCourse[e.CourseCode], e.StudentID)
	}
}

// Счётчики никогда не откатываются ниже существующих ID,
// даже после ручной правки файлов.
func (s *Store) setNextIDs() {
	maxStudent := 0
	for id := range s.Students {
		if id > maxStudent {
			maxStudent = id
		}
	}
	s.NextStudentID = maxStudent + 1

	maxSession := 0
	for id := range s.Sessions {
		if id > maxSession {
			maxSession = id
		}
	}
	s.NextSessionID = maxSession + 1
}
