package service

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/studybuddy/internal/model"
	"github.com/Freeeeeet/studybuddy/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type ProfileService struct {
	store  *repository.Store
	logger *zap.Logger
}

func NewProfileService(store *repository.Store, logger *zap.Logger) *ProfileService {
	return &ProfileService{
		store:  store,
		logger: logger,
	}
}

// CreateProfile создаёт профиль студента. Пасскод опционален и хранится
// только как bcrypt-хеш.
func (s *ProfileService) CreateProfile(ctx context.Context, name, email, passcode string) (int, error) {
	if !isValidEmail(email) {
		return 0, ErrBadEmail
	}
	if _, ok := s.store.StudentsByEmail[email]; ok {
		return 0, ErrDupEmail
	}

	student := &model.Student{
		ID:    s.store.NextStudentID,
		Name:  name,
		Email: email,
	}

	if passcode != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(passcode), bcrypt.DefaultCost)
		if err != nil {
			return 0, fmt.Errorf("hash passcode: %w", err)
		}
		student.PassHash = string(hash)
	}

	s.store.NextStudentID++
	s.store.Students[student.ID] = student
	s.store.StudentsByEmail[student.Email] = student.ID
	s.store.SaveStudents()

	s.logger.Info("Profile created",
		zap.Int("student_id", student.ID),
		zap.String("email", student.Email),
	)

	return student.ID, nil
}

// EditName меняет отображаемое имя студента.
func (s *ProfileService) EditName(ctx context.Context, studentID int, name string) error {
	student, ok := s.store.Students[studentID]
	if !ok {
		return ErrNoStudent
	}

	student.Name = name
	s.store.SaveStudents()

	s.logger.Info("Profile name updated", zap.Int("student_id", studentID))

	return nil
}

// EditEmail меняет email студента с поддержанием индекса email → id.
func (s *ProfileService) EditEmail(ctx context.Context, studentID int, email string) error {
	if !isValidEmail(email) {
		return ErrBadEmail
	}
	if _, ok := s.store.StudentsByEmail[email]; ok {
		return ErrDupEmail
	}

	student, ok := s.store.Students[studentID]
	if !ok {
		return ErrNoStudent
	}

	delete(s.store.StudentsByEmail, student.Email)
	student.Email = email
	s.store.StudentsByEmail[email] = studentID
	s.store.SaveStudents()

	s.logger.Info("Profile email updated", zap.Int("student_id", studentID))

	return nil
}

// Login возвращает ID студента по email. Пасскод проверяется только если
// у профиля задан хеш: пасскоды — рекомендация, а не защита.
func (s *ProfileService) Login(ctx context.Context, email, passcode string) (int, error) {
	id, ok := s.store.StudentsByEmail[email]
	if !ok {
		return 0, ErrNoSuchUser
	}

	student := s.store.Students[id]
	if student.PassHash != "" {
		if passcode == "" {
			return 0, ErrPasscodeRequired
		}
		if err := bcrypt.CompareHashAndPassword([]byte(student.PassHash), []byte(passcode)); err != nil {
			return 0, ErrBadPasscode
		}
	}

	s.logger.Info("Student logged in", zap.Int("student_id", id))

	return id, nil
}

// Get возвращает студента по ID.
func (s *ProfileService) Get(ctx context.Context, studentID int) (*model.Student, error) {
	student, ok := s.store.Students[studentID]
	if !ok {
		return nil, ErrNoStudent
	}
	return student, nil
}
