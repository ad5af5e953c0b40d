package service

import (
	"context"
	"testing"

	"github.com/Freeeeeet/studybuddy/internal/repository"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testEnv struct {
	store    *repository.Store
	profiles *ProfileService
	courses  *CourseService
	avail    *AvailabilityService
	matches  *MatchService
	sessions *SessionService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := zap.NewNop()
	store, err := repository.NewStore(t.TempDir(), logger)
	require.NoError(t, err)

	courses := NewCourseService(store, logger)
	avail := NewAvailabilityService(store, logger)

	return &testEnv{
		store:    store,
		profiles: NewProfileService(store, logger),
		courses:  courses,
		avail:    avail,
		matches:  NewMatchService(store, courses, logger),
		sessions: NewSessionService(store, courses, avail, logger),
	}
}

func (e *testEnv) mustStudent(t *testing.T, name, email string) int {
	t.Helper()
	id, err := e.profiles.CreateProfile(context.Background(), name, email, "")
	require.NoError(t, err)
	return id
}

func (e *testEnv) mustEnroll(t *testing.T, studentID int, course string) {
	t.Helper()
	require.NoError(t, e.courses.AddCourse(context.Background(), studentID, course))
}

func (e *testEnv) mustSlot(t *testing.T, studentID, day, start, end int) {
	t.Helper()
	require.NoError(t, e.avail.AddSlot(context.Background(), studentID, day, start, end))
}
