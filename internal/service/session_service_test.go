package service

import (
	"context"
	"testing"

	"github.com/Freeeeeet/studybuddy/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Пара студентов, оба на курсе, у обоих день 2 [14,17) свободен.
func newSessionFixture(t *testing.T) (*testEnv, int, int) {
	t.Helper()
	env := newTestEnv(t)
	org := env.mustStudent(t, "Avery", "avery@example.com")
	inv := env.mustStudent(t, "Jordan", "jordan@example.com")
	env.mustEnroll(t, org, testCourse)
	env.mustEnroll(t, inv, testCourse)
	env.mustSlot(t, org, 2, 14, 17)
	env.mustSlot(t, inv, 2, 14, 17)
	return env, org, inv
}

func TestScheduleSessionValidation(t *testing.T) {
	env, org, inv := newSessionFixture(t)
	ctx := context.Background()

	_, err := env.sessions.ScheduleSession(ctx, org, "bad", 2, 15, []int{inv})
	assert.ErrorIs(t, err, ErrBadCourse)

	_, err = env.sessions.ScheduleSession(ctx, org, testCourse, 7, 15, []int{inv})
	assert.ErrorIs(t, err, ErrBadTime)
	_, err = env.sessions.ScheduleSession(ctx, org, testCourse, 2, 24, []int{inv})
	assert.ErrorIs(t, err, ErrBadTime)

	outsider := env.mustStudent(t, "Riley", "riley@example.com")
	_, err = env.sessions.ScheduleSession(ctx, outsider, testCourse, 2, 15, []int{inv})
	assert.ErrorIs(t, err, ErrNotEnrolledOrg)

	// Час вне доступности организатора — сессия не создаётся
	_, err = env.sessions.ScheduleSession(ctx, org, testCourse, 2, 10, []int{inv})
	assert.ErrorIs(t, err, ErrOutsideAvailOrg)
	assert.Empty(t, env.store.Sessions)

	_, err = env.sessions.ScheduleSession(ctx, org, testCourse, 2, 15, []int{99})
	assert.ErrorIs(t, err, ErrInvID)

	env.mustSlot(t, outsider, 2, 14, 17)
	_, err = env.sessions.ScheduleSession(ctx, org, testCourse, 2, 15, []int{outsider})
	assert.ErrorIs(t, err, ErrInvNotEnrolled)

	// Самоприглашение отбрасывается, список пустеет
	_, err = env.sessions.ScheduleSession(ctx, org, testCourse, 2, 15, []int{org})
	assert.ErrorIs(t, err, ErrNoInvitees)
	_, err = env.sessions.ScheduleSession(ctx, org, testCourse, 2, 15, nil)
	assert.ErrorIs(t, err, ErrNoInvitees)
}

func TestScheduleSessionCreatesProposedWithParticipants(t *testing.T) {
	env, org, inv := newSessionFixture(t)
	ctx := context.Background()

	id, err := env.sessions.ScheduleSession(ctx, org, testCourse, 2, 15, []int{inv, inv})
	require.NoError(t, err)

	sess := env.store.Sessions[id]
	require.NotNil(t, sess)
	assert.Equal(t, model.SessionStatusProposed, sess.Status)
	assert.Equal(t, 1, sess.Duration)
	assert.Equal(t, org, sess.OrganizerID)

	parts := env.sessions.ParticipantsFor(ctx, id)
	require.Len(t, parts, 2, "duplicate invitee must collapse to one record")
	assert.Equal(t, org, parts[0].StudentID)
	assert.Equal(t, inv, parts[1].StudentID)
	assert.False(t, parts[0].Confirmed)
	assert.False(t, parts[1].Confirmed)
}

func TestConfirmSessionClosesTheLoop(t *testing.T) {
	env, org, inv := newSessionFixture(t)
	ctx := context.Background()

	id, err := env.sessions.ScheduleSession(ctx, org, testCourse, 2, 15, []int{inv})
	require.NoError(t, err)

	// Организатор подтвердил — ещё PROPOSED
	require.NoError(t, env.sessions.ConfirmSession(ctx, org, id))
	assert.Equal(t, model.SessionStatusProposed, env.store.Sessions[id].Status)

	// Подтвердил и приглашённый — CONFIRMED
	require.NoError(t, env.sessions.ConfirmSession(ctx, inv, id))
	assert.Equal(t, model.SessionStatusConfirmed, env.store.Sessions[id].Status)

	// Повторное подтверждение не конфликтует с собственной сессией
	require.NoError(t, env.sessions.ConfirmSession(ctx, org, id))
	assert.Equal(t, model.SessionStatusConfirmed, env.store.Sessions[id].Status)
}

func TestConfirmSessionValidation(t *testing.T) {
	env, org, inv := newSessionFixture(t)
	ctx := context.Background()

	assert.ErrorIs(t, env.sessions.ConfirmSession(ctx, org, 42), ErrNoSession)

	id, err := env.sessions.ScheduleSession(ctx, org, testCourse, 2, 15, []int{inv})
	require.NoError(t, err)

	outsider := env.mustStudent(t, "Riley", "riley@example.com")
	assert.ErrorIs(t, env.sessions.ConfirmSession(ctx, outsider, id), ErrNotParticipant)

	// Приглашённый убрал свою доступность — подтверждение перепроверяет её
	removed, err := env.avail.RemoveSlotExact(ctx, inv, 2, 14, 17)
	require.NoError(t, err)
	require.True(t, removed)
	assert.ErrorIs(t, env.sessions.ConfirmSession(ctx, inv, id), ErrOutsideAvail)
}

func TestCancelledSessionIsTerminal(t *testing.T) {
	env, org, inv := newSessionFixture(t)
	ctx := context.Background()

	id, err := env.sessions.ScheduleSession(ctx, org, testCourse, 2, 15, []int{inv})
	require.NoError(t, err)

	require.NoError(t, env.sessions.CancelSession(ctx, inv, id, "conflict came up"))
	sess := env.store.Sessions[id]
	assert.Equal(t, model.SessionStatusCancelled, sess.Status)
	assert.Equal(t, "conflict came up", sess.CancelReason)

	// Подтверждения после отмены всегда отказывают
	assert.ErrorIs(t, env.sessions.ConfirmSession(ctx, org, id), ErrSessionCancelled)
	assert.ErrorIs(t, env.sessions.ConfirmSession(ctx, inv, id), ErrSessionCancelled)
	assert.Equal(t, model.SessionStatusCancelled, env.store.Sessions[id].Status)

	// Повторная отмена разрешена и перезаписывает причину
	require.NoError(t, env.sessions.CancelSession(ctx, org, id, "second reason"))
	assert.Equal(t, "second reason", env.store.Sessions[id].CancelReason)
}

func TestCancelSessionPermissions(t *testing.T) {
	env, org, inv := newSessionFixture(t)
	ctx := context.Background()

	assert.ErrorIs(t, env.sessions.CancelSession(ctx, org, 42, "x"), ErrNoSession)

	id, err := env.sessions.ScheduleSession(ctx, org, testCourse, 2, 15, []int{inv})
	require.NoError(t, err)

	outsider := env.mustStudent(t, "Riley", "riley@example.com")
	assert.ErrorIs(t, env.sessions.CancelSession(ctx, outsider, id, "x"), ErrNotParticipant)

	// Отменить может и CONFIRMED сессию любой участник
	require.NoError(t, env.sessions.ConfirmSession(ctx, org, id))
	require.NoError(t, env.sessions.ConfirmSession(ctx, inv, id))
	require.NoError(t, env.sessions.CancelSession(ctx, inv, id, "changed my mind"))
	assert.Equal(t, model.SessionStatusCancelled, env.store.Sessions[id].Status)
}

func TestConflictRuleCountsOnlyConfirmedSessions(t *testing.T) {
	env, org, inv := newSessionFixture(t)
	ctx := context.Background()

	first, err := env.sessions.ScheduleSession(ctx, org, testCourse, 2, 15, []int{inv})
	require.NoError(t, err)

	// Две PROPOSED сессии на один час не блокируются
	second, err := env.sessions.ScheduleSession(ctx, org, testCourse, 2, 15, []int{inv})
	require.NoError(t, err)

	require.NoError(t, env.sessions.ConfirmSession(ctx, org, first))
	require.NoError(t, env.sessions.ConfirmSession(ctx, inv, first))

	// После подтверждения первой планирование на тот же час конфликтует
	_, err = env.sessions.ScheduleSession(ctx, org, testCourse, 2, 15, []int{inv})
	assert.ErrorIs(t, err, ErrOrgConflict)

	// А подтверждение второй ловит конфликт на этапе confirm
	assert.ErrorIs(t, env.sessions.ConfirmSession(ctx, org, second), ErrTimeConflict)
}

func TestListSessionsForOrdering(t *testing.T) {
	env, org, inv := newSessionFixture(t)
	ctx := context.Background()
	env.mustSlot(t, org, 1, 9, 12)
	env.mustSlot(t, inv, 1, 9, 12)

	late, err := env.sessions.ScheduleSession(ctx, org, testCourse, 2, 15, []int{inv})
	require.NoError(t, err)
	early, err := env.sessions.ScheduleSession(ctx, org, testCourse, 1, 9, []int{inv})
	require.NoError(t, err)
	confirmed, err := env.sessions.ScheduleSession(ctx, org, testCourse, 1, 10, []int{inv})
	require.NoError(t, err)
	require.NoError(t, env.sessions.ConfirmSession(ctx, org, confirmed))
	require.NoError(t, env.sessions.ConfirmSession(ctx, inv, confirmed))
	cancelled, err := env.sessions.ScheduleSession(ctx, org, testCourse, 1, 11, []int{inv})
	require.NoError(t, err)
	require.NoError(t, env.sessions.CancelSession(ctx, org, cancelled, "x"))

	list := env.sessions.ListSessionsFor(ctx, org)
	require.Len(t, list, 4)
	// PROPOSED по (день, час), затем CONFIRMED, затем CANCELLED
	assert.Equal(t, []int{early, late, confirmed, cancelled},
		[]int{list[0].ID, list[1].ID, list[2].ID, list[3].ID})

	proposed := env.sessions.ListSessionsByStatusFor(ctx, org, model.SessionStatusProposed)
	require.Len(t, proposed, 2)
	assert.Equal(t, early, proposed[0].ID)
}

func TestListPendingInvitations(t *testing.T) {
	env, org, inv := newSessionFixture(t)
	ctx := context.Background()
	env.mustSlot(t, org, 1, 9, 12)
	env.mustSlot(t, inv, 1, 9, 12)

	s1, err := env.sessions.ScheduleSession(ctx, org, testCourse, 2, 15, []int{inv})
	require.NoError(t, err)
	s2, err := env.sessions.ScheduleSession(ctx, org, testCourse, 1, 9, []int{inv})
	require.NoError(t, err)

	pending := env.sessions.ListPendingInvitationsFor(ctx, inv)
	require.Len(t, pending, 2)
	assert.Equal(t, s2, pending[0].ID, "sorted by day first")
	assert.Equal(t, s1, pending[1].ID)

	// Подтверждённое приглашение из списка уходит
	require.NoError(t, env.sessions.ConfirmSession(ctx, inv, s2))
	pending = env.sessions.ListPendingInvitationsFor(ctx, inv)
	require.Len(t, pending, 1)
	assert.Equal(t, s1, pending[0].ID)

	// Отменённая сессия тоже не приглашение
	require.NoError(t, env.sessions.CancelSession(ctx, org, s1, "x"))
	assert.Empty(t, env.sessions.ListPendingInvitationsFor(ctx, inv))
}
