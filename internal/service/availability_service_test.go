package service

import (
	"context"
	"testing"

	"github.com/Freeeeeet/studybuddy/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddSlotRejectsBadRange(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	id := env.mustStudent(t, "Avery", "avery@example.com")

	assert.ErrorIs(t, env.avail.AddSlot(ctx, id, 7, 9, 11), ErrBadRange)
	assert.ErrorIs(t, env.avail.AddSlot(ctx, id, -1, 9, 11), ErrBadRange)
	assert.ErrorIs(t, env.avail.AddSlot(ctx, id, 2, 11, 11), ErrBadRange)
	assert.ErrorIs(t, env.avail.AddSlot(ctx, id, 2, 12, 9), ErrBadRange)
	assert.ErrorIs(t, env.avail.AddSlot(ctx, id, 2, 9, 25), ErrBadRange)
	assert.ErrorIs(t, env.avail.AddSlot(ctx, id, 2, -1, 9), ErrBadRange)

	assert.Empty(t, env.avail.ListSlots(ctx, id))
}

func TestAddSlotIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	id := env.mustStudent(t, "Avery", "avery@example.com")

	env.mustSlot(t, id, 2, 9, 11)
	env.mustSlot(t, id, 2, 9, 11)

	slots := env.avail.ListSlots(ctx, id)
	require.Len(t, slots, 1)
	assert.Equal(t, model.AvailabilitySlot{StudentID: id, Day: 2, Start: 9, End: 11}, slots[0])
}

func TestAddSlotMergesTouchingIntervals(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	id := env.mustStudent(t, "Avery", "avery@example.com")

	env.mustSlot(t, id, 2, 9, 11)
	env.mustSlot(t, id, 2, 11, 13)

	slots := env.avail.ListSlots(ctx, id)
	require.Len(t, slots, 1)
	assert.Equal(t, 9, slots[0].Start)
	assert.Equal(t, 13, slots[0].End)
}

func TestAddSlotMergesOverlapAndSubsumption(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	id := env.mustStudent(t, "Avery", "avery@example.com")

	env.mustSlot(t, id, 3, 10, 14)
	env.mustSlot(t, id, 3, 12, 16)
	env.mustSlot(t, id, 3, 11, 12) // целиком внутри, ничего не меняет

	slots := env.avail.ListSlots(ctx, id)
	require.Len(t, slots, 1)
	assert.Equal(t, 10, slots[0].Start)
	assert.Equal(t, 16, slots[0].End)
}

func TestAddSlotKeepsGapsAndDaysSeparate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	id := env.mustStudent(t, "Avery", "avery@example.com")

	env.mustSlot(t, id, 2, 9, 10)
	env.mustSlot(t, id, 2, 11, 12)
	env.mustSlot(t, id, 1, 9, 12) // другой день не сливается

	slots := env.avail.ListSlots(ctx, id)
	require.Len(t, slots, 3)
	assert.Equal(t, 1, slots[0].Day)
	assert.Equal(t, 2, slots[1].Day)
	assert.Equal(t, 10, slots[1].End)
	assert.Equal(t, 11, slots[2].Start)
}

func TestContainsRequiresFullCoverage(t *testing.T) {
	env := newTestEnv(t)
	id := env.mustStudent(t, "Avery", "avery@example.com")

	env.mustSlot(t, id, 2, 9, 10)
	env.mustSlot(t, id, 2, 14, 17)

	assert.False(t, env.avail.Contains(id, 2, 10, 11), "slot [9,10) must not satisfy [10,11)")
	assert.True(t, env.avail.Contains(id, 2, 14, 15))
	assert.True(t, env.avail.Contains(id, 2, 16, 17))
	assert.False(t, env.avail.Contains(id, 2, 16, 18), "partial overlap is not containment")
	assert.False(t, env.avail.Contains(id, 3, 14, 15), "wrong day")
}

func TestRemoveSlotExact(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	id := env.mustStudent(t, "Avery", "avery@example.com")

	env.mustSlot(t, id, 2, 9, 11)
	env.mustSlot(t, id, 2, 11, 13) // слилось в [9,13)

	removed, err := env.avail.RemoveSlotExact(ctx, id, 2, 9, 11)
	require.NoError(t, err)
	assert.False(t, removed, "sub-range of a merged slot is not removable")

	removed, err = env.avail.RemoveSlotExact(ctx, id, 2, 9, 13)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Empty(t, env.avail.ListSlots(ctx, id))
}

func TestListSlotsOrderedByDayThenStart(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	id := env.mustStudent(t, "Avery", "avery@example.com")

	env.mustSlot(t, id, 5, 8, 9)
	env.mustSlot(t, id, 0, 14, 15)
	env.mustSlot(t, id, 5, 6, 7)

	slots := env.avail.ListSlots(ctx, id)
	require.Len(t, slots, 3)
	assert.Equal(t, []int{0, 5, 5}, []int{slots[0].Day, slots[1].Day, slots[2].Day})
	assert.Equal(t, 6, slots[1].Start)
	assert.Equal(t, 8, slots[2].Start)
}
