package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ToeMom/GroupUp-Final/models"
)

func (f *fixture) seedApprovedRaw(t *testing.T, title, date string) *models.Event {
	t.Helper()
	created, err := f.store.Events.InsertWaiting(context.Background(), &models.Event{
		Title:           title,
		Date:            date,
		MaxParticipants: 5,
		CreatedBy:       "alice",
	})
	require.NoError(t, err)
	approved, err := f.store.Events.MoveWaitingToApproved(context.Background(), created.ID, "mod", "")
	require.NoError(t, err)
	return approved
}

func TestSweepRemovesOnlyPastEvents(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	past := f.seedApprovedRaw(t, "yesterday", futureDate(-1))
	longGone := f.seedApprovedRaw(t, "last month", futureDate(-30))
	today := f.seedApprovedRaw(t, "today", futureDate(0))
	upcoming := f.seedApprovedRaw(t, "next week", futureDate(7))

	result, err := f.sweeper.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Count)
	assert.ElementsMatch(t, []string{past.ID, longGone.ID}, result.DeletedIDs)

	// Today's event stays; the sweep deletes strictly-before-today only.
	_, err = f.events.GetApproved(ctx, today.ID)
	require.NoError(t, err)
	_, err = f.events.GetApproved(ctx, upcoming.ID)
	require.NoError(t, err)
}

func TestSweepIsIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.seedApprovedRaw(t, "gone", futureDate(-2))

	first, err := f.sweeper.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Count)

	second, err := f.sweeper.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Count)
	assert.Empty(t, second.DeletedIDs)
}

func TestSweepSkipsUnparseableDates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	odd := f.seedApprovedRaw(t, "odd date", "sometime soon")

	result, err := f.sweeper.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Count)

	_, err = f.events.GetApproved(ctx, odd.ID)
	require.NoError(t, err)
}

func TestSweepAsRequiresAdmin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.seedUser(t, "root", 40, false, true)
	f.seedUser(t, "mod", 30, true, false)
	f.seedApprovedRaw(t, "stale", futureDate(-1))

	_, err := f.sweeper.SweepAs(ctx, "mod")
	assert.ErrorIs(t, err, models.ErrNotAuthorized)

	_, err = f.sweeper.SweepAs(ctx, "ghost")
	assert.ErrorIs(t, err, models.ErrNotAuthorized)

	_, err = f.sweeper.SweepAs(ctx, "")
	assert.ErrorIs(t, err, models.ErrNotAuthenticated)

	result, err := f.sweeper.SweepAs(ctx, "root")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Count)
}
