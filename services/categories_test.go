package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ToeMom/GroupUp-Final/models"
)

func TestCategoryLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedUser(t, "root", 40, false, true)

	created, err := f.categories.Add(ctx, "root", "hiking")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "hiking", created.Name)

	list, err := f.categories.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, f.categories.Remove(ctx, "root", created.ID))
	err = f.categories.Remove(ctx, "root", created.ID)
	assert.ErrorIs(t, err, models.ErrCategoryNotFound)
}

func TestCategoryAdminGate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedUser(t, "bob", 25, false, false)

	_, err := f.categories.Add(ctx, "bob", "hiking")
	assert.ErrorIs(t, err, models.ErrNotAuthorized)

	_, err = f.categories.Add(ctx, "", "hiking")
	assert.ErrorIs(t, err, models.ErrNotAuthenticated)

	err = f.categories.Remove(ctx, "bob", "whatever")
	assert.ErrorIs(t, err, models.ErrNotAuthorized)
}

func TestCategoryRemovalDoesNotTouchEvents(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedUser(t, "root", 40, false, true)

	cat, err := f.categories.Add(ctx, "root", "games")
	require.NoError(t, err)

	approved := f.seedApproved(t, "alice", func(e *models.Event) { e.Category = "games" })
	require.NoError(t, f.categories.Remove(ctx, "root", cat.ID))

	got, err := f.events.GetApproved(ctx, approved.ID)
	require.NoError(t, err)
	assert.Equal(t, "games", got.Category)
}
