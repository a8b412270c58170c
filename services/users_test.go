package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ToeMom/GroupUp-Final/models"
)

func TestCreateProfileForcesRolesOff(t *testing.T) {
	f := newFixture(t)

	created, err := f.users.CreateProfile(context.Background(), "alice", &models.User{
		ID:        "forged-id",
		Name:      "Alice",
		Age:       28,
		Email:     "alice@example.com",
		Admin:     true,
		Moderator: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", created.ID)
	assert.False(t, created.Admin)
	assert.False(t, created.Moderator)
}

func TestUpdateProfileCooldown(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.users.CreateProfile(ctx, "alice", &models.User{Name: "Alice", Age: 28})
	require.NoError(t, err)

	name := "Alice B"
	updated, err := f.users.Update(ctx, "alice", "alice", &models.UserPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Alice B", updated.Name)
	assert.NotEmpty(t, updated.LastProfileUpdate)

	// A second edit inside the 30-day window is refused.
	_, err = f.users.Update(ctx, "alice", "alice", &models.UserPatch{Name: &name})
	assert.ErrorIs(t, err, models.ErrProfileCooldown)
}

func TestUpdateProfileAfterCooldown(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	stale := time.Now().Add(-31 * 24 * time.Hour).Format(time.RFC3339)
	_, err := f.store.Users.Upsert(ctx, &models.User{
		ID:                "alice",
		Name:              "Alice",
		LastProfileUpdate: stale,
	})
	require.NoError(t, err)

	name := "Alice C"
	updated, err := f.users.Update(ctx, "alice", "alice", &models.UserPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Alice C", updated.Name)
	assert.NotEqual(t, stale, updated.LastProfileUpdate)
}

func TestAdminBypassesCooldown(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.seedUser(t, "root", 40, false, true)
	recent := time.Now().Format(time.RFC3339)
	_, err := f.store.Users.Upsert(ctx, &models.User{
		ID:                "alice",
		Name:              "Alice",
		LastProfileUpdate: recent,
	})
	require.NoError(t, err)

	name := "Renamed by admin"
	updated, err := f.users.Update(ctx, "root", "alice", &models.UserPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Renamed by admin", updated.Name)
}

func TestUpdateProfileAuthorization(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.seedUser(t, "alice", 28, false, false)
	f.seedUser(t, "bob", 25, false, false)

	name := "hijacked"
	_, err := f.users.Update(ctx, "bob", "alice", &models.UserPatch{Name: &name})
	assert.ErrorIs(t, err, models.ErrNotAuthorized)

	_, err = f.users.Update(ctx, "", "alice", &models.UserPatch{Name: &name})
	assert.ErrorIs(t, err, models.ErrNotAuthenticated)

	_, err = f.users.Update(ctx, "alice", "missing", &models.UserPatch{Name: &name})
	assert.ErrorIs(t, err, models.ErrUserNotFound)
}

func TestModeratorGrantIsAdminOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.seedUser(t, "root", 40, false, true)
	f.seedUser(t, "bob", 25, false, false)
	f.seedUser(t, "carol", 30, false, false)

	_, err := f.users.AssignModerator(ctx, "bob", "carol")
	assert.ErrorIs(t, err, models.ErrNotAuthorized)

	// A caller without a stored profile surfaces as not found.
	_, err = f.users.AssignModerator(ctx, "ghost", "carol")
	assert.ErrorIs(t, err, models.ErrUserNotFound)

	granted, err := f.users.AssignModerator(ctx, "root", "carol")
	require.NoError(t, err)
	assert.True(t, granted.Moderator)

	revoked, err := f.users.RemoveModerator(ctx, "root", "carol")
	require.NoError(t, err)
	assert.False(t, revoked.Moderator)
}

func TestDeleteUserAuthorization(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.seedUser(t, "root", 40, false, true)
	f.seedUser(t, "alice", 28, false, false)
	f.seedUser(t, "bob", 25, false, false)

	err := f.users.Delete(ctx, "bob", "alice")
	assert.ErrorIs(t, err, models.ErrNotAuthorized)

	require.NoError(t, f.users.Delete(ctx, "alice", "alice"))
	require.NoError(t, f.users.Delete(ctx, "root", "bob"))

	_, err = f.users.Get(ctx, "alice")
	assert.ErrorIs(t, err, models.ErrUserNotFound)
}

func TestIsAdmin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.seedUser(t, "root", 40, false, true)
	f.seedUser(t, "bob", 25, false, false)

	assert.True(t, f.users.IsAdmin(ctx, "root"))
	assert.False(t, f.users.IsAdmin(ctx, "bob"))
	assert.False(t, f.users.IsAdmin(ctx, ""))
	assert.False(t, f.users.IsAdmin(ctx, "ghost"))
}
