package services

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ToeMom/GroupUp-Final/models"
	"github.com/ToeMom/GroupUp-Final/store"
)

// profileCooldown is the rolling window during which a profile may be edited
// only once.
const profileCooldown = 30 * 24 * time.Hour

// UserService is the user directory: profiles, role grants, the edit cooldown.
type UserService struct {
	users store.UserStore
}

func NewUserService(users store.UserStore) *UserService {
	return &UserService{users: users}
}

// CreateProfile writes the caller's own profile. The role flags are forced
// false regardless of input; privilege cannot be self-granted.
func (s *UserService) CreateProfile(ctx context.Context, callerID string, user *models.User) (*models.User, error) {
	if callerID == "" {
		return nil, models.ErrNotAuthenticated
	}

	user.ID = callerID
	user.Admin = false
	user.Moderator = false
	return s.users.Upsert(ctx, user)
}

// Update edits a profile. Owner or admin only; owners are held to the 30-day
// cooldown measured from lastProfileUpdate, admins are not. Every successful
// update restamps lastProfileUpdate.
func (s *UserService) Update(ctx context.Context, callerID, targetID string, patch *models.UserPatch) (*models.User, error) {
	if callerID == "" {
		return nil, models.ErrNotAuthenticated
	}

	target, err := s.users.Get(ctx, targetID)
	if err != nil {
		return nil, err
	}

	admin := false
	if callerID != targetID {
		caller, err := s.users.Get(ctx, callerID)
		if err != nil {
			if errors.Is(err, models.ErrUserNotFound) {
				return nil, models.ErrNotAuthorized
			}
			return nil, err
		}
		if !caller.Admin {
			return nil, models.ErrNotAuthorized
		}
		admin = true
	}

	if !admin && target.LastProfileUpdate != "" {
		last, parseErr := time.Parse(time.RFC3339, target.LastProfileUpdate)
		if parseErr == nil && time.Since(last) < profileCooldown {
			return nil, models.ErrProfileCooldown
		}
	}

	return s.users.Update(ctx, targetID, patch, time.Now().Format(time.RFC3339))
}

// AssignModerator grants the moderator flag. Admin only.
func (s *UserService) AssignModerator(ctx context.Context, callerID, targetID string) (*models.User, error) {
	if err := s.requireAdmin(ctx, callerID); err != nil {
		return nil, err
	}
	user, err := s.users.SetModerator(ctx, targetID, true)
	if err != nil {
		return nil, err
	}
	logrus.Infof("user %s granted moderator by %s", targetID, callerID)
	return user, nil
}

// RemoveModerator revokes the moderator flag. Admin only.
func (s *UserService) RemoveModerator(ctx context.Context, callerID, targetID string) (*models.User, error) {
	if err := s.requireAdmin(ctx, callerID); err != nil {
		return nil, err
	}
	user, err := s.users.SetModerator(ctx, targetID, false)
	if err != nil {
		return nil, err
	}
	logrus.Infof("user %s moderator revoked by %s", targetID, callerID)
	return user, nil
}

// Delete removes a profile. Owner or admin only.
func (s *UserService) Delete(ctx context.Context, callerID, targetID string) error {
	if callerID == "" {
		return models.ErrNotAuthenticated
	}
	if callerID != targetID {
		if err := s.requireAdmin(ctx, callerID); err != nil {
			return err
		}
	}
	return s.users.Delete(ctx, targetID)
}

func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	return s.users.Get(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

// IsAdmin reports whether the caller resolves to a stored admin profile.
func (s *UserService) IsAdmin(ctx context.Context, callerID string) bool {
	if callerID == "" {
		return false
	}
	user, err := s.users.Get(ctx, callerID)
	return err == nil && user.Admin
}

// requireAdmin mirrors the original's admin gate: a missing caller profile is
// NotFound, a non-admin one NotAuthorized.
func (s *UserService) requireAdmin(ctx context.Context, callerID string) error {
	if callerID == "" {
		return models.ErrNotAuthenticated
	}
	caller, err := s.users.Get(ctx, callerID)
	if err != nil {
		return err
	}
	if !caller.Admin {
		return models.ErrNotAuthorized
	}
	return nil
}
