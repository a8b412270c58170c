package memory

import (
	"context"

	"github.com/ToeMom/GroupUp-Final/models"
)

type UserStore struct {
	d *data
}

func (s *UserStore) Upsert(_ context.Context, user *models.User) (*models.User, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()

	u := *user
	s.d.users[u.ID] = u
	out := u
	return &out, nil
}

func (s *UserStore) Get(_ context.Context, id string) (*models.User, error) {
	s.d.mu.RLock()
	defer s.d.mu.RUnlock()

	u, ok := s.d.users[id]
	if !ok {
		return nil, models.ErrUserNotFound
	}
	out := u
	return &out, nil
}

func (s *UserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	s.d.mu.RLock()
	defer s.d.mu.RUnlock()

	for _, u := range s.d.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, models.ErrUserNotFound
}

func (s *UserStore) Update(_ context.Context, id string, patch *models.UserPatch, lastProfileUpdate string) (*models.User, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()

	u, ok := s.d.users[id]
	if !ok {
		return nil, models.ErrUserNotFound
	}

	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.Age != nil {
		u.Age = *patch.Age
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.ProfileImage != nil {
		u.ProfileImage = *patch.ProfileImage
	}
	if patch.NotificationsEnabled != nil {
		u.NotificationsEnabled = *patch.NotificationsEnabled
	}
	if patch.Rating != nil {
		u.Rating = *patch.Rating
	}
	u.LastProfileUpdate = lastProfileUpdate

	s.d.users[id] = u
	out := u
	return &out, nil
}

func (s *UserStore) SetModerator(_ context.Context, id string, moderator bool) (*models.User, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()

	u, ok := s.d.users[id]
	if !ok {
		return nil, models.ErrUserNotFound
	}
	u.Moderator = moderator
	s.d.users[id] = u
	out := u
	return &out, nil
}

func (s *UserStore) Delete(_ context.Context, id string) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()

	if _, ok := s.d.users[id]; !ok {
		return models.ErrUserNotFound
	}
	delete(s.d.users, id)
	return nil
}

func (s *UserStore) List(_ context.Context) ([]models.User, error) {
	s.d.mu.RLock()
	defer s.d.mu.RUnlock()

	out := []models.User{}
	for _, u := range s.d.users {
		out = append(out, u)
	}
	return out, nil
}
