package services

import (
	"context"
	"fmt"

	"github.com/ToeMom/GroupUp-Final/models"
	"github.com/ToeMom/GroupUp-Final/store"
)

// CategoryService is the admin-managed registry of event categories.
// Category names are advisory for events; nothing cascades on removal.
type CategoryService struct {
	categories store.CategoryStore
	users      store.UserStore
}

func NewCategoryService(categories store.CategoryStore, users store.UserStore) *CategoryService {
	return &CategoryService{categories: categories, users: users}
}

func (s *CategoryService) Add(ctx context.Context, callerID, name string) (*models.Category, error) {
	if err := s.requireAdmin(ctx, callerID); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", models.ErrInvalidInput)
	}
	return s.categories.Insert(ctx, name)
}

func (s *CategoryService) Remove(ctx context.Context, callerID, categoryID string) error {
	if err := s.requireAdmin(ctx, callerID); err != nil {
		return err
	}
	return s.categories.Delete(ctx, categoryID)
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.categories.List(ctx)
}

func (s *CategoryService) requireAdmin(ctx context.Context, callerID string) error {
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
