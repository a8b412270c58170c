package memory

import (
	"context"

	"github.com/ToeMom/GroupUp-Final/models"
)

type CategoryStore struct {
	d *data
}

func (s *CategoryStore) Insert(_ context.Context, name string) (*models.Category, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()

	c := models.Category{ID: newID(), Name: name}
	s.d.categories[c.ID] = c
	out := c
	return &out, nil
}

func (s *CategoryStore) Delete(_ context.Context, id string) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()

	if _, ok := s.d.categories[id]; !ok {
		return models.ErrCategoryNotFound
	}
	delete(s.d.categories, id)
	return nil
}

func (s *CategoryStore) List(_ context.Context) ([]models.Category, error) {
	s.d.mu.RLock()
	defer s.d.mu.RUnlock()

	out := []models.Category{}
	for _, c := range s.d.categories {
		out = append(out, c)
	}
	return out, nil
}
