package memory

import (
	"context"

	"github.com/ToeMom/GroupUp-Final/models"
)

type CommentStore struct {
	d *data
}

func (s *CommentStore) Insert(_ context.Context, comment *models.Comment) (*models.Comment, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()

	c := *comment
	c.ID = newID()
	s.d.comments[c.ID] = c
	out := c
	return &out, nil
}

func (s *CommentStore) Get(_ context.Context, id string) (*models.Comment, error) {
	s.d.mu.RLock()
	defer s.d.mu.RUnlock()

	c, ok := s.d.comments[id]
	if !ok {
		return nil, models.ErrCommentNotFound
	}
	out := c
	return &out, nil
}

func (s *CommentStore) Delete(_ context.Context, id string) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()

	if _, ok := s.d.comments[id]; !ok {
		return models.ErrCommentNotFound
	}
	delete(s.d.comments, id)
	return nil
}

func (s *CommentStore) ListTopLevel(_ context.Context, eventID string) ([]models.Comment, error) {
	return s.filter(func(c models.Comment) bool {
		return c.EventID == eventID && c.ParentCommentID == ""
	}), nil
}

func (s *CommentStore) ListReplies(_ context.Context, parentCommentID string) ([]models.Comment, error) {
	return s.filter(func(c models.Comment) bool {
		return c.ParentCommentID == parentCommentID
	}), nil
}

func (s *CommentStore) ListByEvent(_ context.Context, eventID string) ([]models.Comment, error) {
	return s.filter(func(c models.Comment) bool {
		return c.EventID == eventID
	}), nil
}

func (s *CommentStore) filter(keep func(models.Comment) bool) []models.Comment {
	s.d.mu.RLock()
	defer s.d.mu.RUnlock()

	out := []models.Comment{}
	for _, c := range s.d.comments {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}
