package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ToeMom/GroupUp-Final/models"
	"github.com/ToeMom/GroupUp-Final/store"
)

// CommentService manages the single-level comment threads under events.
type CommentService struct {
	comments store.CommentStore
	events   store.EventStore
	users    store.UserStore
}

func NewCommentService(comments store.CommentStore, events store.EventStore, users store.UserStore) *CommentService {
	return &CommentService{comments: comments, events: events, users: users}
}

// Add creates a comment or a reply. A reply must reference an existing
// top-level comment; replies to replies are not modeled. The author id and
// creation stamp come from the verified caller, not the request body.
func (s *CommentService) Add(ctx context.Context, callerID string, comment *models.Comment) (*models.Comment, error) {
	if callerID == "" {
		return nil, models.ErrNotAuthenticated
	}
	if comment.Text == "" {
		return nil, fmt.Errorf("%w: text is required", models.ErrInvalidInput)
	}
	if comment.EventID == "" {
		return nil, fmt.Errorf("%w: eventId is required", models.ErrInvalidInput)
	}

	if comment.ParentCommentID != "" {
		parent, err := s.comments.Get(ctx, comment.ParentCommentID)
		if err != nil {
			return nil, err
		}
		if parent.ParentCommentID != "" {
			return nil, fmt.Errorf("%w: replies may only target top-level comments", models.ErrInvalidInput)
		}
	}

	comment.UserID = callerID
	comment.CreatedAt = time.Now().Format(time.RFC3339)
	if comment.Username == "" {
		if user, err := s.users.Get(ctx, callerID); err == nil {
			comment.Username = user.Name
		}
	}

	return s.comments.Insert(ctx, comment)
}

// Delete removes a single comment. Allowed for the comment's author and for
// the creator of the event the comment sits under; the event is fetched here
// rather than trusting a caller-supplied creator id. Replies of a deleted
// top-level comment are left in place.
func (s *CommentService) Delete(ctx context.Context, callerID, commentID string) error {
	if callerID == "" {
		return models.ErrNotAuthenticated
	}

	comment, err := s.comments.Get(ctx, commentID)
	if err != nil {
		return err
	}

	allowed := comment.UserID == callerID
	if !allowed {
		event, err := s.events.GetApproved(ctx, comment.EventID)
		if err != nil && !errors.Is(err, models.ErrEventNotFound) {
			return err
		}
		allowed = err == nil && event.CreatedBy == callerID
	}
	if !allowed {
		return models.ErrNotAuthorized
	}

	if err := s.comments.Delete(ctx, commentID); err != nil {
		return err
	}
	logrus.Infof("comment %s deleted by %s", commentID, callerID)
	return nil
}

// ListTopLevel returns the comments of an event that have no parent.
func (s *CommentService) ListTopLevel(ctx context.Context, eventID string) ([]models.Comment, error) {
	return s.comments.ListTopLevel(ctx, eventID)
}

// ListReplies returns the replies under one top-level comment.
func (s *CommentService) ListReplies(ctx context.Context, parentCommentID string) ([]models.Comment, error) {
	return s.comments.ListReplies(ctx, parentCommentID)
}
