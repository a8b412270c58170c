// Package services holds the domain engines: the event workflow, the comment
// threads, the user directory, the category registry and the expiry sweeper.
// Every rule about who may do what lives here; controllers only translate
// HTTP to these calls.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ToeMom/GroupUp-Final/cache"
	"github.com/ToeMom/GroupUp-Final/models"
	"github.com/ToeMom/GroupUp-Final/store"
)

// EventService drives an event through its moderation lifecycle and guards the
// participant roster.
type EventService struct {
	events   store.EventStore
	users    store.UserStore
	comments store.CommentStore
	cache    *cache.EventCache
}

func NewEventService(events store.EventStore, users store.UserStore, comments store.CommentStore, c *cache.EventCache) *EventService {
	return &EventService{events: events, users: users, comments: comments, cache: c}
}

// Create validates the proposal and inserts it into the waiting collection.
// The roster always starts empty and the creation stamp is taken server-side.
func (s *EventService) Create(ctx context.Context, callerID string, event *models.Event) (*models.Event, error) {
	if callerID == "" {
		return nil, models.ErrNotAuthenticated
	}
	if event.Title == "" {
		return nil, fmt.Errorf("%w: title is required", models.ErrInvalidInput)
	}
	if _, err := models.ParseEventDate(event.Date); err != nil {
		return nil, err
	}
	if event.MaxParticipants <= 0 {
		return nil, fmt.Errorf("%w: maxParticipants must be positive", models.ErrInvalidInput)
	}
	if event.AgeMin < 0 || event.AgeMax < 0 {
		return nil, fmt.Errorf("%w: age bounds must not be negative", models.ErrInvalidInput)
	}
	if event.AgeMax > 0 && event.AgeMin > event.AgeMax {
		return nil, fmt.Errorf("%w: ageMin exceeds ageMax", models.ErrInvalidInput)
	}

	now := time.Now()
	event.CreatedBy = callerID
	event.CreatedDate = now.Format("02/01/2006")
	event.CreatedTime = now.Format("15:04:05")
	event.Participants = []string{}
	event.ApprovedBy, event.ApprovedAt = "", ""
	event.ReviewedBy, event.ReviewedAt, event.Reason = "", "", ""

	created, err := s.events.InsertWaiting(ctx, event)
	if err != nil {
		return nil, err
	}
	logrus.Infof("event %s created by %s, waiting for review", created.ID, callerID)
	return created, nil
}

// Approve moves a waiting event into the approved collection. The copy gets a
// fresh id; callers must not assume id stability across the transition.
func (s *EventService) Approve(ctx context.Context, callerID, eventID string) (*models.Event, error) {
	if err := s.requireModerator(ctx, callerID); err != nil {
		return nil, err
	}

	approved, err := s.events.MoveWaitingToApproved(ctx, eventID, callerID, time.Now().Format(time.RFC3339))
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)
	logrus.Infof("event %s approved as %s by %s", eventID, approved.ID, callerID)
	return approved, nil
}

// Reject moves a waiting event into the rejected collection with the review
// stamp and the supplied reason, which may be empty.
func (s *EventService) Reject(ctx context.Context, callerID, eventID, reason string) error {
	if err := s.requireModerator(ctx, callerID); err != nil {
		return err
	}

	if err := s.events.MoveWaitingToRejected(ctx, eventID, callerID, time.Now().Format(time.RFC3339), reason); err != nil {
		return err
	}
	logrus.Infof("event %s rejected by %s", eventID, callerID)
	return nil
}

// DeleteApproved removes an approved event together with its comments. Only
// the creator or an admin may delete. The returned slice names the comments
// that were actually removed; if any comment delete fails the event itself is
// left in place so the caller sees the partial result.
func (s *EventService) DeleteApproved(ctx context.Context, callerID, eventID string) ([]string, error) {
	event, err := s.events.GetApproved(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if err := s.requireOwnerOrAdmin(ctx, callerID, event.CreatedBy); err != nil {
		return nil, err
	}

	comments, err := s.comments.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	deleted := []string{}
	var failed error
	for _, c := range comments {
		if err := s.comments.Delete(ctx, c.ID); err != nil {
			if errorsIsNotFound(err) {
				continue
			}
			failed = err
			break
		}
		deleted = append(deleted, c.ID)
	}
	if failed != nil {
		return deleted, fmt.Errorf("comment cleanup incomplete (%d removed): %w", len(deleted), failed)
	}

	if err := s.events.DeleteApproved(ctx, eventID); err != nil {
		return deleted, err
	}
	s.cache.Invalidate(ctx)
	logrus.Infof("event %s deleted by %s with %d comments", eventID, callerID, len(deleted))
	return deleted, nil
}

// Expire deletes a single approved event without touching its comments.
func (s *EventService) Expire(ctx context.Context, callerID, eventID string) error {
	if err := s.requireModerator(ctx, callerID); err != nil {
		return err
	}
	if err := s.events.DeleteApproved(ctx, eventID); err != nil {
		return err
	}
	s.cache.Invalidate(ctx)
	logrus.Infof("event %s expired by %s", eventID, callerID)
	return nil
}

// Join adds the caller to the roster of an approved event. Capacity and the
// duplicate check are enforced atomically by the store; the age range is
// checked against the caller's stored profile, never client input.
func (s *EventService) Join(ctx context.Context, callerID, eventID string) (*models.Event, error) {
	if callerID == "" {
		return nil, models.ErrNotAuthenticated
	}

	event, err := s.events.GetApproved(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.AgeMin > 0 || event.AgeMax > 0 {
		user, err := s.users.Get(ctx, callerID)
		if err != nil {
			return nil, err
		}
		if event.AgeMin > 0 && user.Age < event.AgeMin {
			return nil, models.ErrAgeRestricted
		}
		if event.AgeMax > 0 && user.Age > event.AgeMax {
			return nil, models.ErrAgeRestricted
		}
	}

	updated, err := s.events.AddParticipant(ctx, eventID, callerID)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)
	return updated, nil
}

// Leave removes the caller from the roster.
func (s *EventService) Leave(ctx context.Context, callerID, eventID string) (*models.Event, error) {
	if callerID == "" {
		return nil, models.ErrNotAuthenticated
	}

	updated, err := s.events.RemoveParticipant(ctx, eventID, callerID)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)
	return updated, nil
}

// Update overwrites the supplied fields of an approved event. Creator or
// admin only.
func (s *EventService) Update(ctx context.Context, callerID, eventID string, patch *models.EventPatch) (*models.Event, error) {
	event, err := s.events.GetApproved(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if err := s.requireOwnerOrAdmin(ctx, callerID, event.CreatedBy); err != nil {
		return nil, err
	}

	if patch.Date != nil {
		if _, err := models.ParseEventDate(*patch.Date); err != nil {
			return nil, err
		}
	}
	if patch.MaxParticipants != nil && *patch.MaxParticipants <= 0 {
		return nil, fmt.Errorf("%w: maxParticipants must be positive", models.ErrInvalidInput)
	}

	updated, err := s.events.UpdateApproved(ctx, eventID, patch)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)
	return updated, nil
}

// DeleteRejected removes a rejected event. Only its original creator may.
func (s *EventService) DeleteRejected(ctx context.Context, callerID, eventID string) error {
	if callerID == "" {
		return models.ErrNotAuthenticated
	}

	event, err := s.events.GetRejected(ctx, eventID)
	if err != nil {
		return err
	}
	if event.CreatedBy != callerID {
		return models.ErrNotAuthorized
	}
	return s.events.DeleteRejected(ctx, eventID)
}

func (s *EventService) GetApproved(ctx context.Context, eventID string) (*models.Event, error) {
	return s.events.GetApproved(ctx, eventID)
}

// ListApprovedPage returns approved events ordered by date ascending, served
// from the redis snapshot when one is fresh.
func (s *EventService) ListApprovedPage(ctx context.Context, limit, offset int) ([]models.Event, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	if events, ok := s.cache.GetPage(ctx, limit, offset); ok {
		return events, nil
	}
	events, err := s.events.ListApproved(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	s.cache.SetPage(ctx, limit, offset, events)
	return events, nil
}

func (s *EventService) ListAllApproved(ctx context.Context) ([]models.Event, error) {
	if events, ok := s.cache.GetAll(ctx); ok {
		return events, nil
	}
	events, err := s.events.ListAllApproved(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetAll(ctx, events)
	return events, nil
}

func (s *EventService) ListByCreator(ctx context.Context, userID string) ([]models.Event, error) {
	return s.events.ListApprovedByCreator(ctx, userID)
}

func (s *EventService) ListWaiting(ctx context.Context, callerID string) ([]models.Event, error) {
	if callerID == "" {
		return nil, models.ErrNotAuthenticated
	}
	return s.events.ListWaiting(ctx)
}

func (s *EventService) ListWaitingByCreator(ctx context.Context, callerID, userID string) ([]models.Event, error) {
	if callerID == "" {
		return nil, models.ErrNotAuthenticated
	}
	return s.events.ListWaitingByCreator(ctx, userID)
}

func (s *EventService) ListRejectedByCreator(ctx context.Context, callerID, userID string) ([]models.Event, error) {
	if callerID == "" {
		return nil, models.ErrNotAuthenticated
	}
	return s.events.ListRejectedByCreator(ctx, userID)
}

// requireModerator resolves the caller against the user directory; a stored
// moderator or admin flag is required, never a client-supplied one.
func (s *EventService) requireModerator(ctx context.Context, callerID string) error {
	if callerID == "" {
		return models.ErrNotAuthenticated
	}
	user, err := s.users.Get(ctx, callerID)
	if err != nil {
		if errorsIsNotFound(err) {
			return models.ErrNotAuthorized
		}
		return err
	}
	if !user.Moderator && !user.Admin {
		return models.ErrNotAuthorized
	}
	return nil
}

func (s *EventService) requireOwnerOrAdmin(ctx context.Context, callerID, ownerID string) error {
	if callerID == "" {
		return models.ErrNotAuthenticated
	}
	if callerID == ownerID {
		return nil
	}
	user, err := s.users.Get(ctx, callerID)
	if err != nil {
		if errorsIsNotFound(err) {
			return models.ErrNotAuthorized
		}
		return err
	}
	if !user.Admin {
		return models.ErrNotAuthorized
	}
	return nil
}
