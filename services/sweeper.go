package services

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ToeMom/GroupUp-Final/cache"
	"github.com/ToeMom/GroupUp-Final/models"
	"github.com/ToeMom/GroupUp-Final/store"
)

// SweeperService deletes approved events whose date lies before the current
// day. Comments of swept events are deliberately left alone; only explicit
// event deletion cascades.
type SweeperService struct {
	events store.EventStore
	users  store.UserStore
	cache  *cache.EventCache
}

type SweepResult struct {
	Count      int      `json:"count"`
	DeletedIDs []string `json:"deletedEvents"`
}

func NewSweeperService(events store.EventStore, users store.UserStore, c *cache.EventCache) *SweeperService {
	return &SweeperService{events: events, users: users, cache: c}
}

// Sweep scans all approved events and deletes every one dated strictly before
// the start of today, local time. An id already gone by deletion time counts
// as done; a second run over the same data deletes nothing. Events with
// unparseable dates are skipped and logged, never deleted.
func (s *SweeperService) Sweep(ctx context.Context) (*SweepResult, error) {
	events, err := s.events.ListAllApproved(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)

	result := &SweepResult{DeletedIDs: []string{}}
	for _, event := range events {
		date, err := models.ParseEventDate(event.Date)
		if err != nil {
			logrus.Warnf("sweep: skipping event %s with unparseable date %q", event.ID, event.Date)
			continue
		}
		if !date.Before(today) {
			continue
		}

		if err := s.events.DeleteApproved(ctx, event.ID); err != nil {
			if errors.Is(err, models.ErrEventNotFound) {
				continue
			}
			return result, err
		}
		result.DeletedIDs = append(result.DeletedIDs, event.ID)
	}
	result.Count = len(result.DeletedIDs)

	if result.Count > 0 {
		s.cache.Invalidate(ctx)
		logrus.Infof("sweep removed %d expired events", result.Count)
	}
	return result, nil
}

// SweepAs runs a sweep on behalf of a caller, which must be an admin.
func (s *SweeperService) SweepAs(ctx context.Context, callerID string) (*SweepResult, error) {
	if callerID == "" {
		return nil, models.ErrNotAuthenticated
	}
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
	return s.Sweep(ctx)
}
