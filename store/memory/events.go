package memory

import (
	"context"
	"sort"

	"github.com/ToeMom/GroupUp-Final/models"
)

type EventStore struct {
	d *data
}

func (s *EventStore) InsertWaiting(_ context.Context, event *models.Event) (*models.Event, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()

	e := cloneEvent(*event)
	e.ID = newID()
	s.d.waiting[e.ID] = e
	out := cloneEvent(e)
	return &out, nil
}

func (s *EventStore) GetWaiting(_ context.Context, id string) (*models.Event, error) {
	s.d.mu.RLock()
	defer s.d.mu.RUnlock()
	return getFrom(s.d.waiting, id)
}

func (s *EventStore) ListWaiting(_ context.Context) ([]models.Event, error) {
	s.d.mu.RLock()
	defer s.d.mu.RUnlock()
	return collect(s.d.waiting, func(models.Event) bool { return true }), nil
}

func (s *EventStore) ListWaitingByCreator(_ context.Context, userID string) ([]models.Event, error) {
	s.d.mu.RLock()
	defer s.d.mu.RUnlock()
	return collect(s.d.waiting, func(e models.Event) bool { return e.CreatedBy == userID }), nil
}

func (s *EventStore) MoveWaitingToApproved(_ context.Context, id, approvedBy, approvedAt string) (*models.Event, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()

	src, ok := s.d.waiting[id]
	if !ok {
		return nil, models.ErrEventNotFound
	}

	approved := cloneEvent(src)
	approved.ID = newID()
	approved.ApprovedBy = approvedBy
	approved.ApprovedAt = approvedAt

	s.d.approved[approved.ID] = approved
	delete(s.d.waiting, id)

	out := cloneEvent(approved)
	return &out, nil
}

func (s *EventStore) MoveWaitingToRejected(_ context.Context, id, reviewedBy, reviewedAt, reason string) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()

	src, ok := s.d.waiting[id]
	if !ok {
		return models.ErrEventNotFound
	}

	rejected := cloneEvent(src)
	rejected.ID = newID()
	rejected.ReviewedBy = reviewedBy
	rejected.ReviewedAt = reviewedAt
	rejected.Reason = reason

	s.d.rejected[rejected.ID] = rejected
	delete(s.d.waiting, id)
	return nil
}

func (s *EventStore) GetApproved(_ context.Context, id string) (*models.Event, error) {
	s.d.mu.RLock()
	defer s.d.mu.RUnlock()
	return getFrom(s.d.approved, id)
}

func (s *EventStore) UpdateApproved(_ context.Context, id string, patch *models.EventPatch) (*models.Event, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()

	e, ok := s.d.approved[id]
	if !ok {
		return nil, models.ErrEventNotFound
	}

	if patch.Title != nil {
		e.Title = *patch.Title
	}
	if patch.Description != nil {
		e.Description = *patch.Description
	}
	if patch.Category != nil {
		e.Category = *patch.Category
	}
	if patch.Image != nil {
		e.Image = *patch.Image
	}
	if patch.Date != nil {
		e.Date = *patch.Date
	}
	if patch.Time != nil {
		e.Time = *patch.Time
	}
	if patch.Location != nil {
		e.Location = patch.Location
	}
	if patch.AgeMin != nil {
		e.AgeMin = *patch.AgeMin
	}
	if patch.AgeMax != nil {
		e.AgeMax = *patch.AgeMax
	}
	if patch.MaxParticipants != nil {
		e.MaxParticipants = *patch.MaxParticipants
	}

	s.d.approved[id] = cloneEvent(e)
	out := cloneEvent(e)
	return &out, nil
}

func (s *EventStore) DeleteApproved(_ context.Context, id string) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()

	if _, ok := s.d.approved[id]; !ok {
		return models.ErrEventNotFound
	}
	delete(s.d.approved, id)
	return nil
}

func (s *EventStore) ListApproved(_ context.Context, limit, offset int) ([]models.Event, error) {
	s.d.mu.RLock()
	events := collect(s.d.approved, func(models.Event) bool { return true })
	s.d.mu.RUnlock()

	sort.SliceStable(events, func(i, j int) bool {
		di, erri := models.ParseEventDate(events[i].Date)
		dj, errj := models.ParseEventDate(events[j].Date)
		if erri != nil || errj != nil {
			return events[i].Date < events[j].Date
		}
		return di.Before(dj)
	})

	if offset >= len(events) {
		return []models.Event{}, nil
	}
	events = events[offset:]
	if limit > 0 && limit < len(events) {
		events = events[:limit]
	}
	return events, nil
}

func (s *EventStore) ListAllApproved(_ context.Context) ([]models.Event, error) {
	s.d.mu.RLock()
	defer s.d.mu.RUnlock()
	return collect(s.d.approved, func(models.Event) bool { return true }), nil
}

func (s *EventStore) ListApprovedByCreator(_ context.Context, userID string) ([]models.Event, error) {
	s.d.mu.RLock()
	defer s.d.mu.RUnlock()
	return collect(s.d.approved, func(e models.Event) bool { return e.CreatedBy == userID }), nil
}

func (s *EventStore) AddParticipant(_ context.Context, eventID, userID string) (*models.Event, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()

	e, ok := s.d.approved[eventID]
	if !ok {
		return nil, models.ErrEventNotFound
	}
	if e.HasParticipant(userID) {
		return nil, models.ErrAlreadyParticipant
	}
	if len(e.Participants) >= e.MaxParticipants {
		return nil, models.ErrCapacityExceeded
	}

	e = cloneEvent(e)
	e.Participants = append(e.Participants, userID)
	s.d.approved[eventID] = e

	out := cloneEvent(e)
	return &out, nil
}

func (s *EventStore) RemoveParticipant(_ context.Context, eventID, userID string) (*models.Event, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()

	e, ok := s.d.approved[eventID]
	if !ok {
		return nil, models.ErrEventNotFound
	}
	if !e.HasParticipant(userID) {
		return nil, models.ErrNotParticipant
	}

	e = cloneEvent(e)
	kept := e.Participants[:0]
	for _, p := range e.Participants {
		if p != userID {
			kept = append(kept, p)
		}
	}
	e.Participants = kept
	s.d.approved[eventID] = e

	out := cloneEvent(e)
	return &out, nil
}

func (s *EventStore) GetRejected(_ context.Context, id string) (*models.Event, error) {
	s.d.mu.RLock()
	defer s.d.mu.RUnlock()
	return getFrom(s.d.rejected, id)
}

func (s *EventStore) DeleteRejected(_ context.Context, id string) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()

	if _, ok := s.d.rejected[id]; !ok {
		return models.ErrEventNotFound
	}
	delete(s.d.rejected, id)
	return nil
}

func (s *EventStore) ListRejectedByCreator(_ context.Context, userID string) ([]models.Event, error) {
	s.d.mu.RLock()
	defer s.d.mu.RUnlock()
	return collect(s.d.rejected, func(e models.Event) bool { return e.CreatedBy == userID }), nil
}

func getFrom(m map[string]models.Event, id string) (*models.Event, error) {
	e, ok := m[id]
	if !ok {
		return nil, models.ErrEventNotFound
	}
	out := cloneEvent(e)
	return &out, nil
}

func collect(m map[string]models.Event, keep func(models.Event) bool) []models.Event {
	out := []models.Event{}
	for _, e := range m {
		if keep(e) {
			out = append(out, cloneEvent(e))
		}
	}
	return out
}
