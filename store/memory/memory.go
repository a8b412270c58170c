// Package memory is a process-local implementation of the store contracts,
// used by the service tests. All collections live behind one mutex, which
// makes the cross-collection moves trivially atomic.
package memory

import (
	"sync"

	"github.com/google/uuid"

	"github.com/ToeMom/GroupUp-Final/models"
)

type data struct {
	mu         sync.RWMutex
	waiting    map[string]models.Event
	approved   map[string]models.Event
	rejected   map[string]models.Event
	users      map[string]models.User
	comments   map[string]models.Comment
	categories map[string]models.Category
}

type Store struct {
	Events     *EventStore
	Comments   *CommentStore
	Users      *UserStore
	Categories *CategoryStore
}

func New() *Store {
	d := &data{
		waiting:    map[string]models.Event{},
		approved:   map[string]models.Event{},
		rejected:   map[string]models.Event{},
		users:      map[string]models.User{},
		comments:   map[string]models.Comment{},
		categories: map[string]models.Category{},
	}
	return &Store{
		Events:     &EventStore{d: d},
		Comments:   &CommentStore{d: d},
		Users:      &UserStore{d: d},
		Categories: &CategoryStore{d: d},
	}
}

func newID() string {
	return uuid.New().String()
}

func cloneEvent(e models.Event) models.Event {
	out := e
	out.Participants = append([]string(nil), e.Participants...)
	if out.Participants == nil {
		out.Participants = []string{}
	}
	if e.Location != nil {
		loc := *e.Location
		loc.RegionalStructure = append([]models.RegionalStructure(nil), e.Location.RegionalStructure...)
		out.Location = &loc
	}
	return out
}
