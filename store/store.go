// Package store declares the persistence contracts the engines run against.
// store/mongodb implements them on MongoDB, store/memory on process-local maps.
package store

import (
	"context"

	"github.com/ToeMom/GroupUp-Final/models"
)

// EventStore persists events across the three moderation collections. The
// waiting-to-approved and waiting-to-rejected moves are atomic: the copy and
// the delete either both happen or neither does, and a concurrent move of the
// same waiting id fails with models.ErrEventNotFound for the loser.
type EventStore interface {
	InsertWaiting(ctx context.Context, event *models.Event) (*models.Event, error)
	GetWaiting(ctx context.Context, id string) (*models.Event, error)
	ListWaiting(ctx context.Context) ([]models.Event, error)
	ListWaitingByCreator(ctx context.Context, userID string) ([]models.Event, error)

	// MoveWaitingToApproved copies the waiting document into the approved
	// collection under a fresh id, stamps approvedBy/approvedAt and deletes
	// the waiting record. Returns the approved copy.
	MoveWaitingToApproved(ctx context.Context, id, approvedBy, approvedAt string) (*models.Event, error)
	// MoveWaitingToRejected does the same into the rejected collection,
	// stamping reviewedBy/reviewedAt/reason.
	MoveWaitingToRejected(ctx context.Context, id, reviewedBy, reviewedAt, reason string) error

	GetApproved(ctx context.Context, id string) (*models.Event, error)
	UpdateApproved(ctx context.Context, id string, patch *models.EventPatch) (*models.Event, error)
	DeleteApproved(ctx context.Context, id string) error
	ListApproved(ctx context.Context, limit, offset int) ([]models.Event, error)
	ListAllApproved(ctx context.Context) ([]models.Event, error)
	ListApprovedByCreator(ctx context.Context, userID string) ([]models.Event, error)

	// AddParticipant appends userID to the roster of an approved event as a
	// single conditional update: it fails with ErrAlreadyParticipant or
	// ErrCapacityExceeded without ever writing a roster larger than
	// maxParticipants, even under concurrent calls.
	AddParticipant(ctx context.Context, eventID, userID string) (*models.Event, error)
	RemoveParticipant(ctx context.Context, eventID, userID string) (*models.Event, error)

	GetRejected(ctx context.Context, id string) (*models.Event, error)
	DeleteRejected(ctx context.Context, id string) error
	ListRejectedByCreator(ctx context.Context, userID string) ([]models.Event, error)
}

type CommentStore interface {
	Insert(ctx context.Context, comment *models.Comment) (*models.Comment, error)
	Get(ctx context.Context, id string) (*models.Comment, error)
	Delete(ctx context.Context, id string) error
	ListTopLevel(ctx context.Context, eventID string) ([]models.Comment, error)
	ListReplies(ctx context.Context, parentCommentID string) ([]models.Comment, error)
	ListByEvent(ctx context.Context, eventID string) ([]models.Comment, error)
}

type UserStore interface {
	// Upsert writes the profile under user.ID, replacing any existing document.
	Upsert(ctx context.Context, user *models.User) (*models.User, error)
	Get(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, id string, patch *models.UserPatch, lastProfileUpdate string) (*models.User, error)
	SetModerator(ctx context.Context, id string, moderator bool) (*models.User, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]models.User, error)
}

type CategoryStore interface {
	Insert(ctx context.Context, name string) (*models.Category, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]models.Category, error)
}
