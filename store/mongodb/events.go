package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ToeMom/GroupUp-Final/models"
)

func (s *EventStore) InsertWaiting(ctx context.Context, event *models.Event) (*models.Event, error) {
	event.ID = primitive.NewObjectID().Hex()
	if event.Participants == nil {
		event.Participants = []string{}
	}
	if _, err := s.db.Collection(colWaiting).InsertOne(ctx, event); err != nil {
		return nil, fmt.Errorf("%w: insert waiting event: %v", models.ErrDatabase, err)
	}
	return event, nil
}

func (s *EventStore) GetWaiting(ctx context.Context, id string) (*models.Event, error) {
	return s.getEvent(ctx, colWaiting, id)
}

func (s *EventStore) ListWaiting(ctx context.Context) ([]models.Event, error) {
	return s.findEvents(ctx, colWaiting, bson.M{}, nil)
}

func (s *EventStore) ListWaitingByCreator(ctx context.Context, userID string) ([]models.Event, error) {
	return s.findEvents(ctx, colWaiting, bson.M{"createdBy": userID}, nil)
}

// MoveWaitingToApproved copies the waiting document into Events under a fresh
// id and deletes the source, both inside one session transaction. Losing a
// concurrent move surfaces as ErrEventNotFound.
func (s *EventStore) MoveWaitingToApproved(ctx context.Context, id, approvedBy, approvedAt string) (*models.Event, error) {
	src, err := s.getEvent(ctx, colWaiting, id)
	if err != nil {
		return nil, err
	}

	approved := *src
	approved.ID = primitive.NewObjectID().Hex()
	approved.ApprovedBy = approvedBy
	approved.ApprovedAt = approvedAt

	if err := s.moveEvent(ctx, colWaiting, colApproved, id, &approved); err != nil {
		return nil, err
	}
	return &approved, nil
}

func (s *EventStore) MoveWaitingToRejected(ctx context.Context, id, reviewedBy, reviewedAt, reason string) error {
	src, err := s.getEvent(ctx, colWaiting, id)
	if err != nil {
		return err
	}

	rejected := *src
	rejected.ID = primitive.NewObjectID().Hex()
	rejected.ReviewedBy = reviewedBy
	rejected.ReviewedAt = reviewedAt
	rejected.Reason = reason

	return s.moveEvent(ctx, colWaiting, colRejected, id, &rejected)
}

func (s *EventStore) moveEvent(ctx context.Context, fromCol, toCol, fromID string, dst *models.Event) error {
	session, err := s.client.StartSession()
	if err != nil {
		return fmt.Errorf("%w: start session: %v", models.ErrDatabase, err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := s.db.Collection(toCol).InsertOne(sc, dst); err != nil {
			return nil, fmt.Errorf("%w: insert into %s: %v", models.ErrDatabase, toCol, err)
		}
		res, err := s.db.Collection(fromCol).DeleteOne(sc, bson.M{"_id": fromID})
		if err != nil {
			return nil, fmt.Errorf("%w: delete from %s: %v", models.ErrDatabase, fromCol, err)
		}
		if res.DeletedCount == 0 {
			// Someone else moved it first; abort so no duplicate copy survives.
			return nil, models.ErrEventNotFound
		}
		return nil, nil
	})
	return err
}

func (s *EventStore) GetApproved(ctx context.Context, id string) (*models.Event, error) {
	return s.getEvent(ctx, colApproved, id)
}

func (s *EventStore) UpdateApproved(ctx context.Context, id string, patch *models.EventPatch) (*models.Event, error) {
	set := bson.M{}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Category != nil {
		set["category"] = *patch.Category
	}
	if patch.Image != nil {
		set["image"] = *patch.Image
	}
	if patch.Date != nil {
		set["date"] = *patch.Date
	}
	if patch.Time != nil {
		set["time"] = *patch.Time
	}
	if patch.Location != nil {
		set["location"] = patch.Location
	}
	if patch.AgeMin != nil {
		set["ageMin"] = *patch.AgeMin
	}
	if patch.AgeMax != nil {
		set["ageMax"] = *patch.AgeMax
	}
	if patch.MaxParticipants != nil {
		set["maxParticipants"] = *patch.MaxParticipants
	}
	if len(set) == 0 {
		return s.getEvent(ctx, colApproved, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Event
	err := s.db.Collection(colApproved).
		FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).
		Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: update event: %v", models.ErrDatabase, err)
	}
	return &updated, nil
}

func (s *EventStore) DeleteApproved(ctx context.Context, id string) error {
	return s.deleteEvent(ctx, colApproved, id)
}

func (s *EventStore) ListApproved(ctx context.Context, limit, offset int) ([]models.Event, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: 1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))
	return s.findEvents(ctx, colApproved, bson.M{}, opts)
}

func (s *EventStore) ListAllApproved(ctx context.Context) ([]models.Event, error) {
	return s.findEvents(ctx, colApproved, bson.M{}, nil)
}

func (s *EventStore) ListApprovedByCreator(ctx context.Context, userID string) ([]models.Event, error) {
	return s.findEvents(ctx, colApproved, bson.M{"createdBy": userID}, nil)
}

// AddParticipant is a single conditional update: the filter only matches when
// the user is absent from the roster and the roster is below capacity, so the
// read-then-append lost-update window does not exist. A miss is re-read to
// classify the failure.
func (s *EventStore) AddParticipant(ctx context.Context, eventID, userID string) (*models.Event, error) {
	filter := bson.M{
		"_id":          eventID,
		"participants": bson.M{"$ne": userID},
		"$expr": bson.M{"$lt": bson.A{
			bson.M{"$size": bson.M{"$ifNull": bson.A{"$participants", bson.A{}}}},
			"$maxParticipants",
		}},
	}
	update := bson.M{"$addToSet": bson.M{"participants": userID}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Event
	err := s.db.Collection(colApproved).FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err == nil {
		return &updated, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%w: add participant: %v", models.ErrDatabase, err)
	}

	current, getErr := s.getEvent(ctx, colApproved, eventID)
	if getErr != nil {
		return nil, getErr
	}
	if current.HasParticipant(userID) {
		return nil, models.ErrAlreadyParticipant
	}
	return nil, models.ErrCapacityExceeded
}

func (s *EventStore) RemoveParticipant(ctx context.Context, eventID, userID string) (*models.Event, error) {
	filter := bson.M{"_id": eventID, "participants": userID}
	update := bson.M{"$pull": bson.M{"participants": userID}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Event
	err := s.db.Collection(colApproved).FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err == nil {
		return &updated, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%w: remove participant: %v", models.ErrDatabase, err)
	}

	if _, getErr := s.getEvent(ctx, colApproved, eventID); getErr != nil {
		return nil, getErr
	}
	return nil, models.ErrNotParticipant
}

func (s *EventStore) GetRejected(ctx context.Context, id string) (*models.Event, error) {
	return s.getEvent(ctx, colRejected, id)
}

func (s *EventStore) DeleteRejected(ctx context.Context, id string) error {
	return s.deleteEvent(ctx, colRejected, id)
}

func (s *EventStore) ListRejectedByCreator(ctx context.Context, userID string) ([]models.Event, error) {
	return s.findEvents(ctx, colRejected, bson.M{"createdBy": userID}, nil)
}

func (s *EventStore) getEvent(ctx context.Context, col, id string) (*models.Event, error) {
	var event models.Event
	err := s.db.Collection(col).FindOne(ctx, bson.M{"_id": id}).Decode(&event)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get event: %v", models.ErrDatabase, err)
	}
	return &event, nil
}

func (s *EventStore) deleteEvent(ctx context.Context, col, id string) error {
	res, err := s.db.Collection(col).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("%w: delete event: %v", models.ErrDatabase, err)
	}
	if res.DeletedCount == 0 {
		return models.ErrEventNotFound
	}
	return nil
}

func (s *EventStore) findEvents(ctx context.Context, col string, filter bson.M, opts *options.FindOptions) ([]models.Event, error) {
	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = s.db.Collection(col).Find(ctx, filter, opts)
	} else {
		cursor, err = s.db.Collection(col).Find(ctx, filter)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: find events: %v", models.ErrDatabase, err)
	}

	events := []models.Event{}
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("%w: decode events: %v", models.ErrDatabase, err)
	}
	return events, nil
}
