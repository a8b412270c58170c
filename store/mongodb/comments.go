package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ToeMom/GroupUp-Final/models"
)

func (s *CommentStore) Insert(ctx context.Context, comment *models.Comment) (*models.Comment, error) {
	comment.ID = primitive.NewObjectID().Hex()
	if _, err := s.db.Collection(colComments).InsertOne(ctx, comment); err != nil {
		return nil, fmt.Errorf("%w: insert comment: %v", models.ErrDatabase, err)
	}
	return comment, nil
}

func (s *CommentStore) Get(ctx context.Context, id string) (*models.Comment, error) {
	var comment models.Comment
	err := s.db.Collection(colComments).FindOne(ctx, bson.M{"_id": id}).Decode(&comment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrCommentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get comment: %v", models.ErrDatabase, err)
	}
	return &comment, nil
}

func (s *CommentStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.Collection(colComments).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("%w: delete comment: %v", models.ErrDatabase, err)
	}
	if res.DeletedCount == 0 {
		return models.ErrCommentNotFound
	}
	return nil
}

func (s *CommentStore) ListTopLevel(ctx context.Context, eventID string) ([]models.Comment, error) {
	// Top-level comments carry no parentCommentId at all.
	filter := bson.M{"eventId": eventID, "parentCommentId": bson.M{"$exists": false}}
	return s.findComments(ctx, filter)
}

func (s *CommentStore) ListReplies(ctx context.Context, parentCommentID string) ([]models.Comment, error) {
	return s.findComments(ctx, bson.M{"parentCommentId": parentCommentID})
}

func (s *CommentStore) ListByEvent(ctx context.Context, eventID string) ([]models.Comment, error) {
	return s.findComments(ctx, bson.M{"eventId": eventID})
}

func (s *CommentStore) findComments(ctx context.Context, filter bson.M) ([]models.Comment, error) {
	cursor, err := s.db.Collection(colComments).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: find comments: %v", models.ErrDatabase, err)
	}

	comments := []models.Comment{}
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, fmt.Errorf("%w: decode comments: %v", models.ErrDatabase, err)
	}
	return comments, nil
}
