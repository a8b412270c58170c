package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ToeMom/GroupUp-Final/models"
)

func (s *UserStore) Upsert(ctx context.Context, user *models.User) (*models.User, error) {
	opts := options.Replace().SetUpsert(true)
	_, err := s.db.Collection(colUsers).ReplaceOne(ctx, bson.M{"_id": user.ID}, user, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: upsert user: %v", models.ErrDatabase, err)
	}
	return user, nil
}

func (s *UserStore) Get(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := s.db.Collection(colUsers).FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get user: %v", models.ErrDatabase, err)
	}
	return &user, nil
}

func (s *UserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.Collection(colUsers).FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get user by email: %v", models.ErrDatabase, err)
	}
	return &user, nil
}

func (s *UserStore) Update(ctx context.Context, id string, patch *models.UserPatch, lastProfileUpdate string) (*models.User, error) {
	set := bson.M{"lastProfileUpdate": lastProfileUpdate}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Age != nil {
		set["age"] = *patch.Age
	}
	if patch.Email != nil {
		set["email"] = *patch.Email
	}
	if patch.ProfileImage != nil {
		set["profileImage"] = *patch.ProfileImage
	}
	if patch.NotificationsEnabled != nil {
		set["notificationsEnabled"] = *patch.NotificationsEnabled
	}
	if patch.Rating != nil {
		set["rating"] = *patch.Rating
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.User
	err := s.db.Collection(colUsers).
		FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).
		Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: update user: %v", models.ErrDatabase, err)
	}
	return &updated, nil
}

func (s *UserStore) SetModerator(ctx context.Context, id string, moderator bool) (*models.User, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.User
	err := s.db.Collection(colUsers).
		FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"moderator": moderator}}, opts).
		Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: set moderator: %v", models.ErrDatabase, err)
	}
	return &updated, nil
}

func (s *UserStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.Collection(colUsers).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("%w: delete user: %v", models.ErrDatabase, err)
	}
	if res.DeletedCount == 0 {
		return models.ErrUserNotFound
	}
	return nil
}

func (s *UserStore) List(ctx context.Context) ([]models.User, error) {
	cursor, err := s.db.Collection(colUsers).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%w: find users: %v", models.ErrDatabase, err)
	}

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("%w: decode users: %v", models.ErrDatabase, err)
	}
	return users, nil
}
