package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ToeMom/GroupUp-Final/models"
)

func (s *CategoryStore) Insert(ctx context.Context, name string) (*models.Category, error) {
	category := &models.Category{ID: primitive.NewObjectID().Hex(), Name: name}
	if _, err := s.db.Collection(colCategories).InsertOne(ctx, category); err != nil {
		return nil, fmt.Errorf("%w: insert category: %v", models.ErrDatabase, err)
	}
	return category, nil
}

func (s *CategoryStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.Collection(colCategories).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("%w: delete category: %v", models.ErrDatabase, err)
	}
	if res.DeletedCount == 0 {
		return models.ErrCategoryNotFound
	}
	return nil
}

func (s *CategoryStore) List(ctx context.Context) ([]models.Category, error) {
	cursor, err := s.db.Collection(colCategories).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%w: find categories: %v", models.ErrDatabase, err)
	}

	categories := []models.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("%w: decode categories: %v", models.ErrDatabase, err)
	}
	return categories, nil
}
