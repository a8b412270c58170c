// Package mongodb implements the store contracts on MongoDB. Events mirror the
// original collection layout: WaitingEvents, Events (approved) and
// RejectedEvents, plus Users, Comments and Category.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	colWaiting    = "WaitingEvents"
	colApproved   = "Events"
	colRejected   = "RejectedEvents"
	colUsers      = "Users"
	colComments   = "Comments"
	colCategories = "Category"
)

// Store owns the Mongo connection and exposes one sub-store per contract.
type Store struct {
	client *mongo.Client

	Events     *EventStore
	Comments   *CommentStore
	Users      *UserStore
	Categories *CategoryStore
}

type EventStore struct {
	client *mongo.Client
	db     *mongo.Database
}

type CommentStore struct {
	db *mongo.Database
}

type UserStore struct {
	db *mongo.Database
}

type CategoryStore struct {
	db *mongo.Database
}

// New connects to MongoDB and pings the primary before returning a Store.
func New(ctx context.Context, uri, dbName string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(dbName)
	return &Store{
		client:     client,
		Events:     &EventStore{client: client, db: db},
		Comments:   &CommentStore{db: db},
		Users:      &UserStore{db: db},
		Categories: &CategoryStore{db: db},
	}, nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
