// Package database holds the persistence layer of the exercise tracker.
package database

import (
	"context"
	"errors"
	"fmt"

	"golang-exercisetracker/config"
	"golang-exercisetracker/models"
)

var (
	// ErrUserNotFound is returned when a user id does not resolve.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUsername is returned when the username is already taken.
	ErrDuplicateUsername = errors.New("username already taken")
)

// Store is the persistence surface used by the controllers. Implementations
// are safe for concurrent use.
type Store interface {
	CreateUser(ctx context.Context, username string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	FindUserByID(ctx context.Context, id string) (models.User, error)
	CreateExercise(ctx context.Context, exercise models.Exercise) (models.Exercise, error)
	FindExercises(ctx context.Context, user models.User, filter models.LogFilter) ([]models.Exercise, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// Open builds the store selected by cfg. A mongo store is connected,
// pinged and indexed before it is returned.
func Open(ctx context.Context, cfg config.Config) (Store, error) {
	switch cfg.Store {
	case config.StoreMemory:
		return NewMemoryStore(), nil
	case config.StoreMongo:
		client, err := DBInstance(ctx, cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		store := NewMongoStore(client, cfg.MongoDatabase)
		if err := store.EnsureIndexes(ctx); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}
