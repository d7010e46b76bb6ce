package database

import (
	"context"
	"sync"

	"golang-exercisetracker/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore is a process-local Store. Records are kept in insertion
// order, which stands in for the natural order of the mongo collections.
type MemoryStore struct {
	mu        sync.RWMutex
	users     []models.User
	exercises []models.Exercise
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) CreateUser(_ context.Context, username string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == username {
			return models.User{}, ErrDuplicateUsername
		}
	}

	user := models.User{ID: primitive.NewObjectID(), Username: username}
	s.users = append(s.users, user)
	return user, nil
}

func (s *MemoryStore) ListUsers(_ context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]models.User, len(s.users))
	copy(users, s.users)
	return users, nil
}

func (s *MemoryStore) FindUserByID(_ context.Context, id string) (models.User, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.User{}, ErrUserNotFound
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.ID == objID {
			return user, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

func (s *MemoryStore) CreateExercise(_ context.Context, exercise models.Exercise) (models.Exercise, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	exercise.ID = primitive.NewObjectID()
	s.exercises = append(s.exercises, exercise)
	return exercise, nil
}

func (s *MemoryStore) FindExercises(_ context.Context, user models.User, filter models.LogFilter) ([]models.Exercise, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	log := []models.Exercise{}
	for _, exercise := range s.exercises {
		if exercise.UserID != user.ID || !filter.Matches(exercise.Date) {
			continue
		}
		exercise.ID = primitive.NilObjectID
		exercise.UserID = primitive.NilObjectID
		log = append(log, exercise)
		if filter.Limit > 0 && len(log) == filter.Limit {
			break
		}
	}
	return log, nil
}

func (s *MemoryStore) Ping(context.Context) error { return nil }

func (s *MemoryStore) Close(context.Context) error { return nil }
