package database

import (
	"context"
	"errors"
	"fmt"

	"golang-exercisetracker/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	userCollectionName     = "users"
	exerciseCollectionName = "exercises"
)

// MongoStore keeps users and exercises in two collections of one database.
type MongoStore struct {
	client             *mongo.Client
	userCollection     *mongo.Collection
	exerciseCollection *mongo.Collection
}

func NewMongoStore(client *mongo.Client, databaseName string) *MongoStore {
	return &MongoStore{
		client:             client,
		userCollection:     OpenCollection(client, databaseName, userCollectionName),
		exerciseCollection: OpenCollection(client, databaseName, exerciseCollectionName),
	}
}

// EnsureIndexes creates the unique username index and the exercise lookup index.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.userCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create username index: %w", err)
	}

	_, err = s.exerciseCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("create exercise index: %w", err)
	}
	return nil
}

func (s *MongoStore) CreateUser(ctx context.Context, username string) (models.User, error) {
	user := models.User{
		ID:       primitive.NewObjectID(),
		Username: username,
	}

	if _, err := s.userCollection.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.User{}, ErrDuplicateUsername
		}
		return models.User{}, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

func (s *MongoStore) ListUsers(ctx context.Context) ([]models.User, error) {
	cursor, err := s.userCollection.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

// FindUserByID treats an id that is not a valid ObjectID as unknown.
func (s *MongoStore) FindUserByID(ctx context.Context, id string) (models.User, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.User{}, ErrUserNotFound
	}

	var user models.User
	err = s.userCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("find user %s: %w", id, err)
	}
	return user, nil
}

func (s *MongoStore) CreateExercise(ctx context.Context, exercise models.Exercise) (models.Exercise, error) {
	exercise.ID = primitive.NewObjectID()

	if _, err := s.exerciseCollection.InsertOne(ctx, exercise); err != nil {
		return models.Exercise{}, fmt.Errorf("insert exercise: %w", err)
	}
	return exercise, nil
}

// FindExercises returns the user's exercises in natural order. The id and
// owner fields are projected away.
func (s *MongoStore) FindExercises(ctx context.Context, user models.User, filter models.LogFilter) ([]models.Exercise, error) {
	opts := options.Find().SetProjection(bson.D{
		{Key: "_id", Value: 0},
		{Key: "user_id", Value: 0},
	})
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}

	cursor, err := s.exerciseCollection.Find(ctx, exerciseQuery(user.ID, filter), opts)
	if err != nil {
		return nil, fmt.Errorf("find exercises: %w", err)
	}

	exercises := []models.Exercise{}
	if err := cursor.All(ctx, &exercises); err != nil {
		return nil, fmt.Errorf("decode exercises: %w", err)
	}
	return exercises, nil
}

func exerciseQuery(userID primitive.ObjectID, filter models.LogFilter) bson.M {
	query := bson.M{"user_id": userID}

	dateRange := bson.M{}
	if filter.From != nil {
		dateRange["$gte"] = *filter.From
	}
	if filter.To != nil {
		dateRange["$lte"] = *filter.To
	}
	if len(dateRange) > 0 {
		query["date"] = dateRange
	}
	return query
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
