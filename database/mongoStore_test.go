package database

import (
	"context"
	"testing"
	"time"

	"golang-exercisetracker/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestExerciseQuery(t *testing.T) {
	userID := primitive.NewObjectID()
	from := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2023, time.January, 31, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, bson.M{"user_id": userID}, exerciseQuery(userID, models.LogFilter{}))

	assert.Equal(t, bson.M{
		"user_id": userID,
		"date":    bson.M{"$gte": from, "$lte": to},
	}, exerciseQuery(userID, models.LogFilter{From: &from, To: &to}))

	assert.Equal(t, bson.M{
		"user_id": userID,
		"date":    bson.M{"$gte": from},
	}, exerciseQuery(userID, models.LogFilter{From: &from}))

	assert.Equal(t, bson.M{
		"user_id": userID,
		"date":    bson.M{"$lte": to},
	}, exerciseQuery(userID, models.LogFilter{To: &to, Limit: 3}))
}

func TestMongoStore(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("create user", func(mt *mtest.T) {
		store := NewMongoStore(mt.Client, "test")
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		user, err := store.CreateUser(ctx, "alice")
		require.NoError(mt, err)
		assert.Equal(mt, "alice", user.Username)
		assert.False(mt, user.ID.IsZero())
	})

	mt.Run("create user duplicate", func(mt *mtest.T) {
		store := NewMongoStore(mt.Client, "test")
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		_, err := store.CreateUser(ctx, "alice")
		assert.ErrorIs(mt, err, ErrDuplicateUsername)
	})

	mt.Run("create user other failure", func(mt *mtest.T) {
		store := NewMongoStore(mt.Client, "test")
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Message: "bad value",
			Name:    "BadValue",
		}))

		_, err := store.CreateUser(ctx, "alice")
		require.Error(mt, err)
		assert.NotErrorIs(mt, err, ErrDuplicateUsername)
	})

	mt.Run("list users", func(mt *mtest.T) {
		store := NewMongoStore(mt.Client, "test")
		first, second := primitive.NewObjectID(), primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.users", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: first}, {Key: "username", Value: "alice"}},
			bson.D{{Key: "_id", Value: second}, {Key: "username", Value: "bob"}},
		))

		users, err := store.ListUsers(ctx)
		require.NoError(mt, err)
		assert.Equal(mt, []models.User{
			{ID: first, Username: "alice"},
			{ID: second, Username: "bob"},
		}, users)
	})

	mt.Run("list users empty", func(mt *mtest.T) {
		store := NewMongoStore(mt.Client, "test")
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.users", mtest.FirstBatch))

		users, err := store.ListUsers(ctx)
		require.NoError(mt, err)
		assert.NotNil(mt, users)
		assert.Empty(mt, users)
	})

	mt.Run("find user", func(mt *mtest.T) {
		store := NewMongoStore(mt.Client, "test")
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.users", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: id}, {Key: "username", Value: "alice"}},
		))

		user, err := store.FindUserByID(ctx, id.Hex())
		require.NoError(mt, err)
		assert.Equal(mt, models.User{ID: id, Username: "alice"}, user)
	})

	mt.Run("find user missing", func(mt *mtest.T) {
		store := NewMongoStore(mt.Client, "test")
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.users", mtest.FirstBatch))

		_, err := store.FindUserByID(ctx, primitive.NewObjectID().Hex())
		assert.ErrorIs(mt, err, ErrUserNotFound)
	})

	mt.Run("find user malformed id", func(mt *mtest.T) {
		store := NewMongoStore(mt.Client, "test")

		_, err := store.FindUserByID(ctx, "12345")
		assert.ErrorIs(mt, err, ErrUserNotFound)
	})

	mt.Run("create exercise", func(mt *mtest.T) {
		store := NewMongoStore(mt.Client, "test")
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		userID := primitive.NewObjectID()
		created, err := store.CreateExercise(ctx, models.Exercise{
			UserID:      userID,
			Description: "run",
			Duration:    30,
			Date:        time.Date(2023, time.May, 1, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(mt, err)
		assert.False(mt, created.ID.IsZero())
		assert.Equal(mt, userID, created.UserID)
	})

	mt.Run("find exercises", func(mt *mtest.T) {
		store := NewMongoStore(mt.Client, "test")
		date := time.Date(2023, time.May, 1, 0, 0, 0, 0, time.UTC)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.exercises", mtest.FirstBatch,
			bson.D{{Key: "description", Value: "run"}, {Key: "duration", Value: 30}, {Key: "date", Value: date}},
			bson.D{{Key: "description", Value: "swim"}, {Key: "duration", Value: 45}, {Key: "date", Value: date}},
		))

		user := models.User{ID: primitive.NewObjectID(), Username: "alice"}
		exercises, err := store.FindExercises(ctx, user, models.LogFilter{Limit: 2})
		require.NoError(mt, err)
		require.Len(mt, exercises, 2)
		assert.Equal(mt, "run", exercises[0].Description)
		assert.Equal(mt, 30, exercises[0].Duration)
		assert.True(mt, date.Equal(exercises[0].Date))
		assert.Equal(mt, 45, exercises[1].Duration)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Equal(mt, "find", started.CommandName)
		assert.Equal(mt, user.ID, started.Command.Lookup("filter", "user_id").ObjectID())
	})
}
