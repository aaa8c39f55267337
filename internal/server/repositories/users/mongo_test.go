package users

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/wordbridge/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

func TestMongoRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	userDoc := bson.D{
		{Key: "_id", Value: "u-1"},
		{Key: "email", Value: "alice@example.com"},
		{Key: "password", Value: "$2a$10$hash"},
	}

	mt.Run("ensure indexes", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		require.NoError(mt, NewMongoRepository(mt.Coll).EnsureIndexes(ctx))
	})

	mt.Run("exists true", func(mt *mtest.T) {
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{{Key: "_id", Value: "u-1"}}))

		ok, err := NewMongoRepository(mt.Coll).Exists(ctx, "alice@example.com")
		require.NoError(mt, err)
		assert.True(mt, ok)
	})

	mt.Run("exists false", func(mt *mtest.T) {
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		ok, err := NewMongoRepository(mt.Coll).Exists(ctx, "alice@example.com")
		require.NoError(mt, err)
		assert.False(mt, ok)
	})

	mt.Run("exists command error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Message: "boom"}))

		_, err := NewMongoRepository(mt.Coll).Exists(ctx, "alice@example.com")
		require.Error(mt, err)
		assert.Contains(mt, err.Error(), "mongo error")
	})

	mt.Run("create success", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		u := testUser()
		got, err := NewMongoRepository(mt.Coll).Create(ctx, u)
		require.NoError(mt, err)
		assert.Equal(mt, u, got)
	})

	mt.Run("create duplicate", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: wordbridge.users index: email_unique",
		}))

		_, err := NewMongoRepository(mt.Coll).Create(ctx, testUser())
		assert.True(mt, errors.Is(err, common.ErrorAlreadyExists), "got %v", err)
	})

	mt.Run("create unacknowledged", func(mt *mtest.T) {
		coll := mt.Client.Database(mt.Coll.Database().Name()).Collection(mt.Coll.Name(),
			options.Collection().SetWriteConcern(writeconcern.Unacknowledged()))

		_, err := NewMongoRepository(coll).Create(ctx, testUser())
		assert.True(mt, errors.Is(err, common.ErrorNotAcknowledged), "got %v", err)
	})

	mt.Run("get found", func(mt *mtest.T) {
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, userDoc))

		got, err := NewMongoRepository(mt.Coll).GetUserByEmail(ctx, "alice@example.com")
		require.NoError(mt, err)
		assert.Equal(mt, "u-1", got.ID)
		assert.Equal(mt, "alice@example.com", got.Email)
		assert.Equal(mt, "$2a$10$hash", got.PasswordHash)
	})

	mt.Run("get without stored hash", func(mt *mtest.T) {
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "u-2"},
			{Key: "email", Value: "legacy@example.com"},
		}))

		got, err := NewMongoRepository(mt.Coll).GetUserByEmail(ctx, "legacy@example.com")
		require.NoError(mt, err)
		assert.Empty(mt, got.PasswordHash)
	})

	mt.Run("get with object id", func(mt *mtest.T) {
		oid := primitive.NewObjectID()
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: oid},
			{Key: "email", Value: "old@example.com"},
			{Key: "password", Value: "$2a$10$hash"},
		}))

		got, err := NewMongoRepository(mt.Coll).GetUserByEmail(ctx, "old@example.com")
		require.NoError(mt, err)
		assert.Equal(mt, oid.Hex(), got.ID)
		assert.Equal(mt, "$2a$10$hash", got.PasswordHash)
	})

	mt.Run("get with unsupported id type", func(mt *mtest.T) {
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: int32(7)},
			{Key: "email", Value: "odd@example.com"},
		}))

		_, err := NewMongoRepository(mt.Coll).GetUserByEmail(ctx, "odd@example.com")
		require.Error(mt, err)
		assert.Contains(mt, err.Error(), "unsupported _id type")
	})

	mt.Run("get not found", func(mt *mtest.T) {
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := NewMongoRepository(mt.Coll).GetUserByEmail(ctx, "nobody@example.com")
		assert.True(mt, errors.Is(err, common.ErrorNotFound), "got %v", err)
	})
}
