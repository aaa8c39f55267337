package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/wordbridge/internal/common"
	"github.com/dmitrijs2005/wordbridge/internal/server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EmailIndexName names the unique index guarding one user per email.
const EmailIndexName = "email_unique"

// userDocument is the stored shape of a user. Records written by the
// previous service carry an ObjectId _id, newer ones a UUID string.
type userDocument struct {
	ID           bson.RawValue `bson:"_id"`
	Email        string        `bson:"email"`
	PasswordHash string        `bson:"password"`
	CreatedAt    time.Time     `bson:"created_at"`
}

func (d *userDocument) toModel() (*models.User, error) {
	u := &models.User{Email: d.Email, PasswordHash: d.PasswordHash, CreatedAt: d.CreatedAt}

	switch d.ID.Type {
	case bson.TypeString:
		u.ID = d.ID.StringValue()
	case bson.TypeObjectID:
		u.ID = d.ID.ObjectID().Hex()
	default:
		return nil, fmt.Errorf("mongo error: unsupported _id type %s", d.ID.Type)
	}

	return u, nil
}

type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(coll *mongo.Collection) *MongoRepository {
	return &MongoRepository{coll: coll}
}

// EnsureIndexes creates the unique email index if it is missing.
func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName(EmailIndexName),
	})
	if err != nil {
		return fmt.Errorf("mongo error: %w", err)
	}
	return nil
}

func (r *MongoRepository) Exists(ctx context.Context, email string) (bool, error) {
	opts := options.FindOne().SetProjection(bson.D{{Key: "_id", Value: 1}})

	err := r.coll.FindOne(ctx, bson.D{{Key: "email", Value: email}}, opts).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, fmt.Errorf("mongo error: %w", err)
	}

	return true, nil
}

func (r *MongoRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	_, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		switch {
		case mongo.IsDuplicateKeyError(err):
			return nil, common.ErrorAlreadyExists
		case errors.Is(err, mongo.ErrUnacknowledgedWrite):
			return nil, common.ErrorNotAcknowledged
		default:
			return nil, fmt.Errorf("mongo error: %w", err)
		}
	}

	return user, nil
}

func (r *MongoRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var doc userDocument

	err := r.coll.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("mongo error: %w", err)
	}

	return doc.toModel()
}
