package stores

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ElenaG518/wdconnect-server/internal/managers"
	"github.com/ElenaG518/wdconnect-server/internal/schemas"
)

// ProfileStore persists the 1:1 biographical record of each account. All
// lookups and mutations are keyed by the owning account id; the owner field
// never changes after creation.
type ProfileStore interface {
	Create(ctx context.Context, profile *schemas.Profile) error
	FindByOwner(ctx context.Context, owner primitive.ObjectID) (*schemas.Profile, error)
	ReplaceByOwner(ctx context.Context, profile *schemas.Profile) error
	List(ctx context.Context) ([]schemas.Profile, error)
	DeleteByOwner(ctx context.Context, owner primitive.ObjectID) error
}

type profileStore struct {
	collection *mongo.Collection
}

// NewProfileStore creates a ProfileStore backed by the profiles collection.
func NewProfileStore(dbMgr managers.DatabaseMgr) ProfileStore {
	return &profileStore{collection: dbMgr.Collection(ProfilesCollection)}
}

func (s *profileStore) Create(ctx context.Context, profile *schemas.Profile) error {
	if profile.ID.IsZero() {
		profile.ID = primitive.NewObjectID()
	}
	_, err := s.collection.InsertOne(ctx, profile)
	return err
}

func (s *profileStore) FindByOwner(ctx context.Context, owner primitive.ObjectID) (*schemas.Profile, error) {
	profile := &schemas.Profile{}
	err := s.collection.FindOne(ctx, bson.M{"user": owner}).Decode(profile)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// ReplaceByOwner overwrites the owner's profile document with the given one.
func (s *profileStore) ReplaceByOwner(ctx context.Context, profile *schemas.Profile) error {
	result, err := s.collection.ReplaceOne(ctx, bson.M{"user": profile.Owner}, profile)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *profileStore) List(ctx context.Context) ([]schemas.Profile, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	profiles := make([]schemas.Profile, 0)
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

func (s *profileStore) DeleteByOwner(ctx context.Context, owner primitive.ObjectID) error {
	_, err := s.collection.DeleteOne(ctx, bson.M{"user": owner})
	return err
}
