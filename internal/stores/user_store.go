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

// UserStore persists one record per registered account.
type UserStore interface {
	Create(ctx context.Context, user *schemas.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*schemas.User, error)
	FindByUsername(ctx context.Context, username string) (*schemas.User, error)
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*schemas.User, error)
	List(ctx context.Context) ([]schemas.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type userStore struct {
	collection *mongo.Collection
}

// NewUserStore creates a UserStore backed by the users collection.
func NewUserStore(dbMgr managers.DatabaseMgr) UserStore {
	return &userStore{collection: dbMgr.Collection(UsersCollection)}
}

func (s *userStore) Create(ctx context.Context, user *schemas.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	_, err := s.collection.InsertOne(ctx, user)
	return err
}

func (s *userStore) FindByID(ctx context.Context, id primitive.ObjectID) (*schemas.User, error) {
	return s.findOne(ctx, bson.M{"_id": id})
}

func (s *userStore) FindByUsername(ctx context.Context, username string) (*schemas.User, error) {
	return s.findOne(ctx, bson.M{"username": username})
}

// FindByUsernameOrEmail matches either unique field, case-sensitively on the
// stored value. Used by registration to detect duplicates.
func (s *userStore) FindByUsernameOrEmail(ctx context.Context, username, email string) (*schemas.User, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"username": username},
		bson.M{"email": email},
	}}
	return s.findOne(ctx, filter)
}

func (s *userStore) List(ctx context.Context) ([]schemas.User, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := make([]schemas.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *userStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (s *userStore) findOne(ctx context.Context, filter bson.M) (*schemas.User, error) {
	user := &schemas.User{}
	err := s.collection.FindOne(ctx, filter).Decode(user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
