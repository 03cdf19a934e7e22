package stores

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ElenaG518/wdconnect-server/internal/managers"
	"github.com/ElenaG518/wdconnect-server/internal/schemas"
)

// PostStore persists the flat collection of posts.
type PostStore interface {
	Create(ctx context.Context, post *schemas.Post) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*schemas.Post, error)
	List(ctx context.Context) ([]schemas.Post, error)
	SetLikes(ctx context.Context, id primitive.ObjectID, likes []schemas.Like) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByOwner(ctx context.Context, owner primitive.ObjectID) error
}

type postStore struct {
	collection *mongo.Collection
}

// NewPostStore creates a PostStore backed by the posts collection.
func NewPostStore(dbMgr managers.DatabaseMgr) PostStore {
	return &postStore{collection: dbMgr.Collection(PostsCollection)}
}

func (s *postStore) Create(ctx context.Context, post *schemas.Post) error {
	if post.ID.IsZero() {
		post.ID = primitive.NewObjectID()
	}
	_, err := s.collection.InsertOne(ctx, post)
	return err
}

func (s *postStore) FindByID(ctx context.Context, id primitive.ObjectID) (*schemas.Post, error) {
	post := &schemas.Post{}
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return post, nil
}

// List returns all posts, newest first.
func (s *postStore) List(ctx context.Context) ([]schemas.Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	posts := make([]schemas.Post, 0)
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// SetLikes replaces the likes list of the given post.
func (s *postStore) SetLikes(ctx context.Context, id primitive.ObjectID, likes []schemas.Like) error {
	update := bson.M{"$set": bson.M{"likes": likes}}
	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *postStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// DeleteByOwner removes every post owned by the given account. Called from
// the account deletion cascade.
func (s *postStore) DeleteByOwner(ctx context.Context, owner primitive.ObjectID) error {
	_, err := s.collection.DeleteMany(ctx, bson.M{"user": owner})
	return err
}
