// Package managers orchestrates interactions between the application and its
// external collaborators: the document store, the token service and the
// GitHub API.
package managers

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/ElenaG518/wdconnect-server/internal/config"
)

// DatabaseMgr defines the interface for database management.
// It hands out collections and answers health checks.
type DatabaseMgr interface {
	Collection(name string) *mongo.Collection
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// DatabaseManager owns the Mongo client and the application database.
type DatabaseManager struct {
	client   *mongo.Client
	database *mongo.Database
}

// Collection returns the named collection of the application database.
func (dbMgr *DatabaseManager) Collection(name string) *mongo.Collection {
	return dbMgr.database.Collection(name)
}

// Ping verifies the connection to the document store.
func (dbMgr *DatabaseManager) Ping(ctx context.Context) error {
	return dbMgr.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the underlying client.
func (dbMgr *DatabaseManager) Close(ctx context.Context) error {
	return dbMgr.client.Disconnect(ctx)
}

// NewDatabaseManager connects to the document store configured in cfg and
// returns a manager for it.
func NewDatabaseManager(cfg *config.Config) (DatabaseMgr, error) {
	log.Info("Initializing database manager")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}

	log.Info("Connected to database")
	return &DatabaseManager{
		client:   client,
		database: client.Database(cfg.MongoDatabase),
	}, nil
}
