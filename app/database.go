package app

import (
	"context"
	"crypto/rand"
	"time"

	"github.com/chainweave-ai/chainweave-backend/models"
	log "github.com/sirupsen/logrus"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"

	lock "github.com/square/mongo-lock"
)

type Database interface {
	Connect() error
	SetupLockers() error
	SetupIndexes() error
	Disconnect() error
	InsertOne(collection string, data interface{}) (interface{}, error)
	FindOne(collection string, filter interface{}, result interface{}) error
	FindMany(collection string, filter interface{}, result interface{}) error
	FindManyPaginated(collection string, filter interface{}, sort interface{}, skip int64, limit int64, result interface{}) error
	UpdateOne(collection string, filter interface{}, update interface{}) (int64, error)
	UpsertOne(collection string, filter interface{}, update interface{}) error

	XLock(resourceId string) (string, error)
	Unlock(lockId string) error
}

// mongoDatabase is a wrapper around the mongo database
type mongoDatabase struct {
	db       *mongo.Database
	uri      string
	database string
	locker   *lock.Client
}

var (
	DB Database
)

func timeoutContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(Config.MongoDB.TimeoutMillis)*time.Millisecond)
}

// Connect connects to the database
func (d *mongoDatabase) Connect() error {
	log.Debug("[DB] Connecting to database")

	ctx, cancel := timeoutContext()
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(d.uri).SetWriteConcern(writeconcern.Majority()))
	if err != nil {
		return err
	}
	d.db = client.Database(d.database)

	log.Info("[DB] Connected to mongo database: ", d.database)
	return nil
}

// SetupLockers sets up the locker
func (d *mongoDatabase) SetupLockers() error {
	log.Debug("[DB] Setting up locker")

	ctx, cancel := timeoutContext()
	defer cancel()

	locker := lock.NewClient(d.db.Collection("locks"))
	if err := locker.CreateIndexes(ctx); err != nil {
		return err
	}
	d.locker = locker

	log.Info("[DB] Locker setup")
	return nil
}

func randomString(n int) string {
	const alphanum = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	var bytes = make([]byte, n)
	rand.Read(bytes)
	for i, b := range bytes {
		bytes[i] = alphanum[b%byte(len(alphanum))]
	}
	return string(bytes)
}

// XLock locks a resource for exclusive access
func (d *mongoDatabase) XLock(resourceId string) (string, error) {
	ctx, cancel := timeoutContext()
	defer cancel()

	lockId := randomString(32)
	err := d.locker.XLock(ctx, resourceId, lockId, lock.LockDetails{})
	return lockId, err
}

// Unlock unlocks a resource
func (d *mongoDatabase) Unlock(lockId string) error {
	ctx, cancel := timeoutContext()
	defer cancel()

	_, err := d.locker.Unlock(ctx, lockId)
	return err
}

type index struct {
	collection string
	model      mongo.IndexModel
}

func requestIndexes() []index {
	return []index{
		{
			collection: models.CollectionNFTRequests,
			model: mongo.IndexModel{
				Keys:    bson.D{{Key: "request_id", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
		{
			collection: models.CollectionNFTRequests,
			model: mongo.IndexModel{
				Keys: bson.D{{Key: "wallet_address", Value: 1}, {Key: "created_at", Value: -1}},
			},
		},
		{
			collection: models.CollectionNFTRequests,
			model: mongo.IndexModel{
				Keys: bson.D{{Key: "destination_chain_id", Value: 1}, {Key: "status", Value: 1}},
			},
		},
		{
			collection: models.CollectionNFTRequests,
			model: mongo.IndexModel{
				Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: 1}},
			},
		},
		{
			collection: models.CollectionNFTRequests,
			model: mongo.IndexModel{
				Keys: bson.D{{Key: "prompt", Value: "text"}},
			},
		},
	}
}

// SetupIndexes sets up the indexes
func (d *mongoDatabase) SetupIndexes() error {
	log.Debug("[DB] Setting up indexes")

	indexes := requestIndexes()
	indexes = append(indexes,
		index{
			collection: models.CollectionUsers,
			model: mongo.IndexModel{
				Keys:    bson.D{{Key: "wallet_address", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
		index{
			collection: models.CollectionUserAnalytics,
			model: mongo.IndexModel{
				Keys:    bson.D{{Key: "wallet_address", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
		index{
			collection: models.CollectionPlatformStats,
			model: mongo.IndexModel{
				Keys:    bson.D{{Key: "date", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
		index{
			collection: models.CollectionOrphanEvents,
			model: mongo.IndexModel{
				Keys:    bson.D{{Key: "transaction_hash", Value: 1}, {Key: "log_index", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
		index{
			collection: models.CollectionOrphanEvents,
			model: mongo.IndexModel{
				Keys: bson.D{{Key: "status", Value: 1}, {Key: "first_seen_at", Value: 1}},
			},
		},
		index{
			collection: models.CollectionHealthChecks,
			model: mongo.IndexModel{
				Keys:    bson.D{{Key: "hostname", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
	)

	for _, idx := range indexes {
		ctx, cancel := timeoutContext()
		_, err := d.db.Collection(idx.collection).Indexes().CreateOne(ctx, idx.model)
		cancel()
		if err != nil {
			return err
		}
	}

	log.Info("[DB] Indexes setup")
	return nil
}

// Disconnect disconnects from the database
func (d *mongoDatabase) Disconnect() error {
	log.Debug("[DB] Disconnecting from database")
	ctx, cancel := timeoutContext()
	defer cancel()
	err := d.db.Client().Disconnect(ctx)
	log.Info("[DB] Disconnected from database")
	return err
}

// method for insert single value in a collection
func (d *mongoDatabase) InsertOne(collection string, data interface{}) (interface{}, error) {
	ctx, cancel := timeoutContext()
	defer cancel()
	res, err := d.db.Collection(collection).InsertOne(ctx, data)
	if err != nil {
		return nil, err
	}
	return res.InsertedID, nil
}

// method for find single value in a collection
func (d *mongoDatabase) FindOne(collection string, filter interface{}, result interface{}) error {
	ctx, cancel := timeoutContext()
	defer cancel()
	err := d.db.Collection(collection).FindOne(ctx, filter).Decode(result)
	return err
}

// method for find multiple values in a collection
func (d *mongoDatabase) FindMany(collection string, filter interface{}, result interface{}) error {
	ctx, cancel := timeoutContext()
	defer cancel()
	cursor, err := d.db.Collection(collection).Find(ctx, filter)
	if err != nil {
		return err
	}
	err = cursor.All(ctx, result)
	return err
}

// method for find multiple values in a collection with sort, skip and limit
func (d *mongoDatabase) FindManyPaginated(collection string, filter interface{}, sort interface{}, skip int64, limit int64, result interface{}) error {
	ctx, cancel := timeoutContext()
	defer cancel()
	opts := options.Find().SetSort(sort).SetSkip(skip).SetLimit(limit)
	cursor, err := d.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return err
	}
	err = cursor.All(ctx, result)
	return err
}

// method for update single value in a collection, returns the matched count
func (d *mongoDatabase) UpdateOne(collection string, filter interface{}, update interface{}) (int64, error) {
	ctx, cancel := timeoutContext()
	defer cancel()
	res, err := d.db.Collection(collection).UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

// method for upsert single value in a collection
func (d *mongoDatabase) UpsertOne(collection string, filter interface{}, update interface{}) error {
	ctx, cancel := timeoutContext()
	defer cancel()

	opts := options.Update().SetUpsert(true)
	_, err := d.db.Collection(collection).UpdateOne(ctx, filter, update, opts)
	return err
}

// InitDB creates a new database wrapper
func InitDB() {
	DB = &mongoDatabase{
		uri:      Config.MongoDB.URI,
		database: Config.MongoDB.Database,
	}

	err := DB.Connect()
	if err != nil {
		log.Fatal("[DB] Error connecting to database: ", err)
	}
	err = DB.SetupIndexes()
	if err != nil {
		log.Fatal("[DB] Error setting up indexes: ", err)
	}
	err = DB.SetupLockers()
	if err != nil {
		log.Fatal("[DB] Error setting up lockers: ", err)
	}
	log.Info("[DB] Database initialized")
}
