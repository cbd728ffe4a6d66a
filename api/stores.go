package api

import (
	"context"
	"fmt"

	"github.com/alex-pricope/snackify/logging"
	"github.com/alex-pricope/snackify/seed"
	"github.com/alex-pricope/snackify/storage"
	"github.com/alex-pricope/snackify/storage/migrations"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// Stores groups the storage implementations selected by storage.driver.
type Stores struct {
	Snacks   storage.SnackStorage
	Ratings  storage.RatingStorage
	Comments storage.CommentStorage
	Profiles storage.ProfileStorage

	close func() error
}

// Close releases the underlying connection, if any.
func (s *Stores) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// OpenStores builds the storage layer for the configured driver. The memory
// driver starts out populated with the embedded seed catalogue.
func OpenStores(ctx context.Context, conf StorageConfig) (*Stores, error) {
	switch conf.Driver {
	case DriverDynamo:
		cfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}
		client := dynamodb.NewFromConfig(cfg)
		logging.Log.Info("Using DynamoDB storage")
		return &Stores{
			Snacks:   &storage.DynamoSnackStorage{Client: client, TableName: conf.TableNameSnacks},
			Ratings:  &storage.DynamoRatingStorage{Client: client, TableName: conf.TableNameRatings},
			Comments: &storage.DynamoCommentStorage{Client: client, TableName: conf.TableNameComments},
			Profiles: &storage.DynamoProfileStorage{Client: client, TableName: conf.TableNameProfiles},
		}, nil

	case DriverPostgres:
		if conf.DSN == "" {
			return nil, fmt.Errorf("storage.dsn is required for the %s driver", DriverPostgres)
		}
		db, err := storage.OpenPostgres(ctx, conf.DSN)
		if err != nil {
			return nil, err
		}
		if conf.Migrate {
			if err := migrations.Up(db.DB); err != nil {
				_ = db.Close()
				return nil, err
			}
			logging.Log.Info("Postgres schema is up to date")
		}
		return &Stores{
			Snacks:   &storage.PostgresSnackStorage{DB: db},
			Ratings:  &storage.PostgresRatingStorage{DB: db},
			Comments: &storage.PostgresCommentStorage{DB: db},
			Profiles: &storage.PostgresProfileStorage{DB: db},
			close:    db.Close,
		}, nil

	case DriverMemory:
		snackStore := storage.NewMemorySnackStorage()
		if _, err := seed.Populate(ctx, snackStore); err != nil {
			return nil, err
		}
		logging.Log.Warn("Using in-memory storage, data is lost on restart")
		return &Stores{
			Snacks:   snackStore,
			Ratings:  storage.NewMemoryRatingStorage(),
			Comments: storage.NewMemoryCommentStorage(),
			Profiles: storage.NewMemoryProfileStorage(),
		}, nil
	}
	return nil, fmt.Errorf("unknown storage driver '%s'", conf.Driver)
}
