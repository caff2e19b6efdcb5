package config

import (
	"context"
	"fmt"
	migration "foodloop/cmd/database/migrate"
	"foodloop/internal/database"
	"foodloop/internal/utils"
	"foodloop/pkg/donation"
	"foodloop/pkg/grocery"
	"github.com/gofiber/fiber/v2/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"net/url"
	"time"
)

// Store bundles the repositories of one backend.
type Store struct {
	Groceries  grocery.GroceryRepository
	Donations  donation.DonationRepository
	Transactor database.Transactor
	Close      func(ctx context.Context) error
}

// ConnectStore picks the backend from the STORE_URI scheme: mongodb,
// postgres or memory.
func ConnectStore(ctx context.Context, cfg *utils.Config) (*Store, error) {
	uri, err := url.Parse(cfg.StoreURI)
	if err != nil {
		return nil, fmt.Errorf("invalid STORE_URI: %w", err)
	}

	switch uri.Scheme {
	case "mongodb", "mongodb+srv":
		return connectMongo(ctx, cfg)
	case "postgres", "postgresql":
		return connectPostgres(cfg)
	case "memory", "":
		log.Warn("using in-memory store, data is lost on restart")
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unsupported STORE_URI scheme %q", uri.Scheme)
	}
}

func NewMemoryStore() *Store {
	return &Store{
		Groceries:  grocery.NewGroceryMemoryRepository(),
		Donations:  donation.NewDonationMemoryRepository(),
		Transactor: database.NewPassthroughTransactor(),
		Close:      func(context.Context) error { return nil },
	}
}

func connectMongo(ctx context.Context, cfg *utils.Config) (*Store, error) {
	dbCtx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	client, err := mongo.Connect(dbCtx, options.Client().ApplyURI(cfg.StoreURI))
	if err != nil {
		return nil, fmt.Errorf("mongo connection failed: %w", err)
	}
	if err := client.Ping(dbCtx, nil); err != nil {
		client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping failed: %w", err)
	}

	db := client.Database(cfg.StoreDatabase)
	return &Store{
		Groceries:  grocery.NewGroceryMongoRepository(db),
		Donations:  donation.NewDonationMongoRepository(db),
		Transactor: database.NewPassthroughTransactor(),
		Close:      client.Disconnect,
	}, nil
}

func connectPostgres(cfg *utils.Config) (*Store, error) {
	db, err := gorm.Open(postgres.Open(cfg.StoreURI), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	if err := migration.Migrate(db); err != nil {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			sqlDB.Close()
		}
		return nil, err
	}

	return &Store{
		Groceries:  grocery.NewGroceryRepository(db),
		Donations:  donation.NewDonationRepository(db),
		Transactor: database.NewGormTransactor(db),
		Close: func(context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	}, nil
}
