package grocery

import (
	"context"
	"errors"
	"fmt"
	"foodloop/domain"
	"foodloop/entities"
	"github.com/gofiber/fiber/v2/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	ColGroceries = "groceries"
	ColUsedItems = "used_items"
)

type groceryMongoRepository struct {
	groceries *mongo.Collection
	usedItems *mongo.Collection
}

func NewGroceryMongoRepository(db *mongo.Database) GroceryRepository {
	groceries := db.Collection(ColGroceries)
	_, err := groceries.Indexes().CreateOne(
		context.Background(),
		mongo.IndexModel{Keys: bson.D{{Key: "expiry_date", Value: 1}}},
	)
	if err != nil {
		log.Warnf("failed to create index expiry_date: %v", err)
	}
	return &groceryMongoRepository{
		groceries: groceries,
		usedItems: db.Collection(ColUsedItems),
	}
}

func (r *groceryMongoRepository) AddGroceryItem(ctx context.Context, item *entities.GroceryItem) error {
	_, err := r.groceries.InsertOne(ctx, item)
	return err
}

func (r *groceryMongoRepository) GetGroceryItemByID(ctx context.Context, id string) (*entities.GroceryItem, error) {
	var item entities.GroceryItem
	if err := r.groceries.FindOne(ctx, bson.M{"_id": id}).Decode(&item); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrGroceryItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *groceryMongoRepository) GetGroceryItems(ctx context.Context) ([]*entities.GroceryItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "expiry_date", Value: 1}, {Key: "added_on", Value: 1}})
	cursor, err := r.groceries.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var items []*entities.GroceryItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *groceryMongoRepository) DeleteGroceryItem(ctx context.Context, id string) error {
	_, err := r.groceries.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *groceryMongoRepository) CountGroceryItems(ctx context.Context) (int64, error) {
	return r.groceries.CountDocuments(ctx, bson.M{})
}

func (r *groceryMongoRepository) ArchiveUsedItem(ctx context.Context, item *entities.UsedItem) error {
	_, err := r.usedItems.InsertOne(ctx, item)
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("used item %s already archived: %w", item.ID, domain.ErrGroceryItemNotFound)
	}
	return err
}

func (r *groceryMongoRepository) GetUsedItems(ctx context.Context) ([]*entities.UsedItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "used_on", Value: -1}})
	cursor, err := r.usedItems.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var items []*entities.UsedItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *groceryMongoRepository) CountUsedItems(ctx context.Context) (int64, error) {
	return r.usedItems.CountDocuments(ctx, bson.M{})
}
