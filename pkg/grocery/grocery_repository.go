package grocery

import (
	"context"
	"errors"
	"fmt"
	"foodloop/domain"
	"foodloop/entities"
	"foodloop/internal/database"
	"gorm.io/gorm"
)

type (
	// GroceryRepository covers the active inventory and the used-item
	// archive. Lookups report domain.ErrGroceryItemNotFound on a miss, and so
	// does ArchiveUsedItem when the entry was already archived.
	GroceryRepository interface {
		AddGroceryItem(ctx context.Context, item *entities.GroceryItem) error
		GetGroceryItemByID(ctx context.Context, id string) (*entities.GroceryItem, error)
		GetGroceryItems(ctx context.Context) ([]*entities.GroceryItem, error)
		DeleteGroceryItem(ctx context.Context, id string) error
		CountGroceryItems(ctx context.Context) (int64, error)

		ArchiveUsedItem(ctx context.Context, item *entities.UsedItem) error
		GetUsedItems(ctx context.Context) ([]*entities.UsedItem, error)
		CountUsedItems(ctx context.Context) (int64, error)
	}

	groceryRepository struct {
		db *gorm.DB
	}
)

func NewGroceryRepository(db *gorm.DB) GroceryRepository {
	return &groceryRepository{db: db}
}

func (r *groceryRepository) AddGroceryItem(ctx context.Context, item *entities.GroceryItem) error {
	return database.Conn(ctx, r.db).Create(item).Error
}

func (r *groceryRepository) GetGroceryItemByID(ctx context.Context, id string) (*entities.GroceryItem, error) {
	var item entities.GroceryItem
	if err := database.Conn(ctx, r.db).Where("id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrGroceryItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *groceryRepository) GetGroceryItems(ctx context.Context) ([]*entities.GroceryItem, error) {
	var items []*entities.GroceryItem
	if err := database.Conn(ctx, r.db).
		Order("expiry_date asc").
		Order("added_on asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *groceryRepository) DeleteGroceryItem(ctx context.Context, id string) error {
	return database.Conn(ctx, r.db).Where("id = ?", id).Delete(&entities.GroceryItem{}).Error
}

func (r *groceryRepository) CountGroceryItems(ctx context.Context) (int64, error) {
	var count int64
	if err := database.Conn(ctx, r.db).Model(&entities.GroceryItem{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *groceryRepository) ArchiveUsedItem(ctx context.Context, item *entities.UsedItem) error {
	err := database.Conn(ctx, r.db).Create(item).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("used item %s already archived: %w", item.ID, domain.ErrGroceryItemNotFound)
	}
	return err
}

func (r *groceryRepository) GetUsedItems(ctx context.Context) ([]*entities.UsedItem, error) {
	var items []*entities.UsedItem
	if err := database.Conn(ctx, r.db).Order("used_on desc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *groceryRepository) CountUsedItems(ctx context.Context) (int64, error) {
	var count int64
	if err := database.Conn(ctx, r.db).Model(&entities.UsedItem{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
