package grocery

import (
	"context"
	"fmt"
	"foodloop/domain"
	"foodloop/entities"
	"sort"
	"sync"
)

// groceryMemoryRepository keeps the inventory in process memory. It backs
// the memory:// store and the tests.
type groceryMemoryRepository struct {
	mu        sync.RWMutex
	groceries map[string]entities.GroceryItem
	usedItems map[string]entities.UsedItem
}

func NewGroceryMemoryRepository() GroceryRepository {
	return &groceryMemoryRepository{
		groceries: make(map[string]entities.GroceryItem),
		usedItems: make(map[string]entities.UsedItem),
	}
}

func (r *groceryMemoryRepository) AddGroceryItem(_ context.Context, item *entities.GroceryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.groceries[item.ID]; ok {
		return fmt.Errorf("duplicate grocery item id %s", item.ID)
	}
	r.groceries[item.ID] = *item
	return nil
}

func (r *groceryMemoryRepository) GetGroceryItemByID(_ context.Context, id string) (*entities.GroceryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.groceries[id]
	if !ok {
		return nil, domain.ErrGroceryItemNotFound
	}
	return &item, nil
}

func (r *groceryMemoryRepository) GetGroceryItems(_ context.Context) ([]*entities.GroceryItem, error) {
	r.mu.RLock()
	items := make([]*entities.GroceryItem, 0, len(r.groceries))
	for _, item := range r.groceries {
		item := item
		items = append(items, &item)
	}
	r.mu.RUnlock()

	sort.Slice(items, func(i, j int) bool {
		if !items[i].ExpiryDate.Equal(items[j].ExpiryDate) {
			return items[i].ExpiryDate.Before(items[j].ExpiryDate)
		}
		if !items[i].AddedOn.Equal(items[j].AddedOn) {
			return items[i].AddedOn.Before(items[j].AddedOn)
		}
		return items[i].ID < items[j].ID
	})
	return items, nil
}

func (r *groceryMemoryRepository) DeleteGroceryItem(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.groceries, id)
	return nil
}

func (r *groceryMemoryRepository) CountGroceryItems(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.groceries)), nil
}

func (r *groceryMemoryRepository) ArchiveUsedItem(_ context.Context, item *entities.UsedItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.usedItems[item.ID]; ok {
		return fmt.Errorf("used item %s already archived: %w", item.ID, domain.ErrGroceryItemNotFound)
	}
	r.usedItems[item.ID] = *item
	return nil
}

func (r *groceryMemoryRepository) GetUsedItems(_ context.Context) ([]*entities.UsedItem, error) {
	r.mu.RLock()
	items := make([]*entities.UsedItem, 0, len(r.usedItems))
	for _, item := range r.usedItems {
		item := item
		items = append(items, &item)
	}
	r.mu.RUnlock()

	sort.Slice(items, func(i, j int) bool {
		if !items[i].UsedOn.Equal(items[j].UsedOn) {
			return items[i].UsedOn.After(items[j].UsedOn)
		}
		return items[i].ID < items[j].ID
	})
	return items, nil
}

func (r *groceryMemoryRepository) CountUsedItems(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.usedItems)), nil
}
