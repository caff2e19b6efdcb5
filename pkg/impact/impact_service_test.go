package impact

import (
	"context"
	"foodloop/entities"
	"foodloop/pkg/donation"
	"foodloop/pkg/grocery"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func TestComputeImpact(t *testing.T) {
	ctx := context.Background()
	expiry := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	groceries := grocery.NewGroceryMemoryRepository()
	donations := donation.NewDonationMemoryRepository()
	svc := NewImpactService(groceries, donations)

	t.Run("empty store", func(t *testing.T) {
		res, err := svc.ComputeImpact(ctx)
		require.NoError(t, err)
		assert.Zero(t, res.ItemsSaved)
		assert.Zero(t, res.ItemsDonated)
		assert.Zero(t, res.UsageRate)
	})

	for i := 0; i < 3; i++ {
		require.NoError(t, groceries.ArchiveUsedItem(ctx, &entities.UsedItem{
			ID:         uuid.New().String(),
			Item:       "Yogurt",
			ExpiryDate: expiry,
			UsedOn:     expiry,
		}))
	}
	require.NoError(t, donations.CreateDonation(ctx, &entities.Donation{
		ID:       uuid.New().String(),
		FoodBank: "Hoysala Trust",
		Items: []entities.DonationItem{
			{ID: uuid.New().String(), Item: "Rice", Position: 0},
			{ID: uuid.New().String(), Item: "Lentils", Position: 1},
		},
		DonatedAt: expiry,
	}))
	for i := 0; i < 5; i++ {
		require.NoError(t, groceries.AddGroceryItem(ctx, &entities.GroceryItem{
			ID:         uuid.New().String(),
			Item:       "Pasta",
			ExpiryDate: expiry,
		}))
	}

	t.Run("used, donated and active", func(t *testing.T) {
		res, err := svc.ComputeImpact(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 5, res.ItemsSaved)
		assert.EqualValues(t, 2, res.ItemsDonated)
		assert.EqualValues(t, 5, res.CurrentItems)
		assert.EqualValues(t, 10, res.TotalAdded)
		assert.Equal(t, 50.0, res.UsageRate)
	})
}

func TestUsageRate(t *testing.T) {
	assert.Equal(t, 0.0, UsageRate(0, 0))
	assert.Equal(t, 100.0, UsageRate(4, 4))
	assert.Equal(t, 33.33, UsageRate(1, 3))
	assert.Equal(t, 66.67, UsageRate(2, 3))
}
