package grocery

import (
	"context"
	"foodloop/domain"
	"foodloop/entities"
	"foodloop/internal/database"
	"foodloop/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sync"
	"testing"
	"time"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newTestService(now time.Time) (GroceryService, GroceryRepository) {
	repo := NewGroceryMemoryRepository()
	svc := NewGroceryService(repo, database.NewPassthroughTransactor(), utils.NewValidator(), fixedClock(now))
	return svc, repo
}

func seedItem(t *testing.T, repo GroceryRepository, name string, expiry time.Time) *entities.GroceryItem {
	t.Helper()
	item := &entities.GroceryItem{
		ID:              uuid.New().String(),
		Item:            name,
		Quantity:        "1",
		Unit:            "pcs",
		ManufactureDate: expiry.AddDate(0, 0, -30),
		ExpiryDate:      expiry,
		AddedOn:         time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.AddGroceryItem(context.Background(), item))
	return item
}

func TestAddGroceryItem(t *testing.T) {
	now := time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)

	valid := domain.AddGroceryItemRequest{
		SelectedItem: "Milk",
		Quantity:     "1",
		Unit:         "L",
		MfgDate:      "2024-01-01",
		ExpDate:      "2024-01-10",
	}

	t.Run("picklist item", func(t *testing.T) {
		svc, repo := newTestService(now)

		res, err := svc.AddGroceryItem(context.Background(), valid)
		require.NoError(t, err)

		assert.Equal(t, "Milk", res.Item)
		assert.Equal(t, now, res.AddedOn)
		assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), res.ExpiryDate)

		stored, err := repo.GetGroceryItemByID(context.Background(), res.ID)
		require.NoError(t, err)
		assert.Equal(t, "1", stored.Quantity)
		assert.Equal(t, "L", stored.Unit)
	})

	t.Run("custom item is trimmed", func(t *testing.T) {
		svc, _ := newTestService(now)
		req := valid
		req.SelectedItem = ""
		req.CustomItem = "  Homemade jam "

		res, err := svc.AddGroceryItem(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "Homemade jam", res.Item)
	})

	t.Run("manufacture after expiry is accepted", func(t *testing.T) {
		svc, _ := newTestService(now)
		req := valid
		req.MfgDate = "2024-02-01"

		_, err := svc.AddGroceryItem(context.Background(), req)
		assert.NoError(t, err)
	})

	rejections := []struct {
		name   string
		modify func(r *domain.AddGroceryItemRequest)
		want   error
	}{
		{"both item names", func(r *domain.AddGroceryItemRequest) { r.CustomItem = "Oat milk" }, domain.ErrItemChoice},
		{"no item name", func(r *domain.AddGroceryItemRequest) { r.SelectedItem = "" }, domain.ErrItemChoice},
		{"blank custom item only", func(r *domain.AddGroceryItemRequest) { r.SelectedItem = ""; r.CustomItem = "   " }, domain.ErrItemChoice},
		{"missing quantity", func(r *domain.AddGroceryItemRequest) { r.Quantity = "" }, domain.ErrQuantityRequired},
		{"bad manufacture date", func(r *domain.AddGroceryItemRequest) { r.MfgDate = "01/01/2024" }, domain.ErrInvalidManufactureDate},
		{"missing expiry date", func(r *domain.AddGroceryItemRequest) { r.ExpDate = "" }, domain.ErrInvalidExpiryDate},
		{"impossible expiry date", func(r *domain.AddGroceryItemRequest) { r.ExpDate = "2024-02-30" }, domain.ErrInvalidExpiryDate},
	}
	for _, tt := range rejections {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestService(now)
			req := valid
			tt.modify(&req)

			_, err := svc.AddGroceryItem(context.Background(), req)
			assert.ErrorIs(t, err, tt.want)

			count, err := repo.CountGroceryItems(context.Background())
			require.NoError(t, err)
			assert.Zero(t, count)
		})
	}
}

func TestGetDashboard(t *testing.T) {
	today := time.Date(2024, 1, 9, 9, 0, 0, 0, time.UTC)
	svc, repo := newTestService(today)

	seedItem(t, repo, "Yogurt", time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC))
	seedItem(t, repo, "Bread", time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC))
	seedItem(t, repo, "Rice", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))

	all, err := svc.GetDashboard(context.Background(), domain.FilterAll)
	require.NoError(t, err)
	require.Len(t, all.Items, 3)
	assert.Equal(t, "Yogurt", all.Items[0].Name)
	assert.Equal(t, -1, all.Items[0].DaysLeft)
	assert.Equal(t, domain.StatusExpiringSoon, all.Items[0].Status)
	assert.Equal(t, domain.StatusUseSoon, all.Items[1].Status)
	assert.Equal(t, domain.StatusFresh, all.Items[2].Status)
	assert.Equal(t, "Jan 12, 2024", all.Items[1].Expiry)
	assert.Equal(t, domain.StatusCounts{All: 3, ExpiringSoon: 1, UseSoon: 1, Fresh: 1}, all.Counts)

	soon, err := svc.GetDashboard(context.Background(), domain.FilterSoon)
	require.NoError(t, err)
	require.Len(t, soon.Items, 1)
	assert.Equal(t, "Bread", soon.Items[0].Name)
	assert.Equal(t, 3, soon.Counts.All)
}

func TestIntakeThenDashboardScenario(t *testing.T) {
	svc, _ := newTestService(time.Date(2024, 1, 9, 18, 0, 0, 0, time.UTC))

	_, err := svc.AddGroceryItem(context.Background(), domain.AddGroceryItemRequest{
		SelectedItem: "Milk",
		Quantity:     "1",
		Unit:         "L",
		MfgDate:      "2024-01-01",
		ExpDate:      "2024-01-10",
	})
	require.NoError(t, err)

	res, err := svc.GetDashboard(context.Background(), domain.ParseFilter("Expiring"))
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Milk", res.Items[0].Name)
	assert.Equal(t, 1, res.Items[0].DaysLeft)
	assert.Equal(t, domain.StatusExpiringSoon, res.Items[0].Status)
}

func TestMarkUsed(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 9, 9, 0, 0, 0, time.UTC)

	t.Run("existing item moves to the archive", func(t *testing.T) {
		svc, repo := newTestService(now)
		item := seedItem(t, repo, "Eggs", now.AddDate(0, 0, 3))

		require.NoError(t, svc.MarkUsed(ctx, item.ID))

		_, err := repo.GetGroceryItemByID(ctx, item.ID)
		assert.ErrorIs(t, err, domain.ErrGroceryItemNotFound)

		used, err := repo.GetUsedItems(ctx)
		require.NoError(t, err)
		require.Len(t, used, 1)
		assert.Equal(t, item.ID, used[0].ID)
		assert.Equal(t, "Eggs", used[0].Item)
		assert.Equal(t, item.ExpiryDate, used[0].ExpiryDate)
		assert.Equal(t, now, used[0].UsedOn)
	})

	t.Run("unknown id changes nothing", func(t *testing.T) {
		svc, repo := newTestService(now)
		seedItem(t, repo, "Eggs", now.AddDate(0, 0, 3))

		require.NoError(t, svc.MarkUsed(ctx, uuid.New().String()))
		require.NoError(t, svc.MarkUsed(ctx, "not-an-id"))

		active, _ := repo.CountGroceryItems(ctx)
		used, _ := repo.CountUsedItems(ctx)
		assert.Equal(t, int64(1), active)
		assert.Zero(t, used)
	})

	t.Run("second call is a no-op", func(t *testing.T) {
		svc, repo := newTestService(now)
		item := seedItem(t, repo, "Eggs", now.AddDate(0, 0, 3))

		require.NoError(t, svc.MarkUsed(ctx, item.ID))
		require.NoError(t, svc.MarkUsed(ctx, item.ID))

		used, _ := repo.CountUsedItems(ctx)
		assert.Equal(t, int64(1), used)
	})

	t.Run("concurrent calls archive once", func(t *testing.T) {
		svc, repo := newTestService(now)
		item := seedItem(t, repo, "Eggs", now.AddDate(0, 0, 3))

		errs := make([]error, 2)
		var wg sync.WaitGroup
		for i := range errs {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				errs[i] = svc.MarkUsed(ctx, item.ID)
			}(i)
		}
		wg.Wait()

		assert.NoError(t, errs[0])
		assert.NoError(t, errs[1])
		active, _ := repo.CountGroceryItems(ctx)
		used, _ := repo.CountUsedItems(ctx)
		assert.Zero(t, active)
		assert.Equal(t, int64(1), used)
	})

	t.Run("already archived entry is treated as done", func(t *testing.T) {
		svc, repo := newTestService(now)
		item := seedItem(t, repo, "Eggs", now.AddDate(0, 0, 3))
		used := entities.NewUsedItem(*item, now)
		require.NoError(t, repo.ArchiveUsedItem(ctx, &used))

		err := repo.ArchiveUsedItem(ctx, &used)
		assert.ErrorIs(t, err, domain.ErrGroceryItemNotFound)

		require.NoError(t, svc.MarkUsed(ctx, item.ID))
		count, _ := repo.CountUsedItems(ctx)
		assert.Equal(t, int64(1), count)
	})
}

func TestRemoveGroceryItem(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 9, 9, 0, 0, 0, time.UTC)
	svc, repo := newTestService(now)
	item := seedItem(t, repo, "Spinach", now)

	require.NoError(t, svc.RemoveGroceryItem(ctx, item.ID))
	require.NoError(t, svc.RemoveGroceryItem(ctx, item.ID))

	active, _ := repo.CountGroceryItems(ctx)
	used, _ := repo.CountUsedItems(ctx)
	assert.Zero(t, active)
	assert.Zero(t, used)
}
