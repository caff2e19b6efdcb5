package config

import (
	"context"
	"encoding/json"
	"foodloop/entities"
	"foodloop/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func newTestApp(t *testing.T) (*fiber.App, *Store) {
	t.Helper()
	cfg := &utils.Config{
		AppName:       "FoodLoop",
		Port:          "0",
		LogFile:       filepath.Join(t.TempDir(), "app.log"),
		RateLimitMax:  1000,
		StoreURI:      "memory://",
		StoreDatabase: "foodloop",
	}
	store := NewMemoryStore()
	app, err := NewApp(context.Background(), cfg, store)
	require.NoError(t, err)
	return app, store
}

func TestNewAppReturnsLogFileError(t *testing.T) {
	cfg := &utils.Config{
		AppName:      "FoodLoop",
		LogFile:      t.TempDir(),
		RateLimitMax: 10,
	}
	app, err := NewApp(context.Background(), cfg, NewMemoryStore())
	assert.Error(t, err)
	assert.Nil(t, app)
}

func seedGrocery(t *testing.T, store *Store, name string, expiry time.Time) string {
	t.Helper()
	item := &entities.GroceryItem{
		ID:              uuid.New().String(),
		Item:            name,
		Quantity:        "1",
		Unit:            "pcs",
		ManufactureDate: expiry.AddDate(0, 0, -10),
		ExpiryDate:      expiry,
		AddedOn:         time.Now(),
	}
	require.NoError(t, store.Groceries.AddGroceryItem(context.Background(), item))
	return item.ID
}

func postForm(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(fiber.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	return req
}

func readBody(t *testing.T, res *http.Response) string {
	t.Helper()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return string(body)
}

func TestPages(t *testing.T) {
	app, _ := newTestApp(t)

	for _, path := range []string{"/", "/grocery", "/dashboard", "/donate", "/impact", "/recipes"} {
		res, err := app.Test(httptest.NewRequest(fiber.MethodGet, path, nil))
		require.NoError(t, err, path)
		assert.Equal(t, fiber.StatusOK, res.StatusCode, path)
		assert.Contains(t, readBody(t, res), "FoodLoop", path)
	}
}

func TestGroceryIntakeFlow(t *testing.T) {
	app, store := newTestApp(t)
	today := time.Now()

	t.Run("valid entry redirects", func(t *testing.T) {
		res, err := app.Test(postForm("/grocery", url.Values{
			"selected_item": {"Milk"},
			"quantity":      {"1"},
			"unit":          {"L"},
			"mfg_date":      {today.AddDate(0, 0, -1).Format("2006-01-02")},
			"exp_date":      {today.AddDate(0, 0, 1).Format("2006-01-02")},
		}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusSeeOther, res.StatusCode)
		assert.Equal(t, "/grocery?added=1", res.Header.Get(fiber.HeaderLocation))

		count, err := store.Groceries.CountGroceryItems(context.Background())
		require.NoError(t, err)
		assert.EqualValues(t, 1, count)
	})

	t.Run("both item fields re-render the form", func(t *testing.T) {
		res, err := app.Test(postForm("/grocery", url.Values{
			"selected_item": {"Milk"},
			"custom_item":   {"Oat milk"},
			"quantity":      {"1"},
			"mfg_date":      {"2024-01-01"},
			"exp_date":      {"2024-01-10"},
		}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)
		body := readBody(t, res)
		assert.Contains(t, body, "please choose only one item")
		assert.Contains(t, body, `value="Oat milk"`)

		count, err := store.Groceries.CountGroceryItems(context.Background())
		require.NoError(t, err)
		assert.EqualValues(t, 1, count)
	})

	t.Run("dashboard lists the entry", func(t *testing.T) {
		res, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/dashboard?filter=Expiring", nil))
		require.NoError(t, err)
		body := readBody(t, res)
		assert.Contains(t, body, "Milk")
		assert.Contains(t, body, "Expiring Soon")

		res, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/dashboard?filter=Fresh", nil))
		require.NoError(t, err)
		assert.Contains(t, readBody(t, res), "No items to show.")
	})
}

func TestMarkUsedAndRemoveRoutes(t *testing.T) {
	app, store := newTestApp(t)
	ctx := context.Background()
	used := seedGrocery(t, store, "Bread", time.Now().AddDate(0, 0, 3))
	removed := seedGrocery(t, store, "Cheese", time.Now().AddDate(0, 0, 9))

	res, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/mark_used/"+used, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, res.StatusCode)
	assert.Equal(t, "/dashboard", res.Header.Get(fiber.HeaderLocation))

	res, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/remove/"+removed, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, res.StatusCode)

	res, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/mark_used/not-an-id", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, res.StatusCode)

	count, err := store.Groceries.CountGroceryItems(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
	usedCount, err := store.Groceries.CountUsedItems(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, usedCount)
}

func TestDonateRoute(t *testing.T) {
	app, store := newTestApp(t)
	ctx := context.Background()
	bread := seedGrocery(t, store, "Bread", time.Now().AddDate(0, 0, 1))
	rice := seedGrocery(t, store, "Rice", time.Now().AddDate(0, 0, 40))

	res, err := app.Test(postForm("/donate", url.Values{
		"items":    {bread, rice},
		"foodbank": {"Hoysala Trust"},
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusSeeOther, res.StatusCode)
	assert.Equal(t, "/donate?success=1", res.Header.Get(fiber.HeaderLocation))

	donations, err := store.Donations.GetDonations(ctx)
	require.NoError(t, err)
	require.Len(t, donations, 1)
	assert.Len(t, donations[0].Items, 2)

	res, err = app.Test(postForm("/donate", url.Values{
		"items":    {bread},
		"foodbank": {"Hoysala Trust"},
	}))
	require.NoError(t, err)
	assert.Equal(t, "/donate?success=1", res.Header.Get(fiber.HeaderLocation))

	donations, err = store.Donations.GetDonations(ctx)
	require.NoError(t, err)
	assert.Len(t, donations, 1)

	res, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/donate?success=1", nil))
	require.NoError(t, err)
	assert.Contains(t, readBody(t, res), "Your donation has been recorded")
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func decode(t *testing.T, res *http.Response) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.NewDecoder(res.Body).Decode(&env))
	return env
}

func TestApi(t *testing.T) {
	app, store := newTestApp(t)
	seedGrocery(t, store, "Eggs", time.Now().AddDate(0, 0, 5))

	t.Run("add grocery rejects missing quantity", func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodPost, "/api/v1/groceries", strings.NewReader(
			`{"custom_item":"Jam","mfg_date":"2024-01-01","exp_date":"2024-02-01"}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		res, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)
		env := decode(t, res)
		assert.False(t, env.Status)
		assert.Equal(t, "quantity is required", env.Error)
	})

	t.Run("list groceries", func(t *testing.T) {
		res, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/groceries?filter=Soon", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, res.StatusCode)

		var dashboard struct {
			Items []struct {
				Name   string `json:"name"`
				Status string `json:"status"`
			} `json:"items"`
		}
		require.NoError(t, json.Unmarshal(decode(t, res).Data, &dashboard))
		require.Len(t, dashboard.Items, 1)
		assert.Equal(t, "Eggs", dashboard.Items[0].Name)
		assert.Equal(t, "Use Soon", dashboard.Items[0].Status)
	})

	t.Run("impact", func(t *testing.T) {
		res, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/impact", nil))
		require.NoError(t, err)
		var impact struct {
			ItemsSaved int64   `json:"items_saved"`
			UsageRate  float64 `json:"usage_rate"`
		}
		require.NoError(t, json.Unmarshal(decode(t, res).Data, &impact))
		assert.Zero(t, impact.ItemsSaved)
		assert.Zero(t, impact.UsageRate)
	})

	t.Run("recipe without generator reports the error", func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodPost, "/api/v1/recipes", strings.NewReader(`{"ingredients":"eggs"}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		res, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, res.StatusCode)

		var suggestion struct {
			Error string `json:"error"`
		}
		require.NoError(t, json.Unmarshal(decode(t, res).Data, &suggestion))
		assert.True(t, strings.HasPrefix(suggestion.Error, "Error: "))
	})

	t.Run("food banks", func(t *testing.T) {
		res, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/food-banks", nil))
		require.NoError(t, err)
		var banks []struct {
			Name string `json:"name"`
		}
		require.NoError(t, json.Unmarshal(decode(t, res).Data, &banks))
		assert.NotEmpty(t, banks)
	})
}

func TestPingAndMetrics(t *testing.T) {
	app, _ := newTestApp(t)

	res, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)

	res, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)
	assert.Contains(t, readBody(t, res), "http_requests_total")
}
