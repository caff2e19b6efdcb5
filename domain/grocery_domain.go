package domain

import (
	"errors"
	"time"
)

type (
	// Status is the freshness tag derived from an expiry date. It is
	// computed on read and never stored on an active entry.
	Status string

	// Filter selects a subset of the classified dashboard listing.
	Filter string
)

const (
	StatusExpiringSoon Status = "Expiring Soon"
	StatusUseSoon      Status = "Use Soon"
	StatusFresh        Status = "Fresh"

	FilterAll      Filter = "All"
	FilterExpiring Filter = "Expiring"
	FilterSoon     Filter = "Soon"
	FilterFresh    Filter = "Fresh"
)

var (
	MessageSuccessAddGroceryItem    = "item successfully added"
	MessageSuccessGetGroceryItems   = "grocery items retrieved successfully"
	MessageSuccessMarkUsed          = "item marked as used"
	MessageSuccessRemoveGroceryItem = "item removed"
	MessageSuccessGetUsedItems      = "used items retrieved successfully"

	MessageFailedAddGroceryItem    = "failed to add grocery item"
	MessageFailedGetGroceryItems   = "failed to retrieve grocery items"
	MessageFailedMarkUsed          = "failed to mark item as used"
	MessageFailedRemoveGroceryItem = "failed to remove grocery item"
	MessageFailedGetUsedItems      = "failed to retrieve used items"

	ErrItemChoice             = errors.New("please choose only one item: from the grocery list or a custom item")
	ErrQuantityRequired       = errors.New("quantity is required")
	ErrInvalidManufactureDate = errors.New("manufacture date must be a valid date (YYYY-MM-DD)")
	ErrInvalidExpiryDate      = errors.New("expiry date must be a valid date (YYYY-MM-DD)")
	ErrGroceryItemNotFound    = errors.New("grocery item not found")
)

// ParseFilter maps a query value onto a Filter; unknown values list everything.
func ParseFilter(s string) Filter {
	switch Filter(s) {
	case FilterExpiring, FilterSoon, FilterFresh:
		return Filter(s)
	default:
		return FilterAll
	}
}

// Matches reports whether an entry with the given status belongs to the filter.
func (f Filter) Matches(status Status) bool {
	switch f {
	case FilterExpiring:
		return status == StatusExpiringSoon
	case FilterSoon:
		return status == StatusUseSoon
	case FilterFresh:
		return status == StatusFresh
	default:
		return true
	}
}

type (
	AddGroceryItemRequest struct {
		SelectedItem string `json:"selected_item" form:"selected_item" validate:"required_without=CustomItem,excluded_with=CustomItem"`
		CustomItem   string `json:"custom_item" form:"custom_item" validate:"required_without=SelectedItem,excluded_with=SelectedItem"`
		Quantity     string `json:"quantity" form:"quantity" validate:"required"`
		Unit         string `json:"unit" form:"unit"`
		MfgDate      string `json:"mfg_date" form:"mfg_date" validate:"required,datetime=2006-01-02"`
		ExpDate      string `json:"exp_date" form:"exp_date" validate:"required,datetime=2006-01-02"`
	}

	AddGroceryItemResponse struct {
		ID              string    `json:"id"`
		Item            string    `json:"item"`
		Quantity        string    `json:"quantity"`
		Unit            string    `json:"unit"`
		ManufactureDate time.Time `json:"manufacture_date"`
		ExpiryDate      time.Time `json:"expiry_date"`
		AddedOn         time.Time `json:"added_on"`
	}

	GroceryItemResponse struct {
		ID              string    `json:"id"`
		Name            string    `json:"name"`
		Quantity        string    `json:"quantity"`
		Unit            string    `json:"unit"`
		ManufactureDate time.Time `json:"manufacture_date"`
		ExpiryDate      time.Time `json:"expiry_date"`
		Mfg             string    `json:"mfg"`
		Expiry          string    `json:"expiry"`
		DaysLeft        int       `json:"days_left"`
		Status          Status    `json:"status"`
	}

	StatusCounts struct {
		All          int `json:"all"`
		ExpiringSoon int `json:"expiring_soon"`
		UseSoon      int `json:"use_soon"`
		Fresh        int `json:"fresh"`
	}

	DashboardResponse struct {
		Filter Filter                `json:"filter"`
		Items  []GroceryItemResponse `json:"items"`
		Counts StatusCounts          `json:"counts"`
	}
)
