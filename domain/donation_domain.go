package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetFoodBanks   = "food banks retrieved successfully"
	MessageSuccessCreateDonation = "donation recorded successfully"
	MessageSuccessGetDonations   = "donations retrieved successfully"
	MessageNothingDonated        = "no donation recorded"

	MessageFailedCreateDonation = "failed to record donation"
	MessageFailedGetDonations   = "failed to retrieve donations"

	ErrNothingDonated = errors.New("none of the selected items are in the inventory")
)

type (
	FoodBank struct {
		Name     string `yaml:"name" json:"name"`
		Address  string `yaml:"address" json:"address"`
		Phone    string `yaml:"phone" json:"phone"`
		Hours    string `yaml:"hours" json:"hours"`
		Distance string `yaml:"distance" json:"distance"`
	}

	DonationRequest struct {
		ItemIDs  []string `json:"items" form:"items"`
		FoodBank string   `json:"foodbank" form:"foodbank"`
	}

	DonationItemSummary struct {
		Item       string    `json:"item"`
		Quantity   string    `json:"quantity"`
		Unit       string    `json:"unit"`
		Status     Status    `json:"status"`
		ExpiryDate time.Time `json:"expiry_date"`
	}

	Donation struct {
		ID         string                `json:"id"`
		FoodBank   string                `json:"foodbank"`
		Items      []DonationItemSummary `json:"items"`
		DonatedAt  time.Time             `json:"donated_at"`
		ReceiptURL string                `json:"receipt_url,omitempty"`
	}

	DonationPage struct {
		Groceries []GroceryItemResponse `json:"groceries"`
		FoodBanks []FoodBank            `json:"food_banks"`
	}
)
