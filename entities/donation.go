package entities

import (
	"time"
)

type Donation struct {
	ID        string         `gorm:"type:uuid;primary_key" bson:"_id" json:"id"`
	FoodBank  string         `bson:"foodbank" json:"foodbank"`
	Items     []DonationItem `gorm:"foreignKey:DonationID;constraint:OnDelete:CASCADE" bson:"items" json:"items"`
	DonatedAt time.Time      `bson:"donated_at" json:"donated_at"`
}

func (Donation) TableName() string {
	return "donations"
}

// DonationItem is a snapshot of a GroceryItem taken when it was donated.
// Position keeps the order items were selected in.
type DonationItem struct {
	ID         string    `gorm:"type:uuid;primary_key" bson:"-" json:"-"`
	DonationID string    `gorm:"type:uuid;index" bson:"-" json:"-"`
	Position   int       `bson:"-" json:"-"`
	Item       string    `bson:"item" json:"item"`
	Quantity   string    `bson:"quantity" json:"quantity"`
	Unit       string    `bson:"unit" json:"unit"`
	Status     string    `bson:"status" json:"status"`
	ExpiryDate time.Time `gorm:"type:date" bson:"expiry_date" json:"expiry_date"`
}

func (DonationItem) TableName() string {
	return "donation_items"
}
