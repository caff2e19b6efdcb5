package entities

import (
	"time"
)

// GroceryItem is an entry of the active inventory. It is never updated
// after creation, only deleted by a lifecycle transition or a removal.
type GroceryItem struct {
	ID              string    `gorm:"type:uuid;primary_key" bson:"_id" json:"id"`
	Item            string    `bson:"item" json:"item"`
	Quantity        string    `bson:"quantity" json:"quantity"`
	Unit            string    `bson:"unit" json:"unit"`
	ManufactureDate time.Time `gorm:"type:date" bson:"manufacture_date" json:"manufacture_date"`
	ExpiryDate      time.Time `gorm:"type:date;index" bson:"expiry_date" json:"expiry_date"`
	AddedOn         time.Time `bson:"added_on" json:"added_on"`
}

func (GroceryItem) TableName() string {
	return "groceries"
}

// UsedItem archives a consumed GroceryItem under the same id.
type UsedItem struct {
	ID              string    `gorm:"type:uuid;primary_key" bson:"_id" json:"id"`
	Item            string    `bson:"item" json:"item"`
	Quantity        string    `bson:"quantity" json:"quantity"`
	Unit            string    `bson:"unit" json:"unit"`
	ManufactureDate time.Time `gorm:"type:date" bson:"manufacture_date" json:"manufacture_date"`
	ExpiryDate      time.Time `gorm:"type:date" bson:"expiry_date" json:"expiry_date"`
	AddedOn         time.Time `bson:"added_on" json:"added_on"`
	UsedOn          time.Time `bson:"used_on" json:"used_on"`
}

func (UsedItem) TableName() string {
	return "used_items"
}

func NewUsedItem(item GroceryItem, usedOn time.Time) UsedItem {
	return UsedItem{
		ID:              item.ID,
		Item:            item.Item,
		Quantity:        item.Quantity,
		Unit:            item.Unit,
		ManufactureDate: item.ManufactureDate,
		ExpiryDate:      item.ExpiryDate,
		AddedOn:         item.AddedOn,
		UsedOn:          usedOn,
	}
}
