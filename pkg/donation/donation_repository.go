package donation

import (
	"context"
	"foodloop/entities"
	"foodloop/internal/database"
	"gorm.io/gorm"
)

type (
	DonationRepository interface {
		CreateDonation(ctx context.Context, donation *entities.Donation) error
		GetDonations(ctx context.Context) ([]*entities.Donation, error)
		CountDonatedItems(ctx context.Context) (int64, error)
	}

	donationRepository struct {
		db *gorm.DB
	}
)

func NewDonationRepository(db *gorm.DB) DonationRepository {
	return &donationRepository{db: db}
}

func (r *donationRepository) CreateDonation(ctx context.Context, donation *entities.Donation) error {
	return database.Conn(ctx, r.db).Create(donation).Error
}

func (r *donationRepository) GetDonations(ctx context.Context) ([]*entities.Donation, error) {
	var donations []*entities.Donation
	if err := database.Conn(ctx, r.db).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc")
		}).
		Order("donated_at desc").
		Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}

// CountDonatedItems counts snapshots across all donations, not donations.
func (r *donationRepository) CountDonatedItems(ctx context.Context) (int64, error) {
	var count int64
	if err := database.Conn(ctx, r.db).Model(&entities.DonationItem{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
