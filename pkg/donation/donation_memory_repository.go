package donation

import (
	"context"
	"foodloop/entities"
	"sort"
	"sync"
)

type donationMemoryRepository struct {
	mu        sync.RWMutex
	donations []entities.Donation
}

func NewDonationMemoryRepository() DonationRepository {
	return &donationMemoryRepository{}
}

func (r *donationMemoryRepository) CreateDonation(_ context.Context, donation *entities.Donation) error {
	d := *donation
	d.Items = append([]entities.DonationItem(nil), donation.Items...)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.donations = append(r.donations, d)
	return nil
}

func (r *donationMemoryRepository) GetDonations(_ context.Context) ([]*entities.Donation, error) {
	r.mu.RLock()
	donations := make([]*entities.Donation, 0, len(r.donations))
	for _, d := range r.donations {
		d := d
		d.Items = append([]entities.DonationItem(nil), d.Items...)
		donations = append(donations, &d)
	}
	r.mu.RUnlock()

	sort.SliceStable(donations, func(i, j int) bool {
		return donations[i].DonatedAt.After(donations[j].DonatedAt)
	})
	return donations, nil
}

func (r *donationMemoryRepository) CountDonatedItems(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var count int64
	for _, d := range r.donations {
		count += int64(len(d.Items))
	}
	return count, nil
}
