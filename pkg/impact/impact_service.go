package impact

import (
	"context"
	"foodloop/domain"
	"foodloop/pkg/donation"
	"foodloop/pkg/grocery"
	"math"
)

type (
	ImpactService interface {
		ComputeImpact(ctx context.Context) (domain.ImpactResponse, error)
	}

	impactService struct {
		groceryRepository  grocery.GroceryRepository
		donationRepository donation.DonationRepository
	}
)

func NewImpactService(groceryRepository grocery.GroceryRepository, donationRepository donation.DonationRepository) ImpactService {
	return &impactService{
		groceryRepository:  groceryRepository,
		donationRepository: donationRepository,
	}
}

// ComputeImpact counts entries that left the inventory through use or
// donation. The usage rate is a percentage of everything ever added,
// rounded to two decimals.
func (s *impactService) ComputeImpact(ctx context.Context) (domain.ImpactResponse, error) {
	used, err := s.groceryRepository.CountUsedItems(ctx)
	if err != nil {
		return domain.ImpactResponse{}, err
	}
	donated, err := s.donationRepository.CountDonatedItems(ctx)
	if err != nil {
		return domain.ImpactResponse{}, err
	}
	current, err := s.groceryRepository.CountGroceryItems(ctx)
	if err != nil {
		return domain.ImpactResponse{}, err
	}

	saved := used + donated
	total := saved + current
	return domain.ImpactResponse{
		ItemsSaved:   saved,
		ItemsDonated: donated,
		UsageRate:    UsageRate(saved, total),
		CurrentItems: current,
		TotalAdded:   total,
	}, nil
}

func UsageRate(saved, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(saved)/float64(total)*100*100) / 100
}
