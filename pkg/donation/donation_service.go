package donation

import (
	"context"
	"errors"
	"foodloop/domain"
	"foodloop/entities"
	"foodloop/internal/database"
	"foodloop/internal/metrics"
	"foodloop/pkg/grocery"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"strings"
	"time"
)

type (
	DonationService interface {
		GetFoodBanks() []domain.FoodBank
		Donate(ctx context.Context, req domain.DonationRequest) (*domain.Donation, error)
		GetDonations(ctx context.Context) ([]*domain.Donation, error)
	}

	donationService struct {
		donationRepository DonationRepository
		groceryRepository  grocery.GroceryRepository
		transactor         database.Transactor
		notifier           Notifier
		foodBanks          []domain.FoodBank
		now                func() time.Time
	}
)

// NewDonationService builds the donation service. Empty foodBanks falls
// back to DefaultFoodBanks, a nil notifier disables receipts and a nil now
// uses time.Now.
func NewDonationService(
	donationRepository DonationRepository,
	groceryRepository grocery.GroceryRepository,
	transactor database.Transactor,
	notifier Notifier,
	foodBanks []domain.FoodBank,
	now func() time.Time,
) DonationService {
	if len(foodBanks) == 0 {
		foodBanks = DefaultFoodBanks
	}
	if now == nil {
		now = time.Now
	}
	return &donationService{
		donationRepository: donationRepository,
		groceryRepository:  groceryRepository,
		transactor:         transactor,
		notifier:           notifier,
		foodBanks:          foodBanks,
		now:                now,
	}
}

func (s *donationService) GetFoodBanks() []domain.FoodBank {
	return s.foodBanks
}

// Donate moves the selected entries out of the inventory into a single
// donation record. A request without ids or without a food bank does
// nothing and returns no error. When none of the ids resolve no record is
// written and ErrNothingDonated is returned.
func (s *donationService) Donate(ctx context.Context, req domain.DonationRequest) (*domain.Donation, error) {
	foodBank := strings.TrimSpace(req.FoodBank)
	if len(req.ItemIDs) == 0 || foodBank == "" {
		return nil, nil
	}

	now := s.now()
	donation := &entities.Donation{
		ID:        uuid.New().String(),
		FoodBank:  foodBank,
		DonatedAt: now,
	}

	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		for _, id := range req.ItemIDs {
			if _, err := uuid.Parse(id); err != nil {
				continue
			}

			item, err := s.groceryRepository.GetGroceryItemByID(ctx, id)
			if errors.Is(err, domain.ErrGroceryItemNotFound) {
				continue
			}
			if err != nil {
				return err
			}

			donation.Items = append(donation.Items, entities.DonationItem{
				ID:         uuid.New().String(),
				DonationID: donation.ID,
				Position:   len(donation.Items),
				Item:       item.Item,
				Quantity:   item.Quantity,
				Unit:       item.Unit,
				Status:     string(grocery.Classify(item.ExpiryDate, now)),
				ExpiryDate: item.ExpiryDate,
			})

			err = s.groceryRepository.DeleteGroceryItem(ctx, id)
			metrics.DbGroceryDelete.With(metrics.Result(err)).Inc()
			if err != nil {
				return err
			}
		}

		if len(donation.Items) == 0 {
			return domain.ErrNothingDonated
		}

		err := s.donationRepository.CreateDonation(ctx, donation)
		metrics.DbDonationCreate.With(metrics.Result(err)).Inc()
		return err
	})
	if errors.Is(err, domain.ErrNothingDonated) {
		log.Infof("donation to %s skipped: no selected item is in the inventory", foodBank)
		return nil, err
	}
	metrics.InventoryTransition.With(prometheus.Labels{
		"transition": "donated",
		"result":     metrics.Result(err)["result"],
	}).Add(float64(len(donation.Items)))
	if err != nil {
		return nil, err
	}

	res := toDomainDonation(donation)
	if s.notifier != nil {
		s.notifier.DonationRecorded(ctx, res)
	}
	log.Infof("donated %d item(s) to %s", len(res.Items), res.FoodBank)
	return res, nil
}

func (s *donationService) GetDonations(ctx context.Context) ([]*domain.Donation, error) {
	donations, err := s.donationRepository.GetDonations(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Donation, 0, len(donations))
	for _, d := range donations {
		result = append(result, toDomainDonation(d))
	}
	return result, nil
}

func toDomainDonation(d *entities.Donation) *domain.Donation {
	items := make([]domain.DonationItemSummary, 0, len(d.Items))
	for _, item := range d.Items {
		items = append(items, domain.DonationItemSummary{
			Item:       item.Item,
			Quantity:   item.Quantity,
			Unit:       item.Unit,
			Status:     domain.Status(item.Status),
			ExpiryDate: item.ExpiryDate,
		})
	}
	return &domain.Donation{
		ID:        d.ID,
		FoodBank:  d.FoodBank,
		Items:     items,
		DonatedAt: d.DonatedAt,
	}
}
