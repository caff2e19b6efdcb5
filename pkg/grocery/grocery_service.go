package grocery

import (
	"context"
	"errors"
	"foodloop/domain"
	"foodloop/entities"
	"foodloop/internal/database"
	"foodloop/internal/metrics"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"strings"
	"time"
)

type (
	GroceryService interface {
		AddGroceryItem(ctx context.Context, req domain.AddGroceryItemRequest) (domain.AddGroceryItemResponse, error)
		GetDashboard(ctx context.Context, filter domain.Filter) (domain.DashboardResponse, error)
		GetGroceryItems(ctx context.Context) ([]domain.GroceryItemResponse, error)
		MarkUsed(ctx context.Context, id string) error
		RemoveGroceryItem(ctx context.Context, id string) error
		GetUsedItems(ctx context.Context) ([]*entities.UsedItem, error)
	}

	groceryService struct {
		groceryRepository GroceryRepository
		transactor        database.Transactor
		validator         *validator.Validate
		now               func() time.Time
	}
)

// NewGroceryService builds the inventory service. A nil now uses time.Now.
func NewGroceryService(
	groceryRepository GroceryRepository,
	transactor database.Transactor,
	validator *validator.Validate,
	now func() time.Time,
) GroceryService {
	if now == nil {
		now = time.Now
	}
	return &groceryService{
		groceryRepository: groceryRepository,
		transactor:        transactor,
		validator:         validator,
		now:               now,
	}
}

func (s *groceryService) AddGroceryItem(ctx context.Context, req domain.AddGroceryItemRequest) (domain.AddGroceryItemResponse, error) {
	req.CustomItem = strings.TrimSpace(req.CustomItem)
	req.Quantity = strings.TrimSpace(req.Quantity)

	if err := s.validator.Struct(req); err != nil {
		return domain.AddGroceryItemResponse{}, intakeError(err)
	}

	mfgDate, err := time.Parse(domain.DateLayout, req.MfgDate)
	if err != nil {
		return domain.AddGroceryItemResponse{}, domain.ErrInvalidManufactureDate
	}
	expDate, err := time.Parse(domain.DateLayout, req.ExpDate)
	if err != nil {
		return domain.AddGroceryItemResponse{}, domain.ErrInvalidExpiryDate
	}

	name := req.SelectedItem
	if name == "" {
		name = req.CustomItem
	}

	item := &entities.GroceryItem{
		ID:              uuid.New().String(),
		Item:            name,
		Quantity:        req.Quantity,
		Unit:            req.Unit,
		ManufactureDate: mfgDate,
		ExpiryDate:      expDate,
		AddedOn:         s.now(),
	}

	err = s.groceryRepository.AddGroceryItem(ctx, item)
	metrics.DbGroceryCreate.With(metrics.Result(err)).Inc()
	if err != nil {
		return domain.AddGroceryItemResponse{}, err
	}

	return domain.AddGroceryItemResponse{
		ID:              item.ID,
		Item:            item.Item,
		Quantity:        item.Quantity,
		Unit:            item.Unit,
		ManufactureDate: item.ManufactureDate,
		ExpiryDate:      item.ExpiryDate,
		AddedOn:         item.AddedOn,
	}, nil
}

func (s *groceryService) GetDashboard(ctx context.Context, filter domain.Filter) (domain.DashboardResponse, error) {
	items, err := s.GetGroceryItems(ctx)
	if err != nil {
		return domain.DashboardResponse{}, err
	}

	res := domain.DashboardResponse{
		Filter: filter,
		Items:  make([]domain.GroceryItemResponse, 0, len(items)),
	}
	for _, item := range items {
		res.Counts.All++
		switch item.Status {
		case domain.StatusExpiringSoon:
			res.Counts.ExpiringSoon++
		case domain.StatusUseSoon:
			res.Counts.UseSoon++
		case domain.StatusFresh:
			res.Counts.Fresh++
		}
		if filter.Matches(item.Status) {
			res.Items = append(res.Items, item)
		}
	}
	return res, nil
}

func (s *groceryService) GetGroceryItems(ctx context.Context) ([]domain.GroceryItemResponse, error) {
	items, err := s.groceryRepository.GetGroceryItems(ctx)
	if err != nil {
		return nil, err
	}

	today := s.now()
	response := make([]domain.GroceryItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, domain.GroceryItemResponse{
			ID:              item.ID,
			Name:            item.Item,
			Quantity:        item.Quantity,
			Unit:            item.Unit,
			ManufactureDate: item.ManufactureDate,
			ExpiryDate:      item.ExpiryDate,
			Mfg:             item.ManufactureDate.Format(domain.DisplayDateLayout),
			Expiry:          item.ExpiryDate.Format(domain.DisplayDateLayout),
			DaysLeft:        DaysLeft(item.ExpiryDate, today),
			Status:          Classify(item.ExpiryDate, today),
		})
	}
	return response, nil
}

// MarkUsed archives the entry and removes it from the inventory. Unknown
// ids are ignored.
func (s *groceryService) MarkUsed(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return nil
	}

	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		item, err := s.groceryRepository.GetGroceryItemByID(ctx, id)
		if err != nil {
			return err
		}

		used := entities.NewUsedItem(*item, s.now())
		err = s.groceryRepository.ArchiveUsedItem(ctx, &used)
		metrics.DbUsedArchive.With(metrics.Result(err)).Inc()
		if err != nil {
			return err
		}

		err = s.groceryRepository.DeleteGroceryItem(ctx, id)
		metrics.DbGroceryDelete.With(metrics.Result(err)).Inc()
		return err
	})
	if errors.Is(err, domain.ErrGroceryItemNotFound) {
		log.Debugf("mark used: item %s already gone", id)
		return nil
	}

	metrics.InventoryTransition.With(transitionLabels("used", err)).Inc()
	return err
}

// RemoveGroceryItem deletes the entry without archiving it.
func (s *groceryService) RemoveGroceryItem(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return nil
	}

	err := s.groceryRepository.DeleteGroceryItem(ctx, id)
	metrics.DbGroceryDelete.With(metrics.Result(err)).Inc()
	metrics.InventoryTransition.With(transitionLabels("removed", err)).Inc()
	return err
}

func (s *groceryService) GetUsedItems(ctx context.Context) ([]*entities.UsedItem, error) {
	return s.groceryRepository.GetUsedItems(ctx)
}

// intakeError maps validator field errors onto the intake sentinels,
// reporting the first failing field in form order.
func intakeError(err error) error {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}
	for _, fe := range fieldErrors {
		switch fe.Field() {
		case "SelectedItem", "CustomItem":
			return domain.ErrItemChoice
		case "Quantity":
			return domain.ErrQuantityRequired
		case "MfgDate":
			return domain.ErrInvalidManufactureDate
		case "ExpDate":
			return domain.ErrInvalidExpiryDate
		}
	}
	return err
}

func transitionLabels(transition string, err error) prometheus.Labels {
	labels := metrics.Result(err)
	labels["transition"] = transition
	return labels
}
