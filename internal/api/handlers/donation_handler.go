package handlers

import (
	"errors"
	"foodloop/domain"
	"foodloop/internal/api/presenters"
	"foodloop/pkg/donation"
	"foodloop/pkg/grocery"
	"github.com/gofiber/fiber/v2"
)

type (
	DonationHandler interface {
		DonationPage(c *fiber.Ctx) error
		Donate(c *fiber.Ctx) error

		ApiGetFoodBanks(c *fiber.Ctx) error
		ApiCreateDonation(c *fiber.Ctx) error
		ApiGetDonations(c *fiber.Ctx) error
	}

	donationHandler struct {
		donationService donation.DonationService
		groceryService  grocery.GroceryService
	}
)

func NewDonationHandler(donationService donation.DonationService, groceryService grocery.GroceryService) DonationHandler {
	return &donationHandler{
		donationService: donationService,
		groceryService:  groceryService,
	}
}

func (h *donationHandler) DonationPage(c *fiber.Ctx) error {
	groceries, err := h.groceryService.GetGroceryItems(c.UserContext())
	if err != nil {
		return err
	}
	page := domain.DonationPage{
		Groceries: groceries,
		FoodBanks: h.donationService.GetFoodBanks(),
	}
	return presenters.Render(c, "donation", "Donate", fiber.Map{
		"Donation": page,
		"Success":  c.Query("success") == "1",
	})
}

// Donate acknowledges every well-formed submission, including ones whose
// items were already gone.
func (h *donationHandler) Donate(c *fiber.Ctx) error {
	req := new(domain.DonationRequest)
	if err := c.BodyParser(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, domain.MessageFailedBodyRequest)
	}

	if _, err := h.donationService.Donate(c.UserContext(), *req); err != nil && !errors.Is(err, domain.ErrNothingDonated) {
		return err
	}
	return c.Redirect("/donate?success=1", fiber.StatusSeeOther)
}

func (h *donationHandler) ApiGetFoodBanks(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, h.donationService.GetFoodBanks(), fiber.StatusOK, domain.MessageSuccessGetFoodBanks)
}

func (h *donationHandler) ApiCreateDonation(c *fiber.Ctx) error {
	req := new(domain.DonationRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.donationService.Donate(c.UserContext(), *req)
	if err != nil && !errors.Is(err, domain.ErrNothingDonated) {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateDonation, err)
	}
	if res == nil {
		return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageNothingDonated)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateDonation)
}

func (h *donationHandler) ApiGetDonations(c *fiber.Ctx) error {
	res, err := h.donationService.GetDonations(c.UserContext())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetDonations, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDonations)
}
