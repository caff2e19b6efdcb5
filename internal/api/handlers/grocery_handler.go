package handlers

import (
	"errors"
	"foodloop/domain"
	"foodloop/internal/api/presenters"
	"foodloop/pkg/grocery"
	"github.com/gofiber/fiber/v2"
)

type (
	GroceryHandler interface {
		Home(c *fiber.Ctx) error
		GroceryForm(c *fiber.Ctx) error
		AddGroceryItem(c *fiber.Ctx) error
		Dashboard(c *fiber.Ctx) error
		MarkUsed(c *fiber.Ctx) error
		RemoveGroceryItem(c *fiber.Ctx) error

		ApiGetGroceryItems(c *fiber.Ctx) error
		ApiAddGroceryItem(c *fiber.Ctx) error
		ApiMarkUsed(c *fiber.Ctx) error
		ApiRemoveGroceryItem(c *fiber.Ctx) error
		ApiGetUsedItems(c *fiber.Ctx) error
	}

	groceryHandler struct {
		groceryService grocery.GroceryService
	}
)

func NewGroceryHandler(groceryService grocery.GroceryService) GroceryHandler {
	return &groceryHandler{
		groceryService: groceryService,
	}
}

func (h *groceryHandler) Home(c *fiber.Ctx) error {
	return presenters.Render(c, "index", "FoodLoop", nil)
}

func (h *groceryHandler) GroceryForm(c *fiber.Ctx) error {
	return h.renderGroceryForm(c, domain.AddGroceryItemRequest{}, c.Query("added") == "1", nil)
}

func (h *groceryHandler) AddGroceryItem(c *fiber.Ctx) error {
	req := new(domain.AddGroceryItemRequest)
	if err := c.BodyParser(req); err != nil {
		c.Status(fiber.StatusBadRequest)
		return h.renderGroceryForm(c, *req, false, errors.New(domain.MessageFailedBodyRequest))
	}

	if _, err := h.groceryService.AddGroceryItem(c.UserContext(), *req); err != nil {
		if !isIntakeError(err) {
			return err
		}
		c.Status(fiber.StatusBadRequest)
		return h.renderGroceryForm(c, *req, false, err)
	}

	return c.Redirect("/grocery?added=1", fiber.StatusSeeOther)
}

func (h *groceryHandler) renderGroceryForm(c *fiber.Ctx, form domain.AddGroceryItemRequest, added bool, err error) error {
	data := fiber.Map{
		"Form":    form,
		"Choices": presenters.GroceryChoices,
		"Units":   presenters.Units,
		"Added":   added,
	}
	if err != nil {
		data["Error"] = err.Error()
	}
	return presenters.Render(c, "grocery", "Add Grocery", data)
}

func (h *groceryHandler) Dashboard(c *fiber.Ctx) error {
	dashboard, err := h.groceryService.GetDashboard(c.UserContext(), domain.ParseFilter(c.Query("filter")))
	if err != nil {
		return err
	}
	return presenters.Render(c, "dashboard", "Dashboard", fiber.Map{
		"Dashboard": dashboard,
		"Filters":   presenters.DashboardFilters,
	})
}

func (h *groceryHandler) MarkUsed(c *fiber.Ctx) error {
	if err := h.groceryService.MarkUsed(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.Redirect("/dashboard")
}

func (h *groceryHandler) RemoveGroceryItem(c *fiber.Ctx) error {
	if err := h.groceryService.RemoveGroceryItem(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.Redirect("/dashboard")
}

func (h *groceryHandler) ApiGetGroceryItems(c *fiber.Ctx) error {
	res, err := h.groceryService.GetDashboard(c.UserContext(), domain.ParseFilter(c.Query("filter")))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetGroceryItems, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetGroceryItems)
}

func (h *groceryHandler) ApiAddGroceryItem(c *fiber.Ctx) error {
	req := new(domain.AddGroceryItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.groceryService.AddGroceryItem(c.UserContext(), *req)
	if err != nil {
		status := fiber.StatusInternalServerError
		if isIntakeError(err) {
			status = fiber.StatusBadRequest
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedAddGroceryItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddGroceryItem)
}

func (h *groceryHandler) ApiMarkUsed(c *fiber.Ctx) error {
	if err := h.groceryService.MarkUsed(c.UserContext(), c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedMarkUsed, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessMarkUsed)
}

func (h *groceryHandler) ApiRemoveGroceryItem(c *fiber.Ctx) error {
	if err := h.groceryService.RemoveGroceryItem(c.UserContext(), c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedRemoveGroceryItem, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveGroceryItem)
}

func (h *groceryHandler) ApiGetUsedItems(c *fiber.Ctx) error {
	res, err := h.groceryService.GetUsedItems(c.UserContext())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetUsedItems, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetUsedItems)
}

func isIntakeError(err error) bool {
	return errors.Is(err, domain.ErrItemChoice) ||
		errors.Is(err, domain.ErrQuantityRequired) ||
		errors.Is(err, domain.ErrInvalidManufactureDate) ||
		errors.Is(err, domain.ErrInvalidExpiryDate)
}
