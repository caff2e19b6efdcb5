package handlers

import (
	"foodloop/domain"
	"foodloop/internal/api/presenters"
	"foodloop/pkg/recipe"
	"github.com/gofiber/fiber/v2"
)

type (
	RecipeHandler interface {
		RecipeForm(c *fiber.Ctx) error
		SuggestRecipe(c *fiber.Ctx) error
		ApiSuggestRecipe(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
	}
}

func (h *recipeHandler) RecipeForm(c *fiber.Ctx) error {
	return presenters.Render(c, "recipes", "Recipes", nil)
}

func (h *recipeHandler) SuggestRecipe(c *fiber.Ctx) error {
	req := new(domain.RecipeRequest)
	if err := c.BodyParser(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, domain.MessageFailedBodyRequest)
	}

	suggestion := h.recipeService.Suggest(c.UserContext(), *req)
	return presenters.Render(c, "recipes", "Recipes", fiber.Map{"Recipe": suggestion})
}

// ApiSuggestRecipe answers 200 even when generation failed; the error text
// is part of the payload.
func (h *recipeHandler) ApiSuggestRecipe(c *fiber.Ctx) error {
	req := new(domain.RecipeRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	suggestion := h.recipeService.Suggest(c.UserContext(), *req)
	message := domain.MessageSuccessSuggestRecipe
	if suggestion.Error != "" {
		message = domain.MessageFailedSuggestRecipe
	}
	return presenters.SuccessResponse(c, suggestion, fiber.StatusOK, message)
}
