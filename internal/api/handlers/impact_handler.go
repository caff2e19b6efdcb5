package handlers

import (
	"foodloop/domain"
	"foodloop/internal/api/presenters"
	"foodloop/pkg/impact"
	"github.com/gofiber/fiber/v2"
)

type (
	ImpactHandler interface {
		Impact(c *fiber.Ctx) error
		ApiGetImpact(c *fiber.Ctx) error
	}

	impactHandler struct {
		impactService impact.ImpactService
	}
)

func NewImpactHandler(impactService impact.ImpactService) ImpactHandler {
	return &impactHandler{
		impactService: impactService,
	}
}

func (h *impactHandler) Impact(c *fiber.Ctx) error {
	res, err := h.impactService.ComputeImpact(c.UserContext())
	if err != nil {
		return err
	}
	return presenters.Render(c, "impact", "Impact", fiber.Map{"Impact": res})
}

func (h *impactHandler) ApiGetImpact(c *fiber.Ctx) error {
	res, err := h.impactService.ComputeImpact(c.UserContext())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetImpact, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetImpact)
}
