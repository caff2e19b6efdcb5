package presenters

import (
	"foodloop/domain"
	"github.com/gofiber/fiber/v2"
)

const layout = "layouts/main"

// Render draws a page inside the shared layout. title is shown in the
// browser tab and the active nav entry is derived from page.
func Render(c *fiber.Ctx, page, title string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	data["Title"] = title
	data["Page"] = page
	return c.Render(page, data, layout)
}

// Selectable items offered by the intake form.
var GroceryChoices = []string{
	"Milk", "Eggs", "Bread", "Butter", "Cheese", "Yogurt", "Rice", "Pasta",
	"Tomatoes", "Potatoes", "Onions", "Apples", "Bananas", "Spinach", "Chicken",
}

var Units = []string{"pcs", "kg", "g", "L", "ml", "pack", "dozen"}

var DashboardFilters = []domain.Filter{
	domain.FilterAll, domain.FilterExpiring, domain.FilterSoon, domain.FilterFresh,
}
