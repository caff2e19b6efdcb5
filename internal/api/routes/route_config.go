package routes

import (
	"foodloop/internal/api/handlers"
	"foodloop/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Config struct {
	App             *fiber.App
	GroceryHandler  handlers.GroceryHandler
	DonationHandler handlers.DonationHandler
	ImpactHandler   handlers.ImpactHandler
	RecipeHandler   handlers.RecipeHandler
	Middleware      middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.RecoverMiddleware())
	c.App.Use(c.Middleware.MetricsMiddleware())
	c.Pages()
	c.Api()
	c.GuestRoute()
}

func (c *Config) Pages() {
	c.App.Get("/", c.GroceryHandler.Home)

	c.App.Get("/grocery", c.GroceryHandler.GroceryForm)
	c.App.Post("/grocery", c.GroceryHandler.AddGroceryItem)
	c.App.Get("/dashboard", c.GroceryHandler.Dashboard)
	c.App.Get("/mark_used/:id", c.GroceryHandler.MarkUsed)
	c.App.Get("/remove/:id", c.GroceryHandler.RemoveGroceryItem)

	c.App.Get("/donate", c.DonationHandler.DonationPage)
	c.App.Post("/donate", c.DonationHandler.Donate)

	c.App.Get("/impact", c.ImpactHandler.Impact)

	c.App.Get("/recipes", c.RecipeHandler.RecipeForm)
	c.App.Post("/recipes", c.RecipeHandler.SuggestRecipe)
}

func (c *Config) Api() {
	api := c.App.Group("/api/v1", c.Middleware.CORSMiddleware())
	// grocery routes
	{
		api.Get("/groceries", c.GroceryHandler.ApiGetGroceryItems)
		api.Post("/groceries", c.GroceryHandler.ApiAddGroceryItem)
		api.Post("/groceries/:id/used", c.GroceryHandler.ApiMarkUsed)
		api.Delete("/groceries/:id", c.GroceryHandler.ApiRemoveGroceryItem)
		api.Get("/used-items", c.GroceryHandler.ApiGetUsedItems)
	}
	// donation routes
	{
		api.Get("/food-banks", c.DonationHandler.ApiGetFoodBanks)
		api.Get("/donations", c.DonationHandler.ApiGetDonations)
		api.Post("/donations", c.DonationHandler.ApiCreateDonation)
	}
	api.Get("/impact", c.ImpactHandler.ApiGetImpact)
	api.Post("/recipes", c.RecipeHandler.ApiSuggestRecipe)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
