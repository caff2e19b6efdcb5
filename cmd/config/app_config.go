package config

import (
	"context"
	"foodloop/internal/api/handlers"
	"foodloop/internal/api/routes"
	"foodloop/internal/middleware"
	"foodloop/internal/utils"
	"foodloop/internal/utils/mailing"
	"foodloop/internal/utils/storage"
	"foodloop/pkg/donation"
	"foodloop/pkg/gemini"
	"foodloop/pkg/grocery"
	"foodloop/pkg/impact"
	"foodloop/pkg/recipe"
	"foodloop/views"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"os"
	"path/filepath"
	"time"
)

func NewApp(ctx context.Context, cfg *utils.Config, store *Store) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		AppName: cfg.AppName,
		Views:   views.NewEngine(),
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.NewValidator()

	// setting up logging and limiter
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), os.ModePerm); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(
		cfg.LogFile,
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		return nil, err
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimitMax,
		Expiration: 1 * time.Second,
	}))

	// utils
	var receipts storage.AwsS3
	if cfg.S3Enabled() {
		receipts, err = storage.NewAwsS3(ctx, storage.S3Config{
			Bucket:    cfg.AWSS3Bucket,
			Region:    cfg.AWSS3Region,
			AccessKey: cfg.AWSAccessKey,
			SecretKey: cfg.AWSSecretKey,
		})
		if err != nil {
			file.Close()
			return nil, err
		}
	}
	var mailer mailing.Mailer
	if cfg.MailEnabled() {
		mailer = mailing.NewMailer(mailing.LoadMailConfig(cfg))
	}

	generator := gemini.NewUnavailableClient()
	if cfg.GeminiAPIKey != "" {
		generator, err = gemini.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			file.Close()
			return nil, err
		}
	} else {
		log.Warn("GEMINI_API_KEY is not set, recipe suggestions are disabled")
	}

	app.Hooks().OnShutdown(func() error {
		file.Close()
		return generator.Close()
	})

	// Service
	groceryService := grocery.NewGroceryService(store.Groceries, store.Transactor, validator, time.Now)
	donationService := donation.NewDonationService(
		store.Donations,
		store.Groceries,
		store.Transactor,
		donation.NewReceiptNotifier(receipts, mailer, cfg.DonationNotifyEmail, cfg.AppURL),
		cfg.FoodBanks,
		time.Now,
	)
	impactService := impact.NewImpactService(store.Groceries, store.Donations)
	recipeService := recipe.NewRecipeService(generator)

	// Handler
	groceryHandler := handlers.NewGroceryHandler(groceryService)
	donationHandler := handlers.NewDonationHandler(donationService, groceryService)
	impactHandler := handlers.NewImpactHandler(impactService)
	recipeHandler := handlers.NewRecipeHandler(recipeService)

	// routes
	routesConfig := routes.Config{
		App:             app,
		GroceryHandler:  groceryHandler,
		DonationHandler: donationHandler,
		ImpactHandler:   impactHandler,
		RecipeHandler:   recipeHandler,
		Middleware:      middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
