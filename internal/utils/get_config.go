package utils

import (
	"errors"
	"fmt"
	"foodloop/domain"
	"github.com/caarlos0/env/v11"
	"github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
	"os"
)

const (
	DefaultPort          = "8080"
	DefaultLogFile       = "./logs/app.log"
	DefaultRateLimitMax  = 10
	DefaultStoreURI      = "memory://"
	DefaultStoreDatabase = "foodloop"
	DefaultGeminiModel   = "gemini-2.0-flash"
)

type Config struct {
	AppName      string `yaml:"APP_NAME" env:"APP_NAME"`
	AppURL       string `yaml:"APP_URL" env:"APP_URL"`
	Port         string `yaml:"PORT" env:"PORT"`
	LogFile      string `yaml:"LOG_FILE" env:"LOG_FILE"`
	RateLimitMax int    `yaml:"RATE_LIMIT_MAX" env:"RATE_LIMIT_MAX"`

	// Store configuration: mongodb://, mongodb+srv://, postgres:// or memory://
	StoreURI      string `yaml:"STORE_URI" env:"STORE_URI"`
	StoreDatabase string `yaml:"STORE_DATABASE" env:"STORE_DATABASE"`

	// Gemini API configuration
	GeminiAPIKey string `yaml:"GEMINI_API_KEY" env:"GEMINI_API_KEY"`
	GeminiModel  string `yaml:"GEMINI_MODEL" env:"GEMINI_MODEL"`

	// Mailing configuration
	SMTPHost            string `yaml:"SMTP_HOST" env:"SMTP_HOST"`
	SMTPPort            string `yaml:"SMTP_PORT" env:"SMTP_PORT"`
	SMTPSenderName      string `yaml:"SMTP_SENDER_NAME" env:"SMTP_SENDER_NAME"`
	SMTPAuthEmail       string `yaml:"SMTP_AUTH_EMAIL" env:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword    string `yaml:"SMTP_AUTH_PASSWORD" env:"SMTP_AUTH_PASSWORD"`
	DonationNotifyEmail string `yaml:"DONATION_NOTIFY_EMAIL" env:"DONATION_NOTIFY_EMAIL"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET" env:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION" env:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY" env:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY" env:"AWS_SECRET_KEY"`

	FoodBanks []domain.FoodBank `yaml:"FOOD_BANKS"`
}

// LoadConfig reads the YAML file at path, if present, then lets .env and
// the process environment override it.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}

	file, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		log.Infof("%s not found, using environment only", path)
	case err != nil:
		return nil, fmt.Errorf("read %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(file, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file found, using system env vars")
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.AppName == "" {
		c.AppName = "FoodLoop"
	}
	if c.Port == "" {
		c.Port = DefaultPort
	}
	if c.LogFile == "" {
		c.LogFile = DefaultLogFile
	}
	if c.RateLimitMax <= 0 {
		c.RateLimitMax = DefaultRateLimitMax
	}
	if c.StoreURI == "" {
		c.StoreURI = DefaultStoreURI
	}
	if c.StoreDatabase == "" {
		c.StoreDatabase = DefaultStoreDatabase
	}
	if c.GeminiModel == "" {
		c.GeminiModel = DefaultGeminiModel
	}
}

func (c *Config) MailEnabled() bool {
	return c.SMTPHost != "" && c.DonationNotifyEmail != ""
}

func (c *Config) S3Enabled() bool {
	return c.AWSS3Bucket != "" && c.AWSS3Region != ""
}
