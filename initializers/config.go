package initializers

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseDSN string

	GatewayBaseURL       string
	GatewayAPIKey        string
	GatewayCallbackToken string

	JWTSecret string

	S3Bucket  string
	AWSRegion string

	FrontendURL string

	SMTPAddress       string
	SMTPHost          string
	FromEmail         string
	FromEmailPassword string
	FulfillmentEmail  string
}

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment.")
	}
}

// LoadConfig reads all settings from the environment. SMTP settings are
// optional; everything else that is required fails fast here rather than on
// the first request that needs it.
func LoadConfig() (Config, error) {
	cfg := Config{
		Port:                 getenv("PORT", "8080"),
		DatabaseDSN:          os.Getenv("DATABASE_DSN"),
		GatewayBaseURL:       getenv("PAYMENT_GATEWAY_URL", "https://api.xendit.co"),
		GatewayAPIKey:        os.Getenv("PAYMENT_GATEWAY_API_KEY"),
		GatewayCallbackToken: os.Getenv("PAYMENT_CALLBACK_TOKEN"),
		JWTSecret:            os.Getenv("JWT_SECRET"),
		S3Bucket:             os.Getenv("S3_BUCKET"),
		AWSRegion:            getenv("AWS_REGION", "ap-southeast-1"),
		FrontendURL:          getenv("FRONTEND_URL", "http://localhost:3000"),
		SMTPAddress:          os.Getenv("SMTP_ADDRESS"),
		SMTPHost:             os.Getenv("FROM_EMAIL_SMTP"),
		FromEmail:            os.Getenv("FROM_EMAIL"),
		FromEmailPassword:    os.Getenv("FROM_EMAIL_PASSWORD"),
		FulfillmentEmail:     os.Getenv("FULFILLMENT_EMAIL"),
	}

	required := map[string]string{
		"DATABASE_DSN":            cfg.DatabaseDSN,
		"PAYMENT_GATEWAY_API_KEY": cfg.GatewayAPIKey,
		"PAYMENT_CALLBACK_TOKEN":  cfg.GatewayCallbackToken,
		"JWT_SECRET":              cfg.JWTSecret,
	}
	for name, value := range required {
		if value == "" {
			return Config{}, fmt.Errorf("required environment variable %s is not set", name)
		}
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
