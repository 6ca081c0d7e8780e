package config

import (
	"os"
)

type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	PublicURL       string
}

type Config struct {
	R2 R2Config

	JWTSecret string
	JWTIssuer string

	StripeSecretKey     string
	StripeWebhookSecret string

	EmailFromAddress string
	EmailFromName    string
	ResendAPIKey     string

	TurnstileSecretKey string

	FrontendBaseURL string
}

func LoadConfig() *Config {
	cfg := &Config{}

	cfg.R2.AccountID = os.Getenv("R2_ACCOUNT_ID")
	cfg.R2.AccessKeyID = os.Getenv("R2_ACCESS_KEY_ID")
	cfg.R2.SecretAccessKey = os.Getenv("R2_SECRET_ACCESS_KEY")
	cfg.R2.Bucket = os.Getenv("R2_BUCKET")
	cfg.R2.PublicURL = os.Getenv("R2_PUBLIC_URL")

	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	cfg.JWTIssuer = os.Getenv("JWT_ISSUER")

	cfg.StripeSecretKey = os.Getenv("STRIPE_SECRET_KEY")
	cfg.StripeWebhookSecret = os.Getenv("STRIPE_WEBHOOK_SECRET")

	cfg.EmailFromAddress = os.Getenv("EMAIL_FROM_ADDRESS")
	cfg.EmailFromName = os.Getenv("EMAIL_FROM_NAME")
	cfg.ResendAPIKey = os.Getenv("RESEND_API_KEY")

	cfg.TurnstileSecretKey = os.Getenv("CF_TURNSTILE_SECRET_KEY")

	cfg.FrontendBaseURL = os.Getenv("FRONTEND_BASE_URL")
	if cfg.FrontendBaseURL == "" {
		cfg.FrontendBaseURL = "http://localhost:5173"
	}

	return cfg
}
