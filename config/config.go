package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// App holds every environment-driven setting the server reads.
type App struct {
	Port string `envconfig:"PORT" default:"5000"`

	DBConnectionString string `envconfig:"DB_CONNECTION_STRING"`
	RedisURL           string `envconfig:"REDIS_URL" default:"localhost:6379"`

	AccessTokenSecret string `envconfig:"ACCESS_TOKEN_SECRET" default:"fallbacksecret"`

	// SMTP transport for booking confirmations. When EmailUser is empty the
	// notifier falls back to logging instead of sending.
	SMTPHost  string `envconfig:"SMTP_HOST" default:"smtp.gmail.com"`
	SMTPPort  int    `envconfig:"SMTP_PORT" default:"587"`
	EmailUser string `envconfig:"EMAIL_USER"`
	EmailPass string `envconfig:"EMAIL_PASS"`

	ClientOrigin string `envconfig:"CLIENT_ORIGIN" default:"http://localhost:3000"`
}

// C is the loaded configuration, populated by Load at startup.
var C App

func Load() {
	// Only load .env in development (when RENDER env var is not set)
	if os.Getenv("RENDER") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("Warning: Could not load .env file (this is normal in production)")
		}
	}

	if err := envconfig.Process("", &C); err != nil {
		log.Panic("error reading configuration: " + err.Error())
	}
}
