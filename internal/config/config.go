package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds everything read from the environment at startup. The Gemini
// key and endpoint live here and nowhere else.
type Config struct {
	HTTPPort    string
	DatabaseURL string

	RabbitUser string
	RabbitPass string
	RabbitHost string
	RabbitPort string

	GeminiAPIKey  string
	GeminiBaseURL string
	GeminiModel   string

	MailHost    string
	MailPort    int
	MailUser    string
	MailPass    string
	MailFrom    string
	AlertsEmail string

	StorageURL    string
	StorageKey    string
	StorageBucket string

	// LeadAtomicUpsert enables the race-free ON CONFLICT lead capture
	// instead of the default lookup-then-insert.
	LeadAtomicUpsert bool
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables only")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	geminiKey := os.Getenv("GEMINI_API_KEY")
	if geminiKey == "" {
		log.Fatal("GEMINI_API_KEY environment variable is not set")
	}

	mailPort, err := strconv.Atoi(getEnv("MAIL_PORT", "587"))
	if err != nil {
		log.Printf("Invalid MAIL_PORT, falling back to 587: %v", err)
		mailPort = 587
	}

	return &Config{
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		DatabaseURL: dbURL,

		RabbitUser: getEnv("RABBITMQ_USER", "guest"),
		RabbitPass: getEnv("RABBITMQ_PASS", "guest"),
		RabbitHost: getEnv("RABBITMQ_HOST", "localhost"),
		RabbitPort: getEnv("RABBITMQ_PORT", "5672"),

		GeminiAPIKey:  geminiKey,
		GeminiBaseURL: getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-1.5-flash"),

		MailHost:    getEnv("MAIL_HOST", "smtp.gmail.com"),
		MailPort:    mailPort,
		MailUser:    os.Getenv("MAIL_USER"),
		MailPass:    os.Getenv("MAIL_PASS"),
		MailFrom:    getEnv("MAIL_FROM", "no-reply@summitridgerealty.com"),
		AlertsEmail: getEnv("ALERTS_EMAIL", "leads@summitridgerealty.com"),

		StorageURL:    os.Getenv("SUPABASE_URL"),
		StorageKey:    os.Getenv("SUPABASE_SERVICE_KEY"),
		StorageBucket: getEnv("SUPABASE_BUCKET", "listing-photos"),

		LeadAtomicUpsert: getEnv("LEAD_ATOMIC_UPSERT", "false") == "true",
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
