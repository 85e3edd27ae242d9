package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Environment backed configuration, loaded once at startup
var (
	ServerPort string

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string

	MailHost     string
	MailPort     string
	MailUsername string
	MailPassword string
	MailFrom     string

	RedisHost     string
	RedisPort     string
	RedisPassword string

	// RosterDir holds the directory containing the enrollment XLSX workbooks
	RosterDir string

	ClientUrl string
)

// Load reads the .env file if present and populates the package variables.
// Missing variables fall back to development defaults.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	ServerPort = getEnv("SERVER_PORT", "5000")

	PostgresHost = getEnv("POSTGRES_HOST", "localhost")
	PostgresPort = getEnv("POSTGRES_PORT", "5432")
	PostgresUser = getEnv("POSTGRES_USER", "postgres")
	PostgresPassword = getEnv("POSTGRES_PASSWORD", "postgres")
	PostgresDB = getEnv("POSTGRES_DB", "hackathon_db")

	MailHost = getEnv("SMTP_HOST", "smtp.gmail.com")
	MailPort = getEnv("SMTP_PORT", "587")
	MailUsername = getEnv("SMTP_USER", "")
	MailPassword = getEnv("SMTP_PASS", "")
	MailFrom = getEnv("SMTP_FROM", "Innotech Hackathon")

	RedisHost = getEnv("REDIS_HOST", "")
	RedisPort = getEnv("REDIS_PORT", "6379")
	RedisPassword = getEnv("REDIS_PASSWORD", "")

	RosterDir = getEnv("ROSTER_DIR", "./data")

	ClientUrl = getEnv("CLIENT_URL", "http://localhost:3000")
}

// getEnv returns the value of the environment variable or the fallback if unset
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}
