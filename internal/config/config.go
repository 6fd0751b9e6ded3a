package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the server and CLI read from the environment.
type Config struct {
	// Server
	ApiPort        string
	BaseURL        string
	AllowedOrigins []string
	UploadDir      string
	GinMode        string

	// Store
	DBDriver                 string // mysql, sqlite or firestore
	DBDSN                    string
	FirestoreProjectID       string
	FirestoreCredentialsFile string
	InvoiceCollection        string
	StoreTimeout             time.Duration

	// Drafts
	DraftIdleTimeout time.Duration // 0 keeps drafts until discarded

	// Document
	LetterheadFile string
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found")
	}

	getEnv := func(key, defaultValue string) string {
		if value, exists := os.LookupEnv(key); exists {
			return value
		}
		return defaultValue
	}

	getRequiredEnv := func(key string) (string, error) {
		value, exists := os.LookupEnv(key)
		if !exists || value == "" {
			return "", fmt.Errorf("missing required environment variable: %s", key)
		}
		return value, nil
	}

	cfg := &Config{
		ApiPort:                  getEnv("API_PORT", "8080"),
		BaseURL:                  getEnv("BASE_URL", "http://localhost:8080"),
		UploadDir:                getEnv("UPLOAD_DIR", "./uploads"),
		GinMode:                  getEnv("GIN_MODE", ""),
		DBDriver:                 strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
		InvoiceCollection:        getEnv("INVOICE_COLLECTION", "invoices"),
		FirestoreCredentialsFile: getEnv("FIRESTORE_CREDENTIALS_FILE", ""),
		LetterheadFile:           getEnv("LETTERHEAD_FILE", ""),
	}

	for _, origin := range strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:5173"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
		}
	}

	var err error
	switch cfg.DBDriver {
	case "mysql":
		cfg.DBDSN, err = getRequiredEnv("DB_DSN")
		if err != nil {
			return nil, err
		}
	case "sqlite":
		cfg.DBDSN = getEnv("DB_DSN", "invoices.db")
	case "firestore":
		cfg.FirestoreProjectID, err = getRequiredEnv("FIRESTORE_PROJECT_ID")
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("invalid DB_DRIVER: %q (want mysql, sqlite or firestore)", cfg.DBDriver)
	}

	timeoutSeconds, err := strconv.Atoi(getEnv("STORE_TIMEOUT_SECONDS", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid STORE_TIMEOUT_SECONDS: %w", err)
	}
	if timeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid STORE_TIMEOUT_SECONDS: must be positive, got %d", timeoutSeconds)
	}
	cfg.StoreTimeout = time.Duration(timeoutSeconds) * time.Second

	idleMinutes, err := strconv.Atoi(getEnv("DRAFT_IDLE_MINUTES", "720"))
	if err != nil {
		return nil, fmt.Errorf("invalid DRAFT_IDLE_MINUTES: %w", err)
	}
	if idleMinutes < 0 {
		return nil, fmt.Errorf("invalid DRAFT_IDLE_MINUTES: must not be negative, got %d", idleMinutes)
	}
	cfg.DraftIdleTimeout = time.Duration(idleMinutes) * time.Minute

	return cfg, nil
}

// Version is set at build time with -ldflags "-X go-invoice-maker/internal/config.Version=...".
var Version = "dev"
