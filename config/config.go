package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  Server
	CORS    CORS
	Catalog Catalog
	Order   Order
	Email   Email
	Ledger  Ledger
}

type Server struct {
	Port        string
	GinMode     string
	Environment string
	StaticDir   string
}

type CORS struct {
	AllowedOrigins []string
}

type Catalog struct {
	// Path to a JSON catalog file. Empty means the built-in catalog.
	Path string
}

type Order struct {
	// SpecialDate is the pickup date that activates per-product special
	// minimums and quantity options.
	SpecialDate time.Time
	// EarliestPickup is the first date orders may be picked up.
	EarliestPickup time.Time
}

type Email struct {
	Host      string
	Port      string
	Username  string
	Password  string
	Sender    string
	Recipient string
	Enabled   bool
	MockMode  bool
}

type Ledger struct {
	Path      string
	SheetName string
}

func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	emailUser := getEnv("EMAIL_USER", "")
	config := &Config{
		Server: Server{
			Port:        getEnv("SERVER_PORT", "3000"),
			GinMode:     getEnv("GIN_MODE", "debug"),
			Environment: getEnv("ENVIRONMENT", "development"),
			StaticDir:   getEnv("STATIC_DIR", "./public"),
		},
		CORS: CORS{
			AllowedOrigins: parseSlice(getEnv("ALLOWED_ORIGINS", "*")),
		},
		Catalog: Catalog{
			Path: getEnv("CATALOG_PATH", ""),
		},
		Order: Order{
			SpecialDate:    parseDate(getEnv("ORDER_SPECIAL_DATE", "2025-12-14")),
			EarliestPickup: parseDate(getEnv("ORDER_EARLIEST_PICKUP", "")),
		},
		Email: Email{
			Host:      getEnv("EMAIL_SMTP_HOST", "smtp.gmail.com"),
			Port:      getEnv("EMAIL_SMTP_PORT", "587"),
			Username:  emailUser,
			Password:  getEnv("EMAIL_PASS", ""),
			Sender:    getEnv("EMAIL_SENDER", emailUser),
			Recipient: getEnv("EMAIL_RECIPIENT", emailUser),
			Enabled:   getEnv("EMAIL_ENABLED", "true") == "true",
			MockMode:  getEnv("EMAIL_MOCK_MODE", "false") == "true",
		},
		Ledger: Ledger{
			Path:      getEnv("LEDGER_PATH", "./orders.xlsx"),
			SheetName: getEnv("LEDGER_SHEET", "Sheet1"),
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		log.Printf("Invalid date %s, ignoring", s)
		return time.Time{}
	}
	return d
}

func parseSlice(s string) []string {
	if s == "" {
		return []string{}
	}
	var result []string
	for i := 0; i < len(s); {
		end := i
		for end < len(s) && s[end] != ',' {
			end++
		}
		result = append(result, s[i:end])
		i = end + 1
	}
	return result
}
