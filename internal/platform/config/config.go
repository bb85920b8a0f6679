package config

import (
	"log"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultPort            = "8080"
	defaultJWTSecret       = "a-very-secret-key-should-be-longer-and-random"
	defaultTimezone        = "America/Sao_Paulo"
	defaultLocalStorePath  = "data/def_finance_local.db"
	defaultSnapshotTTL     = 30 * time.Second
	defaultChartMonthsSpan = 6
	defaultImportRateLimit = "5-M"
	defaultSheetsRange     = "Lancamentos!A2:P"
	defaultPosthogEndpoint = "https://eu.i.posthog.com"
	defaultFrontendBaseURL = "http://localhost:3000"
	maxChartMonthsSpan     = 36
)

// Config holds application configuration.
type Config struct {
	DatabaseURL     string
	Port            string
	IsProduction    bool
	EnableDBCheck   bool
	JWTSecret       string
	FrontendBaseURL string

	// Location used to decide what "today" is for status classification.
	Location *time.Location

	// LocalStorePath is the SQLite file holding the cash adjustment. Empty
	// disables persistence.
	LocalStorePath   string
	EntrySnapshotTTL time.Duration
	ChartMonthsSpan  int
	ImportRateLimit  string

	// Google Sheets import
	GoogleSpreadsheetID      string
	GoogleSheetsRange        string
	GoogleServiceAccountJSON string
	GoogleServiceAccountFile string

	PosthogAPIKey   string
	PosthogEndpoint string
}

// SheetsConfigured reports whether enough settings exist to import from Google Sheets.
func (c *Config) SheetsConfigured() bool {
	return c.GoogleSpreadsheetID != "" && (c.GoogleServiceAccountJSON != "" || c.GoogleServiceAccountFile != "")
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", defaultPort)
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("FRONTEND_BASE_URL", defaultFrontendBaseURL)
	v.SetDefault("TIMEZONE", defaultTimezone)
	v.SetDefault("LOCAL_STORE_PATH", defaultLocalStorePath)
	v.SetDefault("ENTRY_SNAPSHOT_TTL", defaultSnapshotTTL.String())
	v.SetDefault("CHART_MONTHS_SPAN", defaultChartMonthsSpan)
	v.SetDefault("IMPORT_RATE_LIMIT", defaultImportRateLimit)
	v.SetDefault("GOOGLE_SPREADSHEET_ID", "")
	v.SetDefault("GOOGLE_SHEETS_RANGE", defaultSheetsRange)
	v.SetDefault("GOOGLE_SERVICE_ACCOUNT_JSON", "")
	v.SetDefault("GOOGLE_SERVICE_ACCOUNT_FILE", "")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", defaultPosthogEndpoint)
	v.AutomaticEnv()

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{
		DatabaseURL:              v.GetString("PGSQL_URL"),
		Port:                     v.GetString("PORT"),
		IsProduction:             v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:            v.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:                v.GetString("JWT_SECRET"),
		FrontendBaseURL:          v.GetString("FRONTEND_BASE_URL"),
		LocalStorePath:           v.GetString("LOCAL_STORE_PATH"),
		ImportRateLimit:          v.GetString("IMPORT_RATE_LIMIT"),
		GoogleSpreadsheetID:      v.GetString("GOOGLE_SPREADSHEET_ID"),
		GoogleSheetsRange:        v.GetString("GOOGLE_SHEETS_RANGE"),
		GoogleServiceAccountJSON: v.GetString("GOOGLE_SERVICE_ACCOUNT_JSON"),
		GoogleServiceAccountFile: v.GetString("GOOGLE_SERVICE_ACCOUNT_FILE"),
		PosthogAPIKey:            v.GetString("POSTHOG_API_KEY"),
		PosthogEndpoint:          v.GetString("POSTHOG_ENDPOINT"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	if cfg.Port == "" {
		cfg.Port = defaultPort
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	tz := v.GetString("TIMEZONE")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Printf("Warning: Invalid value for TIMEZONE ('%s'). Defaulting to UTC.\n", tz)
		loc = time.UTC
	}
	cfg.Location = loc

	ttlStr := v.GetString("ENTRY_SNAPSHOT_TTL")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil || ttl < 0 {
		ttl = defaultSnapshotTTL
		log.Printf("Warning: Invalid value for ENTRY_SNAPSHOT_TTL ('%s'). Defaulting to %s.\n", ttlStr, ttl)
	}
	cfg.EntrySnapshotTTL = ttl

	span := v.GetInt("CHART_MONTHS_SPAN")
	if span < 1 || span > maxChartMonthsSpan {
		log.Printf("Warning: Invalid value for CHART_MONTHS_SPAN (%d). Defaulting to %d.\n", span, defaultChartMonthsSpan)
		span = defaultChartMonthsSpan
	}
	cfg.ChartMonthsSpan = span

	if cfg.ImportRateLimit == "" {
		cfg.ImportRateLimit = defaultImportRateLimit
	}
	if cfg.GoogleSheetsRange == "" {
		cfg.GoogleSheetsRange = defaultSheetsRange
	}
	if !cfg.SheetsConfigured() {
		log.Println("Warning: Google Sheets credentials or spreadsheet id not set. Spreadsheet import will not function.")
	}

	return cfg
}
