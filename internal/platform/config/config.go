package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration. Every secret (database URL, SMTP
// password, WeChat app secret, session signing key) is injected here at
// startup; nothing is compiled in.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	SessionSecret     string
	SessionCookieName string
	SessionTTL        time.Duration

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string

	WxAppID     string
	WxAppSecret string

	// PublicBaseURL is the externally reachable base used in activation links.
	PublicBaseURL string
}

// LoadConfig loads configuration from environment variables and a .env file
// if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ACCESS_TOKEN_TTL", "1h")
	// The mobile clients were built against a three-year refresh window.
	viper.SetDefault("REFRESH_TOKEN_TTL", "26280h")
	viper.SetDefault("SESSION_SECRET", "insecure-dev-session-secret-change-me")
	viper.SetDefault("SESSION_COOKIE_NAME", "asid")
	viper.SetDefault("SESSION_TTL", "24h")
	viper.SetDefault("SMTP_HOST", "")
	viper.SetDefault("SMTP_PORT", 465)
	viper.SetDefault("SMTP_USER", "")
	viper.SetDefault("SMTP_PASSWORD", "")
	viper.SetDefault("SMTP_FROM", "")
	viper.SetDefault("WX_APP_ID", "")
	viper.SetDefault("WX_APP_SECRET", "")
	viper.SetDefault("PUBLIC_BASE_URL", "http://localhost:8080")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	accessTTLStr := viper.GetString("ACCESS_TOKEN_TTL")
	accessTTL, err := time.ParseDuration(accessTTLStr)
	if err != nil {
		accessTTL = time.Hour
		log.Printf("Warning: Invalid value for ACCESS_TOKEN_TTL (%q). Defaulting to %s.\n", accessTTLStr, accessTTL)
	}
	cfg.AccessTokenTTL = accessTTL

	refreshTTLStr := viper.GetString("REFRESH_TOKEN_TTL")
	refreshTTL, err := time.ParseDuration(refreshTTLStr)
	if err != nil {
		refreshTTL = 26280 * time.Hour
		log.Printf("Warning: Invalid value for REFRESH_TOKEN_TTL (%q). Defaulting to %s.\n", refreshTTLStr, refreshTTL)
	}
	cfg.RefreshTokenTTL = refreshTTL

	cfg.SessionSecret = viper.GetString("SESSION_SECRET")
	if cfg.SessionSecret == "insecure-dev-session-secret-change-me" {
		log.Println("Warning: SESSION_SECRET not set. Using default insecure key.")
	}
	cfg.SessionCookieName = viper.GetString("SESSION_COOKIE_NAME")

	sessionTTLStr := viper.GetString("SESSION_TTL")
	sessionTTL, err := time.ParseDuration(sessionTTLStr)
	if err != nil {
		sessionTTL = 24 * time.Hour
		log.Printf("Warning: Invalid value for SESSION_TTL (%q). Defaulting to %s.\n", sessionTTLStr, sessionTTL)
	}
	cfg.SessionTTL = sessionTTL

	cfg.SMTPHost = viper.GetString("SMTP_HOST")
	cfg.SMTPPort = viper.GetInt("SMTP_PORT")
	cfg.SMTPUser = viper.GetString("SMTP_USER")
	cfg.SMTPPassword = viper.GetString("SMTP_PASSWORD")
	cfg.SMTPFrom = viper.GetString("SMTP_FROM")
	if cfg.SMTPHost == "" {
		log.Println("Warning: SMTP_HOST not set. Verification mail delivery will fail.")
	}

	cfg.WxAppID = viper.GetString("WX_APP_ID")
	cfg.WxAppSecret = viper.GetString("WX_APP_SECRET")
	if cfg.WxAppID == "" || cfg.WxAppSecret == "" {
		log.Println("Warning: WX_APP_ID / WX_APP_SECRET not set. WeChat login disabled.")
	}

	cfg.PublicBaseURL = viper.GetString("PUBLIC_BASE_URL")

	return cfg, nil
}
