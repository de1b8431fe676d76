package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// LeaveDefaults is the per-category entitlement granted on a freshly created
// ledger row. Values are configuration, not policy constants.
type LeaveDefaults struct {
	Sick        int
	Personal    int
	Maternity   int
	Study       int
	Bereavement int
}

// SMTPConfig holds the outbound mail relay settings. Mail dispatch is
// disabled when Host is empty.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Registration: e-mails ending with this suffix are auto-approved.
	CompanyEmailSuffix string

	// Registering with this e-mail bootstraps the first admin account.
	AdminEmail string

	CORSAllowedOrigins []string
	FrontendBaseURL    string

	GoogleClientID string

	PosthogAPIKey string

	LeaveDefaults LeaveDefaults
	SMTP          SMTPConfig
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "24h")
	viper.SetDefault("JWT_ISSUER", "eword-leave-management")
	viper.SetDefault("COMPANY_EMAIL_SUFFIX", ".ewordpublishers@gmail.com")
	viper.SetDefault("ADMIN_EMAIL", "admin@ewordpublishers.com")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("POSTHOG_API_KEY", "")

	viper.SetDefault("LEAVE_SICK_DAYS", 14)
	viper.SetDefault("LEAVE_PERSONAL_DAYS", 21)
	viper.SetDefault("LEAVE_MATERNITY_DAYS", 90)
	viper.SetDefault("LEAVE_STUDY_DAYS", 10)
	viper.SetDefault("LEAVE_BEREAVEMENT_DAYS", 5)

	viper.SetDefault("MAIL_HOST", "")
	viper.SetDefault("MAIL_PORT", 587)
	viper.SetDefault("MAIL_USERNAME", "")
	viper.SetDefault("MAIL_PASSWORD", "")
	viper.SetDefault("MAIL_FROM", "noreply@ewordpublishers.com")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiry, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiry = 24 * time.Hour
		log.Printf("Warning: Invalid JWT_EXPIRY_DURATION (%q). Defaulting to %s.\n", jwtExpiryStr, jwtExpiry)
	}
	cfg.JWTExpiryDuration = jwtExpiry
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.CompanyEmailSuffix = strings.ToLower(viper.GetString("COMPANY_EMAIL_SUFFIX"))
	cfg.AdminEmail = strings.ToLower(viper.GetString("ADMIN_EMAIL"))

	cfg.CORSAllowedOrigins = strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",")
	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")

	cfg.GoogleClientID = viper.GetString("GOOGLE_CLIENT_ID")
	if cfg.GoogleClientID == "" {
		log.Println("Warning: GOOGLE_CLIENT_ID not set. Google sign-in will not function.")
	}

	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	cfg.LeaveDefaults = LeaveDefaults{
		Sick:        viper.GetInt("LEAVE_SICK_DAYS"),
		Personal:    viper.GetInt("LEAVE_PERSONAL_DAYS"),
		Maternity:   viper.GetInt("LEAVE_MATERNITY_DAYS"),
		Study:       viper.GetInt("LEAVE_STUDY_DAYS"),
		Bereavement: viper.GetInt("LEAVE_BEREAVEMENT_DAYS"),
	}

	cfg.SMTP = SMTPConfig{
		Host:     viper.GetString("MAIL_HOST"),
		Port:     viper.GetInt("MAIL_PORT"),
		Username: viper.GetString("MAIL_USERNAME"),
		Password: viper.GetString("MAIL_PASSWORD"),
		From:     viper.GetString("MAIL_FROM"),
	}
	if cfg.SMTP.Host == "" {
		log.Println("Warning: MAIL_HOST not set. Outbound e-mail is disabled.")
	}

	return cfg, nil
}
