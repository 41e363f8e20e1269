package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	PersonaStrategyRules      = "rules"
	PersonaStrategySimilarity = "similarity"

	ArticleStrategyPersona = "persona"
	ArticleStrategyBracket = "bracket"

	PlanSourceCatalog = "catalog"
	PlanSourceRemote  = "remote"

	EmailProviderResend = "resend"
	EmailProviderSMTP   = "smtp"
)

type Config struct {
	// Application
	AppName string
	AppEnv  string
	AppURL  string
	Port    string

	// Database (optional driver switch via ENV, default: sqlite)
	DBDriver     string
	DBConnection string

	// Security
	JWTSecret string
	JWTExpiry time.Duration

	// OAuth
	KakaoClientID     string
	KakaoClientSecret string

	// Matching strategies
	PersonaStrategy string
	ArticleStrategy string

	// Life plan
	PlanSource         string
	PlanServiceURL     string
	PlanServiceTimeout time.Duration

	// Email
	EmailProvider string // "resend" or "smtp"
	EmailFrom     string
	ResendAPIKey  string
	SMTPHost      string
	SMTPPort      int
	SMTPUsername  string
	SMTPPassword  string

	// Notifications
	NotifyEnabled  bool
	NotifySchedule string
	NotifyTimezone string

	// Observability (optional)
	SentryDSN string

	// Storage (S3-compatible, optional: only used to import analysis exports)
	S3Region         string
	S3Bucket         string
	S3AccessKey      string
	S3SecretKey      string
	S3Endpoint       string
	S3AnalysisPrefix string
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := &Config{
		// Application
		AppName: envString("APP_NAME", "Life Finance Navigator"),
		AppEnv:  envRequired("APP_ENV"), // Required: 'development' or 'production'
		AppURL:  envRequired("APP_URL"), // Required: base URL for notification links and OAuth redirects
		Port:    envString("PORT", "8000"),

		// Database
		DBDriver:     envString("DB_DRIVER", "sqlite"),
		DBConnection: envString("DB_CONNECTION", "./data/navigator.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"),

		// Security
		JWTSecret: envRequired("JWT_SECRET"),
		JWTExpiry: envDuration("JWT_EXPIRY", 60*time.Minute),

		// OAuth
		KakaoClientID:     envString("KAKAO_CLIENT_ID", ""),
		KakaoClientSecret: envString("KAKAO_CLIENT_SECRET", ""),

		// Matching
		PersonaStrategy: envString("PERSONA_STRATEGY", PersonaStrategyRules),
		ArticleStrategy: envString("ARTICLE_STRATEGY", ArticleStrategyPersona),

		// Life plan
		PlanSource:         envString("PLAN_SOURCE", PlanSourceRemote),
		PlanServiceURL:     envString("PLAN_SERVICE_URL", ""),
		PlanServiceTimeout: envDuration("PLAN_SERVICE_TIMEOUT", 120*time.Second),

		// Email
		EmailProvider: envString("EMAIL_PROVIDER", EmailProviderSMTP),
		EmailFrom:     envString("EMAIL_FROM", "noreply@example.com"),
		ResendAPIKey:  envString("RESEND_API_KEY", ""),
		SMTPHost:      envString("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:      envInt("SMTP_PORT", 587),
		SMTPUsername:  envString("SMTP_USERNAME", ""),
		SMTPPassword:  envString("SMTP_PASSWORD", ""),

		// Notifications (twice daily)
		NotifyEnabled:  envBool("NOTIFY_ENABLED", true),
		NotifySchedule: envString("NOTIFY_SCHEDULE", "0 9,21 * * *"),
		NotifyTimezone: envString("NOTIFY_TIMEZONE", "Asia/Seoul"),

		// Observability
		SentryDSN: envString("SENTRY_DSN", ""),

		// Storage
		S3Region:         envString("S3_REGION", ""),
		S3Bucket:         envString("S3_BUCKET", ""),
		S3AccessKey:      envString("S3_ACCESS_KEY", ""),
		S3SecretKey:      envString("S3_SECRET_KEY", ""),
		S3Endpoint:       envString("S3_ENDPOINT", ""),
		S3AnalysisPrefix: envString("S3_ANALYSIS_PREFIX", "analysis/"),
	}

	// Production: validate required services
	if cfg.IsProduction() {
		validateProduction(cfg)
	}

	return cfg
}

// validateProduction ensures outbound services are configured for production deployments.
// Development falls back to logging emails and the static plan catalog.
func validateProduction(cfg *Config) {
	if cfg.EmailProvider == EmailProviderResend && cfg.ResendAPIKey == "" {
		slog.Error("production deployment requires RESEND_API_KEY",
			"hint", "set EMAIL_PROVIDER=smtp or APP_ENV=development")
		os.Exit(1)
	}
	if cfg.EmailProvider == EmailProviderSMTP && (cfg.SMTPUsername == "" || cfg.SMTPPassword == "") {
		slog.Error("production deployment requires SMTP_USERNAME and SMTP_PASSWORD",
			"hint", "set EMAIL_PROVIDER=resend or APP_ENV=development")
		os.Exit(1)
	}
	if cfg.PlanSource == PlanSourceRemote && cfg.PlanServiceURL == "" {
		slog.Error("production deployment requires PLAN_SERVICE_URL",
			"hint", "set PLAN_SOURCE=catalog to use the stored plan templates")
		os.Exit(1)
	}
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("config invalid int, using default", "key", key, "value", v, "default", def)
		return def
	}
	return i
}

func envBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("config invalid bool, using default", "key", key, "value", v, "default", def)
		return def
	}
	return b
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func envRequired(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	slog.Error("config required env var missing", "key", key)
	os.Exit(1)
	return ""
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// HasS3 reports whether an analysis bucket is configured.
func (c *Config) HasS3() bool {
	return c.S3Bucket != "" && c.S3Region != ""
}

// Sanitized returns a copy of the config with only public/safe fields.
// Safe to expose in ctx and templates.
func (c *Config) Sanitized() *Config {
	return &Config{
		AppName: c.AppName,
		AppEnv:  c.AppEnv,
		AppURL:  c.AppURL,
		Port:    c.Port,

		KakaoClientID: c.KakaoClientID,

		PersonaStrategy: c.PersonaStrategy,
		ArticleStrategy: c.ArticleStrategy,
		PlanSource:      c.PlanSource,
	}
}
