package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`
	SiteURL  string `mapstructure:"SITE_URL"`

	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// External calendar feeds, one per unit. Each is optional; an empty
	// value means no feed is configured for that unit.
	FeedURLRoom1 string `mapstructure:"ICAL_FEED_ROOM1"`
	FeedURLRoom2 string `mapstructure:"ICAL_FEED_ROOM2"`
	FeedURLVilla string `mapstructure:"ICAL_FEED_FULL"`

	// Stripe.
	StripeKey           string `mapstructure:"STRIPE_KEY"`
	StripeWebhookSecret string `mapstructure:"STRIPE_WEBHOOK_SECRET"`

	// Transactional email (SendGrid).
	SendgridAPIKey string `mapstructure:"SENDGRID_API_KEY"`
	EmailFrom      string `mapstructure:"EMAIL_FROM"`
	EmailOwner     string `mapstructure:"EMAIL_OWNER"`

	// Firebase Cloud Messaging (operator push).
	FirebaseCredentialsFile string `mapstructure:"FIREBASE_CREDENTIALS_FILE"`
	OwnerFCMToken           string `mapstructure:"OWNER_FCM_TOKEN"`

	// Gemini concierge.
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`

	// Third-party review aggregation (RapidAPI proxy).
	RapidAPIKey           string `mapstructure:"RAPIDAPI_KEY"`
	RapidAPIHost          string `mapstructure:"RAPIDAPI_HOST"`
	TripAdvisorLocationID string `mapstructure:"TRIPADVISOR_LOCATION_ID"`

	// Cloudinary gallery storage.
	CloudinaryCloudName string `mapstructure:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `mapstructure:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `mapstructure:"CLOUDINARY_API_SECRET"`

	// Shared secret for the pre-gated admin surface.
	AdminKey string `mapstructure:"ADMIN_KEY"`

	MaxRequestsPerMin int `mapstructure:"MAX_REQUESTS_PER_MIN"`
}

// Load reads configuration from a yaml file and the environment.
func Load() Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("SITE_URL", "http://localhost:3000")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "casaherenia")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 1)
	viper.SetDefault("RAPIDAPI_HOST", "tripadvisor16.p.rapidapi.com")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

// FeedURL returns the configured feed URL for a unit identifier, or "" when
// no feed is configured.
func (c Config) FeedURL(unit string) string {
	switch unit {
	case "room_1":
		return c.FeedURLRoom1
	case "room_2":
		return c.FeedURLRoom2
	case "full_villa":
		return c.FeedURLVilla
	}
	return ""
}

// IsProduction reports whether the service runs with production settings.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}
