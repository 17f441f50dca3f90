package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	OAuth     OAuthConfig
	JWT       JWTConfig
	Scheduler SchedulerConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string
	Host            string
	Environment     string
	AllowedOrigins  []string
	ShutdownTimeout int
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host        string
	Port        string
	User        string
	Password    string
	Name        string
	SSLMode     string
	MaxConns    int
	MinConns    int
	AutoMigrate bool
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// OAuthConfig holds OAuth configuration
type OAuthConfig struct {
	Google GoogleOAuthConfig
}

// GoogleOAuthConfig holds Google OAuth configuration
type GoogleOAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	AccessSecret  string
	RefreshSecret string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// SchedulerConfig holds the slot recommendation engine configuration. The
// defaults mirror the product policy: a 7-day horizon of 30-minute candidate
// slots inside 08:00-18:00 business hours, and a 09:00-17:00 weekday
// assumption for participants without calendar data.
type SchedulerConfig struct {
	HorizonDays        int
	SlotStepMinutes    int
	BusinessHoursOpen  int // hour of day, inclusive
	BusinessHoursClose int // hour of day, slots must end by this hour
	MaxSuggestedSlots  int

	// Default availability policy for participants without real data
	DefaultWorkStart     string // "HH:MM"
	DefaultWorkEnd       string // "HH:MM"
	DefaultBufferMinutes int

	// Calendar availability provider: "none" or "google"
	CalendarProvider string

	// TTL for the availability-pattern read-through cache
	PatternCacheTTL time.Duration
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", "0.0.0.0"),
			Environment:     getEnv("ENVIRONMENT", "development"),
			AllowedOrigins:  []string{getEnv("ALLOWED_ORIGINS", "http://localhost:3000")},
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 10),
		},
		Database: DatabaseConfig{
			Host:        getEnv("DB_HOST", "localhost"),
			Port:        getEnv("DB_PORT", "5432"),
			User:        getEnv("DB_USER", "postgres"),
			Password:    getEnv("DB_PASSWORD", "postgres"),
			Name:        getEnv("DB_NAME", "meeting_scheduler"),
			SSLMode:     getEnv("DB_SSLMODE", "disable"),
			MaxConns:    getEnvAsInt("DB_MAX_CONNS", 25),
			MinConns:    getEnvAsInt("DB_MIN_CONNS", 5),
			AutoMigrate: getEnvAsBool("DB_AUTO_MIGRATE", false),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		OAuth: OAuthConfig{
			Google: GoogleOAuthConfig{
				ClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
				ClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
				RedirectURL:  getEnv("GOOGLE_REDIRECT_URL", "http://localhost:8080/v1/auth/google/callback"),
			},
		},
		JWT: JWTConfig{
			AccessSecret:  getEnv("JWT_ACCESS_SECRET", "your-access-secret-change-in-production"),
			RefreshSecret: getEnv("JWT_REFRESH_SECRET", "your-refresh-secret-change-in-production"),
			AccessExpiry:  getEnvAsDuration("JWT_ACCESS_EXPIRY", "15m"),
			RefreshExpiry: getEnvAsDuration("JWT_REFRESH_EXPIRY", "168h"),
		},
		Scheduler: SchedulerConfig{
			HorizonDays:          getEnvAsInt("SCHEDULER_HORIZON_DAYS", 7),
			SlotStepMinutes:      getEnvAsInt("SCHEDULER_SLOT_STEP_MINUTES", 30),
			BusinessHoursOpen:    getEnvAsInt("SCHEDULER_BUSINESS_HOURS_OPEN", 8),
			BusinessHoursClose:   getEnvAsInt("SCHEDULER_BUSINESS_HOURS_CLOSE", 18),
			MaxSuggestedSlots:    getEnvAsInt("SCHEDULER_MAX_SUGGESTED_SLOTS", 5),
			DefaultWorkStart:     getEnv("SCHEDULER_DEFAULT_WORK_START", "09:00"),
			DefaultWorkEnd:       getEnv("SCHEDULER_DEFAULT_WORK_END", "17:00"),
			DefaultBufferMinutes: getEnvAsInt("SCHEDULER_DEFAULT_BUFFER_MINUTES", 15),
			CalendarProvider:     getEnv("SCHEDULER_CALENDAR_PROVIDER", "none"),
			PatternCacheTTL:      getEnvAsDuration("SCHEDULER_PATTERN_CACHE_TTL", "10m"),
		},
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Scheduler.HorizonDays <= 0 {
		return fmt.Errorf("SCHEDULER_HORIZON_DAYS must be positive")
	}
	if c.Scheduler.SlotStepMinutes <= 0 {
		return fmt.Errorf("SCHEDULER_SLOT_STEP_MINUTES must be positive")
	}
	if c.Scheduler.BusinessHoursOpen < 0 || c.Scheduler.BusinessHoursClose > 24 ||
		c.Scheduler.BusinessHoursOpen >= c.Scheduler.BusinessHoursClose {
		return fmt.Errorf("invalid business hours window %d-%d",
			c.Scheduler.BusinessHoursOpen, c.Scheduler.BusinessHoursClose)
	}
	if c.Scheduler.CalendarProvider != "none" && c.Scheduler.CalendarProvider != "google" {
		return fmt.Errorf("SCHEDULER_CALENDAR_PROVIDER must be \"none\" or \"google\"")
	}
	if c.Scheduler.CalendarProvider == "google" && c.OAuth.Google.ClientID == "" {
		return fmt.Errorf("GOOGLE_CLIENT_ID is required when the google calendar provider is enabled")
	}
	return nil
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}
	return duration
}
