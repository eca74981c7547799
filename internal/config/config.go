package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/primatek-mfg/erp-backend-go/internal/domain/leave"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Leave    LeaveConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// LeaveConfig holds the per-type annual leave entitlement table. The portal
// does not own entitlement policy; it only consumes this table.
type LeaveConfig struct {
	Entitlements leave.EntitlementTable
}

func Load() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "primatek-erp"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Leave entitlement table
	entitlements, err := loadEntitlements()
	if err != nil {
		return nil, fmt.Errorf("invalid leave entitlements: %w", err)
	}
	config.Leave = LeaveConfig{Entitlements: entitlements}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// DefaultEntitlements returns the built-in annual allotment per leave type.
func DefaultEntitlements() leave.EntitlementTable {
	return leave.EntitlementTable{
		leave.TypeCasual:       12,
		leave.TypeSick:         10,
		leave.TypeEarned:       15,
		leave.TypeMaternity:    90,
		leave.TypePaternity:    14,
		leave.TypeCompensatory: 8,
	}
}

// loadEntitlements applies LEAVE_ENTITLEMENT_<TYPE> overrides on top of the
// defaults, e.g. LEAVE_ENTITLEMENT_CASUAL=14.
func loadEntitlements() (leave.EntitlementTable, error) {
	table := DefaultEntitlements()

	for _, lt := range leave.AllLeaveTypes() {
		key := "LEAVE_ENTITLEMENT_" + string(lt)
		value := os.Getenv(key)
		if value == "" {
			continue
		}
		days, err := strconv.Atoi(value)
		if err != nil || days < 0 {
			return nil, fmt.Errorf("%s must be a non-negative integer, got %q", key, value)
		}
		table[lt] = days
	}

	return table, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
