package config

import (
	"errors"  // For validation errors
	"fmt"     // For DSN formatting
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"strings" // For list parsing
	"time"    // For token lifetime

	"github.com/joho/godotenv" // For loading .env files
)

// Supported database drivers
const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

// minSecretLen is the shortest HS256 secret accepted
const minSecretLen = 32

// Config holds the application configuration
type Config struct {
	AppPort        string        // Application port
	DBDriver       string        // Database driver: mysql or sqlite
	DBUser         string        // Database user
	DBPassword     string        // Database password
	DBHost         string        // Database host
	DBPort         string        // Database port
	DBName         string        // Database name
	SQLitePath     string        // SQLite file path (sqlite driver only)
	JWTSecret      string        // JWT signing secret
	JWTTTL         time.Duration // Token time-to-live
	BcryptCost     int           // bcrypt work factor, 0 means library default
	RedisAddr      string        // Redis server address, empty disables caching
	RedisPass      string        // Redis password
	RedisDB        int           // Redis database number
	IsProd         bool          // Is production environment
	SeedCategories []string      // Categories created by the migrate command
	CORSOrigins    []string      // Browser origins allowed to call the API
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	bcryptCost, _ := strconv.Atoi(os.Getenv("BCRYPT_COST"))
	ttl, err := time.ParseDuration(getenv("JWT_TTL", "24h"))
	if err != nil {
		ttl = 0 // Rejected by Validate
	}
	return &Config{
		AppPort:        getenv("APP_PORT", "8080"),                                 // Application port
		DBDriver:       getenv("DB_DRIVER", DriverMySQL),                           // Database driver
		DBUser:         os.Getenv("DB_USER"),                                       // Database user
		DBPassword:     os.Getenv("DB_PASSWORD"),                                   // Database password
		DBHost:         getenv("DB_HOST", "127.0.0.1"),                             // Database host
		DBPort:         getenv("DB_PORT", "3306"),                                  // Database port
		DBName:         os.Getenv("DB_NAME"),                                       // Database name
		SQLitePath:     getenv("SQLITE_PATH", "charity.db"),                        // SQLite file
		JWTSecret:      os.Getenv("JWT_SECRET"),                                    // JWT secret key
		JWTTTL:         ttl,                                                        // Token lifetime
		BcryptCost:     bcryptCost,                                                 // bcrypt cost
		RedisAddr:      os.Getenv("REDIS_ADDR"),                                    // Redis server address
		RedisPass:      os.Getenv("REDIS_PASS"),                                    // Redis password
		RedisDB:        redisDB,                                                    // Redis database number
		IsProd:         os.Getenv("IS_PROD") == "true",                             // Is production environment
		SeedCategories: splitList(os.Getenv("SEED_CATEGORIES")),                    // Seed categories
		CORSOrigins:    splitList(getenv("CORS_ORIGINS", "http://localhost:4200")), // Allowed origins
	}
}

// Validate checks the values the core cannot run without
func (c *Config) Validate() error {
	var errs []error
	if len(c.JWTSecret) < minSecretLen {
		errs = append(errs, fmt.Errorf("JWT_SECRET must be at least %d bytes", minSecretLen))
	}
	if c.JWTTTL < time.Second {
		errs = append(errs, errors.New("JWT_TTL must be a duration of at least 1s"))
	}
	if c.DBDriver != DriverMySQL && c.DBDriver != DriverSQLite {
		errs = append(errs, fmt.Errorf("unknown DB_DRIVER %q", c.DBDriver))
	}
	return errors.Join(errs...)
}

// MySQLDSN builds the Data Source Name for the MySQL driver
func (c *Config) MySQLDSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true"
}

// getenv returns the variable or a fallback when unset
func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// splitList parses a comma separated list, dropping blanks
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
