package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP           string        // Host IP for the server
	RESTPort         int           // Port for the REST API
	DBHost           string        // Hostname or IP address for the database
	DBPort           int           // Port number for the database
	DBUser           string        // Username for the database
	DBPassword       string        // Password for the database
	DBName           string        // Name of the database
	DBCollection     string        // Collection holding maze sessions
	RedisAddr        string        // Address of the Redis server caching layouts
	RedisPassword    string        // Password for Redis, empty when unauthenticated
	LayoutCacheTTL   time.Duration // How long a projected layout stays cached
	GinMode          string        // Mode for the Gin framework (e.g., release, debug, test)
	MaxMazeDimension int           // Largest accepted row or column count
}

// Load reads the configuration from the environment.
// It loads environment variables from a .env file first when one is present.
func Load() (Config, error) {
	// Load .env file if available
	envErr := godotenv.Load()

	var errs []error
	cfg := Config{
		HostIP:           getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:         getEnvAsIntWithDefault("REST_PORT", 8080, &errs),
		DBHost:           getEnvWithDefault("DB_HOST", "localhost"),
		DBPort:           getEnvAsIntWithDefault("DB_PORT", 27017, &errs),
		DBUser:           getEnvWithDefault("DB_USER", ""),
		DBPassword:       getEnvWithDefault("DB_PASS", ""),
		DBName:           getEnvWithDefault("DB_NAME", "mazeball"),
		DBCollection:     getEnvWithDefault("DB_COLLECTION", "mazes"),
		RedisAddr:        getEnvWithDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword:    getEnvWithDefault("REDIS_PASS", ""),
		LayoutCacheTTL:   time.Duration(getEnvAsIntWithDefault("LAYOUT_CACHE_TTL_SECONDS", 600, &errs)) * time.Second,
		GinMode:          getEnvWithDefault("GIN_MODE", "release"),
		MaxMazeDimension: getEnvAsIntWithDefault("MAX_MAZE_DIMENSION", 100, &errs),
	}

	if len(errs) > 0 {
		return Config{}, errs[0]
	}
	if cfg.MaxMazeDimension < 1 {
		return Config{}, fmt.Errorf("environment variable MAX_MAZE_DIMENSION must be positive, got %d", cfg.MaxMazeDimension)
	}
	if envErr != nil && !os.IsNotExist(envErr) {
		return cfg, fmt.Errorf("loading .env file: %w", envErr)
	}
	return cfg, nil
}

// MongoURI builds the MongoDB connection string. Credentials are omitted when no user is set.
func (c Config) MongoURI() string {
	if c.DBUser == "" {
		return fmt.Sprintf("mongodb://%s:%v", c.DBHost, c.DBPort)
	}
	return fmt.Sprintf("mongodb://%s:%s@%s:%v", c.DBUser, c.DBPassword, c.DBHost, c.DBPort)
}

// RESTAddr is the address the HTTP server listens on.
func (c Config) RESTAddr() string {
	return fmt.Sprintf("%s:%v", c.HostIP, c.RESTPort)
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves an integer environment variable, recording a parse failure in errs.
func getEnvAsIntWithDefault(key string, defaultValue int, errs *[]error) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("environment variable %s must be an integer: %w", key, err))
		return defaultValue
	}
	return value
}
