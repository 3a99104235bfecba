// Package config provides configuration management for the label service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	EasyPost EasyPostConfig
	Auth     AuthConfig
	Database DatabaseConfig
	Log      LogConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	// ShutdownTimeout bounds how long in-flight requests get to finish.
	ShutdownTimeout time.Duration
	RateLimit       int
	RateWindow      time.Duration
	CORSOrigins     []string
	SwaggerUser     string
	SwaggerPass     string
}

// EasyPostConfig holds settings for the upstream shipping API.
//
// The API key itself is deliberately absent: only the name of the environment
// variable is configured, and the value is looked up on every request.
type EasyPostConfig struct {
	BaseURL     string
	APIKeyEnv   string
	Carrier     string
	LabelFormat string
	LabelSize   string
	Timeout     time.Duration
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// AuthConfig holds authentication configuration.
type AuthConfig struct {
	Enabled bool
	// APIKeys holds plain keys or bcrypt hashes of keys.
	APIKeys      map[string]bool
	JWTSecretKey string
}

// DatabaseConfig holds MongoDB configuration for request log storage.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	LogsTTL      time.Duration
	Enabled      bool
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// LogConfig holds console logging and persisted log settings.
type LogConfig struct {
	Level  string
	Pretty bool
	// Persisted entries are queued and written to MongoDB in batches.
	QueueSize     int
	BatchSize     int
	FlushInterval time.Duration
	WriteTimeout  time.Duration
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			ReadTimeout: getEnvDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			// A label purchase makes two sequential shipping API calls.
			WriteTimeout:    getEnvDuration("SERVER_WRITE_TIMEOUT", 75*time.Second),
			ShutdownTimeout: getEnvDuration("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
			RateLimit:       getEnvInt("RATE_LIMIT", 100),
			RateWindow:      getEnvDuration("RATE_WINDOW", time.Minute),
			CORSOrigins:     parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser:     getEnv("SWAGGER_USER", ""),
			SwaggerPass:     getEnv("SWAGGER_PASS", ""),
		},
		EasyPost: EasyPostConfig{
			BaseURL:                        getEnv("EASYPOST_BASE_URL", "https://api.easypost.com/v2"),
			APIKeyEnv:                      getEnv("EASYPOST_API_KEY_ENV", "EASYPOST_API_KEY"),
			Carrier:                        getEnv("EASYPOST_CARRIER", "USPS"),
			LabelFormat:                    getEnv("EASYPOST_LABEL_FORMAT", "PNG"),
			LabelSize:                      getEnv("EASYPOST_LABEL_SIZE", "4x6"),
			Timeout:                        getEnvDuration("EASYPOST_TIMEOUT", 30*time.Second),
			CircuitBreakerFailureThreshold: getEnvInt("EASYPOST_CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("EASYPOST_CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 1),
			CircuitBreakerTimeout:          getEnvDuration("EASYPOST_CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
		Auth: AuthConfig{
			Enabled:      getEnvBool("AUTH_ENABLED", false),
			APIKeys:      parseAPIKeys(os.Getenv("API_KEYS")),
			JWTSecretKey: getEnv("JWT_SECRET_KEY", ""),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "label_service"),
			LogsTTL:                        getEnvDuration("MONGODB_LOGS_TTL", 30*24*time.Hour),
			Enabled:                        getEnvBool("MONGODB_ENABLED", false),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
		Log: LogConfig{
			Level:         getEnv("LOG_LEVEL", "info"),
			Pretty:        getEnvBool("LOG_PRETTY", false),
			QueueSize:     getEnvInt("LOG_QUEUE_SIZE", 1000),
			BatchSize:     getEnvInt("LOG_BATCH_SIZE", 50),
			FlushInterval: getEnvDuration("LOG_FLUSH_INTERVAL", time.Second),
			WriteTimeout:  getEnvDuration("LOG_WRITE_TIMEOUT", 5*time.Second),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseAPIKeys(s string) map[string]bool {
	if s == "" {
		return nil
	}
	keys := strings.Split(s, ",")
	result := make(map[string]bool, len(keys))
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			result[k] = true
		}
	}
	return result
}

func parseCORSOrigins(s string) []string {
	// The form is served by this process; these cover a separately hosted dev frontend.
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
