package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort       string
	AppMode       string
	MongoURI      string
	MongoDatabase string
	JWTSecret     string
	TokenTTLMin   int
	BcryptCost    int
	OpenAIAPIKey  string
	OpenAIModel   string
	RedisHost     string
	RedisPort     string
	RedisPassword string
	AuthRateLimit int
	CORSOrigins   []string
}

func LoadConfig() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		AppPort:       getEnv("PORT", "3001"),
		AppMode:       getEnv("APP_MODE", "debug"),
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGO_DB", "careconnect"),
		JWTSecret:     getEnv("JWT_SECRET", "change-me"),
		TokenTTLMin:   getEnvAsInt("TOKEN_TTL_MIN", 60),
		BcryptCost:    getEnvAsInt("BCRYPT_COST", 10),
		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
		RedisHost:     getEnv("REDIS_HOST", ""),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		AuthRateLimit: getEnvAsInt("AUTH_RATE_LIMIT", 5),
		CORSOrigins: getEnvAsSlice("CORS_ORIGINS", []string{
			"http://localhost:3000",
			"https://careconnect-frontend-il7i.onrender.com",
		}),
	}
}

// RateLimitEnabled reports whether the optional Redis-backed auth rate
// limiter should be wired in.
func (c *Config) RateLimitEnabled() bool {
	return c.RedisHost != ""
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func getEnvAsSlice(key string, fallback []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	parts := strings.Split(valueStr, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
