package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Storage
	MongoURL string
	DBName   string
	MemoryDB bool

	// JWT
	JWTSecret string

	// CORS
	CORSOrigins string

	// Gemini AI (optional; the assistant answers from canned replies without it)
	GeminiAPIKey string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:         getEnvOrDefault("PORT", "8080"),
		Env:          getEnvOrDefault("ENV", "development"),
		MongoURL:     getEnvOrDefault("MONGO_URL", ""),
		DBName:       getEnvOrDefault("DB_NAME", "campus"),
		MemoryDB:     getEnvAsBoolOrDefault("MEMORY_DB", true),
		JWTSecret:    mustGetEnv("JWT_SECRET"),
		CORSOrigins:  getEnvOrDefault("CORS_ORIGINS", "*"),
		GeminiAPIKey: getEnvOrDefault("GEMINI_API_KEY", ""),
	}

	return cfg
}

// UseMemory reports whether the process should run on the in-memory store.
// A missing Mongo URL always forces the memory fallback.
func (c *Config) UseMemory() bool {
	return c.MemoryDB || c.MongoURL == ""
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return val
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsBoolOrDefault(key string, defaultVal bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return defaultVal
	}
	return b
}
