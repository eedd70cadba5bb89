package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration

	// Persistence
	StoreDriver   string // "sqlite" or "redis"
	SQLitePath    string
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Question generation
	GenerationDelay   time.Duration // simulated provider latency
	GenerationWorkers int

	// Session countdown
	TickInterval time.Duration

	// Display profile
	UserName   string
	UserAvatar string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	return &Config{
		ServerAddress:     mustGetenv("SERVER_ADDRESS"),
		ShutdownTimeout:   mustGetDuration("SHUTDOWN_TIMEOUT"),
		StoreDriver:       getenvDefault("STORE_DRIVER", "sqlite"),
		SQLitePath:        getenvDefault("SQLITE_PATH", "interview-prep.db"),
		RedisAddr:         getenvDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		RedisDB:           getenvInt("REDIS_DB", 0),
		GenerationDelay:   getenvDuration("GENERATION_DELAY", 2*time.Second),
		GenerationWorkers: getenvInt("GENERATION_WORKERS", 2),
		TickInterval:      getenvDuration("TICK_INTERVAL", time.Second),
		UserName:          getenvDefault("USER_NAME", "Guest"),
		UserAvatar:        os.Getenv("USER_AVATAR"),
	}
}

func mustGetenv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	return v
}

func mustGetDuration(k string) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}

func getenvInt(k string, fallback int) int {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid integer: %v", k, v, err)
	}
	return n
}

func getenvDuration(k string, fallback time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}
