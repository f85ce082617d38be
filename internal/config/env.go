package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr string
	GinMode string

	// StoreDriver selects the backing store: "memory" (default) or
	// "mysql".
	StoreDriver  string
	StoreLatency time.Duration

	DBUser string
	DBPass string
	DBHost string
	DBName string

	// IdentitySecret verifies externally issued bearer tokens. Empty
	// disables token parsing entirely.
	IdentitySecret string

	FlowSessionTTL time.Duration
}

// LoadEnv reads configuration from the environment, picking up a .env
// file first when one exists.
func LoadEnv() Env {
	_ = godotenv.Load()

	return Env{
		AppAddr:        envOr("APP_ADDR", ":8080"),
		GinMode:        strings.TrimSpace(os.Getenv("GIN_MODE")),
		StoreDriver:    strings.ToLower(envOr("STORE_DRIVER", "memory")),
		StoreLatency:   time.Duration(envInt("STORE_LATENCY_MS", 0)) * time.Millisecond,
		DBUser:         envOr("DB_USER", "root"),
		DBPass:         os.Getenv("DB_PASS"),
		DBHost:         envOr("DB_HOST", "127.0.0.1:3306"),
		DBName:         envOr("DB_NAME", "routerider"),
		IdentitySecret: strings.TrimSpace(os.Getenv("IDENTITY_SECRET")),
		FlowSessionTTL: time.Duration(envInt("FLOW_SESSION_TTL_MIN", 30)) * time.Minute,
	}
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
