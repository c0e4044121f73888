// README: Config loader with env defaults for HTTP, DB, Redis, and collaborator keys.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AdvisoryConfig struct {
	GeminiKey string
	Timeout   time.Duration
}

type Config struct {
	HTTP struct {
		Addr string
	}
	DB struct {
		// DSN may be empty; the service then runs on in-memory stores.
		DSN string
	}
	Redis struct {
		Addr string
	}
	Maps struct {
		APIKey string
	}
	Advisory AdvisoryConfig
	Chat     struct {
		HistoryLimit int
	}
}

func Load() (Config, error) {
	// Missing .env is fine; env vars win either way.
	_ = godotenv.Load()

	var cfg Config
	cfg.HTTP.Addr = envOrDefault("TRUCKER_HTTP_ADDR", ":8080")
	cfg.DB.DSN = os.Getenv("TRUCKER_DB_DSN")
	cfg.Redis.Addr = envOrDefault("TRUCKER_REDIS_ADDR", "localhost:6379")
	cfg.Maps.APIKey = os.Getenv("MAPS_API_KEY")
	cfg.Advisory.GeminiKey = os.Getenv("GEMINI_API_KEY")
	cfg.Advisory.Timeout = time.Duration(envOrDefaultInt("TRUCKER_ADVISORY_TIMEOUT_SEC", 10)) * time.Second
	cfg.Chat.HistoryLimit = envOrDefaultInt("TRUCKER_CHAT_HISTORY_LIMIT", 200)
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
