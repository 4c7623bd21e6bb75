package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv       string
	HTTPAddr     string
	MetricsAddr  string
	DataDir      string
	RedisAddr    string
	RedisDB      int
	RedisPass    string
	HostawayBase string
	HostawayKey  string
	HostawayAcct string
	GoogleKey    string
	Workers      int
	CacheTTL     time.Duration
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:       env("APP_ENV", "prod"),
		HTTPAddr:     env("HTTP_ADDR", ":3001"),
		MetricsAddr:  env("METRICS_ADDR", ":9100"),
		DataDir:      env("DATA_DIR", "./data"),
		RedisAddr:    env("REDIS_ADDR", "localhost:6379"),
		RedisDB:      atoi("REDIS_DB", 0),
		RedisPass:    env("REDIS_PASSWORD", ""),
		HostawayBase: env("HOSTAWAY_API_BASE_URL", "https://api.hostaway.com/v1"),
		HostawayKey:  env("HOSTAWAY_API_KEY", ""),
		HostawayAcct: env("HOSTAWAY_ACCOUNT_ID", ""),
		GoogleKey:    env("GOOGLE_PLACES_API_KEY", ""),
		Workers:      atoi("INGEST_WORKERS", 4),
		CacheTTL:     time.Duration(atoi("CACHE_TTL_SECONDS", 300)) * time.Second,
	}
	if c.GoogleKey == "" {
		log.Warn().Msg("GOOGLE_PLACES_API_KEY is empty, places feed will serve sample data")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
