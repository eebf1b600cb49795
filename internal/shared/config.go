package shared

import (
	"os"
	"strconv"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string
	DataFile    string
	RateRPS     int
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
	return Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    ":" + env("PORT", "8000"),
		MetricsAddr: env("METRICS_ADDR", ":9100"),
		DataFile:    env("DATA_FILE", "data/reviews.csv"),
		RateRPS:     atoi("RATE_RPS", 100),
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
