package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/k-weng/houston-restaurant-week-2023/internal/restaurant"
	"github.com/k-weng/houston-restaurant-week-2023/internal/storage"
)

type Config struct {
	AppEnv string
	Port   string

	// Data source, in order of precedence: DataFile, DataObjectKey (with R2), DataURL.
	DataURL       string
	DataFile      string
	DataObjectKey string
	R2            storage.R2Config
	FetchTimeout  time.Duration

	MapBaseURL   string
	AllowOrigins []string
}

func (c *Config) Production() bool { return c.AppEnv == "production" }

// Load reads the configuration from the environment. Call godotenv first
// if a .env file should be honored.
func Load() (*Config, error) {
	cfg := &Config{
		AppEnv:        getenv("APP_ENV", "development"),
		Port:          getenv("PORT", "8080"),
		DataURL:       getenv("DATA_URL", restaurant.DefaultDataURL),
		DataFile:      os.Getenv("DATA_FILE"),
		DataObjectKey: os.Getenv("DATA_OBJECT_KEY"),
		R2: storage.R2Config{
			Endpoint:  os.Getenv("R2_ENDPOINT"),
			AccessKey: os.Getenv("R2_ACCESS_KEY"),
			SecretKey: os.Getenv("R2_SECRET_KEY"),
			Bucket:    os.Getenv("R2_BUCKET_NAME"),
		},
		MapBaseURL:   getenv("MAP_BASE_URL", "https://google.com"),
		AllowOrigins: splitList(getenv("CORS_ALLOW_ORIGINS", "http://localhost:3000")),
	}

	if n, err := strconv.Atoi(cfg.Port); err != nil || n <= 0 || n > 65535 {
		return nil, fmt.Errorf("invalid PORT %q", cfg.Port)
	}

	timeout, err := time.ParseDuration(getenv("FETCH_TIMEOUT", "15s"))
	if err != nil {
		return nil, fmt.Errorf("invalid FETCH_TIMEOUT: %w", err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("FETCH_TIMEOUT must be positive, got %s", timeout)
	}
	cfg.FetchTimeout = timeout

	if cfg.DataObjectKey != "" && !cfg.R2.Enabled() {
		return nil, fmt.Errorf("DATA_OBJECT_KEY requires R2_ENDPOINT and R2_BUCKET_NAME")
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
