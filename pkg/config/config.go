package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL  string `validate:"required,url"`
	Environment string
	HTTPTimeout time.Duration
	StateDir    string `validate:"required"`
	MockAPIPort string
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		APIBaseURL:  getEnv("API_BASE_URL", "http://localhost:3000"),
		Environment: getEnv("ENVIRONMENT", "development"),
		HTTPTimeout: time.Duration(getEnvAsInt64("HTTP_TIMEOUT_SECONDS", 30)) * time.Second,
		StateDir:    getEnv("STATE_DIR", defaultStateDir()),
		MockAPIPort: getEnv("MOCKAPI_PORT", "3000"),
	}

	if err := validator.New().Struct(config); err != nil {
		return nil, err
	}

	return config, nil
}

func defaultStateDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "bookcatalog")
	}
	return ".bookcatalog"
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}
